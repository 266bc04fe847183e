package sql

import (
	"fmt"
	"strings"
)

// Type names recognized in DDL (spec §6). The core only needs to name
// types for catalog/column definitions, never evaluate over them, so
// this stops at a tagged struct rather than a full runtime type system.
type TypeKind int

const (
	TypeUnknown TypeKind = iota
	TypeInt
	TypeDouble
	TypeChar
	TypeVarChar
	TypeDatetime
	TypeDate
	TypeTime
	TypeNumeric
)

// Type is a resolved DDL type name plus its optional length/precision
// arguments.
type Type struct {
	Kind      TypeKind
	Len       int // char(n) / varchar(n)
	Precision int // numeric(p[,s]) / decimal(p[,s])
	Scale     int
}

func (t Type) String() string {
	switch t.Kind {
	case TypeInt:
		return "int"
	case TypeDouble:
		return "double"
	case TypeChar:
		return fmt.Sprintf("char(%d)", t.Len)
	case TypeVarChar:
		return fmt.Sprintf("varchar(%d)", t.Len)
	case TypeDatetime:
		return "datetime"
	case TypeDate:
		return "date"
	case TypeTime:
		return "time"
	case TypeNumeric:
		if t.Scale != 0 {
			return fmt.Sprintf("numeric(%d,%d)", t.Precision, t.Scale)
		}
		return fmt.Sprintf("numeric(%d)", t.Precision)
	default:
		return "unknown"
	}
}

// ParseTypeName resolves one of spec §6's DDL type names. len_/precision/scale
// are the DDL's parenthesized arguments, ignored where not applicable.
func ParseTypeName(name string, len_, precision, scale int) (Type, error) {
	switch strings.ToLower(name) {
	case "int", "integer":
		return Type{Kind: TypeInt}, nil
	case "double":
		return Type{Kind: TypeDouble}, nil
	case "double precision":
		return Type{Kind: TypeDouble}, nil
	case "char":
		return Type{Kind: TypeChar, Len: len_}, nil
	case "varchar":
		return Type{Kind: TypeVarChar, Len: len_}, nil
	case "datetime":
		return Type{Kind: TypeDatetime}, nil
	case "date":
		return Type{Kind: TypeDate}, nil
	case "time":
		return Type{Kind: TypeTime}, nil
	case "numeric", "decimal":
		return Type{Kind: TypeNumeric, Precision: precision, Scale: scale}, nil
	default:
		return Type{}, ErrUnknownType.New(name)
	}
}
