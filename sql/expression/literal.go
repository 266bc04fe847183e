package expression

import (
	"fmt"

	"github.com/spf13/cast"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

// Literal is a constant value from the query text (spec §3).
type Literal struct {
	base
	Value interface{}
	Type  sql.Type
}

// NewLiteral creates a new literal expression.
func NewLiteral(value interface{}, typ sql.Type) *Literal {
	return &Literal{Value: value, Type: typ}
}

func (l *Literal) String() string {
	if l.Value == nil {
		return "NULL"
	}
	s, err := cast.ToStringE(l.Value)
	if err != nil {
		return fmt.Sprintf("%v", l.Value)
	}
	return s
}

func (l *Literal) Children() []sql.Expr { return nil }

func (l *Literal) WithChildren(children ...sql.Expr) (sql.Expr, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidType.New("Literal takes no children")
	}
	return l, nil
}

func (l *Literal) Clone() sql.Expr {
	c := *l
	return &c
}
