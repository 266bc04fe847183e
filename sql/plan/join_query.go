package plan

import (
	"strings"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

// JoinQueryRef is an AST-level n-ary join (spec §3): an ordered list of
// sub-TableRefs (never nested JoinQuery), a parallel list of lowercased
// join-operator tokens, and a parallel list of join-constraint
// expressions, with len(Constraints) == len(Ops) == len(Tables)-1. The
// planner normalizes it into a left-deep binary join plus one filter
// (spec §4.5).
type JoinQueryRef struct {
	refBase
	Tables      []sql.TableRef
	Ops         []string
	Constraints []sql.Expr
}

func NewJoinQueryRef(tables []sql.TableRef, ops []string, constraints []sql.Expr) *JoinQueryRef {
	alias := ""
	if len(tables) > 0 {
		alias = tables[0].Alias()
	}
	return &JoinQueryRef{
		refBase:     refBase{alias: alias},
		Tables:      tables,
		Ops:         lowerAll(ops),
		Constraints: constraints,
	}
}

func lowerAll(ops []string) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = strings.ToLower(op)
	}
	return out
}

func (j *JoinQueryRef) AllColumnRefs() ([]sql.Expr, error) {
	var cols []sql.Expr
	for _, t := range j.Tables {
		exports, err := t.AllColumnRefs()
		if err != nil {
			return nil, err
		}
		cols = append(cols, exports...)
	}
	return cols, nil
}

func (j *JoinQueryRef) LocateColumn(outputName string) (sql.Expr, error) {
	return locateColumn(j, outputName)
}

func (j *JoinQueryRef) AddOuterRefsToOutput(output []sql.Expr) []sql.Expr {
	return addOuterRefsToOutput(j, output)
}

func (j *JoinQueryRef) String() string {
	var sb strings.Builder
	sb.WriteString(j.Tables[0].(interface{ String() string }).String())
	for i, op := range j.Ops {
		sb.WriteString(" " + op + " JOIN ")
		sb.WriteString(j.Tables[i+1].(interface{ String() string }).String())
	}
	return sb.String()
}
