package plan

import (
	"strings"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

// LogicAgg groups Child by GroupBy and computes Aggregates, optionally
// filtering groups by Having (spec §4.5). Grounded on the teacher's
// plan.Project shape (a UnaryNode plus an expression list) generalized
// with a second list and an optional post-aggregation filter.
type LogicAgg struct {
	UnaryNode
	GroupBy    []sql.Expr
	Aggregates []sql.Expr
	Having     sql.Expr
}

func NewLogicAgg(child sql.LogicNode, groupBy, aggregates []sql.Expr, having sql.Expr) *LogicAgg {
	return &LogicAgg{UnaryNode: UnaryNode{Child: child}, GroupBy: groupBy, Aggregates: aggregates, Having: having}
}

func (n *LogicAgg) String() string {
	p := sql.NewTreePrinter()
	group := exprList(n.GroupBy)
	aggs := exprList(n.Aggregates)
	if n.Having != nil {
		p.WriteNode("Agg(group=[%s], aggs=[%s], having=%s)", group, aggs, n.Having.String())
	} else {
		p.WriteNode("Agg(group=[%s], aggs=[%s])", group, aggs)
	}
	p.WriteChildren(n.Child.String())
	return p.String()
}

func exprList(exprs []sql.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
