package plan

import "gopkg.in/src-d/go-mysql-server.v0/sql"

// LogicFilter skips rows that don't match Predicate, grounded on the
// teacher's plan.Filter (a single expression over a single child).
type LogicFilter struct {
	UnaryNode
	Predicate sql.Expr
}

func NewLogicFilter(child sql.LogicNode, predicate sql.Expr) *LogicFilter {
	return &LogicFilter{UnaryNode: UnaryNode{Child: child}, Predicate: predicate}
}

func (n *LogicFilter) String() string {
	p := sql.NewTreePrinter()
	p.WriteNode("Filter(%s)", n.Predicate.String())
	p.WriteChildren(n.Child.String())
	return p.String()
}
