package plan

import (
	"fmt"
	"strings"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

// SortField pairs an ORDER BY expression with its descending flag,
// keeping the teacher's plan.SortField naming.
type SortField struct {
	Expr sql.Expr
	Desc bool
}

// LogicOrder sorts Child by SortFields, grounded on the teacher's
// plan.Sort.
type LogicOrder struct {
	UnaryNode
	SortFields []SortField
}

func NewLogicOrder(child sql.LogicNode, exprs []sql.Expr, desc []bool) *LogicOrder {
	fields := make([]SortField, len(exprs))
	for i, e := range exprs {
		fields[i] = SortField{Expr: e, Desc: desc[i]}
	}
	return &LogicOrder{UnaryNode: UnaryNode{Child: child}, SortFields: fields}
}

func (n *LogicOrder) String() string {
	p := sql.NewTreePrinter()
	parts := make([]string, len(n.SortFields))
	for i, f := range n.SortFields {
		dir := "ASC"
		if f.Desc {
			dir = "DESC"
		}
		parts[i] = fmt.Sprintf("%s %s", f.Expr.String(), dir)
	}
	p.WriteNode("Order([%s])", strings.Join(parts, ", "))
	p.WriteChildren(n.Child.String())
	return p.String()
}
