package plan

import "gopkg.in/src-d/go-mysql-server.v0/sql"

// LogicLimit caps the number of rows Child produces. It is not among
// the node kinds spec.md §6 enumerates, but the worked end-to-end
// example in §8 wraps its whole plan in `Limit(100, ...)`, so the
// algebra is incomplete without it; see DESIGN.md's Open Question
// entry for this addition.
type LogicLimit struct {
	UnaryNode
	Limit sql.Expr
}

func NewLogicLimit(child sql.LogicNode, limit sql.Expr) *LogicLimit {
	return &LogicLimit{UnaryNode: UnaryNode{Child: child}, Limit: limit}
}

func (n *LogicLimit) String() string {
	p := sql.NewTreePrinter()
	p.WriteNode("Limit(%s)", n.Limit.String())
	p.WriteChildren(n.Child.String())
	return p.String()
}
