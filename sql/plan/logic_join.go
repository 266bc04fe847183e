package plan

import "gopkg.in/src-d/go-mysql-server.v0/sql"

// LogicJoin is a binary join with exactly two children (spec §6/§8
// invariant I5). The planner never attaches a join predicate directly
// to a LogicJoin: JoinQuery constraints are folded into a single
// LogicFilter above the join tree instead (spec §4.5).
type LogicJoin struct {
	BinaryNode
}

func NewLogicJoin(left, right sql.LogicNode) *LogicJoin {
	return &LogicJoin{BinaryNode{Left: left, Right: right}}
}

func (n *LogicJoin) String() string {
	p := sql.NewTreePrinter()
	p.WriteNode("Join")
	p.WriteChildren(n.Left.String(), n.Right.String())
	return p.String()
}
