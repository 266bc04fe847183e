package plan

import "gopkg.in/src-d/go-mysql-server.v0/sql"

// LogicFromQuery wraps a nested SELECT's plan with the alias it was
// introduced under (spec §4.5), grounded on the teacher's
// plan.SubqueryAlias (a name plus a single child).
type LogicFromQuery struct {
	UnaryNode
	Ref sql.TableRef // *FromQueryRef or *CTEQueryRef
}

func NewLogicFromQuery(ref sql.TableRef, inner sql.LogicNode) *LogicFromQuery {
	return &LogicFromQuery{UnaryNode: UnaryNode{Child: inner}, Ref: ref}
}

func (n *LogicFromQuery) String() string {
	p := sql.NewTreePrinter()
	p.WriteNode("FromQuery(%s)", n.Ref.Alias())
	p.WriteChildren(n.Child.String())
	return p.String()
}
