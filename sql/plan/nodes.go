package plan

import "gopkg.in/src-d/go-mysql-server.v0/sql"

// UnaryNode is embedded by every single-child LogicNode, mirroring the
// teacher's plan.UnaryNode embedding used across Filter/Project/Sort/
// SubqueryAlias.
type UnaryNode struct {
	Child sql.LogicNode
}

func (n UnaryNode) Children() []sql.LogicNode { return []sql.LogicNode{n.Child} }

// BinaryNode is embedded by LogicJoin, the plan algebra's only
// two-child node (spec §6/§8 invariant I5: "every LogicJoin has exactly
// two children").
type BinaryNode struct {
	Left, Right sql.LogicNode
}

func (n BinaryNode) Children() []sql.LogicNode { return []sql.LogicNode{n.Left, n.Right} }
