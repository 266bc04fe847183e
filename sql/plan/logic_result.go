package plan

import "gopkg.in/src-d/go-mysql-server.v0/sql"

// LogicResult is the plan for a SELECT with no FROM items at all (spec
// §4.5: "If zero, LogicResult(selection_)"), e.g. `SELECT 1+1`. Every
// other SELECT's projection list stays attached to its SelectStmt
// rather than becoming its own plan node — §6's node-kind enumeration
// has no separate "project" kind, and the end-to-end parity example
// confirms it: the plan root is Limit/Order/Agg/Filter/Join directly,
// with no projection wrapper above them.
type LogicResult struct {
	Selection []sql.Expr
}

func NewLogicResult(selection []sql.Expr) *LogicResult {
	return &LogicResult{Selection: selection}
}

func (n *LogicResult) Children() []sql.LogicNode { return nil }

func (n *LogicResult) String() string {
	p := sql.NewTreePrinter()
	p.WriteNode("Result(%s)", exprList(n.Selection))
	return p.String()
}
