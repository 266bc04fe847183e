package plan

import (
	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

// CTEQueryRef is a SELECT bound to a name visible in the enclosing
// statement's WITH scope (spec §3). It shares FromQueryRef's export
// contract exactly (spec §4.2 groups "Cte/From without rename" as one
// case).
type CTEQueryRef struct {
	refBase
	Name     string
	Inner    *SelectStmt
	ColNames []string

	outputMap map[string]sql.Expr
}

func NewCTEQueryRef(name string, inner *SelectStmt, colNames []string) *CTEQueryRef {
	return &CTEQueryRef{refBase: refBase{alias: name}, Name: name, Inner: inner, ColNames: colNames}
}

func (c *CTEQueryRef) AllColumnRefs() ([]sql.Expr, error) {
	return exportQueryColumns(c, c.Inner, c.ColNames)
}

func (c *CTEQueryRef) OutputNameMap() map[string]sql.Expr {
	if c.outputMap == nil {
		c.outputMap = buildOutputNameMap(c.Inner, c.ColNames)
	}
	return c.outputMap
}

func (c *CTEQueryRef) LocateColumn(outputName string) (sql.Expr, error) {
	return locateColumn(c, outputName)
}

func (c *CTEQueryRef) AddOuterRefsToOutput(output []sql.Expr) []sql.Expr {
	return addOuterRefsToOutput(c, output)
}

func (c *CTEQueryRef) String() string {
	return "CTE " + c.Name
}
