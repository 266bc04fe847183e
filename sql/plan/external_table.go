package plan

import (
	"gopkg.in/src-d/go-mysql-server.v0/sql"
	"gopkg.in/src-d/go-mysql-server.v0/sql/expression"
)

// ExternalTableRef is a filename binding layered over a Base, used for
// bulk-loaded external data (spec §3/§4.2). It delegates its exported
// columns to the supplied column list rather than a catalog lookup.
type ExternalTableRef struct {
	refBase
	Base     *BaseTableRef
	FileName string
	Columns  []sql.ColumnDef
}

func NewExternalTableRef(base *BaseTableRef, fileName string, columns []sql.ColumnDef) *ExternalTableRef {
	return &ExternalTableRef{refBase: refBase{alias: base.Alias()}, Base: base, FileName: fileName, Columns: columns}
}

func (e *ExternalTableRef) AllColumnRefs() ([]sql.Expr, error) {
	cols := make([]sql.Expr, len(e.Columns))
	for i, cd := range e.Columns {
		c := expression.NewColExpr("", e.alias, cd.Name)
		c.TabRef = e
		c.SetOutputName(cd.Name)
		c.SetBounded(true)
		cols[i] = c
	}
	return cols, nil
}

func (e *ExternalTableRef) LocateColumn(outputName string) (sql.Expr, error) {
	return locateColumn(e, outputName)
}

func (e *ExternalTableRef) AddOuterRefsToOutput(output []sql.Expr) []sql.Expr {
	return addOuterRefsToOutput(e, output)
}

func (e *ExternalTableRef) String() string {
	return e.Base.TabName + " FROM FILE '" + e.FileName + "' AS " + e.alias
}
