package plan

import (
	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

// FromQueryRef is a nested SELECT appearing in FROM, with an alias and
// an optional column-rename list (spec §3/§4.2). The inner SELECT must
// already be bound before AllColumnRefs is called.
type FromQueryRef struct {
	refBase
	Inner    *SelectStmt
	ColNames []string // nil unless the query has an explicit rename list

	outputMap map[string]sql.Expr
}

func NewFromQueryRef(alias string, inner *SelectStmt, colNames []string) *FromQueryRef {
	return &FromQueryRef{refBase: refBase{alias: alias}, Inner: inner, ColNames: colNames}
}

func (f *FromQueryRef) AllColumnRefs() ([]sql.Expr, error) {
	return exportQueryColumns(f, f.Inner, f.ColNames)
}

// OutputNameMap returns the mapping from exported output name to the
// original (not cloned) inner expression, wrapping aggregate results in
// an ExprRef so aggregation is computed exactly once (spec §3's
// FromQuery contract). The map is built lazily and cached.
func (f *FromQueryRef) OutputNameMap() map[string]sql.Expr {
	if f.outputMap == nil {
		f.outputMap = buildOutputNameMap(f.Inner, f.ColNames)
	}
	return f.outputMap
}

func (f *FromQueryRef) LocateColumn(outputName string) (sql.Expr, error) {
	return locateColumn(f, outputName)
}

func (f *FromQueryRef) AddOuterRefsToOutput(output []sql.Expr) []sql.Expr {
	return addOuterRefsToOutput(f, output)
}

func (f *FromQueryRef) String() string {
	return "(subquery) AS " + f.alias
}
