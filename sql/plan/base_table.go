package plan

import (
	"gopkg.in/src-d/go-mysql-server.v0/sql"
	"gopkg.in/src-d/go-mysql-server.v0/sql/expression"
)

// BaseTableRef is a relation name plus alias, exporting every catalog
// column of the relation (spec §4.2).
type BaseTableRef struct {
	refBase
	Db      string
	TabName string // catalog relation name
	Def     *sql.TableDef
}

// NewBaseTableRef creates a BaseTableRef bound against the catalog
// definition def; the alias defaults to the relation name when none is
// given, matching spec boundary scenario 1's "select b.a1 from a b".
func NewBaseTableRef(db, tabName, alias string, def *sql.TableDef) *BaseTableRef {
	if alias == "" {
		alias = tabName
	}
	return &BaseTableRef{refBase: refBase{alias: alias}, Db: db, TabName: tabName, Def: def}
}

func (b *BaseTableRef) AllColumnRefs() ([]sql.Expr, error) {
	cols := make([]sql.Expr, len(b.Def.Columns))
	for i, cd := range b.Def.Columns {
		c := expression.NewColExpr("", b.alias, cd.Name)
		c.TabRef = b
		c.SetOutputName(cd.Name)
		c.SetBounded(true)
		cols[i] = c
	}
	return cols, nil
}

func (b *BaseTableRef) LocateColumn(outputName string) (sql.Expr, error) {
	return locateColumn(b, outputName)
}

func (b *BaseTableRef) AddOuterRefsToOutput(output []sql.Expr) []sql.Expr {
	return addOuterRefsToOutput(b, output)
}

func (b *BaseTableRef) String() string {
	if b.alias != b.TabName {
		return b.TabName + " AS " + b.alias
	}
	return b.TabName
}
