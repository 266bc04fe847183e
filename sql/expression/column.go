package expression

import (
	"fmt"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

// ColExpr is a column reference (spec §3). DbName/TabName are the
// optional qualifiers as written in the query; TabRef is set by the
// binder once the reference resolves. IsParameter is true iff the
// reference resolved in an enclosing scope (a correlated reference);
// IsVisible false marks an output-list entry injected only to carry a
// correlated value outward (spec §4.2's add_outer_refs_to_output).
type ColExpr struct {
	base
	DbName      string
	TabName     string
	ColName     string
	TabRef      sql.TableRef
	IsParameter bool
	IsVisible   bool
}

// NewColExpr creates an unbound column reference as produced by the
// parser; TabRef is filled in by the binder.
func NewColExpr(dbName, tabName, colName string) *ColExpr {
	return &ColExpr{DbName: dbName, TabName: tabName, ColName: colName, IsVisible: true}
}

func (c *ColExpr) String() string {
	switch {
	case c.TabName != "" && c.DbName != "":
		return fmt.Sprintf("%s.%s.%s", c.DbName, c.TabName, c.ColName)
	case c.TabName != "":
		return fmt.Sprintf("%s.%s", c.TabName, c.ColName)
	default:
		return c.ColName
	}
}

func (c *ColExpr) Children() []sql.Expr { return nil }

func (c *ColExpr) WithChildren(children ...sql.Expr) (sql.Expr, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidType.New("ColExpr takes no children")
	}
	return c, nil
}

// MatchesAlias overrides base: an unqualified column reference is
// itself the way ORDER BY/GROUP BY spell a reference to an earlier "AS
// alias" selection item, so it matches by its own column name too.
func (c *ColExpr) MatchesAlias(name string) bool {
	if c.base.MatchesAlias(name) {
		return true
	}
	return c.TabName == "" && c.ColName == name
}

func (c *ColExpr) Clone() sql.Expr {
	clone := *c
	return &clone
}
