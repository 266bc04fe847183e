package sql

import (
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// BindContext is a lexically scoped symbol table (spec §3): it owns the
// statement it binds, an ordered list of in-scope TableRefs unique by
// alias, and a pointer to the parent context. The root context has
// Parent == nil.
type BindContext struct {
	Parent    *BindContext
	Statement Statement
	Catalog   Catalog

	tables []TableRef

	// id and log exist purely for the ambient tracing stack (embedded
	// scope identifier + structured debug logging, SPEC_FULL §2.2):
	// they carry no binding semantics.
	id  uuid.UUID
	log *logrus.Entry
}

// NewBindContext creates a fresh scope chained to parent, binding stmt
// against catalog.
func NewBindContext(parent *BindContext, stmt Statement, catalog Catalog) *BindContext {
	id := uuid.NewV4()
	ctx := &BindContext{Parent: parent, Statement: stmt, Catalog: catalog, id: id}
	ctx.log = logrus.WithField("scope", id.String())
	if parent != nil && catalog == nil {
		ctx.Catalog = parent.Catalog
	}
	return ctx
}

// Log returns the scope's debug logger.
func (c *BindContext) Log() *logrus.Entry { return c.log }

// Tables returns the TableRefs currently in scope, in FROM order.
func (c *BindContext) Tables() []TableRef { return c.tables }

// AddTable adds t to scope, failing with ErrDuplicateAliasOrTable if
// its alias collides with one already present (spec §3 invariant:
// "alias uniqueness within a single context").
func (c *BindContext) AddTable(t TableRef) error {
	for _, existing := range c.tables {
		if existing.Alias() == t.Alias() {
			return ErrDuplicateAliasOrTable.New(t.Alias())
		}
	}
	c.tables = append(c.tables, t)
	return nil
}

// LookupTable finds the TableRef with the given alias, walking the
// parent chain. It returns the TableRef, whether it was found in a
// strict ancestor (i.e. resolution is correlated), and whether it was
// found at all.
func (c *BindContext) LookupTable(alias string) (ref TableRef, fromAncestor bool, ok bool) {
	for ctx, depth := c, 0; ctx != nil; ctx, depth = ctx.Parent, depth+1 {
		for _, t := range ctx.tables {
			if t.Alias() == alias {
				return t, depth > 0, true
			}
		}
	}
	return nil, false, false
}

// LookupCTE finds a CTE-derived TableRef named alias, walking the
// parent chain through each statement's CTEFrom list (spec §3: "CTE
// aliases are looked up by walking the parent chain through each
// statement's cte_from list").
func (c *BindContext) LookupCTE(alias string) (TableRef, bool) {
	for ctx := c; ctx != nil; ctx = ctx.Parent {
		if ctx.Statement == nil {
			continue
		}
		for _, cte := range ctx.Statement.CTEFrom() {
			if cte.Alias() == alias {
				return cte, true
			}
		}
	}
	return nil, false
}

// ResolveColumn implements spec §4.4's ColExpr.bind column-resolution
// rule for the unqualified case: scan the current context's in-scope
// tables for a unique exporter of colName. It does not walk parents —
// unqualified references only search the immediate scope per spec
// (qualified references walk the parent chain via LookupTable instead).
func (c *BindContext) ResolveColumn(colName string) (Expr, TableRef, error) {
	var found Expr
	var foundRef TableRef
	for _, t := range c.tables {
		col, err := t.LocateColumn(colName)
		if err != nil {
			return nil, nil, err
		}
		if col == nil {
			continue
		}
		if found != nil {
			return nil, nil, ErrAmbiguousColumnName.New(colName, []string{foundRef.Alias(), t.Alias()})
		}
		found, foundRef = col, t
	}
	if found == nil {
		return nil, nil, ErrColumnNotFound.New(colName)
	}
	return found, foundRef, nil
}
