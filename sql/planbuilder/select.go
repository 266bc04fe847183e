package planbuilder

import (
	"fmt"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
	"gopkg.in/src-d/go-mysql-server.v0/sql/expression"
	"gopkg.in/src-d/go-mysql-server.v0/sql/plan"
)

// bindSelect implements spec §4.4's fixed binding order for a single
// core SELECT: alias rewrite, FROM, selection list, WHERE/GROUP/HAVING/
// ORDER. Builder.Bind sets stmt.IsBounded once this returns cleanly.
func (b *Builder) bindSelect(stmt *plan.SelectStmt, ctx *sql.BindContext) error {
	for i, g := range stmt.GroupBy {
		stmt.GroupBy[i] = replaceOutputNameToExpr(g, stmt.Selection)
	}
	for _, o := range stmt.OrderBy {
		if o.Target != nil {
			o.Target = replaceOutputNameToExpr(o.Target, stmt.Selection)
		}
	}

	if err := b.bindFrom(stmt, ctx); err != nil {
		return err
	}

	if err := b.bindSelection(stmt, ctx); err != nil {
		return err
	}

	if stmt.Where != nil {
		where, err := b.bindExpr(stmt.Where, ctx)
		if err != nil {
			return err
		}
		stmt.Where = where
	}

	for i, g := range stmt.GroupBy {
		bound, err := b.bindExpr(g, ctx)
		if err != nil {
			return err
		}
		stmt.GroupBy[i] = bound
	}

	if stmt.Having != nil {
		having, err := b.bindExpr(stmt.Having, ctx)
		if err != nil {
			return err
		}
		stmt.Having = having
	}

	for _, o := range stmt.OrderBy {
		if o.Target != nil {
			bound, err := b.bindExpr(o.Target, ctx)
			if err != nil {
				return err
			}
			o.Target = bound
		}
	}

	return nil
}

// replaceOutputNameToExpr implements spec §4.4 step 1: for every
// selection item with a non-null alias, substitute the alias in target
// by the selection item itself. This lets ORDER BY alias1+b refer back
// to a1*5 AS alias1. Running it twice yields a structurally equal tree:
// the clones the first pass inserted still carry their alias, so the
// second pass replaces each with another clone of the same selection
// item, matching spec §8's idempotency law.
func replaceOutputNameToExpr(target sql.Expr, selection []sql.Expr) sql.Expr {
	for _, s := range selection {
		alias := s.ExprAlias()
		if alias == "" {
			continue
		}
		target = expression.SearchReplace(target, alias, s)
	}
	return target
}

// bindFrom implements spec §4.4 step 2: materialize CTEs against the
// current context (so later CTEs and the main body can see earlier
// ones), then resolve and register every FROM item.
func (b *Builder) bindFrom(stmt *plan.SelectStmt, ctx *sql.BindContext) error {
	for _, cte := range stmt.CTEs {
		if _, err := b.Bind(cte.Query, ctx); err != nil {
			return err
		}
		ref := plan.NewCTEQueryRef(cte.Name, cte.Query, cte.ColNames)
		stmt.CTEFromRefs = append(stmt.CTEFromRefs, ref)
	}

	for i, item := range stmt.From {
		resolved, err := b.bindFromItem(item, ctx)
		if err != nil {
			return err
		}
		stmt.From[i] = resolved
	}
	return nil
}

// bindFromItem resolves one FROM item and registers it (and, for a
// JoinQueryRef, each of its constituents) in ctx. A JoinQueryRef is
// never itself added to ctx: its constituent tables are, so a
// qualified reference such as b.b1 resolves LookupTable("b") straight
// to the constituent rather than to the compound join.
func (b *Builder) bindFromItem(item sql.TableRef, ctx *sql.BindContext) (sql.TableRef, error) {
	switch t := item.(type) {
	case *plan.BaseTableRef:
		resolved, err := b.resolveBaseTable(t, ctx)
		if err != nil {
			return nil, err
		}
		if err := ctx.AddTable(resolved); err != nil {
			return nil, err
		}
		return resolved, nil

	case *plan.ExternalTableRef:
		if err := ctx.AddTable(t); err != nil {
			return nil, err
		}
		return t, nil

	case *plan.FromQueryRef:
		if _, err := b.Bind(t.Inner, ctx); err != nil {
			return nil, err
		}
		if err := ctx.AddTable(t); err != nil {
			return nil, err
		}
		return t, nil

	case *plan.JoinQueryRef:
		for i, sub := range t.Tables {
			resolved, err := b.bindFromItem(sub, ctx)
			if err != nil {
				return nil, err
			}
			t.Tables[i] = resolved
		}
		for i, c := range t.Constraints {
			bound, err := b.bindExpr(c, ctx)
			if err != nil {
				return nil, err
			}
			t.Constraints[i] = bound
		}
		return t, nil

	default:
		return nil, sql.ErrNotImplemented.New(fmt.Sprintf("FROM item of type %T", item))
	}
}

// resolveBaseTable implements spec §4.4's "table not in the catalog"
// fallback: a BaseTableRef whose name the catalog does not recognize is
// replaced by the CTEQueryRef sharing its alias, found by walking the
// parent chain (via BindContext.LookupCTE, which starts its own search
// at ctx so a CTE materialized earlier in this same WITH clause is
// visible too).
func (b *Builder) resolveBaseTable(t *plan.BaseTableRef, ctx *sql.BindContext) (sql.TableRef, error) {
	if def := ctx.Catalog.TryTable(t.TabName); def != nil {
		t.Def = def
		return t, nil
	}
	if cte, ok := ctx.LookupCTE(t.Alias()); ok {
		return cte, nil
	}
	return nil, sql.ErrTableNotFound.New(t.TabName)
}

// bindSelection implements spec §4.4 step 3: bind every non-star
// selection item, tracking HasAgg, then splice each SelStar's
// expansion into the same position (order preserved).
func (b *Builder) bindSelection(stmt *plan.SelectStmt, ctx *sql.BindContext) error {
	result := make([]sql.Expr, 0, len(stmt.Selection))
	for _, item := range stmt.Selection {
		if star, ok := item.(*expression.SelStar); ok {
			expanded, err := b.expandStar(star, ctx)
			if err != nil {
				return err
			}
			result = append(result, expanded...)
			continue
		}

		bound, err := b.bindExpr(item, ctx)
		if err != nil {
			return err
		}
		if expression.HasAggFunc(bound) {
			stmt.HasAgg = true
		}
		result = append(result, bound)
	}
	stmt.Selection = result
	return nil
}

// expandStar implements spec §4.2's SelStar splice: table-qualified
// expands to that ref's own exports, unqualified concatenates every
// in-scope ref's exports in FROM order.
func (b *Builder) expandStar(star *expression.SelStar, ctx *sql.BindContext) ([]sql.Expr, error) {
	if star.TabName != "" {
		ref, _, ok := ctx.LookupTable(star.TabName)
		if !ok {
			return nil, sql.ErrTableNotFound.New(star.TabName)
		}
		return ref.AllColumnRefs()
	}

	var cols []sql.Expr
	for _, t := range ctx.Tables() {
		exports, err := t.AllColumnRefs()
		if err != nil {
			return nil, err
		}
		cols = append(cols, exports...)
	}
	return cols, nil
}
