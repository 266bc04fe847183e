package planbuilder

import (
	"gopkg.in/src-d/go-mysql-server.v0/sql"
	"gopkg.in/src-d/go-mysql-server.v0/sql/expression"
	"gopkg.in/src-d/go-mysql-server.v0/sql/plan"
)

// bindExpr recursively binds expr against ctx, dispatching on variant.
// Most variants only need their children bound and Bounded set, so the
// default case handles them uniformly through Children/WithChildren;
// ColExpr and SubqueryExpr need variant-specific resolution.
func (b *Builder) bindExpr(expr sql.Expr, ctx *sql.BindContext) (sql.Expr, error) {
	switch e := expr.(type) {
	case *expression.ColExpr:
		return b.bindColExpr(e, ctx)
	case *expression.SubqueryExpr:
		return b.bindSubquery(e, ctx)
	case *expression.SelStar:
		// SelStar only appears validly as a direct selection item;
		// bindSelection strips it before any child expression ever
		// reaches bindExpr. Finding one here means the AST nested a star
		// somewhere else, e.g. inside a function call argument.
		return nil, sql.ErrSyntax.New("* is only valid as a top-level selection item")
	default:
		return b.bindChildren(expr, ctx)
	}
}

// bindChildren binds every child of expr in place and reattaches them
// via WithChildren, then marks the result bounded. A leaf (nil
// Children, e.g. Literal or an ordinal OrderTerm) is just marked
// bounded directly.
func (b *Builder) bindChildren(expr sql.Expr, ctx *sql.BindContext) (sql.Expr, error) {
	children := expr.Children()
	if len(children) == 0 {
		expr.SetBounded(true)
		return expr, nil
	}

	bound := make([]sql.Expr, len(children))
	for i, c := range children {
		boundChild, err := b.bindExpr(c, ctx)
		if err != nil {
			return nil, err
		}
		bound[i] = boundChild
	}

	rebuilt, err := expr.WithChildren(bound...)
	if err != nil {
		return nil, err
	}
	rebuilt.SetBounded(true)
	return rebuilt, nil
}

// bindColExpr implements spec §4.4's column-resolution rule. A
// qualified reference (tab_name given) looks up the alias by walking
// the parent chain and marks is_parameter/cols_ref_by_subq when the
// match came from a strict ancestor; an unqualified reference only
// scans the current scope's tables, per spec, and can never be
// correlated.
func (b *Builder) bindColExpr(e *expression.ColExpr, ctx *sql.BindContext) (sql.Expr, error) {
	clone := *e

	if e.TabName != "" {
		ref, fromAncestor, ok := ctx.LookupTable(e.TabName)
		if !ok {
			return nil, sql.ErrTableNotFound.New(e.TabName)
		}
		col, err := ref.LocateColumn(e.ColName)
		if err != nil {
			return nil, err
		}
		if col == nil {
			return nil, sql.ErrTableColumnNotFound.New(e.TabName, e.ColName)
		}
		clone.TabRef = ref
		clone.IsParameter = fromAncestor
		clone.SetBounded(true)
		if fromAncestor {
			ref.AddColRefBySubq(&clone)
		}
		return &clone, nil
	}

	_, ref, err := ctx.ResolveColumn(e.ColName)
	if err != nil {
		return nil, err
	}
	clone.TabRef = ref
	clone.SetBounded(true)
	return &clone, nil
}

// bindSubquery binds the inner statement under a fresh context chained
// to ctx (so it may correlate to outer tables) and, for the IN variant,
// binds the left-hand expression too. The inner statement's own
// logic_plan is populated later, during create_plan (spec §9).
//
// Unlike bindColExpr, this binds e in place rather than returning a
// clone: create_subquery_plans later sets LogicPlan on whatever
// SubqueryExpr instance ends up in the bound tree, and callers that
// hold onto their own *SubqueryExpr pointer (e.g. one built by hand and
// threaded into a WHERE clause) need that same instance mutated so they
// can observe LogicPlan once planning finishes.
func (b *Builder) bindSubquery(e *expression.SubqueryExpr, ctx *sql.BindContext) (sql.Expr, error) {
	inner, ok := e.Query.(*plan.SelectStmt)
	if !ok {
		return nil, sql.ErrInvalidType.New("SubqueryExpr.Query must be a *plan.SelectStmt")
	}
	if _, err := b.Bind(inner, ctx); err != nil {
		return nil, err
	}

	if e.Left != nil {
		left, err := b.bindExpr(e.Left, ctx)
		if err != nil {
			return nil, err
		}
		e.Left = left
	}
	e.SetBounded(true)
	return e, nil
}
