package planbuilder

import (
	"fmt"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
	"gopkg.in/src-d/go-mysql-server.v0/sql/expression"
	"gopkg.in/src-d/go-mysql-server.v0/sql/plan"
)

// createPlan implements spec §4.5's create_plan: FROM normalization,
// then WHERE, GROUP/HAVING, ORDER and SELECT wrapping, in SQL
// evaluation order. stmt.LogicPlan is populated on success.
func (b *Builder) createPlan(stmt *plan.SelectStmt) (sql.LogicNode, error) {
	root, err := b.planFrom(stmt)
	if err != nil {
		return nil, err
	}

	if stmt.Where != nil {
		if err := b.createSubqueryPlans(stmt, stmt.Where); err != nil {
			return nil, err
		}
		root = plan.NewLogicFilter(root, stmt.Where)
	}

	if stmt.HasAgg || stmt.GroupBy != nil {
		aggs, err := getAggregations(stmt.Selection)
		if err != nil {
			return nil, err
		}
		if stmt.Having != nil {
			if err := b.createSubqueryPlans(stmt, stmt.Having); err != nil {
				return nil, err
			}
		}
		root = plan.NewLogicAgg(root, stmt.GroupBy, aggs, stmt.Having)
	}

	if len(stmt.OrderBy) > 0 {
		exprs := make([]sql.Expr, len(stmt.OrderBy))
		desc := make([]bool, len(stmt.OrderBy))
		for i, o := range stmt.OrderBy {
			if o.Target != nil {
				exprs[i] = o.Target
			} else {
				exprs[i] = o
			}
			desc[i] = o.Desc
		}
		root = plan.NewLogicOrder(root, exprs, desc)
	}

	for _, item := range stmt.Selection {
		if err := b.createSubqueryPlans(stmt, item); err != nil {
			return nil, err
		}
	}

	if stmt.Limit != nil {
		root = plan.NewLogicLimit(root, stmt.Limit)
	}

	stmt.LogicPlan = root
	return root, nil
}

// planFrom implements spec §4.5's FROM normalization: a scan/from-query
// plan per item, folded into a left-deep cross join when there is more
// than one, or LogicResult(selection_) when there are none at all.
func (b *Builder) planFrom(stmt *plan.SelectStmt) (sql.LogicNode, error) {
	if len(stmt.From) == 0 {
		return plan.NewLogicResult(stmt.Selection), nil
	}

	subplans := make([]sql.LogicNode, len(stmt.From))
	for i, item := range stmt.From {
		node, err := b.planFromItem(stmt, item)
		if err != nil {
			return nil, err
		}
		subplans[i] = node
	}

	if len(subplans) == 1 {
		return subplans[0], nil
	}
	return foldLeftDeepJoin(subplans), nil
}

// planFromItem builds the subplan for a single FROM item (spec §4.5).
func (b *Builder) planFromItem(stmt *plan.SelectStmt, item sql.TableRef) (sql.LogicNode, error) {
	switch t := item.(type) {
	case *plan.BaseTableRef:
		return plan.NewLogicScanTable(t), nil

	case *plan.ExternalTableRef:
		return plan.NewLogicScanFile(t), nil

	case *plan.FromQueryRef:
		return b.planQueryRef(stmt, t, t.Inner)

	case *plan.CTEQueryRef:
		return b.planQueryRef(stmt, t, t.Inner)

	case *plan.JoinQueryRef:
		return b.planJoinQuery(stmt, t)

	default:
		return nil, sql.ErrNotImplemented.New(fmt.Sprintf("planning FROM item of type %T", item))
	}
}

// planQueryRef recursively plans inner and wraps it in a LogicFromQuery
// under ref, recording the discovery in stmt's subqueries_/from_queries_
// bookkeeping (spec §3).
func (b *Builder) planQueryRef(stmt *plan.SelectStmt, ref sql.TableRef, inner *plan.SelectStmt) (sql.LogicNode, error) {
	innerPlan, err := b.createPlan(inner)
	if err != nil {
		return nil, err
	}
	node := plan.NewLogicFromQuery(ref, innerPlan)
	stmt.Subqueries = append(stmt.Subqueries, inner)
	stmt.FromQueries[inner] = node
	return node, nil
}

// planJoinQuery implements spec §4.5's JoinQuery normalization: fold
// the n sub-tables into a left-deep chain and wrap the whole thing in a
// single LogicFilter over the conjunction of every join constraint
// (spec §8 invariant I5, boundary scenario 5).
func (b *Builder) planJoinQuery(stmt *plan.SelectStmt, j *plan.JoinQueryRef) (sql.LogicNode, error) {
	subplans := make([]sql.LogicNode, len(j.Tables))
	for i, t := range j.Tables {
		node, err := b.planFromItem(stmt, t)
		if err != nil {
			return nil, err
		}
		subplans[i] = node
	}

	join := foldLeftDeepJoin(subplans)
	conj := expression.Conjunction(j.Constraints...)
	return plan.NewLogicFilter(join, conj), nil
}

// foldLeftDeepJoin folds subplans into a left-deep binary join tree:
// the first two form the initial join, and every subsequent item
// deepens the tree by joining the accumulated result with the next
// item (spec §8 boundary scenario 5: three tables a, b, c fold to
// Join(Join(a,b), c), not Join(c, Join(a,b))).
func foldLeftDeepJoin(subplans []sql.LogicNode) sql.LogicNode {
	var left, current sql.LogicNode
	for _, node := range subplans {
		switch {
		case left == nil:
			left = node
		case current == nil:
			current = plan.NewLogicJoin(left, node)
		default:
			current = plan.NewLogicJoin(current, node)
		}
	}
	if current == nil {
		return left
	}
	return current
}

// createSubqueryPlans implements spec §4.5's create_subquery_plans:
// visit expr, and for every SubqueryExpr discovered, recursively create
// the inner plan and record the inner statement in subqueries_.
func (b *Builder) createSubqueryPlans(stmt *plan.SelectStmt, expr sql.Expr) error {
	var firstErr error
	expression.VisitEach(expr, func(e sql.Expr) {
		if firstErr != nil {
			return
		}
		subq, ok := e.(*expression.SubqueryExpr)
		if !ok {
			return
		}
		inner, ok := subq.Query.(*plan.SelectStmt)
		if !ok {
			return
		}
		node, err := b.createPlan(inner)
		if err != nil {
			firstErr = err
			return
		}
		subq.LogicPlan = node
		stmt.Subqueries = append(stmt.Subqueries, inner)
	})
	return firstErr
}
