package expression

import (
	"gopkg.in/src-d/go-mysql-server.v0/sql"
	"gopkg.in/src-d/go-mysql-server.v0/sql/transform"
)

// VisitEach performs the pre-order traversal of spec §4.1's
// visit_each, calling f on expr and every descendant.
func VisitEach(expr sql.Expr, f func(sql.Expr)) {
	transform.VisitEach(expr, f)
}

// HasSubquery reports whether expr or any descendant is a
// SubqueryExpr (spec §4.1).
func HasSubquery(expr sql.Expr) bool {
	return transform.HasSubquery(expr, IsSubqueryExpr)
}

// HasAggFunc reports whether expr or any descendant is an AggFunc
// (spec §4.1).
func HasAggFunc(expr sql.Expr) bool {
	return transform.HasAggFunc(expr, IsAggFuncExpr)
}

// SearchReplace returns a new tree with every sub-expression for which
// MatchesAlias(name) holds (an ExprAlias equal to name, or an
// unqualified column reference named name) replaced by a clone of repl
// (spec §4.1).
func SearchReplace(expr sql.Expr, name string, repl sql.Expr) sql.Expr {
	replaced, err := transform.SearchReplace(expr, name, repl)
	if err != nil {
		// WithChildren on these variants only fails on arity mismatches,
		// which SearchReplace's rebuild never produces (it always passes
		// back exactly as many children as it read).
		panic(err)
	}
	return replaced
}
