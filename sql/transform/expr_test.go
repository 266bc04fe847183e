package transform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
	"gopkg.in/src-d/go-mysql-server.v0/sql/expression"
	"gopkg.in/src-d/go-mysql-server.v0/sql/transform"
)

func TestSearchReplaceByAlias(t *testing.T) {
	// ORDER BY alias1+b, referring back to a1*5 AS alias1
	selItem := expression.NewBinaryExpr("*", expression.NewColExpr("", "", "a1"), expression.NewLiteral(5, sql.Type{}))
	selItem.SetExprAlias("alias1")

	orderExpr := expression.NewBinaryExpr("+", expression.NewColExpr("", "", "alias1"), expression.NewColExpr("", "", "b"))

	replaced, err := transform.SearchReplace(orderExpr, "alias1", selItem)
	require.NoError(t, err)
	require.Equal(t, "((a1 * 5) + b)", replaced.String())
}

func TestSearchReplaceIsIdempotent(t *testing.T) {
	selItem := expression.NewColExpr("", "", "a1")
	selItem.SetExprAlias("x")

	target := expression.NewColExpr("", "", "x")

	once, err := transform.SearchReplace(target, "x", selItem)
	require.NoError(t, err)

	twice, err := transform.SearchReplace(once, "x", selItem)
	require.NoError(t, err)

	require.Equal(t, once.String(), twice.String())
}

func TestVisitEachPreOrder(t *testing.T) {
	left := expression.NewColExpr("", "", "a")
	right := expression.NewColExpr("", "", "b")
	bin := expression.NewBinaryExpr("+", left, right)

	var visited []sql.Expr
	transform.VisitEach(bin, func(e sql.Expr) { visited = append(visited, e) })

	require.Len(t, visited, 3)
	require.Same(t, bin, visited[0])
}

func TestHasSubqueryAndHasAggFunc(t *testing.T) {
	agg := expression.NewAggFunc("sum", false, []sql.Expr{expression.NewColExpr("", "", "x")})
	plusOne := expression.NewBinaryExpr("+", agg, expression.NewLiteral(1, sql.Type{}))

	require.True(t, transform.HasAggFunc(plusOne, expression.IsAggFuncExpr))
	require.False(t, transform.HasSubquery(plusOne, expression.IsSubqueryExpr))
}
