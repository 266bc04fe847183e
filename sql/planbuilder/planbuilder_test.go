package planbuilder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.in/src-d/go-mysql-server.v0/memory"
	"gopkg.in/src-d/go-mysql-server.v0/sql"
	"gopkg.in/src-d/go-mysql-server.v0/sql/expression"
	"gopkg.in/src-d/go-mysql-server.v0/sql/plan"
)

func testCatalog() *memory.Catalog {
	cat := memory.NewCatalog("test")
	cat.AddTable(&sql.TableDef{
		Name: "a",
		Columns: []sql.ColumnDef{
			{Name: "a1", Type: sql.Type{Kind: sql.TypeInt}},
			{Name: "a2", Type: sql.Type{Kind: sql.TypeInt}},
		},
	})
	cat.AddTable(&sql.TableDef{
		Name: "b",
		Columns: []sql.ColumnDef{
			{Name: "b1", Type: sql.Type{Kind: sql.TypeInt}},
		},
	})
	cat.AddTable(&sql.TableDef{
		Name: "c",
		Columns: []sql.ColumnDef{
			{Name: "c2", Type: sql.Type{Kind: sql.TypeInt}},
		},
	})
	cat.AddTable(&sql.TableDef{
		Name: "A",
		Columns: []sql.ColumnDef{
			{Name: "i", Type: sql.Type{Kind: sql.TypeInt}},
		},
	})
	return cat
}

// boundary scenario 1: select b.a1 from a b;
func TestBindAliasResolves(t *testing.T) {
	stmt := plan.NewSelectStmt()
	stmt.Selection = []sql.Expr{expression.NewColExpr("", "b", "a1")}
	stmt.From = []sql.TableRef{plan.NewBaseTableRef("", "a", "b", nil)}

	b := NewBuilder(testCatalog())
	_, err := b.Bind(stmt, nil)
	require.NoError(t, err)

	node, err := b.CreatePlan(stmt)
	require.NoError(t, err)
	require.Equal(t, "Scan(a AS b)\n", node.String())
}

// boundary scenario 2: select a.a1 from a b; -> alias b hides a
func TestBindAliasHidesRealName(t *testing.T) {
	stmt := plan.NewSelectStmt()
	stmt.Selection = []sql.Expr{expression.NewColExpr("", "a", "a1")}
	stmt.From = []sql.TableRef{plan.NewBaseTableRef("", "a", "b", nil)}

	b := NewBuilder(testCatalog())
	_, err := b.Bind(stmt, nil)
	require.Error(t, err)
	require.True(t, sql.ErrTableNotFound.Is(err))
}

// boundary scenario 3, over table a's own columns:
// select a4 from (select a1, a2 from a) b(a4);
func TestBindFromQueryRenameResolvesFirstColumn(t *testing.T) {
	inner := plan.NewSelectStmt()
	inner.Selection = []sql.Expr{
		expression.NewColExpr("", "", "a1"),
		expression.NewColExpr("", "", "a2"),
	}
	inner.From = []sql.TableRef{plan.NewBaseTableRef("", "a", "", nil)}

	outer := plan.NewSelectStmt()
	outer.Selection = []sql.Expr{expression.NewColExpr("", "", "a4")}
	outer.From = []sql.TableRef{plan.NewFromQueryRef("b", inner, []string{"a4"})}

	builder := NewBuilder(testCatalog())
	_, err := builder.Bind(outer, nil)
	require.NoError(t, err)

	require.Len(t, outer.Selection, 1)
	resolved := outer.Selection[0].(*expression.ColExpr)
	// unqualified resolution only records which TableRef exports the
	// name (spec's column-resolution rule); the written name "a4" is
	// left untouched even though it maps to the inner ref's "a1".
	require.Equal(t, "a4", resolved.ColName)
	require.Same(t, outer.From[0], resolved.TabRef)
}

// boundary scenario 4: with d as (select 1 as x) select x from d;
// The CTE is named d because the test catalog already has a table c,
// and a catalog table takes precedence over a CTE of the same name.
func TestBindCTELookup(t *testing.T) {
	cteQuery := plan.NewSelectStmt()
	one := expression.NewLiteral(1, sql.Type{Kind: sql.TypeInt})
	one.SetExprAlias("x")
	one.SetOutputName("x")
	cteQuery.Selection = []sql.Expr{one}

	stmt := plan.NewSelectStmt()
	stmt.CTEs = []*plan.CTEDef{{Name: "d", Query: cteQuery}}
	stmt.Selection = []sql.Expr{expression.NewColExpr("", "", "x")}
	stmt.From = []sql.TableRef{plan.NewBaseTableRef("", "d", "", nil)}

	builder := NewBuilder(testCatalog())
	_, err := builder.Bind(stmt, nil)
	require.NoError(t, err)

	require.IsType(t, &plan.CTEQueryRef{}, stmt.From[0])
}

// boundary scenario 5: from a join b on a1=b1 join c on a2=c2
func TestPlanJoinQueryFoldsLeftDeep(t *testing.T) {
	a := plan.NewBaseTableRef("", "a", "", nil)
	bTab := plan.NewBaseTableRef("", "b", "", nil)
	cTab := plan.NewBaseTableRef("", "c", "", nil)

	joinRef := plan.NewJoinQueryRef(
		[]sql.TableRef{a, bTab, cTab},
		[]string{"inner", "inner"},
		[]sql.Expr{
			expression.NewBinaryExpr("=", expression.NewColExpr("", "a", "a1"), expression.NewColExpr("", "b", "b1")),
			expression.NewBinaryExpr("=", expression.NewColExpr("", "a", "a2"), expression.NewColExpr("", "c", "c2")),
		},
	)

	stmt := plan.NewSelectStmt()
	stmt.Selection = []sql.Expr{expression.NewSelStar("")}
	stmt.From = []sql.TableRef{joinRef}

	builder := NewBuilder(testCatalog())
	_, err := builder.Bind(stmt, nil)
	require.NoError(t, err)

	node, err := builder.CreatePlan(stmt)
	require.NoError(t, err)

	filter, ok := node.(*plan.LogicFilter)
	require.True(t, ok)
	require.Equal(t, "((a.a1 = b.b1) AND (a.a2 = c.c2))", filter.Predicate.String())

	join, ok := filter.Child.(*plan.LogicJoin)
	require.True(t, ok)
	innerJoin, ok := join.Left.(*plan.LogicJoin)
	require.True(t, ok)
	require.IsType(t, &plan.LogicScanTable{}, innerJoin.Left)
	require.IsType(t, &plan.LogicScanTable{}, innerJoin.Right)
	require.IsType(t, &plan.LogicScanTable{}, join.Right)
}

// boundary scenario 6: select i, min(i/2), 2+min(i)+max(i) from A group by i
func TestGetAggregationsDedupAndWholeExpr(t *testing.T) {
	i := expression.NewColExpr("", "", "i")
	minHalf := expression.NewAggFunc("min", false, []sql.Expr{
		expression.NewBinaryExpr("/", expression.NewColExpr("", "", "i"), expression.NewLiteral(2, sql.Type{})),
	})
	minI := expression.NewAggFunc("min", false, []sql.Expr{expression.NewColExpr("", "", "i")})
	maxI := expression.NewAggFunc("max", false, []sql.Expr{expression.NewColExpr("", "", "i")})
	combined := expression.NewBinaryExpr("+",
		expression.NewBinaryExpr("+", expression.NewLiteral(2, sql.Type{}), minI),
		maxI,
	)

	stmt := plan.NewSelectStmt()
	stmt.Selection = []sql.Expr{i, minHalf, combined}
	stmt.From = []sql.TableRef{plan.NewBaseTableRef("", "A", "", nil)}
	stmt.GroupBy = []sql.Expr{expression.NewColExpr("", "", "i")}

	builder := NewBuilder(testCatalog())
	_, err := builder.Bind(stmt, nil)
	require.NoError(t, err)
	require.True(t, stmt.HasAgg)

	node, err := builder.CreatePlan(stmt)
	require.NoError(t, err)

	agg, ok := node.(*plan.LogicAgg)
	require.True(t, ok)
	require.Len(t, agg.Aggregates, 2)
	require.Equal(t, "min((i / 2))", agg.Aggregates[0].String())
	require.Equal(t, "((2 + min(i)) + max(i))", agg.Aggregates[1].String())
}

// end-to-end parity sample, a smaller stand-in for the TPC-H Q18-style
// query: a single-table scan with an IN (subquery) in WHERE, GROUP BY,
// ORDER BY, LIMIT.
func TestEndToEndParityShape(t *testing.T) {
	// inner: select b1 from b group by b1 having min(b1) > 0
	innerAgg := expression.NewAggFunc("min", false, []sql.Expr{expression.NewColExpr("", "", "b1")})
	inner := plan.NewSelectStmt()
	inner.Selection = []sql.Expr{expression.NewColExpr("", "", "b1")}
	inner.From = []sql.TableRef{plan.NewBaseTableRef("", "b", "", nil)}
	inner.GroupBy = []sql.Expr{expression.NewColExpr("", "", "b1")}
	inner.Having = expression.NewBinaryExpr(">", innerAgg, expression.NewLiteral(0, sql.Type{}))

	subq := expression.NewInSubquery(expression.NewColExpr("", "a", "a1"), inner)

	outer := plan.NewSelectStmt()
	outer.Selection = []sql.Expr{
		expression.NewColExpr("", "a", "a1"),
		expression.NewAggFunc("sum", false, []sql.Expr{expression.NewColExpr("", "a", "a2")}),
	}
	outer.From = []sql.TableRef{plan.NewBaseTableRef("", "a", "", nil)}
	outer.Where = subq
	outer.GroupBy = []sql.Expr{expression.NewColExpr("", "a", "a1")}
	outer.OrderBy = []*expression.OrderTerm{
		expression.NewOrderTerm(expression.NewColExpr("", "a", "a1"), true),
	}
	outer.Limit = expression.NewLiteral(100, sql.Type{Kind: sql.TypeInt})

	builder := NewBuilder(testCatalog())
	_, err := builder.Bind(outer, nil)
	require.NoError(t, err)

	node, err := builder.CreatePlan(outer)
	require.NoError(t, err)

	limit, ok := node.(*plan.LogicLimit)
	require.True(t, ok)
	order, ok := limit.Child.(*plan.LogicOrder)
	require.True(t, ok)
	agg, ok := order.Child.(*plan.LogicAgg)
	require.True(t, ok)
	filter, ok := agg.Child.(*plan.LogicFilter)
	require.True(t, ok)
	require.IsType(t, &plan.LogicScanTable{}, filter.Child)

	require.NotNil(t, subq.LogicPlan)
	innerAggNode, ok := subq.LogicPlan.(*plan.LogicAgg)
	require.True(t, ok)
	require.NotNil(t, innerAggNode.Having)
}
