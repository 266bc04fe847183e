package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
	"gopkg.in/src-d/go-mysql-server.v0/sql/expression"
)

func testTableDef() *sql.TableDef {
	return &sql.TableDef{
		Name: "a",
		Columns: []sql.ColumnDef{
			{Name: "a1", Type: sql.Type{Kind: sql.TypeInt}},
			{Name: "a2", Type: sql.Type{Kind: sql.TypeInt}},
		},
	}
}

func TestBaseTableRefAllColumnRefs(t *testing.T) {
	ref := NewBaseTableRef("", "a", "b", testTableDef())
	cols, err := ref.AllColumnRefs()
	require.NoError(t, err)
	require.Len(t, cols, 2)
	require.Equal(t, "a1", cols[0].OutputName())
	require.Same(t, ref, cols[0].(*expression.ColExpr).TabRef)
	require.Equal(t, "a AS b", ref.String())
}

func TestBaseTableRefDefaultAlias(t *testing.T) {
	ref := NewBaseTableRef("", "a", "", testTableDef())
	require.Equal(t, "a", ref.Alias())
	require.Equal(t, "a", ref.String())
}

func TestLocateColumnAmbiguous(t *testing.T) {
	def := &sql.TableDef{
		Name: "a",
		Columns: []sql.ColumnDef{
			{Name: "x", Type: sql.Type{Kind: sql.TypeInt}},
			{Name: "x", Type: sql.Type{Kind: sql.TypeInt}},
		},
	}
	ref := NewBaseTableRef("", "a", "", def)
	_, err := ref.LocateColumn("x")
	require.Error(t, err)
	require.True(t, sql.ErrAmbiguousColumnName.Is(err))
}

func TestLocateColumnMiss(t *testing.T) {
	ref := NewBaseTableRef("", "a", "", testTableDef())
	col, err := ref.LocateColumn("nope")
	require.NoError(t, err)
	require.Nil(t, col)
}

func TestFromQueryRefRenameOverflow(t *testing.T) {
	inner := NewSelectStmt()
	inner.Selection = []sql.Expr{expression.NewColExpr("", "", "a3")}

	ref := NewFromQueryRef("b", inner, []string{"a4", "a5"})
	_, err := ref.AllColumnRefs()
	require.Error(t, err)
	require.True(t, sql.ErrColumnRenameOverflow.Is(err))
}

func TestFromQueryRefRenameResolvesFirstColumn(t *testing.T) {
	// select a4 from (select a3, a4 from a) b(a4);
	col1 := expression.NewColExpr("", "", "a3")
	col1.SetOutputName("a3")
	col2 := expression.NewColExpr("", "", "a4")
	col2.SetOutputName("a4")

	inner := NewSelectStmt()
	inner.Selection = []sql.Expr{col1, col2}

	ref := NewFromQueryRef("b", inner, []string{"a4"})
	cols, err := ref.AllColumnRefs()
	require.NoError(t, err)
	require.Len(t, cols, 1)
	require.Equal(t, "a4", cols[0].OutputName())
	// resolves to the FIRST inner column (a3), renamed to a4
	require.Equal(t, "a3", cols[0].(*expression.ColExpr).ColName)
}

func TestJoinQueryRefAllColumnRefsConcatenates(t *testing.T) {
	a := NewBaseTableRef("", "a", "", testTableDef())
	b := NewBaseTableRef("", "b", "", testTableDef())
	j := NewJoinQueryRef([]sql.TableRef{a, b}, []string{"inner"}, []sql.Expr{
		expression.NewBinaryExpr("=", expression.NewColExpr("", "a", "a1"), expression.NewColExpr("", "b", "a1")),
	})

	cols, err := j.AllColumnRefs()
	require.NoError(t, err)
	require.Len(t, cols, 4)
	require.Equal(t, "a", j.Alias())
}

func TestAddOuterRefsToOutputDeduplicatesByIdentity(t *testing.T) {
	ref := NewBaseTableRef("", "a", "", testTableDef())
	col := expression.NewColExpr("", "a", "a1")
	col.IsParameter = true

	ref.AddColRefBySubq(col)
	ref.AddColRefBySubq(col) // duplicate, same identity

	require.Len(t, ref.ColsRefBySubq(), 1)

	output := ref.AddOuterRefsToOutput(nil)
	require.Len(t, output, 1)
	added := output[0].(*expression.ColExpr)
	require.False(t, added.IsVisible)
	require.False(t, added.IsParameter)
}
