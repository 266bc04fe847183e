package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

func TestNewCaseExprSearched(t *testing.T) {
	// CASE WHEN a THEN 1 WHEN b THEN 2 END
	when1 := NewLiteral(true, sql.Type{})
	then1 := NewLiteral(1, sql.Type{})
	when2 := NewLiteral(false, sql.Type{})
	then2 := NewLiteral(2, sql.Type{})

	c, err := NewCaseExpr([]sql.Expr{when1, then1, when2, then2}, false)
	require.NoError(t, err)
	require.Nil(t, c.Eval)
	require.Nil(t, c.Else)
	require.Len(t, c.Whens, 2)
	require.Len(t, c.Thens, 2)
}

func TestNewCaseExprWithEval(t *testing.T) {
	// CASE x WHEN 1 THEN 'one' ELSE 'other' END
	eval := NewLiteral(1, sql.Type{})
	when := NewLiteral(1, sql.Type{})
	then := NewLiteral("one", sql.Type{})
	elseExpr := NewLiteral("other", sql.Type{})

	c, err := NewCaseExpr([]sql.Expr{eval, when, then, elseExpr}, true)
	require.NoError(t, err)
	require.Equal(t, eval, c.Eval)
	require.Equal(t, elseExpr, c.Else)
	require.Len(t, c.Whens, 1)
	require.Len(t, c.Thens, 1)
}

func TestNewCaseExprMalformed(t *testing.T) {
	// a lone WHEN with no THEN: parity is broken, must surface as syntax
	when := NewLiteral(true, sql.Type{})
	_, err := NewCaseExpr([]sql.Expr{when}, false)
	require.Error(t, err)
	require.True(t, sql.ErrSyntax.Is(err))
}

func TestNewCaseExprEmpty(t *testing.T) {
	_, err := NewCaseExpr(nil, false)
	require.Error(t, err)
	require.True(t, sql.ErrSyntax.Is(err))
}

func TestCaseExprCloneAndWithChildren(t *testing.T) {
	eval := NewLiteral(1, sql.Type{})
	when := NewLiteral(1, sql.Type{})
	then := NewLiteral("one", sql.Type{})
	elseExpr := NewLiteral("other", sql.Type{})

	c, err := NewCaseExpr([]sql.Expr{eval, when, then, elseExpr}, true)
	require.NoError(t, err)

	clone := c.Clone()
	require.Equal(t, c.String(), clone.String())

	rebuilt, err := c.WithChildren(c.Children()...)
	require.NoError(t, err)
	require.Equal(t, c.String(), rebuilt.String())
}
