package expression

import (
	"fmt"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

// LogicExpr is AND/OR (spec §3).
type LogicExpr struct {
	base
	Op          string // "AND" or "OR"
	Left, Right sql.Expr
}

func NewAnd(left, right sql.Expr) *LogicExpr { return &LogicExpr{Op: "AND", Left: left, Right: right} }
func NewOr(left, right sql.Expr) *LogicExpr  { return &LogicExpr{Op: "OR", Left: left, Right: right} }

func (l *LogicExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", l.Left.String(), l.Op, l.Right.String())
}

func (l *LogicExpr) Children() []sql.Expr { return []sql.Expr{l.Left, l.Right} }

func (l *LogicExpr) WithChildren(children ...sql.Expr) (sql.Expr, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidType.New("LogicExpr takes exactly two children")
	}
	c := *l
	c.Left, c.Right = children[0], children[1]
	return &c, nil
}

func (l *LogicExpr) Clone() sql.Expr {
	c := *l
	c.Left = l.Left.Clone()
	c.Right = l.Right.Clone()
	return &c
}

// NewBetween desugars `a BETWEEN b AND c` into `(a >= b) AND (a <= c)`
// at parse time, per spec §4.1.
func NewBetween(a, b, c sql.Expr) sql.Expr {
	return NewAnd(
		NewBinaryExpr(">=", a.Clone(), b),
		NewBinaryExpr("<=", a.Clone(), c),
	)
}

// Conjunction folds a non-empty list of predicates into a single AND
// tree, left-associative. Used by the planner to combine a JoinQuery's
// constraint list into one filter expression (spec §4.5).
func Conjunction(exprs ...sql.Expr) sql.Expr {
	if len(exprs) == 0 {
		return nil
	}
	result := exprs[0]
	for _, e := range exprs[1:] {
		result = NewAnd(result, e)
	}
	return result
}
