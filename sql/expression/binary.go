package expression

import (
	"fmt"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

// BinaryExpr covers comparison and arithmetic operators: =, <>, <, >,
// <=, >=, +, -, *, /, %, LIKE. BETWEEN is desugared at parse time into
// two BinaryExprs joined by a LogicExpr (spec §4.1).
type BinaryExpr struct {
	base
	Op          string
	Left, Right sql.Expr
}

func NewBinaryExpr(op string, left, right sql.Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right}
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

func (b *BinaryExpr) Children() []sql.Expr { return []sql.Expr{b.Left, b.Right} }

func (b *BinaryExpr) WithChildren(children ...sql.Expr) (sql.Expr, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidType.New("BinaryExpr takes exactly two children")
	}
	c := *b
	c.Left, c.Right = children[0], children[1]
	return &c, nil
}

func (b *BinaryExpr) Clone() sql.Expr {
	c := *b
	c.Left = b.Left.Clone()
	c.Right = b.Right.Clone()
	return &c
}
