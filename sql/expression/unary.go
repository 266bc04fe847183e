package expression

import (
	"fmt"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

// UnaryExpr covers prefix/postfix single-operand operators: NOT, unary
// minus, IS NULL, IS NOT NULL.
type UnaryExpr struct {
	base
	Op    string
	Child sql.Expr
}

func NewUnaryExpr(op string, child sql.Expr) *UnaryExpr {
	return &UnaryExpr{Op: op, Child: child}
}

func (u *UnaryExpr) String() string {
	switch u.Op {
	case "IS NULL", "IS NOT NULL":
		return fmt.Sprintf("%s %s", u.Child.String(), u.Op)
	default:
		return fmt.Sprintf("%s(%s)", u.Op, u.Child.String())
	}
}

func (u *UnaryExpr) Children() []sql.Expr { return []sql.Expr{u.Child} }

func (u *UnaryExpr) WithChildren(children ...sql.Expr) (sql.Expr, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidType.New("UnaryExpr takes exactly one child")
	}
	c := *u
	c.Child = children[0]
	return &c, nil
}

func (u *UnaryExpr) Clone() sql.Expr {
	c := *u
	c.Child = u.Child.Clone()
	return &c
}
