package expression

import (
	"fmt"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

// CastExpr is an explicit CAST(expr AS type).
type CastExpr struct {
	base
	Child sql.Expr
	Type  sql.Type
}

func NewCast(child sql.Expr, typ sql.Type) *CastExpr {
	return &CastExpr{Child: child, Type: typ}
}

func (c *CastExpr) String() string {
	return fmt.Sprintf("CAST(%s AS %s)", c.Child.String(), c.Type.String())
}

func (c *CastExpr) Children() []sql.Expr { return []sql.Expr{c.Child} }

func (c *CastExpr) WithChildren(children ...sql.Expr) (sql.Expr, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidType.New("CastExpr takes exactly one child")
	}
	clone := *c
	clone.Child = children[0]
	return &clone, nil
}

func (c *CastExpr) Clone() sql.Expr {
	clone := *c
	clone.Child = c.Child.Clone()
	return &clone
}
