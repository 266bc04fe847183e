package expression

import (
	"fmt"
	"strings"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

// InListExpr is `Left [NOT] IN (list...)` against a literal/expression
// list (an IN against a subquery is instead a SubqueryExpr of kind In).
type InListExpr struct {
	base
	Left   sql.Expr
	List   []sql.Expr
	Negate bool
}

func NewInList(left sql.Expr, list []sql.Expr, negate bool) *InListExpr {
	return &InListExpr{Left: left, List: list, Negate: negate}
}

func (e *InListExpr) String() string {
	parts := make([]string, len(e.List))
	for i, item := range e.List {
		parts[i] = item.String()
	}
	not := ""
	if e.Negate {
		not = "NOT "
	}
	return fmt.Sprintf("%s %sIN (%s)", e.Left.String(), not, strings.Join(parts, ", "))
}

func (e *InListExpr) Children() []sql.Expr {
	children := make([]sql.Expr, 0, 1+len(e.List))
	children = append(children, e.Left)
	children = append(children, e.List...)
	return children
}

func (e *InListExpr) WithChildren(children ...sql.Expr) (sql.Expr, error) {
	if len(children) < 1 {
		return nil, sql.ErrInvalidType.New("InListExpr requires at least one child")
	}
	c := *e
	c.Left = children[0]
	c.List = children[1:]
	return &c, nil
}

func (e *InListExpr) Clone() sql.Expr {
	c := *e
	c.Left = e.Left.Clone()
	c.List = make([]sql.Expr, len(e.List))
	for i, item := range e.List {
		c.List[i] = item.Clone()
	}
	return &c
}
