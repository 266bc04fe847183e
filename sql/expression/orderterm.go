package expression

import (
	"fmt"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

// OrderTerm wraps one ORDER BY item before alias/ordinal resolution:
// either Target is set (an expression, possibly an alias reference
// later rewritten by replace_output_name_to_expr) or Ordinal is a
// positive 1-based position into the selection list ("ORDER BY 2").
// Desc records the DESC/ASC flag (spec §3's SelectStmt.order list is a
// list of (expr, descending) pairs; OrderTerm is the Expr-shaped carrier
// for the expression half so it participates in the same visit/clone/
// search_replace machinery as everything else).
type OrderTerm struct {
	base
	Target  sql.Expr
	Ordinal int
	Desc    bool
}

func NewOrderTerm(target sql.Expr, desc bool) *OrderTerm {
	return &OrderTerm{Target: target, Desc: desc}
}

func NewOrdinalOrderTerm(ordinal int, desc bool) *OrderTerm {
	return &OrderTerm{Ordinal: ordinal, Desc: desc}
}

func (o *OrderTerm) String() string {
	dir := "ASC"
	if o.Desc {
		dir = "DESC"
	}
	if o.Target != nil {
		return fmt.Sprintf("%s %s", o.Target.String(), dir)
	}
	return fmt.Sprintf("%d %s", o.Ordinal, dir)
}

func (o *OrderTerm) Children() []sql.Expr {
	if o.Target == nil {
		return nil
	}
	return []sql.Expr{o.Target}
}

func (o *OrderTerm) WithChildren(children ...sql.Expr) (sql.Expr, error) {
	if o.Target == nil {
		if len(children) != 0 {
			return nil, sql.ErrInvalidType.New("OrderTerm: ordinal term takes no children")
		}
		return o, nil
	}
	if len(children) != 1 {
		return nil, sql.ErrInvalidType.New("OrderTerm takes exactly one child")
	}
	c := *o
	c.Target = children[0]
	return &c, nil
}

func (o *OrderTerm) Clone() sql.Expr {
	c := *o
	if o.Target != nil {
		c.Target = o.Target.Clone()
	}
	return &c
}
