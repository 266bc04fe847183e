package expression

import (
	"fmt"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

type SubqueryKind int

const (
	SubqueryScalar SubqueryKind = iota
	SubqueryExists
	SubqueryIn
)

func (k SubqueryKind) String() string {
	switch k {
	case SubqueryExists:
		return "EXISTS"
	case SubqueryIn:
		return "IN"
	default:
		return "SCALAR"
	}
}

// SubqueryExpr wraps an inner SELECT appearing in an expression
// position (spec §3): scalar (`(SELECT ...)`), EXISTS, or IN. Left is
// only set for Kind == SubqueryIn, the left-hand side of the IN
// predicate. Query holds the inner statement as the sql.Statement
// marker interface so this package never has to import sql/plan
// (SubqueryExpr is built before sql/planbuilder's Builder.Bind runs on it,
// and its own type is asserted back by sql/planbuilder, which already
// imports both packages). LogicPlan is populated post-hoc by
// create_subquery_plans (spec §4.5/§9), never during bind.
type SubqueryExpr struct {
	base
	Kind      SubqueryKind
	Query     sql.Statement
	Left      sql.Expr
	LogicPlan sql.LogicNode
}

func NewScalarSubquery(query sql.Statement) *SubqueryExpr {
	return &SubqueryExpr{Kind: SubqueryScalar, Query: query}
}

func NewExistsSubquery(query sql.Statement) *SubqueryExpr {
	return &SubqueryExpr{Kind: SubqueryExists, Query: query}
}

func NewInSubquery(left sql.Expr, query sql.Statement) *SubqueryExpr {
	return &SubqueryExpr{Kind: SubqueryIn, Left: left, Query: query}
}

func (s *SubqueryExpr) String() string {
	if s.Kind == SubqueryIn {
		return fmt.Sprintf("%s IN (subquery)", s.Left.String())
	}
	return fmt.Sprintf("%s(subquery)", s.Kind.String())
}

func (s *SubqueryExpr) Children() []sql.Expr {
	if s.Left != nil {
		return []sql.Expr{s.Left}
	}
	return nil
}

func (s *SubqueryExpr) WithChildren(children ...sql.Expr) (sql.Expr, error) {
	if s.Left == nil {
		if len(children) != 0 {
			return nil, sql.ErrInvalidType.New("SubqueryExpr: this kind takes no children")
		}
		return s, nil
	}
	if len(children) != 1 {
		return nil, sql.ErrInvalidType.New("SubqueryExpr takes exactly one child")
	}
	c := *s
	c.Left = children[0]
	return &c, nil
}

// Clone deliberately does not clone Query: the inner statement is
// bound/planned exactly once (spec §3 lifecycle) and re-cloning it
// would let two SubqueryExpr instances race to bind the same
// sub-statement independently, breaking the "bound is idempotent by
// construction" contract.
func (s *SubqueryExpr) Clone() sql.Expr {
	c := *s
	if s.Left != nil {
		c.Left = s.Left.Clone()
	}
	return &c
}

// IsSubqueryExpr reports whether e is a SubqueryExpr, used by
// sql/transform's generic HasSubquery walker.
func IsSubqueryExpr(e sql.Expr) bool {
	_, ok := e.(*SubqueryExpr)
	return ok
}

// IsAggFuncExpr reports whether e is an AggFunc, used by
// sql/transform's generic HasAggFunc walker.
func IsAggFuncExpr(e sql.Expr) bool {
	_, ok := e.(*AggFunc)
	return ok
}
