package expression

import "gopkg.in/src-d/go-mysql-server.v0/sql"

// ExprRef is a handle to an already-computed expression, used so a
// value (typically an aggregate result) is computed exactly once even
// when it's referenced from more than one place. A FromQuery's
// output-name map wraps aggregate results in an ExprRef for this
// reason (spec §3's TableRef.FromQuery contract).
type ExprRef struct {
	base
	Target sql.Expr
}

func NewExprRef(target sql.Expr) *ExprRef {
	return &ExprRef{Target: target}
}

func (r *ExprRef) String() string { return r.Target.String() }

func (r *ExprRef) Children() []sql.Expr { return []sql.Expr{r.Target} }

func (r *ExprRef) WithChildren(children ...sql.Expr) (sql.Expr, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidType.New("ExprRef takes exactly one child")
	}
	c := *r
	c.Target = children[0]
	return &c, nil
}

// Clone intentionally does NOT clone Target: an ExprRef exists
// precisely to share one already-computed value, so cloning the
// wrapper must still point at the same underlying computation.
func (r *ExprRef) Clone() sql.Expr {
	c := *r
	return &c
}
