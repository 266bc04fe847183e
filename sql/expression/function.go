package expression

import (
	"fmt"
	"strings"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

// FuncExpr is a scalar function call.
type FuncExpr struct {
	base
	FuncName string
	Args     []sql.Expr
}

func NewFunc(name string, args []sql.Expr) *FuncExpr {
	return &FuncExpr{FuncName: name, Args: args}
}

func (f *FuncExpr) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", f.FuncName, strings.Join(parts, ", "))
}

func (f *FuncExpr) Children() []sql.Expr { return f.Args }

func (f *FuncExpr) WithChildren(children ...sql.Expr) (sql.Expr, error) {
	if len(children) != len(f.Args) {
		return nil, sql.ErrInvalidType.New(fmt.Sprintf("%s: wrong number of children", f.FuncName))
	}
	c := *f
	c.Args = children
	return &c, nil
}

func (f *FuncExpr) Clone() sql.Expr {
	c := *f
	c.Args = make([]sql.Expr, len(f.Args))
	for i, a := range f.Args {
		c.Args[i] = a.Clone()
	}
	return &c
}

// AggFunc is an aggregate function call (COUNT, SUM, MIN, MAX, AVG,
// ...), discovered by get_aggregations (spec §4.4).
type AggFunc struct {
	base
	FuncName string
	Args     []sql.Expr
	Distinct bool
}

func NewAggFunc(name string, distinct bool, args []sql.Expr) *AggFunc {
	return &AggFunc{FuncName: name, Distinct: distinct, Args: args}
}

func (a *AggFunc) String() string {
	parts := make([]string, len(a.Args))
	for i, arg := range a.Args {
		parts[i] = arg.String()
	}
	distinct := ""
	if a.Distinct {
		distinct = "DISTINCT "
	}
	return fmt.Sprintf("%s(%s%s)", a.FuncName, distinct, strings.Join(parts, ", "))
}

func (a *AggFunc) Children() []sql.Expr { return a.Args }

func (a *AggFunc) WithChildren(children ...sql.Expr) (sql.Expr, error) {
	if len(children) != len(a.Args) {
		return nil, sql.ErrInvalidType.New(fmt.Sprintf("%s: wrong number of children", a.FuncName))
	}
	c := *a
	c.Args = children
	return &c, nil
}

func (a *AggFunc) Clone() sql.Expr {
	c := *a
	c.Args = make([]sql.Expr, len(a.Args))
	for i, arg := range a.Args {
		c.Args[i] = arg.Clone()
	}
	return &c
}
