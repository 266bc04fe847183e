package expression

import (
	"fmt"
	"strings"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
)

// CaseExpr implements CASE [expr] WHEN w1 THEN t1 ... [ELSE e] END.
type CaseExpr struct {
	base
	Eval  sql.Expr // nil for the searched form (no expression to compare)
	Whens []sql.Expr
	Thens []sql.Expr
	Else  sql.Expr // nil if there is no ELSE clause
}

// NewCaseExpr builds a CaseExpr from the flat list of parsed
// sub-expressions the way the parser hands them over, applying spec
// §4.1's parsing contract exactly:
//
//	n := len(parts)
//	if hasElse: elseExpr = parts[n-1], work = parts[0:n-1]
//	else:       work = parts[0:n]
//	if len(work) is odd:  eval = work[0], the rest are WHEN/THEN pairs
//	else:                 eval = nil, all of work are WHEN/THEN pairs
//
// It is an error (sql.ErrSyntax, a malformed AST rather than a
// semantic one) for the resulting WHEN/THEN count to be odd or empty.
func NewCaseExpr(parts []sql.Expr, hasElse bool) (*CaseExpr, error) {
	n := len(parts)
	var elseExpr sql.Expr
	work := parts
	if hasElse {
		if n == 0 {
			return nil, sql.ErrSyntax.New("CASE with ELSE requires at least one preceding expression")
		}
		elseExpr = parts[n-1]
		work = parts[:n-1]
	}

	var eval sql.Expr
	pairs := work
	if len(work)%2 != 0 {
		eval = work[0]
		pairs = work[1:]
	}

	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return nil, sql.ErrSyntax.New("CASE expression must have at least one WHEN/THEN pair")
	}

	whens := make([]sql.Expr, 0, len(pairs)/2)
	thens := make([]sql.Expr, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		whens = append(whens, pairs[i])
		thens = append(thens, pairs[i+1])
	}

	return &CaseExpr{Eval: eval, Whens: whens, Thens: thens, Else: elseExpr}, nil
}

func (c *CaseExpr) String() string {
	var sb strings.Builder
	sb.WriteString("CASE ")
	if c.Eval != nil {
		sb.WriteString(c.Eval.String())
		sb.WriteByte(' ')
	}
	for i := range c.Whens {
		fmt.Fprintf(&sb, "WHEN %s THEN %s ", c.Whens[i].String(), c.Thens[i].String())
	}
	if c.Else != nil {
		fmt.Fprintf(&sb, "ELSE %s ", c.Else.String())
	}
	sb.WriteString("END")
	return sb.String()
}

func (c *CaseExpr) Children() []sql.Expr {
	children := make([]sql.Expr, 0, 1+len(c.Whens)+len(c.Thens)+1)
	if c.Eval != nil {
		children = append(children, c.Eval)
	}
	for i := range c.Whens {
		children = append(children, c.Whens[i], c.Thens[i])
	}
	if c.Else != nil {
		children = append(children, c.Else)
	}
	return children
}

func (c *CaseExpr) WithChildren(children ...sql.Expr) (sql.Expr, error) {
	clone := *c
	idx := 0
	if c.Eval != nil {
		clone.Eval = children[idx]
		idx++
	}
	clone.Whens = make([]sql.Expr, len(c.Whens))
	clone.Thens = make([]sql.Expr, len(c.Thens))
	for i := range c.Whens {
		clone.Whens[i] = children[idx]
		clone.Thens[i] = children[idx+1]
		idx += 2
	}
	if c.Else != nil {
		clone.Else = children[idx]
		idx++
	}
	if idx != len(children) {
		return nil, sql.ErrInvalidType.New("CaseExpr: wrong number of children")
	}
	return &clone, nil
}

func (c *CaseExpr) Clone() sql.Expr {
	clone := *c
	if c.Eval != nil {
		clone.Eval = c.Eval.Clone()
	}
	clone.Whens = make([]sql.Expr, len(c.Whens))
	clone.Thens = make([]sql.Expr, len(c.Thens))
	for i := range c.Whens {
		clone.Whens[i] = c.Whens[i].Clone()
		clone.Thens[i] = c.Thens[i].Clone()
	}
	if c.Else != nil {
		clone.Else = c.Else.Clone()
	}
	return &clone
}
