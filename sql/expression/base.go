// Package expression holds the concrete sql.Expr variants of spec §3:
// literal, column reference, unary, binary, logical and/or, cast, case,
// function call, aggregate function, subquery, in-list, select-star,
// expr-ref and order-term. One file per node kind, matching the
// teacher's sql/expression package layout.
package expression

// base carries the three fields every Expr variant owns per spec §3:
// output_name, alias and bounded. Embed it and delegate the six
// accessor methods it is not worth repeating on every variant.
type base struct {
	outputName string
	alias      string
	bounded    bool
}

func (b *base) OutputName() string        { return b.outputName }
func (b *base) SetOutputName(name string) { b.outputName = name }
func (b *base) ExprAlias() string         { return b.alias }
func (b *base) SetExprAlias(alias string) { b.alias = alias }
func (b *base) Bounded() bool             { return b.bounded }
func (b *base) SetBounded(bounded bool)   { b.bounded = bounded }

func (b *base) MatchesAlias(name string) bool { return b.alias != "" && b.alias == name }
