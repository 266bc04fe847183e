// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sql holds the interfaces shared by sql/expression, sql/plan
// and sql/planbuilder, plus the catalog contract and error taxonomy the
// binder consumes. Concrete node kinds live in the sub-packages; this
// package only fixes the shapes they must agree on so none of them has
// to import another to talk about "some expression" or "some plan node".
package sql

// Expr is the interface every scalar-expression variant implements
// (literal, column reference, unary/binary/logical, cast, case,
// function call, aggregate, subquery, in-list, star, expr-ref,
// order-term). Binding mutates a node's OutputName/Alias/Bounded state
// in place via the accessor methods below; the tree shape itself is
// changed only by Clone/WithChildren, except that binding a
// SubqueryExpr rebinds its Left operand in place.
type Expr interface {
	// String renders the expression the way it would appear back in SQL,
	// used for diagnostics and for structural-equality dedup keys.
	String() string

	// Children returns the direct sub-expressions in evaluation order.
	// A leaf (literal, column ref) returns nil.
	Children() []Expr

	// WithChildren returns a shallow copy of the receiver with its
	// children replaced; len(children) must equal len(Children()).
	WithChildren(children ...Expr) (Expr, error)

	// Clone returns a deep copy, safe to mutate (retarget tab_ref,
	// rebind) without affecting the original.
	Clone() Expr

	OutputName() string
	SetOutputName(name string)

	// ExprAlias is the name by which ORDER BY/GROUP BY in the same
	// SELECT may refer back to this expression (spec §3's "alias").
	ExprAlias() string
	SetExprAlias(alias string)

	// MatchesAlias reports whether this node is a reference to name for
	// the purpose of search_replace (spec §4.1/§4.4's alias rewrite): an
	// explicit alias match for most variants, but for an unqualified
	// column reference, a match against its own column name (a bare
	// identifier IS how ORDER BY/GROUP BY spell a reference to an
	// earlier "AS alias" item).
	MatchesAlias(name string) bool

	Bounded() bool
	SetBounded(bounded bool)
}

// TableRef is the interface every FROM-item variant implements (Base,
// External, FromQuery, CTEQuery, JoinQuery).
type TableRef interface {
	// Alias is the first name under which this ref is referable.
	Alias() string

	// AllColumnRefs returns the columns this ref exposes to its
	// enclosing scope (spec §4.2).
	AllColumnRefs() ([]Expr, error)

	// LocateColumn returns the unique export matching outputName, nil if
	// there is no match, and an ambiguity error if there is more than
	// one (spec §4.2's locate_column, including its documented
	// known-limitation: matched by output name only, never by
	// qualifier).
	LocateColumn(outputName string) (Expr, error)

	// ColsRefBySubq returns the ColExprs resolved through this ref from
	// a strictly deeper scope (spec §3 invariant 3).
	ColsRefBySubq() []Expr
	AddColRefBySubq(c Expr)

	// AddOuterRefsToOutput implements spec §4.2's
	// add_outer_refs_to_output.
	AddOuterRefsToOutput(output []Expr) []Expr
}

// LogicNode is a node in the logical plan algebra produced by
// create_plan (spec §6): LogicScanTable, LogicScanFile, LogicFromQuery,
// LogicJoin, LogicFilter, LogicAgg, LogicOrder, LogicResult, plus
// LogicLimit.
type LogicNode interface {
	Children() []LogicNode
	String() string
}

// Statement is the marker interface for top-level statements (SELECT
// and the DDL/DML wrappers of spec §4.6). It exists so sql/expression's
// SubqueryExpr and sql.BindContext can hold/inspect a statement without
// importing sql/plan.
type Statement interface {
	// Kind names the statement variant for diagnostics ("select",
	// "insert", "copy", "create_table", "create_index", "analyze").
	Kind() string

	// CTEFrom returns the TableRefs materialized from this statement's
	// WITH clause (spec §3's cte_from), visible to BindContext.LookupCTE
	// walking the parent chain (spec §4.4 step 2).
	CTEFrom() []TableRef
}

// Nameable is implemented by anything with a stable name, mirroring the
// teacher's sql.Nameable.
type Nameable interface {
	Name() string
}
