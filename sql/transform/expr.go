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

package transform

import "gopkg.in/src-d/go-mysql-server.v0/sql"

// Clone returns a deep copy of expr. Expr.Clone() already recurses into
// its own children (each variant clones its literal payload plus its
// Children(), except ExprRef, which shares its Target); this wrapper exists so callers that only have the
// generic sql.Expr interface don't need a type assertion.
func Clone(expr sql.Expr) sql.Expr {
	if expr == nil {
		return nil
	}
	return expr.Clone()
}

// SearchReplace returns a new expression tree with every sub-expression
// for which MatchesAlias(name) holds (an ExprAlias equal to name, or an
// unqualified column reference named name) replaced by a deep clone of repl (spec
// §4.1's search_replace). Traversal is post-order and never mutates a
// shared node in place, since the same Expr instance may be referenced
// from both the SELECT list and ORDER BY/GROUP BY (Design Notes §9).
func SearchReplace(expr sql.Expr, name string, repl sql.Expr) (sql.Expr, error) {
	return Rebuild(expr, func(e sql.Expr) (sql.Expr, error) {
		if e.MatchesAlias(name) {
			return repl.Clone(), nil
		}
		return e, nil
	})
}

// HasSubquery reports whether expr or any descendant is a subquery
// expression. isSubquery is supplied by sql/expression to avoid an
// import cycle (expression depends on sql, not the other way around).
func HasSubquery(expr sql.Expr, isSubquery func(sql.Expr) bool) bool {
	return InspectEach(expr, isSubquery)
}

// HasAggFunc reports whether expr or any descendant is an aggregate
// function call.
func HasAggFunc(expr sql.Expr, isAggFunc func(sql.Expr) bool) bool {
	return InspectEach(expr, isAggFunc)
}
