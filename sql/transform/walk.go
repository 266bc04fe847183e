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

// Package transform holds the generic tree walkers Expr operations
// (spec §3/§4.1) are built from: a pre-order visitor for read-only
// discovery (aggregates, subqueries) and a bottom-up rebuild for
// substitution (search_replace), mirroring the teacher's
// sql/transform/expr.go Children()/WithChildren() recursion.
package transform

import "gopkg.in/src-d/go-mysql-server.v0/sql"

// VisitEach performs a pre-order traversal of expr, invoking f on every
// sub-expression including expr itself (spec §4.1's visit_each). f may
// inspect but must not attempt to reorder siblings; VisitEach does not
// look at f's return value.
func VisitEach(expr sql.Expr, f func(sql.Expr)) {
	if expr == nil {
		return
	}
	f(expr)
	for _, c := range expr.Children() {
		VisitEach(c, f)
	}
}

// InspectEach performs a pre-order traversal, stopping as soon as f
// returns true, and reports whether it found a match.
func InspectEach(expr sql.Expr, f func(sql.Expr) bool) bool {
	if expr == nil {
		return false
	}
	if f(expr) {
		return true
	}
	for _, c := range expr.Children() {
		if InspectEach(c, f) {
			return true
		}
	}
	return false
}

// ExprFunc rebuilds a single node given its already-transformed
// children applied via WithChildren; it returns the (possibly
// unchanged) replacement expression.
type ExprFunc func(sql.Expr) (sql.Expr, error)

// Rebuild performs a bottom-up transform: every child is rebuilt first,
// WithChildren re-attaches any changed children, then f is applied to
// the node itself. This is the substrate search_replace is built on.
func Rebuild(expr sql.Expr, f ExprFunc) (sql.Expr, error) {
	children := expr.Children()
	if len(children) == 0 {
		return f(expr)
	}

	newChildren := make([]sql.Expr, len(children))
	changed := false
	for i, c := range children {
		nc, err := Rebuild(c, f)
		if err != nil {
			return nil, err
		}
		newChildren[i] = nc
		if nc != c {
			changed = true
		}
	}

	if changed {
		var err error
		expr, err = expr.WithChildren(newChildren...)
		if err != nil {
			return nil, err
		}
	}

	return f(expr)
}
