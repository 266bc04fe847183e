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

package sql

import "gopkg.in/src-d/go-errors.v1"

// Error taxonomy (spec §7): parse errors from the external parser are
// forwarded unchanged, and the core raises ErrSyntax itself only for
// malformed AST shapes it detects; semantic errors abort
// binding of the enclosing statement; not-implemented errors are
// surfaced verbatim for AST shapes the core does not support.
var (
	// ErrSyntax wraps a malformed-AST condition the core detects itself
	// (e.g. an ill-formed CASE expression, spec §4.1's parsing
	// contract) rather than one already reported by the parser.
	ErrSyntax = errors.NewKind("syntax error: %s")

	// ErrNotImplemented is returned for AST shapes not yet supported by
	// the core.
	ErrNotImplemented = errors.NewKind("not implemented: %s")

	// ErrInvalidType is thrown when there is an unexpected type at some
	// part of the plan tree.
	ErrInvalidType = errors.NewKind("invalid type: %s")

	// ErrTableNotFound is returned when a table name does not resolve
	// against the catalog or any visible CTE.
	ErrTableNotFound = errors.NewKind("table %q not exists")

	// ErrTableColumnNotFound is thrown when a qualified column reference
	// names a table that has no such column.
	ErrTableColumnNotFound = errors.NewKind("table %q does not have column %q")

	// ErrColumnNotFound is returned when an unqualified column reference
	// does not resolve against any table in scope.
	ErrColumnNotFound = errors.NewKind("column %q could not be found in any table in scope")

	// ErrAmbiguousColumnName is returned when a column reference matches
	// more than one table in scope.
	ErrAmbiguousColumnName = errors.NewKind("ambiguous column name %q, it's present in all these tables: %v")

	// ErrDuplicateAliasOrTable is returned when a BindContext would gain
	// two TableRefs sharing an alias (spec §3 invariant I3).
	ErrDuplicateAliasOrTable = errors.NewKind("not unique table/alias: %s")

	// ErrUnknownCTE names a CTE that no visible WITH clause defines. The
	// binder does not return it: a FROM item absent from the catalog and
	// from every CTE visible up the parent chain fails with
	// ErrTableNotFound.
	ErrUnknownCTE = errors.NewKind("CTE %q not found")

	// ErrColumnRenameOverflow is returned when a FromQuery's column
	// rename list is longer than the inner SELECT's selection list.
	ErrColumnRenameOverflow = errors.NewKind("table %q has %d columns available but %d columns specified")

	// ErrUnknownType is returned when a DDL type name does not match any
	// entry of spec §6's type-name table.
	ErrUnknownType = errors.NewKind("unknown type: %s")
)
