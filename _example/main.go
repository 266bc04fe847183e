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

// Example of how to bind and plan a query against an in-memory
// catalog:
//
// ```
// > go run _example/main.go
// Filter((c.balance > 100))
//  └─ Filter((c.custkey = o.custkey))
//      └─ Join
//          ├─ Scan(customer AS c)
//          └─ Scan(orders AS o)
// ```
//
// The WHERE clause and the JoinQueryRef's own ON constraint each
// become their own LogicFilter (spec §4.5): the join's constraint
// filters first, directly above the join, and the outer WHERE filter
// wraps that.
package main

import (
	"fmt"

	"gopkg.in/src-d/go-mysql-server.v0/memory"
	"gopkg.in/src-d/go-mysql-server.v0/sql"
	"gopkg.in/src-d/go-mysql-server.v0/sql/expression"
	"gopkg.in/src-d/go-mysql-server.v0/sql/plan"
	"gopkg.in/src-d/go-mysql-server.v0/sql/planbuilder"
)

func main() {
	catalog := createTestCatalog()
	stmt := createTestQuery()

	builder := planbuilder.NewBuilder(catalog)
	if err := builder.BindStatement(stmt); err != nil {
		panic(err)
	}

	node, err := builder.PlanStatement(stmt)
	if err != nil {
		panic(err)
	}

	fmt.Println(node.String())
}

func createTestCatalog() *memory.Catalog {
	catalog := memory.NewCatalog("test")
	catalog.AddTable(&sql.TableDef{
		Name: "customer",
		Columns: []sql.ColumnDef{
			{Name: "custkey", Type: sql.Type{Kind: sql.TypeInt}},
			{Name: "balance", Type: sql.Type{Kind: sql.TypeNumeric, Precision: 12, Scale: 2}},
		},
	})
	catalog.AddTable(&sql.TableDef{
		Name: "orders",
		Columns: []sql.ColumnDef{
			{Name: "orderkey", Type: sql.Type{Kind: sql.TypeInt}},
			{Name: "custkey", Type: sql.Type{Kind: sql.TypeInt}},
		},
	})
	return catalog
}

// createTestQuery builds the AST for:
//
//	SELECT * FROM customer c JOIN orders o ON c.custkey = o.custkey
//	WHERE c.balance > 100
func createTestQuery() *plan.SelectStmt {
	stmt := plan.NewSelectStmt()
	stmt.Selection = []sql.Expr{expression.NewSelStar("")}

	customer := plan.NewBaseTableRef("", "customer", "c", nil)
	orders := plan.NewBaseTableRef("", "orders", "o", nil)
	constraint := expression.NewBinaryExpr("=",
		expression.NewColExpr("", "c", "custkey"),
		expression.NewColExpr("", "o", "custkey"),
	)
	join := plan.NewJoinQueryRef(
		[]sql.TableRef{customer, orders},
		[]string{"inner"},
		[]sql.Expr{constraint},
	)
	stmt.From = []sql.TableRef{join}

	stmt.Where = expression.NewBinaryExpr(">",
		expression.NewColExpr("", "c", "balance"),
		expression.NewLiteral(100, sql.Type{Kind: sql.TypeInt}),
	)

	return stmt
}
