package plan

import (
	"gopkg.in/src-d/go-mysql-server.v0/sql"
	"gopkg.in/src-d/go-mysql-server.v0/sql/expression"
)

// CTEDef is one WITH-clause entry as produced by the parser, before
// materialization into a CTEQueryRef (spec §3/§4.4 step 2).
type CTEDef struct {
	Name     string
	ColNames []string // optional column rename list
	Query    *SelectStmt
}

// SelectStmt is the bound representation of one SELECT (spec §3). A
// query combining several core selects via UNION/INTERSECT-style
// composition is represented by SetQueries, whose first element is the
// "main" SELECT that owns the outer ORDER BY/LIMIT/WITH clause.
type SelectStmt struct {
	Selection []sql.Expr
	From      []sql.TableRef
	Where     sql.Expr
	GroupBy   []sql.Expr
	Having    sql.Expr
	OrderBy   []*expression.OrderTerm
	Limit     sql.Expr

	CTEs       []*CTEDef
	SetQueries []*SelectStmt

	// Auxiliary fields populated by binding/planning (spec §3).
	HasAgg      bool
	IsBounded   bool
	BindCtx     *sql.BindContext
	ParentStmt  *SelectStmt
	Subqueries  []*SelectStmt
	CTEFromRefs []sql.TableRef
	FromQueries map[*SelectStmt]sql.LogicNode
	LogicPlan   sql.LogicNode
}

func NewSelectStmt() *SelectStmt {
	return &SelectStmt{FromQueries: make(map[*SelectStmt]sql.LogicNode)}
}

func (s *SelectStmt) Kind() string { return "select" }

// CTEFrom implements sql.Statement, exposing the materialized CTE refs
// so sql.BindContext.LookupCTE can walk the parent chain without
// importing this package.
func (s *SelectStmt) CTEFrom() []sql.TableRef { return s.CTEFromRefs }

func (s *SelectStmt) String() string {
	p := sql.NewTreePrinter()
	p.WriteNode("Select")
	return p.String()
}
