package planbuilder

import (
	"fmt"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
	"gopkg.in/src-d/go-mysql-server.v0/sql/plan"
)

// BindStatement implements spec §4.6: the DDL/DML wrappers gain no
// binder algorithm of their own beyond an embedded SELECT, if any. An
// InsertStmt's Source binds under a fresh context (parent nil), since
// an INSERT ... SELECT source cannot correlate to anything outside
// itself.
func (b *Builder) BindStatement(stmt sql.Statement) error {
	switch s := stmt.(type) {
	case *plan.SelectStmt:
		_, err := b.Bind(s, nil)
		return err

	case *plan.InsertStmt:
		if s.Source == nil {
			return nil
		}
		_, err := b.Bind(s.Source, nil)
		return err

	case *plan.CopyStmt, *plan.CreateTableStmt, *plan.CreateIndexStmt, *plan.AnalyzeStmt:
		return nil

	default:
		return sql.ErrNotImplemented.New(fmt.Sprintf("binding statement of type %T", stmt))
	}
}

// PlanStatement builds the logic plan for stmt's embedded SELECT, if
// any. DDL wrappers with no embedded SELECT (or an Insert in VALUES
// form) have no logical plan of their own to produce here; the core is
// only responsible for the parts of them that touch the binder/planner
// contract (spec §4.6).
func (b *Builder) PlanStatement(stmt sql.Statement) (sql.LogicNode, error) {
	switch s := stmt.(type) {
	case *plan.SelectStmt:
		return b.CreatePlan(s)

	case *plan.InsertStmt:
		if s.Source == nil {
			return nil, nil
		}
		return b.CreatePlan(s.Source)

	default:
		return nil, nil
	}
}
