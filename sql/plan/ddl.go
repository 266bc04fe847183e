package plan

import "gopkg.in/src-d/go-mysql-server.v0/sql"

// InsertStmt, CopyStmt, CreateTableStmt, CreateIndexStmt and
// AnalyzeStmt are the external statement wrappers of spec §4.6: each
// carries a BaseTableRef plus descriptive fields, and exists here only
// so the binder contract stays observable for them (they don't gain
// their own bind/plan algorithm beyond binding an embedded SELECT, if
// any).

type InsertStmt struct {
	Table   *BaseTableRef
	Columns []string
	Values  [][]sql.Expr // literal-rows form
	Source  *SelectStmt  // INSERT ... SELECT form; nil for VALUES form
}

func (s *InsertStmt) Kind() string             { return "insert" }
func (s *InsertStmt) CTEFrom() []sql.TableRef  { return nil }

type CopyStmt struct {
	Table    *BaseTableRef
	FileName string
	Options  map[string]string
}

func (s *CopyStmt) Kind() string            { return "copy" }
func (s *CopyStmt) CTEFrom() []sql.TableRef { return nil }

type ColumnDecl struct {
	Name string
	Type sql.Type
}

type CreateTableStmt struct {
	Table   *BaseTableRef
	Columns []ColumnDecl
}

func (s *CreateTableStmt) Kind() string            { return "create_table" }
func (s *CreateTableStmt) CTEFrom() []sql.TableRef { return nil }

type CreateIndexStmt struct {
	Table      *BaseTableRef
	IndexName  string
	ColumnList []string
}

func (s *CreateIndexStmt) Kind() string            { return "create_index" }
func (s *CreateIndexStmt) CTEFrom() []sql.TableRef { return nil }

type AnalyzeStmt struct {
	Table *BaseTableRef
}

func (s *AnalyzeStmt) Kind() string            { return "analyze" }
func (s *AnalyzeStmt) CTEFrom() []sql.TableRef { return nil }
