package plan

import "gopkg.in/src-d/go-mysql-server.v0/sql"

// LogicScanTable is a leaf reading a Base table (spec §6), grounded on
// the teacher's plan.ResolvedTable: a single catalog relation wrapped
// for the plan tree, with no execution behavior attached here.
type LogicScanTable struct {
	Ref *BaseTableRef
}

func NewLogicScanTable(ref *BaseTableRef) *LogicScanTable {
	return &LogicScanTable{Ref: ref}
}

func (n *LogicScanTable) Children() []sql.LogicNode { return nil }

func (n *LogicScanTable) String() string {
	p := sql.NewTreePrinter()
	p.WriteNode("Scan(%s)", n.Ref.String())
	return p.String()
}

// LogicScanFile is a leaf reading an External (file-bound) table.
type LogicScanFile struct {
	Ref *ExternalTableRef
}

func NewLogicScanFile(ref *ExternalTableRef) *LogicScanFile {
	return &LogicScanFile{Ref: ref}
}

func (n *LogicScanFile) Children() []sql.LogicNode { return nil }

func (n *LogicScanFile) String() string {
	p := sql.NewTreePrinter()
	p.WriteNode("ScanFile(%s)", n.Ref.String())
	return p.String()
}
