package expression

import "gopkg.in/src-d/go-mysql-server.v0/sql"

// SelStar is `*` or `tab.*` in a selection list. It never survives
// binding: spec §3 invariant I2 requires every SelStar to be spliced
// out and replaced by concrete ColExprs during selection-list binding
// (spec §4.4 step 3).
type SelStar struct {
	base
	TabName string // "" for an unqualified *
}

func NewSelStar(tabName string) *SelStar {
	return &SelStar{TabName: tabName}
}

func (s *SelStar) String() string {
	if s.TabName == "" {
		return "*"
	}
	return s.TabName + ".*"
}

func (s *SelStar) Children() []sql.Expr { return nil }

func (s *SelStar) WithChildren(children ...sql.Expr) (sql.Expr, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidType.New("SelStar takes no children")
	}
	return s, nil
}

func (s *SelStar) Clone() sql.Expr {
	c := *s
	return &c
}
