// Package plan holds the concrete sql.TableRef variants (Base,
// External, FromQuery, CTEQuery, JoinQuery), SelectStmt and the
// statement wrappers of spec §4.6, and the sql.LogicNode algebra
// create_plan emits. TableRef and LogicNode share this package because
// FromQuery/CTEQuery embed a *SelectStmt and SelectStmt in turn holds
// TableRefs and, after planning, a LogicNode — splitting them further
// would only produce import cycles.
package plan

import (
	"gopkg.in/src-d/go-mysql-server.v0/sql"
	"gopkg.in/src-d/go-mysql-server.v0/sql/expression"
)

// refBase implements the parts of sql.TableRef common to every
// variant: alias storage and the cols_ref_by_subq bookkeeping (spec
// §3's TableRef invariant 3). Concrete LocateColumn/AddOuterRefsToOutput
// are implemented once as free functions below and called from every
// variant's own method, since they only need AllColumnRefs().
type refBase struct {
	alias        string
	colsRefBySubq []sql.Expr
}

func (r *refBase) Alias() string { return r.alias }

func (r *refBase) ColsRefBySubq() []sql.Expr { return r.colsRefBySubq }

// AddColRefBySubq appends c if it is not already present, deduplicated
// by identity as spec §3 requires ("deduplicated by identity").
func (r *refBase) AddColRefBySubq(c sql.Expr) {
	for _, existing := range r.colsRefBySubq {
		if existing == c {
			return
		}
	}
	r.colsRefBySubq = append(r.colsRefBySubq, c)
}

// locateColumn implements spec §4.2's locate_column: a unique match by
// OutputName across ref.AllColumnRefs(), a nil for zero matches, and an
// ambiguity error for more than one. This intentionally matches by
// output name only, never by table qualifier — a documented known
// limitation carried over from the source design (spec §9 Design
// Notes), not a bug to be fixed here.
func locateColumn(ref sql.TableRef, outputName string) (sql.Expr, error) {
	cols, err := ref.AllColumnRefs()
	if err != nil {
		return nil, err
	}

	var found sql.Expr
	for _, c := range cols {
		if c.OutputName() == outputName {
			if found != nil {
				return nil, sql.ErrAmbiguousColumnName.New(outputName, []string{ref.Alias()})
			}
			found = c
		}
	}
	return found, nil
}

// exportQueryColumn clones inner, retargets every embedded ColExpr's
// TabRef to ref, and sets its export output name (spec §4.2's QueryRef/
// FromQuery-with-rename contracts, shared by FromQueryRef and
// CTEQueryRef).
func exportQueryColumn(ref sql.TableRef, inner sql.Expr, outputName string) sql.Expr {
	clone := inner.Clone()
	expression.VisitEach(clone, func(e sql.Expr) {
		if col, ok := e.(*expression.ColExpr); ok {
			col.TabRef = ref
		}
	})
	clone.SetOutputName(outputName)
	clone.SetBounded(true)
	return clone
}

// exportQueryColumns implements the shared half of spec §4.2's
// QueryRef ("Cte/From without rename") and "FromQuery with rename list
// R" contracts: without a rename list, one export per inner selection
// item; with one, |R| <= |inner.selection| or ErrColumnRenameOverflow,
// and exactly |R| exports named by R.
func exportQueryColumns(ref sql.TableRef, inner *SelectStmt, colNames []string) ([]sql.Expr, error) {
	if colNames != nil {
		if len(colNames) > len(inner.Selection) {
			return nil, sql.ErrColumnRenameOverflow.New(ref.Alias(), len(inner.Selection), len(colNames))
		}
		cols := make([]sql.Expr, len(colNames))
		for i, name := range colNames {
			cols[i] = exportQueryColumn(ref, inner.Selection[i], name)
		}
		return cols, nil
	}

	cols := make([]sql.Expr, len(inner.Selection))
	for i, item := range inner.Selection {
		cols[i] = exportQueryColumn(ref, item, item.OutputName())
	}
	return cols, nil
}

// buildOutputNameMap implements spec §3's FromQuery output-name map,
// shared by FromQueryRef and CTEQueryRef: outside name -> inner Expr,
// with aggregate results wrapped in an ExprRef so aggregation is
// computed once.
func buildOutputNameMap(inner *SelectStmt, colNames []string) map[string]sql.Expr {
	m := make(map[string]sql.Expr, len(inner.Selection))
	for i, item := range inner.Selection {
		name := item.OutputName()
		if colNames != nil && i < len(colNames) {
			name = colNames[i]
		}
		value := item
		if expression.HasAggFunc(item) {
			value = expression.NewExprRef(item)
		}
		m[name] = value
	}
	return m
}

// addOuterRefsToOutput implements spec §4.2's add_outer_refs_to_output:
// for every correlated column exported through ref, append a clone
// (IsVisible=false, IsParameter=false) to output if not already there.
func addOuterRefsToOutput(ref sql.TableRef, output []sql.Expr) []sql.Expr {
	for _, x := range ref.ColsRefBySubq() {
		present := false
		for _, o := range output {
			if o == x {
				present = true
				break
			}
		}
		if present {
			continue
		}
		clone := x.Clone()
		if col, ok := clone.(*expression.ColExpr); ok {
			col.IsVisible = false
			col.IsParameter = false
		}
		output = append(output, clone)
	}
	return output
}
