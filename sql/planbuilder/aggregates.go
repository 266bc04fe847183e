package planbuilder

import (
	"github.com/mitchellh/hashstructure"

	"gopkg.in/src-d/go-mysql-server.v0/sql"
	"gopkg.in/src-d/go-mysql-server.v0/sql/expression"
)

// getAggregations implements spec §4.4's get_aggregations: scan every
// top-level selection expression, and if it contains an AggFunc
// anywhere in its tree, emit the whole expression as an aggregate
// output (not just the AggFunc sub-node). Results are de-duplicated by
// structural equality, preserving first-occurrence order, matching
// boundary scenario 6 (`min(i/2)` and `2+min(i)+max(i)` each appear
// exactly once even if referenced from more than one clause).
//
// Exprs hold unexported fields and interface-valued children, so a
// plain == comparison can't establish structural equality; hashing the
// tree with hashstructure (which walks exported fields only, so two
// occurrences differing solely in output_name/alias still collide)
// gives an equality key cheaply.
func getAggregations(selection []sql.Expr) ([]sql.Expr, error) {
	var result []sql.Expr
	seen := make(map[uint64]bool)
	for _, x := range selection {
		if !expression.HasAggFunc(x) {
			continue
		}
		h, err := hashstructure.Hash(x, nil)
		if err != nil {
			return nil, err
		}
		if seen[h] {
			continue
		}
		seen[h] = true
		result = append(result, x)
	}
	return result, nil
}
