// Package reconcile implements the data-reconciliation engine: join-key
// inference, outer-join matching, and display-header normalization over the
// tables produced by the parser.
package reconcile

import (
	"errors"

	"github.com/datareef/reconcile-cli/internal/table"
)

// ErrNoColumns reports a structurally valid but unusable table: key
// inference over zero columns is meaningless. It is distinct from a parse
// failure so callers can tell the two apart.
var ErrNoColumns = errors.New("table has no columns")

// InferKey selects the column most likely to be a unique identifier: the
// first column, in declared order, whose values are all non-null and
// pairwise distinct. This is a first-match policy, not a best-match one.
// When no column qualifies, the first declared column is returned as a
// best-effort fallback; join quality is then the caller's problem to surface.
func InferKey(t table.Table) (string, error) {
	if len(t.Columns) == 0 {
		return "", ErrNoColumns
	}
	for _, col := range t.Columns {
		if uniqueAndNonNull(t, col) {
			return col, nil
		}
	}
	return t.Columns[0], nil
}

func uniqueAndNonNull(t table.Table, col string) bool {
	seen := make(map[string]struct{}, len(t.Rows))
	for _, row := range t.Rows {
		v := row[col]
		if !v.Valid {
			return false
		}
		if _, dup := seen[v.String]; dup {
			return false
		}
		seen[v.String] = struct{}{}
	}
	return true
}
