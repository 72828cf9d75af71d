package reconcile

import "github.com/datareef/reconcile-cli/internal/table"

// MatchResult partitions the rows of a full outer join: Matched holds rows
// whose key found an equal on the other side (columns from both sides),
// Unmatched holds rows present on exactly one side with the other side's
// columns null. Both tables share the same combined schema.
type MatchResult struct {
	Matched   table.Table
	Unmatched table.Table
}

// Match computes a full outer join of left and right on equality of the key
// cells. Null keys form their own key group, so a null key matches the null
// keys on the other side but never a present value. When a key is not
// unique, every pair of rows sharing an equal key yields one matched row
// (cross-product per key group); callers that joined on a fallback key will
// see row counts inflate accordingly.
//
// A column name present on both sides is kept twice, disambiguated with the
// side-indicating suffixes "_x" (left) and "_y" (right) so no data is lost;
// key columns are not deduplicated.
func Match(left, right table.Table, leftKey, rightKey string) MatchResult {
	leftOut := suffixCollisions(left.Columns, right.Columns, "_x")
	rightOut := suffixCollisions(right.Columns, left.Columns, "_y")
	combined := append(append([]string{}, leftOut...), rightOut...)

	matched := table.New(combined...)
	unmatched := table.New(combined...)

	// Right-side rows grouped by key cell, preserving row order. The cell
	// itself is the map key so the null cell is one more group.
	rightByKey := make(map[table.Value][]int, len(right.Rows))
	for i, row := range right.Rows {
		k := row[rightKey]
		rightByKey[k] = append(rightByKey[k], i)
	}

	rightHit := make([]bool, len(right.Rows))
	for _, lrow := range left.Rows {
		hits := rightByKey[lrow[leftKey]]
		if len(hits) == 0 {
			unmatched.AppendRow(combineRows(left.Columns, leftOut, lrow, nil, nil, nil))
			continue
		}
		for _, ri := range hits {
			rightHit[ri] = true
			matched.AppendRow(combineRows(left.Columns, leftOut, lrow, right.Columns, rightOut, right.Rows[ri]))
		}
	}
	for i, row := range right.Rows {
		if !rightHit[i] {
			unmatched.AppendRow(combineRows(nil, nil, nil, right.Columns, rightOut, row))
		}
	}
	return MatchResult{Matched: matched, Unmatched: unmatched}
}

// suffixCollisions renames every column of cols that also appears in other.
func suffixCollisions(cols, other []string, suffix string) []string {
	otherSet := make(map[string]bool, len(other))
	for _, c := range other {
		otherSet[c] = true
	}
	out := make([]string, len(cols))
	for i, c := range cols {
		if otherSet[c] {
			out[i] = c + suffix
		} else {
			out[i] = c
		}
	}
	return out
}

// combineRows builds one output row from an optional left row and an
// optional right row, mapping original column names to their output names.
// Absent sides are left null.
func combineRows(leftCols, leftOut []string, lrow table.Row, rightCols, rightOut []string, rrow table.Row) table.Row {
	row := make(table.Row, len(leftOut)+len(rightOut))
	for i, c := range leftCols {
		row[leftOut[i]] = lrow[c]
	}
	for i, c := range rightCols {
		row[rightOut[i]] = rrow[c]
	}
	return row
}
