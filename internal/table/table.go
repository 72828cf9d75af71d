// Package table provides the in-memory tabular representation shared by the
// parser, the reconciliation engine, and the rendering layer.
package table

import "encoding/json"

// Value is a single cell: a string scalar that may be null/missing.
// It follows the database/sql.NullString convention.
type Value struct {
	String string
	Valid  bool
}

// String returns a non-null Value holding s.
func String(s string) Value {
	return Value{String: s, Valid: true}
}

// Null returns a null Value.
func Null() Value {
	return Value{}
}

// MarshalJSON renders a null cell as JSON null and anything else as a string.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.String)
}

// Row maps a column name to its cell value for one record.
type Row map[string]Value

// Table is an ordered set of named columns paired with an ordered set of rows.
// Column order is meaningful for display only. Every row holds an entry
// (possibly null) for every declared column.
type Table struct {
	Columns []string
	Rows    []Row
}

// New returns an empty table with the given column order.
func New(columns ...string) Table {
	return Table{Columns: columns}
}

// AppendRow adds a row, filling any column absent from r with a null cell.
// Entries for undeclared columns are dropped.
func (t *Table) AppendRow(r Row) {
	row := make(Row, len(t.Columns))
	for _, col := range t.Columns {
		if v, ok := r[col]; ok {
			row[col] = v
		} else {
			row[col] = Null()
		}
	}
	t.Rows = append(t.Rows, row)
}

// RowCount returns the number of rows.
func (t Table) RowCount() int {
	return len(t.Rows)
}

// IsEmpty reports whether the table declares no columns at all.
// A zero-column table is what parse failures and unsupported formats produce.
func (t Table) IsEmpty() bool {
	return len(t.Columns) == 0
}

// Get returns the cell at row i, column col. Out-of-range rows and
// undeclared columns yield a null Value.
func (t Table) Get(i int, col string) Value {
	if i < 0 || i >= len(t.Rows) {
		return Null()
	}
	return t.Rows[i][col]
}

// HasColumn reports whether col is declared.
func (t Table) HasColumn(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}
