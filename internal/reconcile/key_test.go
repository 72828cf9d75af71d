package reconcile_test

import (
	"errors"
	"testing"

	"github.com/datareef/reconcile-cli/internal/reconcile"
	"github.com/datareef/reconcile-cli/internal/table"
)

func row(pairs ...string) table.Row {
	r := make(table.Row, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			r[pairs[i]] = table.Null()
		} else {
			r[pairs[i]] = table.String(pairs[i+1])
		}
	}
	return r
}

func build(cols []string, rows ...table.Row) table.Table {
	t := table.New(cols...)
	for _, r := range rows {
		t.AppendRow(r)
	}
	return t
}

func TestInferKeyFirstUniqueNonNullColumn(t *testing.T) {
	// A has a null, B is the first fully populated unique column; C's
	// properties must not matter.
	cases := []struct {
		name string
		rows []table.Row
	}{
		{"C unique too", []table.Row{
			row("A", "", "B", "b1", "C", "c1"),
			row("A", "2", "B", "b2", "C", "c2"),
		}},
		{"C constant", []table.Row{
			row("A", "", "B", "b1", "C", "x"),
			row("A", "2", "B", "b2", "C", "x"),
		}},
		{"row order reversed", []table.Row{
			row("A", "2", "B", "b2", "C", "x"),
			row("A", "", "B", "b1", "C", "x"),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tab := build([]string{"A", "B", "C"}, tc.rows...)
			key, err := reconcile.InferKey(tab)
			if err != nil {
				t.Fatalf("InferKey: %v", err)
			}
			if key != "B" {
				t.Fatalf("key = %q, want B", key)
			}
		})
	}
}

func TestInferKeyDuplicatesDisqualify(t *testing.T) {
	tab := build([]string{"A", "B"},
		row("A", "1", "B", "b1"),
		row("A", "1", "B", "b2"),
	)
	key, err := reconcile.InferKey(tab)
	if err != nil {
		t.Fatalf("InferKey: %v", err)
	}
	if key != "B" {
		t.Fatalf("key = %q, want B", key)
	}
}

func TestInferKeyFallbackToFirstColumn(t *testing.T) {
	// Neither column qualifies; the first declared column wins regardless.
	tab := build([]string{"id", "x"},
		row("id", "1", "x", "1"),
		row("id", "1", "x", "2"),
	)
	key, err := reconcile.InferKey(tab)
	if err != nil {
		t.Fatalf("InferKey: %v", err)
	}
	if key != "id" {
		t.Fatalf("key = %q, want fallback id", key)
	}
}

func TestInferKeyZeroRows(t *testing.T) {
	tab := table.New("id", "file")
	key, err := reconcile.InferKey(tab)
	if err != nil {
		t.Fatalf("InferKey: %v", err)
	}
	if key != "id" {
		t.Fatalf("key = %q, want id", key)
	}
}

func TestInferKeyNoColumns(t *testing.T) {
	_, err := reconcile.InferKey(table.Table{})
	if !errors.Is(err, reconcile.ErrNoColumns) {
		t.Fatalf("expected ErrNoColumns, got %v", err)
	}
}
