// Package render is the display layer: it turns reconciliation reports into
// terminal tables or JSON. It owns all formatting; the engine only exposes
// deterministic row counts and column order.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/datareef/reconcile-cli/internal/reconcile"
	"github.com/datareef/reconcile-cli/internal/table"
)

// Report writes the whole pass as terminal tables: detected keys, then the
// matched and unmatched partitions with their row counts.
func Report(w io.Writer, r *reconcile.Report) {
	if !r.Matchable() {
		fmt.Fprintln(w, "No data found or parsing failed.")
		return
	}
	fmt.Fprintf(w, "Detected Metadata Key: %s\n", r.MetadataKey)
	fmt.Fprintf(w, "Detected Customer Key: %s\n\n", r.CustomerKey)
	Table(w, "Matched Records", r.Matched)
	fmt.Fprintln(w)
	Table(w, "Unmatched Records", r.Unmatched)
}

// Table writes one titled table with its row count.
func Table(w io.Writer, title string, t table.Table) {
	fmt.Fprintf(w, "%s (Count: %d)\n", title, t.RowCount())
	if t.IsEmpty() {
		return
	}
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(t.Columns)
	// Headers arrive already normalized for display; keep them verbatim.
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			cells[i] = row[col].String
		}
		tw.Append(cells)
	}
	tw.Render()
}

// jsonTable keeps explicit column order next to the row data, since JSON
// object keys carry no order.
type jsonTable struct {
	Columns []string    `json:"columns"`
	Rows    []table.Row `json:"rows"`
	Count   int         `json:"count"`
}

type jsonReport struct {
	RunID       string                 `json:"run_id"`
	MetadataKey string                 `json:"metadata_key,omitempty"`
	CustomerKey string                 `json:"customer_key,omitempty"`
	Matched     jsonTable              `json:"matched"`
	Unmatched   jsonTable              `json:"unmatched"`
	Diagnostics []reconcile.Diagnostic `json:"diagnostics,omitempty"`
}

// ReportJSON writes the whole pass as pretty-printed JSON for scripting.
func ReportJSON(w io.Writer, r *reconcile.Report) error {
	out := jsonReport{
		RunID:       r.RunID.String(),
		MetadataKey: r.MetadataKey,
		CustomerKey: r.CustomerKey,
		Matched:     toJSONTable(r.Matched),
		Unmatched:   toJSONTable(r.Unmatched),
		Diagnostics: r.Diagnostics,
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func toJSONTable(t table.Table) jsonTable {
	rows := t.Rows
	if rows == nil {
		rows = []table.Row{}
	}
	cols := t.Columns
	if cols == nil {
		cols = []string{}
	}
	return jsonTable{Columns: cols, Rows: rows, Count: t.RowCount()}
}
