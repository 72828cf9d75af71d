package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/datareef/reconcile-cli/internal/table"
)

// parseCSV reads the first record as the header and maps every following
// record positionally. Values stay strings; the only recognition performed
// is empty cell -> null. Short records are padded with nulls; a record with
// more fields than the header is a parse failure.
func parseCSV(data []byte) (table.Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return table.Table{}, nil
		}
		return table.Table{}, fmt.Errorf("read header: %w", err)
	}

	t := table.New(dedupeColumns(header)...)
	for rec := 1; ; rec++ {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return table.Table{}, fmt.Errorf("read row: %w", err)
		}
		if len(fields) > len(t.Columns) {
			return table.Table{}, fmt.Errorf("record %d: %d fields, expected at most %d", rec, len(fields), len(t.Columns))
		}
		row := make(table.Row, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(fields) && fields[i] != "" {
				row[col] = table.String(fields[i])
			}
		}
		t.AppendRow(row)
	}
	return t, nil
}

// dedupeColumns disambiguates repeated header names by appending ".1", ".2"
// and so on to later occurrences, keeping the declared-columns-unique
// invariant without rejecting the file.
func dedupeColumns(header []string) []string {
	seen := make(map[string]int, len(header))
	out := make([]string, len(header))
	for i, col := range header {
		n := seen[col]
		seen[col] = n + 1
		if n > 0 {
			col = col + "." + strconv.Itoa(n)
		}
		out[i] = col
	}
	return out
}
