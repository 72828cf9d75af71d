package reconcile

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/datareef/reconcile-cli/internal/table"
)

// NormalizeHeaders rewrites column names into a display-friendly form:
// underscores become spaces and the first letter of each word is upper-cased,
// the remainder left as-is. Purely cosmetic and idempotent; the input table
// is not mutated and row content is carried over unchanged. Two columns
// collapsing to the same display name are disambiguated with ".1", ".2"
// suffixes on later occurrences so neither column's data is lost.
func NormalizeHeaders(t table.Table) table.Table {
	caser := cases.Title(language.English, cases.NoLower)

	seen := make(map[string]int, len(t.Columns))
	cols := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		name := caser.String(strings.ReplaceAll(col, "_", " "))
		n := seen[name]
		seen[name] = n + 1
		if n > 0 {
			name = name + "." + strconv.Itoa(n)
		}
		cols[i] = name
	}

	out := table.New(cols...)
	for _, row := range t.Rows {
		renamed := make(table.Row, len(cols))
		for i, col := range t.Columns {
			renamed[cols[i]] = row[col]
		}
		out.AppendRow(renamed)
	}
	return out
}
