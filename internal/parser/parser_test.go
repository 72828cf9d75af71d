package parser_test

import (
	"errors"
	"testing"

	"github.com/datareef/reconcile-cli/internal/parser"
)

func TestFormatFromPath(t *testing.T) {
	cases := []struct {
		name string
		want parser.Format
	}{
		{"metadata.csv", parser.FormatCSV},
		{"records.JSON", parser.FormatJSON},
		{"export.Xml", parser.FormatXML},
		{"nested/dir/customers.csv", parser.FormatCSV},
		{"notes.txt", parser.FormatUnknown},
		{"noextension", parser.FormatUnknown},
	}
	for _, tc := range cases {
		if got := parser.FormatFromPath(tc.name); got != tc.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	tab, err := parser.Parse([]byte("anything"), parser.FormatUnknown, "notes.txt")
	if !tab.IsEmpty() || tab.RowCount() != 0 {
		t.Fatalf("expected empty table, got %d columns, %d rows", len(tab.Columns), tab.RowCount())
	}
	if !errors.Is(err, parser.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Source != "notes.txt" {
		t.Fatalf("ParseError.Source = %q, want notes.txt", pe.Source)
	}
}

func TestParseFailureCarriesSourceName(t *testing.T) {
	_, err := parser.Parse([]byte("{not json"), parser.FormatJSON, "customers.json")
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Source != "customers.json" {
		t.Fatalf("ParseError.Source = %q, want customers.json", pe.Source)
	}
}
