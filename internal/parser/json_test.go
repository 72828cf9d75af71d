package parser_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/datareef/reconcile-cli/internal/parser"
)

func TestParseJSON(t *testing.T) {
	data := []byte(`[{"id":1,"file":"a.jpg"},{"id":2,"file":"b.jpg"}]`)
	tab, err := parser.Parse(data, parser.FormatJSON, "metadata.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if want := []string{"id", "file"}; !reflect.DeepEqual(tab.Columns, want) {
		t.Fatalf("columns = %v, want %v", tab.Columns, want)
	}
	if v := tab.Get(0, "id"); v.String != "1" {
		t.Fatalf("id = %+v, want literal 1", v)
	}
	if v := tab.Get(1, "file"); v.String != "b.jpg" {
		t.Fatalf("file = %+v, want b.jpg", v)
	}
}

func TestParseJSONSchemaIsUnionOfKeys(t *testing.T) {
	data := []byte(`[{"id":1},{"id":2,"extra":"x"}]`)
	tab, err := parser.Parse(data, parser.FormatJSON, "metadata.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if want := []string{"id", "extra"}; !reflect.DeepEqual(tab.Columns, want) {
		t.Fatalf("columns = %v, want %v", tab.Columns, want)
	}
	if v := tab.Get(0, "extra"); v.Valid {
		t.Fatalf("absent key = %+v, want null", v)
	}
}

func TestParseJSONScalars(t *testing.T) {
	data := []byte(`[{"n":1.50,"b":true,"s":"x","z":null}]`)
	tab, err := parser.Parse(data, parser.FormatJSON, "metadata.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v := tab.Get(0, "n"); v.String != "1.50" {
		t.Fatalf("number literal = %+v, want 1.50 verbatim", v)
	}
	if v := tab.Get(0, "b"); v.String != "true" {
		t.Fatalf("bool = %+v, want true", v)
	}
	if v := tab.Get(0, "z"); v.Valid {
		t.Fatalf("json null = %+v, want null cell", v)
	}
}

func TestParseJSONNestedValueKeptAsText(t *testing.T) {
	data := []byte(`[{"id":1,"tags":["a", "b"]}]`)
	tab, err := parser.Parse(data, parser.FormatJSON, "metadata.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v := tab.Get(0, "tags"); v.String != `["a","b"]` {
		t.Fatalf("nested value = %+v, want compact JSON text", v)
	}
}

func TestParseJSONRejectsNonArray(t *testing.T) {
	for _, data := range []string{`{"id":1}`, `"hello"`, `42`} {
		_, err := parser.Parse([]byte(data), parser.FormatJSON, "metadata.json")
		var pe *parser.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("input %s: expected *ParseError, got %v", data, err)
		}
	}
}

func TestParseJSONRejectsNonObjectElement(t *testing.T) {
	_, err := parser.Parse([]byte(`[1, 2]`), parser.FormatJSON, "metadata.json")
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestParseJSONEmptyArray(t *testing.T) {
	tab, err := parser.Parse([]byte(`[]`), parser.FormatJSON, "metadata.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !tab.IsEmpty() || tab.RowCount() != 0 {
		t.Fatalf("expected zero columns and rows, got %v / %d", tab.Columns, tab.RowCount())
	}
}
