package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/datareef/reconcile-cli/internal/table"
)

// parseJSON decodes a top-level array of flat objects. The column schema is
// the union of keys in first-seen order; a key absent from an object is null
// for that row. Scalars keep their literal text (numbers are not reformatted);
// nested arrays/objects are kept as their compact JSON text rather than
// traversed. Any other top-level shape is an error.
func parseJSON(data []byte) (table.Table, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(data), &elements); err != nil {
		return table.Table{}, fmt.Errorf("expected a top-level JSON array of objects: %w", err)
	}

	var t table.Table
	declared := make(map[string]bool)
	rows := make([]table.Row, 0, len(elements))

	for i, raw := range elements {
		keys, err := objectKeys(raw)
		if err != nil {
			return table.Table{}, fmt.Errorf("element %d: %w", i, err)
		}
		var values map[string]json.RawMessage
		if err := json.Unmarshal(raw, &values); err != nil {
			return table.Table{}, fmt.Errorf("element %d: %w", i, err)
		}
		row := make(table.Row, len(keys))
		for _, k := range keys {
			if !declared[k] {
				declared[k] = true
				t.Columns = append(t.Columns, k)
			}
			row[k] = jsonValue(values[k])
		}
		rows = append(rows, row)
	}

	// Rows are appended after the full schema is known so every row carries
	// an entry for every declared column.
	for _, row := range rows {
		t.AppendRow(row)
	}
	return t, nil
}

// objectKeys returns the keys of one JSON object in document order.
func objectKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("array element is not an object")
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key token %v", tok)
		}
		keys = append(keys, key)
		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// skipValue consumes one JSON value, descending through any nesting.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

// jsonValue converts a raw JSON value into a cell.
func jsonValue(raw json.RawMessage) table.Value {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return table.Null()
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return table.String(s)
		}
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err == nil {
			return table.String(buf.String())
		}
	}
	// Number or boolean literal, kept verbatim.
	return table.String(string(trimmed))
}
