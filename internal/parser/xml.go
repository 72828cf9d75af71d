package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/datareef/reconcile-cli/internal/table"
)

// parseXML decodes a document with one root element containing repeated
// record elements. Each record's immediate child elements become columns
// named by their tag; the cell value is the flattened text content of the
// child's subtree (deeper structure is not preserved). A record with
// duplicate child tags keeps the last occurrence. Attributes are ignored.
func parseXML(data []byte) (table.Table, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	if _, err := nextStartElement(dec); err != nil {
		if errors.Is(err, io.EOF) {
			return table.Table{}, errors.New("missing root element")
		}
		return table.Table{}, err
	}

	var t table.Table
	declared := make(map[string]bool)
	var rows []table.Row

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return table.Table{}, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			row, cols, err := parseRecord(dec, el)
			if err != nil {
				return table.Table{}, err
			}
			for _, col := range cols {
				if !declared[col] {
					declared[col] = true
					t.Columns = append(t.Columns, col)
				}
			}
			rows = append(rows, row)
		case xml.EndElement:
			// End of the root element.
			for _, row := range rows {
				t.AppendRow(row)
			}
			return t, nil
		}
	}
	return table.Table{}, errors.New("unexpected end of document")
}

// parseRecord consumes one record element and returns its cells together
// with the child tag names in document order.
func parseRecord(dec *xml.Decoder, record xml.StartElement) (table.Row, []string, error) {
	row := make(table.Row)
	var cols []string
	seen := make(map[string]bool)
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("record <%s>: %w", record.Name.Local, err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			text, err := flattenText(dec, el)
			if err != nil {
				return nil, nil, err
			}
			col := el.Name.Local
			if !seen[col] {
				seen[col] = true
				cols = append(cols, col)
			}
			if text == "" {
				row[col] = table.Null()
			} else {
				row[col] = table.String(text)
			}
		case xml.EndElement:
			return row, cols, nil
		}
	}
}

// flattenText consumes the element's subtree and returns all character data
// within it, trimmed of surrounding whitespace.
func flattenText(dec *xml.Decoder, start xml.StartElement) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return "", fmt.Errorf("element <%s>: %w", start.Name.Local, err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			sb.Write(el)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// nextStartElement advances the decoder to the next start element.
func nextStartElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if el, ok := tok.(xml.StartElement); ok {
			return el, nil
		}
	}
}
