// Package parser converts raw file bytes of a declared format into the
// uniform table representation used by the reconciliation engine.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/datareef/reconcile-cli/internal/table"
)

// Format enumerates the supported input formats. Dispatch over Format is
// closed: adding a format means adding a constant and a case, checked at
// compile time rather than by string matching.
type Format int

const (
	FormatUnknown Format = iota
	FormatCSV
	FormatJSON
	FormatXML
)

// String returns the conventional upper-case name of the format.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "CSV"
	case FormatJSON:
		return "JSON"
	case FormatXML:
		return "XML"
	default:
		return "UNKNOWN"
	}
}

// FormatFromPath derives the format from a file name's extension,
// case-insensitively. Anything but .csv/.json/.xml is FormatUnknown.
func FormatFromPath(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV
	case ".json":
		return FormatJSON
	case ".xml":
		return FormatXML
	default:
		return FormatUnknown
	}
}

// ErrUnsupportedFormat indicates a format the parser will not attempt to decode.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ParseError reports a recoverable decode failure for one source file.
// The reconciliation pass continues with an empty table when it occurs.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes data of the given format into a table. On any failure it
// returns an empty table together with a *ParseError carrying the source
// name; it never panics and never returns a partially decoded table.
func Parse(data []byte, format Format, source string) (table.Table, error) {
	var (
		t   table.Table
		err error
	)
	switch format {
	case FormatCSV:
		t, err = parseCSV(data)
	case FormatJSON:
		t, err = parseJSON(data)
	case FormatXML:
		t, err = parseXML(data)
	default:
		// No decode is attempted for unrecognized formats.
		err = ErrUnsupportedFormat
	}
	if err != nil {
		return table.Table{}, &ParseError{Source: source, Err: err}
	}
	return t, nil
}
