// Package source provides the byte-source collaborators the engine reads
// from: given a file key, a Source returns the full content or an explicit
// not-found failure. Retries, streaming and partial reads are deliberately
// out of scope; the reconciliation pass never retries on its own.
package source

import (
	"context"
	"errors"
	"path"
	"strings"
)

// ErrNotFound signals that a source cannot produce content for a key:
// the object is missing, the key is empty, or access was denied.
var ErrNotFound = errors.New("no content available")

// Source fetches whole files and lists the candidate file names of one
// configured location.
type Source interface {
	// Fetch returns the complete byte content of one file. A missing or
	// inaccessible key yields an error wrapping ErrNotFound.
	Fetch(ctx context.Context, key string) ([]byte, error)

	// List returns file names filtered to the extensions the parser
	// understands (csv, json, xml), in a stable order.
	List(ctx context.Context) ([]string, error)
}

// Supported reports whether name carries an extension the parser can decode.
func Supported(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".csv", ".json", ".xml":
		return true
	default:
		return false
	}
}
