package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir serves files from a local directory. It exists for offline use and
// for driving the engine in tests without S3.
type Dir struct {
	root string
}

// NewDir returns a Dir rooted at root.
func NewDir(root string) (*Dir, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("source directory is required")
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}
	return &Dir{root: root}, nil
}

// Fetch reads one file. The key is confined to the directory.
func (d *Dir) Fetch(_ context.Context, key string) ([]byte, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("empty file key: %w", ErrNotFound)
	}
	b, err := os.ReadFile(filepath.Join(d.root, filepath.Base(key)))
	if err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return b, nil
}

// List returns the directory's parseable file names in lexical order.
func (d *Dir) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("list source directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !Supported(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
