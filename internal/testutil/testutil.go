// Package testutil provides shared helpers for setting up link source
// directories in tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osintlab/linkforge/internal/storage"
)

// MinimalSource is the body of a source file containing one valid entry.
const MinimalSource = `- id: example
  display: Example
  url: https://example.com/{query}
  types: [domain]
`

// WriteSource writes content to name inside dir, failing the test on error.
func WriteSource(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// TestLinksDir creates a temporary links directory pre-populated with the
// given name to content source files, and a storage.Provider over it.
func TestLinksDir(t *testing.T, files map[string]string) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		WriteSource(t, dir, name, content)
	}
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}
