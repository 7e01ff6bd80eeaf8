package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/osintlab/linkforge/internal/checksum"
)

// FS implements Provider over a local links directory.
type FS struct {
	root string // absolute path to the links directory
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// safePath resolves a source file name inside the links root and rejects
// anything that would escape it. Source files live in a flat directory,
// so any path component beyond a bare name is refused.
func (f *FS) safePath(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if cleaned != name || filepath.IsAbs(cleaned) || strings.ContainsRune(cleaned, os.PathSeparator) {
		return "", fmt.Errorf("storage: invalid source name: %s", name)
	}
	return filepath.Join(f.root, cleaned), nil
}

// List returns metadata for every .yaml file in the links directory.
// os.ReadDir yields entries sorted by name, which fixes both output
// ordering and first-seen duplicate semantics across runs.
func (f *FS) List() ([]SourceFile, error) {
	entries, err := os.ReadDir(f.root)
	if err != nil {
		return nil, fmt.Errorf("storage: list: %w", err)
	}
	var out []SourceFile
	for _, d := range entries {
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".yaml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(f.root, d.Name()))
		if err != nil {
			return nil, fmt.Errorf("storage: read %s: %w", d.Name(), err)
		}
		out = append(out, SourceFile{
			Name:     d.Name(),
			Stem:     strings.TrimSuffix(d.Name(), ".yaml"),
			Checksum: checksum.Sum(data),
		})
	}
	return out, nil
}

// Read returns the raw bytes of a source file.
func (f *FS) Read(name string) ([]byte, error) {
	abs, err := f.safePath(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", name, err)
	}
	return data, nil
}

// WriteOutput atomically writes the catalog: tmp file → fsync → rename.
// A crashed run never leaves a half-written catalog behind.
func (f *FS) WriteOutput(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".linkforge-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}
