// Package storage gives the builder access to the links source directory
// and the generated catalog file.
package storage

// SourceFile describes one candidate category file in the links directory.
type SourceFile struct {
	Name     string // file name including the .yaml suffix
	Stem     string // file name without the suffix, keys the category table
	Checksum string // hex SHA-256 of the file content
}

// Provider is the interface for source discovery and output persistence.
type Provider interface {
	// List returns every .yaml file in the links directory, sorted by name.
	List() ([]SourceFile, error)
	// Read returns the raw bytes of a source file by name.
	Read(name string) ([]byte, error)
	// WriteOutput atomically writes the generated catalog to path.
	WriteOutput(path string, data []byte) error
}
