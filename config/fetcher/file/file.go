package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher interface for file-based configuration.
// It re-reads the file on every Fetch call: a dbt project file is rewritten
// between runs, so caching the contents at construction time would hand stale
// configuration to later callers.
type Fetcher struct {
	filepath string
}

// NewFetcher returns a constructor function that creates a new file-based
// Fetcher for the specified filepath. This pattern is Fx-friendly, allowing
// the DI container to control when instantiation happens. The constructor
// fails if the path exists and points to a directory; a missing file is not
// an error until Fetch is called, since the project file may be created
// later (e.g. inside a freshly-cloned temporary project dir).
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err == nil && stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		return &Fetcher{filepath: cleanPath}, nil
	}
}

// Fetch reads and returns the current file contents.
func (f *Fetcher) Fetch() ([]byte, error) {
	data, err := os.ReadFile(f.filepath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", f.filepath, err)
	}

	return data, nil
}

// Path returns the cleaned path this fetcher reads from.
func (f *Fetcher) Path() string {
	return f.filepath
}
