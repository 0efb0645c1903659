package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Source reads configuration text from a file. It implements the
// greina.Source interface.
type Source struct {
	path string
}

// New creates a Source for the given path. The path is cleaned immediately;
// no filesystem access happens until Fetch.
func New(fpath string) *Source {
	return &Source{path: filepath.Clean(fpath)}
}

// Name returns the cleaned file path, used as the document's source identifier.
func (s *Source) Name() string {
	return s.path
}

// Fetch reads the file and returns its contents. Each call performs a fresh
// read; the underlying handle is closed before Fetch returns.
func (s *Source) Fetch() ([]byte, error) {
	stat, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", s.path, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", s.path, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(s.path) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", s.path, err)
	}

	return data, nil
}
