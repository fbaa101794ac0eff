package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// A Writer materializes generated configuration files under an output
// directory. Directory creation is idempotent, so re-running generation
// against an already-populated output location overwrites cleanly.
type Writer struct {
	outputDir string
}

// New builds a Writer.
func New(opts ...Option) (*Writer, error) {
	s := newSettings()

	s.apply(append(defaultOptions(), opts...))

	err := s.validate()
	if err != nil {
		return nil, fmt.Errorf("invalid writer options: %w", err)
	}

	return &Writer{
		outputDir: s.outputDir,
	}, nil
}

// OutputDir returns the directory the Writer writes into.
func (w *Writer) OutputDir() string {
	return w.outputDir
}

// Write writes each file under the output directory, creating intermediate
// directories as needed. Paths in the map are slash-separated and relative
// to the output root. Files are written in sorted path order so that
// progress output is deterministic; nothing depends on that order, since
// every file has a distinct path.
func (w *Writer) Write(files map[string][]byte) error {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		target := filepath.Join(w.outputDir, filepath.FromSlash(p))

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %q: %w", p, err)
		}

		if err := os.WriteFile(target, files[p], 0644); err != nil {
			return fmt.Errorf("failed to write %q: %w", p, err)
		}
	}

	return nil
}
