package workspace

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"

	"go.trai.ch/runx/internal/core/domain"
)

// Locator finds the workspace file in a directory.
type Locator struct {
	FS FileSystem
	// Candidates are the file names tried in order.
	Candidates []string
}

// Find returns the path of the first candidate in dir that exists as a regular file.
//
// When no candidate exists it returns a *domain.LoadError of kind LoadNotFound. Any other
// stat failure is returned unchanged.
func (l *Locator) Find(dir string) (string, error) {
	for _, name := range l.Candidates {
		path := filepath.Join(dir, name)
		info, err := l.FS.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", err
		}
		if !info.Mode().IsRegular() {
			continue
		}
		return path, nil
	}

	return "", &domain.LoadError{
		Kind:       domain.LoadNotFound,
		Candidates: slices.Clone(l.Candidates),
	}
}
