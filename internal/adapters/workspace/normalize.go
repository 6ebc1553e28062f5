package workspace

import (
	"errors"
	"io/fs"

	"go.trai.ch/runx/internal/core/domain"
)

// normalize maps any failure of a load into a *domain.LoadError.
func normalize(path string, candidates []string, err error) error {
	if err == nil {
		return nil
	}

	var loadErr *domain.LoadError
	if errors.As(err, &loadErr) {
		return loadErr
	}

	var decErr *decodeError
	switch {
	case errors.As(err, &decErr):
		return &domain.LoadError{
			Kind:   domain.LoadMalformed,
			Path:   path,
			Reason: decErr.reason,
			Detail: decErr.Error(),
			Err:    decErr.err,
		}
	case errors.Is(err, fs.ErrNotExist):
		return &domain.LoadError{
			Kind:       domain.LoadNotFound,
			Path:       path,
			Candidates: candidates,
			Err:        err,
		}
	default:
		return &domain.LoadError{
			Kind: domain.LoadOther,
			Path: path,
			Err:  err,
		}
	}
}
