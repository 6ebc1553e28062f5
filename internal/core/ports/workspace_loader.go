package ports

import (
	"context"
	"io"

	"go.trai.ch/runx/internal/core/domain"
)

// WorkspaceLoader defines the interface for locating and loading the workspace description.
//
//go:generate mockgen -source=workspace_loader.go -destination=mocks/mock_workspace_loader.go -package=mocks
type WorkspaceLoader interface {
	// Load finds the workspace file in dir and returns the workspace it describes.
	// Failures are *domain.LoadError values.
	Load(ctx context.Context, dir string) (domain.Workspace, error)
}

// WorkspaceEncoder writes a workspace back out in the structured-data format.
type WorkspaceEncoder interface {
	Encode(w io.Writer, ws domain.Workspace) error
}
