package ports

import (
	"context"
	"io"

	"go.trai.ch/runx/internal/core/domain"
)

// Launcher defines the interface for running the interpreter as a subprocess.
//
//go:generate mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Launcher interface {
	// Launch runs the invocation to completion, streaming its output to stdout and stderr.
	//
	// It returns an error if the interpreter cannot be started or exits with a non-zero status.
	Launch(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) error
}
