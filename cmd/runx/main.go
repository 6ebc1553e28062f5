// Package main is the entry point for the runx task runner.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/runx/cmd/runx/commands"
	"go.trai.ch/runx/internal/app"
	"go.trai.ch/runx/internal/core/domain"
	_ "go.trai.ch/runx/internal/wiring"
)

// exitInterrupted is the conventional status of a process stopped by SIGINT.
const exitInterrupted = 130

// outputSetter is implemented by loggers whose destination can be changed.
type outputSetter interface {
	SetOutput(w io.Writer)
}

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, graftProvider))
}

func graftProvider(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, func() {}, err
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger is not available if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	components.App.WithOutput(stdout, stderr)
	if o, ok := components.Logger.(outputSetter); ok {
		o.SetOutput(stderr)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App).WithLogger(components.Logger)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		return exitCode(err, components)
	}
	return 0
}

// exitCode maps a command error to the process exit status. A failed script has
// already written its own diagnostics, so only its status is propagated.
func exitCode(err error, components *app.Components) int {
	if errors.Is(err, domain.ErrScriptFailed) {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			return exitErr.ExitCode()
		}
		return 1
	}
	if errors.Is(err, context.Canceled) {
		return exitInterrupted
	}
	components.Logger.Error(err)
	return 1
}
