// Package app implements the application layer for runx.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/runx/internal/core/domain"
	"go.trai.ch/runx/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader     ports.WorkspaceLoader
	encoder    ports.WorkspaceEncoder
	translator ports.FlagTranslator
	launcher   ports.Launcher
	logger     ports.Logger
	stdout     io.Writer
	stderr     io.Writer
}

// New creates a new App instance writing to the process stdout and stderr.
func New(
	loader ports.WorkspaceLoader,
	encoder ports.WorkspaceEncoder,
	translator ports.FlagTranslator,
	launcher ports.Launcher,
	log ports.Logger,
) *App {
	return &App{
		loader:     loader,
		encoder:    encoder,
		translator: translator,
		launcher:   launcher,
		logger:     log,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// WithOutput redirects the output of the App and of the scripts it launches.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Dir is the workspace directory. Empty means the current directory.
	Dir string
	// Interpreter overrides the interpreter executable.
	Interpreter string
	// Args are appended after the task's own arguments.
	Args []string
	// DryRun prints the command line instead of running it.
	DryRun bool
}

// Run loads the workspace, resolves taskName and runs its script.
func (a *App) Run(ctx context.Context, taskName string, opts RunOptions) error {
	if taskName == "" {
		return domain.ErrNoTaskSpecified
	}

	dir := workspaceDir(opts.Dir)

	// 1. Load the workspace
	ws, err := a.loader.Load(ctx, dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load workspace")
	}

	// 2. Resolve the task
	task, err := ws.Lookup(taskName)
	if err != nil {
		if names := ws.TaskNames(); len(names) > 0 {
			err = zerr.With(err, "available", strings.Join(names, ", "))
		}
		return err
	}

	// 3. Translate options
	flags, err := a.translator.Translate(task.Options)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid run options"), "task", task.Name)
	}

	inv, err := domain.NewInvocation(opts.Interpreter, dir, task, flags, opts.Args)
	if err != nil {
		return err
	}

	if opts.DryRun {
		_, err := fmt.Fprintln(a.stdout, inv.String())
		return err
	}

	// 4. Launch
	if err := a.launcher.Launch(ctx, inv, a.stdout, a.stderr); err != nil {
		return zerr.With(zerr.Wrap(err, "task failed"), "task", task.Name)
	}
	return nil
}

// List prints the tasks of the workspace in dir, one "name  script" line each.
func (a *App) List(ctx context.Context, dir string) error {
	ws, err := a.loader.Load(ctx, workspaceDir(dir))
	if err != nil {
		return zerr.Wrap(err, "failed to load workspace")
	}

	names := ws.TaskNames()
	if len(names) == 0 {
		a.logger.Warn("workspace defines no tasks")
		return nil
	}

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(a.stdout, "%-*s  %s\n", width, name, ws[name].Script); err != nil {
			return err
		}
	}
	return nil
}

// Export writes the workspace in dir as YAML, whatever format it was written in.
func (a *App) Export(ctx context.Context, dir string) error {
	ws, err := a.loader.Load(ctx, workspaceDir(dir))
	if err != nil {
		return zerr.Wrap(err, "failed to load workspace")
	}
	return a.encoder.Encode(a.stdout, ws)
}

func workspaceDir(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}
