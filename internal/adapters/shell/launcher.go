// Package shell runs the interpreter as a child process.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/runx/internal/core/domain"
	"go.trai.ch/runx/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultWaitDelay is how long a cancelled interpreter may take to exit after the interrupt.
const DefaultWaitDelay = 5 * time.Second

// Launcher implements ports.Launcher using os/exec.
//
// The child inherits stdin and the full environment of runx.
type Launcher struct {
	logger ports.Logger

	// Stdin is connected to the child's standard input.
	Stdin io.Reader
	// Env is the child's environment. Nil means os.Environ().
	Env []string
	// WaitDelay bounds the wait after an interrupt before the child is killed.
	WaitDelay time.Duration
}

// NewLauncher creates a Launcher bound to the process stdin.
func NewLauncher(logger ports.Logger) *Launcher {
	return &Launcher{
		logger:    logger,
		Stdin:     os.Stdin,
		WaitDelay: DefaultWaitDelay,
	}
}

// Launch runs inv to completion in inv.Dir.
//
// On context cancellation the child receives os.Interrupt and is killed if it is still
// running after WaitDelay. A non-zero exit is reported with exit_code metadata and keeps
// the *exec.ExitError in the chain.
func (l *Launcher) Launch(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) error {
	env := l.Env
	if env == nil {
		env = os.Environ()
	}

	executable, err := lookPath(inv.Interpreter, inv.Dir, env)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInterpreterNotFound, "cannot start script"), "interpreter", inv.Interpreter)
	}

	cmd := exec.CommandContext(ctx, executable, inv.Args...) //nolint:gosec // interpreter comes from the user
	if len(cmd.Args) > 0 {
		cmd.Args[0] = inv.Interpreter
	}
	cmd.Dir = inv.Dir
	cmd.Env = env
	cmd.Stdin = l.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Cancel = func() error {
		if l.logger != nil {
			l.logger.Warn(fmt.Sprintf("interrupted, waiting for %s to exit", inv.Interpreter))
		}
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = l.WaitDelay

	err = cmd.Run()
	if err == nil {
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return zerr.With(zerr.Wrap(ctxErr, "script interrupted"), "interpreter", inv.Interpreter)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		failed := fmt.Errorf("%w: %w", domain.ErrScriptFailed, exitErr)
		return zerr.With(zerr.Wrap(failed, "failed to run "+inv.Interpreter), "exit_code", exitErr.ExitCode())
	}

	return zerr.With(zerr.Wrap(err, "failed to run "+inv.Interpreter), "exit_code", -1)
}

// lookPath resolves name like a shell would, using the PATH found in env.
// Names containing a path separator are resolved against dir.
func lookPath(name, dir string, env []string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if err := findExecutable(path); err != nil {
			return "", err
		}
		return path, nil
	}

	var pathList string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			pathList = v
		}
	}

	for _, d := range filepath.SplitList(pathList) {
		if d == "" {
			// Unix shell semantics: path element "" means "."
			d = "."
		}
		path := filepath.Join(d, name)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
