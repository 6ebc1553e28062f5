package shell_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runx/internal/adapters/shell"
	"go.trai.ch/runx/internal/core/domain"
	"go.trai.ch/runx/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newLauncher(t *testing.T) *shell.Launcher {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	l := shell.NewLauncher(mockLogger)
	l.Stdin = strings.NewReader("")
	return l
}

func shInvocation(dir, script string) domain.Invocation {
	return domain.Invocation{Interpreter: "sh", Args: []string{"-c", script}, Dir: dir}
}

func TestLauncher_Launch_Output(t *testing.T) {
	l := newLauncher(t)

	var stdout, stderr bytes.Buffer
	err := l.Launch(t.Context(), shInvocation(t.TempDir(), "echo out; echo err >&2"), &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestLauncher_Launch_WorkingDirectory(t *testing.T) {
	l := newLauncher(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("here"), 0o600))

	var stdout bytes.Buffer
	err := l.Launch(t.Context(), shInvocation(dir, "cat marker.txt"), &stdout, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, "here", stdout.String())
}

func TestLauncher_Launch_InheritsEnvironment(t *testing.T) {
	t.Setenv("RUNX_TEST_VAR", "inherited-123")
	l := newLauncher(t)

	var stdout bytes.Buffer
	err := l.Launch(t.Context(), shInvocation(t.TempDir(), "echo $RUNX_TEST_VAR"), &stdout, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, "inherited-123\n", stdout.String())
}

func TestLauncher_Launch_Stdin(t *testing.T) {
	l := newLauncher(t)
	l.Stdin = strings.NewReader("from stdin")

	var stdout bytes.Buffer
	err := l.Launch(t.Context(), shInvocation(t.TempDir(), "cat"), &stdout, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, "from stdin", stdout.String())
}

func TestLauncher_Launch_ExitCode(t *testing.T) {
	l := newLauncher(t)

	err := l.Launch(t.Context(), shInvocation(t.TempDir(), "exit 3"), io.Discard, io.Discard)

	require.ErrorIs(t, err, domain.ErrScriptFailed)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
}

func TestLauncher_Launch_InterpreterNotFound(t *testing.T) {
	l := newLauncher(t)
	inv := domain.Invocation{Interpreter: "runx-definitely-not-installed", Args: []string{"run"}, Dir: t.TempDir()}

	err := l.Launch(t.Context(), inv, io.Discard, io.Discard)

	require.ErrorIs(t, err, domain.ErrInterpreterNotFound)
	assert.False(t, errors.Is(err, domain.ErrScriptFailed))
}

func TestLauncher_Launch_RelativeInterpreter(t *testing.T) {
	l := newLauncher(t)
	dir := t.TempDir()
	script := "#!/bin/sh\necho \"fake $*\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fake-deno"), []byte(script), 0o700)) //nolint:gosec // test executable

	var stdout bytes.Buffer
	inv := domain.Invocation{Interpreter: "./fake-deno", Args: []string{"run", "main.ts"}, Dir: dir}
	err := l.Launch(t.Context(), inv, &stdout, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, "fake run main.ts\n", stdout.String())
}

func TestLauncher_Launch_EmptyPath(t *testing.T) {
	l := newLauncher(t)
	l.Env = []string{"PATH="}

	err := l.Launch(t.Context(), shInvocation(t.TempDir(), "true"), io.Discard, io.Discard)

	require.ErrorIs(t, err, domain.ErrInterpreterNotFound)
}

func TestLauncher_Launch_Cancelled(t *testing.T) {
	l := newLauncher(t)
	l.WaitDelay = time.Second

	ctx, cancel := context.WithTimeout(t.Context(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := l.Launch(ctx, shInvocation(t.TempDir(), "sleep 10"), io.Discard, io.Discard)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}
