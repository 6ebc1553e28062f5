package domain

import "go.trai.ch/zerr"

var (
	// ErrWorkspaceNotFound is returned when none of the workspace file candidates exist.
	ErrWorkspaceNotFound = zerr.New("workspace file not found")

	// ErrWorkspaceMalformed is returned when a workspace file exists but cannot be turned into a workspace.
	ErrWorkspaceMalformed = zerr.New("workspace file is malformed")

	// ErrNoTaskSpecified is returned when the run command is invoked without a task name.
	ErrNoTaskSpecified = zerr.New("no task specified")

	// ErrTaskNotFound is returned when a requested task is not defined in the workspace.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrMissingScript is returned when a task has no script to run.
	ErrMissingScript = zerr.New("task has no script")

	// ErrUnknownOption is returned when a task declares a run option with no matching flag.
	ErrUnknownOption = zerr.New("unknown run option")

	// ErrInvalidOptionValue is returned when a run option value has the wrong kind for its flag.
	ErrInvalidOptionValue = zerr.New("invalid run option value")

	// ErrInterpreterNotFound is returned when the interpreter executable cannot be found on PATH.
	ErrInterpreterNotFound = zerr.New("interpreter not found")

	// ErrScriptFailed is returned when the interpreter exits with a non-zero status.
	ErrScriptFailed = zerr.New("script failed")

	// ErrWorkspaceEncodeFailed is returned when a workspace cannot be written out.
	ErrWorkspaceEncodeFailed = zerr.New("failed to encode workspace")
)
