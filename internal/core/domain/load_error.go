package domain

import "strings"

// LoadErrorKind classifies a workspace load failure.
type LoadErrorKind int

const (
	// LoadOther is a failure the loader does not recognize. It is passed through unchanged.
	LoadOther LoadErrorKind = iota
	// LoadNotFound means no workspace file candidate exists.
	LoadNotFound
	// LoadMalformed means a workspace file exists but does not describe a workspace.
	LoadMalformed
)

func (k LoadErrorKind) String() string {
	switch k {
	case LoadNotFound:
		return "not_found"
	case LoadMalformed:
		return "malformed"
	default:
		return "other"
	}
}

// Reasons attached to LoadMalformed errors.
const (
	ReasonSyntax        = "syntax"
	ReasonEvaluation    = "evaluation"
	ReasonMissingExport = "missing_export"
	ReasonShape         = "shape"
)

// LoadError is the single error type returned by a workspace load.
//
// errors.Is matches ErrWorkspaceNotFound for LoadNotFound and ErrWorkspaceMalformed for
// LoadMalformed. LoadOther only unwraps to the original error.
type LoadError struct {
	Kind LoadErrorKind
	// Path is the workspace file involved, empty for LoadNotFound.
	Path string
	// Candidates lists the file names that were searched.
	Candidates []string
	// Reason is one of the Reason* constants for LoadMalformed.
	Reason string
	// Detail is the underlying parser or runtime message for LoadMalformed.
	Detail string
	Err    error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	switch e.Kind {
	case LoadNotFound:
		return ErrWorkspaceNotFound.Error()
	case LoadMalformed:
		if e.Detail == "" {
			return ErrWorkspaceMalformed.Error()
		}
		return ErrWorkspaceMalformed.Error() + ": " + e.Detail
	default:
		if e.Err == nil {
			return "workspace load failed"
		}
		return e.Err.Error()
	}
}

// Message returns the message of this error alone, without its cause.
func (e *LoadError) Message() string {
	switch e.Kind {
	case LoadNotFound:
		return ErrWorkspaceNotFound.Error()
	case LoadMalformed:
		return ErrWorkspaceMalformed.Error()
	default:
		return ""
	}
}

// Metadata returns the structured fields attached to the error.
func (e *LoadError) Metadata() map[string]any {
	meta := make(map[string]any)
	if e.Path != "" {
		meta["path"] = e.Path
	}
	if e.Reason != "" {
		meta["reason"] = e.Reason
	}
	if e.Kind == LoadNotFound && len(e.Candidates) > 0 {
		meta["candidates"] = strings.Join(e.Candidates, ", ")
	}
	return meta
}

// Unwrap returns the underlying failure.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *LoadError) Is(target error) bool {
	switch e.Kind {
	case LoadNotFound:
		return target == ErrWorkspaceNotFound
	case LoadMalformed:
		return target == ErrWorkspaceMalformed
	default:
		return false
	}
}
