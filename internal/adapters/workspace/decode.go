package workspace

import (
	"context"

	"go.trai.ch/runx/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Decoder turns the content of a workspace file into a workspace.
//
// Content that does not describe a workspace must be reported through malformed so the
// loader can classify it.
type Decoder interface {
	Decode(ctx context.Context, path string, data []byte) (domain.Workspace, error)
}

// decodeError marks a failure caused by the file content rather than by the environment.
type decodeError struct {
	reason string
	err    error
}

func (e *decodeError) Error() string {
	return e.err.Error()
}

func (e *decodeError) Unwrap() error {
	return e.err
}

func malformed(reason string, err error) error {
	return &decodeError{reason: reason, err: err}
}

var errRootNotMapping = zerr.New("workspace must be a mapping of task names to tasks")

// decodeTasks converts a document root into a workspace. Every strategy ends here so that
// option values are normalized the same way regardless of the source format.
func decodeTasks(root *yaml.Node) (domain.Workspace, error) {
	if root == nil || root.Kind != yaml.MappingNode {
		return nil, malformed(domain.ReasonShape, errRootNotMapping)
	}

	var dtos map[string]*TaskDTO
	if err := root.Decode(&dtos); err != nil {
		return nil, malformed(domain.ReasonShape, err)
	}

	ws := make(domain.Workspace, len(dtos))
	for name, dto := range dtos {
		ws[name] = dto.toTask(name)
	}
	return ws, nil
}

// decodeValue encodes a generic Go value into a document and decodes the tasks from it.
func decodeValue(v any) (domain.Workspace, error) {
	var root yaml.Node
	if err := root.Encode(v); err != nil {
		return nil, malformed(domain.ReasonShape, err)
	}
	return decodeTasks(&root)
}
