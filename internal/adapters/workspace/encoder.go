package workspace

import (
	"io"

	"go.trai.ch/runx/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Encoder writes workspaces as YAML, the format YAMLDecoder reads back.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes ws to w.
func (e *Encoder) Encode(w io.Writer, ws domain.Workspace) error {
	dtos := make(map[string]*TaskDTO, len(ws))
	for name, task := range ws {
		dtos[name] = newTaskDTO(task)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dtos); err != nil {
		return zerr.Wrap(domain.ErrWorkspaceEncodeFailed, err.Error())
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(domain.ErrWorkspaceEncodeFailed, err.Error())
	}
	return nil
}
