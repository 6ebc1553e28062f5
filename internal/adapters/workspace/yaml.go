package workspace

import (
	"context"

	"go.trai.ch/runx/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// YAMLDecoder reads workspaces written as YAML documents.
type YAMLDecoder struct{}

// Decode parses data as YAML.
func (YAMLDecoder) Decode(_ context.Context, _ string, data []byte) (domain.Workspace, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, malformed(domain.ReasonSyntax, err)
	}

	var root *yaml.Node
	if len(doc.Content) > 0 {
		root = doc.Content[0]
	}
	return decodeTasks(root)
}
