package workspace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runx/internal/adapters/logger" //nolint:depguard // Wired in node
	"go.trai.ch/runx/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the workspace loader Graft node.
	LoaderNodeID graft.ID = "adapter.workspace_loader"
	// EncoderNodeID is the unique identifier for the workspace encoder Graft node.
	EncoderNodeID graft.ID = "adapter.workspace_encoder"
)

func init() {
	graft.Register(graft.Node[ports.WorkspaceLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkspaceLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.WorkspaceEncoder]{
		ID:        EncoderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WorkspaceEncoder, error) {
			return NewEncoder(), nil
		},
	})
}
