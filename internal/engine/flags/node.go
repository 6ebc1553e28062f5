package flags

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runx/internal/core/ports"
)

// NodeID is the unique identifier for the flag translator Graft node.
const NodeID graft.ID = "engine.flags"

func init() {
	graft.Register(graft.Node[ports.FlagTranslator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FlagTranslator, error) {
			return NewTranslator(), nil
		},
	})
}
