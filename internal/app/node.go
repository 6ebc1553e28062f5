package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runx/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/runx/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/runx/internal/adapters/workspace" //nolint:depguard // Wired in app layer
	"go.trai.ch/runx/internal/core/ports"
	"go.trai.ch/runx/internal/engine/flags"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			workspace.LoaderNodeID,
			workspace.EncoderNodeID,
			flags.NodeID,
			shell.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.WorkspaceLoader](ctx)
	if err != nil {
		return nil, err
	}

	encoder, err := graft.Dep[ports.WorkspaceEncoder](ctx)
	if err != nil {
		return nil, err
	}

	translator, err := graft.Dep[ports.FlagTranslator](ctx)
	if err != nil {
		return nil, err
	}

	launcher, err := graft.Dep[ports.Launcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, encoder, translator, launcher, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
