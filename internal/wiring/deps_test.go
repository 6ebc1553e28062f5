package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runx/internal/adapters/logger"
	"go.trai.ch/runx/internal/adapters/shell"
	"go.trai.ch/runx/internal/adapters/workspace"
	"go.trai.ch/runx/internal/app"
	"go.trai.ch/runx/internal/engine/flags"
	_ "go.trai.ch/runx/internal/wiring"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers the dependency ID from the package name of the
	// interface used in Dep[T]. Every port lives in the shared ports package, so the
	// analysis expects a dependency named "ports" for all of them.
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

func TestRegistry_AllNodesRegistered(t *testing.T) {
	registry := graft.Registry()

	for _, id := range []graft.ID{
		logger.NodeID,
		shell.NodeID,
		workspace.LoaderNodeID,
		workspace.EncoderNodeID,
		flags.NodeID,
		app.AppNodeID,
		app.ComponentsNodeID,
	} {
		_, ok := registry[id]
		assert.True(t, ok, "node %s is not registered", id)
	}
}

func TestExecuteFor_Components(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](t.Context())

	require.NoError(t, err)
	require.NotNil(t, components)
	assert.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)
}
