package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runx/internal/core/domain"
)

func TestNewInvocation(t *testing.T) {
	task := domain.Task{Name: "serve", Script: "server.ts", Args: []string{"--port", "8080"}}

	inv, err := domain.NewInvocation("", "/work", task, []string{"--allow-net"}, []string{"--verbose"})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultInterpreter, inv.Interpreter)
	assert.Equal(t, "/work", inv.Dir)
	assert.Equal(t,
		[]string{"run", "--allow-net", "server.ts", "--port", "8080", "--verbose"},
		inv.Args,
	)
}

func TestNewInvocation_MissingScript(t *testing.T) {
	_, err := domain.NewInvocation("deno", ".", domain.Task{Name: "empty"}, nil, nil)
	require.ErrorIs(t, err, domain.ErrMissingScript)
}

func TestInvocation_String(t *testing.T) {
	inv := domain.Invocation{
		Interpreter: "deno",
		Args:        []string{"run", "--allow-read=a b", "main.ts", ""},
	}
	assert.Equal(t, `deno run "--allow-read=a b" main.ts ""`, inv.String())
}
