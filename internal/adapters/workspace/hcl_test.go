package workspace_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	"go.trai.ch/runx/internal/adapters/workspace"
	"go.trai.ch/runx/internal/core/domain"
)

func TestLoader_Load_HCL(t *testing.T) {
	loader := newMapLoader(t, fstest.MapFS{
		"runx-workspace.hcl": file(`
task "build" {
  script = "build.ts"
}

task "serve" {
  script = "server.ts"
  args   = ["--port", "8080"]
  options = {
    "allow-net"  = true
    "allow-read" = ["./public"]
    seed         = 7
  }
}
`),
	})

	ws, err := loader.Load(t.Context(), root)

	require.NoError(t, err)
	assert.Equal(t, domain.Workspace{
		"build": {Name: "build", Script: "build.ts"},
		"serve": {
			Name:   "serve",
			Script: "server.ts",
			Args:   []string{"--port", "8080"},
			Options: domain.Options{
				"allow-net":  true,
				"allow-read": []any{"./public"},
				"seed":       7,
			},
		},
	}, ws)
}

func TestLoader_Load_HCLEmptyFile(t *testing.T) {
	loader := newMapLoader(t, fstest.MapFS{"runx-workspace.hcl": file("")})

	ws, err := loader.Load(t.Context(), root)

	require.NoError(t, err)
	assert.Empty(t, ws)
}

func TestLoader_Load_HCLMalformed(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantReason string
	}{
		{
			name:       "unclosed block",
			content:    "task \"build\" {\n  script = \"build.ts\"\n",
			wantReason: domain.ReasonSyntax,
		},
		{
			name:       "unknown attribute",
			content:    "task \"build\" {\n  command = \"build.ts\"\n}\n",
			wantReason: domain.ReasonShape,
		},
		{
			name:       "missing label",
			content:    "task {\n  script = \"build.ts\"\n}\n",
			wantReason: domain.ReasonShape,
		},
		{
			name:       "duplicate task",
			content:    "task \"a\" {\n  script = \"a.ts\"\n}\ntask \"a\" {\n  script = \"b.ts\"\n}\n",
			wantReason: domain.ReasonShape,
		},
		{
			name:       "options is not an object",
			content:    "task \"a\" {\n  script = \"a.ts\"\n  options = \"all\"\n}\n",
			wantReason: domain.ReasonShape,
		},
		{
			name:       "variable reference",
			content:    "task \"a\" {\n  script = var.script\n}\n",
			wantReason: domain.ReasonShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newMapLoader(t, fstest.MapFS{"runx-workspace.hcl": file(tt.content)})

			_, err := loader.Load(t.Context(), root)

			require.ErrorIs(t, err, domain.ErrWorkspaceMalformed)
			loadErr := requireLoadError(t, err, domain.LoadMalformed)
			assert.Equal(t, tt.wantReason, loadErr.Reason)
			assert.NotEmpty(t, loadErr.Detail)
		})
	}
}

func TestFromCty(t *testing.T) {
	tests := []struct {
		name string
		in   cty.Value
		want any
	}{
		{name: "null", in: cty.NullVal(cty.String), want: nil},
		{name: "string", in: cty.StringVal("x"), want: "x"},
		{name: "bool", in: cty.True, want: true},
		{name: "integer", in: cty.NumberIntVal(42), want: 42},
		{name: "float", in: cty.NumberFloatVal(0.5), want: 0.5},
		{
			name: "tuple",
			in:   cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.NumberIntVal(1)}),
			want: []any{"a", 1},
		},
		{
			name: "object",
			in:   cty.ObjectVal(map[string]cty.Value{"k": cty.ListVal([]cty.Value{cty.StringVal("v")})}),
			want: map[string]any{"k": []any{"v"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := workspace.FromCty(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := workspace.FromCty(cty.UnknownVal(cty.String))
		require.Error(t, err)
	})
}
