package workspace

import (
	"context"
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"go.trai.ch/runx/internal/core/domain"
	"go.trai.ch/zerr"
)

// hclWorkspaceFile is the top-level structure of an HCL workspace.
type hclWorkspaceFile struct {
	Tasks []*hclTask `hcl:"task,block"`
}

// hclTask is a single `task "<name>" { ... }` block.
type hclTask struct {
	Name    string    `hcl:"name,label"`
	Script  string    `hcl:"script,optional"`
	Args    []string  `hcl:"args,optional"`
	Options cty.Value `hcl:"options,optional"`
}

// HCLDecoder reads workspaces written in HCL.
type HCLDecoder struct{}

// Decode parses data as HCL task blocks.
func (HCLDecoder) Decode(_ context.Context, path string, data []byte) (domain.Workspace, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, malformed(domain.ReasonSyntax, diags)
	}

	var parsed hclWorkspaceFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, malformed(domain.ReasonShape, diags)
	}

	tasks := make(map[string]any, len(parsed.Tasks))
	for _, block := range parsed.Tasks {
		if _, dup := tasks[block.Name]; dup {
			return nil, malformed(domain.ReasonShape,
				zerr.New(fmt.Sprintf("task %q is declared more than once", block.Name)))
		}

		task := make(map[string]any, 3)
		if block.Script != "" {
			task["script"] = block.Script
		}
		if len(block.Args) > 0 {
			task["args"] = block.Args
		}
		if !block.Options.IsNull() {
			if !block.Options.Type().IsObjectType() && !block.Options.Type().IsMapType() {
				return nil, malformed(domain.ReasonShape, zerr.New(fmt.Sprintf(
					"options of task %q must be an object, got %s",
					block.Name, block.Options.Type().FriendlyName())))
			}
			opts, err := fromCty(block.Options)
			if err != nil {
				return nil, malformed(domain.ReasonShape, err)
			}
			if opts != nil {
				task["options"] = opts
			}
		}
		tasks[block.Name] = task
	}

	return decodeValue(tasks)
}

// fromCty converts a cty value into plain Go values.
func fromCty(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, zerr.New("option values must be known without evaluation")
	}

	ty := v.Type()
	switch {
	case ty.Equals(cty.String):
		return v.AsString(), nil
	case ty.Equals(cty.Bool):
		return v.True(), nil
	case ty.Equals(cty.Number):
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if n, acc := bf.Int64(); acc == big.Exact {
				return int(n), nil
			}
		}
		f, _ := bf.Float64()
		return f, nil
	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			converted, err := fromCty(ev)
			if err != nil {
				return nil, err
			}
			out[k.AsString()] = converted
		}
		return out, nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			converted, err := fromCty(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, converted)
		}
		return out, nil
	default:
		return nil, zerr.New("unsupported option value of type " + ty.FriendlyName())
	}
}
