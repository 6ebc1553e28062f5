package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// WorkspaceFileNames are the recognized workspace file names, in lookup priority order.
var WorkspaceFileNames = []string{
	"runx-workspace.lua",
	"runx-workspace.yml",
	"runx-workspace.yaml",
	"runx-workspace.hcl",
}

// WorkspaceExport is the name of the value a workspace module must expose.
const WorkspaceExport = "workspace"

// Workspace maps task names to their definitions.
// A Workspace is only ever produced from a complete, successful load.
type Workspace map[string]Task

// TaskNames returns the task names in lexical order.
func (w Workspace) TaskNames() []string {
	names := make([]string, 0, len(w))
	for name := range w {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the task with the given name.
func (w Workspace) Lookup(name string) (Task, error) {
	task, ok := w[name]
	if !ok {
		return Task{}, zerr.With(zerr.Wrap(ErrTaskNotFound, "cannot resolve task"), "task", name)
	}
	return task, nil
}
