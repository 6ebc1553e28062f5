package domain

// Options holds the run options of a task as they were written in the workspace file.
// The loader never interprets them; the flag translator does.
type Options map[string]any

// Task is one named entry of a workspace: a script reference plus run options.
type Task struct {
	Name    string
	Script  string
	Args    []string
	Options Options
}
