package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// DefaultInterpreter is the executable launched when none is configured.
const DefaultInterpreter = "deno"

// Invocation is a fully resolved interpreter command line.
type Invocation struct {
	Interpreter string
	Args        []string
	// Dir is the working directory of the process, usually the workspace directory.
	Dir string
}

// NewInvocation builds "<interpreter> run <flags...> <script> <task args...> <extra...>" for task.
func NewInvocation(interpreter, dir string, task Task, flags, extra []string) (Invocation, error) {
	if task.Script == "" {
		return Invocation{}, zerr.With(zerr.Wrap(ErrMissingScript, "cannot build command"), "task", task.Name)
	}
	if interpreter == "" {
		interpreter = DefaultInterpreter
	}

	args := make([]string, 0, 2+len(flags)+len(task.Args)+len(extra))
	args = append(args, "run")
	args = append(args, flags...)
	args = append(args, task.Script)
	args = append(args, task.Args...)
	args = append(args, extra...)

	return Invocation{
		Interpreter: interpreter,
		Args:        args,
		Dir:         dir,
	}, nil
}

// String renders the invocation as a shell command line.
func (i Invocation) String() string {
	parts := make([]string, 0, len(i.Args)+1)
	parts = append(parts, quoteArg(i.Interpreter))
	for _, arg := range i.Args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return `""`
	}
	if strings.ContainsAny(arg, " \t\n\"'\\$`") {
		return strconv.Quote(arg)
	}
	return arg
}
