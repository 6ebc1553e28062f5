// Package commands implements the CLI commands for runx.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/runx/internal/app"
	"go.trai.ch/runx/internal/build"
	"go.trai.ch/runx/internal/core/domain"
	"go.trai.ch/runx/internal/core/ports"
)

// CLI represents the command line interface for runx.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command

	dir         string
	interpreter string
	json        bool
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, taskName string, opts app.RunOptions) error
	List(ctx context.Context, dir string) error
	Export(ctx context.Context, dir string) error
}

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "runx",
		Short:         "Run the tasks declared in a workspace file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&c.dir, "dir", "C", ".", "Directory containing the workspace file")
	pf.StringVar(&c.interpreter, "interpreter", domain.DefaultInterpreter, "Interpreter used to run task scripts")
	pf.BoolVar(&c.json, "json", false, "Write logs as JSON")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if s, ok := c.logger.(jsonSwitcher); ok && c.json {
			s.SetJSON(true)
		}
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newExportCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// WithLogger sets the logger switched to JSON output by --json.
func (c *CLI) WithLogger(logger ports.Logger) *CLI {
	c.logger = logger
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
