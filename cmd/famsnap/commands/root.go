// Package commands implements the CLI commands for famsnap.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/famsnap/internal/app"
	"go.trai.ch/famsnap/internal/build"
)

// CLI represents the command line interface for famsnap.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, opts app.GenerateOptions) (*app.GenerateResult, error)
	List(ctx context.Context, opts app.ListOptions) (*app.ListResult, error)
	Clean(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "famsnap",
		Short:         "Rotate family snapshots from a GEDCOM file",
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

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file (default ./famsnap.yaml)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write log messages as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

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

// commonOptions reads the flags shared by all commands. The optional positional argument
// names the GEDCOM file.
func commonOptions(cmd *cobra.Command, args []string) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	cacheDriver, _ := cmd.Flags().GetString("cache-driver")

	opts := app.Options{
		ConfigPath:  configPath,
		OutputDir:   outputDir,
		CacheDriver: cacheDriver,
		JSONLogs:    jsonLogs,
	}
	if len(args) > 0 {
		opts.SourcePath = args[0]
	}
	return opts
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output-dir", "o", "", "Directory for the cache and the current selection (default: the GEDCOM file's directory)")
	cmd.Flags().String("cache-driver", "", "Cache backend: json or sqlite (default json)")
}
