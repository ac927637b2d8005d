package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/pkg/buildinfo"
)

// Execute runs the boxkit CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (render,
// summary, serve), configures logging based on the --verbose flag, and
// executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext. ctx cancellation propagates to every command, which is
// how serve shuts down gracefully on SIGINT.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "boxkit",
		Short:        "Boxkit turns observation datasets into box plot charts",
		Long:         `Boxkit is a CLI tool for rendering box-and-whisker charts from grouped numeric observations, producing deterministic SVG, PNG, PDF, or JSON output.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newSummaryCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
