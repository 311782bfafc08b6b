package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/buildinfo"
	"github.com/matzehuels/chartkit/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// In verbose mode the root command registers logging hooks, so cache and
// render events of every subcommand show up at debug level.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "chartkit renders interactive charts from chart documents",
		Long:         `chartkit computes scales, ticks, paths and interaction state for bar, line, area, scatter, pie, donut and radar charts, and renders them to SVG or JSON scenes, a terminal explorer or an HTTP server.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.Verbose() {
				hooks := newLoggingHooks(c.Logger)
				observability.SetRenderHooks(hooks)
				observability.SetCacheHooks(hooks)
				observability.SetHTTPHooks(hooks)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.ticksCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
