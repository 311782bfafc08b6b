package cli

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/chart/interact"
	errs "github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/pipeline"
	"github.com/matzehuels/chartkit/pkg/render"
)

// exploreCommand creates the explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var hover, selected string

	cmd := &cobra.Command{
		Use:   "explore <document> [chart]",
		Short: "Explore a chart's hover and selection state in the terminal",
		Long: `Explore a chart interactively. The arrow keys move the hover across
points and series, enter or space select, esc clears the hover.

--hover and --select make the state controlled: key presses are still
reported but the shown state does not change.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 1 {
				name = args[1]
			}
			return c.runExplore(cmd.Context(), args[0], name, hover, selected)
		},
	}

	cmd.Flags().StringVar(&hover, "hover", "", "controlled hovered element ref, or none")
	cmd.Flags().StringVar(&selected, "select", "", "controlled selected element ref, or none")

	return cmd
}

func (c *CLI) runExplore(ctx context.Context, path, name, hover, selected string) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errs.New(errs.ErrCodeUnsupported, "explore needs an interactive terminal")
	}

	r, err := c.newExploreRenderer(ctx, path, name, pipeline.Options{Hovered: hover, Selected: selected})
	if err != nil {
		return err
	}

	m := NewExploreModel(r)
	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return err
	}

	state := r.State()
	printInfo("Final state: hovered %s, selected %s", state.Hovered, state.Selected)
	return nil
}

// newExploreRenderer loads the named chart (the first one when name is
// empty) and creates its renderer. Selection changes are logged.
func (c *CLI) newExploreRenderer(ctx context.Context, path, name string, opts pipeline.Options) (*render.Renderer, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	doc, err := pipeline.NewRunner(nil, nil, c.Logger).Load(ctx, path)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = doc.Charts[0].Name
	}
	chart, err := doc.Find(name)
	if err != nil {
		return nil, err
	}

	logger := loggerFromContext(ctx)
	onSelect := render.WithSelectHandler(func(ref interact.Optional[interact.Ref]) {
		logger.Debug("selection changed", "chart", name, "selected", ref)
	})
	return render.New(chart, append(opts.RenderOptions(), onSelect)...), nil
}
