package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/pkg/chart/geom"
	"github.com/matzehuels/chartkit/pkg/chart/scale"
	"github.com/matzehuels/chartkit/pkg/chart/ticks"
	errs "github.com/matzehuels/chartkit/pkg/errors"
)

// ticksOpts holds the flags of the ticks command.
type ticksOpts struct {
	count  int     // requested tick count (linear)
	from   float64 // range start in pixels
	to     float64 // range end in pixels
	band   string  // comma-separated band domain
	points string  // comma-separated point domain
}

// ticksCommand creates the ticks command, which prints the axis ticks of a
// scale as a table.
func (c *CLI) ticksCommand() *cobra.Command {
	opts := ticksOpts{count: ticks.DefaultCount, to: 100}

	cmd := &cobra.Command{
		Use:   "ticks [min max]",
		Short: "Print the axis ticks of a linear, band or point scale",
		Example: `  chartkit ticks 0 97
  chartkit ticks --count 10 --from 320 --to 0 -- -3 7
  chartkit ticks --band q1,q2,q3,q4 --to 576`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.band != "" || opts.points != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := tickRows(args, opts)
			if err != nil {
				return err
			}
			writeTickTable(c.Out, rows)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", opts.count, "approximate tick count (linear)")
	cmd.Flags().Float64Var(&opts.from, "from", opts.from, "range start")
	cmd.Flags().Float64Var(&opts.to, "to", opts.to, "range end")
	cmd.Flags().StringVar(&opts.band, "band", "", "band scale domain (comma-separated)")
	cmd.Flags().StringVar(&opts.points, "points", "", "point scale domain (comma-separated)")
	cmd.MarkFlagsMutuallyExclusive("band", "points")

	return cmd
}

// tickRows computes the ticks and formats them as value, label, position rows.
func tickRows(args []string, opts ticksOpts) ([][]string, error) {
	r := scale.Range{opts.from, opts.to}

	switch {
	case opts.band != "":
		return categoryRows(scale.NewBand(splitList(opts.band), r)), nil
	case opts.points != "":
		return categoryRows(scale.NewPoint(splitList(opts.points), r)), nil
	}

	lo, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid min %q", args[0])
	}
	hi, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid max %q", args[1])
	}

	s := scale.NewLinear([2]float64{lo, hi}, r)
	ts := ticks.AxisTicks[float64](s, ticks.Options[float64]{Count: opts.count})
	rows := make([][]string, len(ts))
	for i, t := range ts {
		rows[i] = []string{strconv.FormatFloat(t.Value, 'g', -1, 64), t.Label, geom.Num(t.Position)}
	}
	return rows, nil
}

func categoryRows(s scale.Scale[string]) [][]string {
	ts := ticks.AxisTicks(s, ticks.Options[string]{})
	rows := make([][]string, len(ts))
	for i, t := range ts {
		rows[i] = []string{t.Value, t.Label, geom.Num(t.Position)}
	}
	return rows
}

func writeTickTable(w io.Writer, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Value", "Label", "Position").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return base.Inherit(styleHeader)
			case col == 2:
				return base.Inherit(StyleNumber)
			default:
				return base.Inherit(StyleValue)
			}
		})
	fmt.Fprintln(w, t.Render())
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
