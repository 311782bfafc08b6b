package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	errs "github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/pipeline"
	"github.com/matzehuels/chartkit/pkg/spec"
)

// stdoutPath selects stdout as the render target.
const stdoutPath = "-"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output directory, or "-" for stdout
	formats     string // comma-separated output formats
	hover       string // controlled hovered ref, "none" or empty
	selected    string // controlled selected ref, "none" or empty
	concurrency int    // charts rendered in parallel
	noCache     bool   // disable the render cache
	refresh     bool   // ignore cached results
}

// renderCommand creates the render command.
//
// Files are named after the chart and format (revenue.svg, revenue.json) and
// written next to the document unless --output names a directory.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{formats: pipeline.FormatSVG, concurrency: pipeline.DefaultConcurrency}

	cmd := &cobra.Command{
		Use:   "render <document> [chart...]",
		Short: "Render the charts of a document to SVG or JSON",
		Long: `Render the charts of a chart document (TOML, YAML or JSON).

Without chart names every chart of the document is rendered. --hover and
--select take a ref ("point" or "series:point") or "none" and override the
document's interaction state.`,
		Example: `  chartkit render charts.toml
  chartkit render charts.toml revenue -f svg,json -o out/
  chartkit render charts.yaml share --select 2 -o - > share.svg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], args[1:], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: the document's directory), or - for stdout")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", opts.formats, "output format(s): svg, json (comma-separated)")
	cmd.Flags().StringVar(&opts.hover, "hover", "", "hovered element ref, or none")
	cmd.Flags().StringVar(&opts.selected, "select", "", "selected element ref, or none")
	cmd.Flags().IntVarP(&opts.concurrency, "jobs", "j", opts.concurrency, "charts rendered in parallel")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, names []string, opts renderOpts) error {
	formats, err := pipeline.ParseFormats(opts.formats)
	if err != nil {
		return err
	}
	if len(formats) == 0 {
		formats = []string{pipeline.FormatSVG}
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	doc, err := runner.Load(ctx, path)
	if err != nil {
		return err
	}
	doc, err = selectCharts(doc, names)
	if err != nil {
		return err
	}

	toStdout := opts.output == stdoutPath
	if toStdout {
		if len(doc.Charts) != 1 || len(formats) != 1 {
			return errs.New(errs.ErrCodeInvalidInput, "-o - needs exactly one chart and one format, got %d charts and %d formats", len(doc.Charts), len(formats))
		}
		if isTerminal(c.Out) && formats[0] == pipeline.FormatSVG {
			return errs.New(errs.ErrCodeInvalidInput, "refusing to write SVG to a terminal; redirect stdout or use -o DIR")
		}
	}

	pipeOpts := pipeline.Options{
		Hovered:     opts.hover,
		Selected:    opts.selected,
		Formats:     formats,
		Refresh:     opts.refresh,
		Concurrency: opts.concurrency,
		Logger:      c.Logger,
	}

	prog := newProgress(c.Logger)
	var spinner *Spinner
	if !toStdout && !c.Verbose() && isTerminal(os.Stderr) {
		spinner = newSpinner(ctx, fmt.Sprintf("Rendering %d charts...", len(doc.Charts)))
		spinner.Start()
	}
	results, err := runner.ExecuteAll(ctx, doc, pipeOpts)
	if err != nil {
		if spinner != nil {
			spinner.StopWithError(errs.UserMessage(err))
		}
		return err
	}
	if spinner != nil {
		spinner.Stop()
	}

	if toStdout {
		_, err := c.Out.Write(results[0].Artifacts[formats[0]])
		return err
	}

	dir := opts.output
	if dir == "" {
		dir = filepath.Dir(path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "create output directory %s", dir)
	}

	var written []string
	for _, res := range results {
		for _, format := range formats {
			out := outputPath(dir, res.Chart.Name, format)
			if err := os.WriteFile(out, res.Artifacts[format], 0o644); err != nil {
				return errs.Wrap(errs.ErrCodeInvalidPath, err, "write %s", out)
			}
			written = append(written, out)
		}
	}

	prog.done(fmt.Sprintf("Rendered %d charts", len(results)))
	printSuccess("Wrote %d files", len(written))
	for _, res := range results {
		fmt.Println(chartStats(res.Chart.Name, res.Stats.Elements, res.CacheInfo.SceneHit && res.CacheInfo.ArtifactHit))
	}
	for _, out := range written {
		printFile(out)
	}
	printNewline()
	printNextStep("Explore interactively", fmt.Sprintf("%s explore %s %s", appName, path, results[0].Chart.Name))
	return nil
}

// selectCharts narrows doc to the named charts, in the given order.
// No names selects every chart.
func selectCharts(doc *spec.Document, names []string) (*spec.Document, error) {
	if len(names) == 0 {
		return doc, nil
	}
	out := &spec.Document{Charts: make([]spec.Chart, 0, len(names))}
	for _, name := range names {
		c, err := doc.Find(name)
		if err != nil {
			return nil, err
		}
		out.Charts = append(out.Charts, c)
	}
	return out, nil
}

// outputPath returns dir/name.format.
func outputPath(dir, name, format string) string {
	return filepath.Join(dir, name+"."+format)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
