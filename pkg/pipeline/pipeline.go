// Package pipeline provides the load → scene → artifact pipeline for chartkit.
//
// The CLI and the chart server both render through this package, so caching,
// defaults and format validation behave the same at every entry point.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Parse and validate a chart document (TOML, YAML or JSON)
//  2. Scene: Compute the [render.Scene] of a chart for an interaction state
//  3. Artifact: Serialize the scene to the requested formats (svg, json)
//
// Scenes and artifacts are cached separately. A hover change invalidates the
// scene, but the same scene requested as svg and json is only built once.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	doc, err := runner.Load(ctx, "charts.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	results, err := runner.ExecuteAll(ctx, doc, pipeline.Options{
//	    Formats: []string{"svg"},
//	})
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/cache"
	"github.com/matzehuels/chartkit/pkg/render"
	"github.com/matzehuels/chartkit/pkg/spec"

	errs "github.com/matzehuels/chartkit/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// DefaultConcurrency is the number of charts rendered in parallel by ExecuteAll.
const DefaultConcurrency = 4

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run. It supports JSON serialization so the
// server can log and echo the options of a request.
type Options struct {
	// Hovered and Selected override the interaction state of the document.
	// Empty leaves the chart uncontrolled, "none" clears it, anything else
	// is a ref ("point" or "series:point").
	Hovered  string `json:"hovered,omitempty"`
	Selected string `json:"selected,omitempty"`

	// Formats lists the artifacts to produce. Defaults to svg.
	Formats []string `json:"formats,omitempty"`

	// Refresh skips cache reads but still writes fresh results.
	Refresh bool `json:"refresh,omitempty"`

	// Concurrency bounds ExecuteAll. Defaults to DefaultConcurrency.
	Concurrency int `json:"concurrency,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run for one chart.
type Result struct {
	// Chart is the chart with defaults applied.
	Chart spec.Chart

	// ChartHash is the content hash of Chart.
	ChartHash string

	// Scene is the computed scene.
	Scene render.Scene

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Elements   int
	SceneTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SceneHit    bool // Whether the scene came from cache
	ArtifactHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(formatList(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) ([]string, error) {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(out, f) {
			continue
		}
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func formatList() []string {
	out := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the interaction refs and formats and applies
// defaults. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := render.ParseProp(o.Hovered); err != nil {
		return err
	}
	if _, err := render.ParseProp(o.Selected); err != nil {
		return err
	}
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// RenderOptions converts the interaction overrides into render options.
// Call ValidateAndSetDefaults first; invalid refs are ignored here.
func (o *Options) RenderOptions() []render.Option {
	var opts []render.Option
	if p, err := render.ParseProp(o.Hovered); err == nil {
		opts = append(opts, render.WithHover(p))
	}
	if p, err := render.ParseProp(o.Selected); err == nil {
		opts = append(opts, render.WithSelect(p))
	}
	return opts
}

// SceneKeyOpts returns cache key options for scene computation.
func (o *Options) SceneKeyOpts() cache.SceneKeyOpts {
	return cache.SceneKeyOpts{
		Hovered:  normalizeRef(o.Hovered),
		Selected: normalizeRef(o.Selected),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format}
}

// normalizeRef makes equivalent refs ("2", "0:2", " 0:2 ") share a key.
func normalizeRef(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return s
	}
	if ref, err := render.ParseRef(s); err == nil {
		return ref.String()
	}
	return s
}
