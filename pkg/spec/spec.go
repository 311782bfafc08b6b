// Package spec defines chart documents: the TOML, YAML or JSON files that
// describe one or more charts for the CLI and the server.
//
// A TOML document lists charts as an array of tables:
//
//	[[chart]]
//	name = "revenue"
//	type = "bar"
//	categories = ["Q1", "Q2", "Q3", "Q4"]
//
//	[[chart.series]]
//	name = "2024"
//	values = [12, 19, 3, 5]
//
// YAML and JSON documents use a top-level "charts" list with the same
// fields. Documents are validated on load; a loaded [Document] is always
// renderable.
package spec

import (
	"strconv"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/chart/geom"
	"github.com/matzehuels/chartkit/pkg/chart/legend"
	"github.com/matzehuels/chartkit/pkg/chart/ticks"
)

// Defaults applied by WithDefaults.
const (
	DefaultWidth       = 640
	DefaultHeight      = 400
	DefaultInnerRadius = 0.6
)

// Document is a parsed chart document.
type Document struct {
	Charts []Chart `toml:"chart" yaml:"charts" json:"charts" validate:"required,min=1,dive"`
}

// Chart describes a single chart.
type Chart struct {
	Name    string     `toml:"name" yaml:"name" json:"name" validate:"required,chart_name"`
	Type    chart.Kind `toml:"type" yaml:"type" json:"type" validate:"required,chart_type"`
	Title   string     `toml:"title" yaml:"title,omitempty" json:"title,omitempty"`
	Width   int        `toml:"width" yaml:"width,omitempty" json:"width,omitempty" validate:"gte=0,lte=10000"`
	Height  int        `toml:"height" yaml:"height,omitempty" json:"height,omitempty" validate:"gte=0,lte=10000"`
	Curve   string     `toml:"curve" yaml:"curve,omitempty" json:"curve,omitempty" validate:"omitempty,curve"`
	Stacked bool       `toml:"stacked" yaml:"stacked,omitempty" json:"stacked,omitempty"`

	// Categories name the x positions of value series and the axes of a
	// radar chart.
	Categories []string `toml:"categories" yaml:"categories,omitempty" json:"categories,omitempty"`
	Series     []Series `toml:"series" yaml:"series" json:"series" validate:"required,min=1,dive"`

	Axis        Axis        `toml:"axis" yaml:"axis,omitempty" json:"axis,omitempty"`
	Interaction Interaction `toml:"interaction" yaml:"interaction,omitempty" json:"interaction,omitempty"`

	Palette string   `toml:"palette" yaml:"palette,omitempty" json:"palette,omitempty" validate:"omitempty,palette"`
	Colors  []string `toml:"colors" yaml:"colors,omitempty" json:"colors,omitempty" validate:"dive,color"`

	// InnerRadius is the donut hole as a fraction of the outer radius.
	InnerRadius float64 `toml:"inner_radius" yaml:"inner_radius,omitempty" json:"inner_radius,omitempty" validate:"gte=0,lt=1"`
	// PadAngle separates pie slices, in radians.
	PadAngle float64 `toml:"pad_angle" yaml:"pad_angle,omitempty" json:"pad_angle,omitempty" validate:"gte=0,lte=0.5"`
	// MaxValue is the value at the outer ring of a radar chart. Zero uses
	// the largest value in the data.
	MaxValue float64 `toml:"max_value" yaml:"max_value,omitempty" json:"max_value,omitempty" validate:"gte=0"`
}

// Series is a named list of values or points.
type Series struct {
	Name   string    `toml:"name" yaml:"name" json:"name"`
	Color  string    `toml:"color" yaml:"color,omitempty" json:"color,omitempty" validate:"omitempty,color"`
	Values []float64 `toml:"values" yaml:"values,omitempty" json:"values,omitempty"`
	Points []Point   `toml:"points" yaml:"points,omitempty" json:"points,omitempty" validate:"dive"`
}

// Point is a single datum with explicit coordinates.
type Point struct {
	X     float64 `toml:"x" yaml:"x,omitempty" json:"x,omitempty"`
	Key   string  `toml:"key" yaml:"key,omitempty" json:"key,omitempty"`
	Y     float64 `toml:"y" yaml:"y" json:"y"`
	Label string  `toml:"label" yaml:"label,omitempty" json:"label,omitempty"`
	Color string  `toml:"color" yaml:"color,omitempty" json:"color,omitempty" validate:"omitempty,color"`
	Size  float64 `toml:"size" yaml:"size,omitempty" json:"size,omitempty" validate:"gte=0"`
}

// Axis configures the value axis.
type Axis struct {
	Ticks       int       `toml:"ticks" yaml:"ticks,omitempty" json:"ticks,omitempty" validate:"gte=0,lte=50"`
	TickValues  []float64 `toml:"tick_values" yaml:"tick_values,omitempty" json:"tick_values,omitempty"`
	IncludeZero *bool     `toml:"include_zero" yaml:"include_zero,omitempty" json:"include_zero,omitempty"`
}

// Interaction configures the hover and selection behaviour. Hovered and
// Selected, when set, are controlled props: "2" for flat charts, "1:2"
// (series:point) for multi-series charts.
type Interaction struct {
	Hoverable  *bool  `toml:"hoverable" yaml:"hoverable,omitempty" json:"hoverable,omitempty"`
	Selectable *bool  `toml:"selectable" yaml:"selectable,omitempty" json:"selectable,omitempty"`
	Hovered    string `toml:"hovered" yaml:"hovered,omitempty" json:"hovered,omitempty" validate:"omitempty,ref"`
	Selected   string `toml:"selected" yaml:"selected,omitempty" json:"selected,omitempty" validate:"omitempty,ref"`
}

// Names returns the chart names in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Charts))
	for i, c := range d.Charts {
		names[i] = c.Name
	}
	return names
}

// WithDefaults returns a copy of c with unset fields filled in.
func (c Chart) WithDefaults() Chart {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Curve == "" {
		c.Curve = string(geom.CurveLinear)
	}
	if c.Palette == "" && len(c.Colors) == 0 {
		c.Palette = "category10"
	}
	if c.Type == chart.KindDonut && c.InnerRadius == 0 {
		c.InnerRadius = DefaultInnerRadius
	}
	if c.Axis.Ticks == 0 {
		c.Axis.Ticks = ticks.DefaultCount
	}
	if c.Axis.IncludeZero == nil {
		c.Axis.IncludeZero = ptr(c.Type != chart.KindScatter && c.Type != chart.KindLine)
	}
	if c.Interaction.Hoverable == nil {
		c.Interaction.Hoverable = ptr(true)
	}
	if c.Interaction.Selectable == nil {
		c.Interaction.Selectable = ptr(true)
	}
	return c
}

// ColorPalette returns the explicit colours, or the named palette.
func (c Chart) ColorPalette() legend.Palette {
	if len(c.Colors) > 0 {
		return legend.Palette(c.Colors)
	}
	p, _ := legend.ParsePalette(c.Palette)
	return p
}

// Data converts the series to engine series. Values and points without a
// key are keyed by the matching category, or by their index when there are
// fewer categories than values.
func (c Chart) Data() []chart.Series {
	out := make([]chart.Series, len(c.Series))
	for i, s := range c.Series {
		out[i] = chart.Series{Name: s.Name, Color: s.Color}
		if len(s.Points) > 0 {
			out[i].Points = make([]chart.Point, len(s.Points))
			for j, p := range s.Points {
				key := p.Key
				if key == "" {
					key = c.category(j)
				}
				out[i].Points[j] = chart.Point{X: p.X, Key: key, Y: p.Y, Label: p.Label, Color: p.Color, Size: p.Size}
			}
			continue
		}
		out[i].Points = make([]chart.Point, len(s.Values))
		for j, v := range s.Values {
			out[i].Points[j] = chart.Point{X: float64(j), Key: c.category(j), Y: v}
		}
	}
	return out
}

// Keys returns the categorical x domain: the categories, or the keys of all
// points in first-seen order when no categories are given.
func (c Chart) Keys() []string {
	if len(c.Categories) > 0 {
		return c.Categories
	}
	seen := make(map[string]bool)
	var keys []string
	for _, s := range c.Data() {
		for _, p := range s.Points {
			if !seen[p.Key] {
				seen[p.Key] = true
				keys = append(keys, p.Key)
			}
		}
	}
	return keys
}

func (c Chart) category(i int) string {
	if i < len(c.Categories) {
		return c.Categories[i]
	}
	return strconv.Itoa(i)
}

func ptr[T any](v T) *T { return &v }
