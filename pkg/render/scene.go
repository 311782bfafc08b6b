package render

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/chart/geom"
	"github.com/matzehuels/chartkit/pkg/chart/interact"
	"github.com/matzehuels/chartkit/pkg/chart/legend"
	"github.com/matzehuels/chartkit/pkg/spec"
)

// Plot margins around the data area, in pixels.
const (
	MarginTop    = 32.0
	MarginRight  = 16.0
	MarginBottom = 48.0
	MarginLeft   = 48.0
)

// Scene is a computed chart, ready to draw.
type Scene struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Type     chart.Kind    `json:"type"`
	Title    string        `json:"title,omitempty"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Plot     geom.Rect     `json:"plot"`
	Axes     []Axis        `json:"axes,omitempty"`
	Grid     []string      `json:"grid,omitempty"`
	Spokes   []Line        `json:"spokes,omitempty"`
	Elements []Element     `json:"elements"`
	Legend   []legend.Item `json:"legend"`
	Tooltip  string        `json:"tooltip,omitempty"`
	State    State         `json:"state"`
}

// Orient is the side of the plot an axis is drawn on, or "radial" for the
// category labels around a radar chart.
type Orient string

const (
	OrientBottom Orient = "bottom"
	OrientLeft   Orient = "left"
	OrientRadial Orient = "radial"
)

// Axis is a positioned list of tick labels.
type Axis struct {
	Orient Orient     `json:"orient"`
	Ticks  []AxisTick `json:"ticks"`
}

// AxisTick is one tick. Position is the pixel coordinate along the axis;
// radial ticks carry their label anchor in At instead.
type AxisTick struct {
	Label    string    `json:"label"`
	Position float64   `json:"position"`
	At       *geom.Vec `json:"at,omitempty"`
}

// Line is a straight segment.
type Line struct {
	From geom.Vec `json:"from"`
	To   geom.Vec `json:"to"`
}

// Shape is the geometric primitive of an element.
type Shape string

const (
	ShapeRect   Shape = "rect"
	ShapePath   Shape = "path"
	ShapeCircle Shape = "circle"
)

// Element is one drawable, interactive mark. Series and Point identify the
// datum; Point is -1 for marks covering a whole series (lines, areas, radar
// polygons).
type Element struct {
	ID      string     `json:"id"`
	Shape   Shape      `json:"shape"`
	Series  int        `json:"series"`
	Point   int        `json:"point"`
	Path    string     `json:"d,omitempty"`
	Rect    *geom.Rect `json:"rect,omitempty"`
	Circle  *Circle    `json:"circle,omitempty"`
	Fill    string     `json:"fill,omitempty"`
	Stroke  string     `json:"stroke,omitempty"`
	Opacity float64    `json:"opacity"`
	Title   string     `json:"title,omitempty"`
}

// Circle is a circle element.
type Circle struct {
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
	R  float64 `json:"r"`
}

// State is the resolved interaction state as ref strings ("" when none).
type State struct {
	Hovered  string `json:"hovered,omitempty"`
	Selected string `json:"selected,omitempty"`
	Active   string `json:"active,omitempty"`
}

// Option configures a Renderer.
type Option func(*options)

type options struct {
	hovered, selected interact.Prop[interact.Ref]
	hoverSet, selSet  bool
	onSelect          func(interact.Optional[interact.Ref])
}

// WithHover sets the hovered prop, overriding the chart's interaction block.
func WithHover(p interact.Prop[interact.Ref]) Option {
	return func(o *options) { o.hovered, o.hoverSet = p, true }
}

// WithSelect sets the selected prop, overriding the chart's interaction block.
func WithSelect(p interact.Prop[interact.Ref]) Option {
	return func(o *options) { o.selected, o.selSet = p, true }
}

// WithSelectHandler registers a callback for selection changes.
func WithSelectHandler(fn func(interact.Optional[interact.Ref])) Option {
	return func(o *options) { o.onSelect = fn }
}

// Renderer binds a chart to an interaction resolver.
type Renderer struct {
	chart spec.Chart
	data  []chart.Series

	// Exactly one is set: flat for pie and donut charts, multi otherwise.
	flat  *interact.Resolver[int, chart.Point]
	multi *interact.Resolver[interact.Ref, chart.Point]
}

// New creates a renderer for c. Defaults are applied to c.
func New(c spec.Chart, opts ...Option) *Renderer {
	c = c.WithDefaults()
	o := options{
		hovered:  propFromSpec(c.Interaction.Hovered),
		selected: propFromSpec(c.Interaction.Selected),
	}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{chart: c, data: c.Data()}
	hoverable, selectable := *c.Interaction.Hoverable, *c.Interaction.Selectable

	if flatKind(c.Type) {
		toPoint := func(ref interact.Ref) int { return ref.Point }
		var onSelect func(interact.Event[int, chart.Point])
		if o.onSelect != nil {
			onSelect = func(e interact.Event[int, chart.Point]) {
				o.onSelect(interact.MapOptional(e.Key, func(i int) interact.Ref { return interact.Ref{Point: i} }))
			}
		}
		var points []chart.Point
		if len(r.data) > 0 {
			points = r.data[0].Points
		}
		r.flat = interact.New(points, interact.Options[int, chart.Point]{
			Hoverable:      hoverable,
			Selectable:     selectable,
			Hovered:        interact.MapProp(o.hovered, toPoint),
			Selected:       interact.MapProp(o.selected, toPoint),
			OnSelectChange: onSelect,
		})
		return r
	}

	var onSelect func(interact.Event[interact.Ref, chart.Point])
	if o.onSelect != nil {
		onSelect = func(e interact.Event[interact.Ref, chart.Point]) { o.onSelect(e.Key) }
	}
	r.multi = interact.NewMulti(chart.Points(r.data), interact.Options[interact.Ref, chart.Point]{
		Hoverable:      hoverable,
		Selectable:     selectable,
		Hovered:        o.hovered,
		Selected:       o.selected,
		OnSelectChange: onSelect,
	})
	return r
}

// Build renders c once with the given props.
func Build(c spec.Chart, opts ...Option) Scene {
	return New(c, opts...).Scene()
}

// Chart returns the chart with defaults applied.
func (r *Renderer) Chart() spec.Chart { return r.chart }

// Data returns the chart's series.
func (r *Renderer) Data() []chart.Series { return r.data }

// HoverEnter forwards a pointer-enter on ref to the resolver.
func (r *Renderer) HoverEnter(ref interact.Ref) {
	if r.flat != nil {
		r.flat.HoverEnter(ref.Point)
		return
	}
	r.multi.HoverEnter(ref)
}

// HoverLeave forwards a pointer-leave to the resolver.
func (r *Renderer) HoverLeave() {
	if r.flat != nil {
		r.flat.HoverLeave()
		return
	}
	r.multi.HoverLeave()
}

// Click forwards a click on ref to the resolver.
func (r *Renderer) Click(ref interact.Ref) {
	if r.flat != nil {
		r.flat.Click(ref.Point)
		return
	}
	r.multi.Click(ref)
}

// KeyDown forwards a key press on the focused ref and reports whether it
// was handled.
func (r *Renderer) KeyDown(ref interact.Ref, key string) bool {
	if r.flat != nil {
		return r.flat.KeyDown(ref.Point, key)
	}
	return r.multi.KeyDown(ref, key)
}

// State returns the resolved interaction state.
func (r *Renderer) State() interact.State[interact.Ref] {
	if r.flat != nil {
		s := r.flat.State()
		return interact.State[interact.Ref]{
			Hovered:  interact.MapOptional(s.Hovered, pointRef),
			Selected: interact.MapOptional(s.Selected, pointRef),
			Active:   interact.MapOptional(s.Active, pointRef),
		}
	}
	return r.multi.State()
}

// Opacity returns the opacity override for the element at ref.
func (r *Renderer) Opacity(ref interact.Ref) (float64, bool) {
	if r.flat != nil {
		return r.flat.Opacity(ref.Point)
	}
	return r.multi.Opacity(ref)
}

// SeriesOpacity returns the opacity override for a mark covering series s.
func (r *Renderer) SeriesOpacity(s int) (float64, bool) {
	if r.flat != nil {
		return 0, false
	}
	return r.multi.OpacityWhere(func(active interact.Ref) bool { return active.Series == s })
}

// Scene computes the scene for the current props and local state.
func (r *Renderer) Scene() Scene {
	c := r.chart
	w, h := float64(c.Width), float64(c.Height)
	s := Scene{
		ID:     sceneID(c),
		Name:   c.Name,
		Type:   c.Type,
		Title:  c.Title,
		Width:  w,
		Height: h,
		Plot: geom.Rect{
			X: MarginLeft,
			Y: MarginTop,
			W: max(0, w-MarginLeft-MarginRight),
			H: max(0, h-MarginTop-MarginBottom),
		},
	}

	switch c.Type {
	case chart.KindBar:
		r.buildBar(&s)
	case chart.KindLine, chart.KindArea:
		r.buildLine(&s)
	case chart.KindScatter:
		r.buildScatter(&s)
	case chart.KindPie, chart.KindDonut:
		r.buildPie(&s)
	case chart.KindRadar:
		r.buildRadar(&s)
	}

	state := r.State()
	s.State = State{
		Hovered:  formatRef(state.Hovered),
		Selected: formatRef(state.Selected),
		Active:   formatRef(state.Active),
	}
	r.buildLegend(&s, state)
	return s
}

func (r *Renderer) buildLegend(s *Scene, state interact.State[interact.Ref]) {
	palette := r.chart.ColorPalette()
	if r.flat != nil {
		var points []chart.Point
		if len(r.data) > 0 {
			points = r.data[0].Points
		}
		s.Legend = legend.Items(points, palette, r.flat.ActiveIndex(), legend.ItemOptions[chart.Point]{})
		if r.hoverable() {
			s.Tooltip = legend.Tooltip(points, r.flat.HoveredIndex(), nil)
		}
		return
	}
	s.Legend = legend.Items(r.data, palette, interact.SeriesOf(state.Active), legend.ItemOptions[chart.Series]{})
	if r.hoverable() {
		s.Tooltip = legend.MultiTooltip(r.data, state.Hovered, nil)
	}
}

func (r *Renderer) hoverable() bool {
	return *r.chart.Interaction.Hoverable
}

// element fills in the opacity of e from the resolver. Whole-series marks
// use the series opacity.
func (r *Renderer) element(e Element) Element {
	var (
		o  float64
		ok bool
	)
	if e.Point < 0 {
		o, ok = r.SeriesOpacity(e.Series)
	} else {
		o, ok = r.Opacity(interact.Ref{Series: e.Series, Point: e.Point})
	}
	e.Opacity = 1
	if ok {
		e.Opacity = o
	}
	return e
}

// seriesColor returns the colour of series i.
func (r *Renderer) seriesColor(i int) string {
	if i < len(r.data) && r.data[i].Color != "" {
		return r.data[i].Color
	}
	return r.chart.ColorPalette().Color(i)
}

func flatKind(k chart.Kind) bool {
	return k == chart.KindPie || k == chart.KindDonut
}

func pointRef(i int) interact.Ref { return interact.Ref{Point: i} }

func propFromSpec(s string) interact.Prop[interact.Ref] {
	if s == "" {
		return interact.Uncontrolled[interact.Ref]()
	}
	p, err := ParseProp(s)
	if err != nil {
		return interact.Uncontrolled[interact.Ref]()
	}
	return p
}

// sceneID derives a stable id from the chart definition, so identical charts
// render byte-identical SVG.
func sceneID(c spec.Chart) string {
	data, _ := json.Marshal(c)
	return "chart-" + uuid.NewSHA1(uuid.NameSpaceOID, data).String()[:8]
}
