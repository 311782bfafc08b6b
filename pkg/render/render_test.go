package render

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/chart/interact"
	errs "github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/spec"
)

func barChart() spec.Chart {
	return spec.Chart{
		Name:       "sales",
		Type:       chart.KindBar,
		Categories: []string{"a", "b", "c"},
		Series:     []spec.Series{{Name: "sales", Values: []float64{1, 2, 3}}},
	}
}

func lineChart(kind chart.Kind) spec.Chart {
	return spec.Chart{
		Name:       "trend",
		Type:       kind,
		Categories: []string{"mon", "tue", "wed"},
		Series: []spec.Series{
			{Name: "web", Values: []float64{1, 4, 2}},
			{Name: "app", Values: []float64{2, 1, 3}},
		},
	}
}

func find(t *testing.T, s Scene, id string) Element {
	t.Helper()
	for _, e := range s.Elements {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("element %s not found", id)
	return Element{}
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		in      string
		want    interact.Ref
		wantErr bool
	}{
		{"2", interact.Ref{Series: 0, Point: 2}, false},
		{"1:3", interact.Ref{Series: 1, Point: 3}, false},
		{" 0:0 ", interact.Ref{}, false},
		{"x", interact.Ref{}, true},
		{"1:", interact.Ref{}, true},
		{"-1", interact.Ref{}, true},
	}
	for _, tt := range tests {
		got, err := ParseRef(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRef(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errs.Is(err, errs.ErrCodeInvalidRef) {
			t.Errorf("ParseRef(%q) code = %s, want INVALID_REF", tt.in, errs.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("ParseRef(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseProp(t *testing.T) {
	p, err := ParseProp("")
	if err != nil || p.IsControlled() {
		t.Errorf("ParseProp(\"\") = %v, %v, want uncontrolled", p, err)
	}
	p, err = ParseProp("none")
	if err != nil || !p.IsControlled() || p.Value().Valid() {
		t.Errorf("ParseProp(none) = %v, %v, want controlled None", p, err)
	}
	p, err = ParseProp("1:2")
	if err != nil || !p.Value().Is(interact.Ref{Series: 1, Point: 2}) {
		t.Errorf("ParseProp(1:2) = %v, %v", p, err)
	}
	if _, err = ParseProp("bad"); err == nil {
		t.Error("ParseProp(bad) should fail")
	}
}

func TestBarScene(t *testing.T) {
	s := Build(barChart())

	if s.Width != 640 || s.Height != 400 {
		t.Errorf("size = %vx%v, want 640x400", s.Width, s.Height)
	}
	if s.Plot.X != 48 || s.Plot.Y != 32 || s.Plot.W != 576 || s.Plot.H != 320 {
		t.Errorf("Plot = %+v", s.Plot)
	}
	if len(s.Elements) != 3 {
		t.Fatalf("len(Elements) = %d, want 3", len(s.Elements))
	}

	c := find(t, s, "s0-p2")
	if c.Rect.Y != 32 || c.Rect.H != 320 {
		t.Errorf("tallest bar = %+v, want Y=32 H=320", *c.Rect)
	}
	a := find(t, s, "s0-p0")
	if a.Rect.H <= 0 || a.Rect.H >= c.Rect.H {
		t.Errorf("bar heights %v, %v not ordered", a.Rect.H, c.Rect.H)
	}
	if a.Rect.W != c.Rect.W || a.Rect.W <= 0 {
		t.Errorf("bar widths %v, %v", a.Rect.W, c.Rect.W)
	}
	if a.Rect.X >= c.Rect.X {
		t.Errorf("bars not ordered left to right: %v, %v", a.Rect.X, c.Rect.X)
	}
	for _, e := range s.Elements {
		if e.Opacity != 1 {
			t.Errorf("%s opacity = %v, want 1 without interaction", e.ID, e.Opacity)
		}
	}

	if len(s.Axes) != 2 {
		t.Fatalf("len(Axes) = %d, want 2", len(s.Axes))
	}
	var labels []string
	for _, tk := range s.Axes[0].Ticks {
		labels = append(labels, tk.Label)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, labels); diff != "" {
		t.Errorf("category ticks mismatch (-want +got):\n%s", diff)
	}
	last := s.Axes[1].Ticks[len(s.Axes[1].Ticks)-1]
	if last.Label != "3" || last.Position != 32 {
		t.Errorf("top value tick = %+v, want 3 at 32", last)
	}
}

func TestGroupedAndStackedBars(t *testing.T) {
	c := lineChart(chart.KindBar)
	grouped := Build(c)
	w0 := find(t, grouped, "s0-p0").Rect
	w1 := find(t, grouped, "s1-p0").Rect
	if w1.X <= w0.X {
		t.Errorf("second series bar should sit right of first: %v <= %v", w1.X, w0.X)
	}

	c.Stacked = true
	stacked := Build(c)
	b0 := find(t, stacked, "s0-p0").Rect
	b1 := find(t, stacked, "s1-p0").Rect
	if b0.X != b1.X || b0.W != b1.W {
		t.Errorf("stacked bars should share x and width: %+v %+v", *b0, *b1)
	}
	if math.Abs(b1.Y+b1.H-b0.Y) > 1e-9 {
		t.Errorf("second segment should sit on the first: %+v %+v", *b0, *b1)
	}
}

func TestControlledSelection(t *testing.T) {
	sel := interact.Controlled(interact.Some(interact.Ref{Point: 1}))
	s := Build(barChart(), WithSelect(sel))

	want := map[string]float64{"s0-p0": 0.3, "s0-p1": 1, "s0-p2": 0.3}
	for id, o := range want {
		if got := find(t, s, id).Opacity; got != o {
			t.Errorf("%s opacity = %v, want %v", id, got, o)
		}
	}
	if s.State.Selected != "0:1" || s.State.Active != "0:1" {
		t.Errorf("State = %+v", s.State)
	}
	if !s.Legend[0].Active {
		t.Error("legend item of the selected series should be active")
	}
	if s.Tooltip != "" {
		t.Errorf("Tooltip = %q, want empty without hover", s.Tooltip)
	}
}

func TestTooltipNeedsHoverable(t *testing.T) {
	no := false
	hover := WithHover(interact.Controlled(interact.Some(interact.Ref{Point: 1})))

	pie := spec.Chart{
		Name:   "share",
		Type:   chart.KindPie,
		Series: []spec.Series{{Name: "s", Points: []spec.Point{{Key: "a", Y: 1}, {Key: "b", Y: 2}}}},
	}
	pie.Interaction.Hoverable = &no
	if s := Build(pie, hover); s.Tooltip != "" || s.State.Active != "" {
		t.Errorf("pie Tooltip = %q, Active = %q, want both empty when not hoverable", s.Tooltip, s.State.Active)
	}

	bar := barChart()
	bar.Interaction.Hoverable = &no
	if s := Build(bar, hover); s.Tooltip != "" {
		t.Errorf("bar Tooltip = %q, want empty when not hoverable", s.Tooltip)
	}
}

func TestLegendAllActiveWithoutFocus(t *testing.T) {
	s := Build(lineChart(chart.KindLine))
	for _, it := range s.Legend {
		if !it.Active {
			t.Errorf("legend item %d inactive with nothing focused", it.Index)
		}
	}
}

func TestInteractionFromDocument(t *testing.T) {
	c := barChart()
	c.Interaction.Hovered = "2"
	s := Build(c)
	if s.State.Hovered != "0:2" {
		t.Errorf("Hovered = %q, want 0:2", s.State.Hovered)
	}
	if s.Tooltip != "sales, c: 3" {
		t.Errorf("Tooltip = %q, want %q", s.Tooltip, "sales, c: 3")
	}

	s = Build(c, WithHover(interact.Controlled(interact.None[interact.Ref]())))
	if s.State.Hovered != "" || s.Tooltip != "" {
		t.Errorf("controlled None should override document hover: %+v %q", s.State, s.Tooltip)
	}
}

func TestRendererEvents(t *testing.T) {
	var selections []string
	r := New(barChart(), WithSelectHandler(func(o interact.Optional[interact.Ref]) {
		selections = append(selections, o.String())
	}))

	r.HoverEnter(interact.Ref{Point: 2})
	if got := r.Scene().Tooltip; got != "sales, c: 3" {
		t.Errorf("Tooltip after hover = %q", got)
	}
	r.HoverLeave()
	if got := r.Scene().Tooltip; got != "" {
		t.Errorf("Tooltip after leave = %q", got)
	}

	r.Click(interact.Ref{Point: 0})
	if got := r.Scene().State.Selected; got != "0:0" {
		t.Errorf("Selected after click = %q", got)
	}
	if !r.KeyDown(interact.Ref{Point: 0}, "enter") {
		t.Error("enter should be handled")
	}
	if got := r.Scene().State.Selected; got != "" {
		t.Errorf("Selected after second activation = %q, want none", got)
	}
	if r.KeyDown(interact.Ref{Point: 0}, "x") {
		t.Error("x should not be handled")
	}
	if len(selections) != 2 {
		t.Errorf("select events = %v, want 2", selections)
	}
}

func TestNotSelectable(t *testing.T) {
	c := barChart()
	no := false
	c.Interaction.Selectable = &no
	r := New(c)
	r.Click(interact.Ref{Point: 1})
	if r.KeyDown(interact.Ref{Point: 1}, "enter") {
		t.Error("KeyDown should not be handled when not selectable")
	}
	if got := r.Scene().State.Selected; got != "" {
		t.Errorf("Selected = %q, want none", got)
	}
}

func TestLineScene(t *testing.T) {
	s := Build(lineChart(chart.KindLine), WithHover(interact.Controlled(interact.Some(interact.Ref{Series: 1, Point: 0}))))

	if got := len(s.Elements); got != 2+6 {
		t.Fatalf("len(Elements) = %d, want 8", got)
	}
	l0, l1 := find(t, s, "s0-line"), find(t, s, "s1-line")
	if l0.Opacity != 0.3 || l1.Opacity != 1 {
		t.Errorf("line opacities = %v, %v, want 0.3, 1", l0.Opacity, l1.Opacity)
	}
	if !strings.HasPrefix(l0.Path, "M") || strings.HasSuffix(l0.Path, "Z") {
		t.Errorf("line path = %q", l0.Path)
	}
	if got := find(t, s, "s1-p1").Opacity; got != 0.3 {
		t.Errorf("unhovered marker opacity = %v, want 0.3", got)
	}
	if s.Tooltip != "app, mon: 2" {
		t.Errorf("Tooltip = %q", s.Tooltip)
	}
	if s.Legend[0].Active || !s.Legend[1].Active {
		t.Errorf("Legend = %+v, want series 1 active", s.Legend)
	}
}

func TestAreaScene(t *testing.T) {
	c := lineChart(chart.KindArea)
	c.Stacked = true
	c.Curve = "monotone"
	s := Build(c)

	a0, a1 := find(t, s, "s0-area"), find(t, s, "s1-area")
	for _, a := range []Element{a0, a1} {
		if !strings.HasPrefix(a.Path, "M") || !strings.HasSuffix(a.Path, "Z") {
			t.Errorf("%s path = %q, want closed path", a.ID, a.Path)
		}
		if !strings.Contains(a.Path, "C") {
			t.Errorf("%s path = %q, want cubic segments", a.ID, a.Path)
		}
	}
	if s.Elements[0].ID != "s0-area" {
		t.Errorf("areas should be drawn first, got %s", s.Elements[0].ID)
	}
}

func TestScatterScene(t *testing.T) {
	c := spec.Chart{
		Name: "dots",
		Type: chart.KindScatter,
		Series: []spec.Series{{Name: "s", Points: []spec.Point{
			{X: 0, Y: 0}, {X: 10, Y: 10, Size: 8},
		}}},
	}
	s := Build(c)
	p0, p1 := find(t, s, "s0-p0").Circle, find(t, s, "s0-p1").Circle
	if p0.CX != s.Plot.X || p0.CY != s.Plot.Y+s.Plot.H {
		t.Errorf("origin point at %+v", *p0)
	}
	if p1.CX != s.Plot.X+s.Plot.W || p1.CY != s.Plot.Y {
		t.Errorf("max point at %+v", *p1)
	}
	if p0.R != 4 || p1.R != 8 {
		t.Errorf("radii = %v, %v, want 4, 8", p0.R, p1.R)
	}
	if s.Axes[0].Orient != OrientBottom || s.Axes[1].Orient != OrientLeft {
		t.Errorf("axes = %v, %v", s.Axes[0].Orient, s.Axes[1].Orient)
	}
}

func TestDonutScene(t *testing.T) {
	c := spec.Chart{
		Name:       "share",
		Type:       chart.KindDonut,
		Categories: []string{"a", "b"},
		Series:     []spec.Series{{Values: []float64{1, 1}}},
	}
	s := Build(c, WithHover(interact.Controlled(interact.Some(interact.Ref{Point: 1}))))

	if len(s.Elements) != 2 {
		t.Fatalf("len(Elements) = %d, want 2", len(s.Elements))
	}
	for _, e := range s.Elements {
		if !strings.HasSuffix(e.Path, "Z") || !strings.Contains(e.Path, "A") {
			t.Errorf("%s path = %q, want closed arc", e.ID, e.Path)
		}
	}
	if find(t, s, "p0").Opacity != 0.3 || find(t, s, "p1").Opacity != 1 {
		t.Error("hovered slice should be the only opaque one")
	}
	if s.Tooltip != "b: 1" {
		t.Errorf("Tooltip = %q, want %q", s.Tooltip, "b: 1")
	}
	if len(s.Legend) != 2 || s.Legend[0].Label != "a" || !s.Legend[1].Active {
		t.Errorf("Legend = %+v", s.Legend)
	}
	if s.State.Hovered != "0:1" {
		t.Errorf("State.Hovered = %q", s.State.Hovered)
	}
}

func TestRadarScene(t *testing.T) {
	c := spec.Chart{
		Name:       "skills",
		Type:       chart.KindRadar,
		Categories: []string{"go", "sql", "ops"},
		Series:     []spec.Series{{Name: "me", Values: []float64{1, 2, 3}}},
	}
	s := Build(c)
	if len(s.Grid) != 4 {
		t.Errorf("len(Grid) = %d, want 4", len(s.Grid))
	}
	if len(s.Spokes) != 3 {
		t.Errorf("len(Spokes) = %d, want 3", len(s.Spokes))
	}
	if len(s.Elements) != 1+3 {
		t.Errorf("len(Elements) = %d, want 4", len(s.Elements))
	}
	if s.Axes[0].Orient != OrientRadial || s.Axes[0].Ticks[1].Label != "sql" {
		t.Errorf("radar labels = %+v", s.Axes[0])
	}
	top := find(t, s, "s0-p0").Circle
	cx, cy, radius := s.center()
	radius -= radarLabelOffset
	// The first axis points straight up and value 1 of max 3 sits a third out.
	if d := cy - top.CY; d < radius/3-0.001 || d > radius/3+0.001 || top.CX-cx > 1e-9 || cx-top.CX > 1e-9 {
		t.Errorf("first vertex at %+v, centre (%v,%v) radius %v", *top, cx, cy, radius)
	}
}

func TestDeterministic(t *testing.T) {
	a := Build(lineChart(chart.KindArea))
	b := Build(lineChart(chart.KindArea))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("scenes differ (-a +b):\n%s", diff)
	}

	other := lineChart(chart.KindArea)
	other.Series[0].Values[0] = 5
	if Build(other).ID == a.ID {
		t.Error("different charts should get different ids")
	}
}

func TestNiceDomain(t *testing.T) {
	tests := []struct {
		in   [2]float64
		want [2]float64
	}{
		{[2]float64{0, 3}, [2]float64{0, 3}},
		{[2]float64{0, 97}, [2]float64{0, 100}},
		{[2]float64{-3, 7}, [2]float64{-4, 8}},
		{[2]float64{0.12, 0.87}, [2]float64{0.1, 0.9}},
	}
	for _, tt := range tests {
		if got := niceDomain(tt.in, 5); got != tt.want {
			t.Errorf("niceDomain(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := widen([2]float64{0, 0}); got != [2]float64{0, 1} {
		t.Errorf("widen(0,0) = %v", got)
	}
	if got := baseline([2]float64{2, 10}); got != 2 {
		t.Errorf("baseline(2,10) = %v, want 2", got)
	}
	if got := baseline([2]float64{-10, -2}); got != -2 {
		t.Errorf("baseline(-10,-2) = %v, want -2", got)
	}
}
