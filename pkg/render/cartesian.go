package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/chart/geom"
	"github.com/matzehuels/chartkit/pkg/chart/scale"
	"github.com/matzehuels/chartkit/pkg/chart/stack"
	"github.com/matzehuels/chartkit/pkg/chart/ticks"
)

const (
	markerRadius  = 3.0
	scatterRadius = 4.0
	groupPadding  = 0.05
)

// ===== Bar =====

func (r *Renderer) buildBar(s *Scene) {
	c := r.chart
	keys := c.Keys()
	x := scale.NewBand(keys, scale.Range{s.Plot.X, s.Plot.X + s.Plot.W})

	var stacked [][]stack.Point
	var ext [2]float64
	if c.Stacked {
		stacked = stack.Stack(chart.Points(r.data))
		ext = stack.Extent(stacked)
		if *c.Axis.IncludeZero {
			ext = [2]float64{math.Min(ext[0], 0), math.Max(ext[1], 0)}
		}
	} else {
		ext = scale.Extent(allValues(r.data), *c.Axis.IncludeZero)
	}
	y := r.valueScale(s, ext)
	base := y.Map(baseline(y.Bounds()))

	names := make([]string, len(r.data))
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	group := scale.NewBand(names, scale.Range{0, x.Bandwidth()},
		scale.WithPaddingInner(groupPadding), scale.WithPaddingOuter(0))

	for si, series := range r.data {
		for pi, p := range series.Points {
			var rect geom.Rect
			if c.Stacked {
				sp := stacked[si][pi]
				rect = geom.BarRect(x.Map(p.Key), x.Bandwidth(), y.Map(sp.Y0), y.Map(sp.Y1))
			} else {
				rect = geom.BarRect(x.Map(p.Key)+group.Map(names[si]), group.Bandwidth(), base, y.Map(p.Y))
			}
			s.Elements = append(s.Elements, r.element(Element{
				ID:     fmt.Sprintf("s%d-p%d", si, pi),
				Shape:  ShapeRect,
				Series: si,
				Point:  pi,
				Rect:   &rect,
				Fill:   pointColor(p, r.seriesColor(si)),
				Title:  pointTitle(series, p, pi),
			}))
		}
	}

	s.Axes = append(s.Axes, categoryAxis(x), valueAxis(y, c.Axis.Ticks, c.Axis.TickValues))
}

// ===== Line and area =====

func (r *Renderer) buildLine(s *Scene) {
	c := r.chart
	keys := c.Keys()
	x := scale.NewPoint(keys, scale.Range{s.Plot.X, s.Plot.X + s.Plot.W})
	curve := geom.ParseCurve(c.Curve)

	var stacked [][]stack.Point
	var ext [2]float64
	if c.Stacked {
		stacked = stack.Stack(chart.Points(r.data))
		ext = stack.Extent(stacked)
		if *c.Axis.IncludeZero {
			ext = [2]float64{math.Min(ext[0], 0), math.Max(ext[1], 0)}
		}
	} else {
		ext = scale.Extent(allValues(r.data), *c.Axis.IncludeZero)
	}
	y := r.valueScale(s, ext)
	base := y.Map(baseline(y.Bounds()))

	// Areas first so that lines and markers are drawn over them.
	var lines, markers []Element
	for si, series := range r.data {
		top := make([]geom.Vec, len(series.Points))
		bottom := make([]geom.Vec, len(series.Points))
		for pi, p := range series.Points {
			px := x.Map(p.Key)
			if c.Stacked {
				sp := stacked[si][pi]
				top[pi] = geom.Vec{X: px, Y: y.Map(sp.Y1)}
				bottom[pi] = geom.Vec{X: px, Y: y.Map(sp.Y0)}
			} else {
				top[pi] = geom.Vec{X: px, Y: y.Map(p.Y)}
				bottom[pi] = geom.Vec{X: px, Y: base}
			}
		}

		color := r.seriesColor(si)
		if c.Type == chart.KindArea {
			s.Elements = append(s.Elements, r.element(Element{
				ID:     fmt.Sprintf("s%d-area", si),
				Shape:  ShapePath,
				Series: si,
				Point:  -1,
				Path:   geom.StackedAreaPath(top, bottom, curve),
				Fill:   color,
				Title:  series.Name,
			}))
		}
		lines = append(lines, r.element(Element{
			ID:     fmt.Sprintf("s%d-line", si),
			Shape:  ShapePath,
			Series: si,
			Point:  -1,
			Path:   geom.LinePath(top, curve),
			Stroke: color,
			Title:  series.Name,
		}))
		for pi, p := range series.Points {
			markers = append(markers, r.element(Element{
				ID:     fmt.Sprintf("s%d-p%d", si, pi),
				Shape:  ShapeCircle,
				Series: si,
				Point:  pi,
				Circle: &Circle{CX: top[pi].X, CY: top[pi].Y, R: markerRadius},
				Fill:   pointColor(p, color),
				Title:  pointTitle(series, p, pi),
			}))
		}
	}
	s.Elements = append(append(s.Elements, lines...), markers...)
	s.Axes = append(s.Axes, categoryAxis(x), valueAxis(y, c.Axis.Ticks, c.Axis.TickValues))
}

// ===== Scatter =====

func (r *Renderer) buildScatter(s *Scene) {
	c := r.chart
	var xs []float64
	for _, series := range r.data {
		for _, p := range series.Points {
			xs = append(xs, p.X)
		}
	}
	xd := niceDomain(widen(scale.Extent(xs, false)), c.Axis.Ticks)
	x := scale.NewLinear(xd, scale.Range{s.Plot.X, s.Plot.X + s.Plot.W})
	y := r.valueScale(s, scale.Extent(allValues(r.data), *c.Axis.IncludeZero))

	for si, series := range r.data {
		color := r.seriesColor(si)
		for pi, p := range series.Points {
			radius := scatterRadius
			if p.Size > 0 {
				radius = p.Size
			}
			s.Elements = append(s.Elements, r.element(Element{
				ID:     fmt.Sprintf("s%d-p%d", si, pi),
				Shape:  ShapeCircle,
				Series: si,
				Point:  pi,
				Circle: &Circle{CX: x.Map(p.X), CY: y.Map(p.Y), R: radius},
				Fill:   pointColor(p, color),
				Title:  pointTitle(series, p, pi),
			}))
		}
	}

	s.Axes = append(s.Axes, valueAxisOrient(x, OrientBottom, c.Axis.Ticks, nil), valueAxis(y, c.Axis.Ticks, c.Axis.TickValues))
}

// ===== Scales and axes =====

// valueScale maps the nice-rounded extent onto the plot height, growing
// upwards.
func (r *Renderer) valueScale(s *Scene, ext [2]float64) scale.Linear {
	d := niceDomain(widen(ext), r.chart.Axis.Ticks)
	return scale.NewLinear(d, scale.Range{s.Plot.Y + s.Plot.H, s.Plot.Y})
}

func categoryAxis(x scale.Scale[string]) Axis {
	return Axis{Orient: OrientBottom, Ticks: axisTicks(ticks.AxisTicks(x, ticks.Options[string]{}))}
}

func valueAxis(y scale.Linear, count int, values []float64) Axis {
	return valueAxisOrient(y, OrientLeft, count, values)
}

func valueAxisOrient(s scale.Linear, orient Orient, count int, values []float64) Axis {
	tt := ticks.AxisTicks[float64](s, ticks.Options[float64]{Count: count, Values: values})
	return Axis{Orient: orient, Ticks: axisTicks(tt)}
}

func axisTicks[T scale.Value](tt []ticks.Tick[T]) []AxisTick {
	out := make([]AxisTick, len(tt))
	for i, t := range tt {
		out[i] = AxisTick{Label: t.Label, Position: t.Position}
	}
	return out
}

// niceDomain extends ext outwards to multiples of the tick step.
func niceDomain(ext [2]float64, count int) [2]float64 {
	_, step := ticks.Linear(ext[0], ext[1], count)
	if step <= 0 {
		return ext
	}
	const eps = 1e-9
	digits := ticks.Decimals(step)
	lo := math.Floor(ext[0]/step+eps) * step
	hi := math.Ceil(ext[1]/step-eps) * step
	return [2]float64{round(lo, digits), round(hi, digits)}
}

// widen turns a single-value extent into a range around it.
func widen(ext [2]float64) [2]float64 {
	if ext[0] != ext[1] {
		return ext
	}
	if ext[0] == 0 {
		return [2]float64{0, 1}
	}
	d := math.Abs(ext[0]) / 10
	return [2]float64{ext[0] - d, ext[1] + d}
}

// baseline is the value bars and areas grow from: zero when the domain
// contains it, else the domain end nearest to zero.
func baseline(d [2]float64) float64 {
	return math.Max(math.Min(0, d[1]), d[0])
}

func round(v float64, digits int) float64 {
	p := math.Pow10(digits)
	v = math.Round(v*p) / p
	if v == 0 {
		return 0
	}
	return v
}

func allValues(data []chart.Series) []float64 {
	var out []float64
	for _, s := range data {
		out = append(out, s.Values()...)
	}
	return out
}

func pointColor(p chart.Point, fallback string) string {
	if p.Color != "" {
		return p.Color
	}
	return fallback
}

func pointTitle(s chart.Series, p chart.Point, i int) string {
	name := p.Name(i)
	if s.Name != "" {
		name = s.Name + ", " + name
	}
	return name + ": " + chart.FormatNumber(p.Y)
}
