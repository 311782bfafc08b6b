package render

import (
	"fmt"
	"math"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/chart/geom"
)

const (
	radarLevels      = 4
	radarLabelOffset = 12.0
)

// startAngle puts the first slice and the first radar axis at twelve o'clock.
const startAngle = -math.Pi / 2

func (s *Scene) center() (cx, cy, radius float64) {
	return s.Plot.X + s.Plot.W/2, s.Plot.Y + s.Plot.H/2, math.Min(s.Plot.W, s.Plot.H) / 2
}

// ===== Pie and donut =====

func (r *Renderer) buildPie(s *Scene) {
	if len(r.data) == 0 {
		return
	}
	series := r.data[0]
	cx, cy, outer := s.center()
	inner := outer * r.chart.InnerRadius
	palette := r.chart.ColorPalette()

	arcs := geom.Pie(series.Points, func(p chart.Point) float64 { return p.Y }, geom.PieOptions{
		StartAngle: startAngle,
		EndAngle:   startAngle + 2*math.Pi,
		PadAngle:   r.chart.PadAngle,
	})
	for _, a := range arcs {
		start, end := a.Span()
		s.Elements = append(s.Elements, r.element(Element{
			ID:     fmt.Sprintf("p%d", a.Index),
			Shape:  ShapePath,
			Series: 0,
			Point:  a.Index,
			Path:   geom.ArcPath(cx, cy, inner, outer, start, end),
			Fill:   pointColor(a.Data, palette.Color(a.Index)),
			Title:  a.Data.Name(a.Index) + ": " + chart.FormatNumber(a.Value),
		}))
	}
}

// ===== Radar =====

func (r *Renderer) buildRadar(s *Scene) {
	c := r.chart
	cx, cy, radius := s.center()
	radius = math.Max(0, radius-radarLabelOffset)

	keys := c.Keys()
	axes := len(keys)
	for _, series := range r.data {
		axes = max(axes, len(series.Points))
	}

	maxValue := c.MaxValue
	if maxValue == 0 {
		for _, v := range allValues(r.data) {
			if !math.IsInf(v, 0) && v > maxValue {
				maxValue = v
			}
		}
	}

	s.Grid = geom.RadarGridPath(cx, cy, radius, axes, radarLevels, startAngle)
	spokes := geom.RadarSpokes(cx, cy, radius, axes, startAngle)
	labels := Axis{Orient: OrientRadial}
	for i, end := range spokes {
		s.Spokes = append(s.Spokes, Line{From: geom.Vec{X: cx, Y: cy}, To: end})
		at := geom.Polar(cx, cy, radius+radarLabelOffset, startAngle+float64(i)*2*math.Pi/float64(axes))
		label := fmt.Sprint(i)
		if i < len(keys) {
			label = keys[i]
		}
		labels.Ticks = append(labels.Ticks, AxisTick{Label: label, Position: float64(i), At: &at})
	}
	s.Axes = append(s.Axes, labels)

	for si, series := range r.data {
		values := make([]float64, axes)
		for pi, p := range series.Points {
			values[pi] = p.Y
		}
		color := r.seriesColor(si)
		s.Elements = append(s.Elements, r.element(Element{
			ID:     fmt.Sprintf("s%d-area", si),
			Shape:  ShapePath,
			Series: si,
			Point:  -1,
			Path:   geom.RadarPath(cx, cy, radius, values, maxValue, startAngle),
			Fill:   color,
			Stroke: color,
			Title:  series.Name,
		}))
	}

	step := 2 * math.Pi / float64(max(axes, 1))
	for si, series := range r.data {
		color := r.seriesColor(si)
		for pi, p := range series.Points {
			ratio := 0.0
			if maxValue > 0 && p.Y > 0 && !math.IsInf(p.Y, 0) {
				ratio = p.Y / maxValue
			}
			at := geom.Polar(cx, cy, radius*ratio, startAngle+float64(pi)*step)
			s.Elements = append(s.Elements, r.element(Element{
				ID:     fmt.Sprintf("s%d-p%d", si, pi),
				Shape:  ShapeCircle,
				Series: si,
				Point:  pi,
				Circle: &Circle{CX: at.X, CY: at.Y, R: markerRadius},
				Fill:   pointColor(p, color),
				Title:  pointTitle(series, p, pi),
			}))
		}
	}
}
