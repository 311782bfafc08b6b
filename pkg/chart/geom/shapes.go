package geom

import "math"

// LinePath returns the path through points using curve c.
// No points yield "" and a single point yields a bare move.
func LinePath(points []Vec, c Curve) string {
	var p Path
	trace(&p, points, c, true)
	return p.String()
}

// AreaPath returns a closed path that follows points along the top and
// returns along the horizontal line y = baseline.
func AreaPath(points []Vec, baseline float64, c Curve) string {
	if len(points) == 0 {
		return ""
	}
	bottom := make([]Vec, len(points))
	for i, pt := range points {
		bottom[i] = Vec{pt.X, baseline}
	}
	return StackedAreaPath(points, bottom, c)
}

// StackedAreaPath returns a closed path between top and bottom. The top edge
// is drawn forward and the bottom edge in reverse, so for stacked series the
// bottom of series i follows the top of series i-1.
func StackedAreaPath(top, bottom []Vec, c Curve) string {
	if len(top) == 0 {
		return ""
	}
	var p Path
	trace(&p, top, c, true)
	if len(bottom) > 0 {
		reversed := make([]Vec, len(bottom))
		for i, pt := range bottom {
			reversed[len(bottom)-1-i] = pt
		}
		trace(&p, reversed, c, false)
	}
	p.Close()
	return p.String()
}

// ArcPath returns an annular sector centred at (cx, cy) between the inner
// and outer radii and the start and end angles. An inner radius of zero draws
// a pie slice that closes at the centre. Sweeps of a full turn or more draw a
// complete ring. A zero sweep or a non-positive outer radius yields "".
func ArcPath(cx, cy, inner, outer, start, end float64) string {
	if inner > outer {
		inner, outer = outer, inner
	}
	inner = math.Max(inner, 0)
	if !(outer > 0) || start == end || math.IsNaN(start) || math.IsNaN(end) {
		return ""
	}
	if end < start {
		start, end = end, start
	}

	var p Path
	sweep := end - start
	if sweep >= 2*math.Pi-1e-9 {
		// A single arc command cannot draw a full circle: split into halves.
		mid := start + math.Pi
		p.MoveTo(Polar(cx, cy, outer, start))
		p.ArcTo(outer, outer, false, true, Polar(cx, cy, outer, mid))
		p.ArcTo(outer, outer, false, true, Polar(cx, cy, outer, start))
		p.Close()
		if inner > 0 {
			p.MoveTo(Polar(cx, cy, inner, start))
			p.ArcTo(inner, inner, false, false, Polar(cx, cy, inner, mid))
			p.ArcTo(inner, inner, false, false, Polar(cx, cy, inner, start))
			p.Close()
		}
		return p.String()
	}

	large := sweep > math.Pi
	p.MoveTo(Polar(cx, cy, outer, start))
	p.ArcTo(outer, outer, large, true, Polar(cx, cy, outer, end))
	if inner > 0 {
		p.LineTo(Polar(cx, cy, inner, end))
		p.ArcTo(inner, inner, large, false, Polar(cx, cy, inner, start))
	} else {
		p.LineTo(Vec{cx, cy})
	}
	p.Close()
	return p.String()
}

// RadarPath returns the closed polygon of a radar series. Vertex i lies at
// angle start + i·2π/n and distance radius·values[i]/maxValue from the
// centre. A non-positive maxValue collapses every vertex to the centre.
// Negative and non-finite values are drawn at the centre.
func RadarPath(cx, cy, radius float64, values []float64, maxValue, start float64) string {
	n := len(values)
	if n == 0 {
		return ""
	}
	step := 2 * math.Pi / float64(n)
	var p Path
	for i, v := range values {
		ratio := 0.0
		if maxValue > 0 && v > 0 && !math.IsInf(v, 0) {
			ratio = v / maxValue
		}
		pt := Polar(cx, cy, radius*ratio, start+float64(i)*step)
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	p.Close()
	return p.String()
}

// RadarGridPath returns one closed polygon per level, from the innermost ring
// (radius/levels) to the outer ring (radius).
func RadarGridPath(cx, cy, radius float64, axes, levels int, start float64) []string {
	if axes <= 0 || levels <= 0 {
		return nil
	}
	full := make([]float64, axes)
	for i := range full {
		full[i] = 1
	}
	rings := make([]string, levels)
	for l := 1; l <= levels; l++ {
		rings[l-1] = RadarPath(cx, cy, radius*float64(l)/float64(levels), full, 1, start)
	}
	return rings
}

// RadarSpokes returns the outer end point of every radar axis.
func RadarSpokes(cx, cy, radius float64, axes int, start float64) []Vec {
	if axes <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(axes)
	out := make([]Vec, axes)
	for i := range out {
		out[i] = Polar(cx, cy, radius, start+float64(i)*step)
	}
	return out
}

// Rect is an axis-aligned rectangle with non-negative size.
type Rect struct {
	X, Y, W, H float64
}

// BarRect returns the rectangle of a bar spanning x..x+width horizontally and
// between the pixel coordinates y0 and y1 vertically, in either order.
func BarRect(x, width, y0, y1 float64) Rect {
	return Rect{
		X: x,
		Y: math.Min(y0, y1),
		W: math.Max(width, 0),
		H: math.Abs(y1 - y0),
	}
}
