package geom

import (
	"math"
	"strings"
)

// Curve selects how consecutive points are joined.
type Curve string

// Supported curves.
const (
	CurveLinear     Curve = "linear"
	CurveMonotone   Curve = "monotone"
	CurveStep       Curve = "step"
	CurveStepBefore Curve = "step-before"
	CurveStepAfter  Curve = "step-after"
)

// Curves lists every supported curve.
var Curves = []Curve{CurveLinear, CurveMonotone, CurveStep, CurveStepBefore, CurveStepAfter}

// ParseCurve returns the curve named s. Unknown names fall back to CurveLinear.
func ParseCurve(s string) Curve {
	c := Curve(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Curves {
		if c == known {
			return c
		}
	}
	return CurveLinear
}

// cubic is one Bézier segment from the previous point to End.
type cubic struct {
	C1, C2, End Vec
}

// trace appends pts to p using curve c. With move set the first point starts
// a new subpath; otherwise a line is drawn to it.
func trace(p *Path, pts []Vec, c Curve, move bool) {
	if len(pts) == 0 {
		return
	}
	if move {
		p.MoveTo(pts[0])
	} else {
		p.LineTo(pts[0])
	}

	switch c {
	case CurveMonotone:
		if len(pts) < 3 {
			for _, pt := range pts[1:] {
				p.LineTo(pt)
			}
			return
		}
		for _, seg := range monotone(pts) {
			p.CubicTo(seg.C1, seg.C2, seg.End)
		}
	case CurveStep:
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			mid := (a.X + b.X) / 2
			p.LineTo(Vec{mid, a.Y})
			p.LineTo(Vec{mid, b.Y})
			p.LineTo(b)
		}
	case CurveStepBefore:
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			p.LineTo(Vec{a.X, b.Y})
			p.LineTo(b)
		}
	case CurveStepAfter:
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			p.LineTo(Vec{b.X, a.Y})
			p.LineTo(b)
		}
	default:
		for _, pt := range pts[1:] {
			p.LineTo(pt)
		}
	}
}

// monotone returns the Bézier segments joining pts[i-1] to pts[i] for
// i = 1..n-1. Requires at least three points.
func monotone(pts []Vec) []cubic {
	t := monotoneTangents(pts)
	segs := make([]cubic, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx := (b.X - a.X) / 3
		segs = append(segs, cubic{
			C1:  Vec{a.X + dx, a.Y + dx*t[i-1]},
			C2:  Vec{b.X - dx, b.Y - dx*t[i]},
			End: b,
		})
	}
	return segs
}

func monotoneTangents(pts []Vec) []float64 {
	n := len(pts)
	t := make([]float64, n)
	for i := 1; i < n-1; i++ {
		h0 := pts[i].X - pts[i-1].X
		h1 := pts[i+1].X - pts[i].X
		s0 := secant(pts[i-1], pts[i])
		s1 := secant(pts[i], pts[i+1])
		var p float64
		if h0+h1 != 0 {
			p = (s0*h1 + s1*h0) / (h0 + h1)
		}
		t[i] = (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	}
	t[0] = endTangent(pts[0], pts[1], t[1])
	t[n-1] = endTangent(pts[n-2], pts[n-1], t[n-2])
	return t
}

// endTangent estimates the tangent at an open end of the curve from the
// secant of the last segment and the tangent at its other end.
func endTangent(a, b Vec, t float64) float64 {
	h := b.X - a.X
	if h == 0 {
		return t
	}
	return (3*(b.Y-a.Y)/h - t) / 2
}

func secant(a, b Vec) float64 {
	h := b.X - a.X
	if h == 0 {
		return 0
	}
	return (b.Y - a.Y) / h
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
