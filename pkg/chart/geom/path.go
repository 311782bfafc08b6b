package geom

import (
	"math"
	"strconv"
	"strings"
)

// Vec is a point in screen coordinates.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Polar converts a polar coordinate around (cx, cy) to cartesian screen
// coordinates.
func Polar(cx, cy, r, angle float64) Vec {
	return Vec{
		X: cx + r*math.Cos(angle),
		Y: cy + r*math.Sin(angle),
	}
}

// Path accumulates SVG path commands. The zero value is an empty path.
type Path struct {
	b   strings.Builder
	cur Vec
}

func (p *Path) cmd(c byte, pts ...Vec) {
	if p.b.Len() > 0 {
		p.b.WriteByte(' ')
	}
	p.b.WriteByte(c)
	for i, pt := range pts {
		if i > 0 {
			p.b.WriteByte(' ')
		}
		p.pair(pt)
	}
	if len(pts) > 0 {
		p.cur = pts[len(pts)-1]
	}
}

func (p *Path) pair(v Vec) {
	p.b.WriteString(Num(v.X))
	p.b.WriteByte(',')
	p.b.WriteString(Num(v.Y))
}

// MoveTo starts a new subpath at v.
func (p *Path) MoveTo(v Vec) { p.cmd('M', v) }

// LineTo draws a straight line to v.
func (p *Path) LineTo(v Vec) { p.cmd('L', v) }

// CubicTo draws a cubic Bézier curve to end.
func (p *Path) CubicTo(c1, c2, end Vec) { p.cmd('C', c1, c2, end) }

// QuadTo draws a quadratic Bézier curve to end.
func (p *Path) QuadTo(c, end Vec) { p.cmd('Q', c, end) }

// ArcTo draws an elliptical arc with radii (rx, ry) to end.
func (p *Path) ArcTo(rx, ry float64, large, sweep bool, end Vec) {
	if p.b.Len() > 0 {
		p.b.WriteByte(' ')
	}
	p.b.WriteByte('A')
	p.b.WriteString(Num(rx))
	p.b.WriteByte(',')
	p.b.WriteString(Num(ry))
	p.b.WriteString(" 0 ")
	p.b.WriteString(flag(large))
	p.b.WriteByte(',')
	p.b.WriteString(flag(sweep))
	p.b.WriteByte(' ')
	p.pair(end)
	p.cur = end
}

// Close closes the current subpath.
func (p *Path) Close() { p.cmd('Z') }

// Current returns the last point written.
func (p *Path) Current() Vec { return p.cur }

// Empty reports whether no command has been written.
func (p *Path) Empty() bool { return p.b.Len() == 0 }

// String returns the accumulated path data.
func (p *Path) String() string { return p.b.String() }

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Num formats a coordinate: rounded to three decimals, trailing zeros
// trimmed, negative zero printed as 0. Non-finite values print as 0.
func Num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
