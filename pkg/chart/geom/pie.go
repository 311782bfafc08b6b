package geom

import "math"

// Arc is the angular extent assigned to one datum of a pie.
//
// StartAngle and EndAngle include the padding; [Arc.Span] returns the
// extent to draw.
type Arc[T any] struct {
	Index      int
	Data       T
	Value      float64
	StartAngle float64
	EndAngle   float64
	PadAngle   float64
}

// Span returns the drawn extent of the arc: half the pad angle is removed
// from each side. Arcs narrower than their padding collapse to their middle.
func (a Arc[T]) Span() (start, end float64) {
	half := a.PadAngle / 2
	if a.EndAngle < a.StartAngle {
		half = -half
	}
	start, end = a.StartAngle+half, a.EndAngle-half
	if (a.EndAngle-a.StartAngle)*(end-start) < 0 {
		mid := (a.StartAngle + a.EndAngle) / 2
		return mid, mid
	}
	return start, end
}

// Centroid returns the point halfway between the radii and the span angles,
// where slice labels go.
func (a Arc[T]) Centroid(cx, cy, inner, outer float64) Vec {
	start, end := a.Span()
	return Polar(cx, cy, (inner+outer)/2, (start+end)/2)
}

// PieOptions controls the angular layout of a pie. When StartAngle equals
// EndAngle (including the zero value) the pie covers a full turn starting
// at -π/2.
type PieOptions struct {
	StartAngle float64
	EndAngle   float64
	PadAngle   float64
}

// DefaultPieOptions returns a full turn clockwise from twelve o'clock
// without padding.
func DefaultPieOptions() PieOptions {
	return PieOptions{StartAngle: -math.Pi / 2, EndAngle: 3 * math.Pi / 2}
}

// Pie lays data out as consecutive arcs in input order. Each arc's sweep is
// proportional to value(d); negative and non-finite values count as zero.
// The arcs partition [StartAngle, EndAngle] exactly. When the total is zero
// every arc is zero-width at the start angle, padding included.
func Pie[T any](data []T, value func(T) float64, opts PieOptions) []Arc[T] {
	if len(data) == 0 {
		return nil
	}
	if opts.StartAngle == opts.EndAngle {
		def := DefaultPieOptions()
		opts.StartAngle, opts.EndAngle = def.StartAngle, def.EndAngle
	}

	n := float64(len(data))
	values := make([]float64, len(data))
	var total float64
	for i, d := range data {
		v := value(d)
		if !(v > 0) || math.IsInf(v, 0) {
			v = 0
		}
		values[i] = v
		total += v
	}

	span := opts.EndAngle - opts.StartAngle
	dir := 1.0
	if span < 0 {
		dir = -1
	}
	pad := math.Min(math.Abs(opts.PadAngle), math.Abs(span)/n)
	var k float64
	if total > 0 {
		k = (span - dir*n*pad) / total
	}

	arcs := make([]Arc[T], len(data))
	a := opts.StartAngle
	for i, d := range data {
		next := a
		switch {
		case total == 0:
		case i == len(data)-1:
			next = opts.EndAngle
		default:
			next = a + values[i]*k + dir*pad
		}
		arcs[i] = Arc[T]{
			Index:      i,
			Data:       d,
			Value:      values[i],
			StartAngle: a,
			EndAngle:   next,
			PadAngle:   pad,
		}
		a = next
	}
	return arcs
}
