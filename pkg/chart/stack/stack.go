// Package stack computes cumulative bands for stacked bar and area charts.
//
// Series are aligned by index: point k of every series belongs to category k.
// For series i at category k,
//
//	Y0 = baseline + sum of the values of series 0..i-1 at k
//	Y1 = Y0 + value
//
// Stacking is purely additive. Negative values are not stacked separately
// from positive ones, so a negative value moves the running total down and
// the next series starts from there.
package stack

import (
	"math"

	"github.com/matzehuels/chartkit/pkg/chart"
)

// Point is a stacked data point: the original point plus its band.
type Point struct {
	Original chart.Point `json:"original"`
	Y0       float64     `json:"y0"`
	Y1       float64     `json:"y1"`
}

// Value returns the height of the band.
func (p Point) Value() float64 { return p.Y1 - p.Y0 }

// Option configures Stack.
type Option func(*options)

type options struct {
	baseline float64
}

// WithBaseline sets the Y0 of the first series. The default is 0.
func WithBaseline(b float64) Option {
	return func(o *options) { o.baseline = b }
}

// Stack computes the cumulative bands of series. The output has the same
// shape as the input. Shorter series contribute nothing at categories they
// lack. Non-finite values stack as zero.
func Stack(series [][]chart.Point, opts ...Option) [][]Point {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	out := make([][]Point, len(series))
	var totals []float64
	for i, points := range series {
		out[i] = make([]Point, len(points))
		for k, p := range points {
			for len(totals) <= k {
				totals = append(totals, o.baseline)
			}
			v := p.Y
			if math.IsNaN(v) || math.IsInf(v, 0) {
				v = 0
			}
			y0 := totals[k]
			y1 := y0 + v
			out[i][k] = Point{Original: p, Y0: y0, Y1: y1}
			totals[k] = y1
		}
	}
	return out
}

// Extent returns [min, max] over every Y0 and Y1, suitable as the domain of
// the value scale. Empty input yields [0, 0].
func Extent(stacked [][]Point) [2]float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, points := range stacked {
		for _, p := range points {
			lo = math.Min(lo, math.Min(p.Y0, p.Y1))
			hi = math.Max(hi, math.Max(p.Y0, p.Y1))
		}
	}
	if lo > hi {
		return [2]float64{0, 0}
	}
	return [2]float64{lo, hi}
}

// Totals returns the top of the stack (the last Y1) at each category.
func Totals(stacked [][]Point) []float64 {
	var totals []float64
	for _, points := range stacked {
		for k, p := range points {
			for len(totals) <= k {
				totals = append(totals, p.Y0)
			}
			totals[k] = p.Y1
		}
	}
	return totals
}
