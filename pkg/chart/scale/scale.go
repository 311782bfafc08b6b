package scale

import "math"

// Kind identifies the scale variant.
type Kind string

// Scale kinds.
const (
	KindLinear Kind = "linear"
	KindBand   Kind = "band"
	KindPoint  Kind = "point"
)

// Value is the set of domain value types a scale can map.
type Value interface {
	float64 | string
}

// Scale is the common read-only view of a scale.
//
// Linear scales map float64 values; band and point scales map string keys.
type Scale[T Value] interface {
	Kind() Kind
	// Map converts a domain value to a pixel coordinate.
	Map(v T) float64
	// Domain returns a copy of the domain values.
	Domain() []T
	Range() Range
	// Bandwidth is the width of one band; zero for linear and point scales.
	Bandwidth() float64
	// Step is the distance between adjacent categories; zero for linear scales.
	Step() float64
}

// Range is a pixel interval [r0, r1]. It may be inverted (r0 > r1).
type Range [2]float64

// Len returns the absolute length of the range.
func (r Range) Len() float64 { return math.Abs(r[1] - r[0]) }

// Dir returns -1 for inverted ranges and 1 otherwise.
func (r Range) Dir() float64 {
	if r[1] < r[0] {
		return -1
	}
	return 1
}

// Min returns the smaller endpoint.
func (r Range) Min() float64 { return math.Min(r[0], r[1]) }

// Max returns the larger endpoint.
func (r Range) Max() float64 { return math.Max(r[0], r[1]) }

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 { return (r[0] + r[1]) / 2 }

// Extent returns [min, max] over the finite values. NaN and infinite values
// are skipped. With no finite values the result is [0, 0]. When includeZero is
// true the extent is widened so that it contains 0.
func Extent(values []float64, includeZero bool) [2]float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return [2]float64{0, 0}
	}
	if includeZero {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	return [2]float64{lo, hi}
}
