package scale

// Linear maps a continuous numeric domain onto a range.
type Linear struct {
	domain [2]float64
	rng    Range
}

var _ Scale[float64] = Linear{}

// NewLinear creates a linear scale from domain onto r.
func NewLinear(domain [2]float64, r Range) Linear {
	return Linear{domain: domain, rng: r}
}

// Kind returns KindLinear.
func (s Linear) Kind() Kind { return KindLinear }

// Map interpolates v from the domain onto the range. Values outside the
// domain extrapolate. A degenerate domain maps everything to the range midpoint.
func (s Linear) Map(v float64) float64 {
	d0, d1 := s.domain[0], s.domain[1]
	r0, r1 := s.rng[0], s.rng[1]
	if d0 == d1 {
		return (r0 + r1) / 2
	}
	t := (v - d0) / (d1 - d0)
	// Weighted form so Map(d0) == r0 and Map(d1) == r1 exactly.
	return r0*(1-t) + r1*t
}

// Invert maps a pixel coordinate back into the domain.
// It returns d0 when either the domain or the range is degenerate.
func (s Linear) Invert(px float64) float64 {
	d0, d1 := s.domain[0], s.domain[1]
	r0, r1 := s.rng[0], s.rng[1]
	if d0 == d1 || r0 == r1 {
		return d0
	}
	t := (px - r0) / (r1 - r0)
	return d0*(1-t) + d1*t
}

// Domain returns the two domain endpoints.
func (s Linear) Domain() []float64 { return []float64{s.domain[0], s.domain[1]} }

// Bounds returns the domain as a fixed-size pair.
func (s Linear) Bounds() [2]float64 { return s.domain }

// Range returns the pixel range.
func (s Linear) Range() Range { return s.rng }

// Bandwidth is always zero for linear scales.
func (s Linear) Bandwidth() float64 { return 0 }

// Step is always zero for linear scales.
func (s Linear) Step() float64 { return 0 }
