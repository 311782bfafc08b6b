package scale

import "math"

// Default padding for categorical scales.
const (
	DefaultPaddingInner = 0.1
	DefaultPaddingOuter = 0.1
	DefaultAlign        = 0.5
	DefaultPointPadding = 0.5
)

// Option configures a band or point scale.
type Option func(*options)

type options struct {
	paddingInner float64
	paddingOuter float64
	align        float64
}

// WithPaddingInner sets the fraction of each step left empty between bands.
// Point scales ignore it.
func WithPaddingInner(p float64) Option {
	return func(o *options) { o.paddingInner = clamp01(p) }
}

// WithPaddingOuter sets the padding before the first and after the last
// category, in multiples of the step.
func WithPaddingOuter(p float64) Option {
	return func(o *options) { o.paddingOuter = clamp01(p) }
}

// WithPadding sets both inner and outer padding.
func WithPadding(p float64) Option {
	return func(o *options) {
		o.paddingInner = clamp01(p)
		o.paddingOuter = clamp01(p)
	}
}

// WithAlign sets how leftover space is distributed: 0 pushes the bands to the
// start of the range, 1 to the end, 0.5 centers them.
func WithAlign(a float64) Option {
	return func(o *options) { o.align = clamp01(a) }
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// categorical holds what band and point scales share: an ordered domain with
// first-wins key lookup and the computed layout.
type categorical struct {
	domain    []string
	index     map[string]int
	rng       Range
	step      float64
	offset    float64
	bandwidth float64
}

func newCategorical(domain []string, r Range) categorical {
	c := categorical{
		domain: append([]string(nil), domain...),
		index:  make(map[string]int, len(domain)),
		rng:    r,
	}
	for i, key := range domain {
		if _, ok := c.index[key]; !ok {
			c.index[key] = i
		}
	}
	return c
}

func (c categorical) position(key string) float64 {
	i := c.index[key] // unknown keys map as index 0
	return c.rng[0] + c.rng.Dir()*(c.offset+c.step*float64(i))
}

func (c categorical) Index(key string) (int, bool) {
	i, ok := c.index[key]
	return i, ok
}

func (c categorical) indexAt(px float64) int {
	n := len(c.domain)
	if n == 0 {
		return -1
	}
	if c.step == 0 {
		return 0
	}
	rel := (px-c.rng[0])*c.rng.Dir() - c.offset - c.bandwidth/2
	i := int(math.Round(rel / c.step))
	return max(0, min(n-1, i))
}

// Band maps categorical keys onto equal-width bands.
type Band struct {
	categorical
	paddingInner float64
	paddingOuter float64
	align        float64
}

var _ Scale[string] = Band{}

// NewBand creates a band scale over domain. Defaults: inner and outer
// padding 0.1, align 0.5.
func NewBand(domain []string, r Range, opts ...Option) Band {
	o := options{
		paddingInner: DefaultPaddingInner,
		paddingOuter: DefaultPaddingOuter,
		align:        DefaultAlign,
	}
	for _, opt := range opts {
		opt(&o)
	}

	b := Band{
		categorical:  newCategorical(domain, r),
		paddingInner: o.paddingInner,
		paddingOuter: o.paddingOuter,
		align:        o.align,
	}
	n := float64(len(domain))
	length := r.Len()
	b.step = length / math.Max(1, n-o.paddingInner+2*o.paddingOuter)
	b.bandwidth = b.step * (1 - o.paddingInner)
	b.offset = (length - b.step*(n-o.paddingInner)) * o.align
	return b
}

// Kind returns KindBand.
func (b Band) Kind() Kind { return KindBand }

// Map returns the start of the band for key, measured along the range
// direction. Unknown keys map as the first category.
func (b Band) Map(key string) float64 { return b.position(key) }

// Center returns the pixel coordinate of the middle of the band for key.
func (b Band) Center(key string) float64 {
	return b.position(key) + b.rng.Dir()*b.bandwidth/2
}

// IndexAt returns the index of the band nearest to px, or -1 for an empty domain.
func (b Band) IndexAt(px float64) int { return b.indexAt(px) }

// Domain returns a copy of the categories.
func (b Band) Domain() []string { return append([]string(nil), b.domain...) }

// Range returns the pixel range.
func (b Band) Range() Range { return b.rng }

// Bandwidth returns the width of one band.
func (b Band) Bandwidth() float64 { return b.bandwidth }

// Step returns the distance between the starts of adjacent bands.
func (b Band) Step() float64 { return b.step }

// Point maps categorical keys onto evenly spaced points.
type Point struct {
	categorical
	padding float64
}

var _ Scale[string] = Point{}

// NewPoint creates a point scale over domain. The default outer padding is
// 0.5 step. Only WithPadding and WithPaddingOuter affect point scales.
func NewPoint(domain []string, r Range, opts ...Option) Point {
	o := options{paddingOuter: DefaultPointPadding}
	for _, opt := range opts {
		opt(&o)
	}

	p := Point{categorical: newCategorical(domain, r), padding: o.paddingOuter}
	n := len(domain)
	length := r.Len()
	if n <= 1 {
		p.step = length
		p.offset = length / 2
		return p
	}
	p.step = length / (float64(n-1) + 2*o.paddingOuter)
	p.offset = p.step * o.paddingOuter
	return p
}

// Kind returns KindPoint.
func (p Point) Kind() Kind { return KindPoint }

// Map returns the pixel coordinate for key. Unknown keys map as the first
// category.
func (p Point) Map(key string) float64 { return p.position(key) }

// IndexAt returns the index of the point nearest to px, or -1 for an empty domain.
func (p Point) IndexAt(px float64) int { return p.indexAt(px) }

// Domain returns a copy of the categories.
func (p Point) Domain() []string { return append([]string(nil), p.domain...) }

// Range returns the pixel range.
func (p Point) Range() Range { return p.rng }

// Bandwidth is always zero for point scales.
func (p Point) Bandwidth() float64 { return 0 }

// Step returns the distance between adjacent points.
func (p Point) Step() float64 { return p.step }
