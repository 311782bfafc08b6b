package ticks

import (
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/chartkit/pkg/chart/scale"
)

// DefaultCount is the requested tick count when Options.Count is zero.
const DefaultCount = 5

// maxTicks bounds the number of generated linear ticks.
const maxTicks = 1000

// snap absorbs floating point error in min/step and max/step before
// rounding to whole steps.
const snap = 1e-9

// Tick is one labelled position on an axis.
type Tick[T scale.Value] struct {
	Value    T       `json:"value"`
	Position float64 `json:"position"`
	Label    string  `json:"label"`
}

// Options controls tick generation.
type Options[T scale.Value] struct {
	// Count is the approximate number of ticks for linear scales.
	// Zero means DefaultCount.
	Count int
	// Values, when non-nil, are used verbatim instead of generated ticks.
	Values []T
	// Format renders a tick label. Nil uses the default formatting.
	Format func(T) string
}

// NiceStep rounds a raw tick spacing to a value of the form {1, 2, 5} × 10^k.
// The leading digit is snapped to the largest of 1, 2, 5 not exceeding it.
// Non-positive and non-finite input returns 0.
func NiceStep(raw float64) float64 {
	if !(raw > 0) || math.IsInf(raw, 0) {
		return 0
	}
	exp := int(math.Floor(math.Log10(raw)))
	mag := math.Pow10(exp)
	f := raw / mag
	// Log10 can be off by one ulp near exact powers of ten.
	if f >= 10 {
		mag *= 10
		f /= 10
	} else if f < 1 {
		mag /= 10
		f *= 10
	}

	var nice float64
	switch {
	case f >= 5:
		nice = 5
	case f >= 2:
		nice = 2
	default:
		nice = 1
	}
	return nice * mag
}

// Linear returns nice tick values covering [min(d0,d1), max(d0,d1)] and the
// step used. A degenerate domain returns the single value d0 and a zero step.
func Linear(d0, d1 float64, count int) ([]float64, float64) {
	if count <= 0 {
		count = DefaultCount
	}
	lo, hi := math.Min(d0, d1), math.Max(d0, d1)
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, 0
	}
	if lo == hi {
		return []float64{d0}, 0
	}

	step := NiceStep((hi - lo) / float64(count))
	if step == 0 {
		return []float64{d0}, 0
	}
	first := math.Ceil(lo/step - snap)
	last := math.Floor(hi/step + snap)
	if last-first+1 > maxTicks {
		last = first + maxTicks - 1
	}

	digits := Decimals(step)
	values := make([]float64, 0, max(0, int(last-first)+1))
	for i := first; i <= last; i++ {
		values = append(values, roundTo(i*step, digits))
	}
	return values, step
}

// AxisTicks generates the ticks for s.
//
// Caller supplied Options.Values are used verbatim. Otherwise linear scales get
// nice ticks and categorical scales get one tick per domain value. Band ticks
// are offset by half a bandwidth so they sit in the middle of each band.
func AxisTicks[T scale.Value](s scale.Scale[T], opts Options[T]) []Tick[T] {
	offset := 0.0
	if s.Kind() == scale.KindBand {
		offset = s.Range().Dir() * s.Bandwidth() / 2
	}

	var (
		values []T
		step   float64
	)
	switch {
	case opts.Values != nil:
		values = opts.Values
	case s.Kind() == scale.KindLinear:
		domain := s.Domain()
		if len(domain) < 2 {
			return nil
		}
		var nums []float64
		nums, step = Linear(asFloat(domain[0]), asFloat(domain[1]), opts.Count)
		values = make([]T, len(nums))
		for i, n := range nums {
			values[i] = fromFloat[T](n)
		}
	default:
		values = s.Domain()
	}

	format := opts.Format
	if format == nil {
		format = func(v T) string { return label(v, step) }
	}

	out := make([]Tick[T], len(values))
	for i, v := range values {
		out[i] = Tick[T]{
			Value:    v,
			Position: s.Map(v) + offset,
			Label:    format(v),
		}
	}
	return out
}

// FormatNumber renders v with the decimal precision implied by step.
// A zero step uses the shortest representation.
func FormatNumber(v, step float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	if step > 0 {
		v = roundTo(v, Decimals(step))
	}
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Decimals returns the number of fractional digits needed to print multiples
// of step exactly. Steps of 1 or more need none.
func Decimals(step float64) int {
	if !(step > 0) || math.IsInf(step, 0) {
		return 0
	}
	// Round the exponent first so 0.1 (0.1000000000000000055...) is not
	// treated as needing 2 digits.
	d := -int(math.Floor(math.Log10(step) + snap))
	// Steps like 0.25 or 2.5 carry one more significant digit.
	if frac := step / math.Pow10(-d); math.Abs(frac-math.Round(frac)) > snap {
		d++
	}
	return max(0, min(15, d))
}

func roundTo(v float64, digits int) float64 {
	p := math.Pow10(digits)
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}

func label[T scale.Value](v T, step float64) string {
	switch x := any(v).(type) {
	case float64:
		return FormatNumber(x, step)
	case string:
		return x
	}
	return fmt.Sprint(v)
}

func asFloat[T scale.Value](v T) float64 {
	f, _ := any(v).(float64)
	return f
}

func fromFloat[T scale.Value](f float64) T {
	var zero T
	if v, ok := any(f).(T); ok {
		return v
	}
	return zero
}
