package chart

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies a chart type.
type Kind string

// Supported chart kinds.
const (
	KindBar     Kind = "bar"
	KindLine    Kind = "line"
	KindArea    Kind = "area"
	KindScatter Kind = "scatter"
	KindPie     Kind = "pie"
	KindDonut   Kind = "donut"
	KindRadar   Kind = "radar"
)

// Kinds lists every supported chart kind in display order.
var Kinds = []Kind{KindBar, KindLine, KindArea, KindScatter, KindPie, KindDonut, KindRadar}

// Valid reports whether k is a known chart kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Circular reports whether the kind is drawn around a center (pie, donut, radar)
// rather than on x/y axes.
func (k Kind) Circular() bool {
	return k == KindPie || k == KindDonut || k == KindRadar
}

// Point is a single raw data point as supplied by the caller.
// The engine only reads points; it never modifies them.
type Point struct {
	X     float64 `json:"x,omitempty"`     // Numeric x (scatter, numeric line axes)
	Key   string  `json:"key,omitempty"`   // Categorical x (band and point axes)
	Y     float64 `json:"y"`               // Value; slice size for pie, band height when stacked
	Label string  `json:"label,omitempty"` // Display label for legends and tooltips
	Color string  `json:"color,omitempty"` // Optional color override
	Size  float64 `json:"size,omitempty"`  // Marker size (scatter)
}

// Name returns the display name of the point at index i.
// It prefers Label, then Key, then a 1-based ordinal.
func (p Point) Name(i int) string {
	switch {
	case p.Label != "":
		return p.Label
	case p.Key != "":
		return p.Key
	default:
		return "#" + strconv.Itoa(i+1)
	}
}

// Series is a named list of points.
type Series struct {
	Name   string  `json:"name"`
	Color  string  `json:"color,omitempty"`
	Points []Point `json:"points"`
}

// Values returns the Y value of every point in the series.
func (s Series) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Y
	}
	return out
}

// Points extracts the point slices of each series, in order.
func Points(series []Series) [][]Point {
	out := make([][]Point, len(series))
	for i, s := range series {
		out[i] = s.Points
	}
	return out
}

// FormatNumber renders v for display: shortest representation after rounding
// to six decimals, with negative zero printed as "0".
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
