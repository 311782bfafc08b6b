package legend

import (
	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/chart/interact"
)

// Tooltip returns the tooltip text for the hovered point, or "" when nothing
// is hovered or the index is out of range. The default format is
// "{label}: {value}".
func Tooltip(points []chart.Point, hovered interact.Optional[int], format func(p chart.Point, i int) string) string {
	i, ok := hovered.Get()
	if !ok || i < 0 || i >= len(points) {
		return ""
	}
	if format == nil {
		format = defaultTooltip
	}
	return format(points[i], i)
}

// MultiTooltip is Tooltip for multi-series charts. The default format is
// "{series}, {label}: {value}".
func MultiTooltip(series []chart.Series, hovered interact.Optional[interact.Ref], format func(s chart.Series, p chart.Point, ref interact.Ref) string) string {
	ref, ok := hovered.Get()
	if !ok || ref.Series < 0 || ref.Series >= len(series) {
		return ""
	}
	s := series[ref.Series]
	if ref.Point < 0 || ref.Point >= len(s.Points) {
		return ""
	}
	if format == nil {
		format = defaultMultiTooltip
	}
	return format(s, s.Points[ref.Point], ref)
}

func defaultTooltip(p chart.Point, i int) string {
	return p.Name(i) + ": " + chart.FormatNumber(p.Y)
}

func defaultMultiTooltip(s chart.Series, p chart.Point, ref interact.Ref) string {
	name := s.Name
	if name == "" {
		name = defaultLabel(s, ref.Series)
	}
	return name + ", " + defaultTooltip(p, ref.Point)
}
