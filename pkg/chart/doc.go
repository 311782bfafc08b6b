// Package chart holds the data model shared by the chartkit primitive engine.
//
// # Overview
//
// The engine turns raw series data into everything a chart component needs to
// draw itself: scales, axis ticks, SVG path strings, stacked bands, the
// resolved hover/selection state and legend/tooltip content. It is organized
// leaf-first:
//
//  1. [scale] - map a data domain to a pixel range (linear, band, point)
//  2. [ticks] - human-friendly tick positions and labels for a scale
//  3. [geom] - polar conversion, line/area/arc/radar path strings
//  4. [stack] - cumulative (y0, y1) bands for parallel series
//  5. [interact] - controlled/uncontrolled hover and selection resolver
//  6. [legend] - legend entries, palettes and tooltip text
//
// Every function in these packages is a pure, synchronous computation over
// its arguments. Nothing here touches a DOM, a terminal or a file; the
// renderers in [render] and the CLI are thin adapters on top.
//
// # Data Flow
//
//	[]chart.Series
//	      ↓
//	  stack.Stack (optional)
//	      ↓
//	  scale.NewBand / NewPoint / NewLinear
//	      ↓
//	  ticks.AxisTicks + geom.* paths
//	      ↓
//	  interact.Resolver → opacity per element
//	      ↓
//	  legend.Items + legend.Tooltip
//
// # Degradation
//
// The engine never returns errors. Degenerate input (empty domains, zero
// ranges, zero totals, unknown keys) produces an empty or midpoint result
// rather than NaN or a panic.
//
// [scale]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart/scale
// [ticks]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart/ticks
// [geom]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart/geom
// [stack]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart/stack
// [interact]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart/interact
// [legend]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart/legend
// [render]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/render
package chart
