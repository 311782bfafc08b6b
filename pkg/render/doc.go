// Package render turns a chart definition into a [Scene]: the fully
// computed, framework-free description of what to draw.
//
// # Overview
//
// A scene holds pixel geometry (SVG path data, rectangles, circles), axis
// ticks, legend items, tooltip text and the resolved interaction state.
// Building a scene is the only place where the engine packages are combined:
//
//   - scales from [scale] map data to pixels
//   - ticks from [ticks] label the axes
//   - [stack] computes stacked bands
//   - [geom] builds paths and pie arcs
//   - [interact] resolves hover, selection and opacity
//   - [legend] builds legend entries and tooltip text
//
// Scenes are written to SVG or JSON by the [sink] subpackage.
//
// # Interaction
//
// A [Renderer] owns one interaction resolver and can be driven like a chart
// component: HoverEnter, HoverLeave, Click and KeyDown update the local
// state and the next Scene reflects it. Hover and selection passed as
// controlled props ([WithHover], [WithSelect]) override the local state.
//
//	r := render.New(c, render.WithSelect(interact.Controlled(interact.Some(interact.Ref{Point: 2}))))
//	scene := r.Scene()
//	svg := sink.SVG(scene)
//
// Multi-series charts (bar, line, area, scatter, radar) are keyed by
// [interact.Ref]; pie and donut charts by slice index, where the ref's
// Point is the slice.
//
// [scale]: github.com/matzehuels/chartkit/pkg/chart/scale
// [ticks]: github.com/matzehuels/chartkit/pkg/chart/ticks
// [stack]: github.com/matzehuels/chartkit/pkg/chart/stack
// [geom]: github.com/matzehuels/chartkit/pkg/chart/geom
// [interact]: github.com/matzehuels/chartkit/pkg/chart/interact
// [legend]: github.com/matzehuels/chartkit/pkg/chart/legend
// [sink]: github.com/matzehuels/chartkit/pkg/render/sink
package render
