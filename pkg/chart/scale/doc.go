// Package scale maps data domains to pixel ranges.
//
// Three scale kinds are provided:
//
//   - [Linear] maps a continuous numeric domain onto a range by straight
//     interpolation. Value axes, scatter x/y and radar radii use it.
//   - [Band] maps categorical keys onto equal-width bands with inner and outer
//     padding. Bar charts use it.
//   - [Point] maps categorical keys onto evenly spaced points with outer
//     padding only. Line and area charts over categories use it.
//
// All three satisfy [Scale], so tick generation and the renderers can treat
// them uniformly. A [Range] may be inverted (r0 > r1), which is how screen y
// axes grow upward.
//
// Scales are plain values. Construct a fresh one per render; they hold no
// mutable state and are safe to share between goroutines.
//
// # Degradation
//
// Nothing here returns an error. A degenerate linear domain (d0 == d1) maps
// every input to the range midpoint, unknown categorical keys map as the
// first category, and an empty categorical domain still yields finite
// positions.
package scale
