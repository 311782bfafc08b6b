// Package geom builds SVG path data for charts.
//
// All builders return the "d" attribute of an SVG path element as a string
// and are pure functions of their arguments: calling them twice with the same
// input yields identical output. Coordinates are printed with at most three
// decimals.
//
// # Angles
//
// Angles are in radians, measured clockwise from the positive x axis in
// screen coordinates (y grows downward). An angle of -π/2 points straight up,
// which is where pies and radar charts start by default.
//
// # Curves
//
// [LinePath], [AreaPath] and [StackedAreaPath] accept a [Curve]:
//
//   - [CurveLinear] joins points with straight segments.
//   - [CurveMonotone] joins points with cubic Bézier segments whose tangents
//     preserve monotonicity in y, so the curve never overshoots a data point.
//   - [CurveStep], [CurveStepBefore], [CurveStepAfter] draw staircases.
//
// The monotone tangents follow Steffen's method: the interior tangent at
// point i is (sign(s0)+sign(s1)) · min(|s0|, |s1|, |p|/2), where s0 and s1 are
// the secant slopes left and right of the point and p = (s0·h1 + s1·h0)/(h0+h1)
// is the slope of the parabola through the three points. End tangents use the
// one-sided estimate (3·s - t)/2. Each segment becomes a cubic with control
// points one third of the way along x.
package geom
