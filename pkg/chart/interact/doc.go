// Package interact resolves hover and selection state for chart elements.
//
// Every chart has the same interaction contract. An element can be hovered
// and selected. Both states can be owned by the chart itself (uncontrolled)
// or by its owner (controlled). A [Resolver] reconciles the two, reports
// changes through callbacks and derives the opacity each element should be
// drawn with.
//
// # Controlled and uncontrolled state
//
// A [Prop] is either uncontrolled (the zero value) or controlled with a
// value, possibly [None]. For a controlled prop the resolver reports the
// owner's value and never updates its local copy; it still invokes the
// change callback so the owner can decide. For an uncontrolled prop the
// resolver stores the new value and invokes the callback. This rule lives
// only in [Prop.Resolve].
//
// # Active element
//
// The active element is the selected one if any. Otherwise it is the hovered
// one, but only when hovering is enabled. With an active element, matching
// elements are drawn at the active opacity (default 1) and all others at
// the inactive opacity (default 0.3). With no active element there is no
// opacity override.
//
// # Keys
//
// Flat charts (bar, pie, donut, scatter of one series) key elements by
// index. Multi-series charts (line, area, radar) key them by [Ref], a
// series index plus a point index.
//
// A Resolver is owned by a single chart instance and is not safe for
// concurrent use.
package interact
