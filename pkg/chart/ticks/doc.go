// Package ticks generates axis ticks for scales.
//
// For linear scales the tick spacing is a "nice" number of the form
// {1, 2, 5} × 10^k chosen by [NiceStep] from the raw spacing range/count.
// The leading digit of the raw step is snapped down to the largest of 1, 2
// or 5 that does not exceed it, so a domain [0, 97] with five ticks
// (raw step 19.4) produces a step of 10 and ticks 0, 10, ..., 90.
//
// For band and point scales there is one tick per category. Band ticks sit
// in the middle of their band.
//
// Ticks are returned in ascending domain order for linear scales and in
// domain order for categorical scales. Tick values are rounded to the
// precision of the step, so floating point noise like 0.30000000000000004
// never reaches a label.
package ticks
