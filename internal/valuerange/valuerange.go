// Package valuerange maps pointer positions along a slider track to values in
// a numeric range and snaps values to evenly spaced ticks. It has no UI
// dependencies so the arithmetic can be tested on its own.
package valuerange

import "math"

// Range is an inclusive interval [Start, End]. Start <= End is assumed; the
// helpers degrade gracefully when it does not hold.
type Range struct {
	Start float64
	End   float64
}

// Default returns the [0, 100] range used when a slider is not configured.
func Default() Range { return Range{Start: 0, End: 100} }

// New builds a range from two bounds.
func New(start, end float64) Range { return Range{Start: start, End: end} }

// Span returns End - Start.
func (r Range) Span() float64 { return r.End - r.Start }

// Valid reports whether the range has a positive, finite width.
func (r Range) Valid() bool {
	s := r.Span()
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}

// Clamp constrains v to [Start, End]. NaN maps to Start.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < r.Start {
		return r.Start
	}
	if v > r.End {
		return r.End
	}
	return v
}

// Contains reports whether v lies within [Start, End].
func (r Range) Contains(v float64) bool { return v >= r.Start && v <= r.End }

// roundHalfUp rounds x to the nearest integer, sending ties towards +Inf.
// Comparing the fraction avoids x+0.5 rounding up to the next integer.
func roundHalfUp(x float64) float64 {
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return f
}

// clamp01 constrains f to [0, 1]; NaN maps to 0.
func clamp01(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
