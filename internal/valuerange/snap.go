package valuerange

import "math"

// StepSize returns the distance between neighbouring ticks and whether
// snapping is possible at all. Fewer than two ticks, a zero-width or inverted
// range, or a non-finite step all disable snapping.
func StepSize(r Range, tickCount int) (float64, bool) {
	if tickCount < 2 {
		return 0, false
	}
	step := r.Span() / float64(tickCount-1)
	if !(step > 0) || math.IsInf(step, 0) {
		return 0, false
	}
	return step, true
}

// Snap rounds value to the nearest of tickCount evenly spaced ticks across r
// and clamps the result into r. Ties round up. When snapping is disabled (see
// StepSize) or value is NaN, value is returned unchanged.
func Snap(value float64, r Range, tickCount int) float64 {
	step, ok := StepSize(r, tickCount)
	if !ok || math.IsNaN(value) {
		return value
	}
	last := float64(tickCount - 1)
	n := roundHalfUp((value - r.Start) / step)
	switch {
	case n <= 0:
		return r.Start
	case n >= last:
		return r.End
	}
	return r.Clamp(r.Start + n*step)
}

// Ticks lists the tick values for r, from Start to End inclusive. It returns
// nil when snapping is disabled.
func Ticks(r Range, tickCount int) []float64 {
	step, ok := StepSize(r, tickCount)
	if !ok {
		return nil
	}
	out := make([]float64, tickCount)
	for i := range out {
		out[i] = r.Start + float64(i)*step
	}
	// avoid accumulated error on the last tick
	out[tickCount-1] = r.End
	return out
}

// TickIndex returns the index of the tick value snaps to, or -1 when snapping
// is disabled.
func TickIndex(value float64, r Range, tickCount int) int {
	step, ok := StepSize(r, tickCount)
	if !ok || math.IsNaN(value) {
		return -1
	}
	n := int(roundHalfUp((r.Clamp(value) - r.Start) / step))
	if n < 0 {
		return 0
	}
	if n > tickCount-1 {
		return tickCount - 1
	}
	return n
}

// Normalize is the value pipeline used while dragging: clamp into r, then
// snap when enabled.
func Normalize(value float64, r Range, snap bool, tickCount int) float64 {
	v := value
	if r.Valid() {
		v = r.Clamp(v)
	}
	if snap {
		v = Snap(v, r, tickCount)
	}
	return v
}
