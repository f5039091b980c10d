package valuerange

// Fraction converts a pointer offset along a track of the given width into a
// normalized position in [0, 1]. A track that has not been laid out yet
// (width <= 0) yields 0.
func Fraction(x, width float64) float64 {
	if !(width > 0) {
		return 0
	}
	return clamp01(x / width)
}

// ValueAt maps a fraction to a value in r. The fraction is clamped first.
func ValueAt(fraction float64, r Range) float64 {
	return r.Start + clamp01(fraction)*r.Span()
}

// FractionOf is the inverse of ValueAt: where value sits along r, clamped to
// [0, 1]. Zero-width ranges yield 0.
func FractionOf(value float64, r Range) float64 {
	if !r.Valid() {
		return 0
	}
	return clamp01((value - r.Start) / r.Span())
}

// ValueFromX maps a pixel offset on a track of the given width to a value.
func ValueFromX(x, width float64, r Range) float64 {
	return ValueAt(Fraction(x, width), r)
}

// XFromValue maps a value to its pixel offset on a track of the given width.
func XFromValue(value, width float64, r Range) float64 {
	if !(width > 0) {
		return 0
	}
	return FractionOf(value, r) * width
}
