package valuerange

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFraction(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		width float64
		want  float64
	}{
		{name: "start", x: 0, width: 200, want: 0},
		{name: "middle", x: 100, width: 200, want: 0.5},
		{name: "end", x: 200, width: 200, want: 1},
		{name: "left of track", x: -40, width: 200, want: 0},
		{name: "right of track", x: 260, width: 200, want: 1},
		{name: "zero width", x: 10, width: 0, want: 0},
		{name: "negative width", x: 10, width: -5, want: 0},
		{name: "nan position", x: math.NaN(), width: 100, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fraction(tt.x, tt.width)
			if got != tt.want {
				t.Fatalf("Fraction(%v, %v) = %v, want %v", tt.x, tt.width, got, tt.want)
			}
		})
	}
}

func TestValueFromXStaysInRange(t *testing.T) {
	r := New(-5, 15)
	const width = 320.0
	for x := -100.0; x <= width+100; x += 7.5 {
		v := ValueFromX(x, width, r)
		assert.True(t, r.Contains(v), "ValueFromX(%v) = %v outside %v", x, v, r)
		if x <= 0 {
			assert.Equal(t, r.Start, v)
		}
		if x >= width {
			assert.Equal(t, r.End, v)
		}
	}
}

func TestPositionRoundTrip(t *testing.T) {
	ranges := []Range{Default(), New(0, 10), New(-3.3, 17.9), New(0.25, 0.5)}
	widths := []float64{1, 97, 320, 1234.5}
	for _, r := range ranges {
		for _, w := range widths {
			for i := 0; i <= 50; i++ {
				x := w * float64(i) / 50
				got := XFromValue(ValueFromX(x, w, r), w, r)
				assert.InDelta(t, x, got, 1e-9, "range %v width %v", r, w)
			}
		}
	}
}

func TestXFromValue(t *testing.T) {
	r := New(0, 10)
	assert.Equal(t, 0.0, XFromValue(-1, 200, r))
	assert.Equal(t, 100.0, XFromValue(5, 200, r))
	assert.Equal(t, 200.0, XFromValue(11, 200, r))
	assert.Equal(t, 0.0, XFromValue(5, 0, r))
	assert.Equal(t, 0.0, XFromValue(5, 200, New(4, 4)))
}

func TestRangeHelpers(t *testing.T) {
	r := Default()
	assert.Equal(t, 100.0, r.Span())
	assert.True(t, r.Valid())
	assert.False(t, New(1, 1).Valid())
	assert.False(t, New(2, 1).Valid())
	assert.Equal(t, 0.0, r.Clamp(math.NaN()))
	assert.Equal(t, 100.0, r.Clamp(101))
	assert.Equal(t, 40.0, ValueAt(0.4, r))
	assert.Equal(t, 0.25, FractionOf(25, r))
}
