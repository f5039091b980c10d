package valuerange

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestSnapExamples(t *testing.T) {
	r := New(0, 10)
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{name: "rounds down to nearest tick", value: 3.1, want: 2.5},
		{name: "rounds up to nearest tick", value: 6.3, want: 7.5},
		{name: "tie rounds up", value: 6.25, want: 7.5},
		{name: "lower tie rounds up", value: 3.75, want: 5},
		{name: "exact tick", value: 5, want: 5},
		{name: "start", value: 0, want: 0},
		{name: "end", value: 10, want: 10},
		{name: "below range clamps", value: -3, want: 0},
		{name: "above range clamps", value: 12, want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Snap(tt.value, r, 5)
			if got != tt.want {
				t.Fatalf("Snap(%v, %v, 5) = %v, want %v", tt.value, r, got, tt.want)
			}
		})
	}
}

func TestSnapNegativeRange(t *testing.T) {
	r := New(-10, 10)
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{name: "round negative towards grid", value: -6.2, want: -5},
		{name: "round positive towards grid", value: 6.1, want: 5},
		{name: "tie below zero rounds towards end", value: -1.25, want: 0},
		{name: "clamp after rounding", value: 8.9, want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Snap(tt.value, r, 9)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSnapDisabled(t *testing.T) {
	tests := []struct {
		name      string
		r         Range
		tickCount int
		value     float64
	}{
		{name: "no ticks", r: New(0, 10), tickCount: 0, value: 3.3},
		{name: "single tick", r: New(0, 10), tickCount: 1, value: 7.1},
		{name: "negative tick count", r: New(0, 10), tickCount: -4, value: 2},
		{name: "out of range value kept", r: New(0, 10), tickCount: 1, value: 42},
		{name: "zero width range", r: New(3, 3), tickCount: 2, value: 5},
		{name: "zero width many ticks", r: New(3, 3), tickCount: 7, value: 1},
		{name: "inverted range", r: New(10, 0), tickCount: 5, value: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.value, Snap(tt.value, tt.r, tt.tickCount))
		})
	}
}

func TestSnapNaN(t *testing.T) {
	got := Snap(math.NaN(), New(0, 10), 5)
	assert.True(t, math.IsNaN(got))
}

func TestSnapProperties(t *testing.T) {
	ranges := []Range{New(0, 10), New(-10, 10), New(0.1, 0.7), New(-3.3, 17.9), New(0, 1)}
	for _, r := range ranges {
		for ticks := 0; ticks <= 9; ticks++ {
			for v := r.Start - 2; v <= r.End+2; v += r.Span() / 37 {
				got := Snap(v, r, ticks)
				if ticks < 2 {
					if got != v {
						t.Fatalf("Snap(%v, %v, %d) = %v, want unchanged", v, r, ticks, got)
					}
					continue
				}
				if !r.Contains(got) {
					t.Fatalf("Snap(%v, %v, %d) = %v outside range", v, r, ticks, got)
				}
				if again := Snap(got, r, ticks); again != got {
					t.Fatalf("Snap not idempotent for %v, %v, %d: %v then %v", v, r, ticks, got, again)
				}
			}
		}
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		name      string
		r         Range
		tickCount int
		want      []float64
	}{
		{name: "quarters", r: New(0, 10), tickCount: 5, want: []float64{0, 2.5, 5, 7.5, 10}},
		{name: "thirds", r: New(0, 1), tickCount: 4, want: []float64{0, 1.0 / 3, 2.0 / 3, 1}},
		{name: "two ticks", r: New(-1, 1), tickCount: 2, want: []float64{-1, 1}},
		{name: "disabled", r: New(0, 10), tickCount: 1, want: nil},
		{name: "zero width", r: New(2, 2), tickCount: 3, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ticks(tt.r, tt.tickCount)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Fatalf("Ticks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTicksMatchSnap(t *testing.T) {
	r := New(-3.3, 17.9)
	for _, tick := range Ticks(r, 7) {
		assert.InDelta(t, tick, Snap(tick, r, 7), 1e-9)
	}
}

func TestTickIndex(t *testing.T) {
	r := New(0, 10)
	assert.Equal(t, 1, TickIndex(3.1, r, 5))
	assert.Equal(t, 3, TickIndex(6.25, r, 5))
	assert.Equal(t, 0, TickIndex(-20, r, 5))
	assert.Equal(t, 4, TickIndex(20, r, 5))
	assert.Equal(t, -1, TickIndex(3, r, 0))
}

func TestSnapJustBelowHalfStep(t *testing.T) {
	r := New(0, 1)
	below := math.Nextafter(0.5, 0) // 0.49999999999999994
	assert.Equal(t, 0.0, Snap(below, r, 2))
	assert.Equal(t, 0, TickIndex(below, r, 2))
	// the tie itself still goes up
	assert.Equal(t, 1.0, Snap(0.5, r, 2))
	assert.Equal(t, 1, TickIndex(0.5, r, 2))
}

func TestNormalize(t *testing.T) {
	r := New(0, 10)
	assert.Equal(t, 3.1, Normalize(3.1, r, false, 5))
	assert.Equal(t, 2.5, Normalize(3.1, r, true, 5))
	assert.Equal(t, 10.0, Normalize(15, r, false, 0))
	assert.Equal(t, 0.0, Normalize(-15, r, true, 5))
	// snapping requested without ticks behaves like plain clamping
	assert.Equal(t, 4.2, Normalize(4.2, r, true, 0))
	// zero width range is left alone
	assert.Equal(t, 8.0, Normalize(8, New(3, 3), true, 2))
}
