package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ardakazanci/customslider/internal/valuerange"
)

const (
	trackHeight   float32 = 4
	tickLineWidth float32 = 2
)

// sliderGeometry is the placement of every part of a MorphingSlider for a
// given widget size and value. It is recomputed on each layout pass.
type sliderGeometry struct {
	trackPos   fyne.Position
	trackSize  fyne.Size
	activeSize fyne.Size
	tickXs     []float32
	thumbPos   fyne.Position
	thumbSize  fyne.Size
}

// sliderMetrics holds the inputs of the layout that do not come from the
// widget size.
type sliderMetrics struct {
	value       float64
	valueRange  valuerange.Range
	thumbWidth  float32
	thumbHeight float32
	tickCount   int
}

// trackExtent returns the left inset and usable width of the track. Half a
// thumb is reserved on each side so the thumb stays inside at both ends.
func trackExtent(width, thumbWidth float32) (pad, trackW float32) {
	pad = thumbWidth / 2
	trackW = width - thumbWidth
	if trackW < 0 {
		trackW = 0
	}
	return pad, trackW
}

func layoutSlider(sz fyne.Size, m sliderMetrics) sliderGeometry {
	var g sliderGeometry
	pad, trackW := trackExtent(sz.Width, m.thumbWidth)

	// track centered vertically
	y := (sz.Height - trackHeight) / 2
	g.trackPos = fyne.NewPos(pad, y)
	g.trackSize = fyne.NewSize(trackW, trackHeight)

	thumbX := float32(valuerange.XFromValue(m.value, float64(trackW), m.valueRange))
	g.activeSize = fyne.NewSize(thumbX, trackHeight)

	if m.tickCount > 1 {
		step := trackW / float32(m.tickCount-1)
		g.tickXs = make([]float32, m.tickCount)
		for i := range g.tickXs {
			g.tickXs[i] = pad + float32(i)*step
		}
	}

	h := m.thumbHeight
	if h < 0 {
		h = 0
	}
	g.thumbSize = fyne.NewSize(m.thumbWidth, h)
	// thumb centred on the value: pad + thumbX - thumbWidth/2
	g.thumbPos = fyne.NewPos(pad+thumbX-m.thumbWidth/2, (sz.Height-h)/2)
	return g
}

// pointerToTrack converts a widget-relative x into a track offset and the
// track width used by the gesture tracker.
func pointerToTrack(x, width, thumbWidth float32) (float32, float32) {
	pad, trackW := trackExtent(width, thumbWidth)
	return x - pad, trackW
}
