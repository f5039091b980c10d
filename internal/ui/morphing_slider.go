package ui

import (
	"fmt"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/colornames"

	"github.com/ardakazanci/customslider/internal/gesture"
	"github.com/ardakazanci/customslider/internal/valuerange"
)

const (
	// DefaultThumbSize is the resting width and height of the thumb.
	DefaultThumbSize float32 = 30
	// DefaultExpandedThumbHeight is the thumb height while dragging.
	DefaultExpandedThumbHeight float32 = 60
	// DefaultBorderWidth is the stroke width of the thumb outline.
	DefaultBorderWidth float32 = 2
	// DefaultValueFormat renders the value shown inside the thumb.
	DefaultValueFormat = "%.1f"

	// labelDragOffset is how far the value label drops while dragging.
	labelDragOffset float32 = 30
)

// MorphingSlider is a horizontal slider whose pill-shaped thumb stretches
// vertically while it is dragged. The widget does not own its value: drags
// report candidate values through OnValueChange and the caller feeds the
// accepted value back with SetValue.
type MorphingSlider struct {
	widget.BaseWidget

	Value         float64
	OnValueChange func(float64)
	Range         valuerange.Range

	ThumbBorderColor     color.Color
	ThumbBackgroundColor color.Color
	TrackColor           color.Color
	ActiveTrackColor     color.Color
	TickColor            color.Color

	ThumbSize           float32
	ExpandedThumbHeight float32
	BorderWidth         float32

	SnapToTicks bool
	TickCount   int
	ValueFormat string

	tracker *gesture.Tracker

	mu             sync.Mutex
	expandProgress float32 // 0 resting, 1 expanded; may overshoot
	labelProgress  float32
	heightAnim     *fyne.Animation
	labelAnim      *fyne.Animation
}

// NewMorphingSlider creates a slider over the default [0, 100] range.
func NewMorphingSlider(value float64, onValueChange func(float64)) *MorphingSlider {
	s := &MorphingSlider{
		Value:                value,
		OnValueChange:        onValueChange,
		Range:                valuerange.Default(),
		ThumbBorderColor:     colornames.Black,
		ThumbBackgroundColor: colornames.White,
		TrackColor:           colornames.Lightgray,
		ActiveTrackColor:     colornames.Black,
		TickColor:            colornames.Gray,
		ThumbSize:            DefaultThumbSize,
		ExpandedThumbHeight:  DefaultExpandedThumbHeight,
		BorderWidth:          DefaultBorderWidth,
		ValueFormat:          DefaultValueFormat,
	}
	s.tracker = gesture.NewTracker(s.Range)
	s.tracker.OnValueChange = s.notify
	s.tracker.OnStateChange = s.dragStateChanged
	s.ExtendBaseWidget(s)
	return s
}

func (s *MorphingSlider) CreateRenderer() fyne.WidgetRenderer {
	r := &morphingSliderRenderer{
		s:      s,
		track:  canvas.NewRectangle(s.TrackColor),
		active: canvas.NewRectangle(s.ActiveTrackColor),
		thumb:  canvas.NewRectangle(s.ThumbBackgroundColor),
		label:  canvas.NewText("", s.ThumbBorderColor),
	}
	r.label.Alignment = fyne.TextAlignCenter
	r.label.TextSize = theme.TextSize()
	r.rebuildObjects()
	r.applyStyle()
	return r
}

// SetValue updates the displayed value. It does not invoke OnValueChange.
func (s *MorphingSlider) SetValue(v float64) {
	if v == s.Value {
		return
	}
	s.Value = v
	s.Refresh()
}

// Dragging reports whether a pointer is currently dragging the thumb.
func (s *MorphingSlider) Dragging() bool { return s.tracker.Dragging() }

// Dragged updates the value based on pointer drag position. Fyne only
// delivers it once the pointer has moved past its drag threshold, so the
// first call starts the drag and a press alone leaves the value untouched.
func (s *MorphingSlider) Dragged(e *fyne.DragEvent) {
	if e == nil {
		return
	}
	s.syncTracker()
	x, w := pointerToTrack(e.Position.X, s.Size().Width, s.ThumbSize)
	s.tracker.Move(x, w)
}

func (s *MorphingSlider) DragEnd() { s.tracker.Up() }

// CancelDrag aborts an in-progress drag, e.g. when the window loses focus.
func (s *MorphingSlider) CancelDrag() { s.tracker.Cancel() }

// MinSize leaves room for the expanded thumb.
func (s *MorphingSlider) MinSize() fyne.Size {
	h := s.ExpandedThumbHeight
	if s.ThumbSize > h {
		h = s.ThumbSize
	}
	if h < trackHeight {
		h = trackHeight
	}
	return fyne.NewSize(s.ThumbSize*3, h)
}

// thumbHeight interpolates between the resting and expanded heights.
func (s *MorphingSlider) thumbHeight() float32 {
	s.mu.Lock()
	p := s.expandProgress
	s.mu.Unlock()
	return s.ThumbSize + (s.ExpandedThumbHeight-s.ThumbSize)*p
}

func (s *MorphingSlider) labelOffset() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return labelDragOffset * s.labelProgress
}

func (s *MorphingSlider) label() string {
	format := s.ValueFormat
	if format == "" {
		format = DefaultValueFormat
	}
	return fmt.Sprintf(format, s.Value)
}

func (s *MorphingSlider) syncTracker() {
	s.tracker.Range = s.Range
	s.tracker.SnapToTicks = s.SnapToTicks
	s.tracker.TickCount = s.TickCount
}

func (s *MorphingSlider) notify(v float64) {
	if s.OnValueChange != nil {
		s.OnValueChange(v)
	}
}

func (s *MorphingSlider) dragStateChanged(state gesture.State) {
	target := float32(0)
	if state == gesture.Dragging {
		target = 1
	}

	s.mu.Lock()
	if s.heightAnim != nil {
		s.heightAnim.Stop()
	}
	if s.labelAnim != nil {
		s.labelAnim.Stop()
	}
	fromExpand := s.expandProgress
	fromLabel := s.labelProgress
	s.heightAnim = newSpringAnimation(bouncySpring, func(p float32) {
		s.mu.Lock()
		s.expandProgress = fromExpand + (target-fromExpand)*p
		s.mu.Unlock()
		CallOnMain(s.Refresh)
	})
	s.labelAnim = newSpringAnimation(defaultSpring, func(p float32) {
		s.mu.Lock()
		s.labelProgress = fromLabel + (target-fromLabel)*p
		s.mu.Unlock()
		CallOnMain(s.Refresh)
	})
	heightAnim, labelAnim := s.heightAnim, s.labelAnim
	s.mu.Unlock()

	heightAnim.Start()
	labelAnim.Start()
}

type morphingSliderRenderer struct {
	s      *MorphingSlider
	track  *canvas.Rectangle
	active *canvas.Rectangle
	ticks  []*canvas.Line
	thumb  *canvas.Rectangle
	label  *canvas.Text
	objs   []fyne.CanvasObject
}

func (r *morphingSliderRenderer) rebuildObjects() {
	want := r.s.TickCount
	if want < 2 {
		want = 0
	}
	if len(r.ticks) != want {
		r.ticks = make([]*canvas.Line, want)
		for i := range r.ticks {
			r.ticks[i] = canvas.NewLine(r.s.TickColor)
			r.ticks[i].StrokeWidth = tickLineWidth
		}
	}
	objs := []fyne.CanvasObject{r.track, r.active}
	for _, t := range r.ticks {
		objs = append(objs, t)
	}
	r.objs = append(objs, r.thumb, r.label)
}

func (r *morphingSliderRenderer) Layout(sz fyne.Size) {
	s := r.s
	g := layoutSlider(sz, sliderMetrics{
		value:       s.Value,
		valueRange:  s.Range,
		thumbWidth:  s.ThumbSize,
		thumbHeight: s.thumbHeight(),
		tickCount:   len(r.ticks),
	})

	r.track.Move(g.trackPos)
	r.track.Resize(g.trackSize)
	r.active.Move(g.trackPos)
	r.active.Resize(g.activeSize)

	for i, x := range g.tickXs {
		r.ticks[i].Position1 = fyne.NewPos(x, g.trackPos.Y)
		r.ticks[i].Position2 = fyne.NewPos(x, g.trackPos.Y+g.trackSize.Height)
	}

	r.thumb.Move(g.thumbPos)
	r.thumb.Resize(g.thumbSize)
	r.thumb.CornerRadius = fyne.Min(g.thumbSize.Width, g.thumbSize.Height) / 2

	textH := r.label.MinSize().Height
	r.label.Move(fyne.NewPos(g.thumbPos.X, g.thumbPos.Y+(g.thumbSize.Height-textH)/2+s.labelOffset()))
	r.label.Resize(fyne.NewSize(g.thumbSize.Width, textH))
}

func (r *morphingSliderRenderer) MinSize() fyne.Size { return r.s.MinSize() }

func (r *morphingSliderRenderer) Refresh() {
	r.rebuildObjects()
	r.applyStyle()
	r.Layout(r.s.Size())
	for _, o := range r.objs {
		canvas.Refresh(o)
	}
}

// applyStyle copies colors, stroke and label text from the widget.
func (r *morphingSliderRenderer) applyStyle() {
	s := r.s
	r.track.FillColor = s.TrackColor
	r.active.FillColor = s.ActiveTrackColor
	for _, t := range r.ticks {
		t.StrokeColor = s.TickColor
	}
	r.thumb.FillColor = s.ThumbBackgroundColor
	r.thumb.StrokeColor = s.ThumbBorderColor
	r.thumb.StrokeWidth = s.BorderWidth
	r.label.Color = s.ThumbBorderColor
	r.label.Text = s.label()
}

func (r *morphingSliderRenderer) Destroy() {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.heightAnim != nil {
		r.s.heightAnim.Stop()
	}
	if r.s.labelAnim != nil {
		r.s.labelAnim.Stop()
	}
}

func (r *morphingSliderRenderer) Objects() []fyne.CanvasObject { return r.objs }
