// Package gesture turns a press/move/release pointer sequence into slider
// values. It models the drag as an explicit two-state machine so the widget
// only has to forward input events and react to state changes.
package gesture

import (
	"log/slog"

	"github.com/ardakazanci/customslider/internal/valuerange"
)

// State is the drag state of a slider.
type State int

const (
	// Idle means no pointer is interacting with the slider.
	Idle State = iota
	// Dragging means a pointer is down on the slider and moves update the value.
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

// Tracker converts pointer positions along a track into values. It is not
// safe for concurrent use; UI drivers deliver input on a single goroutine.
type Tracker struct {
	Range       valuerange.Range
	SnapToTicks bool
	TickCount   int

	// OnValueChange receives every candidate value produced by Down and Move.
	OnValueChange func(float64)
	// OnStateChange fires on Idle <-> Dragging transitions only.
	OnStateChange func(State)

	state State
}

// NewTracker returns an idle tracker over r.
func NewTracker(r valuerange.Range) *Tracker {
	return &Tracker{Range: r}
}

// State returns the current drag state.
func (t *Tracker) State() State { return t.state }

// Dragging reports whether a drag is in progress.
func (t *Tracker) Dragging() bool { return t.state == Dragging }

// Down starts a drag at x on a track of the given width.
func (t *Tracker) Down(x, width float32) {
	t.setState(Dragging)
	t.emit(x, width)
}

// Move continues a drag. A move without a preceding Down starts the drag,
// since touch drivers may only report the first move.
func (t *Tracker) Move(x, width float32) {
	t.setState(Dragging)
	t.emit(x, width)
}

// Up ends a drag. It is a no-op while idle.
func (t *Tracker) Up() { t.setState(Idle) }

// Cancel aborts a drag without emitting a value. It is a no-op while idle.
func (t *Tracker) Cancel() {
	if t.state == Dragging {
		slog.Debug("drag cancelled")
	}
	t.setState(Idle)
}

// ValueAt returns the value a pointer at x on a track of the given width
// selects, and false when the track has no width yet.
func (t *Tracker) ValueAt(x, width float32) (float64, bool) {
	if width <= 0 {
		return 0, false
	}
	v := valuerange.ValueFromX(float64(x), float64(width), t.Range)
	return valuerange.Normalize(v, t.Range, t.SnapToTicks, t.TickCount), true
}

func (t *Tracker) emit(x, width float32) {
	v, ok := t.ValueAt(x, width)
	if !ok {
		slog.Debug("drag on unmeasured track ignored", "x", x)
		return
	}
	if t.OnValueChange != nil {
		t.OnValueChange(v)
	}
}

func (t *Tracker) setState(s State) {
	if t.state == s {
		return
	}
	t.state = s
	slog.Debug("slider drag state", "state", s)
	if t.OnStateChange != nil {
		t.OnStateChange(s)
	}
}
