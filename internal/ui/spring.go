package ui

import (
	"math"
	"time"

	"fyne.io/fyne/v2"
)

// spring describes a damped harmonic oscillator settling from 0 to 1. Fyne
// only ships easing curves, so the overshoot of a bouncy thumb is modelled
// here and plugged in as an AnimationCurve.
type spring struct {
	damping   float64 // ratio; 1 is critically damped
	stiffness float64 // for unit mass, omega = sqrt(stiffness)
}

var (
	// bouncySpring drives the thumb height: strong overshoot, slow settle.
	bouncySpring = spring{damping: 0.2, stiffness: 200}
	// defaultSpring drives the label offset: no overshoot, quick.
	defaultSpring = spring{damping: 1, stiffness: 1500}
)

// settleExponent: the motion counts as settled once the envelope has decayed
// to e^-settleExponent.
const settleExponent = 8.0

func (s spring) omega() float64 { return math.Sqrt(s.stiffness) }

// duration is the time until the envelope of the oscillation has decayed
// below the settle threshold.
func (s spring) duration() time.Duration {
	d := s.damping
	if d <= 0 {
		d = 0.05
	}
	if d > 1 {
		d = 1
	}
	secs := settleExponent / (d * s.omega())
	return time.Duration(secs * float64(time.Second))
}

// position returns the displacement at time t seconds, starting at 0 and
// converging to 1.
func (s spring) position(t float64) float64 {
	w := s.omega()
	if s.damping >= 1 {
		return 1 - math.Exp(-w*t)*(1+w*t)
	}
	z := s.damping
	wd := w * math.Sqrt(1-z*z)
	return 1 - math.Exp(-z*w*t)*(math.Cos(wd*t)+(z*w/wd)*math.Sin(wd*t))
}

// curve adapts the spring to Fyne's normalized animation progress.
func (s spring) curve() fyne.AnimationCurve {
	total := s.duration().Seconds()
	return func(p float32) float32 {
		if p <= 0 {
			return 0
		}
		if p >= 1 {
			return 1
		}
		return float32(s.position(float64(p) * total))
	}
}

// newSpringAnimation builds a Fyne animation that reports spring progress to
// tick. The progress may exceed 1 for underdamped springs.
func newSpringAnimation(s spring, tick func(float32)) *fyne.Animation {
	a := fyne.NewAnimation(s.duration(), tick)
	a.Curve = s.curve()
	return a
}
