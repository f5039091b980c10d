// Package sliderapp wires the configuration and the MorphingSlider widget
// together into the single-screen demo window.
package sliderapp

import (
	"fmt"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	config "github.com/ardakazanci/customslider/internal/config"
	ui "github.com/ardakazanci/customslider/internal/ui"
	"github.com/ardakazanci/customslider/internal/valuerange"
)

const (
	windowTitle   = "Custom Slider"
	screenPadding = 16
	labelSpacing  = 24
)

// App owns the fyne application, the window and the demo screen. The slider
// value lives here; the widget only reports candidate values.
type App struct {
	fa     fyne.App
	w      fyne.Window
	config *config.Config

	value    float64
	valueLbl *widget.Label
	slider   *ui.MorphingSlider
}

// NewApp creates the fyne application and builds the demo window from cfg.
func NewApp(cfg *config.Config) *App {
	return New(app.NewWithID(config.AppID), cfg)
}

// New builds the demo window on an existing fyne application.
func New(fa fyne.App, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{fa: fa, config: cfg, value: cfg.Value}

	ui.UseWhiteTheme()
	a.w = fa.NewWindow(windowTitle)
	a.w.SetContent(a.buildScreen())
	a.w.Resize(fyne.NewSize(float32(cfg.WindowW), float32(cfg.WindowH)))

	// window close handler: persist value and size
	a.w.SetCloseIntercept(func() {
		a.persist()
		a.w.Close()
		fa.Quit()
	})
	// a drag cannot survive the window losing focus
	fa.Lifecycle().SetOnExitedForeground(func() {
		if a.slider != nil {
			a.slider.CancelDrag()
		}
	})
	return a
}

// Run shows the window and enters the fyne event loop.
func (a *App) Run() {
	a.w.ShowAndRun()
}

// Value returns the current slider value.
func (a *App) Value() float64 { return a.value }

func (a *App) buildScreen() fyne.CanvasObject {
	a.valueLbl = widget.NewLabel(valueText(a.value))
	a.slider = newSlider(a.config, a.value, a.setValue)

	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(0, labelSpacing))

	sliderRow := container.New(layout.NewCustomPaddedLayout(0, 0, 8, 8), a.slider)
	column := container.NewVBox(
		layout.NewSpacer(),
		a.valueLbl,
		gap,
		sliderRow,
		layout.NewSpacer(),
	)
	return container.New(layout.NewCustomPaddedLayout(screenPadding, screenPadding, screenPadding, screenPadding), column)
}

// setValue is the slider's value callback: accept the candidate and push it
// back into the label and the widget.
func (a *App) setValue(v float64) {
	slog.Debug("slider value", "value", v)
	a.value = v
	a.valueLbl.SetText(valueText(v))
	a.slider.SetValue(v)
}

func (a *App) persist() {
	sz := a.w.Canvas().Size()
	if sz.Width > 0 {
		a.config.WindowW = int(sz.Width)
	}
	if sz.Height > 0 {
		a.config.WindowH = int(sz.Height)
	}
	a.config.Value = a.value
	if err := a.config.Save(); err != nil {
		slog.Warn("config save failed", "err", err)
	}
}

func newSlider(cfg *config.Config, value float64, onChange func(float64)) *ui.MorphingSlider {
	s := ui.NewMorphingSlider(value, onChange)
	s.Range = valuerange.New(cfg.Min, cfg.Max)
	s.SnapToTicks = cfg.SnapToTicks
	s.TickCount = cfg.TickCount
	s.ThumbSize = cfg.ThumbSize
	s.ExpandedThumbHeight = cfg.ExpandedThumbHeight
	s.BorderWidth = cfg.BorderWidth

	p := cfg.Colors.Palette()
	s.ThumbBorderColor = p.ThumbBorder
	s.ThumbBackgroundColor = p.ThumbBackground
	s.TrackColor = p.Track
	s.ActiveTrackColor = p.ActiveTrack
	return s
}

func valueText(v float64) string {
	return fmt.Sprintf("Value: %.1f", v)
}
