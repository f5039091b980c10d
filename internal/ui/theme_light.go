package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/colornames"
)

// whiteTheme wraps a base theme and forces the light variant on a plain
// white background, so the slider colors read the same on every platform.
type whiteTheme struct{ fyne.Theme }

func (t whiteTheme) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch n {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground:
		return colornames.White
	case theme.ColorNameForeground:
		return colornames.Black
	}
	return t.Theme.Color(n, theme.VariantLight)
}

// UseWhiteTheme applies the theme wrapper to the current app.
func UseWhiteTheme() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	app.Settings().SetTheme(whiteTheme{Theme: theme.DefaultTheme()})
}
