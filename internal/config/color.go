package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned for strings that are neither a CSS color name
// nor a #rrggbb / #rrggbbaa hex value.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor resolves a CSS color name ("lightgray") or a hex string
// ("#d3d3d3", "#d3d3d380").
func ParseColor(s string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	if !strings.HasPrefix(v, "#") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	b, err := hex.DecodeString(v[1:])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	switch len(b) {
	case 3:
		return color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xFF}, nil
	case 4:
		return color.NRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// Palette is the parsed form of Colors.
type Palette struct {
	ThumbBorder     color.Color
	ThumbBackground color.Color
	Track           color.Color
	ActiveTrack     color.Color
}

// Palette parses every color. Values that fail to parse fall back to the
// defaults, which always parse.
func (c Colors) Palette() Palette {
	def := defaultColors()
	return Palette{
		ThumbBorder:     mustColor(c.ThumbBorder, def.ThumbBorder),
		ThumbBackground: mustColor(c.ThumbBackground, def.ThumbBackground),
		Track:           mustColor(c.Track, def.Track),
		ActiveTrack:     mustColor(c.ActiveTrack, def.ActiveTrack),
	}
}

func mustColor(s, def string) color.Color {
	if c, err := ParseColor(s); err == nil {
		return c
	}
	c, _ := ParseColor(def)
	return c
}
