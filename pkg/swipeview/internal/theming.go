package internal

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the colours of the pager host.
type Theme struct {
	BackgroundColor     sdl.Color   // Clear colour behind the page strip
	PageColors          []sdl.Color // Page fills, cycled by index when a page has none
	IndicatorActive     sdl.Color   // Active page-indicator dot
	IndicatorInactive   sdl.Color   // Inactive page-indicator dots
	BackgroundImagePath string      // Optional image drawn behind the pages
}

var currentTheme = DefaultTheme()

// DefaultTheme returns a dark theme with muted page colours.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: HexToColor(0x101010),
		PageColors: []sdl.Color{
			HexToColor(0x2E4057),
			HexToColor(0x048A81),
			HexToColor(0x54C6EB),
			HexToColor(0x8A89C0),
		},
		IndicatorActive:   HexToColor(0xFFFFFF),
		IndicatorInactive: HexToColor(0x787878),
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// ToRGBA converts an sdl.Color for use with image packages.
func ToRGBA(c sdl.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// PageColor returns the fill for page index.
func (t Theme) PageColor(index int) sdl.Color {
	if len(t.PageColors) == 0 {
		return t.BackgroundColor
	}
	return t.PageColors[index%len(t.PageColors)]
}
