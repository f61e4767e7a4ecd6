// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// InitCannoliTheme creates a theme with Cannoli's default colors drawn over
// the given wallpaper.
func InitCannoliTheme(backgroundPath string) internal.Theme {
	return internal.Theme{
		BackgroundColor: internal.HexToColor(0xFFFFFF),
		PageColors: []sdl.Color{
			internal.HexToColor(0x008080),
			internal.HexToColor(0x006666),
		},
		IndicatorActive:     internal.HexToColor(0xFFFFFF),
		IndicatorInactive:   internal.HexToColor(0x000000),
		BackgroundImagePath: backgroundPath,
	}
}
