package internal

import (
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/constants"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/internal/logging"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

var window *Window

// Init starts SDL, the input processor and the window.
func Init(opts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return err
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		logging.GetInternalLogger().Warn("Image support incomplete", "error", err)
	}

	// Mouse clicks also arrive as touch events and vice versa; keep them apart.
	sdl.SetHint(sdl.HINT_TOUCH_MOUSE_EVENTS, "0")
	sdl.SetHint(sdl.HINT_MOUSE_TOUCH_EVENTS, "0")

	InitInputProcessor()

	if !opts.HasFlags() {
		if constants.IsDevMode() {
			opts.Resizable = true
		} else {
			opts.Fullscreen = true
		}
	}

	w, err := initWindow(opts)
	if err != nil {
		CloseAllControllers()
		img.Quit()
		sdl.Quit()
		return err
	}
	window = w
	return nil
}

// SDLCleanup releases everything Init created.
func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	img.Quit()
	sdl.Quit()
	logging.CloseLogger()
}
