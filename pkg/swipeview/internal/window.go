package internal

import (
	"fmt"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/constants"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/internal/logging"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer the pager draws into.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	Background      *sdl.Texture
	hasVSync        bool
	lastPresentTime uint64
	indicatorKey    string
}

func initWindow(opts WindowOptions) (*Window, error) {
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			logging.GetInternalLogger().Error("Failed to get display mode", "error", err)
			width, height = constants.DefaultWindowWidth, constants.DefaultWindowHeight
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}

	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	if constants.IsDevMode() {
		opts.Borderless = false
		x, y = 50, 50
	}

	logging.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(opts.Title, x, y, width, height, opts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:   window,
		Renderer: renderer,
		Title:    opts.Title,
		hasVSync: vsync,
	}
	win.loadBackground()
	return win, nil
}

func (window *Window) loadBackground() {
	path := GetTheme().BackgroundImagePath
	if path == "" {
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		logging.GetInternalLogger().Warn("Failed to load background", "path", path, "error", err)
		return
	}
	window.Background = bgTexture
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

// GetWindow returns the window created by Init.
func GetWindow() *Window {
	return window
}

// Size returns the drawable size in pixels.
func (window *Window) Size() (int32, int32) {
	w, h, err := window.Renderer.GetOutputSize()
	if err != nil {
		return window.Window.GetSize()
	}
	return w, h
}

// SetTitle updates the window title, used to show the current page.
func (window *Window) SetTitle(title string) {
	if title == window.Title {
		return
	}
	window.Title = title
	window.Window.SetTitle(title)
}

// RenderBackground clears to the theme colour and draws the background image.
func (window *Window) RenderBackground() {
	bg := GetTheme().BackgroundColor
	window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	window.Renderer.Clear()

	if window.Background != nil {
		w, h := window.Size()
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: w, H: h})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		frame := uint64(constants.DefaultFrameInterval.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}
