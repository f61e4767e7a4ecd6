// Package swipeview provides a swipeable pager screen for SDL applications on
// embedded Linux handhelds and desktops.
//
// The package handles SDL initialization, touch, mouse and controller input,
// theming, and hosts the frame-driven pager from the pager package in a
// blocking screen function.
package swipeview

import (
	"io"
	"log/slog"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/config"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/constants"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/internal"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/internal/logging"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/platform/cannoli"
)

// Options configures swipeview initialization.
type Options struct {
	Config               *config.Config // Loaded settings; nil uses config.Default with environment overrides
	WindowOptions        internal.WindowOptions
	PrimaryThemeColorHex uint32 // Custom active indicator colour
	IsCannoli            bool   // Use Cannoli CFW colours
	LogPath              string // Full path for the log file; overrides Config.Logging.Path
}

var activeConfig = config.Default()

// Init initializes SDL, theming and input handling.
// Must be called before SwipeView.
func Init(options Options) error {
	cfg := options.Config
	if cfg == nil {
		cfg = config.Default()
		cfg.ApplyEnv()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	activeConfig = cfg

	switch {
	case options.LogPath != "":
		logging.SetLogPath(options.LogPath)
	case cfg.Logging.Path != "":
		logging.SetLogPath(cfg.Logging.Path)
	}
	logging.SetRawLogLevel(cfg.Logging.Level)

	if constants.IsDevMode() {
		logging.SetInternalLogLevel(slog.LevelDebug)
	} else {
		logging.SetInternalLogLevel(slog.LevelError)
	}

	if options.IsCannoli {
		internal.SetTheme(cannoli.InitCannoliTheme("/mnt/SDCARD/System/wallpapers/default.png"))
	}

	if options.PrimaryThemeColorHex != 0 {
		theme := internal.GetTheme()
		theme.IndicatorActive = internal.HexToColor(options.PrimaryThemeColorHex)
		internal.SetTheme(theme)
	}

	winOpts := options.WindowOptions
	if winOpts.Title == "" {
		winOpts.Title = cfg.Window.Title
	}
	if winOpts.Width == 0 && winOpts.Height == 0 {
		winOpts.Width, winOpts.Height = cfg.Window.Width, cfg.Window.Height
	}
	if !winOpts.HasFlags() {
		winOpts.Resizable = cfg.Window.Resizable
		winOpts.Fullscreen = cfg.Window.Fullscreen
	}

	if err := internal.Init(winOpts); err != nil {
		return NewInfrastructureError("init_sdl", err)
	}
	return nil
}

// Close releases all SDL resources and shuts down the UI framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	logging.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return logging.GetLogger()
}

// NewLogger returns a standalone JSON logger at level writing to w, for tools
// that keep stdout for their own output.
func NewLogger(level string, w io.Writer) *slog.Logger {
	return logging.NewLogger(level, w)
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	logging.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	logging.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
