// Package config loads swipeview settings from TOML or YAML files and
// environment variables.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/constants"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/pager"
	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config contains all swipeview settings.
type Config struct {
	// Spring tunes the settle animation.
	Spring pager.SpringConfig `toml:"spring" yaml:"spring"`

	// Swipe contains the gesture thresholds.
	Swipe SwipeConfig `toml:"swipe" yaml:"swipe"`

	// MaxSettleDuration bounds a single settle in simulated time.
	MaxSettleDuration time.Duration `toml:"max_settle_duration" yaml:"max_settle_duration"`

	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Input   InputConfig   `toml:"input" yaml:"input"`
	Window  WindowConfig  `toml:"window" yaml:"window"`
	Labels  LabelsConfig  `toml:"labels" yaml:"labels"`
}

// SwipeConfig configures when a drag starts and where it lands.
type SwipeConfig struct {
	// Enabled allows pages to be dragged. Programmatic paging always works.
	Enabled bool `toml:"enabled" yaml:"enabled"`

	// DistanceDivisor sets the distance threshold to page width / divisor.
	DistanceDivisor float64 `toml:"distance_divisor" yaml:"distance_divisor"`

	// VelocityThreshold is the release speed in px/s that advances a page.
	VelocityThreshold float64 `toml:"velocity_threshold" yaml:"velocity_threshold"`

	// ActivationOffset is the horizontal travel in px before a press becomes a drag.
	ActivationOffset float64 `toml:"activation_offset" yaml:"activation_offset"`
}

// LoggingConfig configures the application logger.
type LoggingConfig struct {
	// Level is one of "debug", "info" (default), "warn" or "error".
	Level string `toml:"level" yaml:"level"`

	// Path is an optional log file. Parent directories are created.
	Path string `toml:"path,omitempty" yaml:"path,omitempty"`
}

// InputConfig selects where pointer events come from.
type InputConfig struct {
	// TouchDevice is an evdev node such as /dev/input/event3. Empty uses SDL
	// mouse and finger events only.
	TouchDevice string `toml:"touch_device,omitempty" yaml:"touch_device,omitempty"`

	// GrabTouch takes exclusive access to TouchDevice.
	GrabTouch bool `toml:"grab_touch" yaml:"grab_touch"`
}

// WindowConfig sizes the host window.
type WindowConfig struct {
	Title      string `toml:"title" yaml:"title"`
	Width      int32  `toml:"width" yaml:"width"`
	Height     int32  `toml:"height" yaml:"height"`
	Fullscreen bool   `toml:"fullscreen" yaml:"fullscreen"`
	Resizable  bool   `toml:"resizable" yaml:"resizable"`
}

// LabelsConfig selects the language for page titles.
type LabelsConfig struct {
	// Language is a BCP 47 tag. Empty uses English.
	Language string `toml:"language,omitempty" yaml:"language,omitempty"`

	// MessagesDir holds additional active.<lang>.toml message files.
	MessagesDir string `toml:"messages_dir,omitempty" yaml:"messages_dir,omitempty"`
}

// Default returns a Config with the pager defaults.
func Default() *Config {
	return &Config{
		Spring: pager.DefaultSpringConfig(),
		Swipe: SwipeConfig{
			Enabled:           true,
			DistanceDivisor:   pager.DefaultDistanceDivisor,
			VelocityThreshold: pager.DefaultVelocityThreshold,
			ActivationOffset:  pager.DefaultActivationOffset,
		},
		MaxSettleDuration: pager.DefaultMaxSettleDuration,
		Logging: LoggingConfig{
			Level: "info",
		},
		Window: WindowConfig{
			Title:     constants.DefaultWindowTitle,
			Width:     constants.DefaultWindowWidth,
			Height:    constants.DefaultWindowHeight,
			Resizable: true,
		},
	}
}

// Load reads a config file, choosing the decoder by extension (.toml, .yaml,
// .yml), then applies environment overrides. An empty path returns the
// defaults with environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := cfg.decode(data, FormatFor(path)); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// LoadFromEnvOr loads path, or the file named by SWIPEVIEW_CONFIG when path is
// empty.
func LoadFromEnvOr(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(constants.ConfigPathEnvVar)
	}
	return Load(path)
}

// Format is a config file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the encoding from the file extension; anything but .yaml
// and .yml is TOML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes data over the defaults without applying environment overrides.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data, format); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte, format Format) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, c)
	case FormatTOML:
		_, err := toml.NewDecoder(bytes.NewReader(data)).Decode(c)
		return err
	default:
		return fmt.Errorf("unsupported config format %q", format)
	}
}

// Encode writes the config in the given format.
func (c *Config) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(c)
	default:
		return fmt.Errorf("unsupported config format %q", format)
	}
}

// ApplyEnv applies environment variable overrides.
func (c *Config) ApplyEnv() {
	if constants.IsDevMode() && c.Logging.Level == "info" {
		c.Logging.Level = "debug"
	}

	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(constants.TouchDeviceEnvVar); v != "" {
		c.Input.TouchDevice = v
	}

	if v := os.Getenv(constants.WindowWidthEnvVar); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.Window.Width = int32(n)
		}
	}

	if v := os.Getenv(constants.WindowHeightEnvVar); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.Window.Height = int32(n)
		}
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.Spring.Validate(); err != nil {
		return err
	}

	if !(c.Swipe.DistanceDivisor > 0) {
		return fmt.Errorf("distance_divisor must be > 0, got %v", c.Swipe.DistanceDivisor)
	}

	if !(c.Swipe.VelocityThreshold > 0) {
		return fmt.Errorf("velocity_threshold must be > 0, got %v", c.Swipe.VelocityThreshold)
	}

	if c.Swipe.ActivationOffset < 0 {
		return fmt.Errorf("activation_offset must be non-negative, got %v", c.Swipe.ActivationOffset)
	}

	if c.MaxSettleDuration <= 0 {
		return fmt.Errorf("max_settle_duration must be positive, got %v", c.MaxSettleDuration)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if c.Logging.Level != "" && !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}

	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must be non-negative, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Labels.Language != "" {
		if _, err := language.Parse(c.Labels.Language); err != nil {
			return fmt.Errorf("invalid language %q: %w", c.Labels.Language, err)
		}
	}

	return nil
}

// Resolver returns the release resolver described by the swipe thresholds.
func (c *Config) Resolver() pager.Resolver {
	return pager.Resolver{
		DistanceDivisor:   c.Swipe.DistanceDivisor,
		VelocityThreshold: c.Swipe.VelocityThreshold,
	}
}

// PagerOptions builds pager options for nav. Layout, logger and the commit
// callback are left for the caller.
func (c *Config) PagerOptions(nav pager.NavigationState) pager.Options {
	return pager.Options{
		Navigation:        nav,
		DisableSwipe:      !c.Swipe.Enabled,
		Spring:            c.Spring,
		Resolver:          c.Resolver(),
		ActivationOffset:  c.Swipe.ActivationOffset,
		MaxSettleDuration: c.MaxSettleDuration,
	}
}
