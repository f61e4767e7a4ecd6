// Package simulate replays scripted pointer input through a pager on a
// simulated clock. It drives spring tuning and regression checks without a
// window.
package simulate

import (
	"bytes"
	"cmp"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/config"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/pager"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Action is what a script step does.
type Action string

const (
	ActionDown   Action = "down"
	ActionMove   Action = "move"
	ActionUp     Action = "up"
	ActionCancel Action = "cancel"
	ActionSwipe  Action = "swipe" // down at X, linear moves to To over Duration, up
	ActionIndex  Action = "index" // owner jumps to Index
	ActionWidth  Action = "width" // viewport resized to Width
	ActionEnable Action = "enable"
	ActionLock   Action = "disable"
)

// Step is one scripted event at an offset from the start of the run.
type Step struct {
	At       time.Duration `toml:"at" yaml:"at"`
	Action   Action        `toml:"action" yaml:"action"`
	X        float64       `toml:"x,omitempty" yaml:"x,omitempty"`
	To       float64       `toml:"to,omitempty" yaml:"to,omitempty"`
	Duration time.Duration `toml:"duration,omitempty" yaml:"duration,omitempty"`
	Index    int           `toml:"index,omitempty" yaml:"index,omitempty"`
	Width    float64       `toml:"width,omitempty" yaml:"width,omitempty"`
}

// Route is a scripted page.
type Route struct {
	Key   string `toml:"key" yaml:"key"`
	Title string `toml:"title,omitempty" yaml:"title,omitempty"`
}

// Script describes a run.
type Script struct {
	Width         float64       `toml:"width" yaml:"width"`
	Index         int           `toml:"index" yaml:"index"`
	Routes        []Route       `toml:"routes" yaml:"routes"`
	FrameInterval time.Duration `toml:"frame_interval,omitempty" yaml:"frame_interval,omitempty"`
	MaxDuration   time.Duration `toml:"max_duration,omitempty" yaml:"max_duration,omitempty"`
	Steps         []Step        `toml:"steps" yaml:"steps"`
}

const (
	defaultFrameInterval = 16 * time.Millisecond
	defaultMaxDuration   = 30 * time.Second
	swipeMoveInterval    = 8 * time.Millisecond
)

// LoadScript reads a TOML or YAML script, chosen by extension.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return ParseScript(data, config.FormatFor(path))
}

// ParseScript decodes a script in the given format.
func ParseScript(data []byte, format config.Format) (*Script, error) {
	var s Script
	switch format {
	case config.FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing script: %w", err)
		}
	case config.FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
			return nil, fmt.Errorf("parsing script: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported script format %q", format)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the script can run.
func (s *Script) Validate() error {
	if s.Width < 0 {
		return fmt.Errorf("width must be non-negative, got %v", s.Width)
	}
	if s.FrameInterval < 0 || s.MaxDuration < 0 {
		return fmt.Errorf("frame_interval and max_duration must be non-negative")
	}
	if err := pager.ValidateRoutes(s.routes()); err != nil {
		return err
	}
	for i, step := range s.Steps {
		switch step.Action {
		case ActionDown, ActionMove, ActionUp, ActionCancel, ActionIndex, ActionWidth, ActionEnable, ActionLock:
		case ActionSwipe:
			if step.Duration <= 0 {
				return fmt.Errorf("step %d: swipe needs a positive duration", i)
			}
		default:
			return fmt.Errorf("step %d: unknown action %q", i, step.Action)
		}
		if step.At < 0 {
			return fmt.Errorf("step %d: negative time %v", i, step.At)
		}
	}
	return nil
}

func (s *Script) routes() []pager.Route {
	routes := make([]pager.Route, len(s.Routes))
	for i, r := range s.Routes {
		routes[i] = pager.Route{Key: r.Key, Title: r.Title}
	}
	return routes
}

// expand replaces swipe steps with their pointer events and orders all steps
// by time, keeping script order for ties.
func (s *Script) expand() []Step {
	var out []Step
	for _, step := range s.Steps {
		if step.Action != ActionSwipe {
			out = append(out, step)
			continue
		}
		out = append(out, Step{At: step.At, Action: ActionDown, X: step.X})
		for t := swipeMoveInterval; t < step.Duration; t += swipeMoveInterval {
			frac := float64(t) / float64(step.Duration)
			out = append(out, Step{At: step.At + t, Action: ActionMove, X: step.X + (step.To-step.X)*frac})
		}
		out = append(out,
			Step{At: step.At + step.Duration, Action: ActionMove, X: step.To},
			Step{At: step.At + step.Duration, Action: ActionUp, X: step.To},
		)
	}
	slices.SortStableFunc(out, func(a, b Step) int {
		return cmp.Compare(a.At, b.At)
	})
	return out
}
