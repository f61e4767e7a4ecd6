package pager

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// ErrInvalidSpringConfig is returned when a SpringConfig cannot describe a damped
// oscillator.
var ErrInvalidSpringConfig = errors.New("invalid spring config")

// maxSpringStep bounds a single integration step so a stalled frame does not
// launch the spring across the screen.
const maxSpringStep = 64 * time.Millisecond

// SpringConfig describes a damped harmonic oscillator pulling toward ToValue.
type SpringConfig struct {
	Damping                   float64 `toml:"damping" yaml:"damping"`
	Mass                      float64 `toml:"mass" yaml:"mass"`
	Stiffness                 float64 `toml:"stiffness" yaml:"stiffness"`
	OvershootClamping         bool    `toml:"overshoot_clamping" yaml:"overshoot_clamping"`
	RestSpeedThreshold        float64 `toml:"rest_speed_threshold" yaml:"rest_speed_threshold"`
	RestDisplacementThreshold float64 `toml:"rest_displacement_threshold" yaml:"rest_displacement_threshold"`
	ToValue                   float64 `toml:"-" yaml:"-"`
}

// DefaultSpringConfig is a stiff, overdamped spring that clamps overshoot.
func DefaultSpringConfig() SpringConfig {
	return SpringConfig{
		Damping:                   40,
		Mass:                      1,
		Stiffness:                 200,
		OvershootClamping:         true,
		RestSpeedThreshold:        0.01,
		RestDisplacementThreshold: 0.01,
	}
}

// Validate checks that the physical constants are positive and the rest
// thresholds are usable.
func (c SpringConfig) Validate() error {
	switch {
	case !(c.Damping > 0):
		return fmt.Errorf("%w: damping must be > 0, got %v", ErrInvalidSpringConfig, c.Damping)
	case !(c.Mass > 0):
		return fmt.Errorf("%w: mass must be > 0, got %v", ErrInvalidSpringConfig, c.Mass)
	case !(c.Stiffness > 0):
		return fmt.Errorf("%w: stiffness must be > 0, got %v", ErrInvalidSpringConfig, c.Stiffness)
	case c.RestSpeedThreshold < 0 || math.IsNaN(c.RestSpeedThreshold):
		return fmt.Errorf("%w: rest speed threshold must be >= 0", ErrInvalidSpringConfig)
	case c.RestDisplacementThreshold < 0 || math.IsNaN(c.RestDisplacementThreshold):
		return fmt.Errorf("%w: rest displacement threshold must be >= 0", ErrInvalidSpringConfig)
	}
	return nil
}

// angularFrequency is the undamped natural frequency sqrt(k/m).
func (c SpringConfig) angularFrequency() float64 {
	return math.Sqrt(c.Stiffness / c.Mass)
}

// dampingRatio is c / (2*sqrt(k*m)); above 1 the spring is overdamped.
func (c SpringConfig) dampingRatio() float64 {
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
}

// SpringState is the evolving state of one settle.
type SpringState struct {
	Position float64
	Velocity float64 // px/s
	Time     time.Duration
	Finished bool
}

// StepSpring advances s by dt toward c.ToValue and returns the new state.
// The step uses the closed-form solution of the oscillator, so it is stable for
// any positive configuration and identical inputs always give identical outputs.
// A finished state is returned unchanged.
func StepSpring(s SpringState, c SpringConfig, dt time.Duration) SpringState {
	if s.Finished || dt <= 0 {
		return s
	}
	if dt > maxSpringStep {
		dt = maxSpringStep
	}

	prev := s.Position
	spring := harmonica.NewSpring(dt.Seconds(), c.angularFrequency(), c.dampingRatio())
	s.Position, s.Velocity = spring.Update(s.Position, s.Velocity, c.ToValue)
	s.Time += dt

	if !isFinite(s.Position) || !isFinite(s.Velocity) {
		return settled(s, c)
	}

	if c.OvershootClamping && overshot(prev, s.Position, c.ToValue) {
		return settled(s, c)
	}

	if math.Abs(s.Velocity) < c.RestSpeedThreshold &&
		math.Abs(c.ToValue-s.Position) < c.RestDisplacementThreshold {
		return settled(s, c)
	}

	return s
}

// overshot reports whether a step from prev to next crossed target. Leaving
// the target in either direction counts when starting on it.
func overshot(prev, next, target float64) bool {
	switch {
	case prev < target:
		return next > target
	case prev > target:
		return next < target
	default:
		return next != target
	}
}

func settled(s SpringState, c SpringConfig) SpringState {
	s.Position = c.ToValue
	s.Velocity = 0
	s.Finished = true
	return s
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
