package pager

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

func springTo(to float64) SpringConfig {
	cfg := DefaultSpringConfig()
	cfg.ToValue = to
	return cfg
}

func runSpring(s SpringState, cfg SpringConfig, maxFrames int) (SpringState, int) {
	for i := 0; i < maxFrames; i++ {
		if s.Finished {
			return s, i
		}
		s = StepSpring(s, cfg, frame)
	}
	return s, maxFrames
}

func TestStepSpringConvergesWithDefaults(t *testing.T) {
	cfg := springTo(-600)
	s, frames := runSpring(SpringState{Position: -300}, cfg, 1000)

	require.True(t, s.Finished, "default spring must settle")
	assert.Less(t, frames, int(DefaultMaxSettleDuration/frame), "settle should finish before the safety cap")
	assert.Less(t, math.Abs(s.Position-cfg.ToValue), cfg.RestDisplacementThreshold)
	assert.Less(t, math.Abs(s.Velocity), cfg.RestSpeedThreshold)
}

func TestStepSpringIsDeterministic(t *testing.T) {
	cfg := springTo(-300)
	in := SpringState{Position: -120, Velocity: 800}

	a := StepSpring(in, cfg, frame)
	b := StepSpring(in, cfg, frame)
	assert.Equal(t, a, b)
}

func TestStepSpringMovesMonotonicallyWhenOverdamped(t *testing.T) {
	cfg := springTo(-300)
	s := SpringState{}
	prev := s.Position
	for i := 0; i < 200 && !s.Finished; i++ {
		s = StepSpring(s, cfg, frame)
		assert.LessOrEqual(t, s.Position, prev, "frame %d moved away from target", i)
		prev = s.Position
	}
	assert.True(t, s.Finished)
}

func TestStepSpringOvershootClamping(t *testing.T) {
	cfg := springTo(-300)

	s := StepSpring(SpringState{Position: 0, Velocity: -60000}, cfg, frame)

	assert.True(t, s.Finished, "crossing the target finishes immediately")
	assert.Equal(t, -300.0, s.Position)
	assert.Zero(t, s.Velocity)
}

func TestStepSpringOvershootsWithoutClamping(t *testing.T) {
	cfg := SpringConfig{
		Damping:                   4,
		Mass:                      1,
		Stiffness:                 200,
		RestSpeedThreshold:        0.01,
		RestDisplacementThreshold: 0.01,
		ToValue:                   100,
	}

	s := SpringState{}
	maxSeen := 0.0
	for i := 0; i < 2000 && !s.Finished; i++ {
		s = StepSpring(s, cfg, frame)
		maxSeen = math.Max(maxSeen, s.Position)
	}

	assert.Greater(t, maxSeen, 100.0, "underdamped spring should overshoot")
	assert.True(t, s.Finished)
	assert.Equal(t, 100.0, s.Position)
}

func TestStepSpringIgnoresNonPositiveDt(t *testing.T) {
	cfg := springTo(-300)
	in := SpringState{Position: -10, Velocity: 5}

	assert.Equal(t, in, StepSpring(in, cfg, 0))
	assert.Equal(t, in, StepSpring(in, cfg, -frame))
}

func TestStepSpringLeavesFinishedStateAlone(t *testing.T) {
	in := SpringState{Position: -300, Finished: true, Time: time.Second}
	assert.Equal(t, in, StepSpring(in, springTo(0), frame))
}

func TestStepSpringCapsLongFrames(t *testing.T) {
	cfg := springTo(-300)
	cfg.OvershootClamping = false
	in := SpringState{}

	long := StepSpring(in, cfg, 2*time.Second)
	capped := StepSpring(in, cfg, maxSpringStep)

	assert.Equal(t, capped, long)
	assert.Equal(t, maxSpringStep, long.Time)
}

func TestStepSpringStaysFiniteAcrossConfigs(t *testing.T) {
	for _, damping := range []float64{0.1, 1, 10, 40, 400} {
		for _, stiffness := range []float64{1, 50, 200, 5000} {
			for _, mass := range []float64{0.1, 1, 10} {
				cfg := SpringConfig{
					Damping:                   damping,
					Mass:                      mass,
					Stiffness:                 stiffness,
					RestSpeedThreshold:        0.01,
					RestDisplacementThreshold: 0.01,
					ToValue:                   -900,
				}
				s := SpringState{Velocity: 5000}
				for i := 0; i < 500 && !s.Finished; i++ {
					s = StepSpring(s, cfg, frame)
					require.False(t, math.IsNaN(s.Position) || math.IsInf(s.Position, 0),
						"damping=%v stiffness=%v mass=%v diverged", damping, stiffness, mass)
				}
			}
		}
	}
}

func TestSpringConfigValidate(t *testing.T) {
	require.NoError(t, DefaultSpringConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*SpringConfig)
	}{
		{"zero damping", func(c *SpringConfig) { c.Damping = 0 }},
		{"negative mass", func(c *SpringConfig) { c.Mass = -1 }},
		{"NaN stiffness", func(c *SpringConfig) { c.Stiffness = math.NaN() }},
		{"negative rest speed", func(c *SpringConfig) { c.RestSpeedThreshold = -0.1 }},
		{"negative rest displacement", func(c *SpringConfig) { c.RestDisplacementThreshold = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSpringConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSpringConfig))
		})
	}
}

func TestStepSpringOnTargetClampsBothDirections(t *testing.T) {
	cfg := springTo(-300)

	for _, velocity := range []float64{-900, 900} {
		s := StepSpring(SpringState{Position: -300, Velocity: velocity}, cfg, frame)

		assert.True(t, s.Finished, "velocity %v", velocity)
		assert.Equal(t, -300.0, s.Position, "velocity %v", velocity)
		assert.Zero(t, s.Velocity, "velocity %v", velocity)
	}
}

func TestOvershot(t *testing.T) {
	tests := []struct {
		name             string
		prev, next, goal float64
		want             bool
	}{
		{"approach from below", -10, -2, 0, false},
		{"cross from below", -10, 2, 0, true},
		{"approach from above", 10, 2, 0, false},
		{"cross from above", 10, -2, 0, true},
		{"leave upward from target", 0, 3, 0, true},
		{"leave downward from target", 0, -3, 0, true},
		{"stay on target", 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overshot(tt.prev, tt.next, tt.goal))
		})
	}
}
