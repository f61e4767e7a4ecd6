package internal

import (
	"time"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/constants"
)

// PageStep is a request to move the pager by one page.
type PageStep int

const (
	StepNone     PageStep = 0
	StepPrevious PageStep = -1
	StepNext     PageStep = 1
)

// DirectionalInput turns held Left/Right (and L1/R1) buttons into page steps,
// firing once on press and then repeating while held.
type DirectionalInput struct {
	held struct {
		previous, next bool
	}
	lastStepTime   time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastStepTime:   time.Now(),
		now:            time.Now,
	}
}

// SetHeld updates the held state for a paging button. It returns the step to
// take immediately on a fresh press, and whether the button was a paging
// button at all.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) (PageStep, bool) {
	var slot *bool
	step := StepNone
	switch button {
	case constants.VirtualButtonLeft, constants.VirtualButtonL1:
		slot, step = &d.held.previous, StepPrevious
	case constants.VirtualButtonRight, constants.VirtualButtonR1:
		slot, step = &d.held.next, StepNext
	default:
		return StepNone, false
	}

	wasHeld := *slot
	*slot = held
	if !held {
		d.hasRepeated = false
		return StepNone, true
	}
	if wasHeld {
		return StepNone, true
	}
	d.lastStepTime = d.now()
	d.hasRepeated = false
	return step, true
}

// IsHeld returns true if a paging button is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.previous != d.held.next
}

// Update returns a repeated step when one is due. Call it every frame.
// Holding both directions cancels out.
func (d *DirectionalInput) Update() PageStep {
	now := d.now()
	if !d.IsHeld() {
		d.lastStepTime = now
		d.hasRepeated = false
		return StepNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}
	if now.Sub(d.lastStepTime) < threshold {
		return StepNone
	}

	d.lastStepTime = now
	d.hasRepeated = true
	if d.held.previous {
		return StepPrevious
	}
	return StepNext
}

// Reset clears all held buttons and timing state.
func (d *DirectionalInput) Reset() {
	d.held.previous = false
	d.held.next = false
	d.hasRepeated = false
	d.lastStepTime = d.now()
}

// String returns a string representation of the step.
func (s PageStep) String() string {
	switch s {
	case StepPrevious:
		return "previous"
	case StepNext:
		return "next"
	default:
		return ""
	}
}
