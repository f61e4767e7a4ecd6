package pager

import (
	"math"
	"sync"
	"time"

	"go.uber.org/atomic"
)

const (
	// DefaultActivationOffset is the horizontal travel in px before a press
	// becomes a drag.
	DefaultActivationOffset = 10.0

	velocityWindow = 100 * time.Millisecond
)

// PointerKind is the kind of a raw pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

// PointerEvent is a platform-neutral touch or mouse event. Time is measured
// from any fixed origin; only differences are used.
type PointerEvent struct {
	Kind PointerKind
	X    float64
	Y    float64
	Time time.Duration
}

type pointerPoint struct {
	x float64
	t time.Duration
}

// SamplerStats counts events the sampler did not pass through one to one.
type SamplerStats struct {
	Coalesced int64
	Dropped   int64
}

// Sampler normalises pointer events into gesture samples and queues them for
// the next frame. HandlePointer and SetEnabled may be called from any
// goroutine; Drain must be called from the frame loop.
type Sampler struct {
	mu sync.Mutex

	activationOffset float64
	enabled          *atomic.Bool
	coalesced        *atomic.Int64
	dropped          *atomic.Int64

	phase       Phase
	gesture     uint64
	startX      float64
	translation float64
	velocity    float64
	recent      []pointerPoint
	queue       []GestureSample
}

// NewSampler creates an enabled sampler. A non-positive activationOffset uses
// DefaultActivationOffset.
func NewSampler(activationOffset float64) *Sampler {
	if !(activationOffset > 0) {
		activationOffset = DefaultActivationOffset
	}
	return &Sampler{
		activationOffset: activationOffset,
		enabled:          atomic.NewBool(true),
		coalesced:        atomic.NewInt64(0),
		dropped:          atomic.NewInt64(0),
		recent:           make([]pointerPoint, 0, 16),
	}
}

// Enabled reports whether new gestures may begin.
func (s *Sampler) Enabled() bool {
	return s.enabled.Load()
}

// SetEnabled toggles swiping. Disabling cancels a live gesture.
func (s *Sampler) SetEnabled(enabled bool) {
	if s.enabled.Swap(enabled) == enabled || enabled {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live() {
		s.finish(PhaseCancelled)
	}
}

// Phase returns the phase of the most recently handled event.
func (s *Sampler) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Stats returns the coalesced and dropped counters.
func (s *Sampler) Stats() SamplerStats {
	return SamplerStats{
		Coalesced: s.coalesced.Load(),
		Dropped:   s.dropped.Load(),
	}
}

// HandlePointer feeds one pointer event into the sampler.
func (s *Sampler) HandlePointer(ev PointerEvent) {
	if !isFinite(ev.X) {
		s.dropped.Inc()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Kind {
	case PointerDown:
		if !s.enabled.Load() || s.live() {
			return
		}
		s.gesture++
		s.startX = ev.X
		s.translation = 0
		s.velocity = 0
		s.recent = s.recent[:0]
		s.record(ev)
		s.phase = PhaseBegan
		s.enqueue(PhaseBegan)

	case PointerMove:
		if !s.live() {
			return
		}
		s.translation = ev.X - s.startX
		s.record(ev)
		if s.phase == PhaseBegan && math.Abs(s.translation) >= s.activationOffset {
			s.phase = PhaseActive
		}
		if s.phase == PhaseActive {
			s.enqueue(PhaseActive)
		}

	case PointerUp:
		if !s.live() {
			return
		}
		s.translation = ev.X - s.startX
		s.record(ev)
		if s.phase == PhaseBegan {
			// Released before it ever became a drag.
			s.finish(PhaseCancelled)
			return
		}
		s.finish(PhaseEnded)

	case PointerCancel:
		if s.live() {
			s.finish(PhaseCancelled)
		}
	}
}

// Drain returns the queued samples in arrival order and empties the queue.
// Consecutive Active samples of the same gesture collapse into the latest one;
// phase changes are always kept.
func (s *Sampler) Drain() []GestureSample {
	s.mu.Lock()
	queued := s.queue
	s.queue = nil
	s.mu.Unlock()

	if len(queued) == 0 {
		return nil
	}

	out := queued[:0]
	for _, sample := range queued {
		if n := len(out); n > 0 &&
			sample.Phase == PhaseActive &&
			out[n-1].Phase == PhaseActive &&
			out[n-1].gesture == sample.gesture {
			out[n-1] = sample
			s.coalesced.Inc()
			continue
		}
		out = append(out, sample)
	}
	return out
}

func (s *Sampler) live() bool {
	return s.phase == PhaseBegan || s.phase == PhaseActive
}

func (s *Sampler) finish(phase Phase) {
	s.enqueue(phase)
	s.phase = PhaseIdle
	s.recent = s.recent[:0]
}

func (s *Sampler) enqueue(phase Phase) {
	s.queue = append(s.queue, GestureSample{
		Translation: s.translation,
		Velocity:    s.velocity,
		Phase:       phase,
		gesture:     s.gesture,
	})
}

// record appends a point and re-estimates velocity over the trailing window.
// A timestamp earlier than the previous point starts a new window.
func (s *Sampler) record(ev PointerEvent) {
	if n := len(s.recent); n > 0 && ev.Time < s.recent[n-1].t {
		s.recent = s.recent[:0]
	}
	s.recent = append(s.recent, pointerPoint{x: ev.X, t: ev.Time})

	cutoff := ev.Time - velocityWindow
	kept := s.recent[:0]
	for _, p := range s.recent {
		if p.t >= cutoff {
			kept = append(kept, p)
		}
	}
	s.recent = kept

	if len(s.recent) < 2 {
		s.velocity = 0
		return
	}
	first, last := s.recent[0], s.recent[len(s.recent)-1]
	elapsed := (last.t - first.t).Seconds()
	if elapsed <= 0 {
		return
	}
	s.velocity = (last.x - first.x) / elapsed
}
