package pager

import (
	"log/slog"
	"math"
	"time"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/internal/logging"
)

// DefaultMaxSettleDuration bounds how long a settle may run in simulated time
// before the engine snaps to the target.
const DefaultMaxSettleDuration = 5 * time.Second

// EngineConfig configures an Engine. Zero values fall back to defaults.
type EngineConfig struct {
	Spring            SpringConfig
	Resolver          Resolver
	MaxSettleDuration time.Duration
	Logger            *slog.Logger
	// OnCommit is called on the Settling to Idle edge when the committed index
	// changed. It may call back into the engine.
	OnCommit func(Commit)
}

// Engine is the transition state machine. It owns one PagerState and is only
// ever touched from the frame loop.
type Engine struct {
	st   PagerState
	keys []string

	// external is the owner's last index as given; applied is the page it
	// mapped to under the route count at that time.
	external int
	applied  int

	spring       SpringState
	springConfig SpringConfig
	clockRunning bool
	reason       CommitReason

	resolver  Resolver
	maxSettle time.Duration
	logger    *slog.Logger
	onCommit  func(Commit)
}

// NewEngine creates an idle engine resting on nav.Index.
func NewEngine(cfg EngineConfig, nav NavigationState, layout Layout) (*Engine, error) {
	if cfg.Spring == (SpringConfig{}) {
		cfg.Spring = DefaultSpringConfig()
	}
	if err := cfg.Spring.Validate(); err != nil {
		return nil, err
	}
	if cfg.Resolver == (Resolver{}) {
		cfg.Resolver = DefaultResolver()
	}
	if cfg.MaxSettleDuration <= 0 {
		cfg.MaxSettleDuration = DefaultMaxSettleDuration
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.GetInternalLogger()
	}

	e := &Engine{
		springConfig: cfg.Spring,
		resolver:     cfg.Resolver,
		maxSettle:    cfg.MaxSettleDuration,
		logger:       cfg.Logger,
		onCommit:     cfg.OnCommit,
	}

	if err := e.setRoutes(nav.Routes); err != nil {
		e.logger.Error("invalid routes", "error", err)
	}
	e.st.PageWidth = sanitizeWidth(layout.Width)
	e.st.CommittedIndex = clampIndex(nav.Index, e.st.RouteCount)
	e.st.PendingIndex = e.st.CommittedIndex
	e.st.Position = e.restingPosition(e.st.CommittedIndex)
	e.external = nav.Index
	e.applied = e.st.CommittedIndex
	return e, nil
}

// State returns a copy of the pager state.
func (e *Engine) State() PagerState {
	return e.st
}

// Spring returns the current spring state.
func (e *Engine) Spring() SpringState {
	return e.spring
}

// ToValue returns the pixel target of the running settle.
func (e *Engine) ToValue() float64 {
	return e.springConfig.ToValue
}

// Mode reports whether the engine is idle, dragging or settling.
func (e *Engine) Mode() State {
	switch {
	case e.st.Dragging:
		return StateDragging
	case e.clockRunning:
		return StateSettling
	default:
		return StateIdle
	}
}

// Apply consumes one gesture sample.
func (e *Engine) Apply(sample GestureSample) {
	switch {
	case sample.Phase == PhaseActive:
		if !e.st.Dragging {
			if !e.canDrag() {
				return
			}
			e.stopClock()
			e.st.Dragging = true
			e.st.Offset = e.st.Position
			e.logger.Debug("drag began", "offset", e.st.Offset, "index", e.st.PendingIndex)
		}
		e.st.Position = e.st.Offset + sample.Translation

	case sample.Phase.terminal():
		if !e.st.Dragging {
			return
		}
		e.st.Dragging = false
		target := e.resolver.Resolve(
			e.st.PendingIndex,
			sample.Translation,
			sample.Velocity,
			e.st.PageWidth,
			e.st.RouteCount,
		)
		e.logger.Debug("drag released",
			"phase", sample.Phase.String(),
			"translation", sample.Translation,
			"velocity", sample.Velocity,
			"from", e.st.PendingIndex,
			"to", target,
		)
		e.startTransition(target, sample.Velocity, CommitGesture)
	}
}

// Step advances a running settle by dt.
func (e *Engine) Step(dt time.Duration) {
	if !e.clockRunning || e.st.Dragging {
		return
	}

	e.spring = StepSpring(e.spring, e.springConfig, dt)
	if !e.spring.Finished && e.spring.Time >= e.maxSettle {
		e.logger.Warn("settle exceeded limit, snapping to target",
			"limit", e.maxSettle,
			"position", e.spring.Position,
			"target", e.springConfig.ToValue,
		)
		e.spring = settled(e.spring, e.springConfig)
	}
	e.st.Position = e.spring.Position

	if e.spring.Finished {
		e.finish()
	}
}

// SetIndex applies an index from the navigation owner. Only changes of the
// owner's value are acted on, so re-sending the same index and the owner's echo
// of our own commit are both no-ops.
func (e *Engine) SetIndex(index int) {
	if index == e.external {
		return
	}
	e.external = index
	e.applied = clampIndex(index, e.st.RouteCount)
	if e.st.RouteCount == 0 {
		return
	}
	e.follow(e.applied)
}

// follow moves toward the owner's page.
func (e *Engine) follow(index int) {
	switch {
	case e.st.Dragging:
		// The release resolves relative to the owner's page.
		e.st.CommittedIndex = index
		e.st.PendingIndex = index
	case e.clockRunning:
		if index != e.st.PendingIndex {
			e.startTransition(index, e.spring.Velocity, CommitProgrammatic)
		}
	default:
		if index != e.st.CommittedIndex {
			e.startTransition(index, 0, CommitProgrammatic)
		}
	}
}

// SetRoutes replaces the route list, clamping indices into the new bound.
// When the new bound changes the page the owner's index maps to, the engine
// moves to that page. Duplicate keys are reported but the routes are still
// applied.
func (e *Engine) SetRoutes(routes []Route) error {
	err := e.setRoutes(routes)
	if err != nil {
		e.logger.Error("invalid routes", "error", err)
	}

	n := e.st.RouteCount
	if n == 0 {
		e.stopClock()
		e.st = PagerState{PageWidth: e.st.PageWidth}
		e.applied = 0
		return err
	}

	e.st.CommittedIndex = clampIndex(e.st.CommittedIndex, n)
	e.st.PendingIndex = clampIndex(e.st.PendingIndex, n)

	if owner := clampIndex(e.external, n); owner != e.applied {
		e.applied = owner
		if owner != e.st.PendingIndex {
			e.follow(owner)
			return err
		}
	}

	switch {
	case e.clockRunning:
		e.springConfig.ToValue = e.restingPosition(e.st.PendingIndex)
	case !e.st.Dragging && e.st.Position != e.restingPosition(e.st.CommittedIndex):
		e.startTransition(e.st.CommittedIndex, 0, CommitProgrammatic)
	}
	return err
}

// SetLayout applies a new viewport width. Indices never change here; pixel
// values are rescaled so the normalised position stays continuous.
func (e *Engine) SetLayout(layout Layout) {
	width := sanitizeWidth(layout.Width)
	old := e.st.PageWidth
	if width == old {
		return
	}
	e.st.PageWidth = width

	if old > 0 && width > 0 {
		scale := width / old
		e.st.Position *= scale
		e.st.Offset *= scale
		e.spring.Position *= scale
		e.spring.Velocity *= scale
	} else {
		// From or to an unmeasured width there is nothing to scale; project
		// from the committed page instead.
		e.st.Position = e.restingPosition(e.st.CommittedIndex)
		e.st.Offset = e.st.Position
		e.spring.Position = e.st.Position
		e.spring.Velocity = 0
	}

	if e.st.Dragging && width == 0 {
		e.st.Dragging = false
		e.startTransition(e.st.PendingIndex, 0, CommitGesture)
		return
	}

	if e.clockRunning {
		e.springConfig.ToValue = e.restingPosition(e.st.PendingIndex)
		e.logger.Debug("settle retargeted for width", "width", width, "target", e.springConfig.ToValue)
	}
}

func (e *Engine) setRoutes(routes []Route) error {
	err := assertRoutes(routes)
	e.keys = make([]string, len(routes))
	for i, route := range routes {
		e.keys[i] = route.Key
	}
	e.st.RouteCount = len(routes)
	return err
}

func (e *Engine) canDrag() bool {
	return e.st.PageWidth > 0 && e.st.RouteCount > 0
}

func (e *Engine) startTransition(target int, velocity float64, reason CommitReason) {
	e.st.PendingIndex = clampIndex(target, e.st.RouteCount)
	if !isFinite(velocity) {
		velocity = 0
	}
	e.spring = SpringState{
		Position: e.st.Position,
		Velocity: velocity,
	}
	e.springConfig.ToValue = e.restingPosition(e.st.PendingIndex)
	e.clockRunning = true
	e.reason = reason
}

func (e *Engine) stopClock() {
	e.clockRunning = false
}

func (e *Engine) finish() {
	e.stopClock()

	previous := e.st.CommittedIndex
	e.st.CommittedIndex = e.st.PendingIndex
	if e.st.CommittedIndex == previous || e.st.RouteCount == 0 {
		return
	}

	commit := Commit{
		Key:      e.keys[e.st.CommittedIndex],
		Index:    e.st.CommittedIndex,
		Previous: previous,
		Reason:   e.reason,
	}
	e.logger.Debug("page committed",
		"key", commit.Key,
		"index", commit.Index,
		"previous", commit.Previous,
		"reason", commit.Reason.String(),
	)
	if e.onCommit != nil {
		e.onCommit(commit)
	}
}

func (e *Engine) restingPosition(index int) float64 {
	if e.st.PageWidth == 0 || index == 0 {
		return 0
	}
	return -float64(index) * e.st.PageWidth
}

func sanitizeWidth(width float64) float64 {
	if !(width > 0) || math.IsInf(width, 0) {
		return 0
	}
	return width
}
