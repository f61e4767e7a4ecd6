package pager

import (
	"log/slog"
	"slices"
	"time"
)

// Options configures a Pager. Zero values use the defaults of each component.
type Options struct {
	Navigation        NavigationState
	Layout            Layout
	DisableSwipe      bool
	Spring            SpringConfig
	Resolver          Resolver
	ActivationOffset  float64
	MaxSettleDuration time.Duration
	Logger            *slog.Logger
	OnCommit          func(Commit)
}

// Props is the full set of external inputs, applied together by SetProps.
type Props struct {
	Layout       Layout
	Navigation   NavigationState
	SwipeEnabled bool
}

// Pager wires the sampler, engine and publisher behind a single per-frame call.
type Pager struct {
	engine    *Engine
	sampler   *Sampler
	publisher Publisher

	routes       []Route
	swipeEnabled bool
}

// New creates a pager resting on opts.Navigation.Index.
func New(opts Options) (*Pager, error) {
	engine, err := NewEngine(EngineConfig{
		Spring:            opts.Spring,
		Resolver:          opts.Resolver,
		MaxSettleDuration: opts.MaxSettleDuration,
		Logger:            opts.Logger,
		OnCommit:          opts.OnCommit,
	}, opts.Navigation, opts.Layout)
	if err != nil {
		return nil, err
	}

	p := &Pager{
		engine:       engine,
		sampler:      NewSampler(opts.ActivationOffset),
		routes:       slices.Clone(opts.Navigation.Routes),
		swipeEnabled: !opts.DisableSwipe,
	}
	p.syncSwipe()
	p.publisher.Publish(engine.State(), engine.Mode())
	return p, nil
}

// HandlePointer queues a pointer event. Safe to call from any goroutine.
func (p *Pager) HandlePointer(ev PointerEvent) {
	p.sampler.HandlePointer(ev)
}

// Frame runs one frame: queued gesture samples are applied in order, the
// spring advances by dt, and the normalised position is published and returned.
func (p *Pager) Frame(dt time.Duration) float64 {
	for _, sample := range p.sampler.Drain() {
		p.engine.Apply(sample)
	}
	p.engine.Step(dt)
	return p.publisher.Publish(p.engine.State(), p.engine.Mode()).Position
}

// SetProps applies layout before navigation so pixel targets derived from an
// index change use the new width.
func (p *Pager) SetProps(props Props) error {
	p.SetLayout(props.Layout)
	err := p.SetNavigationState(props.Navigation)
	p.SetSwipeEnabled(props.SwipeEnabled)
	return err
}

// SetLayout updates the page width.
func (p *Pager) SetLayout(layout Layout) {
	p.engine.SetLayout(layout)
	p.syncSwipe()
}

// SetNavigationState applies a new route list (if it changed) and then the
// owner's index.
func (p *Pager) SetNavigationState(nav NavigationState) error {
	var err error
	if !slices.Equal(p.routes, nav.Routes) {
		p.routes = slices.Clone(nav.Routes)
		err = p.engine.SetRoutes(p.routes)
		p.syncSwipe()
	}
	p.engine.SetIndex(nav.Index)
	return err
}

// SetIndex applies the owner's index on its own.
func (p *Pager) SetIndex(index int) {
	p.engine.SetIndex(index)
}

// SetSwipeEnabled enables or disables drag gestures. Disabling cancels a live
// gesture, which then settles like a release.
func (p *Pager) SetSwipeEnabled(enabled bool) {
	p.swipeEnabled = enabled
	p.syncSwipe()
}

// Subscribe registers fn to receive every published snapshot.
func (p *Pager) Subscribe(fn func(Snapshot)) {
	p.publisher.Subscribe(fn)
}

// Snapshot returns the last published snapshot.
func (p *Pager) Snapshot() Snapshot {
	return p.publisher.Last()
}

// State returns a copy of the engine state.
func (p *Pager) State() PagerState {
	return p.engine.State()
}

// Mode reports whether the pager is idle, dragging or settling.
func (p *Pager) Mode() State {
	return p.engine.Mode()
}

// Routes returns the current routes.
func (p *Pager) Routes() []Route {
	return slices.Clone(p.routes)
}

// SamplerStats exposes the input sampler counters.
func (p *Pager) SamplerStats() SamplerStats {
	return p.sampler.Stats()
}

func (p *Pager) syncSwipe() {
	st := p.engine.State()
	p.sampler.SetEnabled(p.swipeEnabled && st.PageWidth > 0 && st.RouteCount > 0)
}
