package pager

import "math"

// Snapshot is what the publisher hands to subscribers once per frame.
type Snapshot struct {
	// Position is the normalised page position in [0, RouteCount-1].
	Position float64
	// Translate is the clamped pixel translation of the page strip.
	Translate float64
	State     State
}

// Publisher converts the engine's pixel position into the normalised page
// position consumed by renderers.
type Publisher struct {
	subscribers []func(Snapshot)
	last        Snapshot
}

// Subscribe registers fn to receive every published frame.
func (p *Publisher) Subscribe(fn func(Snapshot)) {
	if fn != nil {
		p.subscribers = append(p.subscribers, fn)
	}
}

// Last returns the most recently published frame.
func (p *Publisher) Last() Snapshot {
	return p.last
}

// Publish computes the frame for st and notifies subscribers.
func (p *Publisher) Publish(st PagerState, state State) Snapshot {
	translate := ClampTranslate(st.Position, st.PageWidth, st.RouteCount)
	frame := Snapshot{
		Position:  NormalizedPosition(st.Position, st.PageWidth, st.RouteCount),
		Translate: translate,
		State:     state,
	}
	p.last = frame
	for _, fn := range p.subscribers {
		fn(frame)
	}
	return frame
}

// ClampTranslate limits a pixel position to the page strip [-(n-1)*w, 0].
func ClampTranslate(position, pageWidth float64, routeCount int) float64 {
	if !(pageWidth > 0) || routeCount <= 1 || !isFinite(position) {
		return 0
	}
	maxTranslate := pageWidth * float64(routeCount-1)
	return math.Min(0, math.Max(-maxTranslate, position))
}

// NormalizedPosition returns |ClampTranslate(position)| / pageWidth, or 0 when
// the width is unknown.
func NormalizedPosition(position, pageWidth float64, routeCount int) float64 {
	if !(pageWidth > 0) || math.IsInf(pageWidth, 0) {
		return 0
	}
	return math.Abs(ClampTranslate(position, pageWidth, routeCount)) / pageWidth
}
