// Package pager implements the frame-driven core of a swipeable, paginated view.
//
// # Overview
//
// A pager shows routes 0..N-1 side by side. The user drags horizontally to move
// between neighbours; on release the pager decides whether to advance or snap
// back, then settles on the committed page with a damped spring. Every frame it
// publishes a normalised position that renderers use to interpolate per-page
// effects (indicator dots, parallax, fades).
//
// # Key concepts
//
//   - Sampler turns pointer events into GestureSamples. It is safe to feed from
//     input goroutines; samples are queued and drained at the start of a frame.
//   - Engine owns PagerState and moves it through Idle, Dragging and Settling.
//     It is not safe for concurrent use and must only be driven from the frame loop.
//   - StepSpring advances a SpringState by one frame. It is pure.
//   - Resolver picks the target page for a finished gesture. It is pure.
//   - Publisher converts pixel position into the normalised page position.
//   - Pager wires all of the above behind one Frame(dt) call.
//
// # Direction convention
//
// Translation and velocity are positive when the finger moves right. Moving right
// reveals the previous page, so a positive direction decrements the index and a
// leftward swipe advances to the next page.
//
// # Usage
//
//	p, err := pager.New(pager.Options{
//	    Navigation: pager.NavigationState{Routes: routes},
//	    Layout:     pager.Layout{Width: 640, Height: 480},
//	    OnCommit: func(c pager.Commit) {
//	        navigator.JumpTo(c.Key)
//	    },
//	})
//
//	// input goroutine or event poll
//	p.HandlePointer(pager.PointerEvent{Kind: pager.PointerDown, X: x, Time: t})
//
//	// once per frame
//	position := p.Frame(dt)
package pager
