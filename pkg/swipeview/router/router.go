package router

import (
	"slices"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/pager"
)

// IndexChangeFunc is called after the Navigator's index changes.
type IndexChangeFunc func(index int, route pager.Route)

// Navigator holds the authoritative NavigationState for a pager.
// It is not safe for concurrent use; drive it from the frame loop.
type Navigator struct {
	routes   []pager.Route
	index    int
	onChange IndexChangeFunc
	stack    *Stack
}

// New creates a Navigator on index, clamped into range. Duplicate route keys
// are rejected with pager.ErrDuplicateRouteKey.
func New(routes []pager.Route, index int) (*Navigator, error) {
	if err := Validate(routes); err != nil {
		return nil, err
	}
	return &Navigator{
		routes: slices.Clone(routes),
		index:  clamp(index, len(routes)),
		stack:  NewStack(),
	}, nil
}

// Validate reports the first duplicate route key.
func Validate(routes []pager.Route) error {
	return pager.ValidateRoutes(routes)
}

// OnIndexChange sets the callback invoked after every index change.
func (n *Navigator) OnIndexChange(fn IndexChangeFunc) *Navigator {
	n.onChange = fn
	return n
}

// State returns a copy of the navigation state to hand to a pager.
func (n *Navigator) State() pager.NavigationState {
	return pager.NavigationState{
		Index:  n.index,
		Routes: slices.Clone(n.routes),
	}
}

// Index returns the current index.
func (n *Navigator) Index() int {
	return n.index
}

// Len returns the number of routes.
func (n *Navigator) Len() int {
	return len(n.routes)
}

// Current returns the route at the current index.
func (n *Navigator) Current() (pager.Route, bool) {
	if len(n.routes) == 0 {
		return pager.Route{}, false
	}
	return n.routes[n.index], true
}

// IndexOf returns the index of key, or -1.
func (n *Navigator) IndexOf(key string) int {
	return slices.IndexFunc(n.routes, func(r pager.Route) bool {
		return r.Key == key
	})
}

// JumpTo moves to the route with key. It reports whether the index changed;
// unknown keys and the current key are no-ops.
func (n *Navigator) JumpTo(key string) bool {
	index := n.IndexOf(key)
	if index < 0 {
		return false
	}
	return n.Go(index)
}

// Go moves to index, clamped into range, recording the page being left.
func (n *Navigator) Go(index int) bool {
	if len(n.routes) == 0 {
		return false
	}
	index = clamp(index, len(n.routes))
	if index == n.index {
		return false
	}
	n.stack.Push(n.routes[n.index].Key, n.index)
	n.set(index)
	return true
}

// Next moves one page forward.
func (n *Navigator) Next() bool {
	return n.Go(n.index + 1)
}

// Prev moves one page back.
func (n *Navigator) Prev() bool {
	return n.Go(n.index - 1)
}

// Back returns to the most recently left page that still exists.
func (n *Navigator) Back() bool {
	for entry := n.stack.Pop(); entry != nil; entry = n.stack.Pop() {
		index := n.IndexOf(entry.Key)
		if index < 0 || index == n.index {
			continue
		}
		n.set(index)
		return true
	}
	return false
}

// HandleCommit applies a pager commit. Its signature matches
// pager.Options.OnCommit.
func (n *Navigator) HandleCommit(c pager.Commit) {
	n.JumpTo(c.Key)
}

// SetRoutes replaces the routes. The current route is kept when its key is
// still present; otherwise the index is clamped. History entries for removed
// keys are dropped.
func (n *Navigator) SetRoutes(routes []pager.Route) error {
	if err := Validate(routes); err != nil {
		return err
	}

	var currentKey string
	if route, ok := n.Current(); ok {
		currentKey = route.Key
	}

	n.routes = slices.Clone(routes)
	n.stack.retain(func(e *StackEntry) bool {
		e.Index = n.IndexOf(e.Key)
		return e.Index >= 0
	})

	index := n.IndexOf(currentKey)
	if index < 0 {
		index = clamp(n.index, len(n.routes))
	}
	if index != n.index {
		n.set(index)
	}
	return nil
}

// History returns the back-navigation stack.
func (n *Navigator) History() *Stack {
	return n.stack
}

func (n *Navigator) set(index int) {
	n.index = index
	if n.onChange != nil && len(n.routes) > 0 {
		n.onChange(index, n.routes[index])
	}
}

func clamp(index, n int) int {
	if n <= 0 || index < 0 {
		return 0
	}
	return min(index, n-1)
}
