// Package router owns the navigation state a pager renders.
//
// A pager never changes its own index. When a swipe settles on a new page it
// emits a commit carrying the route key, and the Navigator decides whether
// that key moves the index. Index changes are reported through a single
// callback so the owner can feed the new state back to the pager.
//
// # Basic Usage
//
//	nav, err := router.New(routes, 0)
//	if err != nil {
//	    return err
//	}
//
//	p, _ := pager.New(pager.Options{
//	    Navigation: nav.State(),
//	    Layout:     pager.Layout{Width: 320},
//	    OnCommit:   nav.HandleCommit,
//	})
//
//	nav.OnIndexChange(func(index int, route pager.Route) {
//	    p.SetNavigationState(nav.State())
//	})
//
//	// Programmatic paging animates the pager to the new index.
//	nav.JumpTo("settings")
//
// # History
//
// Every index change made through JumpTo, Go, Next or Prev pushes the page
// being left onto a Stack. Back pops it and returns to that page without
// recording a new entry. Entries whose key has disappeared after SetRoutes
// are skipped.
package router
