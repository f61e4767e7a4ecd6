package swipeview

import (
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/internal"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/pager"
)

// Page is one page of a SwipeView.
type Page struct {
	Route     pager.Route // Key must be unique; Title is shown when the page is current
	ImagePath string      // Optional image drawn centred on the page
	ColorHex  uint32      // Page fill as 0xRRGGBB; 0 uses the theme's page colours
	Metadata  any         // Application-specific data returned with the result
}

func routesOf(pages []Page) []pager.Route {
	routes := make([]pager.Route, len(pages))
	for i, p := range pages {
		routes[i] = p.Route
	}
	return routes
}

func viewsOf(pages []Page) []internal.PageView {
	views := make([]internal.PageView, len(pages))
	for i, p := range pages {
		views[i] = internal.PageView{Key: p.Route.Key, ImagePath: p.ImagePath}
		if p.ColorHex != 0 {
			c := internal.HexToColor(p.ColorHex)
			views[i].Color = &c
		}
	}
	return views
}
