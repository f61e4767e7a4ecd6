package swipeview

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/constants"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/internal"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/internal/logging"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/labels"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/pager"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/router"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/touch"
	"github.com/veandco/go-sdl2/sdl"
)

// SwipeViewSettings configures the swipe view component.
type SwipeViewSettings struct {
	// InitialIndex is the page shown first (default: 0)
	InitialIndex int
	// ConfirmButton selects the current page (default: VirtualButtonA)
	ConfirmButton constants.VirtualButton
	// BackButton goes back through paging history, then cancels (default: VirtualButtonB)
	BackButton constants.VirtualButton
	// DisableBackButton ignores the back button entirely
	DisableBackButton bool
	// DisableSwipe turns off drag gestures; the d-pad still pages
	DisableSwipe bool
	// HideIndicator hides the page dots
	HideIndicator bool
	// ContentPadding insets page images and the indicator
	ContentPadding int32
	// OnPageChange is called after every committed page change
	OnPageChange func(index int, page Page)
}

type swipeViewController struct {
	pages     []Page
	views     []internal.PageView
	nav       *router.Navigator
	pager     *pager.Pager
	labels    *labels.Localizer
	touch     *touch.Reader
	dir       internal.DirectionalInput
	cache     *internal.TextureCache
	padding   internal.Padding
	window    *internal.Window
	processor *internal.InputProcessor
	logger    *slog.Logger

	confirmButton constants.VirtualButton
	backButton    constants.VirtualButton
	disableBack   bool
	hideIndicator bool
	onPageChange  func(index int, page Page)

	lastTicks uint64
	action    SwipeViewAction
	confirmed bool
	cancelled bool
}

// SwipeView displays pages side by side. The user pages with swipes, the
// d-pad or the shoulder buttons, and exits with the confirm button.
// Returns ErrCancelled if the user backs out.
func SwipeView(pages []Page, settings SwipeViewSettings) (*SwipeViewResult, error) {
	if len(pages) == 0 {
		return nil, ErrCancelled
	}

	window := internal.GetWindow()
	if window == nil {
		return nil, ErrNotInitialized
	}

	c, err := newSwipeViewController(window, pages, settings)
	if err != nil {
		return nil, err
	}
	defer c.close()

	for {
		if !c.handleEvents() {
			break
		}
		c.frame()
		c.render()
		window.Present()
	}

	if c.cancelled {
		return nil, ErrCancelled
	}

	index := c.nav.Index()
	return &SwipeViewResult{
		Index:  index,
		Page:   c.pages[index],
		Action: c.action,
	}, nil
}

func newSwipeViewController(window *internal.Window, pages []Page, settings SwipeViewSettings) (*swipeViewController, error) {
	cfg := activeConfig

	nav, err := router.New(routesOf(pages), settings.InitialIndex)
	if err != nil {
		return nil, fmt.Errorf("swipe view pages: %w", err)
	}

	localizer, err := labels.New(cfg.Labels.Language)
	if err != nil {
		return nil, err
	}
	if cfg.Labels.MessagesDir != "" {
		if err := localizer.LoadDir(cfg.Labels.MessagesDir); err != nil {
			return nil, err
		}
	}

	c := &swipeViewController{
		pages:         pages,
		views:         viewsOf(pages),
		nav:           nav,
		labels:        localizer,
		dir:           internal.NewDirectionalInput(),
		cache:         internal.NewTextureCache(),
		padding:       internal.UniformPadding(settings.ContentPadding),
		window:        window,
		processor:     internal.GetInputProcessor(),
		logger:        logging.GetLogger(),
		confirmButton: settings.ConfirmButton,
		backButton:    settings.BackButton,
		disableBack:   settings.DisableBackButton,
		hideIndicator: settings.HideIndicator,
		onPageChange:  settings.OnPageChange,
		lastTicks:     sdl.GetTicks64(),
	}

	if c.confirmButton == constants.VirtualButtonUnassigned {
		c.confirmButton = constants.VirtualButtonA
	}
	if c.backButton == constants.VirtualButtonUnassigned {
		c.backButton = constants.VirtualButtonB
	}

	w, h := window.Size()
	opts := cfg.PagerOptions(nav.State())
	opts.Layout = pager.Layout{Width: float64(w), Height: float64(h)}
	opts.DisableSwipe = opts.DisableSwipe || settings.DisableSwipe
	opts.Logger = logging.GetInternalLogger()
	opts.OnCommit = nav.HandleCommit

	p, err := pager.New(opts)
	if err != nil {
		return nil, err
	}
	c.pager = p
	nav.OnIndexChange(c.indexChanged)

	if cfg.Input.TouchDevice != "" {
		reader, err := touch.Open(cfg.Input.TouchDevice, float64(w), cfg.Input.GrabTouch)
		if err != nil {
			c.logger.Warn("Touch device unavailable; using SDL input only", "error", NewInfrastructureError("open_touch", err))
		} else {
			c.touch = reader
			reader.Start(p.HandlePointer)
		}
	}

	c.updateTitle()
	return c, nil
}

// indexChanged runs whenever the navigator moves, whether from a pager commit
// or from a button press.
func (c *swipeViewController) indexChanged(index int, route pager.Route) {
	c.pager.SetIndex(index)
	c.updateTitle()
	c.logger.Debug("Page changed", "index", index, "key", route.Key, "label", c.labels.AccessibilityLabel(route))
	if c.onPageChange != nil {
		c.onPageChange(index, c.pages[index])
	}
}

func (c *swipeViewController) updateTitle() {
	route, ok := c.nav.Current()
	if !ok {
		return
	}
	c.window.SetTitle(fmt.Sprintf("%s (%s)",
		c.labels.Title(route),
		c.labels.Position(c.nav.Index(), c.nav.Len()),
	))
}

func (c *swipeViewController) handleEvents() bool {
	w, h := c.window.Size()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			c.cancelled = true
			return false

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w, h = c.window.Size()
				c.pager.SetLayout(pager.Layout{Width: float64(w), Height: float64(h)})
				if c.touch != nil {
					c.touch.SetWidth(float64(w))
				}
				continue
			}
			if pe, ok := c.processor.PointerFromSDL(event, w, h); ok {
				c.pager.HandlePointer(pe)
			}

		case *sdl.MouseButtonEvent, *sdl.MouseMotionEvent, *sdl.TouchFingerEvent:
			// The evdev reader stamps events on its own clock; mixing sources
			// would split one gesture across two timelines.
			if c.touch != nil {
				continue
			}
			if pe, ok := c.processor.PointerFromSDL(event, w, h); ok {
				c.pager.HandlePointer(pe)
			}

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent:
			inputEvent := c.processor.ProcessSDLEvent(event)
			if inputEvent == nil {
				continue
			}

			if step, ok := c.dir.SetHeld(inputEvent.Button, inputEvent.Pressed); ok {
				c.step(step)
				continue
			}
			if !inputEvent.Pressed {
				continue
			}

			switch inputEvent.Button {
			case c.confirmButton:
				c.action = SwipeViewActionSelected
				c.confirmed = true
				return false
			case constants.VirtualButtonStart:
				c.action = SwipeViewActionConfirmed
				c.confirmed = true
				return false
			case constants.VirtualButtonMenu:
				c.action = SwipeViewActionMenu
				c.confirmed = true
				return false
			case c.backButton:
				if c.disableBack {
					continue
				}
				if !c.nav.Back() {
					c.cancelled = true
					return false
				}
			}
		}
	}

	c.step(c.dir.Update())
	return true
}

func (c *swipeViewController) step(step internal.PageStep) {
	switch step {
	case internal.StepNext:
		c.nav.Next()
	case internal.StepPrevious:
		c.nav.Prev()
	}
}

func (c *swipeViewController) frame() {
	now := sdl.GetTicks64()
	dt := time.Duration(now-c.lastTicks) * time.Millisecond
	c.lastTicks = now
	c.pager.Frame(dt)
}

func (c *swipeViewController) render() {
	snapshot := c.pager.Snapshot()

	c.window.RenderBackground()
	c.window.RenderPages(c.views, snapshot.Translate, c.cache, c.padding)
	if !c.hideIndicator {
		if err := c.window.RenderIndicator(len(c.pages), snapshot.Position, c.cache, c.padding); err != nil {
			c.logger.Error("Failed to render page indicator", "error", err)
		}
	}
}

func (c *swipeViewController) close() {
	if c.touch != nil {
		if err := c.touch.Close(); err != nil {
			c.logger.Warn("Failed to close touch device", "error", err)
		}
	}
	c.cache.Destroy()
}
