// Package touch reads a Linux multitouch device directly through evdev and
// turns the primary contact into pager pointer events. It is used on handhelds
// where SDL does not expose the touch panel.
package touch

import (
	"errors"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/pager"
)

// ErrUnsupported is returned by Open on platforms without evdev.
var ErrUnsupported = errors.New("touch: evdev input is only supported on linux")

// Sink receives decoded pointer events. It is called from the reader goroutine.
type Sink func(pager.PointerEvent)
