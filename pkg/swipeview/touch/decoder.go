//go:build linux

package touch

import (
	"time"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/pager"
	"github.com/holoplot/go-evdev"
)

// Decoder folds raw evdev events into pointer events for the primary contact
// (slot 0). One event is produced per SYN_REPORT at most.
type Decoder struct {
	min, max int32
	width    float64

	slot     int32
	touching bool
	down     bool
	moved    bool
	x        float64
}

// NewDecoder maps the axis range of info onto [0, width].
func NewDecoder(info evdev.AbsInfo, width float64) *Decoder {
	return &Decoder{
		min:   info.Minimum,
		max:   info.Maximum,
		width: width,
	}
}

// SetWidth changes the output range for subsequent events.
func (d *Decoder) SetWidth(width float64) {
	d.width = width
}

// Feed consumes one event and returns a pointer event when a report completes
// a press, move or release.
func (d *Decoder) Feed(ev *evdev.InputEvent) (pager.PointerEvent, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_MT_SLOT:
			d.slot = ev.Value
		case evdev.ABS_MT_TRACKING_ID:
			if d.slot == 0 {
				d.touching = ev.Value >= 0
			}
		case evdev.ABS_MT_POSITION_X:
			if d.slot == 0 {
				d.x = d.scale(ev.Value)
				d.moved = true
			}
		case evdev.ABS_X:
			d.x = d.scale(ev.Value)
			d.moved = true
		}

	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			d.touching = ev.Value != 0
		}

	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT {
			return d.report(timestamp(ev))
		}
	}
	return pager.PointerEvent{}, false
}

func (d *Decoder) report(at time.Duration) (pager.PointerEvent, bool) {
	moved := d.moved
	d.moved = false

	switch {
	case d.touching && !d.down:
		d.down = true
		return pager.PointerEvent{Kind: pager.PointerDown, X: d.x, Time: at}, true
	case !d.touching && d.down:
		d.down = false
		return pager.PointerEvent{Kind: pager.PointerUp, X: d.x, Time: at}, true
	case d.down && moved:
		return pager.PointerEvent{Kind: pager.PointerMove, X: d.x, Time: at}, true
	}
	return pager.PointerEvent{}, false
}

func (d *Decoder) scale(value int32) float64 {
	span := float64(d.max - d.min)
	if span <= 0 {
		return float64(value)
	}
	return float64(value-d.min) / span * d.width
}

func timestamp(ev *evdev.InputEvent) time.Duration {
	return time.Duration(int64(ev.Time.Sec))*time.Second +
		time.Duration(int64(ev.Time.Usec))*time.Microsecond
}
