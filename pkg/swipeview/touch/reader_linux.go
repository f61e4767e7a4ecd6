//go:build linux

package touch

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/internal/logging"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// Reader pumps events from one evdev device into a Sink on its own goroutine.
type Reader struct {
	dev     *evdev.InputDevice
	grabbed bool
	logger  *slog.Logger

	mu      sync.Mutex
	decoder *Decoder

	running *atomic.Bool
	wg      sync.WaitGroup
}

// Open opens path and maps its X axis onto width. With grab set, other
// readers of the device (including SDL) stop receiving its events.
func Open(path string, width float64, grab bool) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening touch device %s: %w", path, err)
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("reading axes of %s: %w", path, err)
	}
	axis, ok := infos[evdev.ABS_MT_POSITION_X]
	if !ok {
		axis, ok = infos[evdev.ABS_X]
	}
	if !ok {
		dev.Close()
		return nil, fmt.Errorf("touch device %s has no X axis", path)
	}

	if grab {
		if err := dev.Grab(); err != nil {
			dev.Close()
			return nil, fmt.Errorf("grabbing touch device %s: %w", path, err)
		}
	}

	logger := logging.GetInternalLogger()
	name, _ := dev.Name()
	logger.Debug("touch device opened", "path", path, "name", name,
		"min", axis.Minimum, "max", axis.Maximum, "grab", grab)

	return &Reader{
		dev:     dev,
		grabbed: grab,
		logger:  logger,
		decoder: NewDecoder(axis, width),
		running: atomic.NewBool(false),
	}, nil
}

// Start begins delivering events to sink. It returns immediately.
func (r *Reader) Start(sink Sink) {
	if !r.running.CompareAndSwap(false, true) {
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		for r.running.Load() {
			ev, err := r.dev.ReadOne()
			if err != nil {
				if r.running.Load() {
					r.logger.Error("touch read failed", "error", err)
				}
				return
			}

			r.mu.Lock()
			pe, ok := r.decoder.Feed(ev)
			r.mu.Unlock()
			if ok {
				sink(pe)
			}
		}
	}()
}

// SetWidth changes the pixel width the X axis is mapped to.
func (r *Reader) SetWidth(width float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoder.SetWidth(width)
}

// Close stops the reader goroutine and releases the device.
func (r *Reader) Close() error {
	r.running.Store(false)
	if r.grabbed {
		_ = r.dev.Ungrab()
	}
	err := r.dev.Close()
	r.wg.Wait()
	return err
}
