package internal

import (
	"time"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/constants"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/internal/logging"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/pager"
	"github.com/veandco/go-sdl2/sdl"
)

// InputEvent is a button press or release mapped to a VirtualButton.
type InputEvent struct {
	Button  constants.VirtualButton
	Pressed bool
}

// InputProcessor maps SDL keyboard and controller events to virtual buttons
// and SDL mouse and finger events to pager pointer events.
type InputProcessor struct {
	keys        map[sdl.Keycode]constants.VirtualButton
	buttons     map[sdl.GameControllerButton]constants.VirtualButton
	controllers []*sdl.GameController

	finger     sdl.FingerID
	fingerDown bool
	mouseDown  bool
}

var processor *InputProcessor

// InitInputProcessor creates the processor and opens attached controllers.
func InitInputProcessor() {
	processor = &InputProcessor{
		keys: map[sdl.Keycode]constants.VirtualButton{
			sdl.K_UP:        constants.VirtualButtonUp,
			sdl.K_DOWN:      constants.VirtualButtonDown,
			sdl.K_LEFT:      constants.VirtualButtonLeft,
			sdl.K_RIGHT:     constants.VirtualButtonRight,
			sdl.K_RETURN:    constants.VirtualButtonA,
			sdl.K_SPACE:     constants.VirtualButtonA,
			sdl.K_ESCAPE:    constants.VirtualButtonB,
			sdl.K_BACKSPACE: constants.VirtualButtonB,
			sdl.K_PAGEUP:    constants.VirtualButtonL1,
			sdl.K_PAGEDOWN:  constants.VirtualButtonR1,
			sdl.K_HOME:      constants.VirtualButtonStart,
			sdl.K_m:         constants.VirtualButtonMenu,
		},
		buttons: map[sdl.GameControllerButton]constants.VirtualButton{
			sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
			sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
			sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
			sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
			sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonA,
			sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonB,
			sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
			sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
			sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
			sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
		},
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			processor.controllers = append(processor.controllers, c)
			logging.GetInternalLogger().Debug("Opened controller", "name", c.Name())
		}
	}
}

// GetInputProcessor returns the processor created by InitInputProcessor.
func GetInputProcessor() *InputProcessor {
	return processor
}

// CloseAllControllers closes every controller opened at init.
func CloseAllControllers() {
	if processor == nil {
		return
	}
	for _, c := range processor.controllers {
		c.Close()
	}
	processor.controllers = nil
}

// ProcessSDLEvent maps a keyboard or controller event. It returns nil for
// unmapped input and key repeats.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *InputEvent {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		if button, ok := p.keys[e.Keysym.Sym]; ok {
			return &InputEvent{Button: button, Pressed: e.Type == sdl.KEYDOWN}
		}
	case *sdl.ControllerButtonEvent:
		if button, ok := p.buttons[sdl.GameControllerButton(e.Button)]; ok {
			return &InputEvent{Button: button, Pressed: e.State == sdl.PRESSED}
		}
	}
	return nil
}

// PointerFromSDL converts mouse and touch events into a pointer event in
// window pixels. Only the left mouse button and the first finger are tracked.
func (p *InputProcessor) PointerFromSDL(event sdl.Event, width, height int32) (pager.PointerEvent, bool) {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return pager.PointerEvent{}, false
		}
		kind := pager.PointerUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			kind = pager.PointerDown
		}
		p.mouseDown = kind == pager.PointerDown
		return pager.PointerEvent{Kind: kind, X: float64(e.X), Y: float64(e.Y), Time: ticks(e.Timestamp)}, true

	case *sdl.MouseMotionEvent:
		if !p.mouseDown || e.State&sdl.ButtonLMask() == 0 {
			return pager.PointerEvent{}, false
		}
		return pager.PointerEvent{Kind: pager.PointerMove, X: float64(e.X), Y: float64(e.Y), Time: ticks(e.Timestamp)}, true

	case *sdl.TouchFingerEvent:
		x, y := float64(e.X)*float64(width), float64(e.Y)*float64(height)
		at := ticks(e.Timestamp)
		switch e.Type {
		case sdl.FINGERDOWN:
			if p.fingerDown {
				return pager.PointerEvent{}, false
			}
			p.finger, p.fingerDown = e.FingerID, true
			return pager.PointerEvent{Kind: pager.PointerDown, X: x, Y: y, Time: at}, true
		case sdl.FINGERMOTION:
			if p.fingerDown && e.FingerID == p.finger {
				return pager.PointerEvent{Kind: pager.PointerMove, X: x, Y: y, Time: at}, true
			}
		case sdl.FINGERUP:
			if p.fingerDown && e.FingerID == p.finger {
				p.fingerDown = false
				return pager.PointerEvent{Kind: pager.PointerUp, X: x, Y: y, Time: at}, true
			}
		}

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_FOCUS_LOST && (p.mouseDown || p.fingerDown) {
			p.mouseDown, p.fingerDown = false, false
			return pager.PointerEvent{Kind: pager.PointerCancel, Time: ticks(e.Timestamp)}, true
		}
	}
	return pager.PointerEvent{}, false
}

func ticks(ms uint32) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
