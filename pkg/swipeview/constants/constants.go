// Package constants defines shared constants, types, and environment variable
// names used throughout swipeview.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the config layer and the SDL host.
const (
	EnvironmentEnvVar   = "ENVIRONMENT"
	WindowWidthEnvVar   = "WINDOW_WIDTH"
	WindowHeightEnvVar  = "WINDOW_HEIGHT"
	LogLevelEnvVar      = "SWIPEVIEW_LOG_LEVEL"
	TouchDeviceEnvVar   = "SWIPEVIEW_TOUCH_DEVICE"
	ConfigPathEnvVar    = "SWIPEVIEW_CONFIG"
	DefaultWindowTitle  = "swipeview"
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Default timing constants.
const (
	DefaultInputDelay     = 20 * time.Millisecond  // Debounce delay between input events
	DefaultRepeatDelay    = 300 * time.Millisecond // Hold time before a d-pad press repeats
	DefaultRepeatInterval = 150 * time.Millisecond // Interval between repeated page steps
	DefaultFrameInterval  = 16 * time.Millisecond  // Target frame period of the host loop
)
