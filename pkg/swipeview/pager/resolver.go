package pager

import "math"

const (
	DefaultDistanceDivisor   = 1.75
	DefaultVelocityThreshold = 1200.0 // px/s
)

// Resolver decides which page a released gesture lands on.
type Resolver struct {
	// DistanceDivisor sets the distance threshold to PageWidth/DistanceDivisor.
	DistanceDivisor float64
	// VelocityThreshold is the fling speed in px/s above which the gesture
	// advances regardless of distance.
	VelocityThreshold float64
}

// DefaultResolver uses a distance threshold of width/1.75 and 1200 px/s.
func DefaultResolver() Resolver {
	return Resolver{
		DistanceDivisor:   DefaultDistanceDivisor,
		VelocityThreshold: DefaultVelocityThreshold,
	}
}

// DistanceThreshold returns the translation needed to advance a page.
func (r Resolver) DistanceThreshold(pageWidth float64) float64 {
	if r.DistanceDivisor <= 0 {
		return pageWidth / DefaultDistanceDivisor
	}
	return pageWidth / r.DistanceDivisor
}

// Resolve returns the target index for a gesture released with translation
// and velocity while the pager sat on current.
//
// Distance is checked before velocity: when the drag crossed the distance
// threshold its sign wins even if the release velocity points the other way.
func (r Resolver) Resolve(current int, translation, velocity, pageWidth float64, routeCount int) int {
	if routeCount <= 1 {
		return 0
	}
	current = clampIndex(current, routeCount)

	distanceThreshold := r.DistanceThreshold(pageWidth)
	velocityThreshold := r.VelocityThreshold
	if velocityThreshold <= 0 {
		velocityThreshold = DefaultVelocityThreshold
	}

	var direction float64
	switch {
	case math.Abs(translation) > distanceThreshold:
		direction = sign(translation)
	case math.Abs(velocity) > velocityThreshold:
		direction = sign(velocity)
	default:
		return current
	}

	target := float64(current) - direction
	target = math.Min(math.Max(0, target), float64(routeCount-1))
	return int(math.Round(target))
}

// ResolveIndex is Resolve with the default thresholds.
func ResolveIndex(current int, translation, velocity, pageWidth float64, routeCount int) int {
	return DefaultResolver().Resolve(current, translation, velocity, pageWidth, routeCount)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func clampIndex(index, routeCount int) int {
	if routeCount <= 0 || index < 0 {
		return 0
	}
	if index > routeCount-1 {
		return routeCount - 1
	}
	return index
}
