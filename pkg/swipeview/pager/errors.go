package pager

import (
	"errors"
	"fmt"
)

// ErrDuplicateRouteKey is returned when two routes share a key. Commit
// notifications carry keys, so duplicates make them ambiguous.
var ErrDuplicateRouteKey = errors.New("duplicate route key")

// ValidateRoutes returns ErrDuplicateRouteKey for the first repeated key.
func ValidateRoutes(routes []Route) error {
	seen := make(map[string]int, len(routes))
	for i, route := range routes {
		if other, exists := seen[route.Key]; exists {
			return fmt.Errorf("%w: %q at indexes %d and %d", ErrDuplicateRouteKey, route.Key, other, i)
		}
		seen[route.Key] = i
	}
	return nil
}

// assertRoutes fails fast in debug builds and reports the error otherwise.
func assertRoutes(routes []Route) error {
	err := ValidateRoutes(routes)
	if err != nil && debugAssertions {
		panic(err)
	}
	return err
}
