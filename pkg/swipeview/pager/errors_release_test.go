//go:build !swipeviewdebug

package pager

import (
	"testing"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuplicateKeysAreReportedNotFatal(t *testing.T) {
	dupes := []Route{{Key: "a"}, {Key: "a"}}

	e, err := NewEngine(EngineConfig{Logger: logging.Discard()}, NavigationState{Routes: dupes}, Layout{Width: 300})
	require.NoError(t, err)
	assert.Equal(t, 2, e.State().RouteCount)

	err = e.SetRoutes(append(dupes, Route{Key: "b"}))
	require.ErrorIs(t, err, ErrDuplicateRouteKey)
	assert.Equal(t, 3, e.State().RouteCount, "routes are still applied")
}
