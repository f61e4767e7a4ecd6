package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRoutes(t *testing.T) {
	require.NoError(t, ValidateRoutes(nil))
	require.NoError(t, ValidateRoutes(threeRoutes()))

	err := ValidateRoutes([]Route{{Key: "a"}, {Key: "b"}, {Key: "a"}})
	require.ErrorIs(t, err, ErrDuplicateRouteKey)
	assert.Contains(t, err.Error(), `"a" at indexes 0 and 2`)
}
