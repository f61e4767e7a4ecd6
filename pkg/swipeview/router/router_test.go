package router

import (
	"fmt"
	"testing"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/pager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routes(keys ...string) []pager.Route {
	out := make([]pager.Route, len(keys))
	for i, k := range keys {
		out[i] = pager.Route{Key: k}
	}
	return out
}

type change struct {
	index int
	key   string
}

func recorder(n *Navigator) *[]change {
	var changes []change
	n.OnIndexChange(func(index int, route pager.Route) {
		changes = append(changes, change{index, route.Key})
	})
	return &changes
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New(routes("a", "b", "a"), 0)
	require.ErrorIs(t, err, pager.ErrDuplicateRouteKey)
}

func TestNewClampsIndex(t *testing.T) {
	n, err := New(routes("a", "b"), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, n.Index())

	empty, err := New(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Index())
	_, ok := empty.Current()
	assert.False(t, ok)
	assert.False(t, empty.Next())
}

func TestJumpToOnlyReportsChanges(t *testing.T) {
	n, _ := New(routes("a", "b", "c"), 1)
	changes := recorder(n)

	assert.False(t, n.JumpTo("b"), "current key")
	assert.False(t, n.JumpTo("zzz"), "unknown key")
	assert.True(t, n.JumpTo("c"))

	assert.Equal(t, []change{{2, "c"}}, *changes)
	assert.Equal(t, pager.NavigationState{Index: 2, Routes: routes("a", "b", "c")}, n.State())
}

func TestNextPrevStopAtEdges(t *testing.T) {
	n, _ := New(routes("a", "b"), 0)

	assert.False(t, n.Prev())
	assert.True(t, n.Next())
	assert.False(t, n.Next())
	assert.Equal(t, 1, n.Index())
}

func TestBackFollowsHistory(t *testing.T) {
	n, _ := New(routes("a", "b", "c"), 0)
	n.JumpTo("c")
	n.JumpTo("b")
	require.Equal(t, 2, n.History().Len())

	assert.True(t, n.Back())
	assert.Equal(t, 2, n.Index())
	assert.True(t, n.Back())
	assert.Equal(t, 0, n.Index())
	assert.False(t, n.Back())
}

func TestSetRoutesKeepsCurrentKey(t *testing.T) {
	n, _ := New(routes("a", "b", "c"), 2)
	changes := recorder(n)

	require.NoError(t, n.SetRoutes(routes("c", "a")))

	assert.Equal(t, 0, n.Index())
	assert.Equal(t, []change{{0, "c"}}, *changes)
}

func TestSetRoutesClampsWhenCurrentRemoved(t *testing.T) {
	n, _ := New(routes("a", "b", "c"), 0)
	n.JumpTo("b")
	n.JumpTo("c")

	require.NoError(t, n.SetRoutes(routes("a", "b")))
	assert.Equal(t, 1, n.Index())

	entry := n.History().Peek()
	require.NotNil(t, entry)
	assert.Equal(t, StackEntry{Key: "b", Index: 1}, *entry)
}

func TestSetRoutesDropsRemovedHistory(t *testing.T) {
	n, _ := New(routes("a", "b", "c"), 0)
	n.JumpTo("b")
	n.JumpTo("c")

	require.NoError(t, n.SetRoutes(routes("c", "a")))
	assert.Equal(t, 1, n.History().Len())

	assert.True(t, n.Back())
	assert.Equal(t, "a", n.routes[n.Index()].Key)
}

func TestSetRoutesRejectsDuplicates(t *testing.T) {
	n, _ := New(routes("a", "b"), 1)
	err := n.SetRoutes(routes("x", "x"))

	require.ErrorIs(t, err, pager.ErrDuplicateRouteKey)
	assert.Equal(t, routes("a", "b"), n.State().Routes, "rejected routes are not applied")
}

func TestStateIsACopy(t *testing.T) {
	n, _ := New(routes("a", "b"), 0)
	st := n.State()
	st.Routes[0].Key = "mutated"

	assert.Equal(t, "a", n.State().Routes[0].Key)
}

func TestStack(t *testing.T) {
	s := NewStack()
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Peek())

	s.Push("a", 0)
	s.Push("b", 1)
	assert.Equal(t, "b", s.Peek().Key)
	assert.Equal(t, 2, s.Len())

	assert.Equal(t, "b", s.Pop().Key)
	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestStackCollapsesRepeatsAndCaps(t *testing.T) {
	s := NewStack()
	s.Push("a", 0)
	s.Push("a", 3)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, 3, s.Peek().Index)

	for i := 0; i < MaxHistory+5; i++ {
		s.Push(fmt.Sprintf("k%d", i), i)
	}
	assert.Equal(t, MaxHistory, s.Len())
	assert.Equal(t, fmt.Sprintf("k%d", MaxHistory+4), s.Peek().Key)
}
