package pager

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func threeRoutes() []Route {
	return []Route{
		{Key: "a", Title: "Alpha"},
		{Key: "b", Title: "Bravo"},
		{Key: "c", Title: "Charlie"},
	}
}

func active(translation float64) GestureSample {
	return GestureSample{Translation: translation, Phase: PhaseActive}
}

func ended(translation, velocity float64) GestureSample {
	return GestureSample{Translation: translation, Velocity: velocity, Phase: PhaseEnded}
}

type EngineSuite struct {
	suite.Suite

	engine  *Engine
	commits []Commit
	echo    bool
}

func (s *EngineSuite) SetupTest() {
	s.commits = nil
	s.echo = false
	s.engine = s.newEngine(EngineConfig{}, NavigationState{Index: 1, Routes: threeRoutes()}, Layout{Width: 300})
}

func (s *EngineSuite) newEngine(cfg EngineConfig, nav NavigationState, layout Layout) *Engine {
	cfg.Logger = logging.Discard()
	cfg.OnCommit = func(c Commit) {
		s.commits = append(s.commits, c)
		if s.echo {
			s.engine.SetIndex(c.Index)
		}
	}
	e, err := NewEngine(cfg, nav, layout)
	s.Require().NoError(err)
	return e
}

// settle steps until the engine is idle and returns the number of frames taken.
func (s *EngineSuite) settle() int {
	for i := 0; i < 1000; i++ {
		if s.engine.Mode() == StateIdle {
			return i
		}
		s.engine.Step(frame)
	}
	s.FailNow("engine never settled")
	return 0
}

func (s *EngineSuite) TestStartsAtRestOnIndex() {
	st := s.engine.State()
	s.Equal(1, st.CommittedIndex)
	s.Equal(1, st.PendingIndex)
	s.Equal(-300.0, st.Position)
	s.Equal(3, st.RouteCount)
	s.Equal(StateIdle, s.engine.Mode())
}

func (s *EngineSuite) TestDistanceSwipeCommitsNextPage() {
	s.engine.Apply(active(-200))
	s.Equal(StateDragging, s.engine.Mode())
	s.Equal(-500.0, s.engine.State().Position)

	s.engine.Apply(ended(-200, 0))
	s.Equal(StateSettling, s.engine.Mode())
	s.Equal(2, s.engine.State().PendingIndex)
	s.Equal(1, s.engine.State().CommittedIndex, "commit waits for the settle")
	s.Empty(s.commits)

	s.settle()

	s.Require().Len(s.commits, 1)
	s.Equal(Commit{Key: "c", Index: 2, Previous: 1, Reason: CommitGesture}, s.commits[0])
	s.Equal(2, s.engine.State().CommittedIndex)
	s.Equal(-600.0, s.engine.State().Position)
}

func (s *EngineSuite) TestRightwardFlingCommitsPreviousPage() {
	s.engine.Apply(active(-50))
	s.engine.Apply(ended(-50, 1500))
	s.Equal(0, s.engine.State().PendingIndex)

	s.settle()

	s.Require().Len(s.commits, 1)
	s.Equal("a", s.commits[0].Key)
	s.Equal(0.0, s.engine.State().Position)
}

func (s *EngineSuite) TestShortSwipeSnapsBackWithoutCommit() {
	s.engine.Apply(active(-100))
	s.engine.Apply(ended(-100, 500))
	s.Equal(1, s.engine.State().PendingIndex)

	s.settle()

	s.Empty(s.commits)
	s.Equal(-300.0, s.engine.State().Position)
}

func (s *EngineSuite) TestCancelledSettlesLikeEnded() {
	s.engine.Apply(active(-200))
	s.engine.Apply(GestureSample{Translation: -200, Phase: PhaseCancelled})
	s.settle()

	s.Require().Len(s.commits, 1)
	s.Equal(2, s.commits[0].Index)
}

func (s *EngineSuite) TestOffsetCapturedOncePerDrag() {
	s.engine.Apply(active(-20))
	s.engine.Apply(active(-40))

	st := s.engine.State()
	s.Equal(-300.0, st.Offset)
	s.Equal(-340.0, st.Position)
}

func (s *EngineSuite) TestEchoOfCommitIsNoop() {
	s.echo = true
	s.engine.Apply(active(-200))
	s.engine.Apply(ended(-200, 0))
	s.settle()

	s.Equal(StateIdle, s.engine.Mode())
	s.engine.SetIndex(2)
	s.Equal(StateIdle, s.engine.Mode())
	s.Len(s.commits, 1)
}

func (s *EngineSuite) TestRepeatedIndexIsNoop() {
	s.engine.SetIndex(1)
	s.Equal(StateIdle, s.engine.Mode())
	s.Empty(s.commits)
}

func (s *EngineSuite) TestProgrammaticChangeCommitsOnce() {
	s.engine.SetIndex(2)
	s.Equal(StateSettling, s.engine.Mode())
	s.Equal(-600.0, s.engine.ToValue())

	s.settle()

	s.Require().Len(s.commits, 1)
	s.Equal(Commit{Key: "c", Index: 2, Previous: 1, Reason: CommitProgrammatic}, s.commits[0])
}

func (s *EngineSuite) TestRetargetMidSettle() {
	s.engine.SetIndex(2)
	for i := 0; i < 3; i++ {
		s.engine.Step(frame)
	}
	s.Equal(StateSettling, s.engine.Mode())

	s.engine.SetIndex(0)
	s.Equal(0, s.engine.State().PendingIndex)
	s.Equal(0.0, s.engine.ToValue())
	s.Equal(1, s.engine.State().CommittedIndex)

	s.settle()

	s.Require().Len(s.commits, 1, "only the final target commits")
	s.Equal(0, s.commits[0].Index)
	s.Equal(1, s.commits[0].Previous)
}

func (s *EngineSuite) TestOutOfRangeIndexIsClamped() {
	s.engine.SetIndex(10)
	s.Equal(2, s.engine.State().PendingIndex)

	s.engine.SetIndex(-4)
	s.Equal(0, s.engine.State().PendingIndex)
}

func (s *EngineSuite) TestRouteShrinkMidSettleClampsTarget() {
	s.engine.SetIndex(2)
	s.engine.Step(frame)
	s.engine.Step(frame)

	s.Require().NoError(s.engine.SetRoutes(threeRoutes()[:2]))
	s.Equal(1, s.engine.State().PendingIndex)
	s.Equal(-300.0, s.engine.ToValue())

	s.settle()

	s.Empty(s.commits, "settled back on the committed page")
	s.Equal(1, s.engine.State().CommittedIndex)
	s.Equal(-300.0, s.engine.State().Position)
}

func (s *EngineSuite) TestRouteShrinkWhileIdleMovesToLastPage() {
	s.engine.SetIndex(2)
	s.settle()
	s.commits = nil

	s.Require().NoError(s.engine.SetRoutes(threeRoutes()[:2]))
	s.Equal(1, s.engine.State().CommittedIndex)
	s.Equal(StateSettling, s.engine.Mode())

	s.settle()
	s.Equal(-300.0, s.engine.State().Position)
	s.Empty(s.commits, "the clamp itself is not a commit")
}

func (s *EngineSuite) TestOwnerIndexBeforeRoutesIsFollowed() {
	s.echo = true
	s.engine = s.newEngine(EngineConfig{}, NavigationState{Index: 2}, Layout{Width: 300})
	s.Equal(0, s.engine.State().CommittedIndex)

	s.Require().NoError(s.engine.SetRoutes(threeRoutes()))
	s.engine.SetIndex(2)
	s.Equal(StateSettling, s.engine.Mode())
	s.settle()

	s.Equal(2, s.engine.State().CommittedIndex)
	s.Equal(-600.0, s.engine.State().Position)
	s.Require().Len(s.commits, 1)
	s.Equal("c", s.commits[0].Key)
	s.Equal(CommitProgrammatic, s.commits[0].Reason)
}

func (s *EngineSuite) TestRouteRegrowthReturnsToOwnerIndex() {
	s.echo = true
	s.engine.SetIndex(2)
	s.settle()
	s.commits = nil

	s.Require().NoError(s.engine.SetRoutes(threeRoutes()[:2]))
	s.settle()
	s.Equal(1, s.engine.State().CommittedIndex)
	s.Empty(s.commits)

	s.Require().NoError(s.engine.SetRoutes(threeRoutes()))
	s.engine.SetIndex(2)
	s.settle()

	s.Equal(2, s.engine.State().CommittedIndex)
	s.Equal(-600.0, s.engine.State().Position)
	s.Require().Len(s.commits, 1)
	s.Equal("c", s.commits[0].Key)
}

func (s *EngineSuite) TestRouteRegrowthMidSettleRetargets() {
	s.engine.SetIndex(2)
	s.settle()
	s.commits = nil

	s.Require().NoError(s.engine.SetRoutes(threeRoutes()[:2]))
	s.engine.Step(frame)
	s.Require().Equal(StateSettling, s.engine.Mode())

	s.Require().NoError(s.engine.SetRoutes(threeRoutes()))
	s.Equal(2, s.engine.State().PendingIndex)
	s.Equal(-600.0, s.engine.ToValue())
	s.settle()
	s.Equal(2, s.engine.State().CommittedIndex)
}

func (s *EngineSuite) TestRouteRegrowthKeepsPageWhenOwnerFits() {
	s.Require().NoError(s.engine.SetRoutes(threeRoutes()[:2]))
	s.Require().NoError(s.engine.SetRoutes(threeRoutes()))

	s.Equal(StateIdle, s.engine.Mode())
	s.Equal(1, s.engine.State().CommittedIndex)
	s.Empty(s.commits)
}

func (s *EngineSuite) TestRoutesClearedMidSettle() {
	s.engine.SetIndex(2)
	s.engine.Step(frame)

	s.Require().NoError(s.engine.SetRoutes(nil))

	s.Equal(StateIdle, s.engine.Mode())
	s.Equal(PagerState{PageWidth: 300}, s.engine.State())
	s.engine.Step(frame)
	s.Empty(s.commits)
}

func (s *EngineSuite) TestDragStopsRunningSpring() {
	s.engine.SetIndex(2)
	for i := 0; i < 3; i++ {
		s.engine.Step(frame)
	}
	mid := s.engine.State().Position
	s.Less(mid, -300.0)
	s.Greater(mid, -600.0)

	s.engine.Apply(active(-10))
	s.Equal(StateDragging, s.engine.Mode())
	s.Equal(mid, s.engine.State().Offset)
	s.Equal(mid-10, s.engine.State().Position)

	s.engine.Step(frame)
	s.Equal(mid-10, s.engine.State().Position, "spring does not move a dragged page")

	s.engine.Apply(ended(-10, 0))
	s.settle()
	s.Require().Len(s.commits, 1)
	s.Equal(2, s.commits[0].Index)
	s.Equal(CommitGesture, s.commits[0].Reason)
}

func (s *EngineSuite) TestIndexChangeWhileDraggingRebases() {
	s.engine.Apply(active(-20))
	s.engine.SetIndex(0)

	st := s.engine.State()
	s.True(st.Dragging)
	s.Equal(0, st.CommittedIndex)
	s.Equal(0, st.PendingIndex)

	s.engine.Apply(ended(-200, 0))
	s.Equal(1, s.engine.State().PendingIndex)
}

func (s *EngineSuite) TestSafetyCapSnapsToTarget() {
	s.engine = s.newEngine(
		EngineConfig{MaxSettleDuration: 100 * time.Millisecond},
		NavigationState{Index: 1, Routes: threeRoutes()},
		Layout{Width: 300},
	)
	s.engine.SetIndex(2)

	frames := s.settle()

	s.LessOrEqual(frames, 7)
	s.Equal(-600.0, s.engine.State().Position)
	s.Zero(s.engine.Spring().Velocity)
	s.Len(s.commits, 1)
}

func (s *EngineSuite) TestUnmeasuredWidthBlocksDrag() {
	s.engine = s.newEngine(EngineConfig{}, NavigationState{Index: 1, Routes: threeRoutes()}, Layout{})

	s.engine.Apply(active(-200))
	s.Equal(StateIdle, s.engine.Mode())
	s.Equal(0.0, s.engine.State().Position)
}

func (s *EngineSuite) TestNoRoutesIgnoresEverything() {
	s.engine = s.newEngine(EngineConfig{}, NavigationState{}, Layout{Width: 300})

	s.engine.Apply(active(-200))
	s.engine.Apply(ended(-200, -3000))
	s.engine.SetIndex(3)
	s.engine.Step(frame)

	s.Equal(StateIdle, s.engine.Mode())
	s.Equal(PagerState{PageWidth: 300}, s.engine.State())
	s.Empty(s.commits)
}

func (s *EngineSuite) TestWidthMeasuredMidSettle() {
	s.engine = s.newEngine(EngineConfig{}, NavigationState{Index: 0, Routes: threeRoutes()}, Layout{})
	s.engine.SetIndex(2)
	s.Equal(StateSettling, s.engine.Mode())

	s.engine.SetLayout(Layout{Width: 300})

	st := s.engine.State()
	s.Equal(-600.0, s.engine.ToValue(), "target follows the pending index at the new width")
	s.Equal(0, st.CommittedIndex)
	s.Equal(0.0, st.Position, "no jump when the width appears")

	prev := st.Position
	for i := 0; i < 1000 && s.engine.Mode() != StateIdle; i++ {
		s.engine.Step(frame)
		st = s.engine.State()
		s.LessOrEqual(st.Position, prev)
		if s.engine.Mode() != StateIdle {
			s.Equal(0, st.CommittedIndex, "committed index holds until the settle ends")
		}
		prev = st.Position
	}

	s.Equal(2, s.engine.State().CommittedIndex)
	s.Require().Len(s.commits, 1)
}

func (s *EngineSuite) TestResizeMidSettleKeepsNormalisedPosition() {
	s.engine.SetIndex(2)
	s.engine.Step(frame)
	s.engine.Step(frame)
	before := NormalizedPosition(s.engine.State().Position, 300, 3)

	s.engine.SetLayout(Layout{Width: 600})

	after := NormalizedPosition(s.engine.State().Position, 600, 3)
	s.InDelta(before, after, 1e-9)
	s.Equal(-1200.0, s.engine.ToValue())
	s.InDelta(s.engine.State().Position, s.engine.Spring().Position, 1e-9)

	s.settle()
	s.Equal(-1200.0, s.engine.State().Position)
}

func (s *EngineSuite) TestWidthLostMidDragSettlesOnPendingPage() {
	s.engine.Apply(active(-120))
	s.engine.SetLayout(Layout{})

	s.False(s.engine.State().Dragging)
	s.settle()
	s.Equal(1, s.engine.State().CommittedIndex)
	s.Empty(s.commits)
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func TestNewEngineRejectsInvalidSpring(t *testing.T) {
	cfg := DefaultSpringConfig()
	cfg.Mass = 0

	_, err := NewEngine(EngineConfig{Spring: cfg, Logger: logging.Discard()}, NavigationState{}, Layout{})
	require.ErrorIs(t, err, ErrInvalidSpringConfig)
}

func TestNewEngineClampsInitialIndex(t *testing.T) {
	e, err := NewEngine(EngineConfig{Logger: logging.Discard()}, NavigationState{Index: 9, Routes: threeRoutes()}, Layout{Width: 100})
	require.NoError(t, err)
	assert.Equal(t, 2, e.State().CommittedIndex)
	assert.Equal(t, -200.0, e.State().Position)
}
