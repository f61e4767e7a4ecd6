package simulate

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/internal/logging"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/pager"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/router"
)

// FrameRecord is the published state after one simulated frame.
type FrameRecord struct {
	Time      time.Duration `json:"time"`
	Position  float64       `json:"position"`
	Translate float64       `json:"translate"`
	State     string        `json:"state"`
	Index     int           `json:"index"`
	Commit    *pager.Commit `json:"commit,omitempty"`
	Events    []string      `json:"events,omitempty"`
}

// Result summarises a run.
type Result struct {
	Frames     []FrameRecord      `json:"frames"`
	Commits    []pager.Commit     `json:"commits"`
	FinalIndex int                `json:"final_index"`
	FinalKey   string             `json:"final_key"`
	Stats      pager.SamplerStats `json:"stats"`

	// Truncated is set when the run hit MaxDuration before the pager came to rest.
	Truncated bool `json:"truncated"`
}

// Run replays script through a pager built from opts. Navigation, layout and
// the commit callback in opts are replaced with ones derived from the script.
func Run(script *Script, opts pager.Options, logger *slog.Logger) (*Result, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}

	nav, err := router.New(script.routes(), script.Index)
	if err != nil {
		return nil, err
	}

	interval := script.FrameInterval
	if interval == 0 {
		interval = defaultFrameInterval
	}
	limit := script.MaxDuration
	if limit == 0 {
		limit = defaultMaxDuration
	}

	res := &Result{}
	var pending *pager.Commit

	opts.Navigation = nav.State()
	opts.Layout = pager.Layout{Width: script.Width}
	opts.Logger = logger
	opts.OnCommit = func(c pager.Commit) {
		res.Commits = append(res.Commits, c)
		pending = &c
		nav.HandleCommit(c)
	}

	p, err := pager.New(opts)
	if err != nil {
		return nil, err
	}
	nav.OnIndexChange(func(index int, route pager.Route) {
		logger.Debug("Owner index changed", "index", index, "key", route.Key)
		p.SetIndex(index)
	})

	steps := script.expand()
	next := 0
	for now := time.Duration(0); ; now += interval {
		var events []string
		for next < len(steps) && steps[next].At <= now {
			events = append(events, apply(p, nav, steps[next]))
			next++
		}

		pending = nil
		p.Frame(interval)
		snap := p.Snapshot()

		res.Frames = append(res.Frames, FrameRecord{
			Time:      now,
			Position:  snap.Position,
			Translate: snap.Translate,
			State:     snap.State.String(),
			Index:     nav.Index(),
			Commit:    pending,
			Events:    events,
		})

		if next == len(steps) && snap.State != pager.StateSettling {
			break
		}
		if now >= limit {
			res.Truncated = true
			logger.Warn("Simulation stopped before the pager came to rest", "limit", limit)
			break
		}
	}

	res.FinalIndex = nav.Index()
	if route, ok := nav.Current(); ok {
		res.FinalKey = route.Key
	}
	res.Stats = p.SamplerStats()
	return res, nil
}

func apply(p *pager.Pager, nav *router.Navigator, step Step) string {
	switch step.Action {
	case ActionDown:
		p.HandlePointer(pager.PointerEvent{Kind: pager.PointerDown, X: step.X, Time: step.At})
	case ActionMove:
		p.HandlePointer(pager.PointerEvent{Kind: pager.PointerMove, X: step.X, Time: step.At})
	case ActionUp:
		p.HandlePointer(pager.PointerEvent{Kind: pager.PointerUp, X: step.X, Time: step.At})
	case ActionCancel:
		p.HandlePointer(pager.PointerEvent{Kind: pager.PointerCancel, Time: step.At})
	case ActionIndex:
		nav.Go(step.Index)
		return fmt.Sprintf("index %d", step.Index)
	case ActionWidth:
		p.SetLayout(pager.Layout{Width: step.Width})
		return fmt.Sprintf("width %g", step.Width)
	case ActionEnable:
		p.SetSwipeEnabled(true)
		return "enable"
	case ActionLock:
		p.SetSwipeEnabled(false)
		return "disable"
	}
	return fmt.Sprintf("%s %g", step.Action, step.X)
}
