package stockviewer

import (
	"context"
	"sync"

	"github.com/shamsherkhan80/Real-time-stock-price-viewer/marketdata"
)

// State is the dashboard display state. The display starts Idle and becomes
// Loaded on the first refresh action; it never goes back.
type State int

const (
	StateIdle State = iota
	StateLoaded
)

// EventKind distinguishes what the user did.
type EventKind int

const (
	// EventSelectorChange is a symbol, period, or chart kind change without
	// pressing refresh.
	EventSelectorChange EventKind = iota
	// EventRefresh is the explicit refresh button action.
	EventRefresh
	// EventHover is a pointer hover over a rendered chart point.
	EventHover
)

// HoverPoint is the chart position under the pointer.
type HoverPoint struct {
	Date  string
	Price float64
}

// Event is one user interaction together with the current selector values.
type Event struct {
	Kind   EventKind
	Symbol string
	Period marketdata.Period
	Chart  ChartKind
	Hover  *HoverPoint
}

// Output is the rendered result of applying one event: a chart widget and two
// text lines. Chart is never nil.
type Output struct {
	State       State
	NoData      bool
	Chart       Chart
	CompanyLine string
	PriceLine   string
}

// Session tracks whether a refresh action has occurred. Before the first
// refresh every event yields the prompt output; after it, every event,
// selector changes and hovers included, triggers a full recompute. The
// latter mirrors the original dashboard's callback trigger list.
//
// A session may receive concurrent events, such as a chart page and its
// embedded figure loading at once, so the refreshed flag is mutex guarded.
type Session struct {
	viewer *Viewer

	mu        sync.Mutex
	refreshed bool
}

// Refreshed reports whether a refresh action has occurred in this session.
func (s *Session) Refreshed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshed
}

// Update applies one user interaction and returns the new display output.
// Every outcome, including no-data and unrefreshed, is a renderable state
// rather than an error.
func (s *Session) Update(ctx context.Context, ev Event) *Output {
	ev = normalize(ev)

	s.mu.Lock()
	if ev.Kind == EventRefresh {
		s.refreshed = true
	}
	refreshed := s.refreshed
	s.mu.Unlock()

	if !refreshed {
		return s.viewer.idleOutput()
	}
	return s.viewer.render(ctx, ev)
}

func normalize(ev Event) Event {
	if ev.Symbol == "" {
		ev.Symbol = DefaultSymbol
	}
	if ev.Period == "" {
		ev.Period = DefaultPeriod
	}
	if ev.Chart == "" {
		ev.Chart = ChartLine
	}
	return ev
}
