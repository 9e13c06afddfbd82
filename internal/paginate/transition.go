package paginate

import "kline-archive/internal/model"

// pageState classifies one fetched page relative to the active day.
type pageState int

const (
	// pageEmptyBeforeBoundary: no records and the window end is still
	// inside the current day. A data gap, not day exhaustion.
	pageEmptyBeforeBoundary pageState = iota
	// pageEmptyAtBoundary: no records and the window covered the remainder
	// of the day. The day is exhausted.
	pageEmptyAtBoundary
	// pageWithinDay: records returned, last bar closes before the boundary.
	pageWithinDay
	// pageCrossesBoundary: records returned, last unfiltered bar reaches
	// into or past day end.
	pageCrossesBoundary
)

func (s pageState) String() string {
	switch s {
	case pageEmptyBeforeBoundary:
		return "empty-before-boundary"
	case pageEmptyAtBoundary:
		return "empty-at-boundary"
	case pageWithinDay:
		return "within-day"
	case pageCrossesBoundary:
		return "crosses-boundary"
	}
	return "unknown"
}

// cursorRule says how the next window's start cursor is derived.
type cursorRule int

const (
	// cursorPastWindow: window end + 1. Skips a gap window with no data.
	cursorPastWindow cursorRule = iota
	// cursorToBoundary: exactly the day boundary timestamp.
	cursorToBoundary
	// cursorPastLastBar: last accepted bar's open time + one bar spacing.
	cursorPastLastBar
)

// transition is one row of the advance decision table.
type transition struct {
	flush  bool
	cursor cursorRule
}

// transitions is the full decision table for one advance() iteration.
// A crossing flush leaves the cursor at or before the boundary, so the
// filtered-out post-midnight bars still inside the overall range are
// re-fetched as the next day's first window on the next loop pass.
var transitions = map[pageState]transition{
	pageEmptyBeforeBoundary: {flush: false, cursor: cursorPastWindow},
	pageEmptyAtBoundary:     {flush: true, cursor: cursorToBoundary},
	pageWithinDay:           {flush: false, cursor: cursorPastLastBar},
	pageCrossesBoundary:     {flush: true, cursor: cursorPastLastBar},
}

// classify maps a raw (unfiltered) page onto its pageState. boundaryMS is
// the UTC-midnight timestamp ending the day that contains the cursor;
// windowEndMS is the inclusive end of the requested window.
func classify(page []model.Kline, boundaryMS, windowEndMS int64) pageState {
	if len(page) == 0 {
		// +1 mirrors the record branch below: a window ending on the last
		// millisecond of the day has covered the whole day.
		if windowEndMS+1 >= boundaryMS {
			return pageEmptyAtBoundary
		}
		return pageEmptyBeforeBoundary
	}
	last := page[len(page)-1]
	if last.CloseTime+1 >= boundaryMS {
		return pageCrossesBoundary
	}
	return pageWithinDay
}
