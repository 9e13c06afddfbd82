// Package paginate walks a bounded time range in page-sized windows and
// segments the resulting bar stream into UTC calendar days.
//
// The paginator owns two pieces of state: the cursor (inclusive lower bound
// of the next window) and the day accumulator. Day attribution is always
// derived from the cursor, never from page contents: a page may be empty or
// may straddle midnight, but the cursor pins the active day
// deterministically.
package paginate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"kline-archive/internal/archive"
	"kline-archive/internal/model"
	"kline-archive/internal/source"
)

// Config holds the fixed job bounds for one run.
type Config struct {
	StartMS       int64 // inclusive overall range start, ms since epoch
	EndMS         int64 // inclusive overall range end
	PageSpanMS    int64 // max span one page request may cover
	GranularityMS int64 // fixed bar spacing; must equal the source's interval
	Pace          time.Duration
}

func (c Config) validate() error {
	if c.StartMS > c.EndMS {
		return fmt.Errorf("range start %d after end %d", c.StartMS, c.EndMS)
	}
	if c.PageSpanMS <= 0 {
		return fmt.Errorf("page span must be positive, got %d", c.PageSpanMS)
	}
	if c.GranularityMS <= 0 {
		return fmt.Errorf("granularity must be positive, got %d", c.GranularityMS)
	}
	return nil
}

// Paginator produces a gap-free, duplicate-free, day-segmented stream of
// klines covering [StartMS, EndMS]. Single logical thread; the cursor and
// accumulator are owned exclusively by one Run call.
type Paginator struct {
	cfg Config
	src source.PageSource
	w   archive.SegmentWriter

	cursor int64
	buf    []model.Kline
}

// New creates a Paginator with the cursor at the range start.
func New(cfg Config, src source.PageSource, w archive.SegmentWriter) (*Paginator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Paginator{cfg: cfg, src: src, w: w, cursor: cfg.StartMS}, nil
}

// Run drives the fetch loop until the range is exhausted or an error
// aborts the run. Any source, contract, or write error is returned
// immediately; no retry.
func (p *Paginator) Run(ctx context.Context) error {
	for p.cursor <= p.cfg.EndMS {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.advance(ctx); err != nil {
			return err
		}
		p.pace(ctx)
	}
	// The cursor alone decides exhaustion: a window reaching the range end
	// may still come back truncated at the source's row limit, in which case
	// the cursor sits on the first unfetched bar and the loop re-enters.
	// Whatever remains buffered here is the final partial day; the cursor is
	// still inside that day, so it supplies the key.
	if len(p.buf) > 0 {
		year, month, day := utcDate(p.cursor)
		if err := p.w.Write(p.buf, year, month, day); err != nil {
			return err
		}
		p.buf = nil
	}
	return nil
}

// advance runs one window-fetch-filter-flush cycle.
func (p *Paginator) advance(ctx context.Context) error {
	windowEnd := p.cursor + p.cfg.PageSpanMS - 1
	if windowEnd > p.cfg.EndMS {
		windowEnd = p.cfg.EndMS
	}

	page, err := p.src.Fetch(ctx, p.cursor, windowEnd)
	if err != nil {
		return err
	}
	if err := checkContract(page, p.cursor, windowEnd); err != nil {
		return err
	}

	boundary := nextUTCMidnight(p.cursor)
	year, month, day := utcDate(p.cursor)

	// Records at or past the boundary belong to a future day; they are
	// re-fetched by that day's first window. Pages are ascending, so the
	// accepted records form a prefix.
	accepted := len(page)
	for accepted > 0 && page[accepted-1].OpenTime >= boundary {
		accepted--
	}
	p.buf = append(p.buf, page[:accepted]...)

	state := classify(page, boundary, windowEnd)
	slog.Debug("window fetched",
		"start", p.cursor, "end", windowEnd, "records", len(page),
		"buffered", len(p.buf), "state", state.String())

	tr := transitions[state]
	if tr.flush {
		if err := p.w.Write(p.buf, year, month, day); err != nil {
			return err
		}
		p.buf = nil
	}
	switch tr.cursor {
	case cursorPastWindow:
		slog.Warn("no data in window, skipping forward",
			"start", p.cursor, "end", windowEnd)
		p.cursor = windowEnd + 1
	case cursorToBoundary:
		p.cursor = boundary
	case cursorPastLastBar:
		// The cursor derives from the last record actually accepted, not
		// the raw page: filtered-out post-boundary records must stay ahead
		// of the cursor so the next day's first window re-fetches them.
		if accepted == 0 {
			p.cursor = boundary
		} else {
			p.cursor = page[accepted-1].OpenTime + p.cfg.GranularityMS
		}
	}
	return nil
}

// pace sleeps briefly between iterations to avoid hammering the source.
// Not required for correctness.
func (p *Paginator) pace(ctx context.Context) {
	if p.cfg.Pace <= 0 {
		return
	}
	t := time.NewTimer(p.cfg.Pace)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// checkContract rejects pages that are out of ascending open-time order or
// outside the requested window.
func checkContract(page []model.Kline, startMS, endMS int64) error {
	prev := int64(-1 << 62)
	for i, k := range page {
		if k.OpenTime < startMS || k.OpenTime > endMS {
			return &ContractError{
				Reason: "record outside requested window",
				Index:  i, OpenTime: k.OpenTime, StartMS: startMS, EndMS: endMS,
			}
		}
		if k.OpenTime <= prev {
			return &ContractError{
				Reason: "records not in ascending open-time order",
				Index:  i, OpenTime: k.OpenTime, StartMS: startMS, EndMS: endMS,
			}
		}
		prev = k.OpenTime
	}
	return nil
}

// nextUTCMidnight returns the UTC-midnight timestamp strictly after the
// start of the day containing ms.
func nextUTCMidnight(ms int64) int64 {
	t := time.UnixMilli(ms).UTC().AddDate(0, 0, 1)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).UnixMilli()
}

// utcDate returns the (year, month, day) key of ms under UTC.
func utcDate(ms int64) (int, time.Month, int) {
	return time.UnixMilli(ms).UTC().Date()
}
