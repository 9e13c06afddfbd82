package archive

import (
	"fmt"
	"log/slog"
	"time"

	"kline-archive/internal/model"
)

// DayCount is one persisted day in a run report.
type DayCount struct {
	Date string `json:"date"`
	Rows int    `json:"rows"`
}

// TrackingWriter decorates a SegmentWriter, recording per-day row counts
// and forwarding a ProgressUpdate after each successful non-empty write.
// The paginator stays unaware of progress tracking.
type TrackingWriter struct {
	inner   SegmentWriter
	key     string
	updates chan<- ProgressUpdate

	days  []DayCount
	total int
}

// NewTrackingWriter wraps inner. updates may be nil.
func NewTrackingWriter(inner SegmentWriter, key string, updates chan<- ProgressUpdate) *TrackingWriter {
	return &TrackingWriter{inner: inner, key: key, updates: updates}
}

func (t *TrackingWriter) Write(klines []model.Kline, year int, month time.Month, day int) error {
	if err := t.inner.Write(klines, year, month, day); err != nil {
		return err
	}
	if len(klines) == 0 {
		return nil
	}
	date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
	t.days = append(t.days, DayCount{Date: date, Rows: len(klines)})
	t.total += len(klines)
	if t.updates != nil {
		select {
		case t.updates <- ProgressUpdate{Key: t.key, Date: date}:
		default:
			slog.Warn("progress channel full, skip update", "date", date)
		}
	}
	return nil
}

// Days returns the persisted days in flush order.
func (t *TrackingWriter) Days() []DayCount { return t.days }

// Total returns the total persisted row count.
func (t *TrackingWriter) Total() int { return t.total }
