package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"kline-archive/internal/archive"
	"kline-archive/internal/model"
	"kline-archive/internal/paginate"
	"kline-archive/internal/source"
)

// RunJob runs one forward pass over the configured range: clamp the start
// past the last flushed day, drive the paginator, persist progress as days
// complete, and write a run report at the end.
func RunJob(ctx context.Context, cfg *Config, src source.PageSource, w archive.SegmentWriter) error {
	startMS, endMS := cfg.StartMS, cfg.EndMS
	if last, ok := archive.LastDay(cfg.ProgressPath(), cfg.ProgressKey()); ok {
		resume := last.AddDate(0, 0, 1).UnixMilli()
		if resume > startMS {
			slog.Info("resuming after last flushed day",
				"last_day", last.Format("2006-01-02"), "key", cfg.ProgressKey())
			startMS = resume
		}
	}
	if startMS > endMS {
		slog.Info("range already archived, nothing to do")
		return nil
	}

	granularityMS, err := model.IntervalMS(cfg.Interval)
	if err != nil {
		return err
	}

	updates := make(chan archive.ProgressUpdate, 256)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		archive.RunProgressWriter(cfg.ProgressPath(), updates)
	}()

	tracking := archive.NewTrackingWriter(w, cfg.ProgressKey(), updates)
	p, err := paginate.New(paginate.Config{
		StartMS:       startMS,
		EndMS:         endMS,
		PageSpanMS:    cfg.PageSpanMS,
		GranularityMS: granularityMS,
		Pace:          time.Duration(cfg.PaceMS) * time.Millisecond,
	}, src, tracking)
	if err != nil {
		close(updates)
		wg.Wait()
		return err
	}

	slog.Info("starting run",
		"symbol", cfg.Symbol, "interval", cfg.Interval,
		"start_ms", startMS, "end_ms", endMS,
		"page_span_ms", cfg.PageSpanMS, "format", cfg.SaveFormat)

	runErr := p.Run(ctx)
	close(updates)
	wg.Wait()

	report := archive.RunReport{
		Symbol:     cfg.Symbol,
		Interval:   cfg.Interval,
		Days:       tracking.Days(),
		TotalRows:  tracking.Total(),
		FinishedAt: time.Now().UTC(),
	}
	if runErr != nil {
		report.Error = runErr.Error()
	}
	if err := archive.WriteRunReport(cfg.DataDir, report); err != nil {
		slog.Warn("could not write run report", "error", err)
	}
	return runErr
}
