package archive

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"kline-archive/internal/model"
	"kline-archive/internal/saver"
)

// SegmentWriter persists one complete ordered day segment exactly once.
// An empty batch is a no-op, not an error.
type SegmentWriter interface {
	Write(klines []model.Kline, year int, month time.Month, day int) error
}

// DirWriter writes day segments to a directory as
// {SYMBOL}-{interval}-{year}-{month}-{day}.{ext}, create-or-truncate per
// call. The file extension depends on the injected SegmentSaver.
type DirWriter struct {
	Dir      string
	Symbol   string
	Interval string
	Saver    saver.SegmentSaver
}

// NewDirWriter creates a DirWriter. The directory is created on first write.
func NewDirWriter(dir, symbol, interval string, s saver.SegmentSaver) *DirWriter {
	return &DirWriter{Dir: dir, Symbol: symbol, Interval: interval, Saver: s}
}

// SegmentName returns the file name for one day segment.
func (w *DirWriter) SegmentName(year int, month time.Month, day int) string {
	return fmt.Sprintf("%s-%s-%04d-%02d-%02d.%s",
		w.Symbol, w.Interval, year, int(month), day, w.Saver.Extension())
}

func (w *DirWriter) Write(klines []model.Kline, year int, month time.Month, day int) error {
	if len(klines) == 0 {
		slog.Debug("empty day segment, nothing to write",
			"symbol", w.Symbol, "date", fmt.Sprintf("%04d-%02d-%02d", year, int(month), day))
		return nil
	}
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return fmt.Errorf("create segment dir %s: %w", w.Dir, err)
	}
	path := filepath.Join(w.Dir, w.SegmentName(year, month, day))
	if err := w.Saver.Save(klines, path); err != nil {
		return fmt.Errorf("write segment %s: %w", path, err)
	}
	slog.Info("segment saved", "path", path, "rows", len(klines))
	return nil
}
