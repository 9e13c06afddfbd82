package saver

import (
	"strings"

	"kline-archive/internal/model"
)

// SegmentSaver serializes one complete day segment of klines to a file.
// High-level code injects the implementation; the archive writer only
// depends on the interface.
type SegmentSaver interface {
	Save(klines []model.Kline, path string) error
	Extension() string
}

// NewSegmentSaver creates an implementation by format (csv, json, parquet).
// Returns nil if the format is not supported.
func NewSegmentSaver(format string) SegmentSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "json":
		return JSONSaver{}
	case "parquet":
		return ParquetSaver{}
	default:
		return nil
	}
}
