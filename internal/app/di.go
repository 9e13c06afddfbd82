package app

import (
	"fmt"

	"kline-archive/internal/archive"
	"kline-archive/internal/saver"
	"kline-archive/internal/source/binance"
)

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvideSaver creates a SegmentSaver from config (for Wire).
// Returns an error if SaveFormat is not supported.
func ProvideSaver(cfg *Config) (saver.SegmentSaver, error) {
	s := saver.NewSegmentSaver(cfg.SaveFormat)
	if s == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, json, parquet)", cfg.SaveFormat)
	}
	return s, nil
}

// ProvideSource creates the klines page source from config (for Wire).
func ProvideSource(cfg *Config) *binance.Client {
	return binance.NewClient(cfg.BaseURL, cfg.Symbol, cfg.Interval, cfg.PageLimit)
}

// ProvideWriter creates the day segment writer from config (for Wire).
func ProvideWriter(cfg *Config, s saver.SegmentSaver) *archive.DirWriter {
	return archive.NewDirWriter(cfg.DataDir, cfg.Symbol, cfg.Interval, s)
}
