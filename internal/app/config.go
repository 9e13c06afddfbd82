package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds application configuration from env. All values are fixed for
// a run's lifetime.
type Config struct {
	Symbol     string `validate:"required"`
	Interval   string `validate:"required"`
	StartMS    int64  // inclusive overall range start, ms since epoch
	EndMS      int64  // inclusive overall range end
	BaseURL    string `validate:"required,url"`
	DataDir    string `validate:"required"`
	SaveFormat string `validate:"required,oneof=csv json parquet"`
	PageSpanMS int64  `validate:"gt=0"`
	PageLimit  int    `validate:"gt=0"`
	PaceMS     int64  `validate:"gte=0"`
	LogLevel   string // debug | info | warn | error
}

// LoadConfig reads config from environment. START_TIME and END_TIME are
// required; both accept RFC 3339 or a plain date. A date-only START_TIME
// means the start of that UTC day, a date-only END_TIME the end of it.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Symbol:     getEnv("SYMBOL", "ETHUSDC"),
		Interval:   getEnv("INTERVAL", "1s"),
		BaseURL:    getEnv("BASE_URL", "https://api.binance.com"),
		DataDir:    getEnv("DATA_DIR", "data"),
		SaveFormat: getEnv("SAVE_FORMAT", "csv"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		PageSpanMS: 10 * 60_000,
		PageLimit:  1000,
		PaceMS:     1,
	}

	start, err := parseTimeEnv("START_TIME", false)
	if err != nil {
		return nil, err
	}
	end, err := parseTimeEnv("END_TIME", true)
	if err != nil {
		return nil, err
	}
	cfg.StartMS = start
	cfg.EndMS = end

	if v, err := intEnv("PAGE_SPAN_MS"); err != nil {
		return nil, err
	} else if v > 0 {
		cfg.PageSpanMS = v
	}
	if v, err := intEnv("PAGE_LIMIT"); err != nil {
		return nil, err
	} else if v > 0 {
		cfg.PageLimit = int(v)
	}
	if v := os.Getenv("PACE_MS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid PACE_MS %q", v)
		}
		cfg.PaceMS = n
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.StartMS > cfg.EndMS {
		return nil, fmt.Errorf("START_TIME is after END_TIME")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return n, nil
}

// parseTimeEnv parses key as RFC 3339 or "2006-01-02". endOfDay widens a
// date-only value to the last millisecond of that UTC day.
func parseTimeEnv(key string, endOfDay bool) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s not set", key)
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UnixMilli(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q (want RFC 3339 or YYYY-MM-DD)", key, v)
	}
	if endOfDay {
		return t.AddDate(0, 0, 1).UnixMilli() - 1, nil
	}
	return t.UnixMilli(), nil
}

// ProgressPath returns the path of the .lastday.json resume file.
func (c *Config) ProgressPath() string {
	return filepath.Join(c.DataDir, ".lastday.json")
}

// ProgressKey identifies this symbol/interval pair in the progress file.
func (c *Config) ProgressKey() string {
	return c.Symbol + "-" + c.Interval
}
