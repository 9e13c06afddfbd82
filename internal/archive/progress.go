package archive

import (
	"encoding/json"
	"log/slog"
	"os"
	"time"
)

// ProgressUpdate is sent after a non-empty day segment is persisted.
type ProgressUpdate struct {
	Key  string // "{SYMBOL}-{interval}"
	Date string // "2006-01-02"
}

func loadProgress(path string) map[string]string {
	data, err := os.ReadFile(path)
	if err != nil {
		return make(map[string]string)
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return make(map[string]string)
	}
	return m
}

// LastDay returns the UTC midnight of the last recorded day for key, if any.
func LastDay(path, key string) (time.Time, bool) {
	m := loadProgress(path)
	v, ok := m[key]
	if !ok {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// RunProgressWriter receives updates and persists them to path (run as a
// goroutine; returns when the channel is closed).
func RunProgressWriter(path string, updates <-chan ProgressUpdate) {
	m := loadProgress(path)
	for u := range updates {
		m[u.Key] = u.Date
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			slog.Warn("progress marshal error", "error", err)
			continue
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			slog.Warn("progress write error", "error", err)
		}
	}
}
