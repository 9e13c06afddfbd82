package archive

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// RunReport summarizes one archiver run.
type RunReport struct {
	Symbol     string     `json:"symbol"`
	Interval   string     `json:"interval"`
	Days       []DayCount `json:"days"`
	TotalRows  int        `json:"total_rows"`
	Error      string     `json:"error,omitempty"`
	FinishedAt time.Time  `json:"finished_at"`
}

// WriteRunReport persists the report as .lastrun.json in dir.
func WriteRunReport(dir string, report RunReport) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	p := filepath.Join(dir, ".lastrun.json")
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, data, 0644); err != nil {
		return err
	}
	slog.Info("run report saved", "path", p, "days", len(report.Days), "rows", report.TotalRows)
	return nil
}
