package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"kline-archive/internal/app"
	"kline-archive/internal/archive"
	"kline-archive/internal/slogx"
	"kline-archive/internal/source"
)

// App holds application dependencies built by Wire.
type App struct {
	Config *app.Config
	Source source.PageSource
	Writer archive.SegmentWriter
}

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	cfg := a.Config
	slog.SetDefault(slogx.NewDefault(cfg.LogLevel))
	slog.Info("using page source", "source", a.Source.Name(),
		"symbol", cfg.Symbol, "interval", cfg.Interval, "base_url", cfg.BaseURL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunJob(ctx, cfg, a.Source, a.Writer); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
	slog.Info("archive complete")
}
