//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"kline-archive/internal/app"
	"kline-archive/internal/archive"
	"kline-archive/internal/source"
	"kline-archive/internal/source/binance"
)

// InitializeApp builds App (Config + Source + Writer) via Wire.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideSaver,
		app.ProvideSource,
		app.ProvideWriter,
		wire.Bind(new(source.PageSource), new(*binance.Client)),
		wire.Bind(new(archive.SegmentWriter), new(*archive.DirWriter)),
		wire.Struct(new(App), "Config", "Source", "Writer"),
	)
	return nil, nil
}
