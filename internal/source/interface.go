package source

import (
	"context"

	"kline-archive/internal/model"
)

// PageSource is the abstraction used by the paginator when fetching bars.
// Fetch returns up to one page of klines whose open time lies inside
// [startMS, endMS], in ascending open-time order. Implementations own their
// transport and resource cleanup.
type PageSource interface {
	Fetch(ctx context.Context, startMS, endMS int64) ([]model.Kline, error)
	Name() string
}
