package saver

import (
	"github.com/parquet-go/parquet-go"

	"kline-archive/internal/model"
)

// ParquetSaver writes the segment as a Parquet file using the model's
// parquet tags.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(klines []model.Kline, path string) error {
	return parquet.WriteFile(path, klines)
}
