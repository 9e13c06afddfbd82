package saver

import (
	"encoding/csv"
	"os"

	"kline-archive/internal/model"
)

// CSVSaver writes one kline per row in wire field order, no header.
// Downstream consumers of kline day files expect raw rows.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(klines []model.Kline, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)

	for _, k := range klines {
		if err := w.Write(k.Row()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
