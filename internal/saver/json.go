package saver

import (
	"encoding/json"
	"os"

	"kline-archive/internal/model"
)

// JSONSaver writes the segment as a JSON array of positional kline rows.
type JSONSaver struct{}

func (JSONSaver) Extension() string { return "json" }

func (JSONSaver) Save(klines []model.Kline, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(klines)
}
