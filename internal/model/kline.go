package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kline represents one fixed-duration OHLCV bar as returned by the exchange.
// Prices and volumes stay exact-text strings so decimal precision survives
// serialization round trips. Shared by source, paginate, saver and archive.
type Kline struct {
	OpenTime      int64  `parquet:"open_time"` // Unix timestamp in milliseconds, inclusive bar start
	Open          string `parquet:"open"`
	High          string `parquet:"high"`
	Low           string `parquet:"low"`
	Close         string `parquet:"close"`
	Volume        string `parquet:"volume"` // base-asset volume
	CloseTime     int64  `parquet:"close_time"` // Unix timestamp in milliseconds, inclusive bar end
	QuoteVolume   string `parquet:"quote_volume"`
	Trades        int64  `parquet:"trades"`
	TakerBuyBase  string `parquet:"taker_buy_base"`
	TakerBuyQuote string `parquet:"taker_buy_quote"`
	Unused        string `parquet:"unused"` // reserved field, preserved verbatim
}

// klineFields is the number of elements in one kline wire row.
const klineFields = 12

// UnmarshalJSON decodes the positional array form used by the klines
// endpoint: [openTime, open, high, low, close, volume, closeTime,
// quoteVolume, trades, takerBuyBase, takerBuyQuote, unused].
func (k *Kline) UnmarshalJSON(data []byte) error {
	var row []json.RawMessage
	if err := json.Unmarshal(data, &row); err != nil {
		return fmt.Errorf("kline row is not an array: %w", err)
	}
	if len(row) < klineFields {
		return fmt.Errorf("kline row has %d fields, want %d", len(row), klineFields)
	}
	for i, dst := range []any{
		&k.OpenTime, &k.Open, &k.High, &k.Low, &k.Close, &k.Volume,
		&k.CloseTime, &k.QuoteVolume, &k.Trades, &k.TakerBuyBase,
		&k.TakerBuyQuote, &k.Unused,
	} {
		if err := json.Unmarshal(row[i], dst); err != nil {
			return fmt.Errorf("kline field %d: %w", i, err)
		}
	}
	return nil
}

// MarshalJSON re-encodes the bar in the positional wire form.
func (k Kline) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{
		k.OpenTime, k.Open, k.High, k.Low, k.Close, k.Volume,
		k.CloseTime, k.QuoteVolume, k.Trades, k.TakerBuyBase,
		k.TakerBuyQuote, k.Unused,
	})
}

// Row returns the CSV field order: same layout as the wire row.
func (k Kline) Row() []string {
	return []string{
		strconv.FormatInt(k.OpenTime, 10),
		k.Open,
		k.High,
		k.Low,
		k.Close,
		k.Volume,
		strconv.FormatInt(k.CloseTime, 10),
		k.QuoteVolume,
		strconv.FormatInt(k.Trades, 10),
		k.TakerBuyBase,
		k.TakerBuyQuote,
		k.Unused,
	}
}
