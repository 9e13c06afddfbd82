package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleRow is one row as the klines endpoint returns it.
const sampleRow = `[1717200000000,"3762.31","3762.31","3762.30","3762.30","11.7345",1717200000999,"44152.38010050",25,"3.9638","14913.46975930","0"]`

func TestKlineUnmarshalJSON(t *testing.T) {
	var k Kline
	require.NoError(t, json.Unmarshal([]byte(sampleRow), &k))

	assert.Equal(t, int64(1717200000000), k.OpenTime)
	assert.Equal(t, "3762.31", k.Open)
	assert.Equal(t, "3762.31", k.High)
	assert.Equal(t, "3762.30", k.Low)
	assert.Equal(t, "3762.30", k.Close)
	assert.Equal(t, "11.7345", k.Volume)
	assert.Equal(t, int64(1717200000999), k.CloseTime)
	assert.Equal(t, "44152.38010050", k.QuoteVolume)
	assert.Equal(t, int64(25), k.Trades)
	assert.Equal(t, "3.9638", k.TakerBuyBase)
	assert.Equal(t, "14913.46975930", k.TakerBuyQuote)
	assert.Equal(t, "0", k.Unused)
}

func TestKlineUnmarshalJSONArray(t *testing.T) {
	payload := "[" + sampleRow + "," + sampleRow + "]"
	var klines []Kline
	require.NoError(t, json.Unmarshal([]byte(payload), &klines))
	assert.Len(t, klines, 2)
}

func TestKlineUnmarshalJSONRejects(t *testing.T) {
	var k Kline
	assert.Error(t, json.Unmarshal([]byte(`{"openTime":1}`), &k), "object instead of array")
	assert.Error(t, json.Unmarshal([]byte(`[1717200000000,"3762.31"]`), &k), "truncated row")
	assert.Error(t, json.Unmarshal([]byte(`["oops","3762.31","x","x","x","x",1,"x",2,"x","x","0"]`), &k), "non-numeric open time")
}

func TestKlineRoundTrip(t *testing.T) {
	var k Kline
	require.NoError(t, json.Unmarshal([]byte(sampleRow), &k))
	out, err := json.Marshal(k)
	require.NoError(t, err)
	assert.JSONEq(t, sampleRow, string(out))
}

func TestKlineRow(t *testing.T) {
	var k Kline
	require.NoError(t, json.Unmarshal([]byte(sampleRow), &k))
	assert.Equal(t, []string{
		"1717200000000", "3762.31", "3762.31", "3762.30", "3762.30",
		"11.7345", "1717200000999", "44152.38010050", "25",
		"3.9638", "14913.46975930", "0",
	}, k.Row())
}

func TestIntervalMS(t *testing.T) {
	tests := []struct {
		interval string
		want     int64
	}{
		{"1s", 1_000},
		{"1m", 60_000},
		{"5m", 300_000},
		{"1h", 3_600_000},
		{"1d", 86_400_000},
		{"1w", 604_800_000},
	}
	for _, tt := range tests {
		got, err := IntervalMS(tt.interval)
		require.NoError(t, err, tt.interval)
		assert.Equal(t, tt.want, got, tt.interval)
	}

	for _, bad := range []string{"", "1", "s", "1M", "0m", "-1h", "xm"} {
		_, err := IntervalMS(bad)
		assert.Error(t, err, bad)
	}
}
