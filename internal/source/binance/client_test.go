package binance

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kline-archive/internal/source"
)

const twoRows = `[
  [1717200000000,"3762.31","3762.31","3762.30","3762.30","11.7345",1717200000999,"44152.38010050",25,"3.9638","14913.46975930","0"],
  [1717200001000,"3762.30","3762.32","3762.29","3762.32","2.0011",1717200001999,"7528.90134422",7,"1.1002","4139.80021034","0"]
]`

func TestClientFetch(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v3/klines", r.URL.Path)
		q := r.URL.Query()
		gotQuery = map[string]string{
			"symbol":    q.Get("symbol"),
			"interval":  q.Get("interval"),
			"startTime": q.Get("startTime"),
			"endTime":   q.Get("endTime"),
			"limit":     q.Get("limit"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(twoRows))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "ETHUSDC", "1s", 1000)
	klines, err := c.Fetch(context.Background(), 1717200000000, 1717200599999)
	require.NoError(t, err)

	require.Len(t, klines, 2)
	assert.Equal(t, int64(1717200000000), klines[0].OpenTime)
	assert.Equal(t, "3762.30", klines[1].Open)
	assert.Equal(t, map[string]string{
		"symbol":    "ETHUSDC",
		"interval":  "1s",
		"startTime": "1717200000000",
		"endTime":   "1717200599999",
		"limit":     "1000",
	}, gotQuery)
}

func TestClientFetchEmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "ETHUSDC", "1s", 1000)
	klines, err := c.Fetch(context.Background(), 0, 1)
	require.NoError(t, err)
	assert.Empty(t, klines)
}

func TestClientFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"code":-1121,"msg":"Invalid symbol."}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "NOPE", "1s", 1000)
	_, err := c.Fetch(context.Background(), 0, 1)

	var te *source.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.StatusBadRequest, te.Status)
}

func TestClientFetchDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":"object"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "ETHUSDC", "1s", 1000)
	_, err := c.Fetch(context.Background(), 0, 1)

	var de *source.DecodeError
	assert.True(t, errors.As(err, &de))
}

func TestClientFetchConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse all connections

	c := NewClient(srv.URL, "ETHUSDC", "1s", 1000)
	_, err := c.Fetch(context.Background(), 0, 1)

	var te *source.TransportError
	assert.True(t, errors.As(err, &te))
}

func TestNewClientLimitClamp(t *testing.T) {
	assert.Equal(t, MaxLimit, NewClient("http://x", "S", "1s", 0).limit)
	assert.Equal(t, MaxLimit, NewClient("http://x", "S", "1s", 5000).limit)
	assert.Equal(t, 500, NewClient("http://x", "S", "1s", 500).limit)
}
