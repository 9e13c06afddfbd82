package binance

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"kline-archive/internal/model"
	"kline-archive/internal/source"
)

const (
	klinesPath = "/api/v3/klines"

	// Max rows per klines request accepted by the endpoint.
	MaxLimit = 1000
)

// Client fetches kline pages for one symbol/interval pair from a
// Binance-compatible REST API.
type Client struct {
	http     *resty.Client
	symbol   string
	interval string
	limit    int
}

// NewClient creates a klines client. limit caps the row count per page;
// values outside (0, MaxLimit] fall back to MaxLimit.
func NewClient(baseURL, symbol, interval string, limit int) *Client {
	if limit <= 0 || limit > MaxLimit {
		limit = MaxLimit
	}
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")
	return &Client{
		http:     rc,
		symbol:   symbol,
		interval: interval,
		limit:    limit,
	}
}

func (c *Client) Name() string { return "binance" }

// Fetch returns the klines whose open time lies in [startMS, endMS], in
// ascending order, capped at the configured page limit.
func (c *Client) Fetch(ctx context.Context, startMS, endMS int64) ([]model.Kline, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol":    c.symbol,
			"interval":  c.interval,
			"startTime": strconv.FormatInt(startMS, 10),
			"endTime":   strconv.FormatInt(endMS, 10),
			"limit":     strconv.Itoa(c.limit),
		}).
		Get(klinesPath)
	if err != nil {
		return nil, &source.TransportError{URL: c.http.BaseURL + klinesPath, Err: err}
	}
	url := resp.Request.URL
	if resp.StatusCode() != http.StatusOK {
		return nil, &source.TransportError{URL: url, Status: resp.StatusCode()}
	}
	var klines []model.Kline
	if err := json.Unmarshal(resp.Body(), &klines); err != nil {
		return nil, &source.DecodeError{URL: url, Err: err}
	}
	return klines, nil
}
