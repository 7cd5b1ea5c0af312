// Package price fetches the ADA/USD spot price.
package price

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultURL serves the ADA/USD price as JSON.
const DefaultURL = "https://api.price2sheet.com/json/ada/usd"

type (
	// RequestMetrics records metrics for price requests.
	RequestMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Client reads the current ADA price in USD.
type Client struct {
	http    *resty.Client
	url     string
	metrics RequestMetrics
}

type quoteResponse struct {
	Price float64 `json:"price"`
}

// NewClient constructs a price Client.
func NewClient(url string, timeout time.Duration, metrics RequestMetrics) (*Client, error) {
	if metrics == nil {
		return nil, errors.New("price metrics is required")
	}
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http:    resty.New().SetTimeout(timeout).SetHeader("Accept", "application/json"),
		url:     url,
		metrics: metrics,
	}, nil
}

// ADAPrice returns the ADA/USD price.
func (c *Client) ADAPrice(ctx context.Context) (price float64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("ada_price", err, started)
	}()

	var quote quoteResponse
	resp, err := c.http.R().SetContext(ctx).SetResult(&quote).Get(c.url)
	if err != nil {
		return 0, fmt.Errorf("get ada price: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("get ada price: status %d", resp.StatusCode())
	}
	if quote.Price <= 0 {
		return 0, fmt.Errorf("get ada price: invalid price %v", quote.Price)
	}
	return quote.Price, nil
}
