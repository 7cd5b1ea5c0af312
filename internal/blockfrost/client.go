// Package blockfrost reads Cardano chain data and network statistics from the Blockfrost REST API.
package blockfrost

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/chain"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	// MainnetURL is the Blockfrost Cardano mainnet endpoint.
	MainnetURL = "https://cardano-mainnet.blockfrost.io/api/v0"

	defaultRequestsPerSecond = 10
	defaultTimeout           = 30 * time.Second
	maxPageSize              = 100
)

type (
	// RequestMetrics records metrics for provider calls.
	RequestMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Config configures the Blockfrost client.
type Config struct {
	BaseURL           string
	ProjectID         string
	Timeout           time.Duration
	RequestsPerSecond int
}

// Client is a rate-limited, instrumented Blockfrost API client.
type Client struct {
	http     *resty.Client
	limiter  ratelimit.Limiter
	metrics  RequestMetrics
	logger   *zap.Logger
	pageSize int
}

type apiError struct {
	StatusCode int    `json:"status_code"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// NewClient constructs a Client.
func NewClient(cfg Config, metrics RequestMetrics, logger *zap.Logger) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("blockfrost project id is required")
	}
	if metrics == nil {
		return nil, errors.New("blockfrost metrics is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = MainnetURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultRequestsPerSecond
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("project_id", cfg.ProjectID).
		SetHeader("Accept", "application/json")

	return &Client{
		http:     httpClient,
		limiter:  ratelimit.New(cfg.RequestsPerSecond),
		metrics:  metrics,
		logger:   logger.Named("blockfrost"),
		pageSize: maxPageSize,
	}, nil
}

// get issues one paced GET request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, operation, path string, params map[string]string, query map[string]string, out any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	if err = ctx.Err(); err != nil {
		return err
	}
	c.limiter.Take()

	resp, reqErr := c.http.R().
		SetContext(ctx).
		SetPathParams(params).
		SetQueryParams(query).
		SetResult(out).
		SetError(&apiError{}).
		Get(path)
	if reqErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &chain.ProviderError{Operation: operation, Err: reqErr}
	}
	if resp.IsError() {
		return newResponseError(operation, resp)
	}
	return nil
}

func newResponseError(operation string, resp *resty.Response) error {
	perr := &chain.ProviderError{
		Operation:   operation,
		StatusCode:  resp.StatusCode(),
		RateLimited: resp.StatusCode() == http.StatusTooManyRequests,
	}
	if body, ok := resp.Error().(*apiError); ok && body != nil && (body.Error != "" || body.Message != "") {
		perr.Err = fmt.Errorf("%s: %s", body.Error, body.Message)
	}
	return perr
}

// paginate fetches pages of up to pageSize items until a short page is returned.
func paginate[T any](ctx context.Context, c *Client, operation, path string, params map[string]string) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		var items []T
		query := map[string]string{
			"count": fmt.Sprint(c.pageSize),
			"page":  fmt.Sprint(page),
		}
		if err := c.get(ctx, operation, path, params, query, &items); err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) < c.pageSize {
			return all, nil
		}
	}
}
