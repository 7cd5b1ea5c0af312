// Package social publishes posts to the X (Twitter) API v2.
package social

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultBaseURL is the X API v2 endpoint.
const DefaultBaseURL = "https://api.twitter.com"

// Config configures the posting client.
type Config struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
	// DryRun logs posts instead of publishing them.
	DryRun bool
}

// PostResult identifies a published post.
type PostResult struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Client posts text updates.
type Client struct {
	http   *resty.Client
	dryRun bool
	logger *zap.Logger
}

type createPostRequest struct {
	Text string `json:"text"`
}

type createPostResponse struct {
	Data PostResult `json:"data"`
}

type apiErrorResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// NewClient constructs a Client. An access token is required unless DryRun is set.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.AccessToken == "" && !cfg.DryRun {
		return nil, errors.New("social access token is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(cfg.Timeout).
			SetAuthToken(cfg.AccessToken),
		dryRun: cfg.DryRun,
		logger: logger.Named("social"),
	}, nil
}

// Post publishes text and returns the created post.
func (c *Client) Post(ctx context.Context, text string) (PostResult, error) {
	if text == "" {
		return PostResult{}, errors.New("post text is empty")
	}
	if c.dryRun {
		c.logger.Info("dry run, post not published", zap.String("text", text))
		return PostResult{ID: "dry-run", Text: text}, nil
	}

	var created createPostResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createPostRequest{Text: text}).
		SetResult(&created).
		SetError(&apiErrorResponse{}).
		Post("/2/tweets")
	if err != nil {
		return PostResult{}, fmt.Errorf("create post: %w", err)
	}
	if resp.IsError() {
		if apiErr, ok := resp.Error().(*apiErrorResponse); ok && apiErr.Detail != "" {
			return PostResult{}, fmt.Errorf("create post: status %d: %s: %s", resp.StatusCode(), apiErr.Title, apiErr.Detail)
		}
		return PostResult{}, fmt.Errorf("create post: status %d", resp.StatusCode())
	}

	c.logger.Info("post published", zap.String("id", created.Data.ID))
	return created.Data, nil
}
