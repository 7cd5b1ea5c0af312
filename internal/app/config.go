// Package app wires the snapshot pipeline from command-line and environment configuration.
package app

import (
	"errors"
	"io/fs"
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/model"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/blockfrost"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/price"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/social"
	"github.com/joho/godotenv"
)

// Config holds the settings shared by the bot and the API gateway.
type Config struct {
	Network string `long:"network" env:"CARDANO_NETWORK" description:"Cardano network label" default:"mainnet"`

	BlockfrostURL       string        `long:"blockfrost-url" env:"BLOCKFROST_URL" description:"Blockfrost API base URL" default:"https://cardano-mainnet.blockfrost.io/api/v0"`
	BlockfrostProjectID string        `long:"blockfrost-project-id" env:"BLOCKFROST_PROJECT_ID" description:"Blockfrost project id" required:"true"`
	BlockfrostRPS       int           `long:"blockfrost-rps" env:"BLOCKFROST_RPS" description:"Blockfrost requests per second ceiling" default:"10"`
	HTTPTimeout         time.Duration `long:"http-timeout" env:"HTTP_TIMEOUT" description:"timeout for outbound HTTP requests" default:"30s"`

	PriceURL string `long:"price-url" env:"PRICE_URL" description:"ADA/USD price endpoint" default:"https://api.price2sheet.com/json/ada/usd"`

	XBaseURL     string `long:"x-base-url" env:"X_BASE_URL" description:"X API base URL" default:"https://api.twitter.com"`
	XAccessToken string `long:"x-access-token" env:"X_ACCESS_TOKEN" description:"X API user access token"`
	DryRun       bool   `long:"dry-run" env:"POST_DRY_RUN" description:"log posts instead of publishing"`

	RedisURL      string        `long:"redis-url" env:"REDIS_URL" description:"Redis URL for the shared snapshot cache; in-memory cache when empty"`
	CacheTTL      time.Duration `long:"cache-ttl" env:"CACHE_TTL" description:"snapshot cache lifetime" default:"24h"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"CLICKHOUSE_DSN" description:"ClickHouse DSN for snapshot history; history disabled when empty"`

	PostAt       string `long:"post-at" env:"POST_AT" description:"daily post time (HH:MM)" default:"15:00"`
	PostTimezone string `long:"post-timezone" env:"POST_TIMEZONE" description:"IANA zone of the daily post time" default:"Europe/Paris"`

	Scan ScanOptions `group:"Activity scan" namespace:"scan" env-namespace:"SCAN"`
}

// ScanOptions configures the 24h activity scan. Unset options keep model.DefaultScanConfig values.
type ScanOptions struct {
	PerRequestDelay *time.Duration `long:"per-request-delay" env:"PER_REQUEST_DELAY" description:"pause after each successful provider call (default: 100ms)"`
	MaxBlocks       *int           `long:"max-blocks" env:"MAX_BLOCKS" description:"block budget per scan (default: 5000)"`
	MaxRetries      *int           `long:"max-retries" env:"MAX_RETRIES" description:"retries per rate-limited call (default: 3)"`
	RetryBaseDelay  *time.Duration `long:"retry-base-delay" env:"RETRY_BASE_DELAY" description:"linear backoff unit for rate-limit retries (default: 1s)"`
	Window          *time.Duration `long:"window" env:"WINDOW" description:"activity window (default: 24h)"`
	TxSampleSize    *int           `long:"tx-sample-size" env:"TX_SAMPLE_SIZE" description:"transactions inspected per block for wallet counting; 0 inspects all (default: 5)"`
}

// ScanConfig converts the options into a scanner configuration.
func (o ScanOptions) ScanConfig() model.ScanConfig {
	cfg := model.DefaultScanConfig()
	if o.PerRequestDelay != nil {
		cfg.PerRequestDelay = *o.PerRequestDelay
	}
	if o.MaxBlocks != nil {
		cfg.MaxBlocksToCheck = *o.MaxBlocks
	}
	if o.MaxRetries != nil {
		cfg.MaxRetriesPerBlock = *o.MaxRetries
	}
	if o.RetryBaseDelay != nil {
		cfg.RetryBaseDelay = *o.RetryBaseDelay
	}
	if o.Window != nil {
		cfg.Window = *o.Window
	}
	if o.TxSampleSize != nil {
		cfg.PerBlockTxSampleSize = *o.TxSampleSize
	}
	return cfg.WithDefaults()
}

func (c Config) blockfrost() blockfrost.Config {
	return blockfrost.Config{
		BaseURL:           c.BlockfrostURL,
		ProjectID:         c.BlockfrostProjectID,
		Timeout:           c.HTTPTimeout,
		RequestsPerSecond: c.BlockfrostRPS,
	}
}

func (c Config) social() social.Config {
	return social.Config{
		BaseURL:     c.XBaseURL,
		AccessToken: c.XAccessToken,
		Timeout:     c.HTTPTimeout,
		DryRun:      c.DryRun,
	}
}

func (c Config) priceURL() string {
	if c.PriceURL == "" {
		return price.DefaultURL
	}
	return c.PriceURL
}

// LoadEnv loads variables from the given dotenv files, or .env when none are given.
// Missing files are ignored and variables already set are kept.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
