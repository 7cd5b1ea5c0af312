package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/scanner"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/blockfrost"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/clock"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/metrics"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/price"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/service/dailypost"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/snapshot"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/snapshot/cache"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/snapshot/repository/clickhouse"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/social"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisPingTimeout = 5 * time.Second

// Components are the assembled pipeline pieces.
type Components struct {
	Service   *dailypost.Service
	Scheduler *dailypost.Scheduler

	closers []func() error
}

// Build assembles the daily post service and its scheduler from cfg.
func Build(ctx context.Context, cfg Config, logger *zap.Logger) (*Components, error) {
	postAt, err := clock.ParseDailyTime(cfg.PostAt, cfg.PostTimezone)
	if err != nil {
		return nil, fmt.Errorf("parse post time: %w", err)
	}

	bf, err := blockfrost.NewClient(cfg.blockfrost(), metrics.NewProviderClient("blockfrost", cfg.Network), logger)
	if err != nil {
		return nil, fmt.Errorf("init blockfrost client: %w", err)
	}
	prices, err := price.NewClient(cfg.priceURL(), cfg.HTTPTimeout, metrics.NewProviderClient("price", cfg.Network))
	if err != nil {
		return nil, fmt.Errorf("init price client: %w", err)
	}
	poster, err := social.NewClient(cfg.social(), logger)
	if err != nil {
		return nil, fmt.Errorf("init social client: %w", err)
	}

	activity, err := scanner.New(bf, metrics.NewActivityScanner(cfg.Network), logger)
	if err != nil {
		return nil, fmt.Errorf("init activity scanner: %w", err)
	}
	collector, err := snapshot.NewCollector(cfg.Network, bf, prices, activity, cfg.Scan.ScanConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("init collector: %w", err)
	}

	c := &Components{}
	snapCache, err := c.newCache(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var history dailypost.History
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewSnapshotRepository(cfg.Network))
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("init snapshot repository: %w", err)
		}
		c.closers = append(c.closers, repo.Close)
		history = repo
	} else {
		logger.Info("clickhouse dsn not set, snapshot history disabled")
	}

	c.Service, err = dailypost.NewService(cfg.Network, collector, snapCache, history, poster, metrics.NewDailyPost(cfg.Network), logger)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("init daily post service: %w", err)
	}
	c.Scheduler, err = dailypost.NewScheduler(c.Service, postAt, logger)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("init scheduler: %w", err)
	}
	return c, nil
}

func (c *Components) newCache(ctx context.Context, cfg Config, logger *zap.Logger) (dailypost.Cache, error) {
	if cfg.RedisURL == "" {
		logger.Info("redis url not set, using in-memory snapshot cache")
		return cache.NewMemory(cfg.CacheTTL), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	c.closers = append(c.closers, rdb.Close)

	return cache.NewRedis(rdb, "cardanopulse:"+cfg.Network+":snapshot", cfg.CacheTTL)
}

// Close releases external connections.
func (c *Components) Close() error {
	var errs []error
	for _, closeFn := range c.closers {
		errs = append(errs, closeFn())
	}
	c.closers = nil
	return errors.Join(errs...)
}
