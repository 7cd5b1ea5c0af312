// Package dailypost collects, stores and publishes the daily network update.
package dailypost

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/formatter"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/snapshot"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrHistoryDisabled is returned by History when no store is configured.
var ErrHistoryDisabled = errors.New("snapshot history is not configured")

// MaxHistoryDays bounds History lookups.
const MaxHistoryDays = 90

// Report is a snapshot together with the post it renders to.
type Report struct {
	Snapshot snapshot.Snapshot `json:"metrics"`
	Text     string            `json:"tweetPreview"`
	Cached   bool              `json:"cached"`
}

// Published describes a posted update.
type Published struct {
	PostID   string            `json:"tweetId"`
	Text     string            `json:"content"`
	Snapshot snapshot.Snapshot `json:"metrics"`
}

// Service runs the daily update pipeline. Concurrent collections and posts share one in-flight run.
type Service struct {
	network   string
	collector Collector
	cache     Cache
	history   History
	poster    Poster
	metrics   Metrics
	logger    *zap.Logger
	flights   singleflight.Group
	now       func() time.Time
}

// NewService builds a Service. history may be nil.
func NewService(
	network string,
	collector Collector,
	cache Cache,
	history History,
	poster Poster,
	metrics Metrics,
	logger *zap.Logger,
) (*Service, error) {
	if collector == nil {
		return nil, errors.New("collector is required")
	}
	if cache == nil {
		return nil, errors.New("cache is required")
	}
	if poster == nil {
		return nil, errors.New("poster is required")
	}
	if metrics == nil {
		return nil, errors.New("daily post metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		network:   network,
		collector: collector,
		cache:     cache,
		history:   history,
		poster:    poster,
		metrics:   metrics,
		logger:    logger.Named("dailypost").With(zap.String("network", network)),
		now:       time.Now,
	}, nil
}

// Preview returns the cached snapshot, collecting a fresh one on a miss.
func (s *Service) Preview(ctx context.Context) (Report, error) {
	entry, err := s.cache.Get(ctx)
	switch {
	case err == nil:
		s.metrics.ObserveCache(true)
		return Report{Snapshot: entry.Snapshot, Text: formatter.Post(entry.Snapshot), Cached: true}, nil
	case errors.Is(err, snapshot.ErrCacheMiss):
		s.metrics.ObserveCache(false)
	default:
		s.metrics.ObserveCache(false)
		s.logger.Warn("snapshot cache read failed", zap.Error(err))
	}
	return s.Refresh(ctx)
}

// Refresh collects a new snapshot and caches it.
func (s *Service) Refresh(ctx context.Context) (Report, error) {
	snap, err := s.collect(ctx)
	if err != nil {
		return Report{}, err
	}
	return Report{Snapshot: snap, Text: formatter.Post(snap)}, nil
}

// PostNow collects fresh statistics, records them and publishes the update.
// A caller whose context ends stops waiting; the publication itself carries on for the other callers.
func (s *Service) PostNow(ctx context.Context) (Published, error) {
	if err := ctx.Err(); err != nil {
		return Published{}, fmt.Errorf("post daily update: %w", err)
	}
	runCtx := context.WithoutCancel(ctx)
	ch := s.flights.DoChan("post", func() (interface{}, error) {
		return s.postNow(runCtx)
	})

	select {
	case <-ctx.Done():
		return Published{}, fmt.Errorf("post daily update: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return Published{}, res.Err
		}
		if res.Shared {
			s.logger.Info("joined in-flight post")
		}
		return res.Val.(Published), nil
	}
}

func (s *Service) postNow(ctx context.Context) (Published, error) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("snapshot cache invalidate failed", zap.Error(err))
	}

	snap, err := s.collect(ctx)
	if err != nil {
		return Published{}, err
	}
	if s.history != nil {
		if err := s.history.InsertSnapshot(ctx, snap); err != nil {
			s.logger.Error("store snapshot history failed", zap.Error(err))
		}
	}

	text := formatter.Post(snap)
	result, err := s.poster.Post(ctx, text)
	s.metrics.ObservePublish(err)
	if err != nil {
		return Published{}, fmt.Errorf("publish daily update: %w", err)
	}

	s.logger.Info("daily update published", zap.String("post_id", result.ID))
	return Published{PostID: result.ID, Text: text, Snapshot: snap}, nil
}

// History returns stored snapshots from the last days days, oldest first.
func (s *Service) History(ctx context.Context, days int) ([]snapshot.Snapshot, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	if days < 1 || days > MaxHistoryDays {
		return nil, fmt.Errorf("days must be between 1 and %d, got %d", MaxHistoryDays, days)
	}
	return s.history.SnapshotsSince(ctx, s.network, s.now().Add(-time.Duration(days)*24*time.Hour))
}

// CacheInfo reports the snapshot cache state.
func (s *Service) CacheInfo(ctx context.Context) (snapshot.CacheInfo, error) {
	return s.cache.Info(ctx)
}

// collect runs one shared collection for all concurrent callers and caches its result.
// The shared run is detached from every caller's cancellation.
func (s *Service) collect(ctx context.Context) (snapshot.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("collect snapshot: %w", err)
	}
	runCtx := context.WithoutCancel(ctx)
	ch := s.flights.DoChan("collect", func() (interface{}, error) {
		started := time.Now()
		snap, err := s.collector.Collect(runCtx)
		s.metrics.ObserveCollect(err, started)
		if err != nil {
			s.logger.Error("snapshot collection failed", zap.Error(err))
			return snapshot.Snapshot{}, err
		}
		s.store(runCtx, snap)
		return snap, nil
	})

	select {
	case <-ctx.Done():
		return snapshot.Snapshot{}, fmt.Errorf("collect snapshot: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return snapshot.Snapshot{}, fmt.Errorf("collect snapshot: %w", res.Err)
		}
		return res.Val.(snapshot.Snapshot), nil
	}
}

func (s *Service) store(ctx context.Context, snap snapshot.Snapshot) {
	if _, err := s.cache.Set(ctx, snap); err != nil {
		s.logger.Warn("snapshot cache write failed", zap.Error(err))
	}
}
