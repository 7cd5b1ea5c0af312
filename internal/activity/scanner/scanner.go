// Package scanner estimates recent chain activity by walking blocks backward from the tip.
//
// A scan is strictly sequential: every upstream call is issued one at a time and followed by
// the configured per-request delay so that the provider's request ceiling is never exceeded.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/model"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/clock"
	"go.uber.org/zap"
)

// ErrUpstreamUnavailable is returned when the chain tip cannot be resolved.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// Scanner runs windowed activity scans against a ChainDataProvider.
// Each Scan call owns its own accumulators, but callers must not run overlapping scans
// against the same provider budget.
type Scanner struct {
	provider ChainDataProvider
	metrics  Metrics
	logger   *zap.Logger
	sleep    func(context.Context, time.Duration) error
	now      func() time.Time
}

// New builds a Scanner.
func New(provider ChainDataProvider, metrics Metrics, logger *zap.Logger) (*Scanner, error) {
	if provider == nil {
		return nil, errors.New("chain data provider is required")
	}
	if metrics == nil {
		return nil, errors.New("scanner metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		provider: provider,
		metrics:  metrics,
		logger:   logger.Named("activityScanner"),
		sleep:    clock.SleepWithContext,
		now:      time.Now,
	}, nil
}

// Scan resolves the tip and walks back through the configured window.
//
// Only a failed tip resolution is reported as ErrUpstreamUnavailable with no result. Every
// other upstream failure is absorbed and shows up as an undercount. If ctx is canceled during
// the walk, the partial result is returned together with the context error.
func (s *Scanner) Scan(ctx context.Context, cfg model.ScanConfig) (model.ScanResult, error) {
	started := time.Now()
	cfg = cfg.WithDefaults()

	tip, err := s.resolveTip(ctx)
	if err != nil {
		s.metrics.ObserveScan(err, model.ScanResult{}, started)
		s.logger.Error("resolve tip failed", zap.Error(err))
		return model.ScanResult{}, err
	}

	windowStart := cfg.WindowStartAt(s.now())
	s.logger.Info("walking blocks",
		zap.Int64("tip_height", tip.Height),
		zap.Int64("epoch", tip.Epoch),
		zap.Time("window_start", windowStart),
		zap.Int("max_blocks", cfg.MaxBlocksToCheck),
		zap.Int("sample_size", cfg.PerBlockTxSampleSize),
	)

	walked := s.walk(ctx, tip, windowStart, cfg)
	result := model.ScanResult{
		TransactionCount:  walked.transactionCount,
		ActiveWalletCount: int64(walked.addresses.Len()),
		Epoch:             tip.Epoch,
		TipHeight:         tip.Height,
		OldestHeight:      walked.oldestHeight,
		BlocksChecked:     walked.blocksChecked,
		WindowStart:       windowStart,
		SampleSize:        cfg.PerBlockTxSampleSize,
		StopReason:        walked.stopReason,
		Partial:           walked.stopReason == model.StopMaxBlocks || walked.stopReason == model.StopCanceled,
	}

	if walked.stopReason == model.StopCanceled {
		err = fmt.Errorf("scan canceled after %d blocks: %w", walked.blocksChecked, context.Cause(ctx))
	}
	s.metrics.ObserveScan(err, result, started)

	s.logger.Info("scan finished",
		zap.Int64("transactions", result.TransactionCount),
		zap.Int64("active_wallets", result.ActiveWalletCount),
		zap.Int("blocks_checked", result.BlocksChecked),
		zap.String("stop_reason", string(result.StopReason)),
		zap.Bool("partial", result.Partial),
		zap.Duration("elapsed", time.Since(started)),
	)
	return result, err
}

// pace waits the per-request delay that follows every successful upstream call.
func (s *Scanner) pace(ctx context.Context, cfg model.ScanConfig) error {
	if cfg.PerRequestDelay <= 0 {
		return ctx.Err()
	}
	if err := s.sleep(ctx, cfg.PerRequestDelay); err != nil {
		s.metrics.ObserveFailure(stageRequestPacer)
		return err
	}
	return nil
}
