package scanner

import (
	"context"
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/chain"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/model"
	"go.uber.org/zap"
)

type walkResult struct {
	addresses        *model.AddressSet
	transactionCount int64
	blocksChecked    int
	// oldestHeight is the lowest height counted; zero when no block was counted.
	oldestHeight int64
	stopReason   model.StopReason
}

// walk visits heights tip.Height, tip.Height-1, ... until the window, the block budget, the
// chain start or an unavailable block stops it. The stopping block is never counted.
func (s *Scanner) walk(ctx context.Context, tip model.ChainTip, windowStart time.Time, cfg model.ScanConfig) walkResult {
	res := walkResult{addresses: model.NewAddressSet()}
	height := tip.Height

	for {
		if height < 0 {
			res.stopReason = model.StopChainStart
			return res
		}
		if res.blocksChecked >= cfg.MaxBlocksToCheck {
			s.logger.Warn("block budget exhausted before window end",
				zap.Int("max_blocks", cfg.MaxBlocksToCheck),
				zap.Int64("height", height))
			res.stopReason = model.StopMaxBlocks
			return res
		}
		if ctx.Err() != nil {
			res.stopReason = model.StopCanceled
			return res
		}

		block, err := s.fetchBlock(ctx, cfg, height)
		if err != nil {
			if ctx.Err() != nil {
				res.stopReason = model.StopCanceled
				return res
			}
			s.metrics.ObserveFailure(stageBlock)
			s.logger.Warn("block unavailable, stopping walk", zap.Int64("height", height), zap.Error(err))
			res.stopReason = model.StopUnavailable
			return res
		}
		if err := s.pace(ctx, cfg); err != nil {
			res.stopReason = model.StopCanceled
			return res
		}

		ref := model.BlockRef{Height: height, Hash: block.Hash, Time: block.Time}
		if ref.Time.Before(windowStart) {
			s.logger.Debug("reached window start",
				zap.Int64("height", ref.Height),
				zap.Time("block_time", ref.Time))
			res.stopReason = model.StopWindow
			return res
		}

		txCount := s.visitBlock(ctx, cfg, ref, &res)

		res.oldestHeight = ref.Height
		s.metrics.ObserveBlock(ref.Height, txCount, res.addresses.Len())
		height--
		res.blocksChecked++
	}
}

// visitBlock counts the block's transactions and aggregates its sample. A failed hash list
// fetch contributes nothing.
func (s *Scanner) visitBlock(ctx context.Context, cfg model.ScanConfig, ref model.BlockRef, res *walkResult) int {
	hashes, err := s.fetchTransactionHashes(ctx, cfg, ref.Hash)
	if err != nil {
		if ctx.Err() == nil {
			s.metrics.ObserveFailure(stageTxHashes)
			s.logger.Warn("skip block transactions",
				zap.Int64("height", ref.Height),
				zap.String("hash", ref.Hash),
				zap.Error(err))
		}
		return 0
	}

	res.transactionCount += int64(len(hashes))
	if err := s.pace(ctx, cfg); err != nil {
		return len(hashes)
	}

	s.aggregate(ctx, cfg, model.TxSample(hashes).Truncate(cfg.PerBlockTxSampleSize), res.addresses)
	return len(hashes)
}

func (s *Scanner) fetchBlock(ctx context.Context, cfg model.ScanConfig, height int64) (*chain.Block, error) {
	var block *chain.Block
	err := s.withRetry(ctx, cfg, stageBlock, func() error {
		var err error
		block, err = s.provider.BlockByHeight(ctx, height)
		return err
	})
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, &chain.ProviderError{Operation: "block_by_height", StatusCode: 404}
	}
	return block, nil
}

func (s *Scanner) fetchTransactionHashes(ctx context.Context, cfg model.ScanConfig, blockHash string) ([]string, error) {
	var hashes []string
	err := s.withRetry(ctx, cfg, stageTxHashes, func() error {
		var err error
		hashes, err = s.provider.BlockTransactionHashes(ctx, blockHash)
		return err
	})
	return hashes, err
}

// withRetry runs call, retrying only rate-limited failures up to cfg.MaxRetriesPerBlock times
// with a backoff of retry number times cfg.RetryBaseDelay.
func (s *Scanner) withRetry(ctx context.Context, cfg model.ScanConfig, stage string, call func() error) error {
	for retry := 0; ; retry++ {
		err := call()
		if err == nil {
			return nil
		}
		if !chain.IsRateLimited(err) || retry >= cfg.MaxRetriesPerBlock {
			return err
		}

		backoff := time.Duration(retry+1) * cfg.RetryBaseDelay
		s.metrics.ObserveRetry(stage)
		s.logger.Debug("rate limited, backing off",
			zap.String("stage", stage),
			zap.Int("retry", retry+1),
			zap.Duration("backoff", backoff))
		if sleepErr := s.sleep(ctx, backoff); sleepErr != nil {
			return sleepErr
		}
	}
}
