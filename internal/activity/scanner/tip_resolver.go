package scanner

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/model"
)

func (s *Scanner) resolveTip(ctx context.Context) (model.ChainTip, error) {
	latest, err := s.provider.LatestBlock(ctx)
	if err != nil {
		s.metrics.ObserveFailure(stageTip)
		return model.ChainTip{}, fmt.Errorf("%w: latest block: %w", ErrUpstreamUnavailable, err)
	}
	if latest == nil || latest.Height == nil {
		s.metrics.ObserveFailure(stageTip)
		return model.ChainTip{}, fmt.Errorf("%w: latest block has no height", ErrUpstreamUnavailable)
	}
	if *latest.Height < 0 {
		s.metrics.ObserveFailure(stageTip)
		return model.ChainTip{}, fmt.Errorf("%w: latest block height %d is negative", ErrUpstreamUnavailable, *latest.Height)
	}

	tip := model.ChainTip{
		Height:     *latest.Height,
		ObservedAt: latest.Time,
	}
	if latest.Epoch != nil {
		tip.Epoch = *latest.Epoch
	}
	return tip, nil
}
