package scanner

import (
	"context"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/chain"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/model"
	"go.uber.org/zap"
)

// aggregate adds the input and output addresses of every sampled transaction to set.
// A failed transaction is skipped; the rest of the sample is still processed.
func (s *Scanner) aggregate(ctx context.Context, cfg model.ScanConfig, sample model.TxSample, set *model.AddressSet) {
	for _, txHash := range sample {
		if ctx.Err() != nil {
			return
		}

		var tx *chain.TransactionAddresses
		err := s.withRetry(ctx, cfg, stageTxAddresses, func() error {
			var err error
			tx, err = s.provider.TransactionAddresses(ctx, txHash)
			return err
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.metrics.ObserveFailure(stageTxAddresses)
			s.logger.Warn("skip transaction", zap.String("tx", txHash), zap.Error(err))
			continue
		}
		if tx != nil {
			for _, in := range tx.Inputs {
				set.Add(in.Address)
			}
			for _, out := range tx.Outputs {
				set.Add(out.Address)
			}
		}

		if err := s.pace(ctx, cfg); err != nil {
			return
		}
	}
}
