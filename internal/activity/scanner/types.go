package scanner

import (
	"context"
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/chain"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainDataProvider interface {
		LatestBlock(ctx context.Context) (*chain.LatestBlock, error)
		BlockByHeight(ctx context.Context, height int64) (*chain.Block, error)
		BlockTransactionHashes(ctx context.Context, blockHash string) ([]string, error)
		TransactionAddresses(ctx context.Context, txHash string) (*chain.TransactionAddresses, error)
	}
	Metrics interface {
		ObserveScan(err error, result model.ScanResult, started time.Time)
		ObserveBlock(height int64, transactions int, addresses int)
		ObserveFailure(stage string)
		ObserveRetry(stage string)
	}
)

const (
	stageTip          = "tip"
	stageBlock        = "block"
	stageTxHashes     = "tx_hashes"
	stageTxAddresses  = "tx_addresses"
	stageRequestPacer = "pacing"
)
