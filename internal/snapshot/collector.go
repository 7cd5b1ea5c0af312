package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/model"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/blockfrost"
	"github.com/goodnatureofminers/cardanopulse-backend/pkg/workerpool"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// CardanoGenesis is the mainnet launch date.
var CardanoGenesis = time.Date(2017, 9, 23, 0, 0, 0, 0, time.UTC)

type (
	NetworkSource interface {
		Network(ctx context.Context) (*blockfrost.NetworkInfo, error)
		LatestEpoch(ctx context.Context) (*blockfrost.Epoch, error)
		ActivePoolCount(ctx context.Context) (int, error)
	}
	PriceSource interface {
		ADAPrice(ctx context.Context) (float64, error)
	}
	ActivityScanner interface {
		Scan(ctx context.Context, cfg model.ScanConfig) (model.ScanResult, error)
	}
)

const statWorkers = 4

// Collector assembles a Snapshot from network statistics and an activity scan.
type Collector struct {
	network    string
	stats      NetworkSource
	prices     PriceSource
	scanner    ActivityScanner
	scanConfig model.ScanConfig
	genesis    time.Time
	logger     *zap.Logger
	now        func() time.Time
}

// NewCollector builds a Collector.
func NewCollector(
	network string,
	stats NetworkSource,
	prices PriceSource,
	scanner ActivityScanner,
	scanConfig model.ScanConfig,
	logger *zap.Logger,
) (*Collector, error) {
	if stats == nil {
		return nil, errors.New("network source is required")
	}
	if prices == nil {
		return nil, errors.New("price source is required")
	}
	if scanner == nil {
		return nil, errors.New("activity scanner is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		network:    network,
		stats:      stats,
		prices:     prices,
		scanner:    scanner,
		scanConfig: scanConfig,
		genesis:    CardanoGenesis,
		logger:     logger.Named("collector").With(zap.String("network", network)),
		now:        time.Now,
	}, nil
}

type statTask struct {
	name  string
	fetch func(ctx context.Context, snap *Snapshot) error
}

// Collect fetches every statistic. Network, epoch, pool and price failures only leave their
// fields zero. The activity scan runs after them and its failure fails the collection.
func (c *Collector) Collect(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{
		Network:     c.network,
		CollectedAt: c.now().UTC(),
	}
	snap.UptimeDays = UptimeDays(c.genesis, snap.CollectedAt)

	tasks := []statTask{
		{name: "network", fetch: c.fetchNetwork},
		{name: "epoch", fetch: c.fetchEpoch},
		{name: "pools", fetch: c.fetchPools},
		{name: "price", fetch: c.fetchPrice},
	}
	err := workerpool.Process(ctx, statWorkers, tasks, func(ctx context.Context, task statTask) error {
		if err := task.fetch(ctx, &snap); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Warn("statistic unavailable", zap.String("stat", task.name), zap.Error(err))
		}
		return nil
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("collect network statistics: %w", err)
	}

	activity, err := c.scanner.Scan(ctx, c.scanConfig)
	if err != nil {
		return Snapshot{}, fmt.Errorf("scan activity: %w", err)
	}
	snap.Activity = activity
	snap.Transactions24h = activity.TransactionCount
	snap.ActiveWallets24h = activity.ActiveWalletCount
	snap.BlockHeight = activity.TipHeight
	if snap.Epoch == 0 {
		snap.Epoch = activity.Epoch
	}

	c.logger.Info("snapshot collected",
		zap.Int64("block_height", snap.BlockHeight),
		zap.Int64("epoch", snap.Epoch),
		zap.Int64("transactions_24h", snap.Transactions24h),
		zap.Int64("active_wallets_24h", snap.ActiveWallets24h),
		zap.Bool("partial_scan", activity.Partial))
	return snap, nil
}

func (c *Collector) fetchNetwork(ctx context.Context, snap *Snapshot) error {
	info, err := c.stats.Network(ctx)
	if err != nil {
		return err
	}
	snap.TVL = info.CirculatingSupply
	snap.StakedAda = info.ActiveStake
	snap.TotalSupply = info.TotalSupply
	snap.TreasuryAda = info.Treasury
	return nil
}

func (c *Collector) fetchEpoch(ctx context.Context, snap *Snapshot) error {
	epoch, err := c.stats.LatestEpoch(ctx)
	if err != nil {
		return err
	}
	snap.Epoch = epoch.Number
	return nil
}

func (c *Collector) fetchPools(ctx context.Context, snap *Snapshot) error {
	count, err := c.stats.ActivePoolCount(ctx)
	if err != nil {
		return err
	}
	snap.ActiveStakePools = count
	return nil
}

func (c *Collector) fetchPrice(ctx context.Context, snap *Snapshot) error {
	p, err := c.prices.ADAPrice(ctx)
	if err != nil {
		return err
	}
	snap.AdaPrice = p
	return nil
}
