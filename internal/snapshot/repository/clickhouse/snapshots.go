package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/model"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/snapshot"
	"github.com/goodnatureofminers/cardanopulse-backend/pkg/safe"
)

const insertSnapshotQuery = `
INSERT INTO cardano_snapshots (
	network,
	collected_at,
	uptime_days,
	tvl,
	staked_ada,
	total_supply,
	treasury_ada,
	active_stake_pools,
	transactions_24h,
	active_wallets_24h,
	block_height,
	epoch,
	ada_price,
	oldest_height,
	window_start,
	blocks_checked,
	sample_size,
	stop_reason,
	partial
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const snapshotsSinceQuery = `
SELECT
	network,
	collected_at,
	uptime_days,
	tvl,
	staked_ada,
	total_supply,
	treasury_ada,
	active_stake_pools,
	transactions_24h,
	active_wallets_24h,
	block_height,
	epoch,
	ada_price,
	oldest_height,
	window_start,
	blocks_checked,
	sample_size,
	stop_reason,
	partial
FROM cardano_snapshots FINAL
WHERE network = ? AND collected_at >= ?
ORDER BY collected_at`

type snapshotRow struct {
	Network          string    `ch:"network"`
	CollectedAt      time.Time `ch:"collected_at"`
	UptimeDays       int64     `ch:"uptime_days"`
	TVL              int64     `ch:"tvl"`
	StakedAda        int64     `ch:"staked_ada"`
	TotalSupply      int64     `ch:"total_supply"`
	TreasuryAda      int64     `ch:"treasury_ada"`
	ActiveStakePools int64     `ch:"active_stake_pools"`
	Transactions24h  int64     `ch:"transactions_24h"`
	ActiveWallets24h int64     `ch:"active_wallets_24h"`
	BlockHeight      uint64    `ch:"block_height"`
	Epoch            uint64    `ch:"epoch"`
	AdaPrice         float64   `ch:"ada_price"`
	OldestHeight     uint64    `ch:"oldest_height"`
	WindowStart      time.Time `ch:"window_start"`
	BlocksChecked    int64     `ch:"blocks_checked"`
	SampleSize       int64     `ch:"sample_size"`
	StopReason       string    `ch:"stop_reason"`
	Partial          bool      `ch:"partial"`
}

func (r snapshotRow) toSnapshot() (snapshot.Snapshot, error) {
	blockHeight, err := safe.Int64(r.BlockHeight)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("block height: %w", err)
	}
	epoch, err := safe.Int64(r.Epoch)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("epoch: %w", err)
	}
	oldest, err := safe.Int64(r.OldestHeight)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("oldest height: %w", err)
	}

	return snapshot.Snapshot{
		Network:          r.Network,
		CollectedAt:      r.CollectedAt.UTC(),
		UptimeDays:       int(r.UptimeDays),
		TVL:              r.TVL,
		StakedAda:        r.StakedAda,
		TotalSupply:      r.TotalSupply,
		TreasuryAda:      r.TreasuryAda,
		ActiveStakePools: int(r.ActiveStakePools),
		Transactions24h:  r.Transactions24h,
		ActiveWallets24h: r.ActiveWallets24h,
		BlockHeight:      blockHeight,
		Epoch:            epoch,
		AdaPrice:         r.AdaPrice,
		Activity: model.ScanResult{
			TransactionCount:  r.Transactions24h,
			ActiveWalletCount: r.ActiveWallets24h,
			Epoch:             epoch,
			TipHeight:         blockHeight,
			OldestHeight:      oldest,
			WindowStart:       r.WindowStart.UTC(),
			BlocksChecked:     int(r.BlocksChecked),
			SampleSize:        int(r.SampleSize),
			StopReason:        model.StopReason(r.StopReason),
			Partial:           r.Partial,
		},
	}, nil
}

type heights struct {
	block, epoch, oldest uint64
}

func snapshotHeights(snap snapshot.Snapshot) (heights, error) {
	var (
		h   heights
		err error
	)
	if h.block, err = safe.Uint64(snap.BlockHeight); err != nil {
		return heights{}, fmt.Errorf("block height: %w", err)
	}
	if h.epoch, err = safe.Uint64(snap.Epoch); err != nil {
		return heights{}, fmt.Errorf("epoch: %w", err)
	}
	if h.oldest, err = safe.Uint64(snap.Activity.OldestHeight); err != nil {
		return heights{}, fmt.Errorf("oldest height: %w", err)
	}
	return h, nil
}

// InsertSnapshot stores one collected snapshot.
func (r *Repository) InsertSnapshot(ctx context.Context, snap snapshot.Snapshot) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_snapshot", err, start)
	}()

	h, err := snapshotHeights(snap)
	if err != nil {
		err = fmt.Errorf("insert snapshot: %w", err)
		return err
	}

	err = r.conn.Exec(ctx, insertSnapshotQuery,
		snap.Network,
		snap.CollectedAt.UTC(),
		int64(snap.UptimeDays),
		snap.TVL,
		snap.StakedAda,
		snap.TotalSupply,
		snap.TreasuryAda,
		int64(snap.ActiveStakePools),
		snap.Transactions24h,
		snap.ActiveWallets24h,
		h.block,
		h.epoch,
		snap.AdaPrice,
		h.oldest,
		snap.Activity.WindowStart.UTC(),
		int64(snap.Activity.BlocksChecked),
		int64(snap.Activity.SampleSize),
		string(snap.Activity.StopReason),
		snap.Activity.Partial,
	)
	if err != nil {
		err = fmt.Errorf("insert snapshot: %w", err)
		return err
	}
	return nil
}

// SnapshotsSince returns the snapshots of a network collected at or after since, oldest first.
func (r *Repository) SnapshotsSince(ctx context.Context, network string, since time.Time) ([]snapshot.Snapshot, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("snapshots_since", err, start)
	}()

	var rows []snapshotRow
	if err = r.conn.Select(ctx, &rows, snapshotsSinceQuery, network, since.UTC()); err != nil {
		err = fmt.Errorf("select snapshots: %w", err)
		return nil, err
	}

	out := make([]snapshot.Snapshot, 0, len(rows))
	for _, row := range rows {
		snap, convErr := row.toSnapshot()
		if convErr != nil {
			err = fmt.Errorf("convert snapshot row: %w", convErr)
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}
