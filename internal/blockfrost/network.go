package blockfrost

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/cardanopulse-backend/pkg/safe"
)

// NetworkInfo holds supply and stake figures in lovelace.
type NetworkInfo struct {
	MaxSupply         int64
	TotalSupply       int64
	CirculatingSupply int64
	Treasury          int64
	Reserves          int64
	LiveStake         int64
	ActiveStake       int64
}

// Epoch describes the current epoch.
type Epoch struct {
	Number  int64
	TxCount int64
}

type networkResponse struct {
	Supply struct {
		Max         string `json:"max"`
		Total       string `json:"total"`
		Circulating string `json:"circulating"`
		Locked      string `json:"locked"`
		Treasury    string `json:"treasury"`
		Reserves    string `json:"reserves"`
	} `json:"supply"`
	Stake struct {
		Live   string `json:"live"`
		Active string `json:"active"`
	} `json:"stake"`
}

type epochResponse struct {
	Epoch   int64 `json:"epoch"`
	TxCount int64 `json:"tx_count"`
}

// Network returns supply and stake statistics.
func (c *Client) Network(ctx context.Context) (*NetworkInfo, error) {
	var res networkResponse
	if err := c.get(ctx, "network", "/network", nil, nil, &res); err != nil {
		return nil, err
	}

	info := &NetworkInfo{}
	fields := []struct {
		name string
		raw  string
		dst  *int64
	}{
		{"max supply", res.Supply.Max, &info.MaxSupply},
		{"total supply", res.Supply.Total, &info.TotalSupply},
		{"circulating supply", res.Supply.Circulating, &info.CirculatingSupply},
		{"treasury", res.Supply.Treasury, &info.Treasury},
		{"reserves", res.Supply.Reserves, &info.Reserves},
		{"live stake", res.Stake.Live, &info.LiveStake},
		{"active stake", res.Stake.Active, &info.ActiveStake},
	}
	for _, f := range fields {
		v, err := safe.ParseAmount(f.raw)
		if err != nil {
			return nil, fmt.Errorf("network %s: %w", f.name, err)
		}
		*f.dst = v
	}
	return info, nil
}

// LatestEpoch returns the current epoch.
func (c *Client) LatestEpoch(ctx context.Context) (*Epoch, error) {
	var res epochResponse
	if err := c.get(ctx, "latest_epoch", "/epochs/latest", nil, nil, &res); err != nil {
		return nil, err
	}
	return &Epoch{Number: res.Epoch, TxCount: res.TxCount}, nil
}

// ActivePoolCount counts registered, non-retired stake pools by walking the pool listing.
func (c *Client) ActivePoolCount(ctx context.Context) (int, error) {
	pools, err := paginate[string](ctx, c, "pools", "/pools", nil)
	if err != nil {
		return 0, err
	}
	return len(pools), nil
}
