// Package snapshot collects, caches and describes daily network statistics snapshots.
package snapshot

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/model"
)

// ErrCacheMiss is returned by caches that hold no unexpired snapshot.
var ErrCacheMiss = errors.New("snapshot cache miss")

// Snapshot is the set of statistics published once per day. Amounts are in lovelace.
type Snapshot struct {
	Network          string           `json:"network"`
	CollectedAt      time.Time        `json:"collectedAt"`
	UptimeDays       int              `json:"uptime"`
	TVL              int64            `json:"tvl"`
	StakedAda        int64            `json:"stakedAda"`
	TotalSupply      int64            `json:"totalSupply"`
	TreasuryAda      int64            `json:"treasuryAda"`
	ActiveStakePools int              `json:"activeStakePools"`
	Transactions24h  int64            `json:"transactions24h"`
	ActiveWallets24h int64            `json:"activeWallets24h"`
	BlockHeight      int64            `json:"blockHeight"`
	Epoch            int64            `json:"epoch"`
	AdaPrice         float64          `json:"adaPrice"`
	Activity         model.ScanResult `json:"activity"`
}

// Entry is a cached snapshot with its lifetime.
type Entry struct {
	Snapshot  Snapshot  `json:"snapshot"`
	CachedAt  time.Time `json:"cachedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the entry is no longer valid at now.
func (e Entry) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// CacheInfo describes cache state without returning the snapshot.
type CacheInfo struct {
	HasCache  bool      `json:"hasCache"`
	CachedAt  time.Time `json:"cachedAt,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
	IsExpired bool      `json:"isExpired"`
}

// UptimeDays returns whole days since genesis, rounded up.
func UptimeDays(genesis, now time.Time) int {
	diff := now.Sub(genesis)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}
