// Package cache holds the most recent snapshot for a fixed time.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/snapshot"
)

// DefaultTTL is how long a snapshot stays valid.
const DefaultTTL = 24 * time.Hour

// Memory is a process-local snapshot cache.
type Memory struct {
	mu    sync.Mutex
	entry *snapshot.Entry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemory creates a Memory cache. A non-positive ttl selects DefaultTTL.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{ttl: ttl, now: time.Now}
}

func (m *Memory) Get(_ context.Context) (snapshot.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.entry == nil {
		return snapshot.Entry{}, snapshot.ErrCacheMiss
	}
	if m.entry.Expired(m.now()) {
		m.entry = nil
		return snapshot.Entry{}, snapshot.ErrCacheMiss
	}
	return *m.entry, nil
}

func (m *Memory) Set(_ context.Context, snap snapshot.Snapshot) (snapshot.Entry, error) {
	now := m.now()
	entry := snapshot.Entry{
		Snapshot:  snap,
		CachedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}

	m.mu.Lock()
	m.entry = &entry
	m.mu.Unlock()
	return entry, nil
}

func (m *Memory) Invalidate(_ context.Context) error {
	m.mu.Lock()
	m.entry = nil
	m.mu.Unlock()
	return nil
}

// Info reports the state of the cache, including an expired entry not yet evicted.
func (m *Memory) Info(_ context.Context) (snapshot.CacheInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.entry == nil {
		return snapshot.CacheInfo{}, nil
	}
	return snapshot.CacheInfo{
		HasCache:  true,
		CachedAt:  m.entry.CachedAt,
		ExpiresAt: m.entry.ExpiresAt,
		IsExpired: m.entry.Expired(m.now()),
	}, nil
}
