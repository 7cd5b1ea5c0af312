// Package model defines the transient values produced and consumed by a single activity scan.
package model

import "time"

// ChainTip is the chain head observed at the start of a scan.
type ChainTip struct {
	Height     int64
	Epoch      int64
	ObservedAt time.Time
}

// BlockRef identifies the block currently examined by the walker.
type BlockRef struct {
	Height int64
	Hash   string
	Time   time.Time
}

// TxSample is the ordered list of transaction hashes aggregated for one block.
type TxSample []string

// Truncate returns at most size leading hashes. A size of zero keeps every hash.
func (s TxSample) Truncate(size int) TxSample {
	if size <= 0 || len(s) <= size {
		return s
	}
	return s[:size]
}

// AddressSet accumulates distinct addresses over one scan. It only grows and is not safe for concurrent use.
type AddressSet struct {
	items map[string]struct{}
}

// NewAddressSet returns an empty AddressSet.
func NewAddressSet() *AddressSet {
	return &AddressSet{items: make(map[string]struct{})}
}

// Add inserts addr and reports whether it was new. Empty addresses are ignored.
func (s *AddressSet) Add(addr string) bool {
	if addr == "" {
		return false
	}
	if _, ok := s.items[addr]; ok {
		return false
	}
	s.items[addr] = struct{}{}
	return true
}

// Len returns the number of distinct addresses.
func (s *AddressSet) Len() int {
	return len(s.items)
}

// StopReason tells why the walker stopped.
type StopReason string

const (
	// StopWindow means the walker reached a block older than the window start.
	StopWindow StopReason = "window"
	// StopUnavailable means a block could not be fetched.
	StopUnavailable StopReason = "unavailable"
	// StopMaxBlocks means the block budget ran out before the window did.
	StopMaxBlocks StopReason = "max_blocks"
	// StopChainStart means the walker passed height zero.
	StopChainStart StopReason = "chain_start"
	// StopCanceled means the scan context was canceled mid-walk.
	StopCanceled StopReason = "canceled"
)

// ScanResult is the outcome of one scan. Counts are lower bounds.
type ScanResult struct {
	TransactionCount  int64      `json:"transactionCount"`
	ActiveWalletCount int64      `json:"activeWalletCount"`
	Epoch             int64      `json:"epoch"`
	TipHeight         int64      `json:"tipHeight"`
	OldestHeight      int64      `json:"oldestHeight"`
	BlocksChecked     int        `json:"blocksChecked"`
	WindowStart       time.Time  `json:"windowStart"`
	SampleSize        int        `json:"sampleSize"`
	StopReason        StopReason `json:"stopReason"`
	Partial           bool       `json:"partial"`
}
