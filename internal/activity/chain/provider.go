// Package chain defines the contracts between the activity scanner and the chain-data providers it reads from.
package chain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ChainDataProvider is the read-only view of a remote chain used by the activity scanner.
type ChainDataProvider interface {
	LatestBlock(ctx context.Context) (*LatestBlock, error)
	BlockByHeight(ctx context.Context, height int64) (*Block, error)
	BlockTransactionHashes(ctx context.Context, blockHash string) ([]string, error)
	TransactionAddresses(ctx context.Context, txHash string) (*TransactionAddresses, error)
}

// LatestBlock is the chain head as reported by a provider. Height and Epoch are pointers
// because providers may omit them.
type LatestBlock struct {
	Height *int64
	Epoch  *int64
	Time   time.Time
}

// Block is block metadata returned for a single height.
type Block struct {
	Height int64
	Hash   string
	Time   time.Time
}

// TransactionAddresses lists the input and output entries of a transaction.
type TransactionAddresses struct {
	Inputs  []AddressEntry
	Outputs []AddressEntry
}

// AddressEntry is a single input or output. Address is empty when the provider has none.
type AddressEntry struct {
	Address string
}

// ProviderError is returned by providers for every failed call.
type ProviderError struct {
	Operation   string
	StatusCode  int
	RateLimited bool
	Err         error
}

func (e *ProviderError) Error() string {
	msg := e.Operation
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.RateLimited {
		msg += ": rate limited"
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsRateLimited reports whether err is a provider throttling error.
func IsRateLimited(err error) bool {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.RateLimited
	}
	return false
}
