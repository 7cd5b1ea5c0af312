package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/chain"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/model"
	"go.uber.org/zap"
)

const blockSpacing = 20 * time.Second

type fakeBlock struct {
	hash      string
	time      time.Time
	txs       []string
	err       error
	hashesErr error
}

type fakeProvider struct {
	tip     *chain.LatestBlock
	tipErr  error
	blocks  map[int64]fakeBlock
	txs     map[string]*chain.TransactionAddresses
	txErrs  map[string]error
	onBlock func(height int64)

	visited    []int64
	blockCalls int
	hashCalls  int
	txCalls    int
}

// newFakeChain builds blocks 0..tip spaced 20s apart ending at now. Block h holds three
// transactions; each has one unique input address and a shared output address.
func newFakeChain(tip int64, now time.Time) *fakeProvider {
	height := tip
	epoch := int64(512)
	p := &fakeProvider{
		tip:    &chain.LatestBlock{Height: &height, Epoch: &epoch, Time: now},
		blocks: make(map[int64]fakeBlock),
		txs:    make(map[string]*chain.TransactionAddresses),
		txErrs: make(map[string]error),
	}
	for h := int64(0); h <= tip; h++ {
		b := fakeBlock{
			hash: fmt.Sprintf("block-%d", h),
			time: now.Add(-time.Duration(tip-h) * blockSpacing),
		}
		for i := 0; i < 3; i++ {
			txHash := fmt.Sprintf("tx-%d-%d", h, i)
			b.txs = append(b.txs, txHash)
			p.txs[txHash] = &chain.TransactionAddresses{
				Inputs:  []chain.AddressEntry{{Address: fmt.Sprintf("addr-%d-%d", h, i)}},
				Outputs: []chain.AddressEntry{{Address: "shared"}, {Address: ""}},
			}
		}
		p.blocks[h] = b
	}
	return p
}

func (p *fakeProvider) LatestBlock(context.Context) (*chain.LatestBlock, error) {
	if p.tipErr != nil {
		return nil, p.tipErr
	}
	return p.tip, nil
}

func (p *fakeProvider) BlockByHeight(_ context.Context, height int64) (*chain.Block, error) {
	p.blockCalls++
	p.visited = append(p.visited, height)
	if p.onBlock != nil {
		p.onBlock(height)
	}
	b, ok := p.blocks[height]
	if !ok {
		return nil, &chain.ProviderError{Operation: "block_by_height", StatusCode: 404}
	}
	if b.err != nil {
		return nil, b.err
	}
	return &chain.Block{Height: height, Hash: b.hash, Time: b.time}, nil
}

func (p *fakeProvider) BlockTransactionHashes(_ context.Context, blockHash string) ([]string, error) {
	p.hashCalls++
	for _, b := range p.blocks {
		if b.hash != blockHash {
			continue
		}
		if b.hashesErr != nil {
			return nil, b.hashesErr
		}
		return append([]string(nil), b.txs...), nil
	}
	return nil, &chain.ProviderError{Operation: "block_txs", StatusCode: 404}
}

func (p *fakeProvider) TransactionAddresses(_ context.Context, txHash string) (*chain.TransactionAddresses, error) {
	p.txCalls++
	if err := p.txErrs[txHash]; err != nil {
		return nil, err
	}
	tx, ok := p.txs[txHash]
	if !ok {
		return nil, errors.New("unknown tx")
	}
	return tx, nil
}

type recordingMetrics struct {
	addressSizes []int
	failures     map[string]int
	retries      map[string]int
	scans        int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{failures: map[string]int{}, retries: map[string]int{}}
}

func (m *recordingMetrics) ObserveScan(error, model.ScanResult, time.Time) { m.scans++ }
func (m *recordingMetrics) ObserveBlock(_ int64, _ int, addresses int) {
	m.addressSizes = append(m.addressSizes, addresses)
}
func (m *recordingMetrics) ObserveFailure(stage string) { m.failures[stage]++ }
func (m *recordingMetrics) ObserveRetry(stage string)   { m.retries[stage]++ }

type sleepRecorder struct {
	calls []time.Duration
}

func (r *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	r.calls = append(r.calls, d)
	return ctx.Err()
}

func newTestScanner(provider ChainDataProvider, metrics Metrics, now time.Time, sleep func(context.Context, time.Duration) error) *Scanner {
	return &Scanner{
		provider: provider,
		metrics:  metrics,
		logger:   zap.NewNop(),
		sleep:    sleep,
		now:      func() time.Time { return now },
	}
}

func rateLimited(op string) error {
	return &chain.ProviderError{Operation: op, StatusCode: 429, RateLimited: true}
}
