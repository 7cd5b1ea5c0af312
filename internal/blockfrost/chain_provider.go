package blockfrost

import (
	"context"
	"strconv"
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/activity/chain"
)

var _ chain.ChainDataProvider = (*Client)(nil)

type blockResponse struct {
	Time    int64  `json:"time"`
	Height  *int64 `json:"height"`
	Hash    string `json:"hash"`
	Slot    *int64 `json:"slot"`
	Epoch   *int64 `json:"epoch"`
	TxCount int64  `json:"tx_count"`
}

type utxoEntry struct {
	Address string `json:"address"`
}

type txUtxosResponse struct {
	Hash    string      `json:"hash"`
	Inputs  []utxoEntry `json:"inputs"`
	Outputs []utxoEntry `json:"outputs"`
}

// LatestBlock returns the chain tip.
func (c *Client) LatestBlock(ctx context.Context) (*chain.LatestBlock, error) {
	var res blockResponse
	if err := c.get(ctx, "latest_block", "/blocks/latest", nil, nil, &res); err != nil {
		return nil, err
	}
	return &chain.LatestBlock{
		Height: res.Height,
		Epoch:  res.Epoch,
		Time:   time.Unix(res.Time, 0).UTC(),
	}, nil
}

// BlockByHeight returns metadata of the block at height.
func (c *Client) BlockByHeight(ctx context.Context, height int64) (*chain.Block, error) {
	var res blockResponse
	params := map[string]string{"hash_or_number": strconv.FormatInt(height, 10)}
	if err := c.get(ctx, "block_by_height", "/blocks/{hash_or_number}", params, nil, &res); err != nil {
		return nil, err
	}
	return &chain.Block{
		Height: height,
		Hash:   res.Hash,
		Time:   time.Unix(res.Time, 0).UTC(),
	}, nil
}

// BlockTransactionHashes returns every transaction hash of a block in chain order.
func (c *Client) BlockTransactionHashes(ctx context.Context, blockHash string) ([]string, error) {
	params := map[string]string{"hash_or_number": blockHash}
	return paginate[string](ctx, c, "block_txs", "/blocks/{hash_or_number}/txs", params)
}

// TransactionAddresses returns the input and output addresses of a transaction.
func (c *Client) TransactionAddresses(ctx context.Context, txHash string) (*chain.TransactionAddresses, error) {
	var res txUtxosResponse
	params := map[string]string{"hash": txHash}
	if err := c.get(ctx, "tx_utxos", "/txs/{hash}/utxos", params, nil, &res); err != nil {
		return nil, err
	}

	out := &chain.TransactionAddresses{
		Inputs:  make([]chain.AddressEntry, 0, len(res.Inputs)),
		Outputs: make([]chain.AddressEntry, 0, len(res.Outputs)),
	}
	for _, in := range res.Inputs {
		out.Inputs = append(out.Inputs, chain.AddressEntry{Address: in.Address})
	}
	for _, o := range res.Outputs {
		out.Outputs = append(out.Outputs, chain.AddressEntry{Address: o.Address})
	}
	return out, nil
}
