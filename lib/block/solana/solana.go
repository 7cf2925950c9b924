// Package solana implements block.Chain for Solana JSON-RPC nodes.
package solana

import (
	"context"
	"time"

	"github.com/tarancss/selene/lib/block"
	"github.com/tarancss/selene/lib/request"
)

// avgBlock is the target slot time of the cluster.
const avgBlock = 400 * time.Millisecond

// Solana is a connection to a Solana JSON-RPC endpoint.
type Solana struct {
	h          *request.Handler
	endpoint   string
	commitment block.Commitment
}

// Init returns a connection to the node at endpoint, which must carry any credentials it needs. An empty commitment
// lets the node use its default.
func Init(h *request.Handler, endpoint string, commitment block.Commitment) *Solana {
	return &Solana{h: h, endpoint: endpoint, commitment: commitment}
}

// AvgBlock returns the average time to produce a block.
func (s *Solana) AvgBlock() time.Duration {
	return avgBlock
}

// Close ends the connection. The underlying http.Client is shared and stays open.
func (s *Solana) Close() {}

type config struct {
	Commitment block.Commitment `json:"commitment,omitempty"`
}

// withContext is the shape of results that report the slot they were computed at.
type withContext[T any] struct {
	Context struct {
		Slot uint64 `json:"slot"`
	} `json:"context"`
	Value T `json:"value"`
}

func (s *Solana) params(args ...interface{}) []interface{} {
	if s.commitment == "" {
		return append([]interface{}{}, args...)
	}

	return append(args, config{Commitment: s.commitment})
}

// Height returns the current block height.
func (s *Solana) Height(ctx context.Context) (uint64, error) {
	return request.Call[uint64](ctx, s.h, s.endpoint, "getBlockHeight", s.params())
}

// Slot returns the current slot.
func (s *Solana) Slot(ctx context.Context) (uint64, error) {
	return request.Call[uint64](ctx, s.h, s.endpoint, "getSlot", s.params())
}

// LatestBlockhash returns the latest blockhash.
func (s *Solana) LatestBlockhash(ctx context.Context) (bh block.Blockhash, err error) {
	var res withContext[block.Blockhash]

	if res, err = request.Call[withContext[block.Blockhash]](ctx, s.h, s.endpoint, "getLatestBlockhash",
		s.params()); err != nil {
		return
	}

	if res.Value.Hash == "" {
		return bh, block.ErrNoBlockhash
	}

	bh = res.Value
	bh.Slot = res.Context.Slot

	return
}

// Balance returns the balance of account in lamports.
func (s *Solana) Balance(ctx context.Context, account string) (uint64, error) {
	res, err := request.Call[withContext[uint64]](ctx, s.h, s.endpoint, "getBalance", s.params(account))

	return res.Value, err
}
