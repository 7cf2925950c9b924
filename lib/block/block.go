// Package block defines the interface required for blockchain connections.
package block

import (
	"context"
	"errors"
	"time"
)

// Commitment is the level of confirmation a query is answered with.
type Commitment string

// Commitment levels, from fastest to safest.
const (
	Processed Commitment = "processed"
	Confirmed Commitment = "confirmed"
	Finalized Commitment = "finalized"
)

// Blockhash is a recent blockhash and the last block height at which a transaction using it is valid.
type Blockhash struct {
	Slot                 uint64 `json:"slot"`
	Hash                 string `json:"blockhash"`
	LastValidBlockHeight uint64 `json:"lastValidBlockHeight"`
}

// ErrNoBlockhash is returned when the node answers without a blockhash.
var ErrNoBlockhash = errors.New("node did not return a blockhash")

// Chain is a read-only connection to a blockchain node. Implementations are safe for concurrent use.
type Chain interface {
	// member-type methods
	AvgBlock() time.Duration // average block production time
	// methods
	Close()
	Height(ctx context.Context) (uint64, error)
	Slot(ctx context.Context) (uint64, error)
	LatestBlockhash(ctx context.Context) (Blockhash, error)
	Balance(ctx context.Context, account string) (uint64, error)
}
