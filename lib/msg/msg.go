// Package msg defines the interface for the message brokers that carry webhook deliveries from the http intake of
// the relay to the goroutines that turn them into chat notifications.
//
// Consumers acknowledge with the mutex handed to GetBatches: the broker locks it after pushing a batch and only takes
// the next one (acknowledging the previous to the broker, if it supports it) once the consumer unlocks it. The
// consumer must lock the mutex before calling GetBatches.
package msg

import (
	"errors"
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/tarancss/selene/lib/helius/types"
)

// Errors returned by brokers.
var (
	ErrClosed    = errors.New("broker closed")
	ErrQueueFull = errors.New("broker queue full")
)

// Batch is one webhook delivery: the enhanced transactions posted by the provider in a single request.
type Batch struct {
	ID       string                      `json:"id"`
	Received time.Time                   `json:"received"`
	Txs      []types.EnhancedTransaction `json:"txs"`
}

//nolint:gochecknoglobals // shared monotonic entropy
var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)
)

// NewID returns a new ULID. IDs sort by creation time.
func NewID(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// NewBatch returns a batch for txs received now, identified by a new ULID.
func NewBatch(txs []types.EnhancedTransaction) Batch {
	now := time.Now().UTC()

	return Batch{ID: NewID(now), Received: now, Txs: txs}
}

// MsgBroker publishes and consumes batches per network (cluster name).
type MsgBroker interface { //nolint:revive // name kept for all brokers
	Setup() error
	Close() error

	// methods for the webhook intake
	SendBatch(net string, b Batch) error

	// methods for the notifier
	GetBatches(net string, mut *sync.Mutex) (<-chan Batch, <-chan error, error)
}
