// Package store defines the interface for database implementations used by the relay: the account names resolved
// through the provider and the log of relayed transactions.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/tarancss/selene/lib/helius/types"
)

// DefaultHooks is the number of relayed transactions returned when no limit is given.
const DefaultHooks = 20

// DB defines the methods required by the relay.
type DB interface {
	// names resolved for accounts
	SaveName(ctx context.Context, n Name) error
	LoadNames(ctx context.Context) ([]Name, error)
	// relayed transaction log
	SaveHook(ctx context.Context, h Hook) error
	GetHooks(ctx context.Context, limit int) ([]Hook, error)
	Close() error
}

// Errors returned.
var (
	ErrNameNotFound = errors.New("name was not found in store")
	ErrInvalidLimit = errors.New("limit must be positive")
	ErrUnknownType  = errors.New("unknown database type")
)

// Name is the resolved name of an account. An account without a name has Name equal to Address.
type Name struct {
	Address string    `json:"address" bson:"_id"`
	Name    string    `json:"name" bson:"name"`
	Updated time.Time `json:"updated" bson:"updated"`
}

// Hook is a relayed transaction.
type Hook struct {
	ID          string                `json:"id" bson:"_id"`
	Batch       string                `json:"batch" bson:"batch"`
	Net         string                `json:"net" bson:"net"`
	Signature   string                `json:"signature" bson:"signature"`
	Type        types.TransactionType `json:"type" bson:"type"`
	Source      types.Source          `json:"source" bson:"source"`
	Description string                `json:"description" bson:"description"`
	Slot        uint64                `json:"slot" bson:"slot"`
	Timestamp   int64                 `json:"timestamp" bson:"timestamp"`
	Received    time.Time             `json:"received" bson:"received"`
}

// NewHook builds the log entry of tx, received in batch at the given time.
func NewHook(id, batch, net string, received time.Time, tx types.EnhancedTransaction) Hook {
	return Hook{
		ID:          id,
		Batch:       batch,
		Net:         net,
		Signature:   tx.Signature,
		Type:        tx.Type,
		Source:      tx.Source,
		Description: tx.Description,
		Slot:        tx.Slot,
		Timestamp:   tx.Timestamp,
		Received:    received,
	}
}

// Limit returns the number of hooks to read for a requested limit: DefaultHooks when zero.
func Limit(limit int) (int, error) {
	switch {
	case limit == 0:
		return DefaultHooks, nil
	case limit < 0:
		return 0, ErrInvalidLimit
	}

	return limit, nil
}
