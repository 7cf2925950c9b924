package helius

import (
	"context"

	"github.com/tarancss/selene/lib/helius/types"
	"github.com/tarancss/selene/lib/request"
)

// ParseTransactions parses up to types.MaxParseTransactions signatures in one call.
func (c *Client) ParseTransactions(ctx context.Context,
	r types.ParseTransactionsRequest) ([]types.EnhancedTransaction, error) {
	u, err := c.url("transactions")
	if err != nil {
		return nil, err
	}

	return request.Post[[]types.EnhancedTransaction](ctx, c.h, u, r)
}

// ParseAllTransactions parses any number of signatures, one call per chunk, and returns the transactions in order.
// Any failing chunk fails the whole call.
func (c *Client) ParseAllTransactions(ctx context.Context, signatures []string) ([]types.EnhancedTransaction, error) {
	txs := make([]types.EnhancedTransaction, 0, len(signatures))

	for _, r := range types.ParseTransactionsRequests(signatures) {
		part, err := c.ParseTransactions(ctx, r)
		if err != nil {
			return nil, err
		}

		txs = append(txs, part...)
	}

	return txs, nil
}

// ParsedTransactionHistory returns the latest enhanced transactions of address.
func (c *Client) ParsedTransactionHistory(ctx context.Context, address string) ([]types.EnhancedTransaction, error) {
	u, err := c.url("addresses", address, "transactions")
	if err != nil {
		return nil, err
	}

	return request.Get[[]types.EnhancedTransaction](ctx, c.h, u)
}
