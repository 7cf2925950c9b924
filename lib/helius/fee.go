package helius

import (
	"context"

	"github.com/tarancss/selene/lib/helius/types"
	"github.com/tarancss/selene/lib/request"
)

// GetPriorityFeeEstimate estimates the priority fee of a transaction or set of accounts. The result holds either a
// single estimate or every level, depending on the options sent.
func (c *Client) GetPriorityFeeEstimate(ctx context.Context,
	r types.PriorityFeeRequest) (types.PriorityFeeEstimate, error) {
	return call[types.PriorityFeeEstimate](ctx, c, "getPriorityFeeEstimate", []types.PriorityFeeRequest{r})
}

// PriorityFee returns the estimate at level for a serialized transaction or a list of accounts.
func (c *Client) PriorityFee(ctx context.Context, transaction string, accountKeys []string,
	level types.PriorityLevel) (float64, error) {
	e, err := c.GetPriorityFeeEstimate(ctx, types.PriorityFeeRequest{
		Transaction: transaction, AccountKeys: accountKeys, Options: types.FeeLevel(level),
	})
	if err != nil {
		return 0, err
	}

	if e.Estimate == nil {
		return 0, &request.Error{Kind: request.KindInvalidFeeResponse, Text: "priorityFeeLevels"}
	}

	return *e.Estimate, nil
}

// PriorityFeeLevels returns every level for a serialized transaction or a list of accounts.
func (c *Client) PriorityFeeLevels(ctx context.Context, transaction string,
	accountKeys []string) (types.PriorityFeeLevels, error) {
	e, err := c.GetPriorityFeeEstimate(ctx, types.PriorityFeeRequest{
		Transaction: transaction, AccountKeys: accountKeys, Options: types.AllFeeLevels(),
	})
	if err != nil {
		return types.PriorityFeeLevels{}, err
	}

	if e.Levels == nil {
		return types.PriorityFeeLevels{}, &request.Error{Kind: request.KindInvalidFeeResponse,
			Text: "priorityFeeEstimate"}
	}

	return *e.Levels, nil
}
