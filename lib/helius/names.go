package helius

import (
	"context"

	"github.com/tarancss/selene/lib/helius/types"
	"github.com/tarancss/selene/lib/request"
)

// GetNames returns the domain names owned by address.
func (c *Client) GetNames(ctx context.Context, address string) (types.Names, error) {
	u, err := c.url("addresses", address, "names")
	if err != nil {
		return types.Names{}, err
	}

	return request.Get[types.Names](ctx, c.h, u)
}
