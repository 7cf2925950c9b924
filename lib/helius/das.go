package helius

import (
	"context"

	"github.com/tarancss/selene/lib/helius/types"
	"github.com/tarancss/selene/lib/request"
)

func call[T, P any](ctx context.Context, c *Client, method string, params P) (T, error) {
	return request.Call[T](ctx, c.h, c.rpcURL, method, params)
}

// GetAsset returns an asset by its id.
func (c *Client) GetAsset(ctx context.Context, p types.GetAssetParams) (types.Asset, error) {
	return call[types.Asset](ctx, c, "getAsset", p)
}

// GetAssetBatch returns several assets by id.
func (c *Client) GetAssetBatch(ctx context.Context, p types.GetAssetBatchParams) ([]types.Asset, error) {
	return call[[]types.Asset](ctx, c, "getAssetBatch", p)
}

// GetAssetProof returns the merkle proof of a compressed asset.
func (c *Client) GetAssetProof(ctx context.Context, p types.GetAssetProofParams) (types.AssetProof, error) {
	return call[types.AssetProof](ctx, c, "getAssetProof", p)
}

// GetAssetProofBatch returns the proofs of several assets keyed by asset id.
func (c *Client) GetAssetProofBatch(ctx context.Context,
	p types.GetAssetProofBatchParams) (map[string]types.AssetProof, error) {
	return call[map[string]types.AssetProof](ctx, c, "getAssetProofBatch", p)
}

// GetAssetsByOwner lists the assets of an owner.
func (c *Client) GetAssetsByOwner(ctx context.Context, p types.GetAssetsByOwnerParams) (types.AssetList, error) {
	p.Pagination = p.Pagination.WithDefaults()

	return call[types.AssetList](ctx, c, "getAssetsByOwner", p)
}

// GetAssetsByAuthority lists the assets of an update authority.
func (c *Client) GetAssetsByAuthority(ctx context.Context,
	p types.GetAssetsByAuthorityParams) (types.AssetList, error) {
	p.Pagination = p.Pagination.WithDefaults()

	return call[types.AssetList](ctx, c, "getAssetsByAuthority", p)
}

// GetAssetsByCreator lists the assets of a creator.
func (c *Client) GetAssetsByCreator(ctx context.Context, p types.GetAssetsByCreatorParams) (types.AssetList, error) {
	p.Pagination = p.Pagination.WithDefaults()

	return call[types.AssetList](ctx, c, "getAssetsByCreator", p)
}

// GetAssetsByGroup lists the assets of a group, such as a collection.
func (c *Client) GetAssetsByGroup(ctx context.Context, p types.GetAssetsByGroupParams) (types.AssetList, error) {
	p.Pagination = p.Pagination.WithDefaults()

	return call[types.AssetList](ctx, c, "getAssetsByGroup", p)
}

// SearchAssets lists the assets matching every set filter.
func (c *Client) SearchAssets(ctx context.Context, p types.SearchAssetsParams) (types.AssetList, error) {
	p.Pagination = p.Pagination.WithDefaults()

	return call[types.AssetList](ctx, c, "searchAssets", p)
}

// GetTokenAccounts lists token accounts by owner or mint.
func (c *Client) GetTokenAccounts(ctx context.Context, p types.GetTokenAccountsParams) (types.TokenAccounts, error) {
	if p.Page == 0 {
		p.Page = 1
	}

	return call[types.TokenAccounts](ctx, c, "getTokenAccounts", p)
}
