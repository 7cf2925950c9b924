package types

import (
	"github.com/shopspring/decimal"
)

// Pagination is embedded in the list queries. Page starts at 1; a zero Page is sent as 1.
type Pagination struct {
	Page   uint32 `json:"page"`
	Limit  uint32 `json:"limit,omitempty"`
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

// WithDefaults returns p with the first page selected when none was.
func (p Pagination) WithDefaults() Pagination {
	if p.Page == 0 {
		p.Page = 1
	}

	return p
}

// DisplayOptions toggles optional parts of asset responses.
type DisplayOptions struct {
	ShowFungible    bool `json:"showFungible"`
	ShowInscription bool `json:"showInscription"`
}

// AssetSorting orders asset listings.
type AssetSorting struct {
	SortBy        AssetSortBy        `json:"sortBy"`
	SortDirection AssetSortDirection `json:"sortDirection"`
}

// GetAssetParams are the params of getAsset.
type GetAssetParams struct {
	ID             string          `json:"id"`
	DisplayOptions *DisplayOptions `json:"displayOptions,omitempty"`
}

// GetAssetBatchParams are the params of getAssetBatch.
type GetAssetBatchParams struct {
	IDs            []string        `json:"ids"`
	DisplayOptions *DisplayOptions `json:"displayOptions,omitempty"`
}

// GetAssetProofParams are the params of getAssetProof.
type GetAssetProofParams struct {
	ID string `json:"id"`
}

// GetAssetProofBatchParams are the params of getAssetProofBatch.
type GetAssetProofBatchParams struct {
	IDs []string `json:"ids"`
}

// GetAssetsByOwnerParams are the params of getAssetsByOwner.
type GetAssetsByOwnerParams struct {
	OwnerAddress string `json:"ownerAddress"`
	Pagination
	DisplayOptions *DisplayOptions `json:"displayOptions,omitempty"`
	SortBy         *AssetSorting   `json:"sortBy,omitempty"`
}

// GetAssetsByAuthorityParams are the params of getAssetsByAuthority.
type GetAssetsByAuthorityParams struct {
	AuthorityAddress string `json:"authorityAddress"`
	Pagination
	DisplayOptions *DisplayOptions `json:"displayOptions,omitempty"`
	SortBy         *AssetSorting   `json:"sortBy,omitempty"`
}

// GetAssetsByCreatorParams are the params of getAssetsByCreator.
type GetAssetsByCreatorParams struct {
	CreatorAddress string `json:"creatorAddress"`
	OnlyVerified   bool   `json:"onlyVerified"`
	Pagination
	DisplayOptions *DisplayOptions `json:"displayOptions,omitempty"`
	SortBy         *AssetSorting   `json:"sortBy,omitempty"`
}

// GetAssetsByGroupParams are the params of getAssetsByGroup.
type GetAssetsByGroupParams struct {
	GroupKey   string `json:"groupKey"`
	GroupValue string `json:"groupValue"`
	Pagination
	DisplayOptions *DisplayOptions `json:"displayOptions,omitempty"`
	SortBy         *AssetSorting   `json:"sortBy,omitempty"`
}

// SearchAssetsParams are the params of searchAssets. Nil fields are not sent.
type SearchAssetsParams struct {
	Pagination
	SortBy            *AssetSorting   `json:"sortBy,omitempty"`
	CreatorAddress    *string         `json:"creatorAddress,omitempty"`
	OwnerAddress      *string         `json:"ownerAddress,omitempty"`
	JSONURI           *string         `json:"jsonUri,omitempty"`
	Grouping          []string        `json:"grouping,omitempty"`
	Burnt             *bool           `json:"burnt,omitempty"`
	Frozen            *bool           `json:"frozen,omitempty"`
	SupplyMint        *string         `json:"supplyMint,omitempty"`
	Supply            *uint32         `json:"supply,omitempty"`
	Interface         *Interface      `json:"interface,omitempty"`
	TokenType         *TokenType      `json:"tokenType,omitempty"`
	Delegate          *string         `json:"delegate,omitempty"`
	OwnerType         *OwnershipModel `json:"ownerType,omitempty"`
	RoyaltyAmount     *uint32         `json:"royaltyAmount,omitempty"`
	RoyaltyTarget     *string         `json:"royaltyTarget,omitempty"`
	RoyaltyTargetType *RoyaltyModel   `json:"royaltyTargetType,omitempty"`
	Compressible      *bool           `json:"compressible,omitempty"`
	Compressed        *bool           `json:"compressed,omitempty"`
}

// TokenAccountDisplayOptions toggles optional parts of getTokenAccounts.
type TokenAccountDisplayOptions struct {
	ShowZeroBalance bool `json:"showZeroBalance"`
}

// GetTokenAccountsParams are the params of getTokenAccounts. Either Owner or Mint should be set.
type GetTokenAccountsParams struct {
	Page           uint32                     `json:"page"`
	Limit          uint32                     `json:"limit,omitempty"`
	DisplayOptions TokenAccountDisplayOptions `json:"displayOptions"`
	Owner          string                     `json:"owner,omitempty"`
	Mint           string                     `json:"mint,omitempty"`
}

// Asset is a digital asset as returned by the DAS methods.
type Asset struct {
	Interface   Interface    `json:"interface"`
	ID          string       `json:"id"`
	Content     *Content     `json:"content,omitempty"`
	Authorities []Authority  `json:"authorities,omitempty"`
	Compression *Compression `json:"compression,omitempty"`
	Grouping    []Grouping   `json:"grouping,omitempty"`
	Royalty     *Royalty     `json:"royalty,omitempty"`
	Ownership   Ownership    `json:"ownership"`
	Creators    []Creator    `json:"creators,omitempty"`
	Uses        *Uses        `json:"uses,omitempty"`
	Supply      *Supply      `json:"supply,omitempty"`
	Mutable     bool         `json:"mutable"`
	Burnt       bool         `json:"burnt"`
	TokenInfo   *TokenInfo   `json:"token_info,omitempty"`
}

// AssetList is a page of assets.
type AssetList struct {
	GrandTotal *uint32 `json:"grand_total,omitempty"`
	Total      uint32  `json:"total"`
	Limit      uint32  `json:"limit"`
	Page       uint32  `json:"page"`
	Items      []Asset `json:"items"`
}

// AssetProof is the merkle proof of a compressed asset.
type AssetProof struct {
	Root      string   `json:"root"`
	Proof     []string `json:"proof"`
	NodeIndex uint32   `json:"node_index"`
	Leaf      string   `json:"leaf"`
	TreeID    string   `json:"tree_id"`
}

// Ownership of an asset.
type Ownership struct {
	Frozen         bool           `json:"frozen"`
	Delegated      bool           `json:"delegated"`
	Delegate       *string        `json:"delegate"`
	OwnershipModel OwnershipModel `json:"ownership_model"`
	Owner          string         `json:"owner"`
}

// Supply of a printable asset.
type Supply struct {
	PrintMaxSupply     uint32  `json:"print_max_supply"`
	PrintCurrentSupply uint32  `json:"print_current_supply"`
	EditionNonce       *uint32 `json:"edition_nonce"`
}

// Uses of an asset.
type Uses struct {
	UseMethod UseMethod `json:"use_method"`
	Remaining uint32    `json:"remaining"`
	Total     uint32    `json:"total"`
}

// Creator of an asset and its royalty share.
type Creator struct {
	Address  string `json:"address"`
	Share    uint32 `json:"share"`
	Verified bool   `json:"verified"`
}

// Royalty settings of an asset.
type Royalty struct {
	RoyaltyModel        RoyaltyModel `json:"royalty_model"`
	Target              *string      `json:"target"`
	Percent             float64      `json:"percent"`
	BasisPoints         uint32       `json:"basis_points"`
	PrimarySaleHappened bool         `json:"primary_sale_happened"`
	Locked              bool         `json:"locked"`
}

// Grouping places an asset in a collection.
type Grouping struct {
	GroupKey           string              `json:"group_key"`
	GroupValue         string              `json:"group_value"`
	Verified           *bool               `json:"verified,omitempty"`
	CollectionMetadata *CollectionMetadata `json:"collection_metadata,omitempty"`
}

// CollectionMetadata describes the collection of a grouping.
type CollectionMetadata struct {
	Name        string `json:"name,omitempty"`
	Symbol      string `json:"symbol,omitempty"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`
}

// Authority of an asset.
type Authority struct {
	Address string  `json:"address"`
	Scopes  []Scope `json:"scopes"`
}

// Links of an asset.
type Links struct {
	ExternalURL  string `json:"external_url,omitempty"`
	Image        string `json:"image,omitempty"`
	AnimationURL string `json:"animation_url,omitempty"`
}

// Content is the off-chain metadata of an asset.
type Content struct {
	Schema   string   `json:"$schema"`
	JSONURI  string   `json:"json_uri"`
	Files    []File   `json:"files,omitempty"`
	Metadata Metadata `json:"metadata"`
	Links    Links    `json:"links"`
}

// File attached to an asset.
type File struct {
	URI      string        `json:"uri,omitempty"`
	Mime     string        `json:"mime,omitempty"`
	CDNURI   string        `json:"cdn_uri,omitempty"`
	Quality  *FileQuality  `json:"quality,omitempty"`
	Contexts []FileContext `json:"contexts,omitempty"`
}

// FileQuality of a file.
type FileQuality struct {
	Schema string `json:"schema"`
}

// Metadata of an asset content.
type Metadata struct {
	Attributes  []Attribute `json:"attributes,omitempty"`
	Description string      `json:"description,omitempty"`
	Name        string      `json:"name"`
	Symbol      string      `json:"symbol"`
}

// Attribute is a trait of an asset. Value is any JSON value.
type Attribute struct {
	Value     interface{} `json:"value"`
	TraitType string      `json:"trait_type,omitempty"`
}

// Compression of a compressed asset.
type Compression struct {
	Eligible    bool   `json:"eligible"`
	Compressed  bool   `json:"compressed"`
	DataHash    string `json:"data_hash"`
	CreatorHash string `json:"creator_hash"`
	AssetHash   string `json:"asset_hash"`
	Tree        string `json:"tree"`
	Seq         uint32 `json:"seq"`
	LeafID      uint32 `json:"leaf_id"`
}

// DefaultCurrency of a PriceInfo that does not name one.
const DefaultCurrency = "USDC"

// PriceInfo is the price of a fungible token. Prices are decimal, never floats.
type PriceInfo struct {
	PricePerToken decimal.Decimal `json:"price_per_token"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Currency      string          `json:"currency"`
}

// UnmarshalJSON fills missing members with zero prices in DefaultCurrency.
func (p *PriceInfo) UnmarshalJSON(b []byte) error {
	type plain PriceInfo

	v := plain{Currency: DefaultCurrency}

	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*p = PriceInfo(v)

	return nil
}

// TokenInfo of a fungible asset.
type TokenInfo struct {
	Symbol                 string    `json:"symbol"`
	Balance                uint64    `json:"balance"`
	Supply                 uint64    `json:"supply"`
	Decimals               int32     `json:"decimals"`
	TokenProgram           string    `json:"token_program"`
	AssociatedTokenAddress string    `json:"associated_token_address"`
	PriceInfo              PriceInfo `json:"price_info"`
}

// TokenAccount holding some amount of a mint.
type TokenAccount struct {
	Address         string `json:"address"`
	Mint            string `json:"mint"`
	Owner           string `json:"owner"`
	Amount          uint64 `json:"amount"`
	DelegatedAmount uint64 `json:"delegated_amount"`
	Frozen          bool   `json:"frozen"`
}

// TokenAccounts is a page of token accounts.
type TokenAccounts struct {
	Total         uint32         `json:"total"`
	Limit         uint32         `json:"limit"`
	Page          uint32         `json:"page"`
	TokenAccounts []TokenAccount `json:"token_accounts"`
}
