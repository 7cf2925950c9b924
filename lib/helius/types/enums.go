package types

// TransactionType classifies an enhanced transaction. Values outside the catalog are kept as sent.
type TransactionType string

// Source is the marketplace, program or mint an enhanced transaction originates from.
type Source string

// ProgramName names the program behind a swap.
type ProgramName string

// Interface is the DAS asset interface.
type Interface string

// Interface values.
const (
	InterfaceV1NFT             Interface = "V1_NFT"
	InterfaceCustom            Interface = "Custom"
	InterfaceV1Print           Interface = "V1_PRINT"
	InterfaceLegacyNFT         Interface = "Legacy_NFT"
	InterfaceV2NFT             Interface = "V2_NFT"
	InterfaceFungibleAsset     Interface = "FungibleAsset"
	InterfaceFungibleToken     Interface = "FungibleToken"
	InterfaceIdentity          Interface = "Identity"
	InterfaceExecutable        Interface = "Executable"
	InterfaceProgrammableNFT   Interface = "ProgrammableNFT"
	InterfaceMplCoreAsset      Interface = "MplCoreAsset"
	InterfaceMplCoreCollection Interface = "MplCoreCollection"
)

var interfaces = []Interface{ //nolint:gochecknoglobals // catalog
	InterfaceV1NFT, InterfaceCustom, InterfaceV1Print, InterfaceLegacyNFT, InterfaceV2NFT, InterfaceFungibleAsset,
	InterfaceFungibleToken, InterfaceIdentity, InterfaceExecutable, InterfaceProgrammableNFT, InterfaceMplCoreAsset,
	InterfaceMplCoreCollection,
}

// TokenStandard of a transferred token.
type TokenStandard string

// TokenStandard values.
const (
	StandardProgrammableNonFungible TokenStandard = "ProgrammableNonFungible"
	StandardNonFungible             TokenStandard = "NonFungible"
	StandardFungible                TokenStandard = "Fungible"
	StandardFungibleAsset           TokenStandard = "FungibleAsset"
	StandardNonFungibleEdition      TokenStandard = "NonFungibleEdition"
	StandardUnknown                 TokenStandard = "UnknownStandard"
)

var tokenStandards = []TokenStandard{ //nolint:gochecknoglobals // catalog
	StandardProgrammableNonFungible, StandardNonFungible, StandardFungible, StandardFungibleAsset,
	StandardNonFungibleEdition, StandardUnknown,
}

// TransactionContext is the kind of sale of an NFT event.
type TransactionContext string

// TransactionContext values.
const (
	SaleAuction     TransactionContext = "AUCTION"
	SaleInstantSale TransactionContext = "INSTANT_SALE"
	SaleOffer       TransactionContext = "OFFER"
	SaleGlobalOffer TransactionContext = "GLOBAL_OFFER"
	SaleMint        TransactionContext = "MINT"
	SaleUnknown     TransactionContext = "UNKNOWN"
)

var transactionContexts = []TransactionContext{ //nolint:gochecknoglobals // catalog
	SaleAuction, SaleInstantSale, SaleOffer, SaleGlobalOffer, SaleMint, SaleUnknown,
}

// AccountWebhookEncoding is the encoding of account webhooks.
type AccountWebhookEncoding string

// EncodingJSONParsed is the only encoding documented by the provider.
const EncodingJSONParsed AccountWebhookEncoding = "jsonParsed"

var encodings = []AccountWebhookEncoding{EncodingJSONParsed} //nolint:gochecknoglobals // catalog

// AllTransactionTypes returns a copy of the whole transaction type catalog.
func AllTransactionTypes() []TransactionType {
	return append([]TransactionType(nil), transactionTypes...)
}

func known[T comparable](catalog []T) map[T]struct{} {
	m := make(map[T]struct{}, len(catalog))
	for _, v := range catalog {
		m[v] = struct{}{}
	}

	return m
}

//nolint:gochecknoglobals // read-only lookups
var (
	knownTransactionTypes = known(transactionTypes)
	knownSources          = known(sources)
	knownProgramNames     = known(programNames)
	knownInterfaces       = known(interfaces)
	knownTokenStandards   = known(tokenStandards)
	knownContexts         = known(transactionContexts)
	knownEncodings        = known(encodings)
)

// IsKnown reports whether t belongs to the catalog.
func (t TransactionType) IsKnown() bool {
	_, ok := knownTransactionTypes[t]

	return ok
}

// IsKnown reports whether s belongs to the catalog.
func (s Source) IsKnown() bool {
	_, ok := knownSources[s]

	return ok
}

// IsKnown reports whether p belongs to the catalog.
func (p ProgramName) IsKnown() bool {
	_, ok := knownProgramNames[p]

	return ok
}

// IsKnown reports whether i belongs to the catalog.
func (i Interface) IsKnown() bool {
	_, ok := knownInterfaces[i]

	return ok
}

// IsKnown reports whether s belongs to the catalog.
func (s TokenStandard) IsKnown() bool {
	_, ok := knownTokenStandards[s]

	return ok
}

// IsKnown reports whether c belongs to the catalog.
func (c TransactionContext) IsKnown() bool {
	_, ok := knownContexts[c]

	return ok
}

// IsKnown reports whether e belongs to the catalog.
func (e AccountWebhookEncoding) IsKnown() bool {
	_, ok := knownEncodings[e]

	return ok
}

// Closed enums. Their values are fixed by the provider API.

// AssetSortBy is the sort key of asset listings.
type AssetSortBy string

// AssetSortBy values.
const (
	SortCreated      AssetSortBy = "created"
	SortUpdated      AssetSortBy = "updated"
	SortRecentAction AssetSortBy = "recent_action"
)

// AssetSortDirection is the sort order of asset listings.
type AssetSortDirection string

// AssetSortDirection values.
const (
	SortAsc  AssetSortDirection = "asc"
	SortDesc AssetSortDirection = "desc"
)

// OwnershipModel of an asset.
type OwnershipModel string

// OwnershipModel values.
const (
	OwnershipSingle OwnershipModel = "single"
	OwnershipToken  OwnershipModel = "token"
)

// RoyaltyModel of an asset.
type RoyaltyModel string

// RoyaltyModel values.
const (
	RoyaltyCreators RoyaltyModel = "creators"
	RoyaltyFanout   RoyaltyModel = "fanout"
	RoyaltySingle   RoyaltyModel = "single"
)

// Scope of an asset authority.
type Scope string

// Scope values.
const (
	ScopeFull      Scope = "full"
	ScopeRoyalty   Scope = "royalty"
	ScopeMetadata  Scope = "metadata"
	ScopeExtension Scope = "extension"
)

// UseMethod of an asset with uses.
type UseMethod string

// UseMethod values.
const (
	UseBurn     UseMethod = "Burn"
	UseSingle   UseMethod = "Single"
	UseMultiple UseMethod = "Multiple"
)

// FileContext tells where a file of an asset is meant to be displayed.
type FileContext string

// FileContext values.
const (
	ContextWalletDefault FileContext = "wallet-default"
	ContextWebDesktop    FileContext = "web-desktop"
	ContextWebMobile     FileContext = "web-mobile"
	ContextAppMobile     FileContext = "app-mobile"
	ContextAppDesktop    FileContext = "app-desktop"
	ContextApp           FileContext = "app"
	ContextVR            FileContext = "vr"
)

// TokenType filters searchAssets results.
type TokenType string

// TokenType values.
const (
	TokenFungible      TokenType = "fungible"
	TokenNonFungible   TokenType = "nonFungible"
	TokenRegularNFT    TokenType = "regularNft"
	TokenCompressedNFT TokenType = "compressedNft"
	TokenAll           TokenType = "all"
)

// WebhookType selects the payload and cluster of a webhook.
type WebhookType string

// WebhookType values.
const (
	WebhookEnhanced       WebhookType = "enhanced"
	WebhookEnhancedDevnet WebhookType = "enhancedDevnet"
	WebhookRaw            WebhookType = "raw"
	WebhookRawDevnet      WebhookType = "rawDevnet"
	WebhookDiscord        WebhookType = "discord"
	WebhookDiscordDevnet  WebhookType = "discordDevnet"
)

// TxnStatus filters the transactions a webhook is triggered by.
type TxnStatus string

// TxnStatus values.
const (
	TxnStatusAll     TxnStatus = "all"
	TxnStatusSuccess TxnStatus = "success"
	TxnStatusFailed  TxnStatus = "failed"
)

// PriorityLevel is the percentile of recent fees a priority fee estimate is based on.
type PriorityLevel string

// PriorityLevel values.
const (
	PriorityZero      PriorityLevel = "ZERO"      // 0th percentile
	PriorityLow       PriorityLevel = "LOW"       // 25th
	PriorityMedium    PriorityLevel = "MEDIUM"    // 50th
	PriorityHigh      PriorityLevel = "HIGH"      // 75th
	PriorityVeryHigh  PriorityLevel = "VERY_HIGH" // 95th
	PriorityUnsafeMax PriorityLevel = "UNSAFE_MAX"
	PriorityAvg       PriorityLevel = "AVG"
)
