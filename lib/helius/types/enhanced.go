package types

import "github.com/tarancss/selene/lib/util"

// MaxParseTransactions is the number of signatures the provider parses in one call.
const MaxParseTransactions = 100

// EnhancedTransaction is a parsed, human readable transaction. It is what enhanced webhooks deliver.
type EnhancedTransaction struct {
	AccountData      []AccountData     `json:"accountData"`
	Description      string            `json:"description"`
	Type             TransactionType   `json:"type"`
	Source           Source            `json:"source"`
	Fee              int64             `json:"fee"`
	FeePayer         string            `json:"feePayer"`
	Signature        string            `json:"signature"`
	Slot             uint64            `json:"slot"`
	NativeTransfers  []NativeTransfer  `json:"nativeTransfers,omitempty"`
	TokenTransfers   []TokenTransfer   `json:"tokenTransfers,omitempty"`
	TransactionError *TransactionError `json:"transactionError,omitempty"`
	Instructions     []Instruction     `json:"instructions"`
	Events           TransactionEvent  `json:"events"`
	Timestamp        int64             `json:"timestamp"`
}

// ParseTransactionsRequest is the body of a parse call.
type ParseTransactionsRequest struct {
	Transactions []string `json:"transactions"`
}

// ParseTransactionsRequests splits signatures into requests of at most MaxParseTransactions each, keeping their
// order.
func ParseTransactionsRequests(signatures []string) []ParseTransactionsRequest {
	chunks := util.Chunk(signatures, MaxParseTransactions)
	reqs := make([]ParseTransactionsRequest, 0, len(chunks))

	for _, c := range chunks {
		reqs = append(reqs, ParseTransactionsRequest{Transactions: c})
	}

	return reqs
}

// TransactionEvent groups the events found in a transaction.
type TransactionEvent struct {
	NFT          *NFTEvent            `json:"nft,omitempty"`
	Swap         *SwapEvent           `json:"swap,omitempty"`
	Compressed   []CompressedNFTEvent `json:"compressed,omitempty"`
	SetAuthority []AuthorityChange    `json:"setAuthority,omitempty"`
}

// CompressedNFTEvent is a change of a compressed NFT.
type CompressedNFTEvent struct {
	Type                  TransactionType     `json:"type"`
	TreeID                string              `json:"treeId"`
	LeafIndex             *int32              `json:"leafIndex,omitempty"`
	Seq                   *int32              `json:"seq,omitempty"`
	AssetID               string              `json:"assetId"`
	InstructionIndex      *int32              `json:"instructionIndex,omitempty"`
	InnerInstructionIndex *int32              `json:"innerInstructionIndex,omitempty"`
	NewLeafOwner          string              `json:"newLeafOwner,omitempty"`
	OldLeafOwner          string              `json:"oldLeafOwner,omitempty"`
	NewLeafDelegate       string              `json:"newLeafDelegate,omitempty"`
	OldLeafDelegate       interface{}         `json:"oldLeafDelegate,omitempty"`
	TreeDelegate          string              `json:"treeDelegate,omitempty"`
	Metadata              *CompressedMetadata `json:"metadata,omitempty"`
	UpdateArgs            interface{}         `json:"updateArgs,omitempty"`
}

// SwapEvent is a token swap.
type SwapEvent struct {
	NativeInput  *NativeBalanceChange  `json:"nativeInput,omitempty"`
	NativeOutput *NativeBalanceChange  `json:"nativeOutput,omitempty"`
	TokenInputs  []TokenBalanceChange  `json:"tokenInputs"`
	TokenOutputs []TokenBalanceChange  `json:"tokenOutputs"`
	TokenFees    []TokenBalanceChange  `json:"tokenFees"`
	NativeFees   []NativeBalanceChange `json:"nativeFees"`
	InnerSwaps   []TokenSwap           `json:"innerSwaps"`
}

// TokenSwap is one leg of a swap.
type TokenSwap struct {
	NativeInput  *NativeTransfer  `json:"nativeInput,omitempty"`
	NativeOutput *NativeTransfer  `json:"nativeOutput,omitempty"`
	TokenInputs  []TokenTransfer  `json:"tokenInputs"`
	TokenOutputs []TokenTransfer  `json:"tokenOutputs"`
	TokenFees    []TokenTransfer  `json:"tokenFees"`
	NativeFees   []NativeTransfer `json:"nativeFees"`
	ProgramInfo  ProgramInfo      `json:"programInfo"`
}

// ProgramInfo names the program that executed a swap leg.
type ProgramInfo struct {
	Source          Source      `json:"source"`
	Account         string      `json:"account"`
	ProgramName     ProgramName `json:"programName"`
	InstructionName string      `json:"instructionName"`
}

// NFTEvent is a sale, listing, bid or mint of NFTs.
type NFTEvent struct {
	Seller    string             `json:"seller"`
	Buyer     string             `json:"buyer"`
	Timestamp Number             `json:"timestamp"`
	Amount    Number             `json:"amount"`
	Fee       Number             `json:"fee"`
	Signature string             `json:"signature"`
	Source    Source             `json:"source"`
	Type      TransactionType    `json:"type"`
	SaleType  TransactionContext `json:"saleType"`
	NFTs      []Token            `json:"nfts"`
}

// Token is a mint and its standard.
type Token struct {
	Mint          string        `json:"mint"`
	TokenStandard TokenStandard `json:"tokenStandard"`
}

// TransactionError holds the instruction error of a failed transaction as sent.
type TransactionError struct {
	InstructionError interface{} `json:"InstructionError"`
}

// NativeBalanceChange is a change of the SOL balance of an account. Amount may come quoted.
type NativeBalanceChange struct {
	Account string `json:"account"`
	Amount  Number `json:"amount"`
}

// AccountData lists the balance changes of one account involved in a transaction.
type AccountData struct {
	Account             string               `json:"account"`
	NativeBalanceChange Number               `json:"nativeBalanceChange"`
	TokenBalanceChanges []TokenBalanceChange `json:"tokenBalanceChanges,omitempty"`
}

// TokenBalanceChange is a change of a token balance.
type TokenBalanceChange struct {
	UserAccount    string         `json:"userAccount"`
	TokenAccount   string         `json:"tokenAccount"`
	RawTokenAmount RawTokenAmount `json:"rawTokenAmount"`
	Mint           string         `json:"mint"`
}

// RawTokenAmount is a token amount before applying decimals.
type RawTokenAmount struct {
	TokenAmount string `json:"tokenAmount"`
	Decimals    Number `json:"decimals"`
}

// TransferUserAccounts are the wallets on both sides of a transfer.
type TransferUserAccounts struct {
	FromUserAccount string `json:"fromUserAccount,omitempty"`
	ToUserAccount   string `json:"toUserAccount,omitempty"`
}

// TokenTransfer is a transfer of tokens.
type TokenTransfer struct {
	TransferUserAccounts
	FromTokenAccount string        `json:"fromTokenAccount,omitempty"`
	ToTokenAccount   string        `json:"toTokenAccount,omitempty"`
	TokenAmount      Number        `json:"tokenAmount"`
	TokenStandard    TokenStandard `json:"tokenStandard"`
	Mint             string        `json:"mint"`
}

// NativeTransfer is a transfer of SOL.
type NativeTransfer struct {
	TransferUserAccounts
	Amount Number `json:"amount"`
}

// Instruction of a transaction.
type Instruction struct {
	Accounts          []string           `json:"accounts"`
	Data              string             `json:"data"`
	ProgramID         string             `json:"programId"`
	InnerInstructions []InnerInstruction `json:"innerInstructions"`
}

// InnerInstruction is an instruction invoked by another one.
type InnerInstruction struct {
	Accounts  []string `json:"accounts"`
	Data      string   `json:"data"`
	ProgramID string   `json:"programId"`
}

// Collection of a compressed NFT.
type Collection struct {
	Key      string `json:"key"`
	Verified bool   `json:"verified"`
}

// CompressedMetadata is the on-chain metadata of a compressed NFT.
type CompressedMetadata struct {
	Name                 string        `json:"name"`
	Symbol               string        `json:"symbol"`
	URI                  string        `json:"uri"`
	SellerFeeBasisPoints int32         `json:"sellerFeeBasisPoints"`
	PrimarySaleHappened  bool          `json:"primarySaleHappened"`
	Mutable              bool          `json:"isMutable"`
	EditionNonce         *int32        `json:"editionNonce,omitempty"`
	TokenStandard        string        `json:"tokenStandard,omitempty"`
	Collection           *Collection   `json:"collection,omitempty"`
	TokenProgramVersion  string        `json:"tokenProgramVersion"`
	Creators             []interface{} `json:"creators,omitempty"`
}

// AuthorityChange is a change of an account authority.
type AuthorityChange struct {
	Account               string `json:"account"`
	From                  string `json:"from"`
	To                    string `json:"to"`
	InstructionIndex      *int32 `json:"instructionIndex,omitempty"`
	InnerInstructionIndex *int32 `json:"innerInstructionIndex,omitempty"`
}
