package types

// Transaction types known to the provider.
const (
	TxTypeAcceptEscrowArtist               TransactionType = "ACCEPT_ESCROW_ARTIST"
	TxTypeAcceptEscrowUser                 TransactionType = "ACCEPT_ESCROW_USER"
	TxTypeAcceptRequestArtist              TransactionType = "ACCEPT_REQUEST_ARTIST"
	TxTypeActivateTransaction              TransactionType = "ACTIVATE_TRANSACTION"
	TxTypeActivateVault                    TransactionType = "ACTIVATE_VAULT"
	TxTypeAddInstruction                   TransactionType = "ADD_INSTRUCTION"
	TxTypeAddItem                          TransactionType = "ADD_ITEM"
	TxTypeAddRaritiesToBank                TransactionType = "ADD_RARITIES_TO_BANK"
	TxTypeAddTokenToVault                  TransactionType = "ADD_TOKEN_TO_VAULT"
	TxTypeAddToPool                        TransactionType = "ADD_TO_POOL"
	TxTypeAddToWhitelist                   TransactionType = "ADD_TO_WHITELIST"
	TxTypeAny                              TransactionType = "ANY"
	TxTypeApproveTransaction               TransactionType = "APPROVE_TRANSACTION"
	TxTypeAttachMetadata                   TransactionType = "ATTACH_METADATA"
	TxTypeAuctionHouseCreate               TransactionType = "AUCTION_HOUSE_CREATE"
	TxTypeAuctionManagerClaimBid           TransactionType = "AUCTION_MANAGER_CLAIM_BID"
	TxTypeAuthorizeFunder                  TransactionType = "AUTHORIZE_FUNDER"
	TxTypeBorrowFox                        TransactionType = "BORROW_FOX"
	TxTypeBorrowSolForNFT                  TransactionType = "BORROW_SOL_FOR_NFT"
	TxTypeBurn                             TransactionType = "BURN"
	TxTypeBurnNFT                          TransactionType = "BURN_NFT"
	TxTypeBuyItem                          TransactionType = "BUY_ITEM"
	TxTypeBuySubscription                  TransactionType = "BUY_SUBSCRIPTION"
	TxTypeBuyTickets                       TransactionType = "BUY_TICKETS"
	TxTypeCancelEscrow                     TransactionType = "CANCEL_ESCROW"
	TxTypeCancelLoanRequest                TransactionType = "CANCEL_LOAN_REQUEST"
	TxTypeCancelOffer                      TransactionType = "CANCEL_OFFER"
	TxTypeCancelOrder                      TransactionType = "CANCEL_ORDER"
	TxTypeCancelReward                     TransactionType = "CANCEL_REWARD"
	TxTypeCancelSwap                       TransactionType = "CANCEL_SWAP"
	TxTypeCancelTransaction                TransactionType = "CANCEL_TRANSACTION"
	TxTypeCandyMachineRoute                TransactionType = "CANDY_MACHINE_ROUTE"
	TxTypeCandyMachineUnwrap               TransactionType = "CANDY_MACHINE_UNWRAP"
	TxTypeCandyMachineUpdate               TransactionType = "CANDY_MACHINE_UPDATE"
	TxTypeCandyMachineWrap                 TransactionType = "CANDY_MACHINE_WRAP"
	TxTypeChangeComicState                 TransactionType = "CHANGE_COMIC_STATE"
	TxTypeClaimNFT                         TransactionType = "CLAIM_NFT"
	TxTypeClaimRewards                     TransactionType = "CLAIM_REWARDS"
	TxTypeCloseAccount                     TransactionType = "CLOSE_ACCOUNT"
	TxTypeCloseEscrowAccount               TransactionType = "CLOSE_ESCROW_ACCOUNT"
	TxTypeCloseItem                        TransactionType = "CLOSE_ITEM"
	TxTypeCloseOrder                       TransactionType = "CLOSE_ORDER"
	TxTypeClosePosition                    TransactionType = "CLOSE_POSITION"
	TxTypeCompressedNFTBurn                TransactionType = "COMPRESSED_NFT_BURN"
	TxTypeCompressedNFTCancelRedeem        TransactionType = "COMPRESSED_NFT_CANCEL_REDEEM"
	TxTypeCompressedNFTDelegate            TransactionType = "COMPRESSED_NFT_DELEGATE"
	TxTypeCompressedNFTMint                TransactionType = "COMPRESSED_NFT_MINT"
	TxTypeCompressedNFTRedeem              TransactionType = "COMPRESSED_NFT_REDEEM"
	TxTypeCompressedNFTSetVerifyCollection TransactionType = "COMPRESSED_NFT_SET_VERIFY_COLLECTION"
	TxTypeCompressedNFTTransfer            TransactionType = "COMPRESSED_NFT_TRANSFER"
	TxTypeCompressedNFTUnverifyCollection  TransactionType = "COMPRESSED_NFT_UNVERIFY_COLLECTION"
	TxTypeCompressedNFTUnverifyCreator     TransactionType = "COMPRESSED_NFT_UNVERIFY_CREATOR"
	TxTypeCompressedNFTVerifyCollection    TransactionType = "COMPRESSED_NFT_VERIFY_COLLECTION"
	TxTypeCompressedNFTVerifyCreator       TransactionType = "COMPRESSED_NFT_VERIFY_CREATOR"
	TxTypeCompressNFT                      TransactionType = "COMPRESS_NFT"
	TxTypeCreateAppraisal                  TransactionType = "CREATE_APPRAISAL"
	TxTypeCreateBet                        TransactionType = "CREATE_BET"
	TxTypeCreateEscrow                     TransactionType = "CREATE_ESCROW"
	TxTypeCreateMasterEdition              TransactionType = "CREATE_MASTER_EDITION"
	TxTypeCreateMerkleTree                 TransactionType = "CREATE_MERKLE_TREE"
	TxTypeCreateOrder                      TransactionType = "CREATE_ORDER"
	TxTypeCreatePool                       TransactionType = "CREATE_POOL"
	TxTypeCreateRaffle                     TransactionType = "CREATE_RAFFLE"
	TxTypeCreateStore                      TransactionType = "CREATE_STORE"
	TxTypeCreateTransaction                TransactionType = "CREATE_TRANSACTION"
	TxTypeDeauthorizeFunder                TransactionType = "DEAUTHORIZE_FUNDER"
	TxTypeDecompressNFT                    TransactionType = "DECOMPRESS_NFT"
	TxTypeDelegateMerkleTree               TransactionType = "DELEGATE_MERKLE_TREE"
	TxTypeDelistItem                       TransactionType = "DELIST_ITEM"
	TxTypeDeposit                          TransactionType = "DEPOSIT"
	TxTypeDepositFractionalPool            TransactionType = "DEPOSIT_FRACTIONAL_POOL"
	TxTypeDepositGem                       TransactionType = "DEPOSIT_GEM"
	TxTypeDistributeCompressionRewards     TransactionType = "DISTRIBUTE_COMPRESSION_REWARDS"
	TxTypeEmptyPaymentAccount              TransactionType = "EMPTY_PAYMENT_ACCOUNT"
	TxTypeExecuteTransaction               TransactionType = "EXECUTE_TRANSACTION"
	TxTypeFillOrder                        TransactionType = "FILL_ORDER"
	TxTypeFinalizeProgramInstruction       TransactionType = "FINALIZE_PROGRAM_INSTRUCTION"
	TxTypeForecloseLoan                    TransactionType = "FORECLOSE_LOAN"
	TxTypeFractionalize                    TransactionType = "FRACTIONALIZE"
	TxTypeFundReward                       TransactionType = "FUND_REWARD"
	TxTypeFuse                             TransactionType = "FUSE"
	TxTypeInitAuctionManagerV2             TransactionType = "INIT_AUCTION_MANAGER_V2"
	TxTypeInitBank                         TransactionType = "INIT_BANK"
	TxTypeInitFarm                         TransactionType = "INIT_FARM"
	TxTypeInitFarmer                       TransactionType = "INIT_FARMER"
	TxTypeInitializeAccount                TransactionType = "INITIALIZE_ACCOUNT"
	TxTypeInitRent                         TransactionType = "INIT_RENT"
	TxTypeInitStake                        TransactionType = "INIT_STAKE"
	TxTypeInitSwap                         TransactionType = "INIT_SWAP"
	TxTypeInitVault                        TransactionType = "INIT_VAULT"
	TxTypeKickItem                         TransactionType = "KICK_ITEM"
	TxTypeLendForNFT                       TransactionType = "LEND_FOR_NFT"
	TxTypeListItem                         TransactionType = "LIST_ITEM"
	TxTypeLoan                             TransactionType = "LOAN"
	TxTypeLoanFox                          TransactionType = "LOAN_FOX"
	TxTypeLockReward                       TransactionType = "LOCK_REWARD"
	TxTypeMergeStake                       TransactionType = "MERGE_STAKE"
	TxTypeMigrateToPnft                    TransactionType = "MIGRATE_TO_PNFT"
	TxTypeNFTAuctionCancelled              TransactionType = "NFT_AUCTION_CANCELLED"
	TxTypeNFTAuctionCreated                TransactionType = "NFT_AUCTION_CREATED"
	TxTypeNFTAuctionUpdated                TransactionType = "NFT_AUCTION_UPDATED"
	TxTypeNFTBid                           TransactionType = "NFT_BID"
	TxTypeNFTBidCancelled                  TransactionType = "NFT_BID_CANCELLED"
	TxTypeNFTCancelListing                 TransactionType = "NFT_CANCEL_LISTING"
	TxTypeNFTGlobalBid                     TransactionType = "NFT_GLOBAL_BID"
	TxTypeNFTGlobalBidCancelled            TransactionType = "NFT_GLOBAL_BID_CANCELLED"
	TxTypeNFTListing                       TransactionType = "NFT_LISTING"
	TxTypeNFTMint                          TransactionType = "NFT_MINT"
	TxTypeNFTMintRejected                  TransactionType = "NFT_MINT_REJECTED"
	TxTypeNFTParticipationReward           TransactionType = "NFT_PARTICIPATION_REWARD"
	TxTypeNFTRentActivate                  TransactionType = "NFT_RENT_ACTIVATE"
	TxTypeNFTRentCancelListing             TransactionType = "NFT_RENT_CANCEL_LISTING"
	TxTypeNFTRentEnd                       TransactionType = "NFT_RENT_END"
	TxTypeNFTRentListing                   TransactionType = "NFT_RENT_LISTING"
	TxTypeNFTRentUpdateListing             TransactionType = "NFT_RENT_UPDATE_LISTING"
	TxTypeNFTSale                          TransactionType = "NFT_SALE"
	TxTypeOfferLoan                        TransactionType = "OFFER_LOAN"
	TxTypePayout                           TransactionType = "PAYOUT"
	TxTypePlaceBet                         TransactionType = "PLACE_BET"
	TxTypePlaceSolBet                      TransactionType = "PLACE_SOL_BET"
	TxTypePlatformFee                      TransactionType = "PLATFORM_FEE"
	TxTypeReborrowSolForNFT                TransactionType = "REBORROW_SOL_FOR_NFT"
	TxTypeRecordRarityPoints               TransactionType = "RECORD_RARITY_POINTS"
	TxTypeRefreshFarmer                    TransactionType = "REFRESH_FARMER"
	TxTypeRejectSwap                       TransactionType = "REJECT_SWAP"
	TxTypeRejectTransaction                TransactionType = "REJECT_TRANSACTION"
	TxTypeRemoveFromPool                   TransactionType = "REMOVE_FROM_POOL"
	TxTypeRemoveFromWhitelist              TransactionType = "REMOVE_FROM_WHITELIST"
	TxTypeRepayLoan                        TransactionType = "REPAY_LOAN"
	TxTypeRequestLoan                      TransactionType = "REQUEST_LOAN"
	TxTypeRequestPnftMigration             TransactionType = "REQUEST_PNFT_MIGRATION"
	TxTypeRescindLoan                      TransactionType = "RESCIND_LOAN"
	TxTypeSetAuthority                     TransactionType = "SET_AUTHORITY"
	TxTypeSetBankFlags                     TransactionType = "SET_BANK_FLAGS"
	TxTypeSetVaultLock                     TransactionType = "SET_VAULT_LOCK"
	TxTypeSplitStake                       TransactionType = "SPLIT_STAKE"
	TxTypeStakeSol                         TransactionType = "STAKE_SOL"
	TxTypeStakeToken                       TransactionType = "STAKE_TOKEN"
	TxTypeStartPnftMigration               TransactionType = "START_PNFT_MIGRATION"
	TxTypeSwap                             TransactionType = "SWAP"
	TxTypeSwitchFox                        TransactionType = "SWITCH_FOX"
	TxTypeSwitchFoxRequest                 TransactionType = "SWITCH_FOX_REQUEST"
	TxTypeTakeLoan                         TransactionType = "TAKE_LOAN"
	TxTypeTokenMint                        TransactionType = "TOKEN_MINT"
	TxTypeTransfer                         TransactionType = "TRANSFER"
	TxTypeUnknown                          TransactionType = "UNKNOWN"
	TxTypeUnlabeled                        TransactionType = "UNLABELED"
	TxTypeUnstakeSol                       TransactionType = "UNSTAKE_SOL"
	TxTypeUnstakeToken                     TransactionType = "UNSTAKE_TOKEN"
	TxTypeUpdateBankManager                TransactionType = "UPDATE_BANK_MANAGER"
	TxTypeUpdateExternalPriceAccount       TransactionType = "UPDATE_EXTERNAL_PRICE_ACCOUNT"
	TxTypeUpdateFarm                       TransactionType = "UPDATE_FARM"
	TxTypeUpdateItem                       TransactionType = "UPDATE_ITEM"
	TxTypeUpdateOffer                      TransactionType = "UPDATE_OFFER"
	TxTypeUpdateOrder                      TransactionType = "UPDATE_ORDER"
	TxTypeUpdatePrimarySaleMetadata        TransactionType = "UPDATE_PRIMARY_SALE_METADATA"
	TxTypeUpdateRaffle                     TransactionType = "UPDATE_RAFFLE"
	TxTypeUpdateRecordAuthorityData        TransactionType = "UPDATE_RECORD_AUTHORITY_DATA"
	TxTypeUpdateVaultOwner                 TransactionType = "UPDATE_VAULT_OWNER"
	TxTypeUpgradeFox                       TransactionType = "UPGRADE_FOX"
	TxTypeUpgradeFoxRequest                TransactionType = "UPGRADE_FOX_REQUEST"
	TxTypeUpgradeProgramInstruction        TransactionType = "UPGRADE_PROGRAM_INSTRUCTION"
	TxTypeValidateSafetyDepositBoxV2       TransactionType = "VALIDATE_SAFETY_DEPOSIT_BOX_V2"
	TxTypeWhitelistCreator                 TransactionType = "WHITELIST_CREATOR"
	TxTypeWithdraw                         TransactionType = "WITHDRAW"
	TxTypeWithdrawGem                      TransactionType = "WITHDRAW_GEM"
)

var transactionTypes = []TransactionType{ //nolint:gochecknoglobals // catalog
	TxTypeAcceptEscrowArtist,
	TxTypeAcceptEscrowUser,
	TxTypeAcceptRequestArtist,
	TxTypeActivateTransaction,
	TxTypeActivateVault,
	TxTypeAddInstruction,
	TxTypeAddItem,
	TxTypeAddRaritiesToBank,
	TxTypeAddTokenToVault,
	TxTypeAddToPool,
	TxTypeAddToWhitelist,
	TxTypeAny,
	TxTypeApproveTransaction,
	TxTypeAttachMetadata,
	TxTypeAuctionHouseCreate,
	TxTypeAuctionManagerClaimBid,
	TxTypeAuthorizeFunder,
	TxTypeBorrowFox,
	TxTypeBorrowSolForNFT,
	TxTypeBurn,
	TxTypeBurnNFT,
	TxTypeBuyItem,
	TxTypeBuySubscription,
	TxTypeBuyTickets,
	TxTypeCancelEscrow,
	TxTypeCancelLoanRequest,
	TxTypeCancelOffer,
	TxTypeCancelOrder,
	TxTypeCancelReward,
	TxTypeCancelSwap,
	TxTypeCancelTransaction,
	TxTypeCandyMachineRoute,
	TxTypeCandyMachineUnwrap,
	TxTypeCandyMachineUpdate,
	TxTypeCandyMachineWrap,
	TxTypeChangeComicState,
	TxTypeClaimNFT,
	TxTypeClaimRewards,
	TxTypeCloseAccount,
	TxTypeCloseEscrowAccount,
	TxTypeCloseItem,
	TxTypeCloseOrder,
	TxTypeClosePosition,
	TxTypeCompressedNFTBurn,
	TxTypeCompressedNFTCancelRedeem,
	TxTypeCompressedNFTDelegate,
	TxTypeCompressedNFTMint,
	TxTypeCompressedNFTRedeem,
	TxTypeCompressedNFTSetVerifyCollection,
	TxTypeCompressedNFTTransfer,
	TxTypeCompressedNFTUnverifyCollection,
	TxTypeCompressedNFTUnverifyCreator,
	TxTypeCompressedNFTVerifyCollection,
	TxTypeCompressedNFTVerifyCreator,
	TxTypeCompressNFT,
	TxTypeCreateAppraisal,
	TxTypeCreateBet,
	TxTypeCreateEscrow,
	TxTypeCreateMasterEdition,
	TxTypeCreateMerkleTree,
	TxTypeCreateOrder,
	TxTypeCreatePool,
	TxTypeCreateRaffle,
	TxTypeCreateStore,
	TxTypeCreateTransaction,
	TxTypeDeauthorizeFunder,
	TxTypeDecompressNFT,
	TxTypeDelegateMerkleTree,
	TxTypeDelistItem,
	TxTypeDeposit,
	TxTypeDepositFractionalPool,
	TxTypeDepositGem,
	TxTypeDistributeCompressionRewards,
	TxTypeEmptyPaymentAccount,
	TxTypeExecuteTransaction,
	TxTypeFillOrder,
	TxTypeFinalizeProgramInstruction,
	TxTypeForecloseLoan,
	TxTypeFractionalize,
	TxTypeFundReward,
	TxTypeFuse,
	TxTypeInitAuctionManagerV2,
	TxTypeInitBank,
	TxTypeInitFarm,
	TxTypeInitFarmer,
	TxTypeInitializeAccount,
	TxTypeInitRent,
	TxTypeInitStake,
	TxTypeInitSwap,
	TxTypeInitVault,
	TxTypeKickItem,
	TxTypeLendForNFT,
	TxTypeListItem,
	TxTypeLoan,
	TxTypeLoanFox,
	TxTypeLockReward,
	TxTypeMergeStake,
	TxTypeMigrateToPnft,
	TxTypeNFTAuctionCancelled,
	TxTypeNFTAuctionCreated,
	TxTypeNFTAuctionUpdated,
	TxTypeNFTBid,
	TxTypeNFTBidCancelled,
	TxTypeNFTCancelListing,
	TxTypeNFTGlobalBid,
	TxTypeNFTGlobalBidCancelled,
	TxTypeNFTListing,
	TxTypeNFTMint,
	TxTypeNFTMintRejected,
	TxTypeNFTParticipationReward,
	TxTypeNFTRentActivate,
	TxTypeNFTRentCancelListing,
	TxTypeNFTRentEnd,
	TxTypeNFTRentListing,
	TxTypeNFTRentUpdateListing,
	TxTypeNFTSale,
	TxTypeOfferLoan,
	TxTypePayout,
	TxTypePlaceBet,
	TxTypePlaceSolBet,
	TxTypePlatformFee,
	TxTypeReborrowSolForNFT,
	TxTypeRecordRarityPoints,
	TxTypeRefreshFarmer,
	TxTypeRejectSwap,
	TxTypeRejectTransaction,
	TxTypeRemoveFromPool,
	TxTypeRemoveFromWhitelist,
	TxTypeRepayLoan,
	TxTypeRequestLoan,
	TxTypeRequestPnftMigration,
	TxTypeRescindLoan,
	TxTypeSetAuthority,
	TxTypeSetBankFlags,
	TxTypeSetVaultLock,
	TxTypeSplitStake,
	TxTypeStakeSol,
	TxTypeStakeToken,
	TxTypeStartPnftMigration,
	TxTypeSwap,
	TxTypeSwitchFox,
	TxTypeSwitchFoxRequest,
	TxTypeTakeLoan,
	TxTypeTokenMint,
	TxTypeTransfer,
	TxTypeUnknown,
	TxTypeUnlabeled,
	TxTypeUnstakeSol,
	TxTypeUnstakeToken,
	TxTypeUpdateBankManager,
	TxTypeUpdateExternalPriceAccount,
	TxTypeUpdateFarm,
	TxTypeUpdateItem,
	TxTypeUpdateOffer,
	TxTypeUpdateOrder,
	TxTypeUpdatePrimarySaleMetadata,
	TxTypeUpdateRaffle,
	TxTypeUpdateRecordAuthorityData,
	TxTypeUpdateVaultOwner,
	TxTypeUpgradeFox,
	TxTypeUpgradeFoxRequest,
	TxTypeUpgradeProgramInstruction,
	TxTypeValidateSafetyDepositBoxV2,
	TxTypeWhitelistCreator,
	TxTypeWithdraw,
	TxTypeWithdrawGem,
}

// Transaction sources: marketplaces, programs and token mints.
const (
	SourceFormFunction         Source = "FORM_FUNCTION"
	SourceExchangeArt          Source = "EXCHANGE_ART"
	SourceCandyMachineV3       Source = "CANDY_MACHINE_V3"
	SourceCandyMachineV2       Source = "CANDY_MACHINE_V2"
	SourceCandyMachineV1       Source = "CANDY_MACHINE_V1"
	SourceUnknown              Source = "UNKNOWN"
	SourceSolanart             Source = "SOLANART"
	SourceSolsea               Source = "SOLSEA"
	SourceMagicEden            Source = "MAGIC_EDEN"
	SourceHolaplex             Source = "HOLAPLEX"
	SourceMetaplex             Source = "METAPLEX"
	SourceOpensea              Source = "OPENSEA"
	SourceSolanaProgramLibrary Source = "SOLANA_PROGRAM_LIBRARY"
	SourceAnchor               Source = "ANCHOR"
	SourcePhantom              Source = "PHANTOM"
	SourceSystemProgram        Source = "SYSTEM_PROGRAM"
	SourceStakeProgram         Source = "STAKE_PROGRAM"
	SourceCoinbase             Source = "COINBASE"
	SourceCoralCube            Source = "CORAL_CUBE"
	SourceHedge                Source = "HEDGE"
	SourceLaunchMyNFT          Source = "LAUNCH_MY_NFT"
	SourceGemBank              Source = "GEM_BANK"
	SourceGemFarm              Source = "GEM_FARM"
	SourceDegods               Source = "DEGODS"
	SourceBsl                  Source = "BSL"
	SourceYawww                Source = "YAWWW"
	SourceAtadia               Source = "ATADIA"
	SourceDigitalEyes          Source = "DIGITAL_EYES"
	SourceHyperspace           Source = "HYPERSPACE"
	SourceTensor               Source = "TENSOR"
	SourceBifrost              Source = "BIFROST"
	SourceJupiter              Source = "JUPITER"
	SourceMecurial             Source = "MECURIAL"
	SourceSaber                Source = "SABER"
	SourceSerum                Source = "SERUM"
	SourceStepFinance          Source = "STEP_FINANCE"
	SourceCropper              Source = "CROPPER"
	SourceRaydium              Source = "RAYDIUM"
	SourceAldrin               Source = "ALDRIN"
	SourceCrema                Source = "CREMA"
	SourceLifinity             Source = "LIFINITY"
	SourceCykura               Source = "CYKURA"
	SourceOrca                 Source = "ORCA"
	SourceMarinade             Source = "MARINADE"
	SourceStepn                Source = "STEPN"
	SourceSencha               Source = "SENCHA"
	SourceSaros                Source = "SAROS"
	SourceEnglishAuction       Source = "ENGLISH_AUCTION"
	SourceFoxy                 Source = "FOXY"
	SourceHadeswap             Source = "HADESWAP"
	SourceFoxyStaking          Source = "FOXY_STAKING"
	SourceFoxyRaffle           Source = "FOXY_RAFFLE"
	SourceFoxyTokenMarket      Source = "FOXY_TOKEN_MARKET"
	SourceFoxyMissions         Source = "FOXY_MISSIONS"
	SourceFoxyMarmalade        Source = "FOXY_MARMALADE"
	SourceFoxyCoinflip         Source = "FOXY_COINFLIP"
	SourceFoxyAuction          Source = "FOXY_AUCTION"
	SourceCitrus               Source = "CITRUS"
	SourceZeta                 Source = "ZETA"
	SourceElixir               Source = "ELIXIR"
	SourceElixirLaunchpad      Source = "ELIXIR_LAUNCHPAD"
	SourceCardinalRent         Source = "CARDINAL_RENT"
	SourceCardinalStaking      Source = "CARDINAL_STAKING"
	SourceBpfLoader            Source = "BPF_LOADER"
	SourceBpfUpgradeableLoader Source = "BPF_UPGRADEABLE_LOADER"
	SourceSquads               Source = "SQUADS"
	SourceSharkyFi             Source = "SHARKY_FI"
	SourceOpenCreatorProtocol  Source = "OPEN_CREATOR_PROTOCOL"
	SourceBubblegum            Source = "BUBBLEGUM"
	SourceWSOL                 Source = "W_SOL"
	SourceDUST                 Source = "DUST"
	SourceSOLI                 Source = "SOLI"
	SourceUSDC                 Source = "USDC"
	SourceFLWR                 Source = "FLWR"
	SourceHDG                  Source = "HDG"
	SourceMEAN                 Source = "MEAN"
	SourceUXD                  Source = "UXD"
	SourceSHDW                 Source = "SHDW"
	SourcePOLIS                Source = "POLIS"
	SourceATLAS                Source = "ATLAS"
	SourceUSH                  Source = "USH"
	SourceTRTLS                Source = "TRTLS"
	SourceRUNNER               Source = "RUNNER"
	SourceINVICTUS             Source = "INVICTUS"
)

var sources = []Source{ //nolint:gochecknoglobals // catalog
	SourceFormFunction,
	SourceExchangeArt,
	SourceCandyMachineV3,
	SourceCandyMachineV2,
	SourceCandyMachineV1,
	SourceUnknown,
	SourceSolanart,
	SourceSolsea,
	SourceMagicEden,
	SourceHolaplex,
	SourceMetaplex,
	SourceOpensea,
	SourceSolanaProgramLibrary,
	SourceAnchor,
	SourcePhantom,
	SourceSystemProgram,
	SourceStakeProgram,
	SourceCoinbase,
	SourceCoralCube,
	SourceHedge,
	SourceLaunchMyNFT,
	SourceGemBank,
	SourceGemFarm,
	SourceDegods,
	SourceBsl,
	SourceYawww,
	SourceAtadia,
	SourceDigitalEyes,
	SourceHyperspace,
	SourceTensor,
	SourceBifrost,
	SourceJupiter,
	SourceMecurial,
	SourceSaber,
	SourceSerum,
	SourceStepFinance,
	SourceCropper,
	SourceRaydium,
	SourceAldrin,
	SourceCrema,
	SourceLifinity,
	SourceCykura,
	SourceOrca,
	SourceMarinade,
	SourceStepn,
	SourceSencha,
	SourceSaros,
	SourceEnglishAuction,
	SourceFoxy,
	SourceHadeswap,
	SourceFoxyStaking,
	SourceFoxyRaffle,
	SourceFoxyTokenMarket,
	SourceFoxyMissions,
	SourceFoxyMarmalade,
	SourceFoxyCoinflip,
	SourceFoxyAuction,
	SourceCitrus,
	SourceZeta,
	SourceElixir,
	SourceElixirLaunchpad,
	SourceCardinalRent,
	SourceCardinalStaking,
	SourceBpfLoader,
	SourceBpfUpgradeableLoader,
	SourceSquads,
	SourceSharkyFi,
	SourceOpenCreatorProtocol,
	SourceBubblegum,
	SourceWSOL,
	SourceDUST,
	SourceSOLI,
	SourceUSDC,
	SourceFLWR,
	SourceHDG,
	SourceMEAN,
	SourceUXD,
	SourceSHDW,
	SourcePOLIS,
	SourceATLAS,
	SourceUSH,
	SourceTRTLS,
	SourceRUNNER,
	SourceINVICTUS,
}

// Program names. UNKOWN is spelled the way the provider sends it.
const (
	ProgramUnkown                 ProgramName = "UNKOWN"
	ProgramJupiterV1              ProgramName = "JUPITER_V1"
	ProgramJupiterV2              ProgramName = "JUPITER_V2"
	ProgramJupiterV3              ProgramName = "JUPITER_V3"
	ProgramJupiterV4              ProgramName = "JUPITER_V4"
	ProgramMercurialStableSwap    ProgramName = "MERCURIAL_STABLE_SWAP"
	ProgramSaberStableSwap        ProgramName = "SABER_STABLE_SWAP"
	ProgramSaberExchange          ProgramName = "SABER_EXCHANGE"
	ProgramSerumDexV1             ProgramName = "SERUM_DEX_V1"
	ProgramSerumDexV2             ProgramName = "SERUM_DEX_V2"
	ProgramSerumDexV3             ProgramName = "SERUM_DEX_V3"
	ProgramSerumSwap              ProgramName = "SERUM_SWAP"
	ProgramStepFinance            ProgramName = "STEP_FINANCE"
	ProgramCropper                ProgramName = "CROPPER"
	ProgramRaydiumLiquidityPoolV2 ProgramName = "RAYDIUM_LIQUIDITY_POOL_V2"
	ProgramRaydiumLiquidityPoolV3 ProgramName = "RAYDIUM_LIQUIDITY_POOL_V3"
	ProgramRaydiumLiquidityPoolV4 ProgramName = "RAYDIUM_LIQUIDITY_POOL_V4"
	ProgramAldrinAmmV1            ProgramName = "ALDRIN_AMM_V1"
	ProgramAldrinAmmV2            ProgramName = "ALDRIN_AMM_V2"
	ProgramCrema                  ProgramName = "CREMA"
	ProgramLifinity               ProgramName = "LIFINITY"
	ProgramLifinityV2             ProgramName = "LIFINITY_V2"
	ProgramCykura                 ProgramName = "CYKURA"
	ProgramOrcaTokenSwapV1        ProgramName = "ORCA_TOKEN_SWAP_V1"
	ProgramOrcaTokenSwapV2        ProgramName = "ORCA_TOKEN_SWAP_V2"
	ProgramOrcaWhirlpools         ProgramName = "ORCA_WHIRLPOOLS"
	ProgramMarinade               ProgramName = "MARINADE"
	ProgramStepn                  ProgramName = "STEPN"
	ProgramSenchaExchange         ProgramName = "SENCHA_EXCHANGE"
	ProgramSarosAmm               ProgramName = "SAROS_AMM"
	ProgramFoxyStake              ProgramName = "FOXY_STAKE"
	ProgramFoxySwap               ProgramName = "FOXY_SWAP"
	ProgramFoxyRaffle             ProgramName = "FOXY_RAFFLE"
	ProgramFoxyTokenMarket        ProgramName = "FOXY_TOKEN_MARKET"
	ProgramFoxyMissions           ProgramName = "FOXY_MISSIONS"
	ProgramFoxyMarmalade          ProgramName = "FOXY_MARMALADE"
	ProgramFoxyCoinflip           ProgramName = "FOXY_COINFLIP"
	ProgramFoxyAuction            ProgramName = "FOXY_AUCTION"
	ProgramCitrus                 ProgramName = "CITRUS"
	ProgramHadeSwap               ProgramName = "HADE_SWAP"
	ProgramZeta                   ProgramName = "ZETA"
	ProgramCardinalRent           ProgramName = "CARDINAL_RENT"
	ProgramCardinalStaking        ProgramName = "CARDINAL_STAKING"
	ProgramSharkyFi               ProgramName = "SHARKY_FI"
	ProgramOpenCreatorProtocol    ProgramName = "OPEN_CREATOR_PROTOCOL"
	ProgramBubblegum              ProgramName = "BUBBLEGUM"
	ProgramCoralCube              ProgramName = "CORAL_CUBE"
)

var programNames = []ProgramName{ //nolint:gochecknoglobals // catalog
	ProgramUnkown,
	ProgramJupiterV1,
	ProgramJupiterV2,
	ProgramJupiterV3,
	ProgramJupiterV4,
	ProgramMercurialStableSwap,
	ProgramSaberStableSwap,
	ProgramSaberExchange,
	ProgramSerumDexV1,
	ProgramSerumDexV2,
	ProgramSerumDexV3,
	ProgramSerumSwap,
	ProgramStepFinance,
	ProgramCropper,
	ProgramRaydiumLiquidityPoolV2,
	ProgramRaydiumLiquidityPoolV3,
	ProgramRaydiumLiquidityPoolV4,
	ProgramAldrinAmmV1,
	ProgramAldrinAmmV2,
	ProgramCrema,
	ProgramLifinity,
	ProgramLifinityV2,
	ProgramCykura,
	ProgramOrcaTokenSwapV1,
	ProgramOrcaTokenSwapV2,
	ProgramOrcaWhirlpools,
	ProgramMarinade,
	ProgramStepn,
	ProgramSenchaExchange,
	ProgramSarosAmm,
	ProgramFoxyStake,
	ProgramFoxySwap,
	ProgramFoxyRaffle,
	ProgramFoxyTokenMarket,
	ProgramFoxyMissions,
	ProgramFoxyMarmalade,
	ProgramFoxyCoinflip,
	ProgramFoxyAuction,
	ProgramCitrus,
	ProgramHadeSwap,
	ProgramZeta,
	ProgramCardinalRent,
	ProgramCardinalStaking,
	ProgramSharkyFi,
	ProgramOpenCreatorProtocol,
	ProgramBubblegum,
	ProgramCoralCube,
}
