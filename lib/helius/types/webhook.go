package types

import "github.com/tidwall/gjson"

// MaxWebhookAddresses is the number of account addresses a webhook can watch.
const MaxWebhookAddresses = 100_000

// Webhook is a provider-side subscription that posts matching transactions to WebhookURL.
type Webhook struct {
	WebhookID string `json:"webhookID"`
	Wallet    string `json:"wallet"`
	WebhookData
}

// Validate rejects bodies that are not webhooks, such as error objects.
func (w Webhook) Validate() error {
	if w.WebhookID == "" {
		return ErrNoWebhookID
	}

	return nil
}

// WebhookData is the editable part of a webhook.
type WebhookData struct {
	WebhookURL       string                 `json:"webhookURL"`
	TransactionTypes []TransactionType      `json:"transactionTypes,omitempty"`
	AccountAddresses []string               `json:"accountAddresses"`
	WebhookType      WebhookType            `json:"webhookType"`
	AuthHeader       string                 `json:"authHeader,omitempty"`
	TxnStatus        TxnStatus              `json:"txnStatus,omitempty"`
	Encoding         AccountWebhookEncoding `json:"encoding,omitempty"`
}

// WithDefaults returns d with an enhanced webhook type, all statuses and parsed encoding where unset.
func (d WebhookData) WithDefaults() WebhookData {
	if d.WebhookType == "" {
		d.WebhookType = WebhookEnhanced
	}

	if d.TxnStatus == "" {
		d.TxnStatus = TxnStatusAll
	}

	if d.Encoding == "" {
		d.Encoding = EncodingJSONParsed
	}

	if d.AccountAddresses == nil {
		d.AccountAddresses = []string{}
	}

	return d
}

// CreateWebhookRequest is the body of a webhook creation.
type CreateWebhookRequest struct {
	WebhookData
}

// CollectionIdentifier selects the NFT collection of a collection webhook. Exactly one field is set.
type CollectionIdentifier struct {
	FirstVerifiedCreators     []string `json:"firstVerifiedCreators,omitempty"`
	VerifiedCollectionAddress []string `json:"verifiedCollectionAddress,omitempty"`
}

// ByFirstVerifiedCreators identifies a collection by the first verified creator of its NFTs.
func ByFirstVerifiedCreators(addrs ...string) CollectionIdentifier {
	return CollectionIdentifier{FirstVerifiedCreators: addrs}
}

// ByVerifiedCollectionAddress identifies a collection by its verified collection address.
func ByVerifiedCollectionAddress(addrs ...string) CollectionIdentifier {
	return CollectionIdentifier{VerifiedCollectionAddress: addrs}
}

// CreateCollectionWebhookRequest creates a webhook watching every NFT of a collection.
type CreateCollectionWebhookRequest struct {
	WebhookData
	CollectionQuery CollectionIdentifier `json:"collectionQuery"`
}

// EditWebhookRequest replaces the data of webhook WebhookID. Only Data is sent.
type EditWebhookRequest struct {
	WebhookID string
	Data      WebhookData
}

// Names are the domain names owned by an address.
type Names struct {
	DomainNames []string `json:"domainNames"`
}

// UnmarshalJSON requires the domainNames member. An empty list is valid.
func (n *Names) UnmarshalJSON(b []byte) error {
	if !gjson.GetBytes(b, "domainNames").Exists() {
		return ErrNoDomainNames
	}

	type plain Names

	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*n = Names(v)

	return nil
}
