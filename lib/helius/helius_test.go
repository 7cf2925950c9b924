package helius

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/tarancss/selene/lib/helius/types"
	"github.com/tarancss/selene/lib/request"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// provider fakes the REST and JSON-RPC endpoints of the API. It keeps webhooks in memory.
type provider struct {
	t        *testing.T
	mu       sync.Mutex
	webhooks map[string]types.Webhook
	rpc      map[string]string // method -> result
	calls    []string
	bodies   []string
}

func (p *provider) record(r *http.Request) []byte {
	b, _ := io.ReadAll(r.Body)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, r.Method+" "+r.URL.Path)
	p.bodies = append(p.bodies, string(b))

	assert.Equal(p.t, "key", r.URL.Query().Get("api-key"), r.URL.String())
	assert.True(p.t, strings.HasPrefix(r.Header.Get("User-Agent"), "selene/"))

	return b
}

func reply(rw http.ResponseWriter, status int, body string) {
	rw.WriteHeader(status)
	_, _ = io.WriteString(rw, body)
}

func (p *provider) router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/rpc/", func(rw http.ResponseWriter, r *http.Request) {
		b := p.record(r)
		res, ok := p.rpc[gjson.GetBytes(b, "method").String()]
		if !ok {
			reply(rw, http.StatusOK, `{"jsonrpc":"2.0","id":"1","error":{"code":-32601,"message":"Method not found"}}`)

			return
		}
		reply(rw, http.StatusOK, `{"jsonrpc":"2.0","id":"1","result":`+res+`}`)
	}).Methods(http.MethodPost)

	r.HandleFunc("/v0/webhooks", func(rw http.ResponseWriter, r *http.Request) {
		p.record(r)
		p.mu.Lock()
		defer p.mu.Unlock()

		list := make([]types.Webhook, 0, len(p.webhooks))
		for _, w := range p.webhooks {
			list = append(list, w)
		}

		b, _ := json.Marshal(list)
		reply(rw, http.StatusOK, string(b))
	}).Methods(http.MethodGet)

	r.HandleFunc("/v0/webhooks", func(rw http.ResponseWriter, r *http.Request) {
		b := p.record(r)

		var w types.Webhook

		assert.NoError(p.t, json.Unmarshal(b, &w.WebhookData))
		w.WebhookID, w.Wallet = "new-id", "wallet"

		p.mu.Lock()
		p.webhooks[w.WebhookID] = w
		p.mu.Unlock()

		out, _ := json.Marshal(w)
		reply(rw, http.StatusOK, string(out))
	}).Methods(http.MethodPost)

	r.HandleFunc("/v0/webhooks/{id}", func(rw http.ResponseWriter, r *http.Request) {
		b := p.record(r)
		id := mux.Vars(r)["id"]

		p.mu.Lock()
		defer p.mu.Unlock()

		w, ok := p.webhooks[id]
		if !ok {
			reply(rw, http.StatusNotFound, "")

			return
		}

		switch r.Method {
		case http.MethodDelete:
			delete(p.webhooks, id)
			reply(rw, http.StatusOK, "")

			return
		case http.MethodPut:
			assert.NoError(p.t, json.Unmarshal(b, &w.WebhookData))
			p.webhooks[id] = w
		}

		out, _ := json.Marshal(w)
		reply(rw, http.StatusOK, string(out))
	}).Methods(http.MethodGet, http.MethodPut, http.MethodDelete)

	r.HandleFunc("/v0/transactions", func(rw http.ResponseWriter, r *http.Request) {
		b := p.record(r)

		var req types.ParseTransactionsRequest

		assert.NoError(p.t, json.Unmarshal(b, &req))

		for _, s := range req.Transactions {
			if s == "bad" {
				reply(rw, http.StatusInternalServerError, "parse failed")

				return
			}
		}

		txs := make([]types.EnhancedTransaction, len(req.Transactions))
		for i, s := range req.Transactions {
			txs[i] = types.EnhancedTransaction{Signature: s, Type: types.TxTypeTransfer}
		}

		out, _ := json.Marshal(txs)
		reply(rw, http.StatusOK, string(out))
	}).Methods(http.MethodPost)

	r.HandleFunc("/v0/addresses/{addr}/transactions", func(rw http.ResponseWriter, r *http.Request) {
		p.record(r)
		reply(rw, http.StatusOK, `[{"signature":"s1","type":"NFT_SALE","source":"MAGIC_EDEN","description":"sold"}]`)
	}).Methods(http.MethodGet)

	r.HandleFunc("/v0/addresses/{addr}/names", func(rw http.ResponseWriter, r *http.Request) {
		p.record(r)

		switch mux.Vars(r)["addr"] {
		case "unknown":
			reply(rw, http.StatusBadRequest, "invalid address")
		case "unnamed":
			reply(rw, http.StatusOK, `{"domainNames":[]}`)
		case "failing":
			reply(rw, http.StatusOK, `{"jsonrpc":"2.0","id":"1","error":{"code":-32000,"message":"boom"}}`)
		default:
			reply(rw, http.StatusOK, `{"domainNames":["selene.sol","moon.sol"]}`)
		}
	}).Methods(http.MethodGet)

	return r
}

func newTestClient(t *testing.T, rpc map[string]string) (*Client, *provider) {
	t.Helper()

	p := &provider{t: t, webhooks: map[string]types.Webhook{}, rpc: rpc}
	srv := httptest.NewServer(p.router())
	t.Cleanup(srv.Close)

	c, err := New("key", WithAPIURL(srv.URL+"/v0"), WithRPCURL(srv.URL+"/rpc/"), WithHTTPClient(srv.Client()),
		WithVerbose(true))
	require.NoError(t, err)

	return c, p
}

func TestNew(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrNoAPIKey)

	c, err := New("k")
	require.NoError(t, err)
	assert.Equal(t, Mainnet, c.Cluster())
	assert.Equal(t, APIURL, c.apiURL)
	assert.Equal(t, "https://mainnet.helius-rpc.com/?api-key=k", c.rpcURL)

	c, err = New("k", WithCluster(Devnet))
	require.NoError(t, err)
	assert.Equal(t, DevAPIURL, c.apiURL)
	assert.Equal(t, "https://devnet.helius-rpc.com/?api-key=k", c.rpcURL)

	u, err := c.url("addresses", "a/b c", "names")
	require.NoError(t, err)
	assert.Equal(t, "https://api-devnet.helius-rpc.com/v0/addresses/a%2Fb%20c/names?api-key=k", u)

	_, err = New("k", WithAPIURL("not a url"))
	assert.True(t, errors.Is(err, request.ErrURL), "%v", err)

	_, err = New("k", WithRPCURL("http://[::1]:port/"))
	assert.True(t, errors.Is(err, request.ErrURL), "%v", err)
}

func TestParseCluster(t *testing.T) {
	for in, want := range map[string]Cluster{"": Mainnet, "mainnet": Mainnet, "Devnet": Devnet} {
		got, err := ParseCluster(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseCluster("testnet")
	assert.ErrorIs(t, err, ErrUnknownCluster)
}

func TestDAS(t *testing.T) {
	c, p := newTestClient(t, map[string]string{
		"getAsset": `{"interface":"ProgrammableNFT","id":"F9Lw","ownership":{"frozen":false,"delegated":false,
			"ownership_model":"single","owner":"Own"},"mutable":true,"burnt":false}`,
		"getAssetsByOwner":   `{"total":1,"limit":1000,"page":1,"items":[{"interface":"V1_NFT","id":"a1"}]}`,
		"getAssetProofBatch": `{"a1":{"root":"r","proof":["p1"],"node_index":3,"leaf":"l","tree_id":"t"}}`,
		"getTokenAccounts":   `{"total":0,"limit":10,"page":1,"token_accounts":[]}`,
	})
	ctx := context.Background()

	a, err := c.GetAsset(ctx, types.GetAssetParams{ID: "F9Lw"})
	require.NoError(t, err)
	assert.Equal(t, types.InterfaceProgrammableNFT, a.Interface)
	assert.Equal(t, "Own", a.Ownership.Owner)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":"1","method":"getAsset","params":{"id":"F9Lw"}}`, p.bodies[0])
	assert.Equal(t, "POST /rpc/", p.calls[0])

	l, err := c.GetAssetsByOwner(ctx, types.GetAssetsByOwnerParams{OwnerAddress: "Own"})
	require.NoError(t, err)
	require.Len(t, l.Items, 1)
	assert.Equal(t, int64(1), gjson.Get(p.bodies[1], "params.page").Int())
	assert.Equal(t, "Own", gjson.Get(p.bodies[1], "params.ownerAddress").String())

	proofs, err := c.GetAssetProofBatch(ctx, types.GetAssetProofBatchParams{IDs: []string{"a1"}})
	require.NoError(t, err)
	assert.Equal(t, uint32(3), proofs["a1"].NodeIndex)

	_, err = c.GetTokenAccounts(ctx, types.GetTokenAccountsParams{Owner: "Own"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), gjson.Get(p.bodies[3], "params.page").Int())

	_, err = c.SearchAssets(ctx, types.SearchAssetsParams{})

	var e *request.Error

	require.True(t, errors.As(err, &e))
	assert.Equal(t, request.KindRPC, e.Kind)
	assert.Equal(t, -32601, e.Code)
}

func TestPriorityFees(t *testing.T) {
	c, p := newTestClient(t, map[string]string{
		"getPriorityFeeEstimate": `{"priorityFeeLevels":{"low":1,"medium":2,"high":3,"veryHigh":4,"unsafeMax":5}}`,
	})
	ctx := context.Background()

	levels, err := c.PriorityFeeLevels(ctx, "", []string{"JUP6"})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, levels.VeryHigh, 0)
	assert.JSONEq(t, `[{"accountKeys":["JUP6"],"options":{"includeAllPriorityFeeLevels":true,"lookbackSlots":150}}]`,
		gjson.Get(p.bodies[0], "params").Raw)

	// the provider answers a single level request with every level
	_, err = c.PriorityFee(ctx, "", []string{"JUP6"}, types.PriorityHigh)
	assert.True(t, errors.Is(err, request.ErrInvalidFeeResponse), "%v", err)
	assert.Equal(t, "HIGH", gjson.Get(p.bodies[1], "params.0.options.priorityLevel").String())

	c, _ = newTestClient(t, map[string]string{"getPriorityFeeEstimate": `{"priorityFeeEstimate":10000}`})

	fee, err := c.PriorityFee(ctx, "AQAB", nil, "")
	require.NoError(t, err)
	assert.InDelta(t, 10000.0, fee, 0)

	_, err = c.PriorityFeeLevels(ctx, "AQAB", nil)
	assert.True(t, request.IsKind(err, request.KindInvalidFeeResponse))
}

func TestEnhancedTransactions(t *testing.T) {
	c, p := newTestClient(t, nil)
	ctx := context.Background()

	sigs := make([]string, 150)
	for i := range sigs {
		sigs[i] = fmt.Sprintf("sig%d", i)
	}

	txs, err := c.ParseAllTransactions(ctx, sigs)
	require.NoError(t, err)
	require.Len(t, txs, 150)
	assert.Equal(t, "sig0", txs[0].Signature)
	assert.Equal(t, "sig149", txs[149].Signature)
	assert.Equal(t, []string{"POST /v0/transactions", "POST /v0/transactions"}, p.calls)

	// a failing chunk fails the whole call, earlier chunks are not returned
	txs, err = c.ParseAllTransactions(ctx, append(append([]string{}, sigs...), "bad"))
	assert.True(t, errors.Is(err, request.ErrInternal), "%v", err)
	assert.Nil(t, txs)

	hist, err := c.ParsedTransactionHistory(ctx, "Addr")
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, types.TxTypeNFTSale, hist[0].Type)
	assert.Equal(t, "GET /v0/addresses/Addr/transactions", p.calls[4])
}

func TestWebhooks(t *testing.T) {
	c, p := newTestClient(t, nil)
	ctx := context.Background()

	w, err := c.CreateWebhook(ctx, types.CreateWebhookRequest{WebhookData: types.WebhookData{
		WebhookURL:       "https://relay.example/",
		TransactionTypes: []types.TransactionType{types.TxTypeAny},
		AccountAddresses: []string{"A"},
	}})
	require.NoError(t, err)
	assert.Equal(t, "new-id", w.WebhookID)
	assert.Equal(t, types.TxnStatusAll, w.TxnStatus)
	assert.Equal(t, types.EncodingJSONParsed, w.Encoding)
	assert.Equal(t, types.WebhookEnhanced, w.WebhookType)

	w, err = c.AppendAddressesToWebhook(ctx, "new-id", []string{"B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, w.AccountAddresses)
	assert.Equal(t, []string{"A", "B"}, p.webhooks["new-id"].AccountAddresses)
	assert.Equal(t, "PUT /v0/webhooks/new-id", p.calls[len(p.calls)-1])

	all, err := c.GetAllWebhooks(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, c.DeleteWebhook(ctx, "new-id"))

	_, err = c.GetWebhookByID(ctx, "new-id")
	assert.True(t, errors.Is(err, request.ErrNotFound), "%v", err)

	_, err = c.AppendAddressesToWebhook(ctx, "new-id", []string{"C"})
	assert.True(t, errors.Is(err, request.ErrNotFound), "%v", err)

	_, err = c.CreateWebhook(ctx, types.CreateWebhookRequest{WebhookData: types.WebhookData{
		AccountAddresses: make([]string, types.MaxWebhookAddresses+1),
	}})
	assert.ErrorIs(t, err, ErrTooManyAddresses)

	w, err = c.CreateCollectionWebhook(ctx, types.CreateCollectionWebhookRequest{
		WebhookData:     types.WebhookData{WebhookURL: "https://relay.example/"},
		CollectionQuery: types.ByFirstVerifiedCreators("Creator"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new-id", w.WebhookID)
	assert.Equal(t, "Creator", gjson.Get(p.bodies[len(p.bodies)-1], "collectionQuery.firstVerifiedCreators.0").String())
}

func TestNames(t *testing.T) {
	c, p := newTestClient(t, nil)

	n, err := c.GetNames(context.Background(), "Addr")
	require.NoError(t, err)
	assert.Equal(t, []string{"selene.sol", "moon.sol"}, n.DomainNames)
	assert.Equal(t, "GET /v0/addresses/Addr/names", p.calls[0])

	_, err = c.GetNames(context.Background(), "unknown")
	assert.True(t, errors.Is(err, request.ErrBadRequest), "%v", err)

	n, err = c.GetNames(context.Background(), "unnamed")
	require.NoError(t, err)
	assert.Empty(t, n.DomainNames)

	// an error object answered with 200 is an rpc error, not an empty list
	n, err = c.GetNames(context.Background(), "failing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, request.ErrRPC), "%v", err)
	assert.Nil(t, n.DomainNames)

	var e *request.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "boom", e.Message)
}

func TestConnection(t *testing.T) {
	c, _ := newTestClient(t, map[string]string{"getBlockHeight": `42`})

	h, err := c.Connection().Height(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(42), h)
}
