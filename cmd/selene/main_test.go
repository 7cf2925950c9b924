package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/tarancss/selene/lib/config"
	"github.com/tarancss/selene/lib/helius"
	"github.com/tarancss/selene/lib/helius/types"
)

func TestRun(t *testing.T) {
	t.Setenv("SELENE_API_KEY", "")
	t.Setenv("HELIUS_API_KEY", "")

	var out, errOut bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"version"}, &out, &errOut))
	assert.Contains(t, out.String(), "selene "+helius.Version)

	assert.ErrorIs(t, run(context.Background(), nil, &out, &errOut), ErrNoCommand)
	assert.Contains(t, errOut.String(), "usage: selene")

	assert.ErrorIs(t, run(context.Background(), []string{"explore"}, &out, &errOut), ErrUnknownCommand)
	assert.ErrorIs(t, run(context.Background(), []string{"webhook"}, &out, &errOut), config.ErrNoAPIKey)

	t.Setenv("SELENE_API_KEY", "k")
	t.Setenv("SELENE_CHAT_ID", "")
	assert.ErrorIs(t, run(context.Background(), []string{"w", "create"}, &out, &errOut), ErrNoURL)
	assert.ErrorIs(t, run(context.Background(), []string{"w", "delete"}, &out, &errOut), ErrNoID)
	assert.ErrorIs(t, run(context.Background(), []string{"w", "add", "-id", "x"}, &out, &errOut), ErrNoAddresses)
	assert.ErrorIs(t, run(context.Background(), []string{"w", "rename"}, &out, &errOut), ErrUnknownCommand)
	assert.ErrorIs(t, run(context.Background(), []string{"s", "-port", "0"}, &out, &errOut), config.ErrNoChat)

	t.Setenv("SELENE_CLUSTER", "testnet")
	assert.ErrorIs(t, run(context.Background(), []string{"w"}, &out, &errOut), helius.ErrUnknownCluster)
}

func TestCreateRequest(t *testing.T) {
	r := createRequest("https://relay", "Bearer s", false, false, []string{"A"})
	assert.Equal(t, types.AllTransactionTypes(), r.TransactionTypes)
	assert.Equal(t, types.WebhookEnhanced, r.WebhookType)
	assert.Equal(t, types.TxnStatusAll, r.TxnStatus)
	assert.Equal(t, types.EncodingJSONParsed, r.Encoding)
	assert.Equal(t, "Bearer s", r.AuthHeader)
	assert.Equal(t, []string{"A"}, r.AccountAddresses)

	r = createRequest("https://relay", "", true, true, nil)
	assert.Equal(t, []types.TransactionType{types.TxTypeTransfer}, r.TransactionTypes)
	assert.Equal(t, types.WebhookEnhancedDevnet, r.WebhookType)
	assert.NotNil(t, r.AccountAddresses)
}

// fakeAPI keeps one webhook at most.
type fakeAPI struct {
	mu   sync.Mutex
	hook *types.Webhook
}

func (f *fakeAPI) router(t *testing.T) http.Handler {
	r := mux.NewRouter()

	write := func(rw http.ResponseWriter, v interface{}) {
		b, err := json.Marshal(v)
		assert.NoError(t, err)
		rw.Header().Set("Content-Type", "application/json")
		_, _ = rw.Write(b)
	}

	r.HandleFunc("/v0/webhooks", func(rw http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		if req.Method == http.MethodGet {
			list := []types.Webhook{}
			if f.hook != nil {
				list = append(list, *f.hook)
			}

			write(rw, list)

			return
		}

		b, _ := io.ReadAll(req.Body)
		w := types.Webhook{WebhookID: "id1", Wallet: "wallet"}
		assert.NoError(t, json.Unmarshal(b, &w.WebhookData))
		f.hook = &w
		write(rw, w)
	}).Methods(http.MethodGet, http.MethodPost)

	r.HandleFunc("/v0/webhooks/{id}", func(rw http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		if f.hook == nil || mux.Vars(req)["id"] != f.hook.WebhookID {
			rw.WriteHeader(http.StatusNotFound)

			return
		}

		switch req.Method {
		case http.MethodDelete:
			f.hook = nil
			rw.WriteHeader(http.StatusOK)

			return
		case http.MethodPut:
			b, _ := io.ReadAll(req.Body)
			assert.NoError(t, json.Unmarshal(b, &f.hook.WebhookData))
		}

		write(rw, f.hook)
	}).Methods(http.MethodGet, http.MethodPut, http.MethodDelete)

	return r
}

func TestWebhook(t *testing.T) {
	srv := httptest.NewServer((&fakeAPI{}).router(t))
	defer srv.Close()

	c, err := helius.New("k", helius.WithAPIURL(srv.URL+"/v0"))
	require.NoError(t, err)

	ctx := context.Background()

	var out, errOut bytes.Buffer

	require.NoError(t, webhook(ctx, c, "", nil, &out, &errOut))
	assert.JSONEq(t, `[]`, out.String())

	out.Reset()
	require.NoError(t, webhook(ctx, c, "Bearer s", []string{"create", "-url", "https://relay", "-transfer-only", "A"},
		&out, &errOut))
	assert.Equal(t, "id1", gjson.Get(out.String(), "webhookID").String())
	assert.Equal(t, "TRANSFER", gjson.Get(out.String(), "transactionTypes.0").String())
	assert.Equal(t, "Bearer s", gjson.Get(out.String(), "authHeader").String())

	out.Reset()
	require.NoError(t, webhook(ctx, c, "", []string{"add", "-id", "id1", "B", "C"}, &out, &errOut))
	assert.Equal(t, int64(3), gjson.Get(out.String(), "accountAddresses.#").Int())
	assert.Equal(t, "C", gjson.Get(out.String(), "accountAddresses.2").String())

	out.Reset()
	require.NoError(t, webhook(ctx, c, "", []string{"list"}, &out, &errOut))
	assert.Equal(t, int64(1), gjson.Get(out.String(), "#").Int())

	out.Reset()
	require.NoError(t, webhook(ctx, c, "", []string{"delete", "-id", "id1"}, &out, &errOut))
	assert.Equal(t, "deleted id1\n", out.String())

	assert.Error(t, webhook(ctx, c, "", []string{"delete", "-id", "id1"}, &out, &errOut))
}
