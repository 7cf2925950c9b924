package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/tarancss/selene/lib/block"
	"github.com/tarancss/selene/lib/helius/types"
	"github.com/tarancss/selene/lib/msg"
	"github.com/tarancss/selene/lib/msg/local"
	"github.com/tarancss/selene/lib/store"
	"github.com/tarancss/selene/lib/store/sqlite"
)

var errFake = errors.New("fake failure")

type fakeNames struct {
	names map[string][]string
	fail  map[string]bool
	delay time.Duration
	calls atomic.Int32
}

func (f *fakeNames) GetNames(_ context.Context, address string) (types.Names, error) {
	f.calls.Add(1)
	time.Sleep(f.delay)

	if f.fail[address] {
		return types.Names{}, errFake
	}

	return types.Names{DomainNames: f.names[address]}, nil
}

type fakeChain struct {
	mu     sync.Mutex
	height uint64
	err    error
}

func (f *fakeChain) fail(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func (f *fakeChain) AvgBlock() time.Duration { return 400 * time.Millisecond }

func (f *fakeChain) Close() {}

func (f *fakeChain) Height(context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.height, f.err
}

func (f *fakeChain) Slot(ctx context.Context) (uint64, error) { return f.Height(ctx) }

func (f *fakeChain) LatestBlockhash(context.Context) (block.Blockhash, error) {
	return block.Blockhash{}, nil
}

func (f *fakeChain) Balance(context.Context, string) (uint64, error) { return 0, nil }

type fakeChat struct {
	mu   sync.Mutex
	msgs []string
	err  error
}

func (f *fakeChat) Notify(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	f.msgs = append(f.msgs, text)

	return nil
}

func (f *fakeChat) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.msgs...)
}

func tx(sig, desc string, accounts ...string) types.EnhancedTransaction {
	t := types.EnhancedTransaction{Signature: sig, Description: desc, Type: types.TxTypeTransfer}
	for _, a := range accounts {
		t.AccountData = append(t.AccountData, types.AccountData{Account: a})
	}

	return t
}

func msgBatch(txs ...types.EnhancedTransaction) msg.Batch {
	return msg.NewBatch(txs)
}

func newRelay(t *testing.T, o Options) *Relay {
	t.Helper()

	if o.Names == nil {
		o.Names = &fakeNames{}
	}

	if o.Chain == nil {
		o.Chain = &fakeChain{height: 1}
	}

	if o.Notifier == nil {
		o.Notifier = &fakeChat{}
	}

	if o.Broker == nil {
		o.Broker = local.New(local.DefaultSize)
	}

	o.Logger = zerolog.Nop()

	r, err := New(o)
	require.NoError(t, err)

	return r
}

func TestNew(t *testing.T) {
	_, err := New(Options{})
	assert.ErrorIs(t, err, ErrNoNames)

	_, err = New(Options{Names: &fakeNames{}})
	assert.ErrorIs(t, err, ErrNoChain)

	_, err = New(Options{Names: &fakeNames{}, Chain: &fakeChain{}})
	assert.ErrorIs(t, err, ErrNoNotifier)

	_, err = New(Options{Names: &fakeNames{}, Chain: &fakeChain{}, Notifier: &fakeChat{}})
	assert.ErrorIs(t, err, ErrNoBroker)

	r := newRelay(t, Options{})
	assert.Equal(t, DefaultNet, r.net)
	assert.NotNil(t, r.Cache())
	assert.NotNil(t, r.Registry())

	// metrics are registered once per registry
	_, err = New(Options{
		Names: &fakeNames{}, Chain: &fakeChain{}, Notifier: &fakeChat{}, Broker: local.New(1), Registry: r.Registry(),
	})
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	txs := []types.EnhancedTransaction{tx("sig1", "A sent 1 SOL to B"), tx("sig2", "B sent 2 SOL to C")}
	names := []AccountName{{"A", "alice.sol"}, {"B", "B"}, {"C", "carol.sol"}}

	assert.Equal(t, "A sent 1 SOL to B\nhttps://xray.helius.xyz/tx/sig1\n"+
		"B sent 2 SOL to C\nhttps://xray.helius.xyz/tx/sig2\n\n"+
		"A=alice.sol\nC=carol.sol", Format(txs, names))

	assert.Equal(t, "x\nhttps://xray.helius.xyz/tx/s", Format([]types.EnhancedTransaction{tx("s", "x")},
		[]AccountName{{"B", "B"}}))
	assert.Equal(t, "", AccountName{"B", "B"}.String())
}

func TestNameCacheResolveOnce(t *testing.T) {
	c := NewNameCache()

	const n = 64

	var (
		wg      sync.WaitGroup
		lookups atomic.Int32
	)

	got := make([]string, n)

	for i := 0; i < n; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			got[i], _ = c.Resolve("A", func() string {
				lookups.Add(1)
				time.Sleep(10 * time.Millisecond)

				return fmt.Sprintf("name%d", i)
			})
		}(i)
	}

	wg.Wait()

	assert.Equal(t, int32(1), lookups.Load())

	final, ok := c.Get("A")
	require.True(t, ok)

	for _, g := range got {
		assert.Equal(t, final, g)
	}

	assert.Equal(t, 1, c.Len())

	assert.Equal(t, 1, c.Warm([]store.Name{{Address: "A", Name: "other"}, {Address: "B", Name: "bob.sol"}}))
	final2, _ := c.Get("A")
	assert.Equal(t, final, final2)
}

func TestResolve(t *testing.T) {
	names := &fakeNames{
		names: map[string][]string{"A": {"alice.sol", "alice2.sol"}},
		fail:  map[string]bool{"C": true},
	}
	r := newRelay(t, Options{Names: names})

	txs := []types.EnhancedTransaction{
		tx("s1", "d1", "A", SystemProgram, "B"),
		tx("s2", "d2", "B", "C"),
	}

	got := r.resolve(context.Background(), txs)
	assert.Equal(t, []AccountName{{"A", "alice.sol"}, {"B", "B"}, {"C", "C"}}, got)
	assert.Equal(t, int32(3), names.calls.Load())

	// second time from the cache, failures included
	got = r.resolve(context.Background(), txs)
	assert.Equal(t, []AccountName{{"A", "alice.sol"}, {"B", "B"}, {"C", "C"}}, got)
	assert.Equal(t, int32(3), names.calls.Load())
}

func TestResolveConcurrentMisses(t *testing.T) {
	names := &fakeNames{names: map[string][]string{"A": {"alice.sol"}}, delay: 20 * time.Millisecond}
	r := newRelay(t, Options{Names: names})

	txs := []types.EnhancedTransaction{tx("s1", "d1", "A")}

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			assert.Equal(t, []AccountName{{"A", "alice.sol"}}, r.resolve(context.Background(), txs))
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), names.calls.Load())
}

func TestWarmCache(t *testing.T) {
	db, err := sqlite.New(filepath.Join(t.TempDir(), "selene.db"))
	require.NoError(t, err)

	require.NoError(t, db.SaveName(context.Background(), store.Name{Address: "A", Name: "alice.sol"}))

	names := &fakeNames{}
	r := newRelay(t, Options{Names: names, Store: db})

	defer r.Stop()

	n, err := r.WarmCache(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got := r.resolve(context.Background(), []types.EnhancedTransaction{tx("s", "d", "A", "B")})
	assert.Equal(t, []AccountName{{"A", "alice.sol"}, {"B", "B"}}, got)
	assert.Equal(t, int32(1), names.calls.Load())

	// B was looked up and persisted
	ns, err := db.LoadNames(context.Background())
	require.NoError(t, err)
	assert.Len(t, ns, 2)

	n, err = newRelay(t, Options{}).WarmCache(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

const hook = `[{"description":"A transferred 1 SOL to B","signature":"sig1","type":"TRANSFER","source":"SYSTEM_PROGRAM",
"slot":5,"timestamp":1673445241,"accountData":[{"account":"A","nativeBalanceChange":-1},{"account":"B","nativeBalanceChange":1},
{"account":"11111111111111111111111111111111","nativeBalanceChange":0}]}]`

func do(t *testing.T, method, url, body string, header ...string) (int, string) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, url, strings.NewReader(body))
	require.NoError(t, err)

	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res.StatusCode, string(b)
}

func TestAPI(t *testing.T) {
	db, err := sqlite.New(filepath.Join(t.TempDir(), "selene.db"))
	require.NoError(t, err)

	chat := &fakeChat{}
	chain := &fakeChain{height: 250_000_000}
	names := &fakeNames{names: map[string][]string{"A": {"alice.sol"}}}

	r := newRelay(t, Options{Names: names, Chain: chain, Notifier: chat, Store: db, AuthHeader: "Bearer s3cret"})
	require.NoError(t, r.ManageEvents(context.Background()))

	defer r.Stop()

	srv := httptest.NewServer(r.Router())
	defer srv.Close()

	cases := []struct {
		name, method, uri, body string
		header                  []string
		status                  int
		resExp                  string
	}{
		{"home_get", http.MethodGet, "/", "", nil, http.StatusForbidden, "go away\n"},
		{"unknown", http.MethodGet, "/wallet", "", nil, http.StatusForbidden, "go away\n"},
		{"health_post", http.MethodPost, "/health", "", nil, http.StatusForbidden, "go away\n"},
		{"hook_noauth", http.MethodPost, "/", hook, nil, http.StatusUnauthorized, ""},
		{"hook_badauth", http.MethodPost, "/", hook, []string{"Authorization", "Bearer x"}, http.StatusUnauthorized, ""},
		{"hook_badbody", http.MethodPost, "/", `{"not":"a list"}`, []string{"Authorization", "Bearer s3cret"},
			http.StatusBadRequest, ""},
		{"hook_empty", http.MethodPost, "/", `[]`, []string{"Authorization", "Bearer s3cret"}, http.StatusAccepted, ""},
		{"hook", http.MethodPost, "/", hook, []string{"Authorization", "Bearer s3cret"}, http.StatusAccepted, ""},
		{"health", http.MethodGet, "/health", "", nil, http.StatusOK, `{"height":250000000}` + "\n"},
		{"hooks_badlimit", http.MethodGet, "/hooks?limit=x", "", nil, http.StatusBadRequest, ""},
	}

	for _, c := range cases {
		status, body := do(t, c.method, srv.URL+c.uri, c.body, c.header...)
		assert.Equal(t, c.status, status, c.name)

		if c.resExp != "" {
			assert.Equal(t, c.resExp, body, c.name)
		}
	}

	// the accepted hook reaches the chat
	require.Eventually(t, func() bool { return len(chat.sent()) == 1 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "A transferred 1 SOL to B\nhttps://xray.helius.xyz/tx/sig1\n\nA=alice.sol", chat.sent()[0])

	// and the store
	require.Eventually(t, func() bool {
		_, body := do(t, http.MethodGet, srv.URL+"/hooks?limit=5", "")

		return gjson.Get(body, "#").Int() == 1
	}, 5*time.Second, 10*time.Millisecond)

	_, body := do(t, http.MethodGet, srv.URL+"/hooks", "")
	assert.Equal(t, "sig1", gjson.Get(body, "0.signature").String())
	assert.Equal(t, "mainnet", gjson.Get(body, "0.net").String())

	_, body = do(t, http.MethodGet, srv.URL+"/metrics", "")
	assert.Contains(t, body, "selene_relay_hooks_received_total 2")
	assert.Contains(t, body, "selene_relay_notifications_sent_total 1")
	assert.Contains(t, body, "selene_relay_transactions_relayed_total 1")
	assert.Contains(t, body, "selene_relay_name_cache_misses_total 2")

	// chain down
	chain.fail(errFake)
	status, body := do(t, http.MethodGet, srv.URL+"/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, errFake.Error(), gjson.Get(body, "error").String())
}

func TestHookBrokerDown(t *testing.T) {
	mb := local.New(1)
	require.NoError(t, mb.Close())

	r := newRelay(t, Options{Broker: mb})
	srv := httptest.NewServer(r.Router())

	defer srv.Close()

	status, _ := do(t, http.MethodPost, srv.URL, hook)
	assert.Equal(t, http.StatusServiceUnavailable, status)

	// no store
	status, _ = do(t, http.MethodGet, srv.URL+"/hooks", "")
	assert.Equal(t, http.StatusForbidden, status)
}

func TestNotifyFailure(t *testing.T) {
	chat := &fakeChat{err: errFake}
	r := newRelay(t, Options{Notifier: chat})

	r.handleBatch(context.Background(), msgBatch(tx("s", "d", "A")))
	assert.Empty(t, chat.sent())

	srv := httptest.NewServer(r.Router())
	defer srv.Close()

	_, body := do(t, http.MethodGet, srv.URL+"/metrics", "")
	assert.Contains(t, body, "selene_relay_notifications_failed_total 1")
}

func TestInitStop(t *testing.T) {
	r := newRelay(t, Options{})

	res := make(chan string)

	go func() { res <- r.Init("127.0.0.1", "0", "", "", "") }()

	time.Sleep(100 * time.Millisecond)
	r.Stop()
	r.Stop()

	select {
	case s := <-res:
		assert.Equal(t, "shutdown http server: <nil>, https server: <nil>", s)
	case <-time.After(5 * time.Second):
		t.Fatal("Init did not return")
	}
}
