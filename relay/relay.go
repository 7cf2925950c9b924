// Package relay implements the webhook relay service.
//
// The provider posts enhanced transactions to the relay, which publishes them as a batch to the message broker and
// answers at once. The event loop consumes the batches, resolves the names of the accounts involved and sends one
// message per batch to the chat. Relayed transactions are logged to the store, if any.
package relay

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/tarancss/selene/lib/block"
	"github.com/tarancss/selene/lib/chat"
	"github.com/tarancss/selene/lib/helius/types"
	"github.com/tarancss/selene/lib/msg"
	"github.com/tarancss/selene/lib/store"
)

// DefaultNet is the broker routing name used when none is given.
const DefaultNet = "mainnet"

const notifyTimeout = 30 * time.Second

// Errors returned by New.
var (
	ErrNoNames    = errors.New("relay needs a name lookup")
	ErrNoChain    = errors.New("relay needs a chain connection")
	ErrNoNotifier = errors.New("relay needs a chat notifier")
	ErrNoBroker   = errors.New("relay needs a message broker")
)

// NameLookup finds the domain names of an account. *helius.Client implements it.
type NameLookup interface {
	GetNames(ctx context.Context, address string) (types.Names, error)
}

// Options are the collaborators of a Relay. Store, Cache and Registry are optional.
type Options struct {
	Net        string // broker routing name
	AuthHeader string // expected Authorization header of hooks, if any
	Names      NameLookup
	Chain      block.Chain
	Notifier   chat.Notifier
	Broker     msg.MsgBroker
	Store      store.DB
	Cache      *NameCache
	Registry   *prometheus.Registry
	Logger     zerolog.Logger
}

// Relay contains the data necessary to deliver the service.
type Relay struct {
	net   string
	auth  string
	names NameLookup
	bc    block.Chain
	chat  chat.Notifier
	mb    msg.MsgBroker
	db    store.DB // may be nil
	cache *NameCache
	reg   *prometheus.Registry
	m     *metrics
	log   zerolog.Logger
	mu    sync.Mutex    // guards s and ss
	s     *http.Server  // http server
	ss    *http.Server  // https server
	sc    chan struct{} // http server channel used for graceful shutdowns
	wg    sync.WaitGroup
	stop  sync.Once
}

// New returns a pointer to a new Relay service.
func New(o Options) (*Relay, error) {
	switch {
	case o.Names == nil:
		return nil, ErrNoNames
	case o.Chain == nil:
		return nil, ErrNoChain
	case o.Notifier == nil:
		return nil, ErrNoNotifier
	case o.Broker == nil:
		return nil, ErrNoBroker
	}

	r := &Relay{
		net:   o.Net,
		auth:  o.AuthHeader,
		names: o.Names,
		bc:    o.Chain,
		chat:  o.Notifier,
		mb:    o.Broker,
		db:    o.Store,
		cache: o.Cache,
		reg:   o.Registry,
		log:   o.Logger.With().Str("service", "relay").Logger(),
		sc:    make(chan struct{}),
	}

	if r.net == "" {
		r.net = DefaultNet
	}

	if r.cache == nil {
		r.cache = NewNameCache()
	}

	if r.reg == nil {
		r.reg = prometheus.NewRegistry()
	}

	var err error
	if r.m, err = newMetrics(r.reg); err != nil {
		return nil, err
	}

	return r, nil
}

// Registry returns the registry holding the relay metrics.
func (r *Relay) Registry() *prometheus.Registry {
	return r.reg
}

// Cache returns the name cache.
func (r *Relay) Cache() *NameCache {
	return r.cache
}

// WarmCache loads the names persisted in the store into the cache and returns how many were new to it.
func (r *Relay) WarmCache(ctx context.Context) (int, error) {
	if r.db == nil {
		return 0, nil
	}

	ns, err := r.db.LoadNames(ctx)
	if err != nil {
		return 0, err
	}

	n := r.cache.Warm(ns)
	r.log.Info().Int("names", n).Msg("name cache warmed from store")

	return n, nil
}

// Stop shuts down the http servers implementing the API, closes gracefully the message broker, waits for the event
// loop to finish and closes the database. It is safe to call Stop more than once.
func (r *Relay) Stop() {
	r.stop.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout*time.Second)
		defer cancel()

		// shutdown http servers
		r.mu.Lock()
		if r.s != nil {
			if err := r.s.Shutdown(ctx); err != nil {
				r.log.Error().Err(err).Msg("http server shutdown")
			}
		}

		if r.ss != nil {
			if err := r.ss.Shutdown(ctx); err != nil {
				r.log.Error().Err(err).Msg("https server shutdown")
			}
		}
		r.mu.Unlock()

		close(r.sc) // close server channel to indicate shutdowns have finished

		// close message broker, which ends the event loop
		if err := r.mb.Close(); err != nil {
			r.log.Error().Err(err).Msg("closing message broker")
		}

		r.wg.Wait()

		// close database
		if r.db != nil {
			if err := r.db.Close(); err != nil {
				r.log.Error().Err(err).Msg("closing database")
			}
		}

		r.bc.Close()
	})
}

// ManageEvents starts the go routines consuming the broker queue of the relay: one for batches, one for errors.
// Every batch is fully handled before the broker is allowed to deliver the next.
func (r *Relay) ManageEvents(ctx context.Context) error {
	mut := new(sync.Mutex)
	mut.Lock()

	batches, errs, err := r.mb.GetBatches(r.net, mut)
	if err != nil {
		return err
	}

	log := r.log.With().Str("net", r.net).Logger()

	r.wg.Add(2) //nolint:gomnd // two readers

	// launch batch channel reader
	go func() {
		defer r.wg.Done()

		log.Info().Msg("start listening to batch channel")

		for b := range batches {
			r.handleBatch(ctx, b)
			mut.Unlock()
		}

		log.Info().Msg("stop listening to batch channel")
	}()

	// launch error channel reader
	go func() {
		defer r.wg.Done()

		for e := range errs {
			log.Error().Err(e).Msg("received error from broker")
		}
	}()

	return nil
}

// handleBatch resolves names, sends the message to the chat and logs the transactions to the store. Errors are
// logged, never returned.
func (r *Relay) handleBatch(ctx context.Context, b msg.Batch) {
	log := r.log.With().Str("batch", b.ID).Int("txs", len(b.Txs)).Logger()

	if len(b.Txs) == 0 {
		return
	}

	names := r.resolve(ctx, b.Txs)

	nctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	err := r.chat.Notify(nctx, Format(b.Txs, names))

	cancel()

	if err != nil {
		r.m.failed.Inc()
		log.Error().Err(err).Msg("failed sending message")
	} else {
		r.m.sent.Inc()
		r.m.txs.Add(float64(len(b.Txs)))
		log.Info().Msg("sent message")
	}

	if r.db == nil {
		return
	}

	for _, tx := range b.Txs {
		h := store.NewHook(msg.NewID(b.Received), b.ID, r.net, b.Received, tx)
		if err := r.db.SaveHook(ctx, h); err != nil {
			log.Error().Err(err).Str("signature", tx.Signature).Msg("failed saving hook")
		}
	}
}
