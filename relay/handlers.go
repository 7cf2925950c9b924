package relay

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/tarancss/selene/lib/helius/types"
	"github.com/tarancss/selene/lib/msg"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // codec

// MaxHookBody is the largest webhook body accepted.
const MaxHookBody = 16 << 20

// Errors returned to client requests.
var (
	ErrUnauthorized = errors.New("bad authorization header")
	ErrBadLimit     = errors.New("limit must be a non-negative integer")
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Height uint64 `json:"height"`
}

func reply(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json;charset=utf8")
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(v)
}

func replyError(rw http.ResponseWriter, status int, err error) {
	reply(rw, status, errorResponse{Error: err.Error()})
}

// goAway rejects anything that is not part of the API.
func goAway(rw http.ResponseWriter, _ *http.Request) {
	http.Error(rw, "go away", http.StatusForbidden)
}

// hookHandler accepts a webhook delivery and publishes it to the broker as a batch. The provider gets its answer
// before the chat is notified.
func (r *Relay) hookHandler(rw http.ResponseWriter, req *http.Request) {
	log := r.log.With().Str("remote", req.RemoteAddr).Logger()

	if r.auth != "" && req.Header.Get("Authorization") != r.auth {
		log.Warn().Msg("hook with bad authorization")
		replyError(rw, http.StatusUnauthorized, ErrUnauthorized)

		return
	}

	var txs []types.EnhancedTransaction

	if err := json.NewDecoder(http.MaxBytesReader(rw, req.Body, MaxHookBody)).Decode(&txs); err != nil {
		log.Error().Err(err).Msg("bad hook body")
		replyError(rw, http.StatusBadRequest, err)

		return
	}

	r.m.hooks.Inc()

	if len(txs) == 0 {
		rw.WriteHeader(http.StatusAccepted)

		return
	}

	b := msg.NewBatch(txs)
	if err := r.mb.SendBatch(r.net, b); err != nil {
		// the provider retries failed deliveries
		log.Error().Err(err).Str("batch", b.ID).Msg("could not publish hook")
		replyError(rw, http.StatusServiceUnavailable, err)

		return
	}

	log.Debug().Str("batch", b.ID).Int("txs", len(txs)).Msg("hook accepted")
	rw.WriteHeader(http.StatusAccepted)
}

// healthHandler replies the current block height.
func (r *Relay) healthHandler(rw http.ResponseWriter, req *http.Request) {
	h, err := r.bc.Height(req.Context())
	if err != nil {
		r.log.Error().Err(err).Msg("health check failed")
		replyError(rw, http.StatusServiceUnavailable, err)

		return
	}

	reply(rw, http.StatusOK, healthResponse{Height: h})
}

// hooksHandler replies the latest relayed transactions, newest first. ?limit=n bounds how many.
func (r *Relay) hooksHandler(rw http.ResponseWriter, req *http.Request) {
	if r.db == nil {
		goAway(rw, req)

		return
	}

	limit := 0

	if v := req.URL.Query().Get("limit"); v != "" {
		var err error
		if limit, err = strconv.Atoi(v); err != nil || limit < 0 {
			replyError(rw, http.StatusBadRequest, ErrBadLimit)

			return
		}
	}

	hs, err := r.db.GetHooks(req.Context(), limit)
	if err != nil {
		r.log.Error().Err(err).Msg("reading hooks")
		replyError(rw, http.StatusInternalServerError, err)

		return
	}

	reply(rw, http.StatusOK, hs)
}
