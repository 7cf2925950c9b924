package relay

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const timeout = 15

// Router returns the handler of the relay API.
func (r *Relay) Router() http.Handler {
	m := mux.NewRouter()
	m.HandleFunc("/", r.hookHandler).Methods(http.MethodPost)        // webhook intake
	m.HandleFunc("/health", r.healthHandler).Methods(http.MethodGet) // chain height
	m.HandleFunc("/hooks", r.hooksHandler).Methods(http.MethodGet)   // relayed transactions
	m.Handle("/metrics", promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	m.NotFoundHandler = http.HandlerFunc(goAway)
	m.MethodNotAllowedHandler = http.HandlerFunc(goAway)

	return m
}

// Init sets up and starts the http/https server to service the relay API. If sslPort, sslCert and sslKey are
// informed, it will start an https (TLS) server on the specified endpoint. It returns when Stop is called.
func (r *Relay) Init(endpoint, port, sslPort, sslCert, sslKey string) string {
	var err, errTLS error

	h := r.Router()
	done := make(chan struct{}, 2) //nolint:gomnd // one per server
	started := 0

	r.mu.Lock()
	// start http server
	if port != "" {
		s := server(h, endpoint+":"+port)
		r.s = s
		started++

		go func() {
			err = s.ListenAndServe()
			done <- struct{}{}
		}()

		r.log.Info().Str("addr", s.Addr).Msg("listening to API http requests")
	}
	// start https server
	if sslPort != "" && sslCert != "" && sslKey != "" {
		ss := server(h, endpoint+":"+sslPort)
		r.ss = ss
		started++

		go func() {
			errTLS = ss.ListenAndServeTLS(sslCert, sslKey)
			done <- struct{}{}
		}()

		r.log.Info().Str("addr", ss.Addr).Msg("listening to API https requests")
	}
	r.mu.Unlock()

	// wait for servers to be shutdown
	<-r.sc

	for ; started > 0; started-- {
		<-done
	}

	return fmt.Sprintf("shutdown http server: %v, https server: %v", closed(err), closed(errTLS))
}

func server(h http.Handler, addr string) *http.Server {
	return &http.Server{
		Handler:      h,
		Addr:         addr,
		WriteTimeout: timeout * time.Second,
		ReadTimeout:  timeout * time.Second,
	}
}

// closed hides the error servers return after a graceful shutdown.
func closed(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
