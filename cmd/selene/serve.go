package main

import (
	"context"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/tarancss/selene/lib/chat/telegram"
	"github.com/tarancss/selene/lib/config"
	"github.com/tarancss/selene/lib/msg"
	"github.com/tarancss/selene/lib/msg/amqp"
	"github.com/tarancss/selene/lib/msg/local"
	"github.com/tarancss/selene/lib/store/db"
	"github.com/tarancss/selene/relay"
)

// MetricsAddr serves the metrics alone when -m is given.
const MetricsAddr = ":9100"

// serve runs the relay until SIGINT or SIGTERM.
func serve(conf config.ServiceConfig, log zerolog.Logger, verbose bool, args []string, errOut io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(errOut)
	port := fs.String("port", conf.Port, "port of the relay API")
	monitor := fs.Bool("m", false, "also serve metrics for Prometheus at "+MetricsAddr)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := conf.CheckRelay(); err != nil {
		return err
	}

	c, err := newClient(conf, log, verbose)
	if err != nil {
		return err
	}

	// connect to database
	dbConn, err := db.New(conf.DbType, conf.DbConn)
	if err != nil {
		return err
	}

	if dbConn != nil {
		log.Info().Str("dbtype", conf.DbType).Msg("connected to database")
	}

	// load message broker
	mb, err := newBroker(conf, log)
	if err != nil {
		_ = db.Close(dbConn)

		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// create relay service
	r, err := relay.New(relay.Options{
		Net:        c.Cluster().String(),
		AuthHeader: conf.WebhookAuth,
		Names:      c,
		Chain:      c.Connection(),
		Notifier:   telegram.New(c.Handler(), conf.BotToken, conf.ChatID),
		Broker:     mb,
		Store:      dbConn,
		Registry:   reg,
		Logger:     log,
	})
	if err != nil {
		_ = mb.Close()
		_ = db.Close(dbConn)

		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err = r.WarmCache(ctx); err != nil {
		log.Error().Err(err).Msg("could not load names from database")
	}

	// load Prometheus monitor
	if *monitor {
		go func() {
			log.Info().Str("addr", MetricsAddr).Msg("serving metrics API")

			h := http.NewServeMux()
			h.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

			s := &http.Server{Addr: MetricsAddr, Handler: h, ReadHeaderTimeout: 5 * time.Second} //nolint:gomnd // 5s
			if err := s.ListenAndServe(); err != nil {
				log.Error().Err(err).Msg("metrics server")
			}
		}()
	}

	// capture CTRL+C or docker's SIGTERM for gracious exit
	finish := make(chan struct{})

	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, os.Interrupt, syscall.SIGTERM)
		<-sigchan
		log.Info().Msg("program killed")
		// do last actions and wait for the event loop to end
		cancel()
		r.Stop()
		close(finish)
	}()

	// relay events from the broker
	if err = r.ManageEvents(ctx); err != nil {
		r.Stop()

		return err
	}

	// init API, wait for its return and log response
	log.Info().Msg(r.Init(conf.RestfulEndpoint, *port, conf.SSLPort, conf.SSLCert, conf.SSLKey))

	<-finish

	return nil
}

// newBroker returns the broker named in conf: the in-process one unless it is amqp.
func newBroker(conf config.ServiceConfig, log zerolog.Logger) (msg.MsgBroker, error) {
	var mb msg.MsgBroker

	switch conf.MbType {
	case "amqp":
		a, err := amqp.New(conf.MbConn, log)
		if err != nil {
			log.Warn().Err(err).Msg("message broker not ready, retrying in 10s")
			time.Sleep(10 * time.Second) // wait 10s for AMQP to be ready and try to reconnect

			if a, err = amqp.New(conf.MbConn, log); err != nil {
				return nil, err
			}
		}

		mb = a
	default:
		if conf.MbType != config.MbTypeDefault {
			log.Warn().Str("mbtype", conf.MbType).Msg("unknown message broker type, using local")
		}

		mb = local.New(local.DefaultSize)
	}

	if err := mb.Setup(); err != nil {
		_ = mb.Close()

		return nil, err
	}

	return mb, nil
}
