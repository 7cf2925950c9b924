// Package main: selene, a client of the Helius webhook API and a relay of enhanced transaction webhooks to a
// Telegram chat.
//
//	selene [-c config] [-v] version
//	selene [-c config] [-v] webhook|w [list | create -url U [-devnet] [-transfer-only] addr... | delete -id ID |
//	       add -id ID addr...]
//	selene [-c config] [-v] serve|s [-port P] [-m]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"github.com/tarancss/selene/lib/config"
	"github.com/tarancss/selene/lib/helius"
	"github.com/tarancss/selene/lib/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // codec

// Errors returned.
var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
)

const usage = `usage: selene [-c config] [-v] <command>

commands:
  version                     print the version
  webhook, w [list]           list webhooks
  webhook create -url U [-devnet] [-transfer-only] addr...
  webhook delete -id ID
  webhook add -id ID addr...  append addresses to a webhook
  serve, s [-port P] [-m]     run the relay

flags:
`

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}

		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	// get command line flags
	fs := flag.NewFlagSet("selene", flag.ContinueOnError)
	fs.SetOutput(errOut)
	confPath := fs.String("c", "", "configuration file, JSON or TOML")
	verbose := fs.Bool("v", false, "log provider requests and responses")
	fs.Usage = func() {
		fmt.Fprint(errOut, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()

		return ErrNoCommand
	}

	// extract configuration
	conf, err := config.ExtractConfiguration(*confPath)
	if err != nil {
		return err
	}

	if *verbose {
		conf.LogLevel = zerolog.LevelDebugValue
	}

	log := logging.New(errOut, conf.LogLevel, conf.LogFormat)

	cmd, rest := fs.Arg(0), fs.Args()[1:]

	switch cmd {
	case "version":
		fmt.Fprintln(out, version())

		return nil
	case "webhook", "w":
		c, err := newClient(conf, log, *verbose)
		if err != nil {
			return err
		}

		return webhook(ctx, c, conf.WebhookAuth, rest, out, errOut)
	case "serve", "s":
		return serve(conf, log, *verbose, rest, errOut)
	}

	fs.Usage()

	return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
}

// version returns the release and, when built from a repository, the commit.
func version() string {
	v := "selene " + helius.Version

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}

	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return v + " (" + s.Value + ")"
		}
	}

	return v
}

func newClient(conf config.ServiceConfig, log zerolog.Logger, verbose bool) (*helius.Client, error) {
	if err := conf.CheckClient(); err != nil {
		return nil, err
	}

	cluster, err := helius.ParseCluster(conf.Cluster)
	if err != nil {
		return nil, err
	}

	return helius.New(conf.APIKey,
		helius.WithCluster(cluster),
		helius.WithTimeout(time.Duration(conf.Timeout)*time.Second),
		helius.WithLogger(log),
		helius.WithVerbose(verbose),
	)
}
