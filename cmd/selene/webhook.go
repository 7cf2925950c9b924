package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/tarancss/selene/lib/helius"
	"github.com/tarancss/selene/lib/helius/types"
)

// Errors returned by the webhook commands.
var (
	ErrNoURL       = errors.New("-url is required")
	ErrNoID        = errors.New("-id is required")
	ErrNoAddresses = errors.New("at least one address is required")
)

// webhook runs the webhook subcommands with c. New webhooks send authHeader, if any, to the relay.
func webhook(ctx context.Context, c *helius.Client, authHeader string, args []string, out, errOut io.Writer) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	fs := flag.NewFlagSet("webhook "+sub, flag.ContinueOnError)
	fs.SetOutput(errOut)

	switch sub {
	case "list":
		if err := fs.Parse(args); err != nil {
			return err
		}

		hooks, err := c.GetAllWebhooks(ctx)
		if err != nil {
			return err
		}

		return printJSON(out, hooks)
	case "create":
		url := fs.String("url", "", "url the webhook posts to")
		devnet := fs.Bool("devnet", false, "watch devnet instead of mainnet")
		transferOnly := fs.Bool("transfer-only", false, "only TRANSFER transactions")

		if err := fs.Parse(args); err != nil {
			return err
		}

		if *url == "" {
			return ErrNoURL
		}

		hook, err := c.CreateWebhook(ctx, createRequest(*url, authHeader, *devnet, *transferOnly, fs.Args()))
		if err != nil {
			return err
		}

		return printJSON(out, hook)
	case "delete":
		id := fs.String("id", "", "webhook id")

		if err := fs.Parse(args); err != nil {
			return err
		}

		if *id == "" {
			return ErrNoID
		}

		if err := c.DeleteWebhook(ctx, *id); err != nil {
			return err
		}

		fmt.Fprintln(out, "deleted", *id)

		return nil
	case "add":
		id := fs.String("id", "", "webhook id")

		if err := fs.Parse(args); err != nil {
			return err
		}

		if *id == "" {
			return ErrNoID
		}

		if fs.NArg() == 0 {
			return ErrNoAddresses
		}

		hook, err := c.AppendAddressesToWebhook(ctx, *id, fs.Args())
		if err != nil {
			return err
		}

		return printJSON(out, hook)
	}

	return fmt.Errorf("%w: webhook %s", ErrUnknownCommand, sub)
}

// createRequest builds an enhanced webhook for every transaction type, or transfers only, of addresses.
func createRequest(url, authHeader string, devnet, transferOnly bool, addresses []string) types.CreateWebhookRequest {
	d := types.WebhookData{
		WebhookURL:       url,
		TransactionTypes: types.AllTransactionTypes(),
		AccountAddresses: addresses,
		WebhookType:      types.WebhookEnhanced,
		AuthHeader:       authHeader,
		TxnStatus:        types.TxnStatusAll,
		Encoding:         types.EncodingJSONParsed,
	}

	if transferOnly {
		d.TransactionTypes = []types.TransactionType{types.TxTypeTransfer}
	}

	if devnet {
		d.WebhookType = types.WebhookEnhancedDevnet
	}

	return types.CreateWebhookRequest{WebhookData: d.WithDefaults()}
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
