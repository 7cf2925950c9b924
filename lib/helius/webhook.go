package helius

import (
	"context"
	"errors"
	"fmt"

	"github.com/tarancss/selene/lib/helius/types"
	"github.com/tarancss/selene/lib/request"
)

const webhookBase = "webhooks"

// ErrTooManyAddresses is returned when a webhook would watch more than types.MaxWebhookAddresses addresses.
var ErrTooManyAddresses = errors.New("too many webhook addresses")

// GetAllWebhooks lists the webhooks of the api key.
func (c *Client) GetAllWebhooks(ctx context.Context) ([]types.Webhook, error) {
	u, err := c.url(webhookBase)
	if err != nil {
		return nil, err
	}

	return request.Get[[]types.Webhook](ctx, c.h, u)
}

// GetWebhookByID returns a webhook.
func (c *Client) GetWebhookByID(ctx context.Context, id string) (types.Webhook, error) {
	u, err := c.url(webhookBase, id)
	if err != nil {
		return types.Webhook{}, err
	}

	return request.Get[types.Webhook](ctx, c.h, u)
}

// CreateWebhook creates a webhook. Unset type, status and encoding take their defaults.
func (c *Client) CreateWebhook(ctx context.Context, r types.CreateWebhookRequest) (types.Webhook, error) {
	if err := checkAddresses(r.AccountAddresses); err != nil {
		return types.Webhook{}, err
	}

	u, err := c.url(webhookBase)
	if err != nil {
		return types.Webhook{}, err
	}

	r.WebhookData = r.WebhookData.WithDefaults()

	return request.Post[types.Webhook](ctx, c.h, u, r)
}

// CreateCollectionWebhook creates a webhook on every NFT of a collection.
func (c *Client) CreateCollectionWebhook(ctx context.Context,
	r types.CreateCollectionWebhookRequest) (types.Webhook, error) {
	u, err := c.url(webhookBase)
	if err != nil {
		return types.Webhook{}, err
	}

	r.WebhookData = r.WebhookData.WithDefaults()

	return request.Post[types.Webhook](ctx, c.h, u, r)
}

// EditWebhook replaces the data of a webhook.
func (c *Client) EditWebhook(ctx context.Context, r types.EditWebhookRequest) (types.Webhook, error) {
	if err := checkAddresses(r.Data.AccountAddresses); err != nil {
		return types.Webhook{}, err
	}

	u, err := c.url(webhookBase, r.WebhookID)
	if err != nil {
		return types.Webhook{}, err
	}

	return request.Put[types.Webhook](ctx, c.h, u, r.Data)
}

// DeleteWebhook deletes a webhook.
func (c *Client) DeleteWebhook(ctx context.Context, id string) error {
	u, err := c.url(webhookBase, id)
	if err != nil {
		return err
	}

	return request.Delete(ctx, c.h, u)
}

// AppendAddressesToWebhook adds addresses to those watched by a webhook, after the existing ones and in the given
// order. The webhook is read and written back; concurrent edits of the same webhook are not detected.
func (c *Client) AppendAddressesToWebhook(ctx context.Context, id string, addresses []string) (types.Webhook, error) {
	w, err := c.GetWebhookByID(ctx, id)
	if err != nil {
		return types.Webhook{}, err
	}

	data := w.WebhookData
	data.AccountAddresses = append(append(make([]string, 0, len(data.AccountAddresses)+len(addresses)),
		data.AccountAddresses...), addresses...)

	c.log.Debug().Str("webhook", id).Int("added", len(addresses)).Int("total", len(data.AccountAddresses)).
		Msg("appending webhook addresses")

	return c.EditWebhook(ctx, types.EditWebhookRequest{WebhookID: id, Data: data})
}

func checkAddresses(addrs []string) error {
	if len(addrs) > types.MaxWebhookAddresses {
		return fmt.Errorf("%w: %d > %d", ErrTooManyAddresses, len(addrs), types.MaxWebhookAddresses)
	}

	return nil
}
