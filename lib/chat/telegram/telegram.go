// Package telegram delivers chat notifications through the Telegram Bot API.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tarancss/selene/lib/chat"
	"github.com/tarancss/selene/lib/request"
)

// APIURL is the base of the Bot API.
const APIURL = "https://api.telegram.org"

// MaxMessage is the length limit of a message text.
const MaxMessage = 4096

// ErrNotOK is returned when the Bot API answers with ok=false.
var ErrNotOK = errors.New("telegram request failed")

// Telegram sends messages to one chat with a bot token.
type Telegram struct {
	h       *request.Handler
	base    string
	chatID  int64
	preview bool
}

var _ chat.Notifier = (*Telegram)(nil)

// Option configures a Telegram notifier.
type Option func(*Telegram)

// WithAPIURL overrides the Bot API base url.
func WithAPIURL(u string) Option {
	return func(t *Telegram) { t.base = strings.TrimSuffix(u, "/") }
}

// WithPreview enables link previews, which are disabled by default.
func WithPreview(p bool) Option {
	return func(t *Telegram) { t.preview = p }
}

// New returns a notifier posting to chatID as the bot identified by token.
func New(h *request.Handler, token string, chatID int64, opts ...Option) *Telegram {
	t := &Telegram{h: h, base: APIURL, chatID: chatID}
	for _, o := range opts {
		o(t)
	}

	t.base += "/bot" + token

	return t
}

type sendMessage struct {
	ChatID                int64  `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview,omitempty"`
}

type response struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
	Result      struct {
		MessageID int64 `json:"message_id"`
	} `json:"result"`
}

// Validate makes bodies with ok=false fail to decode.
func (r response) Validate() error {
	if !r.OK {
		return fmt.Errorf("%w: %s", ErrNotOK, r.Description)
	}

	return nil
}

// Notify sends text, split in several messages when longer than MaxMessage.
func (t *Telegram) Notify(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return chat.ErrEmptyMessage
	}

	for _, part := range chat.Split(text, MaxMessage) {
		if _, err := request.Post[response](ctx, t.h, t.base+"/sendMessage",
			sendMessage{ChatID: t.chatID, Text: part, DisableWebPagePreview: !t.preview}); err != nil {
			return err
		}
	}

	return nil
}
