// Package chat defines the interface of the chat services notifications are delivered to.
package chat

import (
	"context"
	"errors"
	"strings"
)

// ErrEmptyMessage is returned when there is nothing to send.
var ErrEmptyMessage = errors.New("empty message")

// Notifier sends text messages to a chat.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Split cuts text into parts of at most limit bytes, at line boundaries when possible. Lines longer than limit are cut
// at rune boundaries. Trailing newlines are trimmed and blank parts dropped.
func Split(text string, limit int) []string {
	if len(text) <= limit || limit <= 0 {
		return []string{text}
	}

	var (
		parts []string
		b     strings.Builder
	)

	flush := func() {
		if b.Len() > 0 {
			parts = append(parts, b.String())
			b.Reset()
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		if b.Len()+len(line) > limit {
			flush()
		}

		for len(line) > limit {
			cut := limit
			for cut > 0 && !utf8Start(line[cut]) {
				cut--
			}

			if cut == 0 {
				cut = limit
			}

			parts = append(parts, line[:cut])
			line = line[cut:]
		}

		b.WriteString(line)
	}

	flush()

	out := parts[:0]

	for _, p := range parts {
		if p = strings.TrimRight(p, "\n"); p != "" {
			out = append(out, p)
		}
	}

	return out
}

func utf8Start(b byte) bool {
	return b&0xC0 != 0x80
}
