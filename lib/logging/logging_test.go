package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, "warn", FormatAuto)
	log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Warn().Str("net", "mainnet").Msg("shown")
	assert.Equal(t, "shown", gjson.Get(buf.String(), "message").String())
	assert.Equal(t, "mainnet", gjson.Get(buf.String(), "net").String())
	assert.True(t, gjson.Get(buf.String(), "time").Exists())

	assert.Equal(t, zerolog.InfoLevel, New(&buf, "nonsense", FormatJSON).GetLevel())

	buf.Reset()
	consoleLog := New(&buf, "debug", FormatConsole)
	consoleLog.Debug().Msg("console")
	assert.False(t, gjson.Valid(buf.String()))
	assert.Contains(t, buf.String(), "console")
}
