package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("SELENE_API_KEY", "")
	t.Setenv("HELIUS_API_KEY", "")

	conf, err := ExtractConfiguration("")
	require.NoError(t, err)
	assert.Equal(t, ClusterDefault, conf.Cluster)
	assert.Equal(t, PortDefault, conf.Port)
	assert.Equal(t, MbTypeDefault, conf.MbType)
	assert.Equal(t, TimeoutDefault, conf.Timeout)
	assert.ErrorIs(t, conf.CheckClient(), ErrNoAPIKey)
}

func TestTOML(t *testing.T) {
	conf, err := ExtractConfiguration("testdata/selene.toml")
	require.NoError(t, err)
	assert.Equal(t, "toml-key", conf.APIKey)
	assert.Equal(t, "devnet", conf.Cluster)
	assert.Equal(t, int64(-1001234567890), conf.ChatID)
	assert.Equal(t, "8080", conf.Port)
	assert.Equal(t, "amqp", conf.MbType)
	assert.Equal(t, "sqlite", conf.DbType)
	assert.Equal(t, "debug", conf.LogLevel)
	// untouched default
	assert.Equal(t, TimeoutDefault, conf.Timeout)
	assert.NoError(t, conf.CheckRelay())
}

func TestJSON(t *testing.T) {
	conf, err := ExtractConfiguration("testdata/selene.json")
	require.NoError(t, err)
	assert.Equal(t, "json-key", conf.APIKey)
	assert.Equal(t, int64(42), conf.ChatID)
	assert.Equal(t, "Bearer secret", conf.WebhookAuth)
	assert.Equal(t, "3443", conf.SSLPort)
	assert.Equal(t, PortDefault, conf.Port)

	_, err = ExtractConfiguration("testdata/missing.json")
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HELIUS_API_KEY", "fallback")
	t.Setenv("SELENE_PORT", "9999")
	t.Setenv("SELENE_CHAT_ID", "7")
	t.Setenv("TELOXIDE_TOKEN", "tok")

	conf, err := ExtractConfiguration("testdata/selene.toml")
	require.NoError(t, err)
	// environment beats the file
	assert.Equal(t, "fallback", conf.APIKey)
	assert.Equal(t, "9999", conf.Port)
	assert.Equal(t, int64(7), conf.ChatID)
	assert.Equal(t, "tok", conf.BotToken)

	t.Setenv("SELENE_API_KEY", "primary")

	conf, err = ExtractConfiguration("")
	require.NoError(t, err)
	assert.Equal(t, "primary", conf.APIKey)

	t.Setenv("SELENE_CHAT_ID", "channel")

	_, err = ExtractConfiguration("")
	assert.ErrorIs(t, err, ErrBadEnvVar)
}

func TestCheckRelay(t *testing.T) {
	assert.ErrorIs(t, ServiceConfig{APIKey: "k"}.CheckRelay(), ErrNoChat)
	assert.ErrorIs(t, ServiceConfig{APIKey: "k", ChatID: 1}.CheckRelay(), ErrNoChat)
	assert.NoError(t, ServiceConfig{APIKey: "k", ChatID: 1, BotToken: "t"}.CheckRelay())
}
