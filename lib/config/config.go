// Package config reads the relay and CLI configuration from a JSON or TOML file and OS ENV variables.
// The default configuration can be overridden first by:
//
// - a valid config file: TOML when its name ends in .toml, JSON otherwise (see cmd/selene/conf.toml for a sample)
// and then by
//
// - OS ENV variables prefixed with SELENE_ (ie. SELENE_API_KEY, SELENE_CHAT_ID, SELENE_MBTYPE, ...). The API key and
// the bot token may also come from HELIUS_API_KEY and TELOXIDE_TOKEN when their SELENE_ variables are unset.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // codec

// Default configuration values.
const (
	ClusterDefault = "mainnet"
	PortDefault    = "3030"
	MbTypeDefault  = "local"
	LogLevelDef    = "info"
	TimeoutDefault = 10
)

// Errors returned.
var (
	ErrNoAPIKey  = errors.New("no provider API key configured")
	ErrNoChat    = errors.New("no chat id or bot token configured")
	ErrBadEnvVar = errors.New("invalid value in environment variable")
)

// ServiceConfig contains the fields for the selene CLI and relay: provider key and cluster, chat destination, API
// endpoint, ports, SSL cert and key, message broker type and url, database type and url and logging.
type ServiceConfig struct {
	APIKey          string `json:"apikey" toml:"apikey"`
	Cluster         string `json:"cluster" toml:"cluster"`
	Timeout         int    `json:"timeout" toml:"timeout"` // seconds
	ChatID          int64  `json:"chatid" toml:"chatid"`
	BotToken        string `json:"bottoken" toml:"bottoken"`
	WebhookAuth     string `json:"webhookauth" toml:"webhookauth"`
	RestfulEndpoint string `json:"endpoint" toml:"endpoint"`
	Port            string `json:"port" toml:"port"`
	SSLPort         string `json:"sslport" toml:"sslport"`
	SSLCert         string `json:"sslcert" toml:"sslcert"`
	SSLKey          string `json:"sslkey" toml:"sslkey"`
	MbType          string `json:"mbtype" toml:"mbtype"`
	MbConn          string `json:"mbconn" toml:"mbconn"`
	DbType          string `json:"dbtype" toml:"dbtype"`
	DbConn          string `json:"dbconn" toml:"dbconn"`
	LogLevel        string `json:"loglevel" toml:"loglevel"`
	LogFormat       string `json:"logformat" toml:"logformat"`
}

// ExtractConfiguration reads from the given filename, if any, and the environment and returns the ServiceConfig or
// an error otherwise.
func ExtractConfiguration(filename string) (ServiceConfig, error) {
	conf := ServiceConfig{
		Cluster:  ClusterDefault,
		Timeout:  TimeoutDefault,
		Port:     PortDefault,
		MbType:   MbTypeDefault,
		LogLevel: LogLevelDef,
	}
	// read from config file first
	if filename != "" {
		if err := readFile(filename, &conf); err != nil {
			return conf, err
		}
	}
	// then override config values with OS ENV variables
	strs := []struct {
		env string
		dst *string
	}{
		{"SELENE_API_KEY", &conf.APIKey},
		{"SELENE_CLUSTER", &conf.Cluster},
		{"SELENE_BOT_TOKEN", &conf.BotToken},
		{"SELENE_WEBHOOK_AUTH", &conf.WebhookAuth},
		{"SELENE_ENDPOINT", &conf.RestfulEndpoint},
		{"SELENE_PORT", &conf.Port},
		{"SELENE_SSLPORT", &conf.SSLPort},
		{"SELENE_SSLCERT", &conf.SSLCert},
		{"SELENE_SSLKEY", &conf.SSLKey},
		{"SELENE_MBTYPE", &conf.MbType},
		{"SELENE_MBCONN", &conf.MbConn},
		{"SELENE_DBTYPE", &conf.DbType},
		{"SELENE_DBCONN", &conf.DbConn},
		{"SELENE_LOG_LEVEL", &conf.LogLevel},
		{"SELENE_LOG_FORMAT", &conf.LogFormat},
	}

	for _, s := range strs {
		if tmp := os.Getenv(s.env); tmp != "" {
			*s.dst = tmp
		}
	}

	if tmp := os.Getenv("HELIUS_API_KEY"); tmp != "" && os.Getenv("SELENE_API_KEY") == "" {
		conf.APIKey = tmp
	}

	if tmp := os.Getenv("TELOXIDE_TOKEN"); tmp != "" && os.Getenv("SELENE_BOT_TOKEN") == "" {
		conf.BotToken = tmp
	}

	if tmp := os.Getenv("SELENE_CHAT_ID"); tmp != "" {
		id, err := strconv.ParseInt(tmp, 10, 64)
		if err != nil {
			return conf, fmt.Errorf("%w SELENE_CHAT_ID: %s", ErrBadEnvVar, err.Error())
		}

		conf.ChatID = id
	}

	if tmp := os.Getenv("SELENE_TIMEOUT"); tmp != "" {
		secs, err := strconv.Atoi(tmp)
		if err != nil || secs <= 0 {
			return conf, fmt.Errorf("%w SELENE_TIMEOUT: %q", ErrBadEnvVar, tmp)
		}

		conf.Timeout = secs
	}

	return conf, nil
}

func readFile(filename string, conf *ServiceConfig) error {
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		if _, err := toml.DecodeFile(filename, conf); err != nil {
			return fmt.Errorf("error reading config file %s: %w", filename, err)
		}

		return nil
	}

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("configuration file not found: %w", err)
	}
	defer file.Close()

	if err = json.NewDecoder(file).Decode(conf); err != nil {
		return fmt.Errorf("error reading config file %s: %w", filename, err)
	}

	return nil
}

// CheckClient returns an error when the provider cannot be called.
func (c ServiceConfig) CheckClient() error {
	if c.APIKey == "" {
		return ErrNoAPIKey
	}

	return nil
}

// CheckRelay returns an error when the relay cannot run.
func (c ServiceConfig) CheckRelay() error {
	if err := c.CheckClient(); err != nil {
		return err
	}

	if c.ChatID == 0 || c.BotToken == "" {
		return ErrNoChat
	}

	return nil
}
