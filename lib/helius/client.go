// Package helius is a client of the Helius APIs: digital asset queries (DAS), enhanced transactions, webhooks,
// domain names and priority fee estimates. Every call goes through a request.Handler; JSON-RPC methods are sent to
// the RPC endpoint of the cluster and REST methods to its API base, both with the api key in the query string.
package helius

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tarancss/selene/lib/block"
	"github.com/tarancss/selene/lib/block/solana"
	"github.com/tarancss/selene/lib/request"
)

// Cluster selects the network a Client talks to.
type Cluster int

// Clusters.
const (
	Mainnet Cluster = iota
	Devnet
)

func (c Cluster) String() string {
	if c == Devnet {
		return "devnet"
	}

	return "mainnet"
}

// ErrUnknownCluster is returned by ParseCluster.
var ErrUnknownCluster = errors.New("unknown cluster")

// ParseCluster returns the cluster named s: "mainnet" (or "") or "devnet".
func ParseCluster(s string) (Cluster, error) {
	switch strings.ToLower(s) {
	case "", "mainnet", "mainnet-beta":
		return Mainnet, nil
	case "devnet":
		return Devnet, nil
	}

	return Mainnet, fmt.Errorf("%w: %q", ErrUnknownCluster, s)
}

// API endpoints.
const (
	APIURL    = "https://api-mainnet.helius-rpc.com/v0"
	DevAPIURL = "https://api-devnet.helius-rpc.com/v0"
	RPCURL    = "https://mainnet.helius-rpc.com/"
	DevRPCURL = "https://devnet.helius-rpc.com/"
)

// Default timeouts of the http.Client built by New.
const (
	DefaultTimeout        = 10 * time.Second
	DefaultConnectTimeout = 5 * time.Second
)

// Version is sent in the user agent. It is set at link time.
var Version = "0.1.0" //nolint:gochecknoglobals // -ldflags

// ErrNoAPIKey is returned by New when the api key is empty.
var ErrNoAPIKey = errors.New("helius api key is required")

// Client calls the Helius APIs. It is safe for concurrent use.
type Client struct {
	key     string
	cluster Cluster
	apiURL  string
	rpcURL  string
	h       *request.Handler
	log     zerolog.Logger
}

type options struct {
	cluster        Cluster
	timeout        time.Duration
	connectTimeout time.Duration
	client         *http.Client
	apiURL         string
	rpcURL         string
	log            zerolog.Logger
	verbose        bool
}

// Option configures a Client.
type Option func(*options)

// WithCluster selects mainnet or devnet endpoints.
func WithCluster(c Cluster) Option { return func(o *options) { o.cluster = c } }

// WithTimeout sets the timeout of a whole call.
func WithTimeout(d time.Duration) Option { return func(o *options) { o.timeout = d } }

// WithConnectTimeout sets the timeout to establish a connection.
func WithConnectTimeout(d time.Duration) Option { return func(o *options) { o.connectTimeout = d } }

// WithHTTPClient uses c as is. Timeouts and user agent of the client win over WithTimeout and WithConnectTimeout.
func WithHTTPClient(c *http.Client) Option { return func(o *options) { o.client = c } }

// WithAPIURL overrides the REST base of the cluster.
func WithAPIURL(u string) Option { return func(o *options) { o.apiURL = u } }

// WithRPCURL overrides the JSON-RPC endpoint of the cluster.
func WithRPCURL(u string) Option { return func(o *options) { o.rpcURL = u } }

// WithLogger logs requests to l.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.log = l } }

// WithVerbose logs request bodies.
func WithVerbose(v bool) Option { return func(o *options) { o.verbose = v } }

// New returns a Client for apiKey.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	o := options{timeout: DefaultTimeout, connectTimeout: DefaultConnectTimeout, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	if o.apiURL == "" {
		o.apiURL = APIURL
		if o.cluster == Devnet {
			o.apiURL = DevAPIURL
		}
	}

	if o.rpcURL == "" {
		o.rpcURL = RPCURL
		if o.cluster == Devnet {
			o.rpcURL = DevRPCURL
		}
	}

	rpc, err := withKey(o.rpcURL, apiKey)
	if err != nil {
		return nil, err
	}

	if _, err = withKey(o.apiURL, apiKey); err != nil {
		return nil, err
	}

	if o.client == nil {
		o.client = &http.Client{
			Timeout: o.timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				DialContext:         (&net.Dialer{Timeout: o.connectTimeout}).DialContext,
				TLSHandshakeTimeout: o.connectTimeout,
				MaxIdleConnsPerHost: 8, //nolint:gomnd
			},
		}
	}

	l := o.log.With().Str("cluster", o.cluster.String()).Logger()

	return &Client{
		key:     apiKey,
		cluster: o.cluster,
		apiURL:  strings.TrimSuffix(o.apiURL, "/"),
		rpcURL:  rpc,
		h:       request.New(o.client, "selene/"+Version, l, o.verbose),
		log:     l,
	}, nil
}

// Cluster returns the cluster of c.
func (c *Client) Cluster() Cluster {
	return c.cluster
}

// Handler returns the request handler of c, to share its http.Client with other collaborators.
func (c *Client) Handler() *request.Handler {
	return c.h
}

// Connection returns a connection to the RPC node of the cluster.
func (c *Client) Connection() block.Chain {
	return solana.Init(c.h, c.rpcURL, block.Confirmed)
}

// withKey returns rawURL with the api-key query parameter set.
func withKey(rawURL, key string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", &request.Error{Kind: request.KindURL, Err: err}
	}

	if u.Scheme == "" || u.Host == "" {
		return "", &request.Error{Kind: request.KindURL, Err: errors.New("absolute url required: " + rawURL)}
	}

	q := u.Query()
	q.Set("api-key", key)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// url returns the REST url of method, a path relative to the API base made of the given segments. Segments are
// escaped.
func (c *Client) url(segments ...string) (string, error) {
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return withKey(c.apiURL+"/"+strings.Join(segments, "/"), c.key)
}
