// Package selene and its sub-packages implement a client of the Helius Solana APIs and a service relaying Helius
// webhooks to a chat.
/*
selene provides you with:

1) a client library (package lib/helius) for the digital asset (DAS) queries, enhanced transactions, webhooks, domain
 names and priority fee estimates of the provider, with typed requests and responses (package lib/helius/types).

2) a relay service (package relay) that receives enhanced transaction webhooks and posts a readable message for each
 delivery to a Telegram chat, naming the accounts involved.

3) a command line tool (cmd/selene) to manage webhooks and run the relay.

Architecture

Every call to the provider goes through a request dispatcher (package lib/request) that builds JSON-RPC envelopes,
maps HTTP statuses to a typed error taxonomy and falls back to decoding an RPC error when the expected type does not
match the response body.

The relay answers the provider at once and publishes the transactions as a batch to a message broker (package lib/msg):
in process by default, or an AMQP broker so several relay instances share the work. The event loop consumes the
batches, resolves account names through a concurrent cache and the provider, and sends the message to the chat
(package lib/chat). Names and relayed transactions can be persisted (package lib/store) in MongoDB, PostgreSQL or a
local SQLite file.

A blockchain layer (package lib/block) gives read access to the cluster; the relay uses it for its health check.

The relay can also be monitored via a Prometheus API at /metrics, or on :9100 by setting the flag "-m" at startup.

Configuration

Both the tool and the relay read a JSON or TOML file given with "-c" and SELENE_ environment variables (package
lib/config). See cmd/selene/conf.toml.
*/
package selene
