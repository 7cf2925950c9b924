package relay

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "selene"

type metrics struct {
	hooks  prometheus.Counter // hook requests accepted
	txs    prometheus.Counter // transactions relayed to the chat
	sent   prometheus.Counter
	failed prometheus.Counter
	hits   prometheus.Counter // name cache
	misses prometheus.Counter
}

func counter(name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Subsystem: "relay", Name: name, Help: help})
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		hooks:  counter("hooks_received_total", "Webhook requests accepted."),
		txs:    counter("transactions_relayed_total", "Transactions sent to the chat."),
		sent:   counter("notifications_sent_total", "Chat messages sent."),
		failed: counter("notifications_failed_total", "Chat messages that could not be sent."),
		hits:   counter("name_cache_hits_total", "Account names found in the cache."),
		misses: counter("name_cache_misses_total", "Account names looked up at the provider."),
	}

	for _, c := range []prometheus.Collector{m.hooks, m.txs, m.sent, m.failed, m.hits, m.misses} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}
