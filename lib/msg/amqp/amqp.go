// Package amqp implements the message broker interface for AMQP compliant brokers (ie RabbitMQ), so that several
// relay instances share the delivery of notifications.
package amqp

import (
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"

	"github.com/tarancss/selene/lib/msg"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // codec

// Exchange receives the webhook batches of every network.
const Exchange = "wh"

// Amqp implements a connection to a broker and a channel for reuse.
type Amqp struct {
	conn *amqp.Connection
	mu   sync.Mutex // guards ch
	ch   *amqp.Channel
	log  zerolog.Logger
}

var _ msg.MsgBroker = (*Amqp)(nil)

// New instantiates a new amqp broker.
func New(uri string, log zerolog.Logger) (*Amqp, error) {
	r := Amqp{log: log}

	var err error

	if r.conn, err = amqp.Dial(uri); err != nil {
		return nil, err
	}

	log.Info().Str("broker", "amqp").Msg("connected to message broker")

	return &r, nil
}

// Setup obtains an amqp channel and declares the "wh" ("webhooks") exchange the relay publishes batches to.
func (r *Amqp) Setup() error {
	// obtain a one-use channel
	channel, err := r.conn.Channel()
	if err != nil {
		return err
	}
	defer channel.Close()

	return channel.ExchangeDeclare(Exchange, amqp.ExchangeTopic, true, false, false, false, nil)
}

// Close terminates gracefully the connection to the AMQP message broker.
func (r *Amqp) Close() error {
	r.mu.Lock()
	if r.ch != nil {
		if err := r.ch.Close(); err != nil {
			r.log.Error().Err(err).Msg("closing amqp channel")
		}

		r.ch = nil
	}
	r.mu.Unlock()

	return r.conn.Close()
}

// channel returns the shared channel, opening it if not present.
func (r *Amqp) channel() (*amqp.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ch == nil {
		var err error

		if r.ch, err = r.conn.Channel(); err != nil {
			return nil, err
		}
	}

	return r.ch, nil
}

// SendBatch publishes a batch to the "wh" exchange with routing key <net>.batch.<id>.
func (r *Amqp) SendBatch(net string, b msg.Batch) error {
	doc, err := json.Marshal(b)
	if err != nil {
		return err
	}

	ch, err := r.channel()
	if err != nil {
		return err
	}

	m := amqp.Publishing{
		Headers:      amqp.Table{"x-batch-name": net + "." + b.ID},
		MessageId:    b.ID,
		Timestamp:    b.Received,
		DeliveryMode: amqp.Persistent,
		Body:         doc,
		ContentType:  "application/json",
	}

	if err = ch.Publish(Exchange, net+".batch."+b.ID, false, false, m); err != nil {
		r.log.Error().Err(err).Str("net", net).Str("batch", b.ID).Msg("sending batch to message broker")
	}

	return err
}

// GetBatches consumes batches from the "wh" exchange for net, pushing them to the returned channel. The message
// consumed is only acknowledged when mut is unlocked. Undecodable messages are rejected and reported on the error
// channel.
func (r *Amqp) GetBatches(net string, mut *sync.Mutex) (<-chan msg.Batch, <-chan error, error) {
	ch, err := r.channel()
	if err != nil {
		return nil, nil, err
	}

	queue := Exchange + net

	// only one unacknowledged batch per consumer
	if err = ch.Qos(1, 0, false); err != nil {
		return nil, nil, err
	}

	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, nil, err
	}

	if err = ch.QueueBind(queue, net+".*.*", Exchange, false, nil); err != nil {
		return nil, nil, err
	}

	msgs, err := ch.Consume(queue, "relay-"+net, false, false, false, false, nil)
	if err != nil {
		return nil, nil, err
	}

	batches := make(chan msg.Batch)
	errs := make(chan error)

	go func() {
		defer close(errs)
		defer close(batches)

		for m := range msgs {
			var b msg.Batch

			if err := json.Unmarshal(m.Body, &b); err != nil {
				_ = m.Reject(false)
				errs <- err

				continue
			}

			batches <- b
			mut.Lock() // wait for the relay to finish with the batch

			if err := m.Ack(false); err != nil {
				r.log.Error().Err(err).Str("batch", b.ID).Msg("acknowledging batch")
			}
		}
	}()

	return batches, errs, nil
}
