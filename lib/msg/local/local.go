// Package local implements an in-process message broker. Batches are lost when the process ends.
package local

import (
	"sync"

	"github.com/tarancss/selene/lib/msg"
)

// DefaultSize is the number of batches queued per network before SendBatch fails.
const DefaultSize = 1024

// Local queues batches in buffered channels, one per network.
type Local struct {
	mu     sync.Mutex
	size   int
	queues map[string]chan msg.Batch
	done   chan struct{}
	closed bool
}

var _ msg.MsgBroker = (*Local)(nil)

// New returns a broker queueing up to size batches per network.
func New(size int) *Local {
	if size <= 0 {
		size = DefaultSize
	}

	return &Local{size: size, queues: make(map[string]chan msg.Batch), done: make(chan struct{})}
}

// Setup does nothing, queues are created on first use.
func (l *Local) Setup() error {
	return nil
}

// Close stops every consumer. Queued batches are dropped.
func (l *Local) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.closed {
		l.closed = true
		close(l.done)
	}

	return nil
}

func (l *Local) queue(net string) (chan msg.Batch, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, msg.ErrClosed
	}

	q, ok := l.queues[net]
	if !ok {
		q = make(chan msg.Batch, l.size)
		l.queues[net] = q
	}

	return q, nil
}

// SendBatch queues b without blocking.
func (l *Local) SendBatch(net string, b msg.Batch) error {
	q, err := l.queue(net)
	if err != nil {
		return err
	}

	select {
	case q <- b:
		return nil
	case <-l.done:
		return msg.ErrClosed
	default:
		return msg.ErrQueueFull
	}
}

// GetBatches pushes the batches of net to the returned channel, one at a time, waiting for mut to be unlocked
// before the next. The channels are closed when the broker is.
func (l *Local) GetBatches(net string, mut *sync.Mutex) (<-chan msg.Batch, <-chan error, error) {
	q, err := l.queue(net)
	if err != nil {
		return nil, nil, err
	}

	batches := make(chan msg.Batch)
	errs := make(chan error)

	go func() {
		defer close(errs)
		defer close(batches)

		for {
			select {
			case b := <-q:
				select {
				case batches <- b:
				case <-l.done:
					return
				}

				mut.Lock() // wait for the consumer to finish with the batch
			case <-l.done:
				return
			}
		}
	}()

	return batches, errs, nil
}
