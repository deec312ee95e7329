package broadcast

import (
	"log/slog"
	"sync"

	"github.com/manyalawy/ballers-app/pkg/logger"
)

// DefaultBufferSize is the per-subscriber channel buffer used by NewBus.
const DefaultBufferSize = 16

// Bus is an in-memory event bus with explicit subscription handles.
// Publishing never blocks: a subscriber that cannot keep up has events
// dropped rather than stalling the publisher. All methods are safe for
// concurrent use.
type Bus[T any] struct {
	subscribers map[*Subscription[T]]struct{}
	bufferSize  int
	log         *slog.Logger
	closed      bool
	mu          sync.RWMutex
}

// BusOption configures a Bus during construction.
type BusOption[T any] func(*Bus[T])

// WithLogger sets the logger used to report dropped events.
func WithLogger[T any](log *slog.Logger) BusOption[T] {
	return func(b *Bus[T]) {
		if log != nil {
			b.log = log
		}
	}
}

// NewBus creates an event bus whose subscribers buffer up to bufferSize
// events. A minimum buffer of 1 is enforced so sends stay non-blocking.
func NewBus[T any](bufferSize int, opts ...BusOption[T]) *Bus[T] {
	b := &Bus[T]{
		subscribers: make(map[*Subscription[T]]struct{}),
		bufferSize:  max(bufferSize, 1),
		log:         logger.Discard(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Subscribe registers a new subscriber and returns its handle. Subscribing
// to a closed bus returns an already-closed subscription.
func (b *Bus[T]) Subscribe() *Subscription[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &Subscription[T]{bus: b, ch: make(chan T, b.bufferSize)}
	if b.closed {
		sub.close()
		return sub
	}

	b.subscribers[sub] = struct{}{}
	return sub
}

// Publish delivers an event to all active subscribers in registration-set
// order. Events are enqueued atomically with respect to other Publish calls,
// so every subscriber observes the same event order.
func (b *Bus[T]) Publish(event T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for sub := range b.subscribers {
		if !sub.send(event) {
			// In-order delivery broke for this subscriber; make it visible.
			b.log.Warn("event dropped, subscriber buffer full",
				logger.Component("broadcast"),
			)
		}
	}
}

// Close shuts down the bus and closes all subscriptions. Idempotent.
func (b *Bus[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for sub := range b.subscribers {
		sub.close()
	}
	clear(b.subscribers)
}

func (b *Bus[T]) remove(sub *Subscription[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, sub)
}
