package broadcast

import "sync"

// Subscription is a handle to a single subscriber. Events are delivered on C
// in publish order. The owner must call Unsubscribe when done; after
// Unsubscribe the channel is closed and no further events arrive.
type Subscription[T any] struct {
	bus    *Bus[T]
	ch     chan T
	closed bool
	mu     sync.Mutex
}

// C returns the receive channel for this subscription.
func (s *Subscription[T]) C() <-chan T {
	return s.ch
}

// Unsubscribe detaches the subscription from the bus and closes its channel.
// It is idempotent and safe to call from any goroutine.
func (s *Subscription[T]) Unsubscribe() {
	if s.bus != nil {
		s.bus.remove(s)
	}
	s.close()
}

func (s *Subscription[T]) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
}

// send delivers an event without blocking. Returns false when the
// subscription is closed or its buffer is full.
func (s *Subscription[T]) send(event T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- event:
		return true
	default:
		return false
	}
}
