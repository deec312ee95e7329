package deeplink

import (
	"context"
	"log/slog"
	"sync"

	"github.com/manyalawy/ballers-app/pkg/broadcast"
	"github.com/manyalawy/ballers-app/pkg/logger"
)

// TokenExchanger is the backend client's token-extraction path. Given an
// auth-bearing URL it performs the token exchange and publishes the
// resulting session through its own session-changed event; the listener
// never parses tokens itself.
type TokenExchanger interface {
	ExchangeAuthURL(ctx context.Context, rawURL string) error
}

// Listener observes inbound application URLs from two sources - the link
// that launched the process and links received while running - and forwards
// auth-bearing ones to the token exchanger. Non-auth URLs are ignored.
//
// The running-link source is a broadcast bus the platform shell publishes
// every inbound URL to. Close releases the subscription so a torn-down
// listener can no longer fire into the session store.
type Listener struct {
	exchanger TokenExchanger
	source    *broadcast.Bus[string]
	log       *slog.Logger

	mu     sync.Mutex
	sub    *broadcast.Subscription[string]
	done   chan struct{}
	closed bool
}

// Option configures a Listener during construction.
type Option func(*Listener)

// WithLogger sets a custom logger for the listener.
func WithLogger(log *slog.Logger) Option {
	return func(l *Listener) {
		if log != nil {
			l.log = log
		}
	}
}

// New creates a listener forwarding auth-bearing URLs from source to
// exchanger.
func New(exchanger TokenExchanger, source *broadcast.Bus[string], opts ...Option) *Listener {
	l := &Listener{
		exchanger: exchanger,
		source:    source,
		log:       logger.Discard(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Start processes the launch URL, if any, then consumes running links until
// Close is called or the context is cancelled. Start is a no-op on a closed
// listener.
func (l *Listener) Start(ctx context.Context, initialURL string) {
	l.mu.Lock()
	if l.closed || l.sub != nil {
		l.mu.Unlock()
		return
	}
	l.sub = l.source.Subscribe()
	l.done = make(chan struct{})
	sub, done := l.sub, l.done
	l.mu.Unlock()

	if initialURL != "" {
		l.HandleURL(ctx, initialURL)
	}

	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case raw, ok := <-sub.C():
				if !ok {
					return
				}
				l.HandleURL(ctx, raw)
			}
		}
	}()
}

// HandleURL classifies a single URL and forwards it when auth-bearing.
// Exchange failures are logged, never surfaced: the user simply stays
// logged out until a session-changed event arrives through another path.
func (l *Listener) HandleURL(ctx context.Context, raw string) {
	if !CarriesAuthTokens(raw) {
		return
	}

	l.log.Info("deep link received with auth tokens", logger.Component("deeplink"))

	if err := l.exchanger.ExchangeAuthURL(ctx, raw); err != nil {
		l.log.Error("token exchange for deep link failed",
			logger.Error(err),
			logger.Component("deeplink"),
		)
	}
}

// Close releases the URL-source subscription and waits for the consuming
// goroutine to stop. Idempotent.
func (l *Listener) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	sub, done := l.sub, l.done
	l.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
		<-done
	}
}
