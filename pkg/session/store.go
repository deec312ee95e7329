package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/manyalawy/ballers-app/pkg/broadcast"
	"github.com/manyalawy/ballers-app/pkg/credstore"
	"github.com/manyalawy/ballers-app/pkg/logger"
)

// DefaultStorageKey is the credential-store key the session is persisted
// under.
const DefaultStorageKey = "ballers.session"

// Change describes one session transition. Old and New are nil for the
// absent state. Loading reflects the store's loading flag after the
// transition was applied.
type Change struct {
	Old     *Session
	New     *Session
	Loading bool
}

// Store is the single authoritative holder of the current session. It merges
// session-changed events from explicit sign-in, sign-out, token refresh and
// deep-link exchange into one value, persists it best-effort through a
// credential store, and fans out changes to subscribers in apply order.
//
// Lifecycle: construct with New, call Init once at process start, Close on
// teardown. The store starts in the loading state; loading resolves to false
// exactly once, on the first event that settles the session (normally the
// initial lookup in Init).
type Store struct {
	creds      credstore.Store
	storageKey string
	log        *slog.Logger

	mu      sync.Mutex
	current *Session
	loading bool
	bus     *broadcast.Bus[Change]
}

// Option configures a Store during construction.
type Option func(*Store)

// WithLogger sets the logger used for persistence failures.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithStorageKey overrides the credential-store key.
func WithStorageKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.storageKey = key
		}
	}
}

// New creates a session store persisting through creds. A nil creds disables
// persistence; the session then lives only for the process lifetime.
func New(creds credstore.Store, opts ...Option) *Store {
	s := &Store{
		creds:      creds,
		storageKey: DefaultStorageKey,
		log:        logger.Discard(),
		loading:    true,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.bus = broadcast.NewBus(broadcast.DefaultBufferSize, broadcast.WithLogger[Change](s.log))

	return s
}

// Init performs the initial-session lookup and resolves the loading flag.
// A credential-store failure degrades to the logged-out state; it never
// fails closed into a corrupted session. Init is idempotent: repeated calls
// do not re-enter the loading state.
func (s *Store) Init(ctx context.Context) error {
	restored := s.restore(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loading {
		return nil
	}

	s.applyLocked(restored)
	return nil
}

// Current returns the current session, or nil when absent. The returned
// value must be treated as immutable.
func (s *Store) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Loading reports whether the initial-session lookup is still unresolved.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Set replaces the session wholesale and notifies subscribers. The new
// value is persisted best-effort: a storage failure is logged and the
// in-memory session stays authoritative. Persistence happens under the
// store mutex so the credential store always holds the last-applied
// session, never a value that lost the in-memory race.
func (s *Store) Set(ctx context.Context, next *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persist(ctx, next)
	s.applyLocked(next)
}

// Clear drops the session (sign-out or expiry without a valid refresh) and
// removes the persisted copy best-effort.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds != nil {
		if err := s.creds.Remove(ctx, s.storageKey); err != nil {
			s.log.Error("failed to remove persisted session",
				logger.Error(err),
				logger.Component("session"),
			)
		}
	}

	s.applyLocked(nil)
}

// Subscribe returns a subscription delivering every session change in apply
// order. The caller must release it with Unsubscribe.
func (s *Store) Subscribe() *broadcast.Subscription[Change] {
	return s.bus.Subscribe()
}

// Close releases all subscriptions. The store must not be used afterwards.
func (s *Store) Close() {
	s.bus.Close()
}

// applyLocked replaces the session and publishes the change while holding
// the store mutex, which guarantees subscribers observe transitions in
// arrival order.
func (s *Store) applyLocked(next *Session) {
	old := s.current
	s.current = next
	s.loading = false

	s.bus.Publish(Change{Old: old, New: next, Loading: s.loading})
}

// restore loads the persisted session. Every failure path returns nil:
// a broken credential store means logged out, not a broken session.
func (s *Store) restore(ctx context.Context) *Session {
	if s.creds == nil {
		return nil
	}

	raw, err := s.creds.Get(ctx, s.storageKey)
	if err != nil {
		if !errors.Is(err, credstore.ErrNotFound) {
			s.log.Warn("failed to read persisted session, treating as logged out",
				logger.Error(err),
				logger.Component("session"),
			)
		}
		return nil
	}

	var restored Session
	if err := json.Unmarshal([]byte(raw), &restored); err != nil {
		s.log.Warn("persisted session is malformed, treating as logged out",
			logger.Error(err),
			logger.Component("session"),
		)
		return nil
	}

	return &restored
}

func (s *Store) persist(ctx context.Context, next *Session) {
	if s.creds == nil || next == nil {
		return
	}

	raw, err := json.Marshal(next)
	if err != nil {
		s.log.Error("failed to encode session for persistence",
			logger.Error(err),
			logger.Component("session"),
		)
		return
	}

	if err := s.creds.Set(ctx, s.storageKey, string(raw)); err != nil {
		s.log.Error("failed to persist session, valid for this process only",
			logger.Error(err),
			logger.UserID(next.User.ID.String()),
			logger.Component("session"),
		)
	}
}
