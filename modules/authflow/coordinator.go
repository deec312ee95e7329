package authflow

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/manyalawy/ballers-app/pkg/authgw"
	"github.com/manyalawy/ballers-app/pkg/deeplink"
	"github.com/manyalawy/ballers-app/pkg/logger"
	"github.com/manyalawy/ballers-app/pkg/onboarding"
	"github.com/manyalawy/ballers-app/pkg/routeguard"
	"github.com/manyalawy/ballers-app/pkg/session"
)

// Navigator is the navigation system boundary: it replaces the current
// location with the root of a screen group. Implementations must be safe to
// call from multiple goroutines.
type Navigator interface {
	Replace(group routeguard.ScreenGroup)
}

// Coordinator wires the session store, auth gateway, deep-link listener,
// onboarding checker and route guard into one unit with an explicit
// Init/Close lifecycle. It owns the reactions: every session change updates
// the onboarding tracker, kicks off a completion check for a new user, and
// re-runs the route guard; every resolved check re-runs the guard again.
type Coordinator struct {
	cfg      Config
	sessions *session.Store
	gateway  *authgw.Gateway
	listener *deeplink.Listener
	checker  *onboarding.Checker
	tracker  *onboarding.Tracker
	guard    *routeguard.Guard
	nav      Navigator
	log      *slog.Logger

	mu       sync.Mutex
	location routeguard.ScreenGroup
	started  bool
	closed   bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option configures a Coordinator during construction.
type Option func(*Coordinator)

// WithLogger sets a custom logger for the coordinator.
func WithLogger(log *slog.Logger) Option {
	return func(c *Coordinator) {
		if log != nil {
			c.log = log
		}
	}
}

// WithDeepLinkListener attaches a deep-link listener started and stopped
// with the coordinator. Optional: a coordinator without one simply never
// receives link-delivered sessions.
func WithDeepLinkListener(l *deeplink.Listener) Option {
	return func(c *Coordinator) {
		c.listener = l
	}
}

// New assembles a coordinator from its collaborators. The session store,
// gateway, checker and navigator are required; everything is injected so
// tests can substitute any boundary.
func New(
	cfg Config,
	sessions *session.Store,
	gateway *authgw.Gateway,
	checker *onboarding.Checker,
	nav Navigator,
	opts ...Option,
) *Coordinator {
	c := &Coordinator{
		cfg:      cfg,
		sessions: sessions,
		gateway:  gateway,
		checker:  checker,
		tracker:  onboarding.NewTracker(),
		guard:    routeguard.NewGuard(),
		nav:      nav,
		log:      logger.Discard(),
		location: routeguard.GroupMain,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Gateway exposes the auth gateway for the sign-in screens.
func (c *Coordinator) Gateway() *authgw.Gateway {
	return c.gateway
}

// Status returns the current onboarding status.
func (c *Coordinator) Status() onboarding.Status {
	return c.tracker.Status()
}

// Init restores the persisted session, starts the deep-link listener and the
// session-change reaction loop, and runs the first guard evaluation. Calling
// Init twice is a no-op.
func (c *Coordinator) Init(ctx context.Context, initialURL string) error {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	c.mu.Lock()
	if c.started || c.closed {
		c.mu.Unlock()
		cancel()
		return nil
	}
	c.started = true
	c.cancel = cancel
	c.mu.Unlock()

	// Subscribe before Init so the restore transition is observed too.
	sub := c.sessions.Subscribe()
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for ch := range sub.C() {
			c.onSessionChange(runCtx, ch)
		}
	}()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer sub.Unsubscribe()
		<-runCtx.Done()
	}()

	if c.listener != nil {
		c.listener.Start(runCtx, initialURL)
	}

	if err := c.sessions.Init(runCtx); err != nil {
		return err
	}

	if c.cfg.RefreshInterval > 0 {
		c.wg.Add(1)
		go c.refreshLoop(runCtx)
	}

	return nil
}

// Close tears the coordinator down: the deep-link listener, the session
// subscription and the refresh loop all stop, and in-flight check results
// are discarded. Idempotent.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	started := c.started
	c.mu.Unlock()

	if !started {
		return
	}

	if c.listener != nil {
		c.listener.Close()
	}
	c.cancel()
	c.tracker.ClearUser()
	c.wg.Wait()
}

// SetLocation records where the navigation system currently is and re-runs
// the guard. The shell calls this on every route change, including the ones
// the guard itself requested.
func (c *Coordinator) SetLocation(group routeguard.ScreenGroup) {
	c.mu.Lock()
	c.location = group
	c.mu.Unlock()

	c.evaluate()
}

// RefreshOnboarding re-runs the completion check for the current user, e.g.
// right after the onboarding screen submits. No-op when signed out.
func (c *Coordinator) RefreshOnboarding(ctx context.Context) {
	userID, gen, ok := c.tracker.Current()
	if !ok {
		return
	}

	status := c.checker.Check(ctx, userID)
	if c.tracker.Resolve(gen, status) {
		c.evaluate()
	}
}

// onSessionChange drives the tracker from a session transition and kicks off
// a background completion check for a newly current user. The check result
// is applied only if its generation is still current when it lands.
func (c *Coordinator) onSessionChange(ctx context.Context, ch session.Change) {
	if ch.New == nil {
		c.tracker.ClearUser()
		c.evaluate()
		return
	}

	gen := c.tracker.SetUser(ch.New.User.ID)
	c.evaluate()

	if c.tracker.Status() != onboarding.StatusUnknown {
		return
	}

	userID := ch.New.User.ID
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		status := c.checker.Check(ctx, userID)
		if c.tracker.Resolve(gen, status) {
			c.evaluate()
		} else {
			c.log.Debug("discarded stale onboarding check",
				logger.UserID(userID.String()),
				logger.Component("authflow"),
			)
		}
	}()
}

// evaluate runs the route guard over the current tuple and emits at most one
// navigation.
func (c *Coordinator) evaluate() {
	c.mu.Lock()
	location := c.location
	c.mu.Unlock()

	in := routeguard.Input{
		Loading:       c.sessions.Loading(),
		Authenticated: c.sessions.Current() != nil,
		Status:        c.tracker.Status(),
		Location:      location,
	}

	switch c.guard.Evaluate(in) {
	case routeguard.ActionRedirectAuth:
		c.nav.Replace(routeguard.GroupAuth)
	case routeguard.ActionRedirectOnboarding:
		c.nav.Replace(routeguard.GroupOnboarding)
	case routeguard.ActionRedirectMain:
		c.nav.Replace(routeguard.GroupMain)
	}
}

// refreshLoop renews the session in the background shortly before it
// expires. A transport failure leaves the session alone and retries on the
// next tick; an auth rejection clears it through the gateway.
func (c *Coordinator) refreshLoop(ctx context.Context) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current := c.sessions.Current()
			if current == nil || !current.ExpiresWithin(c.cfg.RefreshLead) {
				continue
			}

			if err := c.gateway.Refresh(ctx); err != nil {
				c.log.Warn("background session refresh failed",
					logger.Error(err),
					logger.Component("authflow"),
				)
			}
		}
	}
}
