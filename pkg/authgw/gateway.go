package authgw

import (
	"context"
	"errors"
	"log/slog"

	"github.com/manyalawy/ballers-app/pkg/logger"
	"github.com/manyalawy/ballers-app/pkg/sanitizer"
	"github.com/manyalawy/ballers-app/pkg/session"
	"github.com/manyalawy/ballers-app/pkg/validator"
)

// Gateway issues the auth operations against the backend and publishes
// resulting sessions to the session store. It owns input validation and
// error classification; it never mutates session state on failure.
type Gateway struct {
	api      API
	sessions *session.Store
	log      *slog.Logger
}

// Option configures a Gateway during construction.
type Option func(*Gateway)

// WithLogger sets a custom logger for the gateway.
func WithLogger(log *slog.Logger) Option {
	return func(g *Gateway) {
		if log != nil {
			g.log = log
		}
	}
}

// New creates an auth gateway publishing to sessions.
func New(api API, sessions *session.Store, opts ...Option) *Gateway {
	g := &Gateway{
		api:      api,
		sessions: sessions,
		log:      logger.Discard(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// RequestCode validates the email and asks the backend to dispatch a
// one-time code to it. Returns validator.ValidationErrors for malformed
// input before any network call is made.
func (g *Gateway) RequestCode(ctx context.Context, email string) error {
	email = sanitizer.NormalizeEmail(email)
	if err := validator.Apply(
		validator.ValidEmail("email", email),
	); err != nil {
		return err
	}

	if err := g.api.SendCode(ctx, email); err != nil {
		if errors.Is(err, ErrNetwork) {
			g.log.Error("failed to send one-time code",
				logger.Error(err),
				slog.String("email", email),
				logger.Component("authgw"),
			)
		}
		return err
	}

	g.log.Info("one-time code dispatched",
		slog.String("email", email),
		logger.Component("authgw"),
	)
	return nil
}

// VerifyCode exchanges a 6-digit code for a session. On success the new
// session is published to the session store exactly once; on failure the
// session state is left untouched.
func (g *Gateway) VerifyCode(ctx context.Context, email, code string) (*session.Session, error) {
	email = sanitizer.NormalizeEmail(email)
	if err := validator.Apply(
		validator.ValidEmail("email", email),
		validator.OTPCode("code", code),
	); err != nil {
		return nil, err
	}

	sess, err := g.api.VerifyCode(ctx, email, code)
	if err != nil {
		if errors.Is(err, ErrNetwork) {
			g.log.Error("code verification failed on transport",
				logger.Error(err),
				logger.Component("authgw"),
			)
		}
		return nil, err
	}

	g.sessions.Set(ctx, sess)

	g.log.Info("signed in",
		logger.UserID(sess.User.ID.String()),
		logger.Component("authgw"),
	)
	return sess, nil
}

// SignOut invalidates the session server-side best-effort and clears the
// local session unconditionally. A failed backend call is logged, never
// surfaced: local sign-out cannot fail.
func (g *Gateway) SignOut(ctx context.Context) {
	if current := g.sessions.Current(); current != nil {
		if err := g.api.SignOut(ctx, current.AccessToken); err != nil {
			g.log.Warn("server-side sign-out failed, clearing local session anyway",
				logger.Error(err),
				logger.UserID(current.User.ID.String()),
				logger.Component("authgw"),
			)
		}
	}

	g.sessions.Clear(ctx)
}

// Refresh exchanges the current refresh token for a fresh session. An auth
// rejection means the refresh token is no longer valid, so the session is
// cleared; a network failure keeps the current session untouched.
func (g *Gateway) Refresh(ctx context.Context) error {
	current := g.sessions.Current()
	if current == nil {
		return ErrNoSession
	}

	sess, err := g.api.RefreshSession(ctx, current.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrNetwork) {
			return err
		}

		g.log.Warn("refresh token rejected, signing out",
			logger.Error(err),
			logger.UserID(current.User.ID.String()),
			logger.Component("authgw"),
		)
		g.sessions.Clear(ctx)
		return err
	}

	g.sessions.Set(ctx, sess)
	return nil
}
