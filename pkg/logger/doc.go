// Package logger provides a small factory around log/slog with consistent
// defaults for the ballers client core.
//
// All services in this repository accept a *slog.Logger through functional
// options and fall back to Discard() when none is supplied, so logging never
// becomes a hard dependency of business logic.
//
// Usage:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//		logger.WithService("ballers"),
//	)
//	log.Info("session restored", logger.UserID(id), logger.Component("session"))
package logger
