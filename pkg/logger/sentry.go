package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel determines which log levels to send to Sentry (e.g., slog.LevelWarn for missing strings and errors)
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"WARN"`
}

// NewWithSentry creates a logger that sends logs to both the local output and Sentry.
// If DSN is empty, only local logging is enabled (graceful fallback for local dev).
func NewWithSentry(cfg SentryConfig, opts ...Option) *slog.Logger {
	local := newHandler(opts...)

	if cfg.DSN == "" {
		return slog.New(local)
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		// Graceful degradation: keep logging locally if Sentry init fails
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(local)
	}

	return slog.New(newMultiHandler(local, newSentryHandler(cfg.MinLevel)))
}

// newSentryHandler maps MinLevel onto Sentry levels.
// Errors always create Issues; lower levels at or above MinLevel are stored as logs.
func newSentryHandler(minLevel slog.Level) slog.Handler {
	var logLevel []slog.Level
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l >= minLevel {
			logLevel = append(logLevel, l)
		}
	}
	if len(logLevel) == 0 {
		logLevel = []slog.Level{slog.LevelError}
	}

	return sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())
}
