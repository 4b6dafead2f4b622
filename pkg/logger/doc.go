// Package logger builds the slog loggers used across localecat.
//
// New returns a JSON logger on stdout; options change the level, the output
// and the format:
//
//	log := logger.New(logger.WithLevel(slog.LevelDebug))
//
// NewNope discards everything and is the catalog's default.
//
// NewWithSentry additionally forwards records to Sentry. Errors create Issues,
// records at or above MinLevel are stored as Sentry logs. Missing translations
// are logged at Warn by the example host, so MinLevel WARN surfaces them:
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	})
//
// An empty DSN, or a failed Sentry initialization, falls back to local logging
// only, so the same code path works in development and production.
package logger
