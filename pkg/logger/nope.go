package logger

import "log/slog"

// NewNope creates a logger that discards all output.
// The locale catalog uses it when no logger is configured.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
