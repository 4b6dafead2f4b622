package logger

import (
	"io"
	"log/slog"
	"os"
)

type options struct {
	w     io.Writer
	level slog.Level
	text  bool
}

// Option configures a logger created by New or NewWithSentry.
type Option func(*options)

// WithLevel sets the minimum level written to the output. Defaults to slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithOutput sets the destination. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.w = w
		}
	}
}

// WithText switches the output from JSON to slog's text format.
func WithText() Option {
	return func(o *options) {
		o.text = true
	}
}

// New creates a JSON-formatted logger writing to stdout.
func New(opts ...Option) *slog.Logger {
	return slog.New(newHandler(opts...))
}

func newHandler(opts ...Option) slog.Handler {
	o := options{w: os.Stdout, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(&o)
	}

	ho := &slog.HandlerOptions{Level: o.level}
	if o.text {
		return slog.NewTextHandler(o.w, ho)
	}
	return slog.NewJSONHandler(o.w, ho)
}
