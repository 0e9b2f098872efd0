package pg

import (
	"io"
	"log/slog"
	"time"
)

// DefaultShutdownTimeout is the default time Stop allows for the
// notification loop to exit.
const DefaultShutdownTimeout = 10 * time.Second

type options struct {
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// Option configures listeners and notifiers.
type Option func(*options)

// WithLogger sets a custom logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithShutdownTimeout sets the maximum time Stop waits for the
// notification loop to exit. Only listeners use it.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.shutdownTimeout = timeout
		}
	}
}

func defaultOptions() options {
	return options{
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		shutdownTimeout: DefaultShutdownTimeout,
	}
}
