package mongo

import (
	"io"
	"log/slog"
	"time"
)

// DefaultShutdownTimeout is the default time Stop allows for the
// change stream loop to exit.
const DefaultShutdownTimeout = 10 * time.Second

type sourceOptions struct {
	logger          *slog.Logger
	shutdownTimeout time.Duration
	operations      []string
}

// SourceOption configures a ChangeSource.
type SourceOption func(*sourceOptions)

// WithLogger sets a custom logger.
func WithLogger(log *slog.Logger) SourceOption {
	return func(o *sourceOptions) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithShutdownTimeout sets the maximum time Stop waits for the
// change stream loop to exit.
func WithShutdownTimeout(timeout time.Duration) SourceOption {
	return func(o *sourceOptions) {
		if timeout > 0 {
			o.shutdownTimeout = timeout
		}
	}
}

// WithOperations narrows the change stream to the given operation types,
// for example "insert", "update", "replace", or "delete". Passing no
// operations disables server-side filtering and streams every event.
// Delete events carry no full document and decode to the zero value of T.
func WithOperations(operations ...string) SourceOption {
	return func(o *sourceOptions) {
		o.operations = operations
	}
}

func defaultSourceOptions() sourceOptions {
	return sourceOptions{
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		shutdownTimeout: DefaultShutdownTimeout,
		operations:      []string{"insert", "update", "replace"},
	}
}
