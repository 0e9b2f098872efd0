package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	rx "github.com/tashoecraft/rx-go"
)

// ListenerStats provides a snapshot of listener activity for observability.
type ListenerStats struct {
	Received     int64
	DecodeErrors int64
	IsRunning    bool
}

// Listener turns a PostgreSQL notification channel into a subject. The
// receive loop holds one dedicated connection from the pool, decodes each
// JSON payload into T, and pushes it to the subject.
//
// Payloads that fail to decode are counted and dropped; senders that go
// through Notifier always produce decodable payloads for the matching T.
// Safe for concurrent use.
type Listener[T any] struct {
	pool    *pgxpool.Pool
	channel string
	subject *rx.Subject[T]
	logger  *slog.Logger
	timeout time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	received     atomic.Int64
	decodeErrors atomic.Int64
}

// NewListener creates a listener on the given channel. Start must be
// called before notifications flow into the subject.
func NewListener[T any](pool *pgxpool.Pool, channel string, opts ...Option) (*Listener[T], error) {
	if pool == nil {
		return nil, ErrNilPool
	}
	if !ValidChannel(channel) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChannelName, channel)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Listener[T]{
		pool:    pool,
		channel: channel,
		subject: rx.NewSubject[T](),
		logger:  o.logger,
		timeout: o.shutdownTimeout,
	}, nil
}

// Subject returns the subject carrying decoded notifications.
func (l *Listener[T]) Subject() *rx.Subject[T] {
	return l.subject
}

// Start acquires a dedicated connection, issues LISTEN, and pumps
// notifications into the subject. Blocks until the context is canceled or
// the connection fails. Returns context.Err() when the context is canceled.
// Use Stop() for graceful shutdown.
func (l *Listener[T]) Start(ctx context.Context) error {
	l.mu.Lock()
	if l.cancel != nil {
		l.mu.Unlock()
		return ErrListenerAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	done := make(chan struct{})
	l.done = done
	l.mu.Unlock()

	defer close(done)
	defer func() {
		l.mu.Lock()
		l.cancel = nil
		l.mu.Unlock()
		cancel()
	}()

	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToListen, err)
	}
	// Cancellation interrupts WaitForNotification by closing the
	// underlying connection; Release then discards it from the pool.
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToListen, err)
	}

	l.logger.InfoContext(ctx, "listener started", "channel", l.channel)

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				l.logger.InfoContext(context.Background(), "listener stopped", "channel", l.channel)
				return ctx.Err()
			}
			return fmt.Errorf("%w: %v", ErrFailedToListen, err)
		}
		l.handle(ctx, notification.Payload)
	}
}

// handle decodes one notification payload and delivers it.
func (l *Listener[T]) handle(ctx context.Context, payload string) {
	var value T
	if err := json.Unmarshal([]byte(payload), &value); err != nil {
		l.decodeErrors.Add(1)
		l.logger.WarnContext(ctx, "failed to decode notification", "channel", l.channel, "error", err)
		return
	}

	l.received.Add(1)
	l.subject.Next(value)
}

// Stop gracefully shuts down the notification loop with a timeout.
// Returns an error if the listener is not running or the timeout is exceeded.
func (l *Listener[T]) Stop() error {
	l.mu.Lock()
	if l.cancel == nil {
		l.mu.Unlock()
		return ErrListenerNotRunning
	}

	cancel := l.cancel
	done := l.done
	l.cancel = nil
	l.mu.Unlock()

	cancel()

	ctx, ctxCancel := context.WithTimeout(context.Background(), l.timeout)
	defer ctxCancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ErrShutdownTimeoutExceeded
	}
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// Returns a function that starts the notification loop, monitors context
// cancellation, and performs graceful shutdown when the context is cancelled.
func (l *Listener[T]) Run(ctx context.Context) func() error {
	return func() error {
		errCh := make(chan error, 1)
		go func() {
			errCh <- l.Start(ctx)
		}()

		select {
		case <-ctx.Done():
			_ = l.Stop()
			<-errCh
			return nil
		case err := <-errCh:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// Stats returns current listener statistics for observability and monitoring.
// This method is thread-safe and can be called at any time.
func (l *Listener[T]) Stats() ListenerStats {
	l.mu.Lock()
	isRunning := l.cancel != nil
	l.mu.Unlock()

	return ListenerStats{
		Received:     l.received.Load(),
		DecodeErrors: l.decodeErrors.Load(),
		IsRunning:    isRunning,
	}
}

// Healthcheck validates that the listener is running and the database is
// reachable. Returns nil if healthy, or an error describing the issue.
func (l *Listener[T]) Healthcheck(ctx context.Context) error {
	if !l.Stats().IsRunning {
		return ErrListenerNotRunning
	}
	if err := l.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrHealthcheckFailed, err)
	}
	return nil
}
