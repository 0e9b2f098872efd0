package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	ws "github.com/gorilla/websocket"

	rx "github.com/tashoecraft/rx-go"
)

// SourceStats provides a snapshot of source activity for observability.
type SourceStats struct {
	Received     int64
	DecodeErrors int64
	IsRunning    bool
}

// Source reads JSON messages from a WebSocket connection and pushes each
// decoded value into its subject. The source owns the connection's read
// side; nothing else may read from it while the source runs. A Sink of
// the same T may share the connection for writing.
// Safe for concurrent use.
type Source[T any] struct {
	conn    *ws.Conn
	subject *rx.Subject[T]
	logger  *slog.Logger
	timeout time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	received     atomic.Int64
	decodeErrors atomic.Int64
}

// NewSource creates a source over conn. Start must be called before
// messages flow into the subject.
func NewSource[T any](conn *ws.Conn, opts ...Option) (*Source[T], error) {
	if conn == nil {
		return nil, ErrNilConn
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Source[T]{
		conn:    conn,
		subject: rx.NewSubject[T](),
		logger:  o.logger,
		timeout: o.shutdownTimeout,
	}, nil
}

// Subject returns the subject carrying decoded messages.
func (s *Source[T]) Subject() *rx.Subject[T] {
	return s.subject
}

// Start pumps messages from the connection into the subject. Blocks until
// the context is canceled, the peer closes the connection, or a read
// fails. Returns nil on a clean close from the peer and context.Err()
// when the context is canceled. Use Stop() for graceful shutdown.
//
// The connection is closed when Start returns; a source is not
// restartable on the same connection.
func (s *Source[T]) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return ErrSourceAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	done := make(chan struct{})
	s.done = done
	s.mu.Unlock()

	defer close(done)
	defer func() {
		s.mu.Lock()
		s.cancel = nil
		s.mu.Unlock()
		cancel()
	}()
	defer s.conn.Close()

	// ReadMessage cannot be interrupted by a context; closing the
	// connection unblocks it.
	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case <-ctx.Done():
			_ = s.conn.Close()
		case <-watchDone:
		}
	}()

	s.logger.InfoContext(ctx, "websocket source started", "remote", s.conn.RemoteAddr().String())

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				s.logger.InfoContext(context.Background(), "websocket source stopped")
				return ctx.Err()
			}
			if ws.IsCloseError(err, ws.CloseNormalClosure, ws.CloseGoingAway) {
				s.logger.InfoContext(context.Background(), "websocket closed by peer")
				return nil
			}
			return fmt.Errorf("%w: %v", ErrFailedToReadMessage, err)
		}
		s.handle(ctx, data)
	}
}

// handle decodes one message and delivers it.
func (s *Source[T]) handle(ctx context.Context, data []byte) {
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		s.decodeErrors.Add(1)
		s.logger.WarnContext(ctx, "failed to decode message", "error", err)
		return
	}

	s.received.Add(1)
	s.subject.Next(value)
}

// Stop gracefully shuts down the read pump with a timeout.
// Returns an error if the source is not running or the timeout is exceeded.
func (s *Source[T]) Stop() error {
	s.mu.Lock()
	if s.cancel == nil {
		s.mu.Unlock()
		return ErrSourceNotRunning
	}

	cancel := s.cancel
	done := s.done
	s.cancel = nil
	s.mu.Unlock()

	cancel()

	ctx, ctxCancel := context.WithTimeout(context.Background(), s.timeout)
	defer ctxCancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ErrShutdownTimeoutExceeded
	}
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// Returns a function that starts the read pump, monitors context
// cancellation, and performs graceful shutdown when the context is cancelled.
func (s *Source[T]) Run(ctx context.Context) func() error {
	return func() error {
		errCh := make(chan error, 1)
		go func() {
			errCh <- s.Start(ctx)
		}()

		select {
		case <-ctx.Done():
			_ = s.Stop()
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

// Stats returns current source statistics for observability and monitoring.
// This method is thread-safe and can be called at any time.
func (s *Source[T]) Stats() SourceStats {
	s.mu.Lock()
	isRunning := s.cancel != nil
	s.mu.Unlock()

	return SourceStats{
		Received:     s.received.Load(),
		DecodeErrors: s.decodeErrors.Load(),
		IsRunning:    isRunning,
	}
}

// Healthcheck validates that the source is running and the peer is
// responsive to a ping. Returns nil if healthy.
func (s *Source[T]) Healthcheck(ctx context.Context) error {
	if !s.Stats().IsRunning {
		return ErrSourceNotRunning
	}

	deadline := time.Now().Add(5 * time.Second)
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if err := s.conn.WriteControl(ws.PingMessage, nil, deadline); err != nil {
		return fmt.Errorf("%w: %v", ErrHealthcheckFailed, err)
	}
	return nil
}
