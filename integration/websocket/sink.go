package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	ws "github.com/gorilla/websocket"

	rx "github.com/tashoecraft/rx-go"
)

// SinkStats provides a snapshot of sink activity for observability.
type SinkStats struct {
	Sent   int64
	Closed bool
}

// Sink writes values to a WebSocket connection as JSON text messages.
// Writes are serialized internally, so a sink may be shared across
// goroutines and may share its connection with a Source reading the
// other direction.
type Sink[T any] struct {
	conn   *ws.Conn
	logger *slog.Logger

	mu     sync.Mutex
	closed bool

	sent atomic.Int64
}

// NewSink creates a sink over conn.
func NewSink[T any](conn *ws.Conn, opts ...Option) (*Sink[T], error) {
	if conn == nil {
		return nil, ErrNilConn
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Sink[T]{
		conn:   conn,
		logger: o.logger,
	}, nil
}

// Send encodes value and writes it as one text message. A context
// deadline, when present, bounds the write.
func (s *Sink[T]) Send(ctx context.Context, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToEncodeMessage, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSinkClosed
	}

	deadline := time.Time{}
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	_ = s.conn.SetWriteDeadline(deadline)

	if err := s.conn.WriteMessage(ws.TextMessage, payload); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteMessage, err)
	}

	s.sent.Add(1)
	return nil
}

// Attach subscribes src so every value it emits is written to the
// connection. The returned subscription detaches the source. Send
// failures are logged and the value is dropped from the connection.
func (s *Sink[T]) Attach(ctx context.Context, src rx.Observable[T]) rx.Subscription {
	return src.Subscribe(rx.ObserverFunc[T](func(value T) {
		if err := s.Send(ctx, value); err != nil {
			s.logger.ErrorContext(ctx, "failed to send attached value", "error", err)
		}
	}))
}

// Close performs the closing handshake and closes the connection.
// Subsequent Sends return ErrSinkClosed. Close is idempotent.
func (s *Sink[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	msg := ws.FormatCloseMessage(ws.CloseNormalClosure, "")
	_ = s.conn.WriteControl(ws.CloseMessage, msg, time.Now().Add(time.Second))
	return s.conn.Close()
}

// Stats returns current sink statistics for observability and monitoring.
func (s *Sink[T]) Stats() SinkStats {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()

	return SinkStats{
		Sent:   s.sent.Load(),
		Closed: closed,
	}
}
