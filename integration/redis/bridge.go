package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	rx "github.com/tashoecraft/rx-go"
	"github.com/tashoecraft/rx-go/logger"
)

// DefaultShutdownTimeout is the default time allowed for the receive pump
// to drain during Stop.
const DefaultShutdownTimeout = 10 * time.Second

// Envelope is the wire format carried on the Redis channel. Origin
// identifies the publishing bridge so nodes can drop their own messages
// when Redis echoes them back.
type Envelope[T any] struct {
	ID          uuid.UUID `json:"id"`
	Origin      uuid.UUID `json:"origin"`
	Data        T         `json:"data"`
	PublishedAt time.Time `json:"published_at"`
}

// BridgeStats provides a snapshot of bridge activity for observability.
type BridgeStats struct {
	Published    int64
	Received     int64
	EchoSkipped  int64
	DecodeErrors int64
	IsRunning    bool
}

type bridgeOptions struct {
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// BridgeOption configures bridge behavior.
type BridgeOption func(*bridgeOptions)

// WithLogger sets a custom logger for bridge operations.
func WithLogger(log *slog.Logger) BridgeOption {
	return func(o *bridgeOptions) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithShutdownTimeout sets the maximum time Stop waits for the receive
// pump to exit.
func WithShutdownTimeout(timeout time.Duration) BridgeOption {
	return func(o *bridgeOptions) {
		if timeout > 0 {
			o.shutdownTimeout = timeout
		}
	}
}

// Bridge connects a local subject to a Redis pub/sub channel so values
// published on one process are delivered to subscribers on every process.
//
// Publish sends to Redis first and delivers locally only on success, so
// local and remote subscribers observe the same stream. The receive pump
// drops messages that originated from this bridge; Redis delivers
// published messages to all subscribers including the publisher, and the
// local delivery already happened in Publish.
//
// Never Attach the bridge's own Subject: values arriving from the channel
// would be re-published and reflect between nodes indefinitely.
// Safe for concurrent use.
type Bridge[T any] struct {
	client  *goredis.Client
	channel string
	origin  uuid.UUID
	subject *rx.Subject[T]
	logger  *slog.Logger
	timeout time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	published    atomic.Int64
	received     atomic.Int64
	echoSkipped  atomic.Int64
	decodeErrors atomic.Int64
}

// NewBridge creates a bridge over the given channel. The returned bridge
// owns a fresh subject, exposed via Subject; Start must be called before
// remote values flow into it.
func NewBridge[T any](client *goredis.Client, channel string, opts ...BridgeOption) (*Bridge[T], error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if channel == "" {
		return nil, ErrEmptyChannel
	}

	o := bridgeOptions{
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Bridge[T]{
		client:  client,
		channel: channel,
		origin:  uuid.New(),
		subject: rx.NewSubject[T](),
		logger:  o.logger,
		timeout: o.shutdownTimeout,
	}, nil
}

// Subject returns the local subject carrying every value seen on the
// channel, whether published here or on another process.
func (b *Bridge[T]) Subject() *rx.Subject[T] {
	return b.subject
}

// Publish encodes value, publishes it on the Redis channel, and on success
// delivers it to the local subject. Local subscribers never observe a value
// that remote subscribers will not receive.
func (b *Bridge[T]) Publish(ctx context.Context, value T) error {
	env := Envelope[T]{
		ID:          uuid.New(),
		Origin:      b.origin,
		Data:        value,
		PublishedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToEncodeMessage, err)
	}

	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToPublishMessage, err)
	}

	b.published.Add(1)
	b.subject.Next(value)
	return nil
}

// Attach subscribes src to the bridge so every value it emits is published
// on the channel. The returned subscription detaches the source. Publish
// failures are logged and the value is dropped from the channel; attach
// sources whose loss tolerance matches that behavior.
func (b *Bridge[T]) Attach(ctx context.Context, src rx.Observable[T]) rx.Subscription {
	return src.Subscribe(rx.ObserverFunc[T](func(value T) {
		if err := b.Publish(ctx, value); err != nil {
			b.logger.ErrorContext(ctx, "failed to publish attached value",
				logger.Error(err), logger.Channel(b.channel))
		}
	}))
}

// Start subscribes to the Redis channel and pumps received messages into
// the local subject. Blocks until the context is canceled or the
// subscription fails. Returns context.Err() when the context is canceled.
// Use Stop() for graceful shutdown.
func (b *Bridge[T]) Start(ctx context.Context) error {
	b.mu.Lock()
	if b.cancel != nil {
		b.mu.Unlock()
		return ErrBridgeAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	done := make(chan struct{})
	b.done = done
	b.mu.Unlock()

	defer close(done)
	defer func() {
		b.mu.Lock()
		b.cancel = nil
		b.mu.Unlock()
		cancel()
	}()

	pubsub := b.client.Subscribe(ctx, b.channel)
	defer pubsub.Close()

	// Confirm the subscription before reporting the bridge as started.
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToSubscribe, err)
	}

	b.logger.InfoContext(ctx, "bridge started",
		logger.Channel(b.channel), logger.Origin(b.origin.String()))

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			b.logger.InfoContext(context.Background(), "bridge stopped", logger.Channel(b.channel))
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			b.handle(ctx, msg.Payload)
		}
	}
}

// handle decodes one raw message and delivers it unless this bridge
// published it.
func (b *Bridge[T]) handle(ctx context.Context, payload string) {
	var env Envelope[T]
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		b.decodeErrors.Add(1)
		b.logger.WarnContext(ctx, "failed to decode message",
			logger.Error(err), logger.Channel(b.channel))
		return
	}

	if env.Origin == b.origin {
		b.echoSkipped.Add(1)
		return
	}

	b.received.Add(1)
	b.subject.Next(env.Data)
}

// Stop gracefully shuts down the receive pump with a timeout.
// Returns an error if the bridge is not running or the timeout is exceeded.
func (b *Bridge[T]) Stop() error {
	b.mu.Lock()
	if b.cancel == nil {
		b.mu.Unlock()
		return ErrBridgeNotRunning
	}

	cancel := b.cancel
	done := b.done
	b.cancel = nil
	b.mu.Unlock()

	cancel()

	ctx, ctxCancel := context.WithTimeout(context.Background(), b.timeout)
	defer ctxCancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ErrShutdownTimeoutExceeded
	}
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// Returns a function that starts the receive pump, monitors context
// cancellation, and performs graceful shutdown when the context is cancelled.
func (b *Bridge[T]) Run(ctx context.Context) func() error {
	return func() error {
		errCh := make(chan error, 1)
		go func() {
			errCh <- b.Start(ctx)
		}()

		select {
		case <-ctx.Done():
			_ = b.Stop()
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

// Stats returns current bridge statistics for observability and monitoring.
// This method is thread-safe and can be called at any time.
func (b *Bridge[T]) Stats() BridgeStats {
	b.mu.Lock()
	isRunning := b.cancel != nil
	b.mu.Unlock()

	return BridgeStats{
		Published:    b.published.Load(),
		Received:     b.received.Load(),
		EchoSkipped:  b.echoSkipped.Load(),
		DecodeErrors: b.decodeErrors.Load(),
		IsRunning:    isRunning,
	}
}

// Healthcheck validates that the bridge is running and Redis is reachable.
// Returns nil if healthy, or an error describing the health issue.
func (b *Bridge[T]) Healthcheck(ctx context.Context) error {
	if !b.Stats().IsRunning {
		return ErrBridgeNotRunning
	}
	if err := b.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrHealthcheckFailed, err)
	}
	return nil
}
