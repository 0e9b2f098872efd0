package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongodb "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	rx "github.com/tashoecraft/rx-go"
)

// ChangeStats provides a snapshot of change source activity for observability.
type ChangeStats struct {
	Received     int64
	DecodeErrors int64
	IsRunning    bool
}

// changeEvent is the subset of the change stream document the source
// consumes. FullDocument carries the post-image of the changed document;
// for update events it is populated via the updateLookup option.
type changeEvent[T any] struct {
	OperationType string `bson:"operationType"`
	FullDocument  T      `bson:"fullDocument"`
}

// ChangeSource turns a MongoDB collection's change stream into a subject.
// The stream loop decodes the full document of each matching event into T
// and pushes it to the subject.
//
// Events whose full document fails to decode are counted and dropped.
// Safe for concurrent use.
type ChangeSource[T any] struct {
	coll       *mongodb.Collection
	subject    *rx.Subject[T]
	logger     *slog.Logger
	timeout    time.Duration
	operations []string

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	received     atomic.Int64
	decodeErrors atomic.Int64
}

// NewChangeSource creates a change source over the given collection.
// Start must be called before change events flow into the subject.
func NewChangeSource[T any](coll *mongodb.Collection, opts ...SourceOption) (*ChangeSource[T], error) {
	if coll == nil {
		return nil, ErrNilCollection
	}

	o := defaultSourceOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &ChangeSource[T]{
		coll:       coll,
		subject:    rx.NewSubject[T](),
		logger:     o.logger,
		timeout:    o.shutdownTimeout,
		operations: o.operations,
	}, nil
}

// Subject returns the subject carrying decoded documents.
func (s *ChangeSource[T]) Subject() *rx.Subject[T] {
	return s.subject
}

// Start opens the change stream and pumps decoded documents into the
// subject. Blocks until the context is canceled or the stream fails.
// Returns context.Err() when the context is canceled. Use Stop() for
// graceful shutdown.
func (s *ChangeSource[T]) Start(ctx context.Context) error {
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

	pipeline := mongodb.Pipeline{}
	if len(s.operations) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.D{
			{Key: "operationType", Value: bson.D{{Key: "$in", Value: s.operations}}},
		}}})
	}

	stream, err := s.coll.Watch(ctx, pipeline, options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToOpenChangeStream, err)
	}
	defer stream.Close(context.Background())

	s.logger.InfoContext(ctx, "change stream opened", "collection", s.coll.Name())

	for stream.Next(ctx) {
		s.handle(ctx, stream.Current)
	}

	if ctx.Err() != nil {
		s.logger.InfoContext(context.Background(), "change stream stopped", "collection", s.coll.Name())
		return ctx.Err()
	}
	if err := stream.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrChangeStreamFailed, err)
	}
	return nil
}

// handle decodes one change event and delivers its full document.
func (s *ChangeSource[T]) handle(ctx context.Context, raw bson.Raw) {
	var event changeEvent[T]
	if err := bson.Unmarshal(raw, &event); err != nil {
		s.decodeErrors.Add(1)
		s.logger.WarnContext(ctx, "failed to decode change event", "collection", s.coll.Name(), "error", err)
		return
	}

	s.received.Add(1)
	s.subject.Next(event.FullDocument)
}

// Stop gracefully shuts down the change stream loop with a timeout.
// Returns an error if the source is not running or the timeout is exceeded.
func (s *ChangeSource[T]) Stop() error {
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
// Returns a function that starts the change stream loop, monitors context
// cancellation, and performs graceful shutdown when the context is cancelled.
func (s *ChangeSource[T]) Run(ctx context.Context) func() error {
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

// Stats returns current change source statistics for observability and
// monitoring. This method is thread-safe and can be called at any time.
func (s *ChangeSource[T]) Stats() ChangeStats {
	s.mu.Lock()
	isRunning := s.cancel != nil
	s.mu.Unlock()

	return ChangeStats{
		Received:     s.received.Load(),
		DecodeErrors: s.decodeErrors.Load(),
		IsRunning:    isRunning,
	}
}

// Healthcheck validates that the source is running and the server is
// reachable. Returns nil if healthy, or an error describing the issue.
func (s *ChangeSource[T]) Healthcheck(ctx context.Context) error {
	if !s.Stats().IsRunning {
		return ErrSourceNotRunning
	}
	if err := s.coll.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", ErrHealthcheckFailed, err)
	}
	return nil
}
