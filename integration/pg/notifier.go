package pg

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/jackc/pgx/v5/pgxpool"

	rx "github.com/tashoecraft/rx-go"
)

// MaxPayloadSize is the largest payload pg_notify accepts.
const MaxPayloadSize = 8000

// NotifierStats provides a snapshot of notifier activity for observability.
type NotifierStats struct {
	Sent int64
}

// Notifier sends values on a PostgreSQL notification channel as JSON
// payloads. Pair it with a Listener of the same T on the receiving side.
// Safe for concurrent use.
type Notifier[T any] struct {
	pool    *pgxpool.Pool
	channel string
	logger  *slog.Logger

	sent atomic.Int64
}

// NewNotifier creates a notifier on the given channel.
func NewNotifier[T any](pool *pgxpool.Pool, channel string, opts ...Option) (*Notifier[T], error) {
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

	return &Notifier[T]{
		pool:    pool,
		channel: channel,
		logger:  o.logger,
	}, nil
}

// Notify encodes value and sends it on the channel. When the context
// carries a transaction stored with WithTx, the notification goes through
// it and is delivered only if the transaction commits.
func (n *Notifier[T]) Notify(ctx context.Context, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToEncodePayload, err)
	}
	if len(payload) > MaxPayloadSize {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(payload))
	}

	const q = "SELECT pg_notify($1, $2)"
	if tx, ok := TxFromContext(ctx); ok {
		if _, err := tx.Exec(ctx, q, n.channel, string(payload)); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToNotify, err)
		}
	} else {
		if _, err := n.pool.Exec(ctx, q, n.channel, string(payload)); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToNotify, err)
		}
	}

	n.sent.Add(1)
	return nil
}

// Attach subscribes src so every value it emits is sent on the channel.
// The returned subscription detaches the source. Notify failures are
// logged and the value is dropped from the channel.
func (n *Notifier[T]) Attach(ctx context.Context, src rx.Observable[T]) rx.Subscription {
	return src.Subscribe(rx.ObserverFunc[T](func(value T) {
		if err := n.Notify(ctx, value); err != nil {
			n.logger.ErrorContext(ctx, "failed to notify attached value",
				"channel", n.channel, "error", err)
		}
	}))
}

// Stats returns current notifier statistics for observability and monitoring.
func (n *Notifier[T]) Stats() NotifierStats {
	return NotifierStats{Sent: n.sent.Load()}
}
