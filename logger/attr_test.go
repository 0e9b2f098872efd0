package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tashoecraft/rx-go/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("bridge", slog.String("channel", "orders"), slog.Int("n", 2))
	require.Equal(t, "bridge", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "channel", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

// ============================================================================
// Error Handling Tests
// ============================================================================

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil, nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

// ============================================================================
// Performance and Timing Tests
// ============================================================================

func TestDuration(t *testing.T) {
	t.Parallel()
	d := 5 * time.Second
	attr := logger.Duration(d)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, d, attr.Value.Duration())
}

func TestElapsed(t *testing.T) {
	t.Parallel()
	start := time.Now().Add(-500 * time.Millisecond)
	attr := logger.Elapsed(start)
	require.Equal(t, "elapsed", attr.Key)
	assert.GreaterOrEqual(t, attr.Value.Duration(), 500*time.Millisecond)
}

// ============================================================================
// Stream Identifier Tests
// ============================================================================

func TestID(t *testing.T) {
	t.Parallel()

	attr := logger.ID("envelope_id", "e-123")
	require.Equal(t, "envelope_id", attr.Key)
	assert.Equal(t, "e-123", attr.Value.Any())

	empty := logger.ID("key", nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestChannel(t *testing.T) {
	t.Parallel()
	attr := logger.Channel("orders")
	require.Equal(t, "channel", attr.Key)
	assert.Equal(t, "orders", attr.Value.String())

	empty := logger.Channel("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestOrigin(t *testing.T) {
	t.Parallel()
	attr := logger.Origin("node-1")
	require.Equal(t, "origin", attr.Key)
	assert.Equal(t, "node-1", attr.Value.String())

	empty := logger.Origin("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestCollection(t *testing.T) {
	t.Parallel()
	attr := logger.Collection("events")
	require.Equal(t, "collection", attr.Key)
	assert.Equal(t, "events", attr.Value.String())

	empty := logger.Collection("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

// ============================================================================
// Generic Metadata Tests
// ============================================================================

func TestComponent(t *testing.T) {
	t.Parallel()
	attr := logger.Component("pg_listener")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "pg_listener", attr.Value.String())
}

func TestCount(t *testing.T) {
	t.Parallel()
	attr := logger.Count("delivered", 7)
	require.Equal(t, "delivered", attr.Key)
	assert.Equal(t, int64(7), attr.Value.Int64())
}

func TestSubscribers(t *testing.T) {
	t.Parallel()
	attr := logger.Subscribers(3)
	require.Equal(t, "subscribers", attr.Key)
	assert.Equal(t, int64(3), attr.Value.Int64())
}

func TestRetryCount(t *testing.T) {
	t.Parallel()
	attr := logger.RetryCount(2)
	require.Equal(t, "retry_count", attr.Key)
	assert.Equal(t, int64(2), attr.Value.Int64())
}
