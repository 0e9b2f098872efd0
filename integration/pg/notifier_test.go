package pg_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rx "github.com/tashoecraft/rx-go"
	"github.com/tashoecraft/rx-go/integration/pg"
)

func TestNewNotifier_Validation(t *testing.T) {
	t.Parallel()

	_, err := pg.NewNotifier[string](nil, "orders")
	require.ErrorIs(t, err, pg.ErrNilPool)

	_, err = pg.NewNotifier[string](lazyPool(t), "no spaces allowed")
	require.ErrorIs(t, err, pg.ErrInvalidChannelName)
}

func TestNotifier_PayloadTooLarge(t *testing.T) {
	t.Parallel()

	n, err := pg.NewNotifier[string](lazyPool(t), "orders")
	require.NoError(t, err)

	// Rejected on size before any database work.
	big := strings.Repeat("x", pg.MaxPayloadSize+1)
	require.ErrorIs(t, n.Notify(context.Background(), big), pg.ErrPayloadTooLarge)
	assert.Equal(t, int64(0), n.Stats().Sent)
}

func TestNotifier_NotifyUnreachable(t *testing.T) {
	t.Parallel()

	n, err := pg.NewNotifier[string](lazyPool(t), "orders")
	require.NoError(t, err)

	require.ErrorIs(t, n.Notify(context.Background(), "hello"), pg.ErrFailedToNotify)
	assert.Equal(t, int64(0), n.Stats().Sent)
}

func TestNotifier_AttachDropsFailedValues(t *testing.T) {
	t.Parallel()

	n, err := pg.NewNotifier[string](lazyPool(t), "orders")
	require.NoError(t, err)

	src := rx.NewSubject[string]()
	sub := n.Attach(context.Background(), src)
	defer sub.Unsubscribe()

	src.Next("hello")
	assert.Equal(t, int64(0), n.Stats().Sent)
}
