package mongo

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongodb "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type orderDoc struct {
	SKU string `bson:"sku"`
	Qty int    `bson:"qty"`
}

// testCollection returns a collection handle on a server that does not
// exist. Operations that need the server fail after a short selection
// timeout; decoding paths never touch it.
func testCollection(t *testing.T) *mongodb.Collection {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	opts := options.Client().
		ApplyURI(fmt.Sprintf("mongodb://127.0.0.1:%d", port)).
		SetServerSelectionTimeout(200 * time.Millisecond)
	client, err := mongodb.Connect(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return client.Database("app").Collection("orders")
}

func TestNewChangeSource_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewChangeSource[orderDoc](nil)
	require.ErrorIs(t, err, ErrNilCollection)
}

func TestNewChangeSource_Defaults(t *testing.T) {
	t.Parallel()

	source, err := NewChangeSource[orderDoc](testCollection(t))
	require.NoError(t, err)

	assert.NotNil(t, source.Subject())
	assert.Equal(t, []string{"insert", "update", "replace"}, source.operations)
	assert.Equal(t, DefaultShutdownTimeout, source.timeout)
}

func TestWithOperations_Override(t *testing.T) {
	t.Parallel()

	source, err := NewChangeSource[orderDoc](testCollection(t), WithOperations("delete"))
	require.NoError(t, err)
	assert.Equal(t, []string{"delete"}, source.operations)

	unfiltered, err := NewChangeSource[orderDoc](testCollection(t), WithOperations())
	require.NoError(t, err)
	assert.Empty(t, unfiltered.operations)
}

func TestChangeSource_HandleDeliversFullDocument(t *testing.T) {
	t.Parallel()

	source, err := NewChangeSource[orderDoc](testCollection(t), WithLogger(slogt.New(t)))
	require.NoError(t, err)

	var got []orderDoc
	source.Subject().SubscribeFunc(func(doc orderDoc) {
		got = append(got, doc)
	})

	raw, err := bson.Marshal(bson.M{
		"operationType": "insert",
		"fullDocument":  bson.M{"sku": "A-1", "qty": 3},
	})
	require.NoError(t, err)

	source.handle(context.Background(), raw)

	require.Equal(t, []orderDoc{{SKU: "A-1", Qty: 3}}, got)
	stats := source.Stats()
	assert.Equal(t, int64(1), stats.Received)
	assert.Equal(t, int64(0), stats.DecodeErrors)
}

func TestChangeSource_HandleCountsDecodeErrors(t *testing.T) {
	t.Parallel()

	source, err := NewChangeSource[orderDoc](testCollection(t), WithLogger(slogt.New(t)))
	require.NoError(t, err)

	var got []orderDoc
	source.Subject().SubscribeFunc(func(doc orderDoc) {
		got = append(got, doc)
	})

	raw, err := bson.Marshal(bson.M{
		"operationType": "insert",
		"fullDocument":  "not-a-document",
	})
	require.NoError(t, err)

	source.handle(context.Background(), raw)

	assert.Empty(t, got)
	stats := source.Stats()
	assert.Equal(t, int64(0), stats.Received)
	assert.Equal(t, int64(1), stats.DecodeErrors)
}

func TestChangeSource_StartUnreachable(t *testing.T) {
	t.Parallel()

	source, err := NewChangeSource[orderDoc](testCollection(t))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = source.Start(ctx)
	require.ErrorIs(t, err, ErrFailedToOpenChangeStream)
	assert.False(t, source.Stats().IsRunning)
}

func TestChangeSource_LifecycleMisuse(t *testing.T) {
	t.Parallel()

	source, err := NewChangeSource[orderDoc](testCollection(t))
	require.NoError(t, err)

	require.ErrorIs(t, source.Stop(), ErrSourceNotRunning)
	require.ErrorIs(t, source.Healthcheck(context.Background()), ErrSourceNotRunning)
}
