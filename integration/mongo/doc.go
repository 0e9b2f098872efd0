// Package mongo connects MongoDB change streams to subjects.
//
// The package wraps the official MongoDB Go driver with application-level
// retry logic tuned for managed deployments such as MongoDB Atlas, where
// cold starts and brief network interruptions are routine. On top of the
// client it provides ChangeSource, which tails a collection's change
// stream and pushes each changed document into a subject for local
// fan-out.
//
// Basic usage:
//
//	import (
//		"context"
//		"log"
//
//		"github.com/tashoecraft/rx-go/config"
//		"github.com/tashoecraft/rx-go/integration/mongo"
//	)
//
//	type Order struct {
//		ID     string  `bson:"_id"`
//		Status string  `bson:"status"`
//		Total  float64 `bson:"total"`
//	}
//
//	func main() {
//		ctx := context.Background()
//
//		var cfg mongo.Config
//		config.MustLoad(&cfg)
//
//		client, db, err := mongo.Connect(ctx, cfg)
//		if err != nil {
//			log.Fatal("Failed to connect to MongoDB:", err)
//		}
//		defer client.Disconnect(ctx)
//
//		source, err := mongo.NewChangeSource[Order](db.Collection("orders"))
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		source.Subject().SubscribeFunc(func(order Order) {
//			log.Printf("order %s is now %s", order.ID, order.Status)
//		})
//
//		if err := source.Start(ctx); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Configuration
//
// Configuration is handled through environment variables via the Config
// struct. The default values are optimized for MongoDB Atlas deployments:
//
//	MONGODB_URL                 (required)
//	MONGODB_DATABASE            (required)
//	MONGODB_CONNECT_TIMEOUT     (default: 10s)
//	MONGODB_MAX_POOL_SIZE       (default: 100)
//	MONGODB_MIN_POOL_SIZE       (default: 1)
//	MONGODB_MAX_CONN_IDLE_TIME  (default: 300s)
//	MONGODB_RETRY_WRITES        (default: true)
//	MONGODB_RETRY_READS         (default: true)
//	MONGODB_RETRY_ATTEMPTS      (default: 3)
//	MONGODB_RETRY_INTERVAL      (default: 5s)
//
// Connect verifies connectivity with a primary ping before returning, so a
// successful return means the deployment is reachable and accepting
// commands. Change streams require a replica set or sharded cluster; they
// are not available on standalone servers.
//
// # Streaming Collection Changes
//
// ChangeSource tails one collection and publishes the post-image of each
// matching event. By default it watches insert, update, and replace
// operations and requests updateLookup so that update events carry the
// full document rather than just the delta. Use WithOperations to widen
// or narrow the filter:
//
//	source, err := mongo.NewChangeSource[Order](
//		db.Collection("orders"),
//		mongo.WithLogger(log),
//		mongo.WithOperations("insert"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(source.Run(ctx))
//
// The subject returned by Subject() is an ordinary subject: compose it
// with Map or Filter, forward it into a websocket sink, or count its
// deliveries with the metrics package.
//
// # Health Checking
//
// The package provides health check functions for Kubernetes probes or
// HTTP endpoints:
//
//	check := mongo.Healthcheck(client)
//	if err := check(ctx); err != nil {
//		// mongo is unreachable
//	}
//
// ChangeSource.Healthcheck additionally verifies that the stream loop is
// running, which makes it suitable for readiness probes of streaming
// workers.
//
// # Error Handling
//
// The package defines domain-specific errors:
//
//	ErrFailedToConnectToMongo   - Returned when all retry attempts are exhausted
//	ErrHealthcheckFailed        - Returned when a health check ping fails
//	ErrFailedToOpenChangeStream - Returned when the change stream cannot be opened
//	ErrChangeStreamFailed       - Returned when an established stream dies
//
// Events whose full document cannot be decoded into T are counted in
// Stats().DecodeErrors and dropped; the stream keeps running.
package mongo
