// Package redis provides Redis client initialization with health checking,
// and a pub/sub bridge that extends a local subject across processes.
//
// The package wraps the go-redis client with connection validation, retry
// logic, and configuration suited for reliable Redis connectivity. It
// supports both redis:// and rediss:// (TLS) URL schemes and verifies
// connectivity with a ping before returning the client.
//
// # Configuration
//
// All configuration is handled through the Config struct with environment
// variable mapping:
//
//	type Config struct {
//		ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
//		RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//	}
//
// Connection establishment uses exponential backoff and respects context
// cancellation, aborting early if the deadline is exceeded mid-retry.
//
// # Bridging Subjects Across Processes
//
// Bridge publishes values from a local subject onto a Redis channel and
// pumps values received on that channel into a local subject, so every
// process subscribed to the channel observes the same stream:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	bridge, err := redis.NewBridge[Order](client, "orders")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Receive: subscribe to the bridge's subject like any other.
//	bridge.Subject().SubscribeFunc(func(o Order) {
//		fmt.Println("order from any node:", o.ID)
//	})
//
//	// Send: publish explicitly, or attach an existing stream.
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(bridge.Run(ctx))
//	_ = bridge.Publish(ctx, Order{ID: "ord_123"})
//
// Publish sends to Redis before delivering locally, so a value local
// subscribers saw is always on the wire for remote ones. Each bridge tags
// outgoing envelopes with a random origin ID and drops its own messages
// when Redis echoes them back; without that, every publish would be
// delivered twice on the publishing node.
//
// Attach forwards an existing observable into the channel. Never attach
// the bridge's own Subject: remote values would be re-published and
// reflect between nodes indefinitely.
//
// # Health Checking
//
// Healthcheck returns a probe function suitable for readiness endpoints:
//
//	check := redis.Healthcheck(client)
//	if err := check(ctx); err != nil {
//		// Redis unreachable
//	}
//
// Bridge.Healthcheck additionally verifies the receive pump is running.
//
// # Error Handling
//
// The package defines domain-specific errors that can be checked using
// errors.Is():
//
//   - ErrEmptyConnectionURL: no connection URL was provided
//   - ErrFailedToParseRedisConnString: the connection URL is malformed
//   - ErrRedisNotReady: Redis did not become ready within the timeout
//   - ErrHealthcheckFailed: a health check ping failed
//   - ErrFailedToPublishMessage: a publish did not reach Redis
//   - ErrBridgeAlreadyRunning, ErrBridgeNotRunning: lifecycle misuse
//
// These errors wrap the underlying go-redis errors while providing stable
// types for application-level handling.
package redis
