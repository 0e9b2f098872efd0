// Package pg provides PostgreSQL connection management with health
// checking, and LISTEN/NOTIFY plumbing that turns notification channels
// into subjects.
//
// The package wraps the pgx driver with application-level retry logic and
// connection pool tuning, and pairs a generic Listener and Notifier so
// JSON values flow between processes through PostgreSQL notification
// channels.
//
// # Configuration
//
// All configuration is handled through the Config struct with environment
// variable mapping:
//
//	type Config struct {
//		ConnectionString  string        `env:"PG_CONN_URL,required"`
//		MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
//		MaxIdleConns      int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
//		HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
//		MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
//		MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`
//		RetryAttempts     int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval     time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`
//	}
//
// # Streaming Notifications
//
// A Listener holds one dedicated connection on LISTEN and pushes decoded
// payloads into its subject; a Notifier on another process (or the same
// one) sends them:
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	listener, err := pg.NewListener[Order](pool, "orders")
//	if err != nil {
//		log.Fatal(err)
//	}
//	listener.Subject().SubscribeFunc(func(o Order) {
//		fmt.Println("order:", o.ID)
//	})
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(listener.Run(ctx))
//
//	notifier, err := pg.NewNotifier[Order](pool, "orders")
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = notifier.Notify(ctx, Order{ID: "ord_123"})
//
// Unlike the Redis bridge, a notifier does not deliver locally: values
// reach local subscribers through the listener like everywhere else, after
// the round trip through PostgreSQL. Payloads are limited to 8000 bytes
// by pg_notify; Notify rejects larger values with ErrPayloadTooLarge.
//
// # Transactional Notifications
//
// PostgreSQL delivers notifications sent inside a transaction only when it
// commits. Use WithTx to route a notifier through your transaction:
//
//	tx, err := pool.Begin(ctx)
//	if err != nil {
//		return err
//	}
//	defer tx.Rollback(ctx) // Safe even after commit
//
//	ctx = pg.WithTx(ctx, tx)
//	if _, err := tx.Exec(ctx, "INSERT INTO orders (id) VALUES ($1)", id); err != nil {
//		return err
//	}
//	if err := notifier.Notify(ctx, Order{ID: id}); err != nil {
//		return err
//	}
//	return tx.Commit(ctx) // Subscribers see the order only now
//
// # Row Change Triggers
//
// Migrate installs two helper functions. rx_notify(channel, payload)
// forwards to pg_notify for use from SQL. rx_notify_row is a trigger
// function that publishes the affected row as JSON, turning table changes
// into a stream without application code on the write path:
//
//	CREATE TRIGGER orders_stream
//	AFTER INSERT OR UPDATE ON orders
//	FOR EACH ROW EXECUTE FUNCTION rx_notify_row('orders');
//
// A Listener[Order] on the "orders" channel then receives every inserted
// or updated row, provided the row's JSON shape matches Order.
//
// # Health Checking
//
// Healthcheck returns a probe function suitable for readiness endpoints;
// Listener.Healthcheck additionally verifies the receive loop is running:
//
//	check := pg.Healthcheck(pool)
//	if err := check(ctx); err != nil {
//		// database unreachable
//	}
//
// # Error Handling
//
// The package defines domain-specific errors checked with errors.Is(),
// and classification helpers for common PostgreSQL failures:
//
//	isNotFound := pg.IsNotFoundError(err)               // pgx.ErrNoRows
//	isDuplicate := pg.IsDuplicateKeyError(err)          // unique violations
//	isFKViolation := pg.IsForeignKeyViolationError(err) // referential integrity
//	isTxClosed := pg.IsTxClosedError(err)               // closed transaction
package pg
