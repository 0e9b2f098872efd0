// Package metrics provides Prometheus instrumentation for subjects and an
// HTTP server that exposes the scrape endpoint alongside health probes.
//
// A Metrics value owns its own registry by default, so instrumenting a
// stream never collides with collectors the host process already exports.
// Pass WithRegistry to share an existing registry instead.
//
// # Instrumenting Subjects
//
// Instrument wires a live subject to both collectors at once: a gauge that
// samples the subscriber count on every scrape and a counter incremented
// for every pushed value:
//
//	m := metrics.New()
//	orders := rx.NewSubject[Order]()
//	if err := metrics.Instrument(m, "orders", orders); err != nil {
//		log.Fatal(err)
//	}
//
// Counted instruments any observable without touching its subscriber set,
// which suits derived streams:
//
//	evens := metrics.Counted(m, "evens", rx.Filter(src, isEven))
//
// # Serving Scrapes
//
// Server exposes the registry over HTTP with graceful shutdown, following
// the Start/Stop/Run lifecycle used across this module:
//
//	cfg := metrics.Config{}
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//	srv := metrics.NewServer(m, cfg,
//		metrics.WithLogger(logger),
//		metrics.WithHealthchecks(bridge.Healthcheck),
//	)
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx))
//
// The server mounts the scrape handler at the configured path plus
// /health/live and /health/ready probes. Readiness checks registered via
// WithHealthchecks run on every probe request.
package metrics
