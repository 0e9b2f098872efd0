// Package health aggregates dependency health checks and exposes them as
// HTTP probes.
//
// Every integration component in this repository reports health through a
// func(context.Context) error, either as a package-level function over a
// connection (redis.Healthcheck, pg.Healthcheck, mongo.Healthcheck) or as a
// method on a running component (Bridge.Healthcheck, Listener.Healthcheck).
// This package combines any number of them:
//
//	err := health.Check(ctx,
//		redis.Healthcheck(client),
//		bridge.Healthcheck,
//		listener.Healthcheck,
//	)
//
// and serves them on HTTP for Kubernetes-style probes:
//
//	mux.Handle("/health/live", health.Handler(log))
//	mux.Handle("/health/ready", health.Handler(log, checks...))
//
// The metrics server mounts a readiness endpoint this way via its
// WithHealthchecks option.
package health
