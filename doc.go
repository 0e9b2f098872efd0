// Package rx provides a push-based reactive stream core built around a
// broadcast Subject: a node that is simultaneously an observable source and
// an observer sink. Values pushed into a subject are fanned out
// synchronously, in registration order, to every subscribed observer, and
// each observer can cancel its own registration without disturbing the
// others or the upstream source.
//
// # Subjects
//
// A Subject is created empty with NewSubject, or fed by an upstream source
// with FromStream, which forks a single-subscriber Observable into a
// multi-subscriber broadcast:
//
//	values := make(chan int)
//	subject := rx.FromStream(rx.FromChannel(ctx, values))
//
//	a := subject.SubscribeFunc(func(v int) { fmt.Println("a:", v) })
//	b := subject.SubscribeFunc(func(v int) { fmt.Println("b:", v) })
//
//	values <- 1 // both a and b observe 1
//	a.Unsubscribe()
//	values <- 2 // only b observes 2
//	_ = b
//
// A *Subject is a handle: copying the pointer yields another handle to the
// same broadcast node, so a subject can be handed to producers and
// consumers independently.
//
// # Subscriptions and Identity
//
// Subscribe returns a Subscription that cancels exactly the registration it
// was created for. Registrations are identified by opaque monotonic tokens
// issued by the subject's internal registry, never by callback addresses or
// equality, so two subscriptions of the same function remain independently
// cancellable and a consumed subscription can never affect a later
// registration. Unsubscribe is consumed on first call; removing an already
// removed registration is a silent no-op.
//
// # Delivery Semantics
//
// Next delivers synchronously: it returns only after every callback
// registered at the moment of the call has been invoked, in registration
// order. The callback set is snapshotted when Next starts, so callbacks may
// subscribe, unsubscribe, or push values themselves without deadlock;
// registry changes made during a delivery pass apply from the next push
// onwards. There are no error or completion channels, no buffering, and no
// replay for late subscribers.
//
// # Composing Streams
//
// Observables compose through operators that wrap Subscribe:
//
//	evens := rx.Filter(src, func(v int) bool { return v%2 == 0 })
//	doubled := rx.Map(evens, func(v int) int { return v * 2 })
//	first3 := rx.Take(doubled, 3)
//
// Operators are single-subscriber like every Observable; put a Subject at
// the end of a chain (via FromStream) when several observers need the
// result.
//
// # Package Organization
//
// The repository layers infrastructure around this core:
//
//	github.com/tashoecraft/rx-go                        - Subject, Observable, Observer, operators, sources
//	github.com/tashoecraft/rx-go/config                 - Type-safe environment variable loading
//	github.com/tashoecraft/rx-go/health                 - Health check aggregation and HTTP probes
//	github.com/tashoecraft/rx-go/logger                 - Structured logging attribute helpers built on slog
//	github.com/tashoecraft/rx-go/metrics                - Prometheus instrumentation for subjects and streams
//	github.com/tashoecraft/rx-go/integration/mongo      - MongoDB change stream source
//	github.com/tashoecraft/rx-go/integration/pg         - PostgreSQL LISTEN/NOTIFY listener and notifier
//	github.com/tashoecraft/rx-go/integration/redis      - Redis Pub/Sub bridge between subjects across processes
//	github.com/tashoecraft/rx-go/integration/websocket  - WebSocket source and sink for subjects
//
// Integration packages follow a common shape: a Config struct loaded from
// environment variables, a connect function with retry logic, a component
// with Start/Stop/Run lifecycle methods feeding or draining a Subject, and
// a Healthcheck function for readiness probes.
package rx
