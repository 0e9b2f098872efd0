package health

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/tashoecraft/rx-go/logger"
)

// Handler creates a health check HTTP handler that can serve as both a
// liveness and readiness probe depending on the provided dependency checks.
//
// When no checks are provided, it acts as a liveness probe and returns
// "ALIVE" to indicate the process is running.
//
// When checks are provided, it acts as a readiness probe: it runs every
// check and returns "READY" if all succeed. If any fail, it logs the
// failures and returns 503 Service Unavailable.
//
// Example:
//
//	// Liveness probe - no dependencies
//	mux.Handle("/health/live", health.Handler(log))
//
//	// Readiness probe - with connection and pump checks
//	mux.Handle("/health/ready", health.Handler(log,
//		redis.Healthcheck(client),
//		bridge.Healthcheck,
//	))
func Handler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		if err := Check(r.Context(), checks...); err != nil {
			log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
