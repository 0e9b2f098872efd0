package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/tashoecraft/rx-go/health"
)

const (
	// DefaultReadTimeout is the default timeout for reading scrape requests.
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout is the default timeout for writing scrape responses.
	DefaultWriteTimeout = 15 * time.Second

	// DefaultIdleTimeout is the default timeout for idle scrape connections.
	DefaultIdleTimeout = 60 * time.Second
)

// Config holds the metrics server configuration.
// Designed for environment-based configuration using popular env parsing libraries.
type Config struct {
	Addr            string        `env:"METRICS_ADDR" envDefault:":9091"`
	Path            string        `env:"METRICS_PATH" envDefault:"/metrics"`
	ShutdownTimeout time.Duration `env:"METRICS_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// DefaultConfig returns sensible defaults for production use.
func DefaultConfig() Config {
	return Config{
		Addr:            ":9091",
		Path:            "/metrics",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server exposes a Metrics registry over HTTP together with liveness and
// readiness endpoints. Safe for concurrent use.
type Server struct {
	mu      sync.Mutex
	metrics *Metrics
	cfg     Config
	logger  *slog.Logger
	checks  []func(context.Context) error
	server  *http.Server
	running bool
}

// ServerOption configures server behavior.
type ServerOption func(*Server)

// WithLogger sets a custom logger for server operations.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHealthchecks registers readiness checks served at /health/ready.
// Checks run on every request; all must pass for a 200 response.
func WithHealthchecks(checks ...func(context.Context) error) ServerOption {
	return func(s *Server) {
		s.checks = append(s.checks, checks...)
	}
}

// NewServer creates a metrics server for m. Zero-value config fields fall
// back to DefaultConfig values.
func NewServer(m *Metrics, cfg Config, opts ...ServerOption) *Server {
	def := DefaultConfig()
	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	if cfg.Path == "" {
		cfg.Path = def.Path
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = def.ShutdownTimeout
	}

	s := &Server{
		metrics: m,
		cfg:     cfg,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start starts the server and blocks until the context is canceled or an
// error occurs. Returns context.Err() when the context is canceled.
// Use Stop() for graceful shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrServerAlreadyRunning
	}
	s.running = true

	mux := http.NewServeMux()
	mux.Handle(s.cfg.Path, s.metrics.Handler())
	mux.Handle("/health/live", health.Handler(s.logger))
	mux.Handle("/health/ready", health.Handler(s.logger, s.checks...))

	s.server = &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      mux,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
		IdleTimeout:  DefaultIdleTimeout,
	}
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.InfoContext(ctx, "starting metrics server", "addr", s.cfg.Addr, "path", s.cfg.Path)

		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop gracefully shuts down the server using the configured timeout.
// Returns immediately if the server is not running.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.server == nil {
		return nil
	}

	s.logger.Info("shutting down metrics server gracefully", "timeout", s.cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(shutdownCtx)
	s.running = false

	if err != nil {
		s.logger.Error("metrics server shutdown error", "error", err)
		return fmt.Errorf("%w: %v", ErrServerShutdown, err)
	}

	s.logger.Info("metrics server shutdown complete")
	return nil
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// Returns a function that starts the server, monitors context cancellation,
// and performs graceful shutdown when the context is cancelled.
func (s *Server) Run(ctx context.Context) func() error {
	return func() error {
		errCh := make(chan error, 1)
		go func() {
			errCh <- s.Start(ctx)
		}()

		select {
		case <-ctx.Done():
			if stopErr := s.Stop(); stopErr != nil {
				s.logger.Error("failed to stop metrics server during context cancellation", "error", stopErr)
			}
			<-errCh
			return nil
		case err := <-errCh:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// Healthcheck reports whether the server is currently running.
// Suitable for use as a readiness probe on another server.
func (s *Server) Healthcheck(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return ErrServerNotRunning
	}
	return nil
}
