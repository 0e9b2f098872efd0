package websocket

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	ws "github.com/gorilla/websocket"
)

// DefaultShutdownTimeout is the default time Stop allows for the read
// pump to exit.
const DefaultShutdownTimeout = 10 * time.Second

// Config holds WebSocket connection configuration.
// Designed for environment-based configuration using popular env parsing libraries.
type Config struct {
	URL              string        `env:"WS_URL,required"`
	HandshakeTimeout time.Duration `env:"WS_HANDSHAKE_TIMEOUT" envDefault:"10s"`
	ReadLimit        int64         `env:"WS_READ_LIMIT" envDefault:"1048576"`
}

// Dial connects to a WebSocket server. The URL must use the ws or wss
// scheme. The configured read limit is applied to the returned connection.
func Dial(ctx context.Context, cfg Config) (*ws.Conn, error) {
	if cfg.URL == "" {
		return nil, ErrEmptyURL
	}

	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "ws" && u.Scheme != "wss") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, cfg.URL)
	}

	dialer := ws.Dialer{
		HandshakeTimeout: cfg.HandshakeTimeout,
		Proxy:            http.ProxyFromEnvironment,
	}

	conn, resp, err := dialer.DialContext(ctx, cfg.URL, nil)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToDial, err)
	}

	if cfg.ReadLimit > 0 {
		conn.SetReadLimit(cfg.ReadLimit)
	}

	return conn, nil
}

type options struct {
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// Option configures sources and sinks.
type Option func(*options)

// WithLogger sets a custom logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithShutdownTimeout sets the maximum time Stop waits for the read pump
// to exit. Only sources use it.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.shutdownTimeout = timeout
		}
	}
}

func defaultOptions() options {
	return options{
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		shutdownTimeout: DefaultShutdownTimeout,
	}
}
