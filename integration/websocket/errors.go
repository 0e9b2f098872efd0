package websocket

import "errors"

// Domain-specific WebSocket errors for consistent error handling across the application.
// Use errors.Is() to check error types for retry logic and user-facing messages.
var (
	ErrEmptyURL              = errors.New("websocket URL cannot be empty")
	ErrInvalidURL            = errors.New("invalid websocket URL")
	ErrFailedToDial          = errors.New("failed to dial websocket server")
	ErrNilConn               = errors.New("websocket connection is required")
	ErrFailedToEncodeMessage = errors.New("failed to encode message")
	ErrFailedToReadMessage   = errors.New("failed to read message")
	ErrFailedToWriteMessage  = errors.New("failed to write message")
	ErrHealthcheckFailed     = errors.New("websocket healthcheck failed")

	// Lifecycle errors
	ErrSourceAlreadyRunning    = errors.New("websocket source is already running")
	ErrSourceNotRunning        = errors.New("websocket source is not running")
	ErrSinkClosed              = errors.New("websocket sink is closed")
	ErrShutdownTimeoutExceeded = errors.New("websocket source shutdown timeout exceeded")
)
