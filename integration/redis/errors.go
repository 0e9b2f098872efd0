package redis

import "errors"

// Domain-specific Redis errors for consistent error handling across the application.
// Use errors.Is() to check error types for retry logic and user-facing messages.
var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrEmptyConnectionURL           = errors.New("empty redis connection URL")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")

	// Bridge errors
	ErrNilClient               = errors.New("redis client is required")
	ErrEmptyChannel            = errors.New("channel name cannot be empty")
	ErrFailedToEncodeMessage   = errors.New("failed to encode message")
	ErrFailedToPublishMessage  = errors.New("failed to publish message")
	ErrFailedToSubscribe       = errors.New("failed to subscribe to channel")
	ErrBridgeAlreadyRunning    = errors.New("bridge is already running")
	ErrBridgeNotRunning        = errors.New("bridge is not running")
	ErrShutdownTimeoutExceeded = errors.New("bridge shutdown timeout exceeded")
)
