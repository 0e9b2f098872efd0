package pg

import "errors"

// Domain-specific PostgreSQL errors for consistent error handling across the application.
// Use errors.Is() to check error types for retry logic and user-facing messages.
var (
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrEmptyConnectionString    = errors.New("empty postgres connection string, use PG_CONN_URL env var")
	ErrHealthcheckFailed        = errors.New("healthcheck failed, connection is not available")
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
	ErrFailedToApplyMigrations  = errors.New("failed to apply migrations")

	// Listen/notify errors
	ErrNilPool                 = errors.New("connection pool is required")
	ErrInvalidChannelName      = errors.New("invalid channel name")
	ErrFailedToListen          = errors.New("failed to listen on channel")
	ErrFailedToEncodePayload   = errors.New("failed to encode payload")
	ErrFailedToNotify          = errors.New("failed to send notification")
	ErrPayloadTooLarge         = errors.New("notification payload exceeds postgres limit")
	ErrListenerAlreadyRunning  = errors.New("listener is already running")
	ErrListenerNotRunning      = errors.New("listener is not running")
	ErrShutdownTimeoutExceeded = errors.New("listener shutdown timeout exceeded")
)
