package mongo

import "errors"

// Domain-specific MongoDB errors for consistent error handling across the application.
// Use errors.Is() to check error types for retry logic and user-facing messages.
var (
	ErrEmptyConnectionURL     = errors.New("empty mongo connection URL")
	ErrEmptyDatabaseName      = errors.New("empty mongo database name")
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")

	// Change source errors
	ErrNilCollection            = errors.New("mongo collection is required")
	ErrFailedToOpenChangeStream = errors.New("failed to open change stream")
	ErrChangeStreamFailed       = errors.New("change stream failed")
	ErrSourceAlreadyRunning     = errors.New("change source is already running")
	ErrSourceNotRunning         = errors.New("change source is not running")
	ErrShutdownTimeoutExceeded  = errors.New("change source shutdown timeout exceeded")
)
