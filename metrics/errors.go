package metrics

import "errors"

var (
	// Instrumentation errors
	ErrEmptySubjectName = errors.New("subject name cannot be empty")
	ErrNilSubject       = errors.New("subject cannot be nil")
	ErrNilCountFunc     = errors.New("subscriber count function cannot be nil")
	ErrAlreadyTracked   = errors.New("subject is already tracked")

	// Server lifecycle errors
	ErrServerAlreadyRunning = errors.New("metrics server is already running")
	ErrServerNotRunning     = errors.New("metrics server is not running")
	ErrServerShutdown       = errors.New("metrics server shutdown error")
)
