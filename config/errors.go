package config

import "errors"

var (
	// ErrNilConfig is returned when Load receives a nil pointer.
	ErrNilConfig = errors.New("config target cannot be nil")

	// ErrFailedToParseConfig wraps environment parsing failures, including
	// missing required variables and malformed values.
	ErrFailedToParseConfig = errors.New("failed to parse config from environment")
)
