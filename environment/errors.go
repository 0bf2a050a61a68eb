package environment

import "errors"

var (
	// ErrInvalidSettings is returned when settings are inconsistent.
	ErrInvalidSettings = errors.New("invalid settings")
	// ErrModelNotConfigured is returned when the application config lacks a model section.
	ErrModelNotConfigured = errors.New("model not configured")
	// ErrModelUnavailable is returned by HealthCheck when a server does not list its model.
	ErrModelUnavailable = errors.New("model unavailable")
)
