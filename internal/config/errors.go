package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid backend settings (for example,
	// a missing or relative base URL).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidSessionConfigs indicates invalid session store settings.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidDevServerConfigs indicates invalid development server
	// settings (for example, a relative proxy target).
	ErrInvalidDevServerConfigs = errors.New("invalid dev server configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
