package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings: neither a
	// DSN nor enough discrete fields (host and database name) to build one.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs indicates invalid server settings, such as a
	// negative registration rate limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
