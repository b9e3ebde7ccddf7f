package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown app type).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCodecConfigs indicates invalid codec settings
	// (for example, a non-positive chunk worker count).
	ErrInvalidCodecConfigs = errors.New("invalid codec configuration")
	// ErrInvalidLogConfigs indicates invalid logger settings
	// (for example, an unknown level name).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
