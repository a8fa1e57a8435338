package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or a malformed encryption key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, no listen address or a non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrUnsupportedConfigFormat is returned for config files whose
	// extension is not .json, .jsonc, .yaml or .yml.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
	// ErrInvalidNetAddress is returned by [NetAddress.Set] for values that
	// are not host:port.
	ErrInvalidNetAddress = errors.New("invalid net address")
)

// Key decoding errors returned by [DecodeKey].
var (
	ErrInvalidKeyEncoding = errors.New("encryption key is not valid base64")
	ErrInvalidKeyLength   = errors.New("encryption key has invalid length")
)
