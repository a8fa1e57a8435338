// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the ucip-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the CLI from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the ucip-keeper
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// GetContext fetches the context document of userID and returns its JSON
	// projection exactly as the server rendered it.
	GetContext(ctx context.Context, userID string) (string, error)

	// UpdateContext sends document, a JSON object, as the new context
	// document of userID and returns the server acknowledgement message.
	UpdateContext(ctx context.Context, userID string, document []byte) (string, error)

	// GetVersion returns the server version string.
	GetVersion(ctx context.Context) (string, error)

	// CheckHealth returns nil when the server reports itself healthy.
	CheckHealth(ctx context.Context) error
}
