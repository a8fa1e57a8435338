package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
)

// ContextStorage persists encrypted context documents keyed by owner
// identity. Values are opaque to the store.
type ContextStorage interface {
	// Get returns the ciphertext stored for userID, or ErrContextNotFound.
	Get(ctx context.Context, userID string) ([]byte, error)
	// Put stores ciphertext under userID, replacing any previous value.
	Put(ctx context.Context, userID string, ciphertext []byte) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
