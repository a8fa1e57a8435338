package store

import (
	"bytes"
	"context"
	"sync"
)

// memoryStorage keeps ciphertexts in process memory. Contents do not
// survive a restart.
type memoryStorage struct {
	mu       sync.RWMutex
	contexts map[string][]byte
}

// NewMemoryStorage returns an empty in-memory [ContextStorage].
func NewMemoryStorage() ContextStorage {
	return &memoryStorage{contexts: make(map[string][]byte)}
}

func (m *memoryStorage) Get(ctx context.Context, userID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	ciphertext, ok := m.contexts[userID]
	if !ok {
		return nil, ErrContextNotFound
	}
	return bytes.Clone(ciphertext), nil
}

func (m *memoryStorage) Put(ctx context.Context, userID string, ciphertext []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.contexts[userID] = bytes.Clone(ciphertext)
	return nil
}

func (m *memoryStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}
