package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/chacha20poly1305"
)

// KeySize is the length of an encryption key in bytes.
const KeySize = chacha20poly1305.KeySize

// GenerateKey reads a new random key from the OS CSPRNG.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("error generating encryption key: %w", err)
	}
	return key, nil
}

// Fingerprint returns a short BLAKE3 digest of key, safe to log.
func Fingerprint(key []byte) string {
	sum := blake3.Sum256(key)
	return hex.EncodeToString(sum[:8])
}
