// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/chacha20poly1305"
)

// Token layout:
//
//	version (1) | issued at, unix seconds (8, big endian) | nonce (24) | ciphertext+tag
//
// The version byte, the timestamp and the owner identity are authenticated
// as associated data.
const (
	tokenVersion byte = 0x01

	headerSize = 1 + 8
	nonceSize  = chacha20poly1305.NonceSizeX
	minSize    = headerSize + nonceSize + chacha20poly1305.Overhead

	// maxClockSkew bounds how far in the future an issue time may lie when
	// a maximum age is enforced.
	maxClockSkew = time.Minute
)

type keyedAEAD struct {
	aead        cipher.AEAD
	fingerprint string
}

// xchachaSealer is the private implementation of [Sealer] on
// XChaCha20-Poly1305.
type xchachaSealer struct {
	// keys[0] is the primary key. The rest are only used for decryption.
	keys   []keyedAEAD
	maxAge time.Duration
	now    func() time.Time
}

// NewSealer constructs a [Sealer]. primary encrypts and decrypts; previous
// keys are accepted for decryption only, so keys can be rotated without
// re-encrypting stored documents. A positive maxAge rejects tokens issued
// longer ago than maxAge.
func NewSealer(primary []byte, previous [][]byte, maxAge time.Duration) (Sealer, error) {
	s := &xchachaSealer{
		keys:   make([]keyedAEAD, 0, 1+len(previous)),
		maxAge: maxAge,
		now:    time.Now,
	}

	for i, key := range append([][]byte{primary}, previous...) {
		aead, err := chacha20poly1305.NewX(key)
		if err != nil {
			return nil, fmt.Errorf("%w: key #%d: %w", ErrInvalidKey, i, err)
		}
		s.keys = append(s.keys, keyedAEAD{aead: aead, fingerprint: Fingerprint(key)})
	}

	return s, nil
}

// Fingerprints returns the fingerprints of the configured keys, primary first.
func Fingerprints(s Sealer) []string {
	xs, ok := s.(*xchachaSealer)
	if !ok {
		return nil
	}
	fps := make([]string, 0, len(xs.keys))
	for _, k := range xs.keys {
		fps = append(fps, k.fingerprint)
	}
	return fps
}

func (s *xchachaSealer) Encrypt(userID string, plaintext []byte) ([]byte, error) {
	token := make([]byte, headerSize+nonceSize, minSize+len(plaintext))
	token[0] = tokenVersion
	binary.BigEndian.PutUint64(token[1:headerSize], uint64(s.now().Unix()))

	nonce := token[headerSize:]
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("error generating nonce: %w", err)
	}

	return s.keys[0].aead.Seal(token, nonce, plaintext, associatedData(token[:headerSize], userID)), nil
}

func (s *xchachaSealer) Decrypt(userID string, token []byte) ([]byte, error) {
	if len(token) < minSize || token[0] != tokenVersion {
		return nil, ErrDecryptionFailed
	}

	header := token[:headerSize]
	nonce := token[headerSize : headerSize+nonceSize]
	ciphertext := token[headerSize+nonceSize:]
	ad := associatedData(header, userID)

	var plaintext []byte
	opened := false
	for _, k := range s.keys {
		p, err := k.aead.Open(nil, nonce, ciphertext, ad)
		if err == nil {
			plaintext, opened = p, true
			break
		}
	}
	if !opened {
		return nil, ErrDecryptionFailed
	}

	if s.maxAge > 0 {
		issuedAt := time.Unix(int64(binary.BigEndian.Uint64(header[1:])), 0)
		now := s.now()
		if now.Sub(issuedAt) > s.maxAge || issuedAt.Sub(now) > maxClockSkew {
			return nil, ErrDecryptionFailed
		}
	}

	return plaintext, nil
}

func associatedData(header []byte, userID string) []byte {
	ad := make([]byte, 0, len(header)+len(userID))
	ad = append(ad, header...)
	return append(ad, userID...)
}
