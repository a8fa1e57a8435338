// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// EncryptionKeySize is the required length of a decoded encryption key.
const EncryptionKeySize = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.EncryptionKey != "" {
		if _, err := DecodeKey(cfg.App.EncryptionKey); err != nil {
			return fmt.Errorf("%w: encryption key: %w", ErrInvalidAppConfigs, err)
		}
	}
	for i, key := range cfg.App.PreviousEncryptionKeys {
		if _, err := DecodeKey(key); err != nil {
			return fmt.Errorf("%w: previous encryption key #%d: %w", ErrInvalidAppConfigs, i, err)
		}
	}

	if cfg.App.CiphertextMaxAge < 0 {
		return fmt.Errorf("%w: ciphertext max age is negative", ErrInvalidAppConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no listen address", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

// DecodeKey decodes a base64 (URL-safe or standard, padded or not)
// encryption key and checks its length.
func DecodeKey(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)

	encodings := []*base64.Encoding{
		base64.URLEncoding,
		base64.StdEncoding,
		base64.RawURLEncoding,
		base64.RawStdEncoding,
	}

	for _, enc := range encodings {
		key, err := enc.DecodeString(encoded)
		if err != nil {
			continue
		}
		if len(key) != EncryptionKeySize {
			return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), EncryptionKeySize)
		}
		return key, nil
	}

	return nil, ErrInvalidKeyEncoding
}
