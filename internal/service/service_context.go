package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ucip-keeper/internal/codec"
	"github.com/MKhiriev/ucip-keeper/internal/crypto"
	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/internal/store"
	"github.com/MKhiriev/ucip-keeper/models"
)

type contextService struct {
	storage store.ContextStorage
	sealer  crypto.Sealer
	codec   *codec.UCIPCodec

	logger *logger.Logger
}

func NewContextService(storage store.ContextStorage, sealer crypto.Sealer, codec *codec.UCIPCodec, logger *logger.Logger) ContextService {
	return &contextService{
		storage: storage,
		sealer:  sealer,
		codec:   codec,
		logger:  logger,
	}
}

func (c *contextService) GetContext(ctx context.Context, userID string) (models.Context, error) {
	log := logger.FromContext(ctx)

	ciphertext, err := c.storage.Get(ctx, userID)
	if err != nil {
		return models.Context{}, fmt.Errorf("error loading context: %w", err)
	}

	plaintext, err := c.sealer.Decrypt(userID, ciphertext)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("stored context could not be decrypted")
		return models.Context{}, fmt.Errorf("error decrypting context: %w", err)
	}

	doc, err := c.codec.Decode(plaintext)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("stored context is not a valid document")
		return models.Context{}, fmt.Errorf("error decoding context: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("accessed UCIP")
	return doc, nil
}

func (c *contextService) UpdateContext(ctx context.Context, userID string, doc models.Context) error {
	log := logger.FromContext(ctx)

	plaintext, err := c.codec.Encode(doc)
	if err != nil {
		return fmt.Errorf("error encoding context: %w", err)
	}

	ciphertext, err := c.sealer.Encrypt(userID, plaintext)
	if err != nil {
		return fmt.Errorf("error encrypting context: %w", err)
	}

	if err = c.storage.Put(ctx, userID, ciphertext); err != nil {
		return fmt.Errorf("error saving context: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("updated UCIP")
	return nil
}
