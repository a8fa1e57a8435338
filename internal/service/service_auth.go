// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/ucip-keeper/internal/config"
	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/internal/utils"
	"github.com/MKhiriev/ucip-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It verifies HS256 bearer tokens against a shared secret and checks that
// the token owner matches the identity the request is made for.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim. Empty disables the check.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Authorize validates tokenString and compares its user_id claim with
// claimedUserID (exact, case-sensitive).
//
// Returns the token claims on success or:
//   - ErrUnauthorized if the token is malformed, expired, wrongly signed or
//     carries no user_id claim.
//   - ErrForbidden if the token belongs to another user, or its user_id
//     claim is not a string and so matches no user.
func (a *authService) Authorize(ctx context.Context, tokenString, claimedUserID string) (models.Claims, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.Claims{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	if !token.Claims.HasStringUserID() || token.Claims.UserID != claimedUserID {
		log.Warn().
			Str("token_user_id", token.Claims.UserID).
			Str("user_id", claimedUserID).
			Msg("token used for another user")
		return models.Claims{}, ErrForbidden
	}

	return token.Claims, nil
}

// CreateToken issues a signed JWT for userID.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, userID string) (models.Token, error) {
	if userID == "" {
		return models.Token{}, ErrEmptyUserID
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
