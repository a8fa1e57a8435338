package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/ucip-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// JWT errors returned by [ValidateAndParseJWTToken] and [ParseBearerToken].
var (
	ErrInvalidToken               = errors.New("invalid token")
	ErrMissingUserIDClaim         = errors.New("token has no user_id claim")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for userID.
//
// The token carries the "user_id" claim plus the registered claims:
//   - Issuer    (iss): only when issuer is non-empty
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration, when positive
//
// userID and signKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("ucip-keeper", "alice", time.Hour, "secret")
func GenerateJWTToken(issuer, userID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if userID == "" || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if tokenDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification with tokenSignKey; only HS256 is accepted
//   - Expiration (exp) check when the claim is present
//   - Issuer (iss) check when tokenIssuer is non-empty
//   - Presence of a "user_id" claim; a non-string value is accepted here and
//     left for the caller to refuse (see [models.Claims.HasStringUserID])
//
// Every failure wraps [ErrInvalidToken].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !claims.HasUserID() {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, ErrMissingUserIDClaim)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
