package service

import (
	"context"

	"github.com/MKhiriev/ucip-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ContextService reads and writes the context document of a single owner.
// Callers are expected to have authorized the owner identity beforehand.
type ContextService interface {
	// GetContext loads, decrypts and decodes the document stored for userID.
	GetContext(ctx context.Context, userID string) (models.Context, error)

	// UpdateContext encodes, encrypts and stores doc as the document of
	// userID, replacing any previous one.
	UpdateContext(ctx context.Context, userID string, doc models.Context) error
}

type AuthService interface {
	// Authorize verifies tokenString and checks that it was issued for
	// claimedUserID.
	Authorize(ctx context.Context, tokenString, claimedUserID string) (models.Claims, error)
	CreateToken(ctx context.Context, userID string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	CheckHealth(ctx context.Context) error
}

// ContextServiceWrapper defines middleware composition for ContextService.
// Implementations wrap an existing ContextService to add behavior such as
// logging or validating.
type ContextServiceWrapper interface {
	Wrap(ContextService) ContextService // returns a decorated ContextService applying additional behavior
}
