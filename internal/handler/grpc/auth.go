package grpc

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ucip-keeper/internal/service"
	"github.com/MKhiriev/ucip-keeper/internal/utils"
	"google.golang.org/grpc/metadata"
)

const authorizationMetadataKey = "authorization"

// authorize checks the bearer token in the incoming metadata against
// userID, the same way the HTTP auth middleware does.
func (h *Handler) authorize(ctx context.Context, userID string) error {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return fmt.Errorf("%w: no metadata", service.ErrUnauthorized)
	}

	values := md.Get(authorizationMetadataKey)
	if len(values) == 0 {
		return fmt.Errorf("%w: no authorization metadata", service.ErrUnauthorized)
	}

	tokenString, err := utils.ParseBearerToken(values[0])
	if err != nil {
		return fmt.Errorf("%w: %w", service.ErrUnauthorized, err)
	}

	_, err = h.services.AuthService.Authorize(ctx, tokenString, userID)
	return err
}
