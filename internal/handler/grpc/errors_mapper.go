package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/ucip-keeper/internal/codec"
	"github.com/MKhiriev/ucip-keeper/internal/crypto"
	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/internal/service"
	"github.com/MKhiriev/ucip-keeper/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorStatusMap is checked in order: the first target matched by
// [errors.Is] wins.
var errorStatusMap = []struct {
	target  error
	code    codes.Code
	message string
}{
	{service.ErrUnauthorized, codes.Unauthenticated, "Invalid token"},
	{service.ErrForbidden, codes.PermissionDenied, "Unauthorized"},
	{store.ErrContextNotFound, codes.NotFound, "Not found"},
	{crypto.ErrDecryptionFailed, codes.DataLoss, "Decryption failed"},
	{service.ErrConsentRequired, codes.InvalidArgument, "Consent required"},
	{service.ErrInvalidRequest, codes.InvalidArgument, "Invalid request"},
	{codec.ErrMalformedDocument, codes.DataLoss, "Malformed document"},
	{store.ErrStorageUnavailable, codes.Unavailable, "Storage unavailable"},
	{context.DeadlineExceeded, codes.DeadlineExceeded, "Deadline exceeded"},
	{context.Canceled, codes.Canceled, "Canceled"},
}

// toStatus converts a service error into a gRPC status error and logs it.
func toStatus(ctx context.Context, err error) error {
	code, message := codes.Internal, "Internal server error"
	for _, mapping := range errorStatusMap {
		if errors.Is(err, mapping.target) {
			code, message = mapping.code, mapping.message
			break
		}
	}

	log := logger.FromContext(ctx)
	if code == codes.Internal || code == codes.Unavailable || code == codes.DataLoss {
		log.Error().Err(err).Str("code", code.String()).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("code", code.String()).Msg("request rejected")
	}

	return status.Error(code, message)
}
