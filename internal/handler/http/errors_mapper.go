package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ucip-keeper/internal/codec"
	"github.com/MKhiriev/ucip-keeper/internal/crypto"
	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/internal/service"
	"github.com/MKhiriev/ucip-keeper/internal/store"
	"github.com/MKhiriev/ucip-keeper/internal/utils"
	"github.com/MKhiriev/ucip-keeper/internal/validators"
)

type errorResponse struct {
	status int
	detail string
}

// errorStatusMap is checked in order: the first target matched by
// [errors.Is] wins, so more specific errors go first.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{service.ErrUnauthorized, errorResponse{http.StatusUnauthorized, detailInvalidToken}},
	{service.ErrForbidden, errorResponse{http.StatusForbidden, detailForbidden}},

	{store.ErrContextNotFound, errorResponse{http.StatusNotFound, detailNotFound}},
	{crypto.ErrDecryptionFailed, errorResponse{http.StatusBadRequest, detailDecryptionFailed}},

	{service.ErrConsentRequired, errorResponse{http.StatusBadRequest, detailConsentRequired}},
	{validators.ErrConsentRequired, errorResponse{http.StatusBadRequest, detailConsentRequired}},
	{service.ErrInvalidRequest, errorResponse{http.StatusBadRequest, detailInvalidRequest}},
	{validators.ErrInvalidPayload, errorResponse{http.StatusBadRequest, detailInvalidRequest}},
	{codec.ErrInvalidDocumentJSON, errorResponse{http.StatusBadRequest, detailInvalidRequest}},
	{ErrEmptyBody, errorResponse{http.StatusBadRequest, detailInvalidRequest}},
	{ErrInvalidGzipBody, errorResponse{http.StatusBadRequest, detailInvalidRequest}},

	{store.ErrStorageUnavailable, errorResponse{http.StatusServiceUnavailable, detailStorageUnavailable}},

	{codec.ErrMalformedDocument, errorResponse{http.StatusInternalServerError, detailInternalError}},
	{store.ErrBuildingSQLQuery, errorResponse{http.StatusInternalServerError, detailInternalError}},
	{store.ErrExecutingQuery, errorResponse{http.StatusInternalServerError, detailInternalError}},
	{store.ErrScanningRow, errorResponse{http.StatusInternalServerError, detailInternalError}},
}

func responseFromError(err error) errorResponse {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return errorResponse{http.StatusRequestEntityTooLarge, detailInvalidRequest}
	}

	for _, mapping := range errorStatusMap {
		if errors.Is(err, mapping.target) {
			return mapping.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, detailInternalError}
}

// writeError logs err and answers with the mapped status and detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	response := responseFromError(err)

	log := logger.FromRequest(r)
	if response.status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", response.status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", response.status).Msg("request rejected")
	}

	utils.WriteError(w, response.status, response.detail)
}
