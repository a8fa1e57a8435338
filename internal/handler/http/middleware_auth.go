package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/internal/service"
	"github.com/MKhiriev/ucip-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

// auth is an HTTP middleware that enforces JWT-based authorization for the
// identity named by the {user_id} path parameter.
//
// It extracts the bearer token from the "Authorization" header, checks it
// via [service.AuthService.Authorize] and, on success, stores the user ID in
// the request context under [utils.UserIDCtxKey].
//
// The path identity is unescaped before comparison: chi yields the raw
// segment when the URL carries a RawPath, so "/getContext/a%2Fb" names
// user "a/b".
//
// Requests are rejected with:
//   - 400 when the path identity is not a valid escape sequence.
//   - 401 when the header is absent or malformed, or the token is invalid
//     or expired.
//   - 403 when the token was issued for a different user.
//
// Runs before any store access.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, http.StatusUnauthorized, detailInvalidToken)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, service.ErrUnauthorized)
			return
		}

		pathUserID, err := url.PathUnescape(chi.URLParam(r, "user_id"))
		if err != nil {
			writeError(w, r, service.ErrInvalidRequest)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.Authorize(ctx, tokenString, pathUserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = utils.WithUserID(ctx, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
