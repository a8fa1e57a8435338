package http

import (
	"net/http"

	"github.com/MKhiriev/ucip-keeper/internal/logger"
	"github.com/MKhiriev/ucip-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is meant for [chi.Mux.MethodNotAllowed]. A path that exists
// under another method answers 404 {"detail":"Not found"} instead of chi's
// 405, so callers cannot probe which routes exist.
//
// The route is re-matched with the request method first. This covers
// routers where a method is mounted on a sub-router that chi did not pick.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("method not routed")
		utils.WriteError(w, http.StatusNotFound, detailNotFound)
	}
}
