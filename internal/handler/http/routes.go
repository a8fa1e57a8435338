package http

import (
	"net/http"

	"github.com/MKhiriev/ucip-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/health", h.checkHealth)
	})

	// routes with authorization: the token must belong to {user_id}
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/getContext/{user_id}", h.getContext)
		r.Post("/updateContext/{user_id}", h.updateContext)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusNotFound, detailNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
