package http

import (
	"net/http"

	"github.com/MKhiriev/ucip-keeper/internal/utils"
	"github.com/MKhiriev/ucip-keeper/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// checkHealth answers 200 when the document store is reachable and 503
// otherwise.
func (h *Handler) checkHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.CheckHealth(r.Context()); err != nil {
		utils.WriteError(w, http.StatusServiceUnavailable, detailStorageUnavailable)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "OK"}, http.StatusOK)
}
