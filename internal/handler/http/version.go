package http

import (
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteText(w, serverVersion, "text/plain; charset=utf-8", http.StatusOK)
}
