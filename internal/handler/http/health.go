package http

import (
	"net/http"

	"github.com/MKhiriev/go-life-records/internal/utils"
)

// health serves GET /healthz. It reports whether the store answers a ping.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.AppInfoService.Health(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, r, status, http.StatusOK)
}
