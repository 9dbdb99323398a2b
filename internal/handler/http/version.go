package http

import (
	"net/http"

	"github.com/MKhiriev/go-record-sync/internal/utils"
)

func (h *Handler) getServerInfo(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetServerInfo(r.Context())

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		h.logger.Err(err).Str("func", "*Handler.getServerInfo").Msg("failed to write server info")
	}
}
