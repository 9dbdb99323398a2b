package http

import (
	"net/http"

	"github.com/MKhiriev/go-record-sync/internal/utils"
	"github.com/MKhiriev/go-record-sync/models"
)

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	id, _ := utils.GetAccountIDFromContext(r.Context())

	utils.WriteJSON(w, models.AccountInfo{
		AccountID: id,
		Status:    h.services.AuthService.AccountStatus(r.Context(), id),
	}, http.StatusOK)
}
