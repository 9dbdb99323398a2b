package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-record-sync/internal/utils"
	"github.com/MKhiriev/go-record-sync/models"
)

// accountID returns the authenticated account. The auth middleware
// guarantees it is present on every zone route.
func accountID(r *http.Request) string {
	id, _ := utils.GetAccountIDFromContext(r.Context())
	return id
}

func (h *Handler) createZone(w http.ResponseWriter, r *http.Request) {
	var zone models.Zone
	if err := json.NewDecoder(r.Body).Decode(&zone); err != nil {
		writeError(w, r, "Handler.createZone",
			models.NewRemoteError(models.ErrorCodeInvalidArguments, "invalid JSON was passed: %v", err))
		return
	}

	created, err := h.services.RecordStoreService.CreateZone(r.Context(), accountID(r), zone)
	if err != nil {
		writeError(w, r, "Handler.createZone", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) fetchZone(w http.ResponseWriter, r *http.Request) {
	zone, err := h.services.RecordStoreService.FetchZone(r.Context(), accountID(r), chi.URLParam(r, "zone"))
	if err != nil {
		writeError(w, r, "Handler.fetchZone", err)
		return
	}

	utils.WriteJSON(w, zone, http.StatusOK)
}

func (h *Handler) deleteZone(w http.ResponseWriter, r *http.Request) {
	if err := h.services.RecordStoreService.DeleteZone(r.Context(), accountID(r), chi.URLParam(r, "zone")); err != nil {
		writeError(w, r, "Handler.deleteZone", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createSubscription(w http.ResponseWriter, r *http.Request) {
	var subscription models.Subscription
	if err := json.NewDecoder(r.Body).Decode(&subscription); err != nil {
		writeError(w, r, "Handler.createSubscription",
			models.NewRemoteError(models.ErrorCodeInvalidArguments, "invalid JSON was passed: %v", err))
		return
	}

	zone := chi.URLParam(r, "zone")
	if subscription.Zone == "" {
		subscription.Zone = zone
	}
	if subscription.Zone != zone {
		writeError(w, r, "Handler.createSubscription",
			models.NewRemoteError(models.ErrorCodeInvalidArguments, "subscription zone %q does not match %q", subscription.Zone, zone))
		return
	}

	created, err := h.services.RecordStoreService.CreateSubscription(r.Context(), accountID(r), subscription)
	if err != nil {
		writeError(w, r, "Handler.createSubscription", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) fetchSubscription(w http.ResponseWriter, r *http.Request) {
	subscription, err := h.services.RecordStoreService.FetchSubscription(r.Context(), accountID(r),
		chi.URLParam(r, "zone"), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "Handler.fetchSubscription", err)
		return
	}

	utils.WriteJSON(w, subscription, http.StatusOK)
}
