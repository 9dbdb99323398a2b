// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-record-sync/internal/utils"
	"github.com/MKhiriev/go-record-sync/models"
)

// modifyRecords applies a save/delete batch. A partially applied batch is
// answered with 200: the body lists the accepted items and carries the
// PARTIAL_FAILURE error with the per-record errors.
func (h *Handler) modifyRecords(w http.ResponseWriter, r *http.Request) {
	var req models.ModifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "Handler.modifyRecords",
			models.NewRemoteError(models.ErrorCodeInvalidArguments, "invalid JSON was passed: %v", err))
		return
	}

	zone := chi.URLParam(r, "zone")
	if req.Zone == "" {
		req.Zone = zone
	}
	if req.Zone != zone {
		writeError(w, r, "Handler.modifyRecords",
			models.NewRemoteError(models.ErrorCodeInvalidArguments, "batch zone %q does not match %q", req.Zone, zone))
		return
	}

	resp, err := h.services.RecordStoreService.ModifyRecords(r.Context(), accountID(r), req)
	if err != nil {
		remoteErr, ok := models.AsRemoteError(err)
		if !ok || remoteErr.Code != models.ErrorCodePartialFailure {
			writeError(w, r, "Handler.modifyRecords", err)
			return
		}
		resp.Error = remoteErr
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// fetchChanges reads the "token" (unpadded base64url) and "limit" query
// parameters.
func (h *Handler) fetchChanges(w http.ResponseWriter, r *http.Request) {
	req := models.ChangesRequest{Zone: chi.URLParam(r, "zone")}

	query := r.URL.Query()
	if token := query.Get("token"); token != "" {
		decoded, err := base64.RawURLEncoding.DecodeString(token)
		if err != nil {
			writeError(w, r, "Handler.fetchChanges",
				models.NewRemoteError(models.ErrorCodeInvalidArguments, "malformed change token: %v", err))
			return
		}
		req.Token = decoded
	}
	if limit := query.Get("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil {
			writeError(w, r, "Handler.fetchChanges",
				models.NewRemoteError(models.ErrorCodeInvalidArguments, "malformed limit %q", limit))
			return
		}
		req.Limit = parsed
	}

	resp, err := h.services.RecordStoreService.FetchChanges(r.Context(), accountID(r), req)
	if err != nil {
		writeError(w, r, "Handler.fetchChanges", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
