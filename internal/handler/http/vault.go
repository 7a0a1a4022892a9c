// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized, "no user in context")
		return
	}

	records, err := h.services.VaultService.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "error listing vault records")
		return
	}

	utils.WriteJSON(w, models.VaultListResponse{Records: records, Length: len(records)}, http.StatusOK)
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized, "no user in context")
		return
	}

	var request models.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "error decoding record body")
		return
	}

	created, err := h.services.VaultService.Create(r.Context(), userID, request)
	if err != nil {
		writeError(w, r, err, "error creating vault record")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized, "no user in context")
		return
	}

	var request models.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "error decoding record body")
		return
	}

	updated, err := h.services.VaultService.Update(r.Context(), userID, chi.URLParam(r, "id"), request)
	if err != nil {
		writeError(w, r, err, "error updating vault record")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized, "no user in context")
		return
	}

	if err := h.services.VaultService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "error deleting vault record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
