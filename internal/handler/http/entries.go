// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.VaultEntryService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.listEntries")
		return
	}
	if entries == nil {
		entries = []models.VaultEntry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	id, err := entryIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getEntry")
		return
	}

	entry, err := h.services.VaultEntryService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getEntry")
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var entry models.VaultEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Str("func", "*Handler.createEntry").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.VaultEntryService.Create(r.Context(), entry)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createEntry")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := entryIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateEntry")
		return
	}

	var entry models.VaultEntry
	if err = json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Str("func", "*Handler.updateEntry").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if entry.ID != id {
		log.Warn().Int64("path_id", id).Int64("body_id", entry.ID).Msg("entry id mismatch")
		http.Error(w, app.MsgIDMismatch, http.StatusBadRequest)
		return
	}

	if _, err = h.services.VaultEntryService.Update(r.Context(), entry); err != nil {
		h.writeError(w, r, err, "*Handler.updateEntry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := entryIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.deleteEntry")
		return
	}

	if err = h.services.VaultEntryService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err, "*Handler.deleteEntry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func entryIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidEntryID
	}
	return id, nil
}
