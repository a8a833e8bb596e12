package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/utils"
	"github.com/arraboard/arraboard/models"
)

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	envelopes, err := h.services.Records.List(r.Context(), uid, chi.URLParam(r, "collection"))
	if err != nil {
		respondError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, envelopes, http.StatusOK)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	env, err := h.services.Records.Get(r.Context(), uid, chi.URLParam(r, "collection"), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, env, http.StatusOK)
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization required")
		return
	}
	requestLogger := logger.FromRequest(r)

	var env models.RecordEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	created, err := h.services.Records.Create(r.Context(), uid, chi.URLParam(r, "collection"), env)
	if err != nil {
		requestLogger.Warn().Err(err).Msg("record rejected")
		respondError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	var env models.RecordEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	updated, err := h.services.Records.Update(r.Context(), uid, chi.URLParam(r, "collection"), chi.URLParam(r, "id"), env)
	if err != nil {
		respondError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	if err := h.services.Records.Delete(r.Context(), uid, chi.URLParam(r, "collection"), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
