package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arraboard/arraboard/internal/logger"
)

// File metadata travels through the generic records API under the "files"
// collection; these handlers move only the raw content.

func (h *Handler) uploadFileContent(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization required")
		return
	}
	requestLogger := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	if err := h.services.Files.Save(r.Context(), uid, id, r.Body); err != nil {
		requestLogger.Error().Err(err).Str("id", id).Msg("upload failed")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) downloadFileContent(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	content, err := h.services.Files.Open(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	defer content.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, content); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("streaming file content")
	}
}

func (h *Handler) deleteFileContent(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	if err := h.services.Files.Delete(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
