package http

import (
	"net/http"

	"github.com/arraboard/arraboard/internal/utils"
)

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	dashboard, err := h.services.Stats.Collect(r.Context(), uid)
	if err != nil {
		respondError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, dashboard, http.StatusOK)
}
