package http

import (
	"encoding/json"
	"net/http"

	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/utils"
	"github.com/arraboard/arraboard/models"
)

// tokenResponse carries the issued JWT back to the client.
type tokenResponse struct {
	Token string `json:"token"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	requestLogger := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	created, err := h.services.Auth.Register(r.Context(), user)
	if err != nil {
		requestLogger.Warn().Err(err).Msg("registration rejected")
		respondError(w, err)
		return
	}

	// Log the new user in right away so the client has a token without a
	// second round trip.
	token, err := h.services.Auth.Login(r.Context(), user.Login, user.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, struct {
		models.User
		tokenResponse
	}{User: created, tokenResponse: tokenResponse{Token: token.SignedString}}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	requestLogger := logger.FromRequest(r)

	var creds models.User
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	token, err := h.services.Auth.Login(r.Context(), creds.Login, creds.Password)
	if err != nil {
		requestLogger.Warn().Str("login", creds.Login).Err(err).Msg("login rejected")
		respondError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, tokenResponse{Token: token.SignedString}, http.StatusOK)
}
