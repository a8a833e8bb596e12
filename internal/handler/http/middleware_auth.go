package http

import (
	"context"
	"net/http"

	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/utils"
)

// authMiddleware verifies the bearer token and stores the user id in the
// request context.
func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestLogger := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			requestLogger.Warn().Msg("missing or malformed authorization header")
			writeError(w, http.StatusUnauthorized, "authorization required")
			return
		}

		userID, err := h.services.Auth.ValidateToken(tokenString)
		if err != nil {
			requestLogger.Warn().Err(err).Msg("token rejected")
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userID pulls the authenticated user id set by authMiddleware. The bool is
// false only when the middleware did not run, which is a routing bug.
func userID(r *http.Request) (int64, bool) {
	return utils.GetUserIDFromContext(r.Context())
}
