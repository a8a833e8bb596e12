package http

import (
	"errors"
	"net/http"

	"github.com/arraboard/arraboard/internal/service"
	"github.com/arraboard/arraboard/internal/store"
	"github.com/arraboard/arraboard/internal/utils"
)

// errorResponse is the JSON body of every non-2xx answer.
type errorResponse struct {
	Error string `json:"error"`
}

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUnknownCollection:   http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrTokenInvalid:        http.StatusUnauthorized,
	store.ErrLoginAlreadyExists:    http.StatusConflict,
	store.ErrRecordNotFound:        http.StatusNotFound,
	service.ErrFileNotFound:        http.StatusNotFound,
}

// statusFromError translates business errors into HTTP status codes.
// Anything unmapped is an internal error.
func statusFromError(err error) int {
	for sentinel, status := range errorStatusMap {
		if errors.Is(err, sentinel) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, status int, message string) {
	_, _ = utils.WriteJSON(w, errorResponse{Error: message}, status)
}

// respondError maps err onto a status code. Internal errors get a generic
// message so storage details never leak to clients.
func respondError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	writeError(w, status, message)
}
