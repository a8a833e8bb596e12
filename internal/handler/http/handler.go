// Package http wires the server's REST routes. Authentication handlers are
// public; everything else sits behind the bearer-token middleware.
package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/service"
)

// Handler owns the chi router and the services it dispatches to.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

// NewHandler returns a Handler over the given services.
func NewHandler(services *service.Services, log *logger.Logger) *Handler {
	return &Handler{services: services, logger: log}
}

// Init builds the route tree.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.loggingMiddleware)
	router.Use(gzipMiddleware)

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware)

			r.Route("/records/{collection}", func(r chi.Router) {
				r.Get("/", h.listRecords)
				r.Post("/", h.createRecord)
				r.Get("/{id}", h.getRecord)
				r.Put("/{id}", h.updateRecord)
				r.Delete("/{id}", h.deleteRecord)
			})

			r.Route("/files/{id}", func(r chi.Router) {
				r.Post("/content", h.uploadFileContent)
				r.Get("/content", h.downloadFileContent)
				r.Delete("/content", h.deleteFileContent)
			})

			r.Get("/stats", h.stats)
		})
	})

	return router
}
