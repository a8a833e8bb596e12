// Package server wraps the standard http.Server with lifecycle helpers.
package server

import (
	"context"
	"net/http"

	"github.com/arraboard/arraboard/internal/config"
)

// Server runs the ArraBoard HTTP API.
type Server struct {
	httpServer *http.Server
}

// NewServer builds a Server for the given handler and settings.
func NewServer(cfg config.Server, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Address,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Run blocks serving requests until Shutdown is called or the listener
// fails.
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server gracefully, waiting for in-flight requests up
// to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
