// Package service holds the server's business logic between the HTTP
// handlers and the persistence layer.
package service

import (
	"github.com/arraboard/arraboard/internal/config"
	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/store"
)

// Services bundles every service the handler layer needs.
type Services struct {
	Auth    *AuthService
	Records *RecordsService
	Files   *FilesService
	Stats   *StatsService
}

// NewServices wires all services to the storage layer.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, log *logger.Logger) *Services {
	return &Services{
		Auth:    NewAuthService(storages.Users, cfg.App, log),
		Records: NewRecordsService(storages.Records, log),
		Files:   NewFilesService(cfg.Storage.Files.Dir, log),
		Stats:   NewStatsService(storages.Records, log),
	}
}
