package service

import (
	"context"

	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/store"
	"github.com/arraboard/arraboard/models"
)

// StatsService aggregates per-collection record counts for the dashboard.
type StatsService struct {
	records store.RecordRepository
	logger  *logger.Logger
}

// NewStatsService returns a StatsService backed by the given record
// repository.
func NewStatsService(records store.RecordRepository, log *logger.Logger) *StatsService {
	return &StatsService{records: records, logger: log}
}

// Collect returns record counts for every known collection, including the
// empty ones.
func (s *StatsService) Collect(ctx context.Context, userID int64) (models.DashboardStats, error) {
	counts, err := s.records.CountByCollection(ctx, userID)
	if err != nil {
		return models.DashboardStats{}, err
	}

	stats := models.DashboardStats{Collections: make(map[string]int, len(models.Collections))}
	for _, collection := range models.Collections {
		stats.Collections[collection] = counts[collection]
		stats.Total += counts[collection]
	}
	return stats, nil
}
