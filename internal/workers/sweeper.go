package workers

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/store"
	"github.com/arraboard/arraboard/models"
)

// orphanGracePeriod protects freshly uploaded content: a client creates the
// metadata record and uploads the bytes in two requests, so content may
// briefly exist before or after its record.
const orphanGracePeriod = time.Hour

// orphanSweeper removes uploaded file content whose metadata record in the
// "files" collection no longer exists.
type orphanSweeper struct {
	records  store.RecordRepository
	dir      string
	interval time.Duration
	logger   *logger.Logger
}

func newOrphanSweeper(records store.RecordRepository, dir string, interval time.Duration, log *logger.Logger) *orphanSweeper {
	return &orphanSweeper{records: records, dir: dir, interval: interval, logger: log}
}

func (s *orphanSweeper) run(ctx context.Context) {
	sweepLogger := s.logger.GetChildLogger("orphanSweeper")
	sweepLogger.Info().Dur("interval", s.interval).Str("dir", s.dir).Msg("orphan sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			sweepLogger.Info().Msg("orphan sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx, sweepLogger)
		}
	}
}

func (s *orphanSweeper) sweep(ctx context.Context, sweepLogger *logger.Logger) {
	userDirs, err := os.ReadDir(s.dir)
	if err != nil {
		// Missing uploads dir just means nothing was uploaded yet.
		if !os.IsNotExist(err) {
			sweepLogger.Error().Err(err).Msg("reading uploads dir")
		}
		return
	}

	removed := 0
	for _, userDir := range userDirs {
		if !userDir.IsDir() {
			continue
		}
		userID, err := strconv.ParseInt(userDir.Name(), 10, 64)
		if err != nil {
			continue
		}
		removed += s.sweepUser(ctx, sweepLogger, userID, filepath.Join(s.dir, userDir.Name()))
	}

	if removed > 0 {
		sweepLogger.Info().Int("removed", removed).Msg("orphaned file content removed")
	}
}

func (s *orphanSweeper) sweepUser(ctx context.Context, sweepLogger *logger.Logger, userID int64, dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		sweepLogger.Error().Err(err).Str("dir", dir).Msg("reading user uploads dir")
		return 0
	}

	envelopes, err := s.records.ListRecords(ctx, userID, models.CollectionFiles)
	if err != nil {
		sweepLogger.Error().Err(err).Int64("user_id", userID).Msg("listing file records")
		return 0
	}
	known := make(map[string]struct{}, len(envelopes))
	for _, env := range envelopes {
		known[env.ID] = struct{}{}
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := known[entry.Name()]; ok {
			continue
		}

		info, err := entry.Info()
		if err != nil || time.Since(info.ModTime()) < orphanGracePeriod {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			sweepLogger.Error().Err(err).Str("path", path).Msg("removing orphaned content")
			continue
		}
		removed++
	}

	return removed
}
