package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/arraboard/arraboard/internal/logger"
)

// FilesService keeps uploaded file content on disk, one file per record id,
// under a per-user directory. The matching metadata lives in the "files"
// collection of the record table; the sweeper in the workers package
// removes content whose metadata record is gone.
type FilesService struct {
	dir    string
	logger *logger.Logger
}

// NewFilesService returns a FilesService storing content under dir.
func NewFilesService(dir string, log *logger.Logger) *FilesService {
	return &FilesService{dir: dir, logger: log}
}

func (s *FilesService) contentPath(userID int64, id string) (string, error) {
	// The id is always a server-checked UUID, so it cannot smuggle path
	// separators into the content path.
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("%w: malformed file id %q", ErrInvalidDataProvided, id)
	}
	return filepath.Join(s.dir, strconv.FormatInt(userID, 10), id), nil
}

// Save writes the uploaded content for the given file record id.
func (s *FilesService) Save(ctx context.Context, userID int64, id string, content io.Reader) error {
	methodLogger := s.logger.GetChildLogger("FilesService.Save")

	path, err := s.contentPath(userID, id)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating upload directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, content)
	if err != nil {
		return fmt.Errorf("writing upload file: %w", err)
	}

	methodLogger.Info().Str("id", id).Int64("bytes", written).Msg("file content stored")
	return nil
}

// Open returns the stored content of a file record. The caller closes the
// reader.
func (s *FilesService) Open(ctx context.Context, userID int64, id string) (io.ReadCloser, error) {
	path, err := s.contentPath(userID, id)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("opening upload file: %w", err)
	}
	return f, nil
}

// Delete removes stored content. Missing content is not an error: the
// metadata record may exist before the upload completes.
func (s *FilesService) Delete(ctx context.Context, userID int64, id string) error {
	path, err := s.contentPath(userID, id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing upload file: %w", err)
	}
	return nil
}

// Dir exposes the content root for the orphan sweeper.
func (s *FilesService) Dir() string {
	return s.dir
}
