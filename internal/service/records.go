package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/store"
	"github.com/arraboard/arraboard/models"
)

// RecordsService guards the generic record table. Payloads stay opaque
// here: the service only checks that they are well-formed JSON and that the
// collection is one the application defines.
type RecordsService struct {
	records store.RecordRepository
	logger  *logger.Logger
}

// NewRecordsService returns a RecordsService backed by the given record
// repository.
func NewRecordsService(records store.RecordRepository, log *logger.Logger) *RecordsService {
	return &RecordsService{records: records, logger: log}
}

func validCollection(collection string) error {
	if !slices.Contains(models.Collections, collection) {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	return nil
}

// List returns every record the user owns in the collection.
func (s *RecordsService) List(ctx context.Context, userID int64, collection string) ([]models.RecordEnvelope, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}
	return s.records.ListRecords(ctx, userID, collection)
}

// Get returns a single record, or store.ErrRecordNotFound.
func (s *RecordsService) Get(ctx context.Context, userID int64, collection, id string) (models.RecordEnvelope, error) {
	if err := validCollection(collection); err != nil {
		return models.RecordEnvelope{}, err
	}
	return s.records.GetRecord(ctx, userID, collection, id)
}

// Create stores a new record. The client supplies the id; the server fills
// the timestamps when the client left them zero.
func (s *RecordsService) Create(ctx context.Context, userID int64, collection string, env models.RecordEnvelope) (models.RecordEnvelope, error) {
	if err := validCollection(collection); err != nil {
		return models.RecordEnvelope{}, err
	}
	if env.ID == "" {
		return models.RecordEnvelope{}, fmt.Errorf("%w: record id is required", ErrInvalidDataProvided)
	}
	if !json.Valid(env.Payload) {
		return models.RecordEnvelope{}, fmt.Errorf("%w: payload is not valid json", ErrInvalidDataProvided)
	}

	env.UserID = userID
	env.Collection = collection
	now := time.Now().UTC()
	if env.CreatedAt.IsZero() {
		env.CreatedAt = now
	}
	if env.UpdatedAt.IsZero() {
		env.UpdatedAt = env.CreatedAt
	}

	if err := s.records.CreateRecord(ctx, env); err != nil {
		return models.RecordEnvelope{}, err
	}

	s.logger.GetChildLogger("RecordsService.Create").
		Debug().Str("collection", collection).Str("id", env.ID).Msg("record created")
	return env, nil
}

// Update replaces the payload of an existing record.
func (s *RecordsService) Update(ctx context.Context, userID int64, collection, id string, env models.RecordEnvelope) (models.RecordEnvelope, error) {
	if err := validCollection(collection); err != nil {
		return models.RecordEnvelope{}, err
	}
	if !json.Valid(env.Payload) {
		return models.RecordEnvelope{}, fmt.Errorf("%w: payload is not valid json", ErrInvalidDataProvided)
	}

	env.UserID = userID
	env.Collection = collection
	env.ID = id
	if env.UpdatedAt.IsZero() {
		env.UpdatedAt = time.Now().UTC()
	}

	if err := s.records.UpdateRecord(ctx, env); err != nil {
		return models.RecordEnvelope{}, err
	}
	return env, nil
}

// Delete removes a record. Deleting a missing record succeeds.
func (s *RecordsService) Delete(ctx context.Context, userID int64, collection, id string) error {
	if err := validCollection(collection); err != nil {
		return err
	}
	return s.records.DeleteRecord(ctx, userID, collection, id)
}
