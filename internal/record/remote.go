package record

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/utils"
	"github.com/arraboard/arraboard/models"
)

// RemoteClient is the transport the remote backend speaks through. The
// resty adapter in internal/adapter is the production implementation;
// tests substitute fakes.
//
// Implementations map transport failures onto this package's sentinels:
// HTTP 404 → ErrNotFound, 401 → ErrNotAuthenticated, anything else that
// prevents the operation → ErrStorage.
type RemoteClient interface {
	// Token returns the bearer token of the current session, empty when
	// the client has not logged in.
	Token() string

	ListRecords(ctx context.Context, collection string) ([]models.RecordEnvelope, error)
	GetRecord(ctx context.Context, collection, id string) (models.RecordEnvelope, error)
	CreateRecord(ctx context.Context, env models.RecordEnvelope) (models.RecordEnvelope, error)
	UpdateRecord(ctx context.Context, env models.RecordEnvelope) (models.RecordEnvelope, error)
	DeleteRecord(ctx context.Context, collection, id string) error
}

// remoteStore is the remote-mode Store: every operation becomes one or two
// HTTP calls against the caller's ownership-scoped collection on the
// server. Identifiers are still generated client-side, so a record's id is
// the same no matter which backend stored it first.
//
// Concurrent operations are not coordinated; two rapid edits to the same
// record race at the network layer and the last write wins.
type remoteStore[T Entity] struct {
	client     RemoteClient
	collection string

	ids   *utils.IDGenerator
	clock func() time.Time

	logger *logger.Logger
}

// NewRemoteStore constructs the remote-mode Store for one collection.
func NewRemoteStore[T Entity](client RemoteClient, collection string, ids *utils.IDGenerator, log *logger.Logger) Store[T] {
	return &remoteStore[T]{
		client:     client,
		collection: collection,
		ids:        ids,
		clock:      time.Now,
		logger:     log,
	}
}

// requireSession is the single authentication guard every remote operation
// passes through before touching the network.
func (s *remoteStore[T]) requireSession() error {
	if s.client.Token() == "" {
		return fmt.Errorf("%w: collection %q", ErrNotAuthenticated, s.collection)
	}
	return nil
}

func (s *remoteStore[T]) List(ctx context.Context) ([]T, error) {
	if err := s.requireSession(); err != nil {
		return nil, err
	}

	envelopes, err := s.client.ListRecords(ctx, s.collection)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(envelopes))
	for _, env := range envelopes {
		var item T
		if err = json.Unmarshal(env.Payload, &item); err != nil {
			return nil, fmt.Errorf("%w: decode record %q in %q: %w", ErrStorage, env.ID, s.collection, err)
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *remoteStore[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T

	if err := s.requireSession(); err != nil {
		return zero, err
	}

	item.SetEntityID(s.ids.Generate())
	item.StampCreated(s.clock())

	env, err := s.envelope(item)
	if err != nil {
		return zero, err
	}

	if _, err = s.client.CreateRecord(ctx, env); err != nil {
		return zero, err
	}

	s.logger.Debug().
		Str("collection", s.collection).
		Str("id", item.EntityID()).
		Msg("record created remotely")

	return item, nil
}

func (s *remoteStore[T]) Update(ctx context.Context, id string, patch T) (T, error) {
	var zero T

	if err := s.requireSession(); err != nil {
		return zero, err
	}

	env, err := s.client.GetRecord(ctx, s.collection, id)
	if err != nil {
		return zero, err
	}

	var current T
	if err = json.Unmarshal(env.Payload, &current); err != nil {
		return zero, fmt.Errorf("%w: decode record %q in %q: %w", ErrStorage, id, s.collection, err)
	}

	if err = MergePatch(current, patch); err != nil {
		return zero, err
	}
	current.SetEntityID(id)
	current.StampUpdated(s.clock())

	updated, err := s.envelope(current)
	if err != nil {
		return zero, err
	}

	if _, err = s.client.UpdateRecord(ctx, updated); err != nil {
		return zero, err
	}

	return current, nil
}

func (s *remoteStore[T]) Delete(ctx context.Context, id string) error {
	if err := s.requireSession(); err != nil {
		return err
	}

	// the server answers success for missing and non-owned ids alike, so
	// nothing leaks about other users' records
	return s.client.DeleteRecord(ctx, s.collection, id)
}

func (s *remoteStore[T]) envelope(item T) (models.RecordEnvelope, error) {
	payload, err := json.Marshal(item)
	if err != nil {
		return models.RecordEnvelope{}, fmt.Errorf("%w: encode record for %q: %w", ErrStorage, s.collection, err)
	}

	return models.RecordEnvelope{
		ID:         item.EntityID(),
		Collection: s.collection,
		Payload:    payload,
	}, nil
}
