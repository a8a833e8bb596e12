package record

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/utils"
)

// localStore persists one collection as a single JSON array file under the
// base directory, named <collection>.json. Every operation deserializes the
// whole blob, mutates it in memory, and rewrites the complete file.
//
// There is no partial-write durability guarantee: a crash mid-write can
// corrupt the collection. The mutex serializes writers within one process
// only; two processes sharing the directory race last-write-wins.
type localStore[T Entity] struct {
	dir        string
	collection string

	ids   *utils.IDGenerator
	clock func() time.Time

	mu     sync.Mutex
	logger *logger.Logger
}

// NewLocalStore constructs the local-mode Store for one collection. The
// blob file is created lazily on the first Create; a missing file reads as
// an empty collection.
func NewLocalStore[T Entity](dir, collection string, ids *utils.IDGenerator, log *logger.Logger) Store[T] {
	return &localStore[T]{
		dir:        dir,
		collection: collection,
		ids:        ids,
		clock:      time.Now,
		logger:     log,
	}
}

func (s *localStore[T]) path() string {
	return filepath.Join(s.dir, s.collection+".json")
}

// load reads and decodes the whole collection blob. An absent file yields
// an empty collection.
func (s *localStore[T]) load() ([]T, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: read collection %q: %w", ErrStorage, s.collection, err)
	}

	items := make([]T, 0, 16)
	if err = json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: decode collection %q: %w", ErrStorage, s.collection, err)
	}

	return items, nil
}

// persist rewrites the complete collection blob.
func (s *localStore[T]) persist(items []T) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create collection dir: %w", ErrStorage, err)
	}

	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode collection %q: %w", ErrStorage, s.collection, err)
	}

	if err = os.WriteFile(s.path(), payload, 0o600); err != nil {
		return fmt.Errorf("%w: write collection %q: %w", ErrStorage, s.collection, err)
	}

	return nil
}

func (s *localStore[T]) List(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *localStore[T]) Create(ctx context.Context, item T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T

	items, err := s.load()
	if err != nil {
		return zero, err
	}

	item.SetEntityID(s.ids.Generate())
	item.StampCreated(s.clock())

	items = append(items, item)
	if err = s.persist(items); err != nil {
		return zero, err
	}

	s.logger.Debug().
		Str("collection", s.collection).
		Str("id", item.EntityID()).
		Msg("record created")

	return item, nil
}

func (s *localStore[T]) Update(ctx context.Context, id string, patch T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T

	items, err := s.load()
	if err != nil {
		return zero, err
	}

	for i, existing := range items {
		if existing.EntityID() != id {
			continue
		}

		if err = MergePatch(existing, patch); err != nil {
			return zero, err
		}
		// identity is immutable even if the patch carried an id
		existing.SetEntityID(id)
		existing.StampUpdated(s.clock())

		items[i] = existing
		if err = s.persist(items); err != nil {
			return zero, err
		}

		return existing, nil
	}

	return zero, fmt.Errorf("%w: collection %q id %q", ErrNotFound, s.collection, id)
}

func (s *localStore[T]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}

	kept := items[:0]
	found := false
	for _, item := range items {
		if item.EntityID() == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}

	// deleting a missing id is a no-op
	if !found {
		return nil
	}

	return s.persist(kept)
}
