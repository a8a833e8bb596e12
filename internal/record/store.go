package record

import (
	"context"
	"time"
)

// Entity is the contract a feature model must satisfy to live in a record
// store. All ArraBoard models embed models.Meta, whose pointer receivers
// provide the full set, so any *models.X qualifies.
type Entity interface {
	// EntityID returns the record identifier, empty before creation.
	EntityID() string

	// SetEntityID assigns the identifier. Called once by Create.
	SetEntityID(id string)

	// StampCreated sets both lifecycle timestamps.
	StampCreated(now time.Time)

	// StampUpdated advances only the modification timestamp.
	StampUpdated(now time.Time)
}

// Store is durable CRUD over one feature collection. T is the pointer form
// of a feature model (e.g. *models.Contact).
//
// The record lifecycle is nonexistent → active → deleted, with any number
// of in-place updates while active. There is no soft-delete and no undo.
type Store[T Entity] interface {
	// List returns every record in the caller's collection. An empty or
	// absent collection yields an empty slice, never an error.
	List(ctx context.Context) ([]T, error)

	// Create assigns a fresh identifier and lifecycle timestamps to item,
	// persists it, and returns the stored record.
	Create(ctx context.Context, item T) (T, error)

	// Update applies the non-zero fields of patch to the record with the
	// given id and returns the merged record. Fields left at their zero
	// value in patch keep their stored value. Fails with ErrNotFound when
	// id does not exist in the caller's collection.
	Update(ctx context.Context, id string, patch T) (T, error)

	// Delete removes the record with the given id. Deleting a missing or
	// non-owned id is a no-op.
	Delete(ctx context.Context, id string) error
}
