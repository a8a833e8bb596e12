package models

import (
	"encoding/json"
	"time"
)

// Meta carries the identity and lifecycle fields shared by every board
// record. Feature models embed Meta so that the generic record store can
// assign identifiers and timestamps without knowing the concrete shape.
//
// ID is assigned once at creation time (client-side UUID) and is immutable
// afterwards. CreatedAt and UpdatedAt round-trip through JSON as RFC 3339
// strings; any consumer comparing dates must work with the parsed
// time.Time values, never the raw strings.
type Meta struct {
	// ID is the opaque, globally unique record identifier.
	ID string `json:"id"`

	// CreatedAt is the moment the record was first persisted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the moment of the last in-place modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// EntityID returns the record identifier.
func (m *Meta) EntityID() string { return m.ID }

// SetEntityID assigns the record identifier. Called exactly once by the
// record store during Create.
func (m *Meta) SetEntityID(id string) { m.ID = id }

// StampCreated sets both lifecycle timestamps to now.
func (m *Meta) StampCreated(now time.Time) {
	m.CreatedAt = now
	m.UpdatedAt = now
}

// StampUpdated advances the modification timestamp only.
func (m *Meta) StampUpdated(now time.Time) { m.UpdatedAt = now }

// RecordEnvelope is the storage and wire form of a board record. The
// server treats Payload as an opaque JSON document: all validation and
// shape knowledge stays on the client side, the server only enforces
// ownership and collection scoping.
type RecordEnvelope struct {
	// ID is the client-generated record identifier.
	ID string `json:"id"`

	// UserID is the owning user. Populated server-side from the session;
	// never trusted from the request body.
	UserID int64 `json:"user_id,omitempty"`

	// Collection names the feature collection the record belongs to
	// (e.g. "contacts", "transactions").
	Collection string `json:"collection"`

	// Payload is the feature record serialized as JSON.
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the last-modification timestamp.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table backing record envelopes.
func (RecordEnvelope) TableName() string {
	return "records"
}

// Collection name constants. Each feature owns exactly one collection;
// the name doubles as the local-mode file name and the remote-mode
// path segment, so the namespaces never overlap.
const (
	CollectionContacts       = "contacts"
	CollectionPasswords      = "passwords"
	CollectionLinks          = "links"
	CollectionNotes          = "notes"
	CollectionTasks          = "tasks"
	CollectionTaskCategories = "task_categories"
	CollectionTransactions   = "transactions"
	CollectionSubscriptions  = "subscriptions"
	CollectionProjects       = "projects"
	CollectionProjectTasks   = "project_tasks"
	CollectionCalendar       = "calendar_todos"
	CollectionGoals          = "goals"
	CollectionFiles          = "files"
)

// Collections lists every known collection name in presentation order.
var Collections = []string{
	CollectionContacts,
	CollectionPasswords,
	CollectionLinks,
	CollectionNotes,
	CollectionTasks,
	CollectionTaskCategories,
	CollectionTransactions,
	CollectionSubscriptions,
	CollectionProjects,
	CollectionProjectTasks,
	CollectionCalendar,
	CollectionGoals,
	CollectionFiles,
}
