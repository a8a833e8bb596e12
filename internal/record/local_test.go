package record

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/utils"
	"github.com/arraboard/arraboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalContactStore(t *testing.T) (Store[*models.Contact], string) {
	t.Helper()
	dir := t.TempDir()
	s := NewLocalStore[*models.Contact](dir, models.CollectionContacts, utils.NewIDGenerator(), logger.Nop())
	return s, dir
}

func TestLocalStore_ListEmptyCollection(t *testing.T) {
	s, _ := newLocalContactStore(t)

	items, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items, "absent blob file must read as an empty collection")
}

func TestLocalStore_CreateThenRead(t *testing.T) {
	s, _ := newLocalContactStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, &models.Contact{
		Name:  "Kiss Anna",
		Email: "anna@example.com",
		Phone: "+36301234567",
		Notes: "",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	got := items[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Kiss Anna", got.Name)
	assert.Equal(t, "anna@example.com", got.Email)
	assert.Equal(t, "+36301234567", got.Phone)
	assert.Equal(t, "", got.Notes)
}

func TestLocalStore_DateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStore[*models.Transaction](dir, models.CollectionTransactions, utils.NewIDGenerator(), logger.Nop())
	ctx := context.Background()

	date := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
	created, err := s.Create(ctx, &models.Transaction{
		Title:    "fizetés",
		Amount:   15000,
		Date:     date,
		Type:     models.TransactionIncome,
		Category: models.CategoryWork,
	})
	require.NoError(t, err)

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// day/month/year must survive the JSON round-trip exactly
	assert.True(t, items[0].Date.Equal(date), "expected %v, got %v", date, items[0].Date)
	assert.True(t, items[0].CreatedAt.Equal(created.CreatedAt))
}

func TestLocalStore_UpdatePreservesUntouchedFields(t *testing.T) {
	s, _ := newLocalContactStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, &models.Contact{
		Name:  "Nagy Béla",
		Email: "bela@example.com",
		Phone: "+36201112222",
		Notes: "régi kolléga",
	})
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, &models.Contact{Phone: "+36209998888"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "+36209998888", updated.Phone)
	assert.Equal(t, "Nagy Béla", updated.Name)
	assert.Equal(t, "bela@example.com", updated.Email)
	assert.Equal(t, "régi kolléga", updated.Notes)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt), "creation time is immutable")
}

func TestLocalStore_UpdateMissingID(t *testing.T) {
	s, _ := newLocalContactStore(t)

	_, err := s.Update(context.Background(), "no-such-id", &models.Contact{Name: "x"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalStore_DeleteIsTerminalAndIdempotent(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStore[*models.Password](dir, models.CollectionPasswords, utils.NewIDGenerator(), logger.Nop())
	ctx := context.Background()

	created, err := s.Create(ctx, &models.Password{Name: "mail", URL: "https://mail.example.com", Password: "s3cret"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, created.ID))

	items, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// second delete of the same id must not raise
	require.NoError(t, s.Delete(ctx, created.ID))

	// and the id is gone for updates too
	_, err = s.Update(ctx, created.ID, &models.Password{Name: "x"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalStore_CollectionsAreIsolated(t *testing.T) {
	dir := t.TempDir()
	contacts := NewLocalStore[*models.Contact](dir, models.CollectionContacts, utils.NewIDGenerator(), logger.Nop())
	notes := NewLocalStore[*models.Note](dir, models.CollectionNotes, utils.NewIDGenerator(), logger.Nop())
	ctx := context.Background()

	_, err := contacts.Create(ctx, &models.Contact{Name: "a", Email: "a@a", Phone: "1"})
	require.NoError(t, err)

	got, err := notes.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "each collection owns its exclusive storage key")

	// one file per collection
	_, err = os.Stat(filepath.Join(dir, "contacts.json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "notes.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_CorruptBlobIsStorageError(t *testing.T) {
	s, dir := newLocalContactStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "contacts.json"), []byte("{not json"), 0o600))

	_, err := s.List(context.Background())
	assert.True(t, errors.Is(err, ErrStorage))
}

func TestLocalStore_IDsNeverReused(t *testing.T) {
	s, _ := newLocalContactStore(t)
	ctx := context.Background()

	first, err := s.Create(ctx, &models.Contact{Name: "a", Email: "a@a", Phone: "1"})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, first.ID))

	second, err := s.Create(ctx, &models.Contact{Name: "b", Email: "b@b", Phone: "2"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
