package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/models"
)

func TestStatsService_Collect(t *testing.T) {
	repo := newFakeRecordRepo()
	records := NewRecordsService(repo, logger.Nop())
	stats := NewStatsService(repo, logger.Nop())
	ctx := context.Background()

	for i, collection := range []string{
		models.CollectionContacts,
		models.CollectionContacts,
		models.CollectionGoals,
	} {
		_, err := records.Create(ctx, 7, collection, models.RecordEnvelope{
			ID:      string(rune('a' + i)),
			Payload: json.RawMessage(`{}`),
		})
		require.NoError(t, err)
	}

	got, err := stats.Collect(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, 2, got.Collections[models.CollectionContacts])
	assert.Equal(t, 1, got.Collections[models.CollectionGoals])
	assert.Equal(t, 3, got.Total)

	// Empty collections still appear with a zero count.
	assert.Contains(t, got.Collections, models.CollectionNotes)
	assert.Equal(t, 0, got.Collections[models.CollectionNotes])
	assert.Len(t, got.Collections, len(models.Collections))
}

func TestStatsService_CollectEmptyUser(t *testing.T) {
	stats := NewStatsService(newFakeRecordRepo(), logger.Nop())

	got, err := stats.Collect(context.Background(), 42)
	require.NoError(t, err)
	assert.Zero(t, got.Total)
	assert.Len(t, got.Collections, len(models.Collections))
}
