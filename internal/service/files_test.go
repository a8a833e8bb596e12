package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arraboard/arraboard/internal/logger"
)

func TestFilesService_SaveOpenDelete(t *testing.T) {
	svc := NewFilesService(t.TempDir(), logger.Nop())
	ctx := context.Background()
	id := uuid.NewString()

	require.NoError(t, svc.Save(ctx, 7, id, strings.NewReader("szerződés tartalma")))

	rc, err := svc.Open(ctx, 7, id)
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "szerződés tartalma", string(content))

	require.NoError(t, svc.Delete(ctx, 7, id))
	_, err = svc.Open(ctx, 7, id)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestFilesService_ContentIsPerUser(t *testing.T) {
	svc := NewFilesService(t.TempDir(), logger.Nop())
	ctx := context.Background()
	id := uuid.NewString()

	require.NoError(t, svc.Save(ctx, 7, id, strings.NewReader("titkos")))

	_, err := svc.Open(ctx, 8, id)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestFilesService_RejectsMalformedID(t *testing.T) {
	svc := NewFilesService(t.TempDir(), logger.Nop())
	ctx := context.Background()

	err := svc.Save(ctx, 7, "../../etc/passwd", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Open(ctx, 7, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestFilesService_DeleteMissingSucceeds(t *testing.T) {
	svc := NewFilesService(t.TempDir(), logger.Nop())
	assert.NoError(t, svc.Delete(context.Background(), 7, uuid.NewString()))
}
