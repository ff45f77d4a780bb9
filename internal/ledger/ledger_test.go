// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/corpus-converter/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRegisterAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Register(ctx, "s3://corpus/docs/page.html.gz")
	require.NoError(t, err)
	require.NotZero(t, id)

	rec, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "s3://corpus/docs/page.html.gz", rec.SourcePath)
	assert.Equal(t, types.StatusIngested, rec.Status)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)
}

func TestListEligible(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Register sequentially so updated_at ordering is unambiguous.
	var ids []int64
	for _, p := range []string{
		"s3://corpus/a.html.gz",
		"s3://corpus/b.html.gz",
		"s3://corpus/c.html.gz",
	} {
		id, err := s.Register(ctx, p)
		require.NoError(t, err)
		ids = append(ids, id)
		time.Sleep(2 * time.Millisecond)
	}

	records, err := s.ListEligible(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Most recently updated first.
	assert.Equal(t, "s3://corpus/c.html.gz", records[0].SourcePath)
	assert.Equal(t, "s3://corpus/a.html.gz", records[2].SourcePath)

	// Converted and failed records drop out of the eligible set.
	require.NoError(t, s.UpdateStatus(ctx, ids[2], types.StatusConverted))
	require.NoError(t, s.UpdateStatus(ctx, ids[0], types.StatusFailed))

	records, err = s.ListEligible(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, ids[1], records[0].ID)
}

func TestListEligible_Empty(t *testing.T) {
	s := newTestStore(t)

	records, err := s.ListEligible(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUpdateStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Register(ctx, "s3://corpus/docs/page.html.gz")
	require.NoError(t, err)

	before, err := s.Get(ctx, id)
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)
	require.NoError(t, s.UpdateStatus(ctx, id, types.StatusConverted))

	after, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, types.StatusConverted, after.Status)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt),
		"updated_at should be refreshed by a status write")
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestUpdateStatus_MissingRecord(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateStatus(context.Background(), 9999, types.StatusFailed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such record")
}

func TestStatusCounts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 4; i++ {
		id, err := s.Register(ctx, "s3://corpus/doc.html.gz")
		require.NoError(t, err)
		ids = append(ids, id)
	}
	require.NoError(t, s.UpdateStatus(ctx, ids[0], types.StatusConverted))
	require.NoError(t, s.UpdateStatus(ctx, ids[1], types.StatusConverted))
	require.NoError(t, s.UpdateStatus(ctx, ids[2], types.StatusFailed))

	counts, err := s.StatusCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[types.StatusConverted])
	assert.Equal(t, 1, counts[types.StatusFailed])
	assert.Equal(t, 1, counts[types.StatusIngested])
	assert.Zero(t, counts[types.StatusPending])
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "ledger.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}
