package store

import (
	"context"
	"testing"

	"github.com/alexanderramin/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyStore(t *testing.T) {
	st := NewSQLiteSnapshotStore(testutil.NewTestDB(t))
	_, err := st.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestSaveAndLoad(t *testing.T) {
	st := NewSQLiteSnapshotStore(testutil.NewTestDB(t))
	ctx := context.Background()

	s := sampleSnapshot()
	require.NoError(t, st.Save(ctx, s))

	got, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 2)
	assert.True(t, got.Tasks[0].StartDate.Equal(s.Tasks[0].StartDate),
		"dates rehydrate as time values after a load")
	assert.Equal(t, s.Links, got.Links)
}

func TestSave_Overwrites(t *testing.T) {
	database := testutil.NewTestDB(t)
	st := NewSQLiteSnapshotStore(database)
	ctx := context.Background()

	first := sampleSnapshot()
	require.NoError(t, st.Save(ctx, first))

	second := first.Clone()
	second.ZoomLevel = 90
	require.NoError(t, st.Save(ctx, second))

	got, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90, got.ZoomLevel)

	// Still a single row: the store is one key, not a log.
	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestLoad_CorruptPayload(t *testing.T) {
	database := testutil.NewTestDB(t)
	st := NewSQLiteSnapshotStore(database)
	ctx := context.Background()

	_, err := database.Exec(
		`INSERT INTO snapshots (key, value, updated_at) VALUES ('state', '{broken', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = st.Load(ctx)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSnapshot)
}
