package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/empowerher/empowerher/internal/database/testutil"
	"github.com/empowerher/empowerher/internal/models"
)

func TestDatabaseSinkRoundTrip(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	sink := NewDatabaseSink(db)
	ctx := context.Background()

	key := StateKey("user-1")

	_, found, err := sink.Load(ctx, key)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, sink.Save(ctx, key, []byte(`{"is_logged_in":true}`)))

	blob, found, err := sink.Load(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, `{"is_logged_in":true}`, string(blob))

	// Save is an upsert, not an insert.
	require.NoError(t, sink.Save(ctx, key, []byte(`{"is_logged_in":false}`)))
	blob, found, err = sink.Load(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, `{"is_logged_in":false}`, string(blob))

	require.NoError(t, sink.Delete(ctx, key))
	_, found, err = sink.Load(ctx, key)
	require.NoError(t, err)
	require.False(t, found)

	// Deleting a missing key stays silent.
	require.NoError(t, sink.Delete(ctx, key))
}

func TestDatabaseSinkPruneStale(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	sink := NewDatabaseSink(db)
	ctx := context.Background()

	require.NoError(t, sink.Save(ctx, StateKey("old"), []byte(`{}`)))
	require.NoError(t, sink.Save(ctx, StateKey("fresh"), []byte(`{}`)))

	stale := time.Now().Add(-90 * 24 * time.Hour)
	require.NoError(t, db.Model(&models.StateEntry{}).
		Where("key = ?", StateKey("old")).
		Update("updated_at", stale).Error)

	pruned, err := sink.PruneStale(ctx, time.Now().Add(-30*24*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, pruned)

	_, found, err := sink.Load(ctx, StateKey("fresh"))
	require.NoError(t, err)
	require.True(t, found)
}

func TestStateKeyNamespacing(t *testing.T) {
	require.Equal(t, "empower-her-storage", StateKey(""))
	require.Equal(t, "empower-her-storage:abc", StateKey("abc"))
}
