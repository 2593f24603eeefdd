package record_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinmix/record"
)

func TestSQLiteStore_RunLifecycle(t *testing.T) {
	ctx := context.Background()
	store, err := record.OpenSQLite(ctx, filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	info := record.RunInfo{
		Model: "torus-heat-bath", N: 8, Trials: 2,
		Low: 0.1, High: 0.2, Step: 0.1, Seed: 42,
		StartedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	sink, err := store.BeginRun(ctx, info)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, sink.RunID())

	want := []record.Record{
		{Param: 0.1, Iterations: 100, Duration: 3 * time.Millisecond},
		{Param: 0.1, Iterations: 120, Duration: 4 * time.Millisecond},
		{Param: 0.2, Iterations: 300, Duration: 9 * time.Millisecond},
	}
	for _, r := range want {
		require.NoError(t, sink.Append(r))
	}
	require.NoError(t, sink.Close())

	got, err := store.Records(ctx, sink.RunID())
	require.NoError(t, err)
	require.Equal(t, want, got)

	runs, err := store.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, sink.RunID(), runs[0].ID)
	require.Equal(t, "torus-heat-bath", runs[0].Model)
	require.Equal(t, int64(42), runs[0].Seed)
	require.True(t, info.StartedAt.Equal(runs[0].StartedAt))

	_, err = store.Records(ctx, uuid.New())
	require.ErrorIs(t, err, record.ErrUnknownRun)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.db")

	store, err := record.OpenSQLite(ctx, path)
	require.NoError(t, err)
	sink, err := store.BeginRun(ctx, record.RunInfo{Model: "m", N: 2, Trials: 1, Low: 0, High: 0, Step: 1})
	require.NoError(t, err)
	require.NoError(t, sink.Append(record.Record{Param: 0, Iterations: 3}))
	require.NoError(t, sink.Close())
	require.NoError(t, store.Close())

	store, err = record.OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer store.Close()
	got, err := store.Records(ctx, sink.RunID())
	require.NoError(t, err)
	require.Len(t, got, 1)
}
