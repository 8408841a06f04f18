//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStoreWeightSetRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "perceptron.db")

	store := NewSQLiteStore(dbPath)
	require.NoError(t, store.Init(ctx))
	t.Cleanup(func() {
		_ = store.Close()
	})

	set := NewWeightSet("w1", []float64{0.1, 0.2, 0.3})
	require.NoError(t, store.SaveWeightSet(ctx, set))

	loaded, ok, err := store.GetWeightSet(ctx, "w1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, set, loaded)

	set.Line = "1 2 3"
	require.NoError(t, store.SaveWeightSet(ctx, set))
	loaded, ok, err = store.GetWeightSet(ctx, "w1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1 2 3", loaded.Line)

	require.NoError(t, store.SaveWeightSet(ctx, NewWeightSet("w0", []float64{1})))
	names, err := store.ListWeightSets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"w0", "w1"}, names)

	deleted, err := store.DeleteWeightSet(ctx, "w0")
	require.NoError(t, err)
	assert.True(t, deleted)
	_, ok, err = store.GetWeightSet(ctx, "w0")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "perceptron.db")

	store := NewSQLiteStore(dbPath)
	require.NoError(t, store.Init(ctx))
	require.NoError(t, store.SaveWeightSet(ctx, NewWeightSet("w", []float64{0.5})))
	require.NoError(t, store.Close())

	reopened, err := NewStore("sqlite", dbPath)
	require.NoError(t, err)
	require.NoError(t, reopened.Init(ctx))
	t.Cleanup(func() {
		_ = CloseIfSupported(reopened)
	})
	_, ok, err := reopened.GetWeightSet(ctx, "w")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sqlite", DefaultStoreKind())
}

func TestSQLiteStoreRequiresInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "x.db"))
	_, _, err := store.GetWeightSet(context.Background(), "w")
	require.Error(t, err)
}
