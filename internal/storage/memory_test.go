package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreWeightSetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	input := NewWeightSet("w1", []float64{0.5, -0.25, 1})
	require.NoError(t, store.SaveWeightSet(ctx, input))

	output, ok, err := store.GetWeightSet(ctx, "w1")
	require.NoError(t, err)
	require.True(t, ok, "expected persisted weight set")
	assert.Equal(t, input, output)

	weights, err := Weights(output)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -0.25, 1}, weights)
}

func TestMemoryStoreListAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	for _, name := range []string{"b", "a", "c"} {
		require.NoError(t, store.SaveWeightSet(ctx, NewWeightSet(name, []float64{1})))
	}
	names, err := store.ListWeightSets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)

	deleted, err := store.DeleteWeightSet(ctx, "b")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = store.DeleteWeightSet(ctx, "b")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, ok, err := store.GetWeightSet(ctx, "b")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreRequiresInit(t *testing.T) {
	store := NewMemoryStore()
	err := store.SaveWeightSet(context.Background(), NewWeightSet("w", []float64{1}))
	require.Error(t, err)
}
