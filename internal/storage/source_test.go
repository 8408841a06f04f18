package storage

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perceptron/internal/model"
	"perceptron/internal/perceptron"
)

func TestSourceFeedsShellConstruction(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))
	require.NoError(t, store.SaveWeightSet(ctx, NewWeightSet("w", []float64{0.4, 0.6})))

	s, origin, err := perceptron.NewFromSource(ctx, 2, Source{Store: store, Name: "w"}, nil)
	require.NoError(t, err)
	assert.Equal(t, perceptron.OriginSource, origin)
	assert.Equal(t, []float64{0.4, 0.6}, s.Weights())

	s, origin, err = perceptron.NewFromSource(ctx, 3, Source{Store: store, Name: "w"}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, perceptron.OriginFallbackCount, origin)
	assert.Len(t, s.Weights(), 3)

	_, origin, err = perceptron.NewFromSource(ctx, 2, Source{Store: store, Name: "missing"}, nil)
	require.NoError(t, err)
	assert.Equal(t, perceptron.OriginFallbackMissing, origin)
}

type brokenStore struct{ Store }

func (brokenStore) GetWeightSet(context.Context, string) (model.WeightSet, bool, error) {
	return model.WeightSet{}, false, assert.AnError
}

func TestSourcePropagatesStoreErrors(t *testing.T) {
	_, _, err := perceptron.NewFromSource(context.Background(), 2, Source{Store: brokenStore{}, Name: "w"}, nil)
	require.ErrorIs(t, err, assert.AnError)
}
