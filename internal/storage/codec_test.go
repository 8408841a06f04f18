package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perceptron/internal/model"
	"perceptron/internal/perceptron"
)

func TestNewWeightSetGeneratesName(t *testing.T) {
	set := NewWeightSet("  ", []float64{1, 2})
	_, err := uuid.Parse(set.Name)
	require.NoError(t, err, "expected uuid name, got %q", set.Name)
	assert.Equal(t, 2, set.Count)
	assert.Equal(t, "1 2", set.Line)
}

func TestWeightSetCodecRoundTrip(t *testing.T) {
	set := NewWeightSet("w", []float64{0.1, 0.2})
	data, err := EncodeWeightSet(set)
	require.NoError(t, err)

	decoded, err := DecodeWeightSet(data)
	require.NoError(t, err)
	assert.Equal(t, set, decoded)
}

func TestDecodeWeightSetRejectsVersionMismatch(t *testing.T) {
	set := NewWeightSet("w", []float64{0.1})
	set.CodecVersion = CurrentCodecVersion + 1
	data, err := EncodeWeightSet(set)
	require.NoError(t, err)

	_, err = DecodeWeightSet(data)
	require.ErrorIs(t, err, ErrVersionMismatch)
}

func TestWeightsValidatesLine(t *testing.T) {
	set := model.WeightSet{Name: "bad", Count: 2, Line: "1 nope"}
	_, err := Weights(set)
	require.ErrorIs(t, err, perceptron.ErrMalformedToken)

	set.Line = "1 2 3"
	_, err = Weights(set)
	require.ErrorIs(t, err, ErrCountMismatch)
}
