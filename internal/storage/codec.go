package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"perceptron/internal/model"
	"perceptron/internal/perceptron"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var (
	ErrVersionMismatch = errors.New("record version mismatch")
	ErrCountMismatch   = errors.New("weight count does not match weight line")
)

// NewWeightSet packs weights into a versioned record. An empty name is
// replaced with a random UUID.
func NewWeightSet(name string, weights []float64) model.WeightSet {
	name = strings.TrimSpace(name)
	if name == "" {
		name = uuid.NewString()
	}
	return model.WeightSet{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		Name:            name,
		Count:           len(weights),
		Line:            perceptron.FormatWeightLine(weights),
	}
}

// Weights parses the stored line back into values.
func Weights(set model.WeightSet) ([]float64, error) {
	weights, err := perceptron.ParseWeightLine(set.Line)
	if err != nil {
		return nil, fmt.Errorf("weight set %s: %w", set.Name, err)
	}
	if len(weights) != set.Count {
		return nil, fmt.Errorf("weight set %s: %w: count=%d line=%d", set.Name, ErrCountMismatch, set.Count, len(weights))
	}
	return weights, nil
}

func EncodeWeightSet(set model.WeightSet) ([]byte, error) {
	return json.Marshal(set)
}

func DecodeWeightSet(data []byte) (model.WeightSet, error) {
	var set model.WeightSet
	if err := json.Unmarshal(data, &set); err != nil {
		return model.WeightSet{}, err
	}
	if err := checkVersion(set.VersionedRecord); err != nil {
		return model.WeightSet{}, err
	}
	return set, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return fmt.Errorf("%w: schema=%d codec=%d", ErrVersionMismatch, v.SchemaVersion, v.CodecVersion)
	}
	return nil
}
