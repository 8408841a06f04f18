package storage

import (
	"context"

	"perceptron/internal/model"
)

// Store persists named weight sets.
type Store interface {
	Init(ctx context.Context) error
	SaveWeightSet(ctx context.Context, set model.WeightSet) error
	GetWeightSet(ctx context.Context, name string) (model.WeightSet, bool, error)
	ListWeightSets(ctx context.Context) ([]string, error)
	DeleteWeightSet(ctx context.Context, name string) (bool, error)
}
