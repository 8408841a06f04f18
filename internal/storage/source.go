package storage

import (
	"context"
	"fmt"
)

// Source reads the weight line of a named weight set. A missing set reports
// ok=false so the caller falls back to random weights; store failures are
// returned as errors.
type Source struct {
	Store Store
	Name  string
}

func (s Source) WeightLine(ctx context.Context) (string, bool, error) {
	set, ok, err := s.Store.GetWeightSet(ctx, s.Name)
	if err != nil {
		return "", false, fmt.Errorf("load weight set %s: %w", s.Name, err)
	}
	if !ok {
		return "", false, nil
	}
	return set.Line, true, nil
}
