package storage

import (
	"context"
	"errors"
	"sort"
	"sync"

	"perceptron/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	weightSets  map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.weightSets = make(map[string][]byte)
	return nil
}

func (s *MemoryStore) SaveWeightSet(_ context.Context, set model.WeightSet) error {
	payload, err := EncodeWeightSet(set)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("store is not initialized")
	}
	s.weightSets[set.Name] = payload
	return nil
}

func (s *MemoryStore) GetWeightSet(_ context.Context, name string) (model.WeightSet, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.weightSets[name]
	if !ok {
		return model.WeightSet{}, false, nil
	}
	set, err := DecodeWeightSet(payload)
	if err != nil {
		return model.WeightSet{}, false, err
	}
	return set, true, nil
}

func (s *MemoryStore) ListWeightSets(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.weightSets))
	for name := range s.weightSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) DeleteWeightSet(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.weightSets[name]; !ok {
		return false, nil
	}
	delete(s.weightSets, name)
	return true, nil
}
