package storage

import (
	"context"
	"sort"
	"sync"

	"panmixia/internal/model"
)

type MemoryStore struct {
	mu      sync.RWMutex
	runs    map[string]model.RunRecord
	history map[string][]model.GenerationStats
	best    map[string]model.GenotypeRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs = make(map[string]model.RunRecord)
	s.history = make(map[string][]model.GenerationStats)
	s.best = make(map[string]model.GenotypeRecord)
	return nil
}

func (s *MemoryStore) SaveRun(_ context.Context, run model.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs[run.ID] = run
	return nil
}

func (s *MemoryStore) GetRun(_ context.Context, id string) (model.RunRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	return run, ok, nil
}

func (s *MemoryStore) ListRuns(_ context.Context, limit int) ([]model.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]model.RunRecord, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].CreatedAtUTC == runs[j].CreatedAtUTC {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].CreatedAtUTC > runs[j].CreatedAtUTC
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

func (s *MemoryStore) SaveFitnessHistory(_ context.Context, runID string, history []model.GenerationStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]model.GenerationStats, len(history))
	copy(copied, history)
	s.history[runID] = copied
	return nil
}

func (s *MemoryStore) GetFitnessHistory(_ context.Context, runID string) ([]model.GenerationStats, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.history[runID]
	if !ok {
		return nil, false, nil
	}
	copied := make([]model.GenerationStats, len(history))
	copy(copied, history)
	return copied, true, nil
}

func (s *MemoryStore) SaveBestGenotype(_ context.Context, record model.GenotypeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.best[record.RunID] = record
	return nil
}

func (s *MemoryStore) GetBestGenotype(_ context.Context, runID string) (model.GenotypeRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.best[runID]
	return record, ok, nil
}
