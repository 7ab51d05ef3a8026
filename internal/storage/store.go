package storage

import (
	"context"

	"panmixia/internal/model"
)

// Store defines persistence operations for run artifacts. Populations
// themselves are never persisted; a run leaves behind its summary, its
// per-generation fitness history and its best genotype.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run model.RunRecord) error
	GetRun(ctx context.Context, id string) (model.RunRecord, bool, error)
	ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error)
	SaveFitnessHistory(ctx context.Context, runID string, history []model.GenerationStats) error
	GetFitnessHistory(ctx context.Context, runID string) ([]model.GenerationStats, bool, error)
	SaveBestGenotype(ctx context.Context, record model.GenotypeRecord) error
	GetBestGenotype(ctx context.Context, runID string) (model.GenotypeRecord, bool, error)
}
