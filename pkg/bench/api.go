// Package bench runs the bundled benchmark landscapes through the
// evolution engine and persists run artifacts.
package bench

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"panmixia/internal/model"
	"panmixia/internal/problem"
	"panmixia/internal/storage"
	"panmixia/pkg/panmixia"
)

const defaultDBPath = "panmixia.db"

type Options struct {
	StoreKind string
	DBPath    string
}

// Client is the run-orchestration facade over the engine and the
// artifact store.
type Client struct {
	store storage.Store
}

type RunRequest struct {
	Problem                  string
	Length                   int
	PopulationSize           int
	Generations              int
	Seed                     int64
	GroupSize                int
	CrossoverPoints          int
	BitFlipProbability       float64
	RecombinationProbability float64
	MutationProbability      float64
}

type RunSummary struct {
	RunID            string
	Problem          string
	BestByGeneration []float64
	FinalBestFitness float64
	BestGenotype     string
	Evaluations      int64
	ReachedOptimum   bool
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}
	return &Client{store: store}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	return c.store.Init(ctx)
}

// Run evolves the requested landscape for a fixed number of generations
// and persists the run record, its fitness history and the best final
// genotype. Zero-valued request fields select defaults.
func (c *Client) Run(ctx context.Context, req RunRequest) (RunSummary, error) {
	if req.Problem == "" {
		req.Problem = "onemax"
	}
	if req.Length <= 0 {
		req.Length = 32
	}
	if req.PopulationSize <= 0 {
		req.PopulationSize = 50
	}
	if req.Generations <= 0 {
		req.Generations = 100
	}
	if req.GroupSize <= 0 {
		req.GroupSize = 2
	}
	if req.CrossoverPoints <= 0 {
		req.CrossoverPoints = 2
	}
	if req.BitFlipProbability <= 0 {
		req.BitFlipProbability = 0.02
	}

	landscape, err := problem.FromName(req.Problem)
	if err != nil {
		return RunSummary{}, err
	}

	mutation, err := panmixia.NewBitFlipMutation(req.BitFlipProbability, rand.New(rand.NewSource(req.Seed+1000)))
	if err != nil {
		return RunSummary{}, err
	}
	crossover, err := panmixia.NewNPointCrossover(req.CrossoverPoints, rand.New(rand.NewSource(req.Seed+2000)))
	if err != nil {
		return RunSummary{}, err
	}
	config, err := problem.NewConfig(req.Length, landscape, mutation, crossover, rand.New(rand.NewSource(req.Seed+3000)))
	if err != nil {
		return RunSummary{}, err
	}
	selection, err := panmixia.NewTournamentSelection[*panmixia.BinaryGenotype](req.GroupSize, rand.New(rand.NewSource(req.Seed+4000)))
	if err != nil {
		return RunSummary{}, err
	}
	engine, err := panmixia.NewEngine(panmixia.EngineConfig[*panmixia.BinaryGenotype]{
		PopulationSize:           req.PopulationSize,
		RecombinationProbability: req.RecombinationProbability,
		MutationProbability:      req.MutationProbability,
		Evolution:                config,
		Selection:                selection,
		Rand:                     rand.New(rand.NewSource(req.Seed + 5000)),
	})
	if err != nil {
		return RunSummary{}, err
	}

	engine.Start()
	history := make([]model.GenerationStats, 0, req.Generations)
	bestByGeneration := make([]float64, 0, req.Generations)
	var finalBest *panmixia.Individual[*panmixia.BinaryGenotype]

	for generation := 1; generation <= req.Generations; generation++ {
		if err := ctx.Err(); err != nil {
			return RunSummary{}, err
		}

		engine.Evaluate()
		best, mean, ok := summarize(engine.Population())
		if !ok {
			return RunSummary{}, fmt.Errorf("no evaluated individuals at generation %d", generation)
		}
		history = append(history, model.GenerationStats{
			Generation:  generation,
			BestFitness: best,
			MeanFitness: mean,
		})
		bestByGeneration = append(bestByGeneration, best)

		if generation == req.Generations {
			finalBest, _ = engine.Population().Best()
			break
		}
		if err := engine.Breed(); err != nil {
			return RunSummary{}, err
		}
	}

	finalFitness, _ := finalBest.Fitness()
	_, reachedOptimum := landscape.Evaluate(finalBest.Genotype())

	now := time.Now().UTC()
	runID := uuid.NewString()
	run := model.RunRecord{
		VersionedRecord:          versioned(),
		ID:                       runID,
		Problem:                  req.Problem,
		GenotypeLength:           req.Length,
		PopulationSize:           req.PopulationSize,
		Generations:              req.Generations,
		Seed:                     req.Seed,
		GroupSize:                req.GroupSize,
		CrossoverPoints:          req.CrossoverPoints,
		BitFlipProbability:       req.BitFlipProbability,
		RecombinationProbability: req.RecombinationProbability,
		MutationProbability:      req.MutationProbability,
		CreatedAtUTC:             now.Format(time.RFC3339Nano),
		FinalBestFitness:         finalFitness,
		Evaluations:              config.Evaluations(),
		ReachedOptimum:           reachedOptimum,
	}
	if err := c.store.SaveRun(ctx, run); err != nil {
		return RunSummary{}, err
	}
	if err := c.store.SaveFitnessHistory(ctx, runID, history); err != nil {
		return RunSummary{}, err
	}
	bestRecord := model.GenotypeRecord{
		VersionedRecord: versioned(),
		RunID:           runID,
		Bits:            finalBest.Genotype().String(),
		Fitness:         finalFitness,
	}
	if err := c.store.SaveBestGenotype(ctx, bestRecord); err != nil {
		return RunSummary{}, err
	}

	return RunSummary{
		RunID:            runID,
		Problem:          req.Problem,
		BestByGeneration: bestByGeneration,
		FinalBestFitness: finalFitness,
		BestGenotype:     bestRecord.Bits,
		Evaluations:      config.Evaluations(),
		ReachedOptimum:   reachedOptimum,
	}, nil
}

// Runs lists persisted runs, newest first.
func (c *Client) Runs(ctx context.Context, limit int) ([]model.RunRecord, error) {
	return c.store.ListRuns(ctx, limit)
}

// FitnessHistory returns the per-generation fitness summary of a run.
func (c *Client) FitnessHistory(ctx context.Context, runID string) ([]model.GenerationStats, error) {
	history, ok, err := c.store.GetFitnessHistory(ctx, runID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no fitness history for run %s", runID)
	}
	return history, nil
}

// BestGenotype returns the persisted best genotype of a run.
func (c *Client) BestGenotype(ctx context.Context, runID string) (model.GenotypeRecord, error) {
	record, ok, err := c.store.GetBestGenotype(ctx, runID)
	if err != nil {
		return model.GenotypeRecord{}, err
	}
	if !ok {
		return model.GenotypeRecord{}, fmt.Errorf("no best genotype for run %s", runID)
	}
	return record, nil
}

func summarize(population *panmixia.Population[*panmixia.BinaryGenotype]) (best, mean float64, ok bool) {
	sum := 0.0
	count := 0
	for _, individual := range population.Individuals() {
		fitness, known := individual.Fitness()
		if !known {
			continue
		}
		if count == 0 || fitness > best {
			best = fitness
		}
		sum += fitness
		count++
	}
	if count == 0 {
		return 0, 0, false
	}
	return best, sum / float64(count), true
}

func versioned() model.VersionedRecord {
	return model.VersionedRecord{
		SchemaVersion: storage.CurrentSchemaVersion,
		CodecVersion:  storage.CurrentCodecVersion,
	}
}
