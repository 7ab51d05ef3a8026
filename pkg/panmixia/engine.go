package panmixia

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	defaultRecombinationProbability = 0.8
	defaultMutationProbability      = 0.8
)

// ErrNotStarted is returned when the generation loop is driven before
// Start has populated the engine.
var ErrNotStarted = errors.New("engine has no population; call Start first")

// EngineConfig assembles an Engine. Zero probabilities select the 0.8
// defaults.
type EngineConfig[T Genotype[T]] struct {
	PopulationSize           int
	RecombinationProbability float64
	MutationProbability      float64
	Evolution                EvolutionConfig[T]
	Selection                SelectionStrategy[T]
	Rand                     *rand.Rand
}

// Engine owns the current population and drives the generational loop:
// Start fills a fresh population, Evaluate lazily computes fitness,
// Breed replaces the population with the next generation. The loop has
// no terminal state; the caller decides when to stop.
type Engine[T Genotype[T]] struct {
	popSize           int
	recombinationProb float64
	mutationProb      float64
	evolution         EvolutionConfig[T]
	selection         SelectionStrategy[T]
	rng               *rand.Rand
	population        *Population[T]
}

func NewEngine[T Genotype[T]](cfg EngineConfig[T]) (*Engine[T], error) {
	if cfg.PopulationSize <= 0 {
		return nil, fmt.Errorf("population size must be > 0: %d", cfg.PopulationSize)
	}
	if cfg.Evolution == nil {
		return nil, fmt.Errorf("evolution config is required")
	}
	if cfg.Selection == nil {
		return nil, fmt.Errorf("selection strategy is required")
	}
	if cfg.Rand == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if cfg.RecombinationProbability < 0 || cfg.RecombinationProbability > 1 {
		return nil, fmt.Errorf("recombination probability must be in [0, 1]: %v", cfg.RecombinationProbability)
	}
	if cfg.MutationProbability < 0 || cfg.MutationProbability > 1 {
		return nil, fmt.Errorf("mutation probability must be in [0, 1]: %v", cfg.MutationProbability)
	}
	if cfg.RecombinationProbability == 0 {
		cfg.RecombinationProbability = defaultRecombinationProbability
	}
	if cfg.MutationProbability == 0 {
		cfg.MutationProbability = defaultMutationProbability
	}

	return &Engine[T]{
		popSize:           cfg.PopulationSize,
		recombinationProb: cfg.RecombinationProbability,
		mutationProb:      cfg.MutationProbability,
		evolution:         cfg.Evolution,
		selection:         cfg.Selection,
		rng:               cfg.Rand,
	}, nil
}

// Start discards any existing population and grows a fresh one to the
// configured size. Every fitness is unknown afterwards.
func (e *Engine[T]) Start() {
	population := NewPopulation[T](e.popSize)
	population.Populate(e.popSize, e.evolution)
	e.population = population
}

// Evaluate computes and caches the fitness of every individual whose
// fitness is still unknown. Already-evaluated individuals are untouched,
// so repeated calls are cheap and safe.
func (e *Engine[T]) Evaluate() {
	if e.population == nil {
		return
	}
	for _, individual := range e.population.Individuals() {
		if _, ok := individual.Fitness(); !ok {
			individual.setFitness(e.evolution.Evaluate(individual.Genotype()))
		}
	}
}

// Breed consumes the current population through a selector built by the
// selection strategy and replaces it with a brand-new generation of the
// same size. Each child is either a recombination of two selected
// parents (with the recombination probability) or a clone of one, and is
// then mutated in place with the mutation probability. All fitness in
// the new generation is unknown.
func (e *Engine[T]) Breed() error {
	if e.population == nil {
		return ErrNotStarted
	}

	old := e.population
	e.population = nil
	selector := e.selection.SelectFrom(old)

	population := NewPopulation[T](e.popSize)
	for population.Size() < e.popSize {
		var genotype T
		if e.rng.Float64() < e.recombinationProb {
			parent1 := selector.Select()
			parent2 := selector.Select()
			genotype = e.evolution.Recombine(parent1.Genotype(), parent2.Genotype())
		} else {
			genotype = selector.Select().Genotype().Clone()
		}

		if e.rng.Float64() < e.mutationProb {
			e.evolution.Mutate(genotype)
		}

		population.Add(NewIndividual(genotype))
	}

	e.population = population
	return nil
}

// Population exposes the current population for inspection, or nil
// before Start.
func (e *Engine[T]) Population() *Population[T] {
	return e.population
}

// String renders the current population, empty before Start.
func (e *Engine[T]) String() string {
	if e.population == nil {
		return ""
	}
	return fmt.Sprintf("Population:\n%s", e.population)
}
