package panmixia

import (
	"fmt"
	"math/rand"
)

// Selector repeatedly produces a chosen parent from the population
// snapshot it was built from.
type Selector[T Genotype[T]] interface {
	Select() *Individual[T]
}

// SelectionStrategy builds a Selector bound to a population snapshot.
// The snapshot is owned by the selector from then on; the engine drops
// its own reference so nothing mutates the old generation while it is
// being sampled.
type SelectionStrategy[T Genotype[T]] interface {
	SelectFrom(population *Population[T]) Selector[T]
}

// TournamentSelection selects parents by sampling a fixed-size group
// uniformly at random with replacement and keeping the fittest.
// A group size of 1 degenerates to uniform random selection.
type TournamentSelection[T Genotype[T]] struct {
	groupSize int
	rng       *rand.Rand
}

func NewTournamentSelection[T Genotype[T]](groupSize int, rng *rand.Rand) (*TournamentSelection[T], error) {
	if groupSize < 1 {
		return nil, fmt.Errorf("tournament group size must be >= 1: %d", groupSize)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	return &TournamentSelection[T]{groupSize: groupSize, rng: rng}, nil
}

func (s *TournamentSelection[T]) SelectFrom(population *Population[T]) Selector[T] {
	return &tournamentSelector[T]{strategy: s, population: population}
}

type tournamentSelector[T Genotype[T]] struct {
	strategy   *TournamentSelection[T]
	population *Population[T]
}

func (sel *tournamentSelector[T]) selectOne() *Individual[T] {
	individuals := sel.population.Individuals()
	return individuals[sel.strategy.rng.Intn(len(individuals))]
}

// Select samples groupSize individuals with replacement and returns the
// one with the strictly greatest fitness among the sample. A later
// sample replaces the current best only on strict improvement, unknown
// fitness compares lower than any known fitness, and two unknowns never
// improve on each other. On a population that was never evaluated the
// first sample therefore always wins, which degenerates to uniform
// random choice.
func (sel *tournamentSelector[T]) Select() *Individual[T] {
	best := sel.selectOne()

	for i := 1; i < sel.strategy.groupSize; i++ {
		other := sel.selectOne()
		if improves(other, best) {
			best = other
		}
	}
	return best
}

// improves implements the strict-improvement ordering: unknown fitness
// loses to known fitness and never beats another unknown.
func improves[T Genotype[T]](candidate, best *Individual[T]) bool {
	candidateFitness, candidateKnown := candidate.Fitness()
	bestFitness, bestKnown := best.Fitness()
	switch {
	case !candidateKnown:
		return false
	case !bestKnown:
		return true
	default:
		return candidateFitness > bestFitness
	}
}
