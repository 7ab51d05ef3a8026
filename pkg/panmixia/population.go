package panmixia

import (
	"fmt"
	"strings"
)

// Individual owns exactly one genotype together with its lazily computed
// fitness. Fitness is memoized: once set it is never recomputed for the
// same Individual; breeding always wraps children in fresh Individuals.
type Individual[T Genotype[T]] struct {
	genotype T
	fitness  float64
	known    bool
}

func NewIndividual[T Genotype[T]](genotype T) *Individual[T] {
	return &Individual[T]{genotype: genotype}
}

func (ind *Individual[T]) Genotype() T {
	return ind.genotype
}

// Fitness returns the cached fitness and whether it has been computed.
// Unknown fitness is an expected state, not an error.
func (ind *Individual[T]) Fitness() (float64, bool) {
	return ind.fitness, ind.known
}

func (ind *Individual[T]) setFitness(fitness float64) {
	ind.fitness = fitness
	ind.known = true
}

// String renders the genotype text, followed by " fitness = <value>" when
// the fitness is known.
func (ind *Individual[T]) String() string {
	if ind.known {
		return fmt.Sprintf("%s fitness = %v", ind.genotype, ind.fitness)
	}
	return ind.genotype.String()
}

// Population is an ordered, growable collection of Individuals. The order
// carries no meaning for selection but is preserved for iteration and
// rendering.
type Population[T Genotype[T]] struct {
	individuals []*Individual[T]
}

func NewPopulation[T Genotype[T]](capacity int) *Population[T] {
	return &Population[T]{individuals: make([]*Individual[T], 0, capacity)}
}

// Populate grows the population with freshly created genotypes until it
// holds size individuals. It never shrinks; calling it on an already-full
// population is a no-op.
func (p *Population[T]) Populate(size int, factory GenotypeFactory[T]) {
	for len(p.individuals) < size {
		p.individuals = append(p.individuals, NewIndividual(factory.Create()))
	}
}

// Add appends one individual.
func (p *Population[T]) Add(individual *Individual[T]) {
	p.individuals = append(p.individuals, individual)
}

func (p *Population[T]) Size() int {
	return len(p.individuals)
}

// Individuals returns the individuals in insertion order. The slice is
// shared with the population; callers iterate, they do not reshape it.
func (p *Population[T]) Individuals() []*Individual[T] {
	return p.individuals
}

// Best returns the individual with the greatest known fitness, or false
// if no fitness has been computed yet.
func (p *Population[T]) Best() (*Individual[T], bool) {
	var best *Individual[T]
	for _, individual := range p.individuals {
		if _, ok := individual.Fitness(); !ok {
			continue
		}
		if best == nil {
			best = individual
			continue
		}
		bestFitness, _ := best.Fitness()
		fitness, _ := individual.Fitness()
		if fitness > bestFitness {
			best = individual
		}
	}
	return best, best != nil
}

// String renders one line per individual, then a summary line
// "best = <max>, avg. = <mean>" computed over the individuals with known
// fitness. The summary is omitted entirely while nothing is evaluated.
func (p *Population[T]) String() string {
	var sb strings.Builder
	var best, sum float64
	num := 0

	for _, individual := range p.individuals {
		sb.WriteString(individual.String())
		sb.WriteByte('\n')

		if fitness, ok := individual.Fitness(); ok {
			sum += fitness
			if num == 0 || fitness > best {
				best = fitness
			}
			num++
		}
	}

	if num > 0 {
		fmt.Fprintf(&sb, "best = %v, avg. = %v", best, sum/float64(num))
	}
	return sb.String()
}
