package problem

import (
	"fmt"
	"math/rand"

	"panmixia/pkg/panmixia"
)

// Config bundles a landscape with the binary operators into an
// EvolutionConfig for *panmixia.BinaryGenotype. It counts evaluations so
// callers can report work done.
type Config struct {
	length        int
	problem       Problem
	mutation      panmixia.MutationOperator[*panmixia.BinaryGenotype]
	recombination panmixia.RecombinationOperator[*panmixia.BinaryGenotype]
	rng           *rand.Rand

	evaluations int64
}

func NewConfig(length int, p Problem, mutation panmixia.MutationOperator[*panmixia.BinaryGenotype], recombination panmixia.RecombinationOperator[*panmixia.BinaryGenotype], rng *rand.Rand) (*Config, error) {
	if length <= 0 {
		return nil, fmt.Errorf("genotype length must be > 0: %d", length)
	}
	if p == nil {
		return nil, fmt.Errorf("problem is required")
	}
	if mutation == nil {
		return nil, fmt.Errorf("mutation operator is required")
	}
	if recombination == nil {
		return nil, fmt.Errorf("recombination operator is required")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	return &Config{length: length, problem: p, mutation: mutation, recombination: recombination, rng: rng}, nil
}

func (c *Config) Create() *panmixia.BinaryGenotype {
	return panmixia.RandomBinaryGenotype(c.length, c.rng)
}

func (c *Config) Mutate(target *panmixia.BinaryGenotype) {
	c.mutation.Mutate(target)
}

func (c *Config) Recombine(parent1, parent2 *panmixia.BinaryGenotype) *panmixia.BinaryGenotype {
	return c.recombination.Recombine(parent1, parent2)
}

func (c *Config) Evaluate(subject *panmixia.BinaryGenotype) float64 {
	c.evaluations++
	fitness, _ := c.problem.Evaluate(subject)
	return fitness
}

// Evaluations returns how many fitness evaluations have been performed.
func (c *Config) Evaluations() int64 {
	return c.evaluations
}
