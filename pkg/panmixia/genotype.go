// Package panmixia is a generic evolutionary-optimization engine. The
// genotype representation, mutation and recombination operators, fitness
// function and selection strategy are all pluggable; the engine drives the
// generational loop of populate, evaluate and breed.
package panmixia

import "fmt"

// Genotype is the capability contract a candidate solution must satisfy:
// it renders as text and deep-clones to an independent value. T is the
// concrete genotype type itself (e.g. *BinaryGenotype).
type Genotype[T any] interface {
	fmt.Stringer
	Clone() T
}

// MutationOperator perturbs a genotype in place.
type MutationOperator[T Genotype[T]] interface {
	Mutate(target T)
}

// RecombinationOperator produces one child genotype from two parents.
// Both parents are left untouched.
type RecombinationOperator[T Genotype[T]] interface {
	Recombine(parent1, parent2 T) T
}

// GenotypeFactory produces freshly initialized genotypes, randomly
// initialized by convention.
type GenotypeFactory[T Genotype[T]] interface {
	Create() T
}

// EvolutionConfig bundles the problem-specific capabilities for one
// concrete genotype type: creation, mutation, recombination and fitness
// evaluation. Evaluate must be deterministic and side-effect-free for a
// given genotype value; the engine memoizes its results. Higher fitness
// is better.
type EvolutionConfig[T Genotype[T]] interface {
	GenotypeFactory[T]
	Mutate(target T)
	Recombine(parent1, parent2 T) T
	Evaluate(subject T) float64
}
