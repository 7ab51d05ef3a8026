// Package problem provides benchmark fitness landscapes over binary
// genotypes, plus an adapter that bundles a landscape with the binary
// operators into an engine-ready evolution config.
package problem

import (
	"fmt"

	"panmixia/pkg/panmixia"
)

// Problem scores a binary genotype. Higher is better; optimal reports
// whether the genotype is a global optimum of the landscape.
type Problem interface {
	Name() string
	Evaluate(g *panmixia.BinaryGenotype) (fitness float64, optimal bool)
}

// FromName resolves a landscape by its registry name.
func FromName(name string) (Problem, error) {
	switch name {
	case "onemax":
		return OneMax{}, nil
	case "trap":
		return DeceptiveTrap(5), nil
	case "hiff":
		return HIFF{}, nil
	default:
		return nil, fmt.Errorf("unknown problem: %s", name)
	}
}

// Names lists the registered landscape names.
func Names() []string {
	return []string{"onemax", "trap", "hiff"}
}
