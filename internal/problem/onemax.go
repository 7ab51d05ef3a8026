package problem

import "panmixia/pkg/panmixia"

// OneMax scores the fraction of set bits; the all-ones genotype is the
// unique optimum.
type OneMax struct{}

func (OneMax) Name() string {
	return "onemax"
}

func (OneMax) Evaluate(g *panmixia.BinaryGenotype) (float64, bool) {
	ones := g.OnesCount()
	return float64(ones) / float64(g.Len()), ones == g.Len()
}
