package problem

import (
	"fmt"

	"panmixia/pkg/panmixia"
)

// DeceptiveTrap partitions the genotype into blocks of k bits. A fully
// set block scores k; any other block scores k minus the set bits minus
// one, so the landscape leads hill climbers away from the optimum.
type DeceptiveTrap int

func (dt DeceptiveTrap) Name() string {
	return fmt.Sprintf("trap%d", int(dt))
}

func (dt DeceptiveTrap) Evaluate(g *panmixia.BinaryGenotype) (fitness float64, optimal bool) {
	k := int(dt)
	optimal = true

	for i := 0; i < g.Len()/k; i++ {
		t := 0
		for j := 0; j < k; j++ {
			if g.Bit(i*k + j) {
				t++
			}
		}
		if t == k {
			fitness += float64(t)
		} else {
			fitness += float64(k - t - 1)
			optimal = false
		}
	}
	return fitness, optimal
}
