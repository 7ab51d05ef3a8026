package problem

import "panmixia/pkg/panmixia"

// HIFF is the hierarchical if-and-only-if landscape: every uniform block
// of 2, 4, 8, ... bits contributes its size. Both all-zeros and all-ones
// are optima. Any length is accepted; trailing bits that do not fill a
// complete block are not scored.
type HIFF struct{}

func (HIFF) Name() string {
	return "hiff"
}

func (HIFF) Evaluate(g *panmixia.BinaryGenotype) (fitness float64, optimal bool) {
	optimal = true

	for blockSize := 2; blockSize <= g.Len(); blockSize *= 2 {
		for i := 0; i+blockSize <= g.Len(); i += blockSize {
			first := g.Bit(i)
			same := true
			for j := i + 1; j < i+blockSize; j++ {
				if g.Bit(j) != first {
					same = false
					optimal = false
					break
				}
			}
			if same {
				fitness += float64(blockSize)
			}
		}
	}
	return fitness, optimal
}
