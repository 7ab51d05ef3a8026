package panmixia

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"panmixia/internal/bitset"
)

// BinaryGenotype is a fixed-length bit-string genotype. The length never
// changes after construction; mutation flips bits in place.
type BinaryGenotype struct {
	bits *bitset.BitSet
}

// RandomBinaryGenotype returns a genotype of size bits, each drawn
// independently from Bernoulli(0.5).
func RandomBinaryGenotype(size int, rng *rand.Rand) *BinaryGenotype {
	return &BinaryGenotype{bits: bitset.NewRandom(size, rng)}
}

// AllZerosGenotype returns a genotype of size clear bits.
func AllZerosGenotype(size int) *BinaryGenotype {
	return &BinaryGenotype{bits: bitset.New(size)}
}

// AllOnesGenotype returns a genotype of size set bits.
func AllOnesGenotype(size int) *BinaryGenotype {
	return &BinaryGenotype{bits: bitset.NewOnes(size)}
}

// ParseBinaryGenotype parses the textual rendering produced by String.
func ParseBinaryGenotype(s string) (*BinaryGenotype, error) {
	bits, err := bitset.FromString(s)
	if err != nil {
		return nil, err
	}
	return &BinaryGenotype{bits: bits}, nil
}

func (g *BinaryGenotype) Len() int {
	return g.bits.Len()
}

func (g *BinaryGenotype) Bit(pos int) bool {
	return g.bits.Has(pos)
}

func (g *BinaryGenotype) SetBit(pos int, value bool) {
	g.bits.Put(pos, value)
}

func (g *BinaryGenotype) FlipBit(pos int) {
	g.bits.Flip(pos)
}

// OnesCount returns the number of set bits.
func (g *BinaryGenotype) OnesCount() int {
	return g.bits.OnesCount()
}

// Clone returns an independent deep copy. Breeding relies on this to
// leave parents in the old population untouched.
func (g *BinaryGenotype) Clone() *BinaryGenotype {
	return &BinaryGenotype{bits: g.bits.Clone()}
}

// String renders one character per bit, '1' for set and '0' for clear,
// index 0 first, with no separators.
func (g *BinaryGenotype) String() string {
	return g.bits.String()
}

// BitFlipMutation flips each bit of a target independently with
// probability p, in O(expected flips) time instead of O(length).
type BitFlipMutation struct {
	prob float64
	rng  *rand.Rand
}

// NewBitFlipMutation validates 0 < prob < 1. At prob = 0 the skip
// formula divides by ln(1) = 0, so a zero probability is a contract
// violation rather than a no-op.
func NewBitFlipMutation(prob float64, rng *rand.Rand) (*BitFlipMutation, error) {
	if prob <= 0 || prob >= 1 {
		return nil, fmt.Errorf("bit-flip probability must be in (0, 1): %v", prob)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	return &BitFlipMutation{prob: prob, rng: rng}, nil
}

// Mutate flips bits of the target in place. Instead of testing every bit
// it computes the gap to the next flipped bit directly:
//
//	offset = floor( ln(1-u) / ln(1-p) )
//
// where u is uniform in [0,1). The gap between successive Bernoulli(p)
// successes is geometrically distributed, so the offset counts the
// non-flipped bits before the next flip. A step too large for the
// remaining length (including +Inf) terminates the pass.
func (m *BitFlipMutation) Mutate(target *BinaryGenotype) {
	denom := math.Log(1 - m.prob)
	length := target.Len()
	i := 0
	for {
		num := math.Log(1 - m.rng.Float64())
		step := num / denom
		if step >= float64(length-i) {
			return
		}
		i += int(step)
		if i >= length {
			return
		}
		target.FlipBit(i)
		i++
	}
}

// NPointCrossover exchanges segments between two parents at n crossover
// points, producing a child that starts with parent 1's material.
type NPointCrossover struct {
	points int
	rng    *rand.Rand
}

func NewNPointCrossover(points int, rng *rand.Rand) (*NPointCrossover, error) {
	if points < 1 {
		return nil, fmt.Errorf("crossover point count must be >= 1: %d", points)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	return &NPointCrossover{points: points, rng: rng}, nil
}

// Recombine draws the crossover points uniformly from [1, range) where
// range is the shorter parent length; points may repeat. An odd point
// count is padded with len(parent1) so the final segment is closed. The
// child is a clone of parent 1 with every second segment overwritten by
// parent 2's bits. Unchecked caller preconditions: both parents hold at
// least two bits (the uniform draw panics otherwise), and with an odd
// point count parent 1 is no longer than parent 2, since the closing
// segment reads parent 2 up to parent 1's length.
func (c *NPointCrossover) Recombine(parent1, parent2 *BinaryGenotype) *BinaryGenotype {
	span := parent1.Len()
	if parent2.Len() < span {
		span = parent2.Len()
	}

	points := make([]int, c.points, c.points+1)
	for i := range points {
		points[i] = 1 + c.rng.Intn(span-1)
	}
	sort.Ints(points)
	if c.points%2 == 1 {
		points = append(points, parent1.Len())
	}

	child := parent1.Clone()
	for i := 0; i < len(points)/2; i++ {
		from := points[i*2]
		to := points[i*2+1]
		for j := from; j < to; j++ {
			child.SetBit(j, parent2.Bit(j))
		}
	}
	return child
}
