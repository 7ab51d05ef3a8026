// Package bitset provides a dense, fixed-length bit-string backed by
// 64-bit words.
package bitset

import (
	"fmt"
	"math/bits"
	"math/rand"
	"strings"
)

const (
	shift = 6
	mask  = 63
)

// BitSet is a fixed-length sequence of bits. The length is set at
// construction and never changes.
type BitSet struct {
	length int
	words  []uint64
}

// New returns a BitSet of the given length with every bit clear.
func New(length int) *BitSet {
	return &BitSet{length: length, words: make([]uint64, (length+mask)>>shift)}
}

// NewRandom returns a BitSet of the given length with every bit drawn
// independently from Bernoulli(0.5) using rng.
func NewRandom(length int, rng *rand.Rand) *BitSet {
	b := New(length)
	for i := range b.words {
		b.words[i] = rng.Uint64()
	}
	b.clearTail()
	return b
}

// NewOnes returns a BitSet of the given length with every bit set.
func NewOnes(length int) *BitSet {
	b := New(length)
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
	b.clearTail()
	return b
}

// FromString parses a string of '0' and '1' characters, index 0 first.
func FromString(s string) (*BitSet, error) {
	b := New(len(s))
	for i, c := range s {
		switch c {
		case '1':
			b.Set(i)
		case '0':
		default:
			return nil, fmt.Errorf("bitset: invalid character %q at position %d", c, i)
		}
	}
	return b, nil
}

// Len returns the length of the bit-string.
func (b *BitSet) Len() int {
	return b.length
}

// Has reports whether the bit at pos is set.
func (b *BitSet) Has(pos int) bool {
	return b.words[pos>>shift]&(1<<(uint(pos)&mask)) != 0
}

// Set sets the bit at pos to one.
func (b *BitSet) Set(pos int) {
	b.words[pos>>shift] |= 1 << (uint(pos) & mask)
}

// Clear sets the bit at pos to zero.
func (b *BitSet) Clear(pos int) {
	b.words[pos>>shift] &^= 1 << (uint(pos) & mask)
}

// Flip inverts the bit at pos.
func (b *BitSet) Flip(pos int) {
	b.words[pos>>shift] ^= 1 << (uint(pos) & mask)
}

// Put sets the bit at pos to the given value.
func (b *BitSet) Put(pos int, value bool) {
	if value {
		b.Set(pos)
	} else {
		b.Clear(pos)
	}
}

// OnesCount returns the number of set bits.
func (b *BitSet) OnesCount() int {
	total := 0
	for _, word := range b.words {
		total += bits.OnesCount64(word)
	}
	return total
}

// Clone returns an independent copy.
func (b *BitSet) Clone() *BitSet {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &BitSet{length: b.length, words: words}
}

// Equal reports whether both bit-strings have the same length and bits.
func (b *BitSet) Equal(other *BitSet) bool {
	if b.length != other.length {
		return false
	}
	for i, word := range b.words {
		if word != other.words[i] {
			return false
		}
	}
	return true
}

// String renders one character per bit, '1' for set and '0' for clear,
// index 0 first.
func (b *BitSet) String() string {
	var sb strings.Builder
	sb.Grow(b.length)
	for i := 0; i < b.length; i++ {
		if b.Has(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// clearTail zeroes the unused high bits of the last word so that
// OnesCount and Equal stay length-accurate.
func (b *BitSet) clearTail() {
	if rem := uint(b.length) & mask; rem != 0 {
		b.words[len(b.words)-1] &= (1 << rem) - 1
	}
}
