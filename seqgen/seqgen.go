// Package seqgen generates synthetic peptide sequences that are presumed, by
// positional heuristics, to fold into specific structural motifs: amphipathic
// helices, kinked helices, oblique (hydrophobicity gradient) sequences,
// centrosymmetric block sequences and unconstrained random sequences.
//
// All generators are seeded through an explicit *rand.Rand so outputs are
// reproducible. Invalid parameters are rejected at construction time, not at
// generation time.
package seqgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// Placeholder marking a position not yet assigned in a template buffer
const placeholder = 'X'

var (
	// ErrLengthRange flags an empty or inverted sequence length range.
	ErrLengthRange = errors.New("invalid sequence length range")
	// ErrSeqCount flags a negative sequence count.
	ErrSeqCount = errors.New("sequence count must not be negative")
)

// NewRand returns a seeded random source for the generators. A seed of zero
// taps the wall clock, any other value gives a reproducible stream.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))
}

// params carries the knobs shared by the length-ranged generators.
type params struct {
	lenMin int
	lenMax int
	seqNum int
	rng    *rand.Rand
}

func newParams(lenMin, lenMax, seqNum int, rng *rand.Rand) (params, error) {
	if lenMin < 1 || lenMin > lenMax {
		return params{}, fmt.Errorf("length range [%d,%d]: %w", lenMin, lenMax, ErrLengthRange)
	}
	if seqNum < 0 {
		return params{}, fmt.Errorf("count %d: %w", seqNum, ErrSeqCount)
	}
	if rng == nil {
		rng = NewRand(0)
	}
	return params{lenMin: lenMin, lenMax: lenMax, seqNum: seqNum, rng: rng}, nil
}

// pickLen draws a sequence length uniformly from the inclusive range.
func (p params) pickLen() int {
	return p.lenMin + p.rng.IntN(p.lenMax-p.lenMin+1)
}

// pick draws one residue uniformly from a residue set.
func pick(rng *rand.Rand, set string) byte {
	return set[rng.IntN(len(set))]
}

// newTemplate allocates a sequence buffer with every position unassigned.
func newTemplate(length int) []byte {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = placeholder
	}
	return buf
}
