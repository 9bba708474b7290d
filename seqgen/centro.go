package seqgen

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"peplib_go/alphabet"
)

// Centrosymmetric generates sequences built from 7-residue palindromic
// blocks of the form [h,+,h,a,h,+,h] with h hydrophobic, + basic and a an
// aromatic anchor. Two or three blocks are concatenated, so every output is
// 14 or 21 residues long.
type Centrosymmetric struct {
	seqNum int
	rng    *rand.Rand
}

func NewCentrosymmetric(seqNum int, rng *rand.Rand) (*Centrosymmetric, error) {
	if seqNum < 0 {
		return nil, fmt.Errorf("count %d: %w", seqNum, ErrSeqCount)
	}
	if rng == nil {
		rng = NewRand(0)
	}
	return &Centrosymmetric{seqNum: seqNum, rng: rng}, nil
}

// block draws one palindromic 7-residue block. Each symmetric pair is drawn
// once and mirrored, not drawn twice.
func (c *Centrosymmetric) block() string {
	b := make([]byte, 7)
	b[0] = pick(c.rng, alphabet.Hydrophobic)
	b[6] = b[0]
	b[1] = pick(c.rng, alphabet.Basic)
	b[5] = b[1]
	b[2] = pick(c.rng, alphabet.Hydrophobic)
	b[4] = b[2]
	b[3] = pick(c.rng, alphabet.Anchor)
	return string(b)
}

// GenerateSymmetric builds seqNum sequences, each one block literally
// repeated two or three times.
func (c *Centrosymmetric) GenerateSymmetric() []string {
	out := make([]string, 0, c.seqNum)
	for s := 0; s < c.seqNum; s++ {
		n := 2 + c.rng.IntN(2)
		out = append(out, strings.Repeat(c.block(), n))
	}
	return out
}

// GenerateAsymmetric builds seqNum sequences, each the concatenation of two
// or three independently drawn blocks.
func (c *Centrosymmetric) GenerateAsymmetric() []string {
	out := make([]string, 0, c.seqNum)
	for s := 0; s < c.seqNum; s++ {
		n := 2 + c.rng.IntN(2)
		var sb strings.Builder
		for b := 0; b < n; b++ {
			sb.WriteString(c.block())
		}
		out = append(out, sb.String())
	}
	return out
}
