package seqgen

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"peplib_go/alphabet"
)

// Random generates sequences with no positional structure: every residue is
// an independent draw from a chosen probability distribution over the 20
// natural amino acids.
type Random struct {
	params
}

func NewRandom(lenMin, lenMax, seqNum int, rng *rand.Rand) (*Random, error) {
	p, err := newParams(lenMin, lenMax, seqNum, rng)
	if err != nil {
		return nil, err
	}
	return &Random{params: p}, nil
}

// Generate returns a fresh list of seqNum sequences drawn residue by residue
// from dist. Zero-weight residues (C and M in the noCM tables) never appear.
func (r *Random) Generate(dist alphabet.Distribution) []string {
	cat := distuv.NewCategorical(dist.Weights, r.rng)
	out := make([]string, 0, r.seqNum)
	for s := 0; s < r.seqNum; s++ {
		buf := make([]byte, r.pickLen())
		for i := range buf {
			buf[i] = alphabet.Natural[int(cat.Rand())]
		}
		out = append(out, string(buf))
	}
	return out
}
