package seqgen

import (
	"math/rand/v2"

	"peplib_go/alphabet"
)

// Oblique generates sequences with a linear hydrophobicity gradient: the
// helical placement pattern, then a tail redrawn from the hydrophobic set.
// The gradient presumably makes the peptide orient tilted in membranes.
type Oblique struct {
	params
}

func NewOblique(lenMin, lenMax, seqNum int, rng *rand.Rand) (*Oblique, error) {
	p, err := newParams(lenMin, lenMax, seqNum, rng)
	if err != nil {
		return nil, err
	}
	return &Oblique{params: p}, nil
}

// Generate returns a fresh list of seqNum oblique sequences. The final
// len/3-1 positions are overwritten with independent hydrophobic draws,
// wiping any basic residue the placement pattern put there.
func (o *Oblique) Generate() []string {
	out := make([]string, 0, o.seqNum)
	for s := 0; s < o.seqNum; s++ {
		buf := newTemplate(o.pickLen())
		placeBasic(o.rng, buf)
		fillHydrophobic(o.rng, buf)
		for e := 1; e < len(buf)/3; e++ {
			buf[len(buf)-e] = pick(o.rng, alphabet.Hydrophobic)
		}
		out = append(out, string(buf))
	}
	return out
}
