package seqgen

import (
	"math/rand/v2"

	"peplib_go/alphabet"
)

// Kinked generates amphipathic helical sequences with a single proline
// placed on the middle basic position, presumably kinking the helix at the
// hydrophobic face.
type Kinked struct {
	params
}

func NewKinked(lenMin, lenMax, seqNum int, rng *rand.Rand) (*Kinked, error) {
	p, err := newParams(lenMin, lenMax, seqNum, rng)
	if err != nil {
		return nil, err
	}
	return &Kinked{params: p}, nil
}

// Generate returns a fresh list of seqNum kinked sequences. Each sequence
// contains exactly one proline: the hydrophobic and basic sets are P-free,
// and the middle recorded basic position is overwritten once.
func (k *Kinked) Generate() []string {
	out := make([]string, 0, k.seqNum)
	for s := 0; s < k.seqNum; s++ {
		buf := newTemplate(k.pickLen())
		positions := placeBasic(k.rng, buf)
		fillHydrophobic(k.rng, buf)
		buf[positions[len(positions)/2]] = alphabet.Proline
		out = append(out, string(buf))
	}
	return out
}
