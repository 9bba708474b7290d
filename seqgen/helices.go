package seqgen

import (
	"math/rand/v2"

	"peplib_go/alphabet"
)

// placeBasic places basic residues on the template buffer: the first at a
// position drawn from {0..3} (clamped to short buffers), the rest advancing
// by the alternating gap cycle 3,4,3,4,... until the next position would fall
// off the end. Returns the placed positions in order.
func placeBasic(rng *rand.Rand, buf []byte) []int {
	limit := 4
	if len(buf) < limit {
		limit = len(buf)
	}
	pos := rng.IntN(limit)
	buf[pos] = pick(rng, alphabet.Basic)
	positions := []int{pos}

	for step := 0; ; step++ {
		gap := 3
		if step%2 == 1 {
			gap = 4
		}
		if pos+gap >= len(buf) {
			break
		}
		pos += gap
		buf[pos] = pick(rng, alphabet.Basic)
		positions = append(positions, pos)
	}
	return positions
}

// fillHydrophobic assigns every still-unassigned position an independent
// uniform draw from the hydrophobic set.
func fillHydrophobic(rng *rand.Rand, buf []byte) {
	for i := range buf {
		if buf[i] == placeholder {
			buf[i] = pick(rng, alphabet.Hydrophobic)
		}
	}
}

// Helices generates presumed amphipathic helical sequences. Basic residues
// are placed 3-4 positions apart, putting them on one helical face; the
// remaining positions are filled with hydrophobic residues.
type Helices struct {
	params
}

func NewHelices(lenMin, lenMax, seqNum int, rng *rand.Rand) (*Helices, error) {
	p, err := newParams(lenMin, lenMax, seqNum, rng)
	if err != nil {
		return nil, err
	}
	return &Helices{params: p}, nil
}

// Generate returns a fresh list of seqNum helical sequences.
func (h *Helices) Generate() []string {
	out := make([]string, 0, h.seqNum)
	for s := 0; s < h.seqNum; s++ {
		buf := newTemplate(h.pickLen())
		placeBasic(h.rng, buf)
		fillHydrophobic(h.rng, buf)
		out = append(out, string(buf))
	}
	return out
}
