package seqgen

import (
	"math/rand/v2"

	"peplib_go/alphabet"
)

// MutateAA mutates each sequence in place with probability prob: nr
// positions are drawn uniformly (with replacement, so fewer than nr distinct
// positions may change) and overwritten with a uniform draw over the full
// alphabet. With prob 0 the list is left untouched.
func MutateAA(seqs []string, nr int, prob float64, rng *rand.Rand) {
	for i, s := range seqs {
		if len(s) == 0 || rng.Float64() >= prob {
			continue
		}
		buf := []byte(s)
		for m := 0; m < nr; m++ {
			buf[rng.IntN(len(buf))] = alphabet.Natural[rng.IntN(len(alphabet.Natural))]
		}
		seqs[i] = string(buf)
	}
}
