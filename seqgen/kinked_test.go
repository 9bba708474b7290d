package seqgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peplib_go/alphabet"
	"peplib_go/seqgen"
)

// TestKinkedSingleProline verifies that every kinked sequence carries
// exactly one proline, on a position the placement rule could have assigned
// a basic residue.
func TestKinkedSingleProline(t *testing.T) {
	g, err := seqgen.NewKinked(7, 28, 40, seqgen.NewRand(19))
	require.NoError(t, err)

	seqs := g.Generate()
	require.Len(t, seqs, 40)
	for _, s := range seqs {
		assert.Equal(t, 1, strings.Count(s, "P"), "sequence %q", s)
		for i := 0; i < len(s); i++ {
			member := s[i] == alphabet.Proline ||
				strings.IndexByte(alphabet.Hydrophobic+alphabet.Basic, s[i]) >= 0
			assert.True(t, member, "sequence %q position %d", s, i)
		}
	}
}

// TestKinkedLengthRange verifies the inclusive length bounds.
func TestKinkedLengthRange(t *testing.T) {
	g, err := seqgen.NewKinked(9, 12, 20, seqgen.NewRand(4))
	require.NoError(t, err)

	for _, s := range g.Generate() {
		assert.GreaterOrEqual(t, len(s), 9)
		assert.LessOrEqual(t, len(s), 12)
	}
}

// TestKinkedDeterminism verifies seed reproducibility.
func TestKinkedDeterminism(t *testing.T) {
	a, err := seqgen.NewKinked(7, 21, 12, seqgen.NewRand(55))
	require.NoError(t, err)
	b, err := seqgen.NewKinked(7, 21, 12, seqgen.NewRand(55))
	require.NoError(t, err)

	assert.Equal(t, a.Generate(), b.Generate())
}
