package seqgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peplib_go/alphabet"
	"peplib_go/seqgen"
)

// basicPositions extracts the indices holding basic residues. The basic and
// hydrophobic sets are disjoint, so placed positions are unambiguous.
func basicPositions(s string) []int {
	var out []int
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet.Basic, s[i]) >= 0 {
			out = append(out, i)
		}
	}
	return out
}

// TestHelicesComposition verifies that helical sequences contain only
// hydrophobic and basic residues within the requested length range.
func TestHelicesComposition(t *testing.T) {
	g, err := seqgen.NewHelices(7, 28, 30, seqgen.NewRand(11))
	require.NoError(t, err)

	seqs := g.Generate()
	require.Len(t, seqs, 30)
	for _, s := range seqs {
		assert.GreaterOrEqual(t, len(s), 7)
		assert.LessOrEqual(t, len(s), 28)
		for i := 0; i < len(s); i++ {
			member := strings.IndexByte(alphabet.Hydrophobic+alphabet.Basic, s[i]) >= 0
			assert.True(t, member, "sequence %q position %d", s, i)
		}
	}
}

// TestHelicesPlacementPattern verifies the positional rule: first basic
// residue within the first four positions, then alternating gaps of 3 and 4.
func TestHelicesPlacementPattern(t *testing.T) {
	g, err := seqgen.NewHelices(10, 25, 40, seqgen.NewRand(23))
	require.NoError(t, err)

	for _, s := range g.Generate() {
		positions := basicPositions(s)
		require.NotEmpty(t, positions, "sequence %q must hold a basic residue", s)
		assert.Less(t, positions[0], 4, "first basic residue of %q", s)
		for i := 1; i < len(positions); i++ {
			want := 3
			if i%2 == 0 {
				want = 4
			}
			assert.Equal(t, want, positions[i]-positions[i-1],
				"gap %d of %q", i, s)
		}
	}
}

// TestHelicesShortBuffer exercises buffers shorter than the usual four-slot
// window for the first basic residue.
func TestHelicesShortBuffer(t *testing.T) {
	g, err := seqgen.NewHelices(2, 3, 25, seqgen.NewRand(5))
	require.NoError(t, err)

	for _, s := range g.Generate() {
		positions := basicPositions(s)
		require.Len(t, positions, 1, "sequence %q", s)
		assert.Less(t, positions[0], len(s))
	}
}

// TestHelicesDeterminism verifies seed reproducibility.
func TestHelicesDeterminism(t *testing.T) {
	a, err := seqgen.NewHelices(7, 21, 15, seqgen.NewRand(77))
	require.NoError(t, err)
	b, err := seqgen.NewHelices(7, 21, 15, seqgen.NewRand(77))
	require.NoError(t, err)

	assert.Equal(t, a.Generate(), b.Generate())
}

// TestHelicesCleanRuns verifies that repeated Generate calls return
// independent fresh lists rather than accumulating.
func TestHelicesCleanRuns(t *testing.T) {
	g, err := seqgen.NewHelices(7, 14, 6, seqgen.NewRand(13))
	require.NoError(t, err)

	first := g.Generate()
	second := g.Generate()
	assert.Len(t, first, 6)
	assert.Len(t, second, 6)
}
