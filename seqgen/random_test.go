package seqgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peplib_go/alphabet"
	"peplib_go/seqgen"
)

// TestRandomCountAndLength verifies the exact output count and the inclusive
// length bounds: this generator performs no deduplication.
func TestRandomCountAndLength(t *testing.T) {
	g, err := seqgen.NewRandom(10, 30, 10, seqgen.NewRand(42))
	require.NoError(t, err)

	seqs := g.Generate(alphabet.AMP)
	require.Len(t, seqs, 10)
	for _, s := range seqs {
		assert.GreaterOrEqual(t, len(s), 10)
		assert.LessOrEqual(t, len(s), 30)
		for i := 0; i < len(s); i++ {
			assert.True(t, alphabet.IsNatural(s[i]), "sequence %q position %d", s, i)
		}
	}
}

// TestRandomFixedLength pins the degenerate range [5,5]: three sequences of
// exactly five residues.
func TestRandomFixedLength(t *testing.T) {
	g, err := seqgen.NewRandom(5, 5, 3, seqgen.NewRand(1))
	require.NoError(t, err)

	seqs := g.Generate(alphabet.Uniform)
	require.Len(t, seqs, 3)
	for _, s := range seqs {
		assert.Len(t, s, 5)
	}
}

// TestRandomNoCM verifies that zero-weight residues never appear.
func TestRandomNoCM(t *testing.T) {
	g, err := seqgen.NewRandom(20, 40, 50, seqgen.NewRand(3))
	require.NoError(t, err)

	for _, s := range g.Generate(alphabet.AMPNoCM) {
		assert.False(t, strings.ContainsAny(s, "CM"), "sequence %q", s)
	}
}

// TestRandomDeterminism verifies that equal seeds reproduce the output.
func TestRandomDeterminism(t *testing.T) {
	a, err := seqgen.NewRandom(7, 28, 20, seqgen.NewRand(99))
	require.NoError(t, err)
	b, err := seqgen.NewRandom(7, 28, 20, seqgen.NewRand(99))
	require.NoError(t, err)

	assert.Equal(t, a.Generate(alphabet.AMP), b.Generate(alphabet.AMP))
}

// TestConstructorValidation covers the configuration error taxonomy, raised
// at construction rather than generation time.
func TestConstructorValidation(t *testing.T) {
	_, err := seqgen.NewRandom(10, 5, 3, seqgen.NewRand(1))
	assert.ErrorIs(t, err, seqgen.ErrLengthRange, "inverted range must error")

	_, err = seqgen.NewRandom(0, 5, 3, seqgen.NewRand(1))
	assert.ErrorIs(t, err, seqgen.ErrLengthRange, "zero minimum must error")

	_, err = seqgen.NewRandom(5, 10, -1, seqgen.NewRand(1))
	assert.ErrorIs(t, err, seqgen.ErrSeqCount, "negative count must error")

	_, err = seqgen.NewHelices(10, 5, 3, seqgen.NewRand(1))
	assert.ErrorIs(t, err, seqgen.ErrLengthRange)

	_, err = seqgen.NewKinked(5, 10, -2, seqgen.NewRand(1))
	assert.ErrorIs(t, err, seqgen.ErrSeqCount)

	_, err = seqgen.NewOblique(10, 5, 3, seqgen.NewRand(1))
	assert.ErrorIs(t, err, seqgen.ErrLengthRange)

	_, err = seqgen.NewCentrosymmetric(-1, seqgen.NewRand(1))
	assert.ErrorIs(t, err, seqgen.ErrSeqCount)
}

// TestZeroCount verifies that a zero quota produces an empty, non-nil-safe
// result for every generator.
func TestZeroCount(t *testing.T) {
	r, err := seqgen.NewRandom(5, 10, 0, seqgen.NewRand(1))
	require.NoError(t, err)
	assert.Empty(t, r.Generate(alphabet.Uniform))

	h, err := seqgen.NewHelices(5, 10, 0, seqgen.NewRand(1))
	require.NoError(t, err)
	assert.Empty(t, h.Generate())

	c, err := seqgen.NewCentrosymmetric(0, seqgen.NewRand(1))
	require.NoError(t, err)
	assert.Empty(t, c.GenerateSymmetric())
	assert.Empty(t, c.GenerateAsymmetric())
}
