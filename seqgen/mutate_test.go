package seqgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peplib_go/alphabet"
	"peplib_go/seqgen"
)

// TestMutateZeroProbability verifies the idempotence-under-zero contract.
func TestMutateZeroProbability(t *testing.T) {
	seqs := []string{"IAKAGRAIIK", "GRIYIRG", "KLLKLLKKLLKLLK"}
	orig := append([]string(nil), seqs...)

	seqgen.MutateAA(seqs, 3, 0.0, seqgen.NewRand(9))
	assert.Equal(t, orig, seqs)
}

// TestMutateZeroCount verifies that nr=0 changes nothing even when every
// sequence is selected for mutation.
func TestMutateZeroCount(t *testing.T) {
	seqs := []string{"IAKAGRAIIK", "GRIYIRG"}
	orig := append([]string(nil), seqs...)

	seqgen.MutateAA(seqs, 0, 1.0, seqgen.NewRand(9))
	assert.Equal(t, orig, seqs)
}

// TestMutatePreservesShape verifies that mutation keeps lengths and the
// natural alphabet, whatever positions it hits.
func TestMutatePreservesShape(t *testing.T) {
	g, err := seqgen.NewHelices(7, 28, 20, seqgen.NewRand(12))
	require.NoError(t, err)
	seqs := g.Generate()
	lengths := make([]int, len(seqs))
	for i, s := range seqs {
		lengths[i] = len(s)
	}

	seqgen.MutateAA(seqs, 3, 1.0, seqgen.NewRand(12))
	for i, s := range seqs {
		assert.Len(t, s, lengths[i])
		for p := 0; p < len(s); p++ {
			assert.True(t, alphabet.IsNatural(s[p]), "sequence %q position %d", s, p)
		}
	}
}

// TestMutateDeterminism verifies that equal seeds mutate identically.
func TestMutateDeterminism(t *testing.T) {
	a := []string{"IAKAGRAIIK", "GRIYIRGGRIYIRG", "LKILKVVGKGIRLIVRIIKAL"}
	b := append([]string(nil), a...)

	seqgen.MutateAA(a, 4, 0.7, seqgen.NewRand(33))
	seqgen.MutateAA(b, 4, 0.7, seqgen.NewRand(33))
	assert.Equal(t, a, b)
}

// TestMutateEmptySequences verifies that empty entries are skipped.
func TestMutateEmptySequences(t *testing.T) {
	seqs := []string{"", "AAAA"}
	seqgen.MutateAA(seqs, 2, 1.0, seqgen.NewRand(3))
	assert.Equal(t, "", seqs[0])
	assert.Len(t, seqs[1], 4)
}
