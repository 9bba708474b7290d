package alphabet_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peplib_go/alphabet"
)

// indices of Cys and Met in the canonical residue order
const (
	idxC = 1
	idxM = 10
)

func allDistributions() []alphabet.Distribution {
	return []alphabet.Distribution{
		alphabet.Uniform, alphabet.UniformNoCM, alphabet.AMP, alphabet.AMPNoCM,
	}
}

// TestDistributionWeights verifies that every table is parallel to the
// 20-letter alphabet and normalized within float tolerance.
func TestDistributionWeights(t *testing.T) {
	for _, d := range allDistributions() {
		require.Len(t, d.Weights, len(alphabet.Natural), "distribution %s", d.Name)
		sum := 0.0
		for i, w := range d.Weights {
			assert.GreaterOrEqual(t, w, 0.0, "distribution %s weight %d", d.Name, i)
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-4, "distribution %s must sum to 1", d.Name)
	}
}

// TestNoCMVariants verifies that the synthesizability tables carry exactly
// zero weight for Cys and Met.
func TestNoCMVariants(t *testing.T) {
	for _, d := range []alphabet.Distribution{alphabet.UniformNoCM, alphabet.AMPNoCM} {
		assert.Zero(t, d.Weights[idxC], "distribution %s must exclude C", d.Name)
		assert.Zero(t, d.Weights[idxM], "distribution %s must exclude M", d.Name)
	}
	assert.Equal(t, byte('C'), alphabet.Natural[idxC])
	assert.Equal(t, byte('M'), alphabet.Natural[idxM])
}

// TestResidueSubsets verifies that the biophysical subsets are natural
// residues and mutually disjoint.
func TestResidueSubsets(t *testing.T) {
	subsets := map[string]string{
		"hydrophobic": alphabet.Hydrophobic,
		"basic":       alphabet.Basic,
		"anchor":      alphabet.Anchor,
	}
	for name, set := range subsets {
		for i := 0; i < len(set); i++ {
			assert.True(t, alphabet.IsNatural(set[i]), "%s residue %c", name, set[i])
		}
	}
	assert.False(t, strings.ContainsAny(alphabet.Hydrophobic, alphabet.Basic))
	assert.False(t, strings.ContainsAny(alphabet.Hydrophobic, alphabet.Anchor))
	assert.False(t, strings.ContainsAny(alphabet.Basic, alphabet.Anchor))
}

// TestByName covers the CLI name lookup, including the unknown case.
func TestByName(t *testing.T) {
	for _, name := range []string{"rand", "randnoCM", "AMP", "AMPnoCM"} {
		d, ok := alphabet.ByName(name)
		require.True(t, ok, "distribution %s must resolve", name)
		assert.Equal(t, name, d.Name)
	}
	_, ok := alphabet.ByName("bogus")
	assert.False(t, ok)
}

func TestIsNatural(t *testing.T) {
	for i := 0; i < len(alphabet.Natural); i++ {
		assert.True(t, alphabet.IsNatural(alphabet.Natural[i]))
	}
	for _, b := range []byte{'X', 'B', 'Z', '*', 'a'} {
		assert.False(t, alphabet.IsNatural(b), "letter %c", b)
	}
}
