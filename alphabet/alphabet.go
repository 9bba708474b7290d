// Package alphabet holds the fixed amino acid tables shared by all sequence
// generators: the 20 natural residues, their biophysical subsets and the
// per-residue probability tables used for unconstrained random draws.
// All tables are process-wide constants and must never be mutated at runtime.
package alphabet

// Natural lists the 20 natural amino acids in canonical order.
// Every weight table below is parallel to this string.
const Natural = "ACDEFGHIKLMNPQRSTVWY"

// Proline introduces a kink in helical peptides
const Proline = 'P'

// Residue subsets used by the positional generators
var (
	Hydrophobic = "GALIV" // small/aliphatic, fills the hydrophobic face
	Basic       = "KR"    // positively charged at physiological pH
	Anchor      = "WYF"   // aromatic anchors for the centrosymmetric block center
)

// Distribution maps each residue in Natural to a draw weight.
// Weights are parallel to Natural and sum to 1.0 within float tolerance.
type Distribution struct {
	Name    string
	Weights []float64
}

// Uniform gives every natural residue equal probability.
var Uniform = Distribution{
	Name: "rand",
	Weights: []float64{
		0.05, 0.05, 0.05, 0.05, 0.05, 0.05, 0.05, 0.05, 0.05, 0.05,
		0.05, 0.05, 0.05, 0.05, 0.05, 0.05, 0.05, 0.05, 0.05, 0.05,
	},
}

// UniformNoCM is Uniform with Cys and Met excluded (zero weight), for
// synthesizability of the designed peptides.
var UniformNoCM = Distribution{
	Name: "randnoCM",
	Weights: []float64{
		0.05555555, 0.0, 0.05555555, 0.05555555, 0.05555555,
		0.05555555, 0.05555555, 0.05555555, 0.05555555, 0.05555555,
		0.0, 0.05555555, 0.05555555, 0.05555555, 0.05555555,
		0.05555555, 0.05555555, 0.05555555, 0.05555555, 0.05555555,
	},
}

// AMP carries residue frequencies observed in the APD3 antimicrobial
// peptide database (2674 sequences, March 2016 snapshot).
var AMP = Distribution{
	Name: "AMP",
	Weights: []float64{
		0.0766, 0.0710, 0.0260, 0.0264, 0.0405,
		0.1172, 0.0210, 0.0610, 0.0958, 0.0838,
		0.0123, 0.0386, 0.0463, 0.0251, 0.0545,
		0.0613, 0.0455, 0.0572, 0.0155, 0.0244,
	},
}

// AMPNoCM is AMP with the Cys and Met mass redistributed over the remaining
// 18 residues (zero weight for C and M).
var AMPNoCM = Distribution{
	Name: "AMPnoCM",
	Weights: []float64{
		0.0812275, 0.0, 0.0306275, 0.0310275, 0.0451275,
		0.1218275, 0.0256275, 0.0656275, 0.1004275, 0.0884275,
		0.0, 0.0432275, 0.0509275, 0.0297275, 0.0591275,
		0.0659275, 0.0501275, 0.0618275, 0.0201275, 0.0290275,
	},
}

// ByName resolves a distribution from its CLI name. The zero-value bool
// reports an unknown name; callers decide whether that is fatal.
func ByName(name string) (Distribution, bool) {
	switch name {
	case "rand":
		return Uniform, true
	case "randnoCM":
		return UniformNoCM, true
	case "AMP":
		return AMP, true
	case "AMPnoCM":
		return AMPNoCM, true
	}
	return Distribution{}, false
}

// IsNatural reports whether b is one of the 20 natural residue letters.
func IsNatural(b byte) bool {
	for i := 0; i < len(Natural); i++ {
		if Natural[i] == b {
			return true
		}
	}
	return false
}
