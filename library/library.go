// Package library assembles a mixed virtual peptide library out of the
// seqgen generator classes. Relative class ratios are converted to absolute
// quotas, each class is generated and tagged, and exact (sequence, label)
// duplicates are dropped. The final size is therefore typically below the
// requested total; callers must re-read Size and Counts after Generate.
package library

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"peplib_go/alphabet"
	"peplib_go/seqgen"
)

// Class labels carried in the names list, one per sub-generator
const (
	ClassSymmetric     = "sym"
	ClassAsymmetric    = "asy"
	ClassHelix         = "hel"
	ClassKinked        = "knk"
	ClassOblique       = "obl"
	ClassRandom        = "ran"
	ClassRandomAMP     = "AMP"
	ClassRandomAMPNoCM = "nCM"
)

// classOrder fixes the concatenation order of the generated sub-libraries.
var classOrder = []string{
	ClassSymmetric, ClassAsymmetric, ClassHelix, ClassKinked,
	ClassOblique, ClassRandom, ClassRandomAMP, ClassRandomAMPNoCM,
}

// Length range shared by all length-ranged sub-generators
const (
	libLenMin = 7
	libLenMax = 28
)

var (
	// ErrZeroRatios flags a configuration where no class can be generated.
	ErrZeroRatios = errors.New("at least one class ratio must be positive")
	// ErrNegativeRatio flags a negative class ratio.
	ErrNegativeRatio = errors.New("class ratios must not be negative")
	// ErrLibrarySize flags a negative requested library size.
	ErrLibrarySize = errors.New("library size must not be negative")
)

// Ratios holds the relative weight of each sequence class in the library.
// The weights are arbitrary non-negative numbers; they are normalized by
// their sum, so only their proportions matter.
type Ratios struct {
	Symmetric     float64
	Asymmetric    float64
	Helix         float64
	Kinked        float64
	Oblique       float64
	Random        float64
	RandomAMP     float64
	RandomAMPNoCM float64
}

// DefaultRatios weights all eight classes equally.
func DefaultRatios() Ratios {
	return Ratios{1, 1, 1, 1, 1, 1, 1, 1}
}

func (r Ratios) byClass() map[string]float64 {
	return map[string]float64{
		ClassSymmetric:     r.Symmetric,
		ClassAsymmetric:    r.Asymmetric,
		ClassHelix:         r.Helix,
		ClassKinked:        r.Kinked,
		ClassOblique:       r.Oblique,
		ClassRandom:        r.Random,
		ClassRandomAMP:     r.RandomAMP,
		ClassRandomAMPNoCM: r.RandomAMPNoCM,
	}
}

// MixedLibrary holds a generated virtual peptide library: parallel sequence
// and class-label lists plus derived per-class counts.
type MixedLibrary struct {
	rng       *rand.Rand
	quotas    map[string]int
	sequences []string
	names     []string
	counts    map[string]int
}

// New validates the configuration and derives the per-class quotas as
// round(size * ratio / sum). Rounding is half to even, so the quota total
// never exceeds the requested size for equal ratios; the quotas are advisory
// targets, deduplication can leave the final counts below them.
func New(size int, r Ratios, rng *rand.Rand) (*MixedLibrary, error) {
	if size < 0 {
		return nil, fmt.Errorf("size %d: %w", size, ErrLibrarySize)
	}
	weights := r.byClass()
	var sum float64
	for _, class := range classOrder {
		w := weights[class]
		if w < 0 {
			return nil, fmt.Errorf("class %s ratio %v: %w", class, w, ErrNegativeRatio)
		}
		sum += w
	}
	if sum == 0 {
		return nil, ErrZeroRatios
	}
	if rng == nil {
		rng = seqgen.NewRand(0)
	}

	quotas := make(map[string]int, len(weights))
	for class, w := range weights {
		quotas[class] = int(math.RoundToEven(float64(size) * w / sum))
	}
	return &MixedLibrary{rng: rng, quotas: quotas}, nil
}

// Generate builds every sub-library at its quota, tags and concatenates the
// results in fixed class order and removes exact (sequence, label)
// duplicates, first occurrence winning. Identical strings produced by
// different classes are both kept.
func (m *MixedLibrary) Generate() error {
	perClass := make(map[string][]string, len(classOrder))

	cs, err := seqgen.NewCentrosymmetric(m.quotas[ClassSymmetric], m.rng)
	if err != nil {
		return err
	}
	perClass[ClassSymmetric] = cs.GenerateSymmetric()

	ca, err := seqgen.NewCentrosymmetric(m.quotas[ClassAsymmetric], m.rng)
	if err != nil {
		return err
	}
	perClass[ClassAsymmetric] = ca.GenerateAsymmetric()

	hel, err := seqgen.NewHelices(libLenMin, libLenMax, m.quotas[ClassHelix], m.rng)
	if err != nil {
		return err
	}
	perClass[ClassHelix] = hel.Generate()

	knk, err := seqgen.NewKinked(libLenMin, libLenMax, m.quotas[ClassKinked], m.rng)
	if err != nil {
		return err
	}
	perClass[ClassKinked] = knk.Generate()

	obl, err := seqgen.NewOblique(libLenMin, libLenMax, m.quotas[ClassOblique], m.rng)
	if err != nil {
		return err
	}
	perClass[ClassOblique] = obl.Generate()

	// Fixed iteration order keeps seeded runs reproducible.
	randomClasses := []struct {
		class string
		dist  alphabet.Distribution
	}{
		{ClassRandom, alphabet.Uniform},
		{ClassRandomAMP, alphabet.AMP},
		{ClassRandomAMPNoCM, alphabet.AMPNoCM},
	}
	for _, rc := range randomClasses {
		ran, err := seqgen.NewRandom(libLenMin, libLenMax, m.quotas[rc.class], m.rng)
		if err != nil {
			return err
		}
		perClass[rc.class] = ran.Generate(rc.dist)
	}

	var seqs, names []string
	for _, class := range classOrder {
		for _, s := range perClass[class] {
			seqs = append(seqs, s)
			names = append(names, class)
		}
	}
	m.sequences, m.names = dedup(seqs, names)
	m.recount()
	return nil
}

// dedup drops later occurrences of identical (sequence, label) pairs while
// preserving the order of the survivors.
func dedup(seqs, names []string) ([]string, []string) {
	type key struct {
		seq  string
		name string
	}
	seen := make(map[key]struct{}, len(seqs))
	outSeqs := make([]string, 0, len(seqs))
	outNames := make([]string, 0, len(names))
	for i, s := range seqs {
		k := key{seq: s, name: names[i]}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		outSeqs = append(outSeqs, s)
		outNames = append(outNames, names[i])
	}
	return outSeqs, outNames
}

func (m *MixedLibrary) recount() {
	counts := make(map[string]int, len(classOrder))
	for _, class := range classOrder {
		counts[class] = 0
	}
	for _, n := range m.names {
		counts[n]++
	}
	m.counts = counts
}

// Prune truncates the library to its first newSize entries, preserving
// order, and recomputes the per-class counts. A newSize at or above the
// current size (or below zero) is a silent no-op.
func (m *MixedLibrary) Prune(newSize int) {
	if newSize < 0 || newSize >= len(m.sequences) {
		return
	}
	m.sequences = m.sequences[:newSize]
	m.names = m.names[:newSize]
	m.recount()
}

// Mutate applies the seqgen mutation operator in place to the library
// sequences. Class labels are left as they are and may go stale.
func (m *MixedLibrary) Mutate(nr int, prob float64) {
	seqgen.MutateAA(m.sequences, nr, prob, m.rng)
}

// FilterAA removes sequences containing any banned letter plus duplicates,
// keeping labels aligned, and recounts.
func (m *MixedLibrary) FilterAA(banned string) {
	m.sequences, m.names = seqgen.FilterAA(m.sequences, m.names, banned)
	m.recount()
}

// Sequences returns the generated sequence list in stable order.
func (m *MixedLibrary) Sequences() []string { return m.sequences }

// Names returns the class label list, parallel to Sequences.
func (m *MixedLibrary) Names() []string { return m.names }

// Size returns the current library size.
func (m *MixedLibrary) Size() int { return len(m.sequences) }

// Counts returns the per-class sequence counts, including zero entries.
func (m *MixedLibrary) Counts() map[string]int {
	counts := make(map[string]int, len(m.counts))
	for k, v := range m.counts {
		counts[k] = v
	}
	return counts
}

// Quotas returns the advisory per-class targets derived at construction.
func (m *MixedLibrary) Quotas() map[string]int {
	quotas := make(map[string]int, len(m.quotas))
	for k, v := range m.quotas {
		quotas[k] = v
	}
	return quotas
}

// Classes lists the class labels in generation order.
func Classes() []string {
	out := make([]string, len(classOrder))
	copy(out, classOrder)
	return out
}
