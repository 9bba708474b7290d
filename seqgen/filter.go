package seqgen

import "strings"

// Letters that mark unnatural or ambiguous residues in FASTA input
const unnaturalLetters = "BJOUXZ"

// FilterAA removes every sequence containing one of the banned letters, and
// every exact duplicate (first occurrence wins, order preserved). names, if
// non-nil, is filtered in parallel and stays aligned with the sequences.
func FilterAA(seqs, names []string, banned string) ([]string, []string) {
	keptSeqs := make([]string, 0, len(seqs))
	var keptNames []string
	if names != nil {
		keptNames = make([]string, 0, len(names))
	}
	seen := make(map[string]struct{}, len(seqs))
	for i, s := range seqs {
		if strings.ContainsAny(s, banned) {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		keptSeqs = append(keptSeqs, s)
		if names != nil {
			keptNames = append(keptNames, names[i])
		}
	}
	return keptSeqs, keptNames
}

// FilterUnnatural removes sequences with unnatural residue letters as well
// as duplicates.
func FilterUnnatural(seqs, names []string) ([]string, []string) {
	return FilterAA(seqs, names, unnaturalLetters)
}
