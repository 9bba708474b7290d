// lib_overview summarizes a generated peptide FASTA file: sequence count,
// length statistics and residue composition, with SVG plots.
package lib_overview

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/gonum/stat"

	"peplib_go/fastaio"
)

func Run(args []string) {
	fs := flag.NewFlagSet("lib_overview", flag.ExitOnError)

	inFile := fs.String("in_file", "", "Input FASTA file (.fasta or .fasta.gz)")
	outPrefix := fs.String("out_prefix", "", "Prefix for SVG plot files (no plots if empty)")

	err := fs.Parse(args)
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}
	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -in_file is required")
		os.Exit(1)
	}

	_, seqs, err := fastaio.Read(*inFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading FASTA:", err)
		os.Exit(1)
	}
	if len(seqs) == 0 {
		fmt.Fprintln(os.Stderr, "No sequences found in", *inFile)
		os.Exit(1)
	}

	lengths := make([]float64, len(seqs))
	for i, s := range seqs {
		lengths[i] = float64(len(s))
	}

	fmt.Printf("Sequences: %d\n", len(seqs))
	fmt.Printf("Length mean: %.2f\n", stat.Mean(lengths, nil))
	fmt.Printf("Length stddev: %.2f\n", stat.StdDev(lengths, nil))

	if *outPrefix == "" {
		return
	}

	lengthSVG, err := GenerateLengthPlotSVG(lengths)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error plotting lengths:", err)
		os.Exit(1)
	}
	compSVG, err := GenerateCompositionPlotSVG(seqs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error plotting composition:", err)
		os.Exit(1)
	}

	lengthPath := *outPrefix + "_lengths.svg"
	compPath := *outPrefix + "_composition.svg"
	if err := os.WriteFile(lengthPath, []byte(lengthSVG), 0644); err != nil {
		fmt.Fprintln(os.Stderr, "Error writing plot:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(compPath, []byte(compSVG), 0644); err != nil {
		fmt.Fprintln(os.Stderr, "Error writing plot:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote plots to %s and %s\n", lengthPath, compPath)
}
