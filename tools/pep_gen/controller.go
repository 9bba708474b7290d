// pep_gen generates peptide sequences of one structural class and writes
// them as FASTA to stdout or a file.
package pep_gen

import (
	"flag"
	"fmt"
	"os"

	"peplib_go/alphabet"
	"peplib_go/fastaio"
	"peplib_go/seqgen"
)

func Run(args []string) {
	fs := flag.NewFlagSet("pep_gen", flag.ExitOnError)

	class := fs.String("class", "helix", "Sequence class: helix, kinked, oblique, symmetric, asymmetric, random")
	lenMin := fs.Int("len_min", 7, "Minimal sequence length")
	lenMax := fs.Int("len_max", 28, "Maximal sequence length")
	count := fs.Int("count", 10, "Number of sequences to generate")
	proba := fs.String("proba", "rand", "Residue distribution for -class random: rand, randnoCM, AMP, AMPnoCM")
	mutateNr := fs.Int("mutate_nr", 0, "Number of positions to mutate per sequence")
	mutateProb := fs.Float64("mutate_prob", 0.0, "Probability of mutating a sequence (0.0-1.0)")
	exclude := fs.String("exclude", "", "Drop sequences containing any of these letters (also drops duplicates)")
	seed := fs.Int64("seed", 0, "Random seed (0 = time-based)")
	outFile := fs.String("out_file", "", "Output FASTA file (default: stdout)")
	gzipOut := fs.Bool("gzip", false, "Compress output with gzip (.gz)")

	err := fs.Parse(args)
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}
	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}
	if *mutateProb < 0.0 || *mutateProb > 1.0 {
		fmt.Fprintln(os.Stderr, "Error: -mutate_prob must be between 0.0 and 1.0")
		os.Exit(1)
	}

	rng := seqgen.NewRand(*seed)

	var seqs []string
	switch *class {
	case "helix":
		g, err := seqgen.NewHelices(*lenMin, *lenMax, *count, rng)
		exitOn(err)
		seqs = g.Generate()
	case "kinked":
		g, err := seqgen.NewKinked(*lenMin, *lenMax, *count, rng)
		exitOn(err)
		seqs = g.Generate()
	case "oblique":
		g, err := seqgen.NewOblique(*lenMin, *lenMax, *count, rng)
		exitOn(err)
		seqs = g.Generate()
	case "symmetric":
		g, err := seqgen.NewCentrosymmetric(*count, rng)
		exitOn(err)
		seqs = g.GenerateSymmetric()
	case "asymmetric":
		g, err := seqgen.NewCentrosymmetric(*count, rng)
		exitOn(err)
		seqs = g.GenerateAsymmetric()
	case "random":
		dist, ok := alphabet.ByName(*proba)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown distribution: %s\n", *proba)
			os.Exit(1)
		}
		g, err := seqgen.NewRandom(*lenMin, *lenMax, *count, rng)
		exitOn(err)
		seqs = g.Generate(dist)
	default:
		fmt.Fprintf(os.Stderr, "Unknown class: %s\n", *class)
		os.Exit(1)
	}

	if *mutateNr > 0 && *mutateProb > 0.0 {
		seqgen.MutateAA(seqs, *mutateNr, *mutateProb, rng)
	}
	if *exclude != "" {
		seqs, _ = seqgen.FilterAA(seqs, nil, *exclude)
	}

	if *outFile == "" {
		if *gzipOut {
			fmt.Fprintln(os.Stderr, "Cannot gzip to stdout. Specify -out_file.")
			os.Exit(1)
		}
		fmt.Print(fastaio.Format(seqs))
		return
	}

	path := *outFile
	if *gzipOut {
		path += ".gz"
		err = fastaio.SaveGzip(path, seqs)
	} else {
		err = fastaio.Save(path, seqs)
	}
	if err != nil {
		fmt.Println("Error writing file:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d sequences to %s\n", len(seqs), path)
}

func exitOn(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
