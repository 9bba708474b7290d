// lib_gen assembles a mixed virtual peptide library from weighted class
// ratios, reports the per-class counts, and optionally writes the library
// as FASTA and archives it in a SQLite database.
package lib_gen

import (
	"context"
	"flag"
	"fmt"
	"os"

	"peplib_go/fastaio"
	"peplib_go/library"
	"peplib_go/seqgen"
	"peplib_go/store"
)

func Run(args []string) {
	fs := flag.NewFlagSet("lib_gen", flag.ExitOnError)

	size := fs.Int("size", 100, "Requested library size (final size may be lower after deduplication)")
	sym := fs.Float64("sym", 1, "Ratio of symmetric centrosymmetric sequences")
	asy := fs.Float64("asy", 1, "Ratio of asymmetric centrosymmetric sequences")
	hel := fs.Float64("hel", 1, "Ratio of amphipathic helical sequences")
	knk := fs.Float64("knk", 1, "Ratio of kinked helical sequences")
	obl := fs.Float64("obl", 1, "Ratio of oblique sequences")
	ran := fs.Float64("ran", 1, "Ratio of uniform random sequences")
	amp := fs.Float64("amp", 1, "Ratio of AMP-distributed random sequences")
	ncm := fs.Float64("ncm", 1, "Ratio of AMP-distributed random sequences without Cys/Met")
	prune := fs.Int("prune", 0, "Truncate the library to this size after generation (0 = keep all)")
	mutateNr := fs.Int("mutate_nr", 0, "Number of positions to mutate per sequence")
	mutateProb := fs.Float64("mutate_prob", 0.0, "Probability of mutating a sequence (0.0-1.0)")
	seed := fs.Int64("seed", 0, "Random seed (0 = time-based)")
	outFile := fs.String("out_file", "", "Output FASTA file (default: stdout)")
	gzipOut := fs.Bool("gzip", false, "Compress output with gzip (.gz)")
	archive := fs.String("archive", "", "SQLite database to archive the library in")

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

	ratios := library.Ratios{
		Symmetric:     *sym,
		Asymmetric:    *asy,
		Helix:         *hel,
		Kinked:        *knk,
		Oblique:       *obl,
		Random:        *ran,
		RandomAMP:     *amp,
		RandomAMPNoCM: *ncm,
	}

	lib, err := library.New(*size, ratios, seqgen.NewRand(*seed))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if err := lib.Generate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if *mutateNr > 0 && *mutateProb > 0.0 {
		lib.Mutate(*mutateNr, *mutateProb)
	}
	if *prune > 0 {
		lib.Prune(*prune)
	}

	counts := lib.Counts()
	fmt.Fprintf(os.Stderr, "Library size: %d (requested %d)\n", lib.Size(), *size)
	for _, class := range library.Classes() {
		fmt.Fprintf(os.Stderr, "  %s\t%d\n", class, counts[class])
	}

	if *archive != "" {
		st := store.New(*archive)
		ctx := context.Background()
		if err := st.Init(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "Error opening archive:", err)
			os.Exit(1)
		}
		defer st.Close()
		id, err := st.SaveLibrary(ctx, store.LibraryRecord{
			Seed:      *seed,
			Sequences: lib.Sequences(),
			Names:     lib.Names(),
			Counts:    counts,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error archiving library:", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Archived library as %s\n", id)
	}

	if *outFile == "" {
		if *gzipOut {
			fmt.Fprintln(os.Stderr, "Cannot gzip to stdout. Specify -out_file.")
			os.Exit(1)
		}
		fmt.Print(fastaio.Format(lib.Sequences()))
		return
	}

	path := *outFile
	if *gzipOut {
		path += ".gz"
		err = fastaio.SaveGzip(path, lib.Sequences())
	} else {
		err = fastaio.Save(path, lib.Sequences())
	}
	if err != nil {
		fmt.Println("Error writing file:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d sequences to %s\n", lib.Size(), path)
}
