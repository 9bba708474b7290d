package main

import (
	"fmt"
	"os"
	"strings"

	"peplib_go/benchmark"
	version_control "peplib_go/config"
	"peplib_go/tools/lib_gen"
	"peplib_go/tools/lib_overview"
	"peplib_go/tools/pep_gen"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`PepLib - Custom Help Menu
Usage:
  peplib <tool> [options]

Tools:
  pep_gen		Generate peptide sequences of one structural class
  lib_gen		Assemble a mixed virtual peptide library
  lib_overview		Summary statistics and plots for a peptide FASTA file

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("PepLib - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tPepLib:\t\t\t%s\n", version_control.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tPeptide Generator:\t%s\n", version_control.Pep_Gen)
	fmt.Printf("\tLibrary Generator:\t%s\n", version_control.Lib_Gen)
	fmt.Printf("\tLibrary Overview:\t%s\n", version_control.Lib_Overview)
	fmt.Printf("\tBenchmark:\t\t%s\n", version_control.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executable-specific help flags
	for _, arg := range os.Args[1:] {
		if len(os.Args) < 3 {
			if arg == "-h" || arg == "-help" {
				printCustomHelp()
			}
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "pep_gen":
			pep_gen.Run(cleanedArgs)
		case "lib_gen":
			lib_gen.Run(cleanedArgs)
		case "lib_overview":
			lib_overview.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("peplib %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
