// onitama plays a two-player match of Onitama on the terminal, or inspects
// the rules engine (card catalog, legal plays, play-tree counts).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/onitama-go/internal/config"
	"github.com/lgbarn/onitama-go/internal/deal"
	"github.com/lgbarn/onitama-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("onitama-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := cfg.ApplyEnv(nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := applyFlags(cfg, visited(flag.CommandLine)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and record files
	setupLogFile(cfg)
	setupRecordFile(cfg)

	if err := run(cfg, selectMode(cfg), os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the selected mode.
func run(cfg *config.Config, m mode, in io.Reader) error {
	if m == modeCards {
		output.NewRenderer(cfg.OutputFile, cfg.ASCII).Catalog()
		return nil
	}

	d, dealSeed, err := resolveDeal(cfg)
	if err != nil {
		return err
	}

	switch m {
	case modeList:
		return runList(cfg, d)
	case modePerft:
		return runPerft(cfg, d)
	default:
		return runMatch(cfg, d, dealSeed, in)
	}
}

// resolveDeal returns the configured deal and, for random deals, the seed
// it was drawn with.
func resolveDeal(cfg *config.Config) (deal.Deal, int64, error) {
	if !cfg.Deal.Random {
		red, blue, spare := cfg.Deal.Fixed()
		return deal.Deal{Red: red, Blue: blue, Spare: spare}, 0, nil
	}

	s := cfg.Deal.Seed
	if s == 0 {
		var err error
		if s, err = deal.NewSeed(); err != nil {
			return deal.Deal{}, 0, err
		}
	}
	return deal.FromSeed(s), s, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupRecordFile configures the match record file based on command-line flags.
func setupRecordFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating record file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetRecord(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: onitama [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play Onitama on the terminal, two players at one keyboard.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPlays at the prompt:\n")
	fmt.Fprintf(os.Stderr, "  Tiger c1c3     move with a card\n")
	fmt.Fprintf(os.Stderr, "  c1c3           move, when only one card reaches\n")
	fmt.Fprintf(os.Stderr, "  discard Crab   discard when no move is possible\n")
	fmt.Fprintf(os.Stderr, "  3              the third play in the list\n")
	fmt.Fprintf(os.Stderr, "  ?              list the legal plays\n")
	fmt.Fprintf(os.Stderr, "  quit           abandon the match\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
	fmt.Fprintf(os.Stderr, "  ONITAMA_SEED, ONITAMA_RANDOM, ONITAMA_WORKERS, ONITAMA_VERBOSITY, ONITAMA_ASCII\n")
}
