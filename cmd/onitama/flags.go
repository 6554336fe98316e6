// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/onitama-go/internal/config"
	"github.com/lgbarn/onitama-go/internal/deal"
)

var (
	// Deal options
	dealCards = flag.String("deal", "", "Five card names: Red's two, Blue's two, then the spare (e.g. 'Tiger,Crab,Monkey,Crane,Dragon')")
	random    = flag.Bool("random", false, "Deal five random cards")
	seed      = flag.Int64("seed", 0, "Seed for -random (0 = fresh seed); implies -random")

	// Modes
	showCards  = flag.Bool("cards", false, "Print the card catalog and exit")
	listPlays  = flag.Bool("list", false, "Print the opening position and its legal plays and exit")
	perftDepth = flag.Int("perft", 0, "Count the play tree to depth N and exit")
	workers    = flag.Int("workers", 0, "Number of perft workers (0 = one per CPU)")

	// Output options
	asciiBoard   = flag.Bool("ascii", false, "Draw pieces as letters instead of glyphs")
	outputFile   = flag.String("o", "", "Write the finished match record to this file")
	appendOutput = flag.Bool("a", false, "Append to the record file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Write match records in JSON format")

	// Logging
	logFile   = flag.String("l", "", "Write the match log to this file")
	appendLog = flag.String("L", "", "Append the match log to this file")
	quiet     = flag.Bool("s", false, "Silent mode (no match log)")
	verbose   = flag.Bool("v", false, "Log every play")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// mode selects what the program does after configuration.
type mode int

const (
	modeMatch mode = iota
	modeCards
	modeList
	modePerft
)

// selectMode picks the mode from the flags; perft is chosen by cfg.
func selectMode(cfg *config.Config) mode {
	switch {
	case *showCards:
		return modeCards
	case *listPlays:
		return modeList
	case cfg.Perft.Depth > 0:
		return modePerft
	default:
		return modeMatch
	}
}

// applyFlags applies the flags given on the command line to the
// configuration. Flags left unset keep the values from the environment.
func applyFlags(cfg *config.Config, set map[string]bool) error {
	if err := applyDealFlags(cfg, set); err != nil {
		return err
	}
	applyOutputFlags(cfg, set)

	if set["perft"] {
		cfg.Perft.Depth = *perftDepth
	}
	if set["workers"] {
		cfg.Perft.Workers = *workers
	}

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Commentary
	}
	return nil
}

// applyDealFlags configures the deal.
func applyDealFlags(cfg *config.Config, set map[string]bool) error {
	if *dealCards != "" {
		d, err := deal.FromNames(splitNames(*dealCards)...)
		if err != nil {
			return fmt.Errorf("-deal: %w", err)
		}
		cfg.Deal.SetFixed(d.Red, d.Blue, d.Spare)
		cfg.Deal.Random = false
	}
	if set["random"] {
		cfg.Deal.Random = *random
	}
	if set["seed"] {
		cfg.Deal.Seed = *seed
		cfg.Deal.Random = true
	}
	return nil
}

// applyOutputFlags configures rendering and record settings.
func applyOutputFlags(cfg *config.Config, set map[string]bool) {
	if set["ascii"] {
		cfg.ASCII = *asciiBoard
	}
	if set["J"] {
		cfg.JSON = *jsonOutput
	}
}

// splitNames splits a card list on commas or spaces.
func splitNames(list string) []string {
	return strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

// visited returns the names of the flags set on the command line.
func visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
