package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/onitama-go/internal/config"
	"github.com/lgbarn/onitama-go/internal/deal"
	"github.com/lgbarn/onitama-go/internal/engine"
	"github.com/lgbarn/onitama-go/internal/notation"
	"github.com/lgbarn/onitama-go/internal/output"
)

// newMatchLogger returns a logger whose lines carry the match id.
func newMatchLogger(cfg *config.Config, id string) *log.Logger {
	w := cfg.LogFile
	if cfg.Verbosity == config.Silent || w == nil {
		w = io.Discard
	}
	return log.New(w, "match "+id+": ", log.LstdFlags|log.Lmsgprefix)
}

// runMatch plays one match, reading plays from in until the game is won,
// the input ends or a player quits.
func runMatch(cfg *config.Config, d deal.Deal, dealSeed int64, in io.Reader) error {
	g, err := engine.New(d.Red, d.Blue, d.Spare)
	if err != nil {
		return err
	}

	id := uuid.NewString()
	logger := newMatchLogger(cfg, id)
	match := output.NewMatch(id, d, g)
	match.Seed = dealSeed

	logger.Printf("started: %s", d)
	if dealSeed != 0 {
		logger.Printf("seed %d", dealSeed)
	}

	out := cfg.OutputFile
	r := output.NewRenderer(out, cfg.ASCII)
	scanner := bufio.NewScanner(in)

	for !g.Over() {
		r.Position(g)
		player, _ := g.Player()
		fmt.Fprintf(out, "%s> ", player)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "?", "help":
			r.Plays(g.Plays())
			continue
		case "quit", "exit":
			logger.Printf("%s quit after %d plies", player, g.Plies())
			return finishMatch(cfg, match, logger)
		}

		p, err := notation.Parse(g, line)
		if err == nil {
			p, err = g.Lookup(p)
		}
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		if _, err := g.Play(p); err != nil {
			return err
		}
		match.Record(p)
		if cfg.Verbosity >= config.Commentary {
			logger.Printf("%d. %s %s", g.Plies(), player, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if g.Over() {
		r.Board(g)
		fmt.Fprintln(out, g.Status())
	}
	return finishMatch(cfg, match, logger)
}

// finishMatch logs the result and writes the match record.
func finishMatch(cfg *config.Config, match *output.Match, logger *log.Logger) error {
	logger.Printf("%s after %d plies", match.Result(), len(match.Plays))

	if cfg.RecordFile == nil {
		return nil
	}
	w := output.NewMatchWriter(cfg.RecordFile, cfg)
	if err := w.WriteMatch(match); err != nil {
		return err
	}
	return w.Close()
}
