package main

import (
	"fmt"

	"github.com/lgbarn/onitama-go/internal/config"
	"github.com/lgbarn/onitama-go/internal/deal"
	"github.com/lgbarn/onitama-go/internal/engine"
	"github.com/lgbarn/onitama-go/internal/output"
)

// runList prints the opening position and its numbered legal plays.
func runList(cfg *config.Config, d deal.Deal) error {
	g, err := engine.New(d.Red, d.Blue, d.Spare)
	if err != nil {
		return err
	}

	r := output.NewRenderer(cfg.OutputFile, cfg.ASCII)
	r.Position(g)
	plays := g.Plays()
	fmt.Fprintf(cfg.OutputFile, "\n%d legal plays:\n", len(plays))
	r.Plays(plays)
	return nil
}
