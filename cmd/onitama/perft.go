package main

import (
	"fmt"
	"time"

	"github.com/lgbarn/onitama-go/internal/config"
	"github.com/lgbarn/onitama-go/internal/deal"
	"github.com/lgbarn/onitama-go/internal/engine"
	"github.com/lgbarn/onitama-go/internal/worker"
)

// runPerft prints the leaf count below each opening play and the total.
func runPerft(cfg *config.Config, d deal.Deal) error {
	g, err := engine.New(d.Red, d.Blue, d.Spare)
	if err != nil {
		return err
	}

	out := cfg.OutputFile
	depth := cfg.Perft.Depth
	start := time.Now()

	div, err := worker.Divide(g, depth, cfg.Perft.NumWorkers())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n", d)
	for _, res := range div.Results {
		fmt.Fprintf(out, "%-16s %d\n", res.Play, res.Nodes)
	}
	fmt.Fprintf(out, "perft(%d) = %d\n", depth, div.Nodes)

	if cfg.Verbosity > config.Silent {
		fmt.Fprintf(cfg.LogFile, "perft(%d): %d nodes in %v with %d workers\n",
			depth, div.Nodes, time.Since(start).Round(time.Millisecond), div.Workers)
	}
	return nil
}
