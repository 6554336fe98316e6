package worker

import (
	"cmp"
	"slices"

	"github.com/lgbarn/onitama-go/internal/engine"
)

// Division splits a perft count by root play.
type Division struct {
	Results []Result // In Plays order
	Nodes   uint64   // Sum over Results
	Workers int      // Goroutines used
}

// countLeaves applies the job's play to its game and counts the leaves of
// the remaining tree.
func countLeaves(job Job) Result {
	res := Result{Index: job.Index, Play: job.Play}
	child, err := job.Game.Child(job.Play)
	if err != nil {
		res.Err = err
		return res
	}
	res.Nodes = engine.Perft(child, job.Depth)
	return res
}

// Divide counts the play tree of g to depth with one job per root play.
// A finished game or a depth below 1 is a single leaf.
func Divide(g *engine.Game, depth, workers int) (Division, error) {
	if depth <= 0 || g.Over() {
		return Division{Nodes: 1}, nil
	}

	plays := g.Plays()
	pool := NewPool(countLeaves, WithWorkers(workers), WithQueue(len(plays)))
	pool.Start()
	for i, p := range plays {
		pool.Submit(Job{Game: g.Clone(), Play: p, Depth: depth - 1, Index: i})
	}
	go pool.Close()

	div := Division{Results: make([]Result, 0, len(plays)), Workers: pool.Workers()}
	var firstErr error
	for res := range pool.Results() {
		if res.Err != nil && firstErr == nil {
			firstErr = res.Err
			pool.Stop()
		}
		div.Results = append(div.Results, res)
		div.Nodes += res.Nodes
	}
	if firstErr != nil {
		return Division{}, firstErr
	}

	slices.SortFunc(div.Results, func(a, b Result) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return div, nil
}
