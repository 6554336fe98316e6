package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/onitama-go/internal/errors"
)

// MaxPerftDepth bounds -perft; the tree grows roughly tenfold per ply.
const MaxPerftDepth = 10

// PerftConfig holds settings for play-tree counting.
type PerftConfig struct {
	// Depth is the number of plies to count; 0 disables perft mode
	Depth int

	// Workers is the number of concurrent jobs; 0 means one per CPU
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{}
}

// NumWorkers resolves the worker count.
func (p *PerftConfig) NumWorkers() int {
	if p.Workers <= 0 {
		return runtime.NumCPU()
	}
	return p.Workers
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
