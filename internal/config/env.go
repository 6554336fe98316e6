package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envConfig lists the settings that may come from the environment.
type envConfig struct {
	Seed      int64 `env:"ONITAMA_SEED"`
	Random    bool  `env:"ONITAMA_RANDOM"`
	Workers   int   `env:"ONITAMA_WORKERS"`
	Verbosity int   `env:"ONITAMA_VERBOSITY"`
	ASCII     bool  `env:"ONITAMA_ASCII"`
}

// ApplyEnv overlays environment settings onto c. Variables that are not set
// leave the current values alone. A nil environ reads the process
// environment.
func (c *Config) ApplyEnv(environ map[string]string) error {
	e := envConfig{
		Seed:      c.Deal.Seed,
		Random:    c.Deal.Random,
		Workers:   c.Perft.Workers,
		Verbosity: c.Verbosity,
		ASCII:     c.ASCII,
	}
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	// A seed only makes sense for a random deal.
	c.Deal.Random = e.Random || e.Seed != c.Deal.Seed
	c.Deal.Seed = e.Seed
	c.Perft.Workers = e.Workers
	c.Verbosity = e.Verbosity
	c.ASCII = e.ASCII
	return nil
}
