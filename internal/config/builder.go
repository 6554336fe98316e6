package config

import (
	"io"

	"github.com/lgbarn/onitama-go/internal/onitama"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDeal sets a fixed deal.
func (b *ConfigBuilder) WithDeal(red, blue [onitama.Hand]onitama.CardID, spare onitama.CardID) *ConfigBuilder {
	b.cfg.Deal.SetFixed(red, blue, spare)
	b.cfg.Deal.Random = false
	return b
}

// WithRandomDeal requests a shuffled deal. A zero seed draws a fresh one.
func (b *ConfigBuilder) WithRandomDeal(seed int64) *ConfigBuilder {
	b.cfg.Deal.Random = true
	b.cfg.Deal.Seed = seed
	return b
}

// WithPerft enables perft mode to the given depth.
func (b *ConfigBuilder) WithPerft(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithWorkers sets the number of concurrent perft jobs.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithASCII renders pieces as letters.
func (b *ConfigBuilder) WithASCII(enabled bool) *ConfigBuilder {
	b.cfg.ASCII = enabled
	return b
}

// WithRecord sets the match record writer and format.
func (b *ConfigBuilder) WithRecord(w io.Writer, json bool) *ConfigBuilder {
	b.cfg.RecordFile = w
	b.cfg.JSON = json
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
