// Package config provides configuration for the onitama command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/onitama-go/internal/errors"
)

// Verbosity levels for the match log.
const (
	Silent     = 0 // nothing
	Summary    = 1 // match header and result
	Commentary = 2 // every play
)

// Config holds all program configuration.
type Config struct {
	// Sub-configurations
	Deal  *DealConfig
	Perft *PerftConfig

	Verbosity int  // 0=nothing, 1=match summary, 2=running commentary
	ASCII     bool // render pieces as letters instead of glyphs
	JSON      bool // write match records as JSON instead of text

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
	RecordFile io.Writer // finished match records; nil disables
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Deal:       NewDealConfig(),
		Perft:      NewPerftConfig(),
		Verbosity:  Summary,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream boards and prompts are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream the match log is written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// SetRecord sets the stream finished match records are written to.
func (c *Config) SetRecord(w io.Writer) {
	c.RecordFile = w
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d outside %d..%d: %w",
			c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	if err := c.Deal.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}
