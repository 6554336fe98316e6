// Package errors provides sentinel errors and error types for the onitama engine.
// It defines the ways a caller can misuse the game API and structured error
// types that preserve context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrGameOver indicates a play was submitted after the game was won.
	ErrGameOver = errors.New("game is over")

	// ErrIllegalPlay indicates a play that is not among the current legal plays.
	ErrIllegalPlay = errors.New("illegal play")

	// ErrMustDiscard indicates a move was submitted while the player has no
	// legal move and must discard a card instead.
	ErrMustDiscard = errors.New("no legal move, must discard")

	// ErrMoveAvailable indicates a discard was submitted while a legal move exists.
	ErrMoveAvailable = errors.New("discard not allowed while a move is available")

	// ErrUnknownCard indicates a card id outside the catalog or a hand slot other than 0 or 1.
	ErrUnknownCard = errors.New("unknown card")

	// ErrInvalidDeal indicates a deal that does not use five distinct catalog cards.
	ErrInvalidDeal = errors.New("invalid deal")

	// ErrInvalidPosition indicates a position whose board and pieces disagree.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidNotation indicates play text that could not be parsed.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrAmbiguousPlay indicates play text that matches more than one legal play.
	ErrAmbiguousPlay = errors.New("ambiguous play")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PlayError wraps errors with match context, including the turn number,
// the player to move and the rejected play. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type PlayError struct {
	Err      error  // The underlying error
	Turn     int    // 1-based turn the play was submitted on
	Player   string // Player to move when the play was rejected (if known)
	PlayText string // The rejected play (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *PlayError) Error() string {
	var parts []string

	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}
	if e.Player != "" {
		parts = append(parts, e.Player)
	}
	if e.PlayText != "" {
		parts = append(parts, fmt.Sprintf("play %q", e.PlayText))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PlayError wrapper.
func (e *PlayError) Unwrap() error {
	return e.Err
}

// ParseError represents a notation parsing error with position context.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(" column %d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
