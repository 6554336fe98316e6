// Package notation converts between play text and engine plays.
//
// Accepted forms, case-insensitive:
//
//	Tiger c1c3     card name and coordinates
//	Tiger c1-c3    separators '-' and 'x' are allowed between squares
//	c1c3           coordinates alone, when only one card reaches
//	discard Crab   discard when no move is possible
//	3              1-based index into the current legal play list
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/onitama-go/internal/engine"
	"github.com/lgbarn/onitama-go/internal/errors"
	"github.com/lgbarn/onitama-go/internal/onitama"
)

const discardWord = "discard"

// Format returns the text form of a play. Parse(g, Format(p)) yields p for
// every legal play p of g.
func Format(p engine.Play) string {
	return p.String()
}

// Parse decodes play text against the current position of g. The result is
// a play the engine can be asked to apply; Parse does not check legality
// beyond what it needs to resolve the text.
func Parse(g *engine.Game, text string) (engine.Play, error) {
	input := strings.TrimSpace(text)
	if input == "" {
		return engine.Play{}, &errors.ParseError{Err: errors.ErrInvalidNotation, Expected: "a play"}
	}

	if n, err := strconv.Atoi(input); err == nil {
		return byIndex(g, input, n)
	}

	fields := strings.Fields(input)
	switch {
	case strings.EqualFold(fields[0], discardWord):
		if len(fields) != 2 {
			return engine.Play{}, &errors.ParseError{
				Err: errors.ErrInvalidNotation, Input: input, Expected: "discard <card>",
			}
		}
		slot, id, err := heldCard(g, input, fields[1])
		if err != nil {
			return engine.Play{}, err
		}
		return engine.DiscardPlay(slot, id), nil

	case len(fields) == 2:
		slot, id, err := heldCard(g, input, fields[0])
		if err != nil {
			return engine.Play{}, err
		}
		from, to, err := parseCoords(input, fields[1])
		if err != nil {
			return engine.Play{}, err
		}
		return engine.MovePlay(slot, id, from, to), nil

	case len(fields) == 1:
		from, to, err := parseCoords(input, fields[0])
		if err != nil {
			return engine.Play{}, err
		}
		return byCoords(g, input, from, to)
	}

	return engine.Play{}, &errors.ParseError{
		Err:      errors.ErrInvalidNotation,
		Input:    input,
		Expected: "<card> <from><to>",
		Got:      fmt.Sprintf("%d words", len(fields)),
	}
}

// byIndex picks the n-th legal play, counting from 1.
func byIndex(g *engine.Game, input string, n int) (engine.Play, error) {
	plays := g.Plays()
	if n < 1 || n > len(plays) {
		return engine.Play{}, &errors.ParseError{
			Err:      errors.ErrInvalidNotation,
			Input:    input,
			Expected: fmt.Sprintf("a play number from 1 to %d", len(plays)),
		}
	}
	return plays[n-1], nil
}

// byCoords finds the legal move between two squares when the card is not
// named.
func byCoords(g *engine.Game, input string, from, to onitama.Square) (engine.Play, error) {
	var found []engine.Play
	for _, p := range g.Plays() {
		if !p.Discard && p.From == from && p.To == to {
			found = append(found, p)
		}
	}

	switch len(found) {
	case 0:
		return engine.Play{}, &errors.ParseError{Err: errors.ErrIllegalPlay, Input: input}
	case 1:
		return found[0], nil
	}

	names := make([]string, len(found))
	for i, p := range found {
		names[i] = p.Card.String()
	}
	return engine.Play{}, &errors.ParseError{
		Err:      errors.ErrAmbiguousPlay,
		Input:    input,
		Expected: "a card name, one of " + strings.Join(names, " or "),
	}
}

// heldCard resolves a card name to a slot in the hand of the player to move.
func heldCard(g *engine.Game, input, name string) (int, onitama.CardID, error) {
	id, ok := onitama.CardByName(name)
	if !ok {
		return 0, 0, &errors.ParseError{
			Err:    errors.ErrUnknownCard,
			Input:  input,
			Column: column(input, name),
			Got:    name,
		}
	}

	side := g.Side(g.Status().Player)
	slot, ok := side.Slot(id)
	if !ok {
		return 0, 0, &errors.ParseError{
			Err:      errors.ErrUnknownCard,
			Input:    input,
			Column:   column(input, name),
			Expected: fmt.Sprintf("%s or %s", side.Hand[0], side.Hand[1]),
			Got:      id.String(),
		}
	}
	return slot, id, nil
}

// parseCoords decodes "c1c3", "c1-c3", "c1xc3" or "c1c3x".
func parseCoords(input, tok string) (from, to onitama.Square, err error) {
	s := strings.ToLower(tok)
	s = strings.TrimSuffix(s, "x")
	if len(s) == 5 && (s[2] == '-' || s[2] == 'x') {
		s = s[:2] + s[3:]
	}

	bad := func(cause error) error {
		pe := &errors.ParseError{
			Err:      errors.ErrInvalidNotation,
			Input:    input,
			Column:   column(input, tok),
			Expected: "two squares such as c1c3",
			Got:      tok,
		}
		if cause != nil {
			pe.Err = fmt.Errorf("%w: %v", errors.ErrInvalidNotation, cause)
		}
		return pe
	}

	if len(s) != 4 {
		return from, to, bad(nil)
	}
	if from, err = onitama.ParseSquare(s[:2]); err != nil {
		return from, to, bad(err)
	}
	if to, err = onitama.ParseSquare(s[2:]); err != nil {
		return from, to, bad(err)
	}
	return from, to, nil
}

// column returns the 1-based position of tok in input, or 0.
func column(input, tok string) int {
	return strings.Index(input, tok) + 1
}
