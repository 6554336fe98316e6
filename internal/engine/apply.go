package engine

import (
	"github.com/lgbarn/onitama-go/internal/errors"
	"github.com/lgbarn/onitama-go/internal/onitama"
)

// Play applies a play for the player to move and returns the new status.
//
// The play must name one of the actions returned by Plays. Otherwise the
// game is left unchanged and a *errors.PlayError wrapping ErrGameOver,
// ErrUnknownCard, ErrMustDiscard, ErrMoveAvailable or ErrIllegalPlay is
// returned.
func (g *Game) Play(p Play) (Status, error) {
	legal, err := g.Lookup(p)
	if err != nil {
		return g.status, err
	}
	g.apply(legal)
	return g.status, nil
}

// Lookup returns the legal play p names with every field filled in, without
// applying it. It fails exactly when Play would.
func (g *Game) Lookup(p Play) (Play, error) {
	legal, err := g.resolve(p)
	if err != nil {
		return Play{}, g.playError(err, p.String())
	}
	return legal, nil
}

// playError adds turn context to a rejected play. Once the game is over
// there is no player to move, so Player is left empty.
func (g *Game) playError(err error, text string) *errors.PlayError {
	pe := &errors.PlayError{Err: err, Turn: g.plies + 1, PlayText: text}
	if !g.status.Over {
		pe.Player = g.status.Player.String()
	}
	return pe
}

// Discard discards the card in the given hand slot. It is only legal when
// the player to move has no legal move.
func (g *Game) Discard(slot int) (Status, error) {
	if slot < 0 || slot >= onitama.Hand {
		return g.status, g.playError(errors.Wrapf(errors.ErrUnknownCard, "hand slot %d", slot), "")
	}
	card := g.sides[g.status.Player].Hand[slot]
	return g.Play(DiscardPlay(slot, card))
}

// resolve finds the legal play a submitted play names.
func (g *Game) resolve(p Play) (Play, error) {
	if g.status.Over {
		return Play{}, errors.ErrGameOver
	}
	if p.Slot < 0 || p.Slot >= onitama.Hand {
		return Play{}, errors.Wrapf(errors.ErrUnknownCard, "hand slot %d", p.Slot)
	}
	if held := g.sides[g.status.Player].Hand[p.Slot]; held != p.Card {
		return Play{}, errors.Wrapf(errors.ErrUnknownCard, "slot %d holds %s, not %s", p.Slot, held, p.Card)
	}

	plays := g.Plays()
	discardOnly := plays[0].Discard
	switch {
	case p.Discard && !discardOnly:
		return Play{}, errors.ErrMoveAvailable
	case !p.Discard && discardOnly:
		return Play{}, errors.ErrMustDiscard
	}

	for _, legal := range plays {
		if legal.matches(p) {
			return legal, nil
		}
	}
	return Play{}, errors.ErrIllegalPlay
}

// apply performs a legal play: it moves the piece on the board and in its
// side's slots, captures, checks for a win, then swaps the used card with
// the spare.
func (g *Game) apply(p Play) {
	mover := g.status.Player
	side := &g.sides[mover]

	if !p.Discard {
		g.board.Clear(p.From)
		if p.Capture {
			g.sides[mover.Opposite()].Capture(p.Captured)
		}
		g.board.Set(p.To, onitama.Occupant{Player: mover, Piece: p.Piece})
		side.Place(p.Piece, p.To)
	}

	side.Hand[p.Slot], g.spare = g.spare, side.Hand[p.Slot]
	g.plies++

	switch {
	case wayOfTheStone(p):
		g.status = Status{Player: mover, Over: true, Way: Stone}
	case wayOfTheStream(mover, p):
		g.status = Status{Player: mover, Over: true, Way: Stream}
	default:
		g.status = Status{Player: NextPlayer(mover)}
	}
}
