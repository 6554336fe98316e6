package engine

import (
	"fmt"

	"github.com/lgbarn/onitama-go/internal/onitama"
)

// Play is one action a player can take on their turn: move a piece with a
// card from their hand, or discard a card when no move is possible.
//
// Plays returned by Game.Plays are fully populated. When submitting a play,
// only Discard, Slot, Card, From and To are compared against the legal set;
// the remaining fields are filled in from the matching legal play.
type Play struct {
	Discard bool

	Slot int            // Hand slot of the card used (0 or 1)
	Card onitama.CardID // Catalog id of the card used

	Piece     onitama.Piece  // The piece moved
	MoveIndex int            // Index of the move on the card
	From      onitama.Square // Source square
	To        onitama.Square // Destination square

	Capture  bool          // Whether an opposing piece stood on To
	Captured onitama.Piece // The captured piece, when Capture is set
}

// DiscardPlay creates a discard of the card held in the given hand slot.
func DiscardPlay(slot int, card onitama.CardID) Play {
	return Play{Discard: true, Slot: slot, Card: card}
}

// MovePlay creates a move of the piece on from to to, using the card held
// in the given hand slot.
func MovePlay(slot int, card onitama.CardID, from, to onitama.Square) Play {
	return Play{Slot: slot, Card: card, From: from, To: to}
}

// String returns the play in the notation accepted by the notation package,
// e.g. "Tiger c1c3" or "discard Crab".
func (p Play) String() string {
	if p.Discard {
		return "discard " + p.Card.String()
	}
	s := fmt.Sprintf("%s %s%s", p.Card, p.From, p.To)
	if p.Capture {
		s += "x"
	}
	return s
}

// matches reports whether a submitted play names the same action as a
// legal play.
func (p Play) matches(submitted Play) bool {
	if p.Discard != submitted.Discard || p.Slot != submitted.Slot || p.Card != submitted.Card {
		return false
	}
	return p.Discard || (p.From == submitted.From && p.To == submitted.To)
}
