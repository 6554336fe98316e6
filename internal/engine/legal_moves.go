package engine

import (
	"iter"

	"github.com/lgbarn/onitama-go/internal/onitama"
)

// Plays returns every legal play for the player to move, or nil once the
// game is over.
//
// A player with no legal move must discard, so an in-progress game always
// has at least one play: either the available moves, or exactly one
// discard per held card.
func (g *Game) Plays() []Play {
	if g.status.Over {
		return nil
	}

	mover := g.status.Player
	side := &g.sides[mover]
	plays := make([]Play, 0, onitama.Pieces*onitama.Hand*onitama.MaxMoves)

	for piece, from := range side.Pieces() {
		for slot, id := range side.Hand {
			plays = g.appendMoves(plays, mover, slot, id, piece, from)
		}
	}

	if len(plays) == 0 {
		for slot, id := range side.Hand {
			plays = append(plays, DiscardPlay(slot, id))
		}
	}
	return plays
}

// appendMoves appends the legal moves of one piece using one card.
func (g *Game) appendMoves(plays []Play, mover onitama.Player, slot int, id onitama.CardID, piece onitama.Piece, from onitama.Square) []Play {
	card := id.Card()
	for i, m := range card.Moves() {
		to, ok := from.Apply(m.For(mover))
		if !ok || g.board.OwnedBy(to, mover) {
			continue
		}

		p := Play{Slot: slot, Card: id, Piece: piece, MoveIndex: i, From: from, To: to}
		if o, occupied := g.board.At(to); occupied {
			p.Capture = true
			p.Captured = o.Piece
		}
		plays = append(plays, p)
	}
	return plays
}

// HasLegalMove reports whether the player to move can move a piece, as
// opposed to being forced to discard.
func (g *Game) HasLegalMove() bool {
	if g.status.Over {
		return false
	}
	side := g.sides[g.status.Player]
	for slot := range side.Hand {
		for _, from := range side.Pieces() {
			for range g.Dests(slot, from) {
				return true
			}
		}
	}
	return false
}

// Dests yields the squares the piece on from can reach using the card in
// the given hand slot. It yields nothing if from does not hold a piece of
// the player to move, the slot is out of range or the game is over.
//
// Each call returns a fresh sequence evaluated against the position at the
// time it is ranged over.
func (g *Game) Dests(slot int, from onitama.Square) iter.Seq[onitama.Square] {
	return func(yield func(onitama.Square) bool) {
		if g.status.Over || slot < 0 || slot >= onitama.Hand {
			return
		}
		mover := g.status.Player
		if !g.board.OwnedBy(from, mover) {
			return
		}

		card := g.sides[mover].Hand[slot].Card()
		for _, m := range card.Moves() {
			to, ok := from.Apply(m.For(mover))
			if !ok || g.board.OwnedBy(to, mover) {
				continue
			}
			if !yield(to) {
				return
			}
		}
	}
}
