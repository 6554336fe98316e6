// Package engine implements the rules of the game: legal play enumeration,
// play application and win detection over the types in package onitama.
package engine

import (
	"fmt"
	"iter"

	"github.com/lgbarn/onitama-go/internal/errors"
	"github.com/lgbarn/onitama-go/internal/onitama"
)

// Game is one match. The board grid and both sides' slot arrays describe
// the same placement and are only ever updated together by apply.
//
// A Game has no shared state; copies made with Clone are independent.
type Game struct {
	board  onitama.Board
	sides  [onitama.NumPlayers]onitama.Side
	spare  onitama.CardID
	status Status
	plies  int
}

// New creates a game in the standard starting position. Red holds red,
// Blue holds blue, and the player stamped on spare moves first.
func New(red, blue [onitama.Hand]onitama.CardID, spare onitama.CardID) (*Game, error) {
	if err := validateDeal(red, blue, spare); err != nil {
		return nil, err
	}

	g := &Game{
		sides: [onitama.NumPlayers]onitama.Side{
			onitama.NewSide(onitama.Red, red),
			onitama.NewSide(onitama.Blue, blue),
		},
		spare:  spare,
		status: Status{Player: StartingPlayer(spare)},
	}
	g.board = onitama.BoardFromSides(g.sides[onitama.Red], g.sides[onitama.Blue])
	return g, nil
}

// validateDeal checks that the five dealt cards are distinct catalog cards.
func validateDeal(red, blue [onitama.Hand]onitama.CardID, spare onitama.CardID) error {
	dealt := []onitama.CardID{red[0], red[1], blue[0], blue[1], spare}
	seen := make(map[onitama.CardID]bool, len(dealt))
	for _, id := range dealt {
		if !id.Valid() {
			return errors.Wrapf(errors.ErrUnknownCard, "card id %d", int(id))
		}
		if seen[id] {
			return errors.Wrapf(errors.ErrInvalidDeal, "%s dealt twice", id)
		}
		seen[id] = true
	}
	return nil
}

// Player returns the player to move. The second result is false once the
// game is over.
func (g *Game) Player() (onitama.Player, bool) {
	return g.status.Player, !g.status.Over
}

// Winner returns the winning player. The second result is false while the
// game is in progress.
func (g *Game) Winner() (onitama.Player, bool) {
	return g.status.Player, g.status.Over
}

// Status returns whose turn it is, or who won and how.
func (g *Game) Status() Status {
	return g.status
}

// Over reports whether the game has been won.
func (g *Game) Over() bool {
	return g.status.Over
}

// Plies returns the number of plays applied so far.
func (g *Game) Plies() int {
	return g.plies
}

// Side returns a snapshot of a player's pieces and hand.
func (g *Game) Side(p onitama.Player) onitama.Side {
	return g.sides[p]
}

// Spare returns the face-up card held by neither side.
func (g *Game) Spare() onitama.CardID {
	return g.spare
}

// Board returns a snapshot of the board grid.
func (g *Game) Board() onitama.Board {
	return g.board
}

// At returns the occupant of a square.
func (g *Game) At(sq onitama.Square) (onitama.Occupant, bool) {
	return g.board.At(sq)
}

// Pieces yields a player's pieces still on the board, in slot order.
func (g *Game) Pieces(p onitama.Player) iter.Seq2[onitama.Piece, onitama.Square] {
	side := g.sides[p]
	return side.Pieces()
}

// Distance returns the Chebyshev distance from a player's King to the
// opponent's home square, or -1 if that King has been captured.
func (g *Game) Distance(p onitama.Player) int {
	king, ok := g.sides[p].Square(onitama.King)
	if !ok {
		return -1
	}
	return king.Distance(onitama.KingHome(p.Opposite()))
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	return &c
}

// Validate checks that the board grid and the slot arrays describe the
// same placement and that the five cards in play are distinct.
func (g *Game) Validate() error {
	placed := 0
	for player := onitama.Red; player <= onitama.Blue; player++ {
		for piece, sq := range g.Pieces(player) {
			want := onitama.Occupant{Player: player, Piece: piece}
			if !sq.Valid() {
				return errors.Wrapf(errors.ErrInvalidPosition, "%v on off-board square", want)
			}
			got, ok := g.board.At(sq)
			if !ok || got != want {
				return errors.Wrapf(errors.ErrInvalidPosition, "%v at %v but board has %s", want, sq, describe(got, ok))
			}
			placed++
		}
	}
	if n := g.board.Count(); n != placed {
		return errors.Wrapf(errors.ErrInvalidPosition, "board has %d pieces, sides have %d", n, placed)
	}

	red, blue := g.sides[onitama.Red].Hand, g.sides[onitama.Blue].Hand
	return validateDeal(red, blue, g.spare)
}

func describe(o onitama.Occupant, ok bool) string {
	if !ok {
		return "nothing"
	}
	return fmt.Sprint(o)
}
