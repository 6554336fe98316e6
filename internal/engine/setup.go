package engine

import (
	"github.com/lgbarn/onitama-go/internal/errors"
	"github.com/lgbarn/onitama-go/internal/onitama"
)

// Setup describes an arbitrary in-progress position. Pieces missing from a
// player's map are treated as captured.
type Setup struct {
	Pieces [onitama.NumPlayers]map[onitama.Piece]onitama.Square
	Hands  [onitama.NumPlayers][onitama.Hand]onitama.CardID
	Spare  onitama.CardID
	ToMove onitama.Player
}

// StartingSetup returns the setup of a new game with the given deal.
func StartingSetup(red, blue [onitama.Hand]onitama.CardID, spare onitama.CardID) Setup {
	s := Setup{
		Hands:  [onitama.NumPlayers][onitama.Hand]onitama.CardID{red, blue},
		Spare:  spare,
		ToMove: StartingPlayer(spare),
	}
	for player := onitama.Red; player <= onitama.Blue; player++ {
		s.Pieces[player] = make(map[onitama.Piece]onitama.Square, onitama.Pieces)
		for piece := onitama.King; piece < onitama.Pieces; piece++ {
			s.Pieces[player][piece] = onitama.StartSquare(player, piece)
		}
	}
	return s
}

// NewFromSetup creates a game from a setup. Both Kings must be on the
// board and neither may already stand on the other's home square.
func NewFromSetup(s Setup) (*Game, error) {
	if err := validateDeal(s.Hands[onitama.Red], s.Hands[onitama.Blue], s.Spare); err != nil {
		return nil, err
	}
	if s.ToMove != onitama.Red && s.ToMove != onitama.Blue {
		return nil, errors.Wrapf(errors.ErrInvalidPosition, "player to move %d", int(s.ToMove))
	}

	g := &Game{
		spare:  s.Spare,
		status: Status{Player: s.ToMove},
	}

	for player := onitama.Red; player <= onitama.Blue; player++ {
		side := onitama.NewEmptySide(s.Hands[player])
		for piece, sq := range s.Pieces[player] {
			if piece < onitama.King || piece >= onitama.Pieces {
				return nil, errors.Wrapf(errors.ErrInvalidPosition, "%s piece slot %d", player, int(piece))
			}
			if !sq.Valid() {
				return nil, errors.Wrapf(errors.ErrInvalidPosition, "%s %s off the board", player, piece)
			}
			if o, taken := g.board.At(sq); taken {
				return nil, errors.Wrapf(errors.ErrInvalidPosition, "%s %s and %v both on %v", player, piece, o, sq)
			}
			side.Place(piece, sq)
			g.board.Set(sq, onitama.Occupant{Player: player, Piece: piece})
		}
		g.sides[player] = side
	}

	for player := onitama.Red; player <= onitama.Blue; player++ {
		king, ok := g.sides[player].Square(onitama.King)
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidPosition, "%s King missing", player)
		}
		if king == onitama.KingHome(player.Opposite()) {
			return nil, errors.Wrapf(errors.ErrInvalidPosition, "%s King already on %v", player, king)
		}
	}
	return g, nil
}
