package engine

import "github.com/lgbarn/onitama-go/internal/onitama"

// Way names how a game was won.
type Way int

const (
	NoWay  Way = iota // Game still in progress
	Stone             // Captured the opposing King
	Stream            // Moved one's own King onto the opposing King's home square
)

// String returns the string representation of a way.
func (w Way) String() string {
	switch w {
	case Stone:
		return "Way of the Stone"
	case Stream:
		return "Way of the Stream"
	default:
		return "none"
	}
}

// Status describes whose turn it is, or who won.
type Status struct {
	Player onitama.Player // Player to move, or the winner once Over is set
	Over   bool
	Way    Way // How the game was won, when Over is set
}

// String returns e.g. "Red to play" or "Blue wins by the Way of the Stone".
func (s Status) String() string {
	if s.Over {
		return s.Player.String() + " wins by the " + s.Way.String()
	}
	return s.Player.String() + " to play"
}

// StartingPlayer returns the player who opens a match dealt with the given
// spare card: the player whose colour is stamped on it.
func StartingPlayer(spare onitama.CardID) onitama.Player {
	return spare.Card().Stamp
}

// NextPlayer returns the player to move after mover completes a play.
// Turns alternate for the whole match; the spare's stamp only chooses who
// opens.
func NextPlayer(mover onitama.Player) onitama.Player {
	return mover.Opposite()
}

// wayOfTheStone reports whether a play captured the opposing King.
func wayOfTheStone(p Play) bool {
	return p.Capture && p.Captured == onitama.King
}

// wayOfTheStream reports whether a play moved the mover's King onto the
// opponent's home square.
func wayOfTheStream(mover onitama.Player, p Play) bool {
	return p.Piece == onitama.King && p.To == onitama.KingHome(mover.Opposite())
}
