package onitama

import "fmt"

// Square is a (file, rank) coordinate on the board.
type Square struct {
	File File
	Rank Rank
}

// NewSquare creates a square from a file and rank.
func NewSquare(file File, rank Rank) Square {
	return Square{File: file, Rank: rank}
}

// ParseSquare parses algebraic coordinates such as "c1".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: want file and rank", s)
	}
	sq := Square{File: File(s[0] - 'a'), Rank: Rank(s[1] - '1')}
	if s[0] < 'a' || s[1] < '1' || !sq.Valid() {
		return Square{}, fmt.Errorf("square %q: off the board", s)
	}
	return sq, nil
}

// Valid reports whether both coordinates lie on the board.
func (s Square) Valid() bool {
	return s.File.Valid() && s.Rank.Valid()
}

// String returns the algebraic coordinates of the square.
func (s Square) String() string {
	return s.File.String() + s.Rank.String()
}

// Apply returns the square reached by offsetting s by m. The second result
// is false if either axis leaves the board.
func (s Square) Apply(m Move) (Square, bool) {
	file, ok := s.File.Apply(m.Horizontal)
	if !ok {
		return Square{}, false
	}
	rank, ok := s.Rank.Apply(m.Vertical)
	if !ok {
		return Square{}, false
	}
	return Square{File: file, Rank: rank}, true
}

// Distance returns the Chebyshev distance between two squares.
func (s Square) Distance(other Square) int {
	return max(abs(int(s.File-other.File)), abs(int(s.Rank-other.Rank)))
}

// KingHome returns the square a player's King starts on. Moving one's own
// King onto the opponent's KingHome wins the game.
func KingHome(p Player) Square {
	return Square{File: King.HomeFile(), Rank: p.HomeRank()}
}

// StartSquare returns the square a piece starts the game on.
func StartSquare(p Player, piece Piece) Square {
	return Square{File: piece.HomeFile(), Rank: p.HomeRank()}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
