// Package onitama provides the core value types of the game: players,
// board coordinates, moves, cards, pieces, the board grid and each side's
// piece placement and hand.
package onitama

// Player represents one of the two sides.
type Player int

const (
	Red  Player = iota // Starts on rank 1
	Blue               // Starts on rank 5; sees every card mirrored
)

// NumPlayers is the number of sides in a match.
const NumPlayers = 2

// String returns the string representation of a player.
func (p Player) String() string {
	if p == Blue {
		return "Blue"
	}
	return "Red"
}

// Opposite returns the other player.
func (p Player) Opposite() Player {
	if p == Red {
		return Blue
	}
	return Red
}

// HomeRank returns the back rank the player's pieces start on.
func (p Player) HomeRank() Rank {
	if p == Blue {
		return Rank5
	}
	return Rank1
}

// Constants for board, hand and side dimensions.
const (
	Size   = 5 // Files and ranks per side of the board
	Hand   = 2 // Cards held by each side
	Pieces = 5 // Piece slots per side: one King and four Pawns
)

// File represents a board file (column), 'a' through 'e'.
type File int

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
)

// Rank represents a board rank (row), '1' through '5'.
type Rank int

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
)

// Valid reports whether the file lies on the board.
func (f File) Valid() bool {
	return f >= FileA && f <= FileE
}

// Valid reports whether the rank lies on the board.
func (r Rank) Valid() bool {
	return r >= Rank1 && r <= Rank5
}

// String returns the file letter.
func (f File) String() string {
	if !f.Valid() {
		return "?"
	}
	return string(rune('a' + f))
}

// String returns the rank digit.
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rune('1' + r))
}

// Apply shifts the file by a horizontal offset. The second result is false
// when the shifted file falls off the board.
func (f File) Apply(h Horizontal) (File, bool) {
	shifted := f + File(h)
	return shifted, shifted.Valid()
}

// Apply shifts the rank by a vertical offset. The second result is false
// when the shifted rank falls off the board.
func (r Rank) Apply(v Vertical) (Rank, bool) {
	shifted := r + Rank(v)
	return shifted, shifted.Valid()
}

// Piece identifies one of a side's five piece slots. The slot of a piece
// never changes, including after it has been captured.
type Piece int

const (
	King Piece = iota
	PawnA
	PawnB
	PawnD
	PawnE
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"King", "PawnA", "PawnB", "PawnD", "PawnE"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	if p == King {
		return 'K'
	}
	return 'P'
}

// IsKing reports whether the piece is its side's King.
func (p Piece) IsKing() bool {
	return p == King
}

// HomeFile returns the file the piece starts on.
func (p Piece) HomeFile() File {
	switch p {
	case PawnA:
		return FileA
	case PawnB:
		return FileB
	case PawnD:
		return FileD
	case PawnE:
		return FileE
	default:
		return FileC
	}
}
