package onitama

import "fmt"

// Vertical is a signed rank offset. Positive values move Up (towards rank 5
// from Red's point of view), negative values move Down.
type Vertical int

// Horizontal is a signed file offset. Positive values move Right (towards
// file e from Red's point of view), negative values move Left.
type Horizontal int

// Up returns an upward offset of n ranks.
func Up(n int) Vertical { return Vertical(n) }

// Down returns a downward offset of n ranks.
func Down(n int) Vertical { return Vertical(-n) }

// Right returns a rightward offset of n files.
func Right(n int) Horizontal { return Horizontal(n) }

// Left returns a leftward offset of n files.
func Left(n int) Horizontal { return Horizontal(-n) }

// Move is a relative offset printed on a card. Moves in the catalog are
// written from Red's point of view.
type Move struct {
	Vertical   Vertical
	Horizontal Horizontal
}

// M creates a move from its two axis offsets.
func M(v Vertical, h Horizontal) Move {
	return Move{Vertical: v, Horizontal: h}
}

// Mirror returns the move as seen from the other side of the board:
// Up becomes Down and Left becomes Right.
func (m Move) Mirror() Move {
	return Move{Vertical: -m.Vertical, Horizontal: -m.Horizontal}
}

// For returns the move as it applies to the given player's pieces.
// Blue's moves are mirrored; Red's are returned unchanged.
func (m Move) For(p Player) Move {
	if p == Blue {
		return m.Mirror()
	}
	return m
}

// String returns the move as signed offsets, e.g. "Up(2) Right(0)".
func (m Move) String() string {
	v := fmt.Sprintf("Up(%d)", m.Vertical)
	if m.Vertical < 0 {
		v = fmt.Sprintf("Down(%d)", -m.Vertical)
	}
	h := fmt.Sprintf("Right(%d)", m.Horizontal)
	if m.Horizontal < 0 {
		h = fmt.Sprintf("Left(%d)", -m.Horizontal)
	}
	return v + " " + h
}
