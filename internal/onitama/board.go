package onitama

// Occupant identifies the piece standing on a square.
type Occupant struct {
	Player Player
	Piece  Piece
}

// String returns e.g. "Red King".
func (o Occupant) String() string {
	return o.Player.String() + " " + o.Piece.String()
}

// cell is one board square; the zero value is empty.
type cell struct {
	occupant Occupant
	occupied bool
}

// Board is the dense grid view of piece placement. It is kept in step with
// each Side's slot array by the engine; Board itself enforces nothing.
type Board struct {
	// cells[file][rank]
	cells [Size][Size]cell
}

// BoardFromSides builds the grid view from both sides' slot arrays.
func BoardFromSides(red, blue Side) Board {
	var b Board
	for player, side := range [NumPlayers]Side{red, blue} {
		for piece, sq := range side.Pieces() {
			b.Set(sq, Occupant{Player: Player(player), Piece: piece})
		}
	}
	return b
}

// At returns the occupant of a square. The second result is false for an
// empty or off-board square.
func (b Board) At(sq Square) (Occupant, bool) {
	if !sq.Valid() {
		return Occupant{}, false
	}
	c := b.cells[sq.File][sq.Rank]
	return c.occupant, c.occupied
}

// Set places an occupant on a square, replacing any previous occupant.
func (b *Board) Set(sq Square, o Occupant) {
	if sq.Valid() {
		b.cells[sq.File][sq.Rank] = cell{occupant: o, occupied: true}
	}
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	if sq.Valid() {
		b.cells[sq.File][sq.Rank] = cell{}
	}
}

// OwnedBy reports whether a square holds a piece belonging to p.
func (b Board) OwnedBy(sq Square, p Player) bool {
	o, ok := b.At(sq)
	return ok && o.Player == p
}

// Count returns the number of occupied squares.
func (b Board) Count() int {
	n := 0
	for file := range b.cells {
		for rank := range b.cells[file] {
			if b.cells[file][rank].occupied {
				n++
			}
		}
	}
	return n
}
