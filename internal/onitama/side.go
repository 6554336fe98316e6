package onitama

import "iter"

// Side holds one player's piece placement and hand.
//
// Each of the five piece slots either holds a square or is captured. A
// captured slot stays empty for the rest of the match; slots are never
// renumbered.
type Side struct {
	squares  [Pieces]Square
	captured [Pieces]bool

	// Hand holds the catalog ids of the two cards the side may play.
	Hand [Hand]CardID
}

// NewSide creates a side with every piece on its starting square.
func NewSide(p Player, hand [Hand]CardID) Side {
	s := Side{Hand: hand}
	for piece := King; piece < Pieces; piece++ {
		s.squares[piece] = StartSquare(p, piece)
	}
	return s
}

// NewEmptySide creates a side whose slots are all captured. Pieces are
// added with Place.
func NewEmptySide(hand [Hand]CardID) Side {
	s := Side{Hand: hand}
	for piece := range s.captured {
		s.captured[piece] = true
	}
	return s
}

// Square returns the square a piece stands on. The second result is false
// if the piece has been captured or the slot is out of range.
func (s Side) Square(piece Piece) (Square, bool) {
	if piece < King || piece >= Pieces || s.captured[piece] {
		return Square{}, false
	}
	return s.squares[piece], true
}

// Place puts a piece on a square, reviving its slot if it was captured.
func (s *Side) Place(piece Piece, sq Square) {
	s.squares[piece] = sq
	s.captured[piece] = false
}

// Capture marks a piece as captured. Its slot stays reserved.
func (s *Side) Capture(piece Piece) {
	s.squares[piece] = Square{}
	s.captured[piece] = true
}

// Alive reports whether a piece is still on the board.
func (s Side) Alive(piece Piece) bool {
	_, ok := s.Square(piece)
	return ok
}

// Pieces yields each piece still on the board with its square, in slot
// order.
func (s Side) Pieces() iter.Seq2[Piece, Square] {
	squares, captured := s.squares, s.captured
	return func(yield func(Piece, Square) bool) {
		for piece := King; piece < Pieces; piece++ {
			if captured[piece] {
				continue
			}
			if !yield(piece, squares[piece]) {
				return
			}
		}
	}
}

// Count returns the number of pieces still on the board.
func (s Side) Count() int {
	n := 0
	for _, c := range s.captured {
		if !c {
			n++
		}
	}
	return n
}

// Cards returns the catalog entries of the two held cards.
func (s Side) Cards() [Hand]Card {
	return [Hand]Card{s.Hand[0].Card(), s.Hand[1].Card()}
}

// Slot returns the hand slot holding a card. The second result is false if
// the card is not in the hand.
func (s Side) Slot(id CardID) (int, bool) {
	for slot, held := range s.Hand {
		if held == id {
			return slot, true
		}
	}
	return 0, false
}
