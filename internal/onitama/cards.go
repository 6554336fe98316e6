package onitama

import "strings"

// MaxMoves is the largest number of moves printed on any card.
const MaxMoves = 4

// CardID indexes the card catalog.
type CardID int

// NumCards is the number of cards in the catalog.
const NumCards = 16

// Card is a named set of moves plus the stamp printed in its corner.
type Card struct {
	Name  string
	Stamp Player // The player who opens the match when this card is dealt as the spare

	moves [MaxMoves]Move
	n     int
}

// Moves returns the card's moves from Red's point of view.
func (c Card) Moves() []Move {
	return c.moves[:c.n:c.n]
}

// NumMoves returns the number of moves on the card.
func (c Card) NumMoves() int {
	return c.n
}

// Move returns the i'th move on the card.
func (c Card) Move(i int) Move {
	return c.moves[i]
}

func card(name string, stamp Player, moves ...Move) Card {
	c := Card{Name: name, Stamp: stamp, n: len(moves)}
	copy(c.moves[:], moves)
	return c
}

// catalog is never written after initialization.
var catalog = [NumCards]Card{
	// Neutral
	card("Tiger", Blue,
		M(Up(2), Right(0)),
		M(Down(1), Right(0)),
	),
	card("Crab", Blue,
		M(Up(1), Right(0)),
		M(Up(0), Right(2)),
		M(Up(0), Left(2)),
	),
	card("Monkey", Blue,
		M(Up(1), Left(1)),
		M(Up(1), Right(1)),
		M(Down(1), Left(1)),
		M(Down(1), Right(1)),
	),
	card("Crane", Blue,
		M(Up(1), Right(0)),
		M(Down(1), Left(1)),
		M(Down(1), Right(1)),
	),
	card("Dragon", Red,
		M(Up(1), Left(2)),
		M(Up(1), Right(2)),
		M(Down(1), Left(1)),
		M(Down(1), Right(1)),
	),
	card("Elephant", Red,
		M(Up(1), Left(1)),
		M(Up(1), Right(1)),
		M(Up(0), Left(1)),
		M(Up(0), Right(1)),
	),
	card("Mantis", Red,
		M(Up(1), Left(1)),
		M(Up(1), Right(1)),
		M(Down(1), Right(0)),
	),
	card("Boar", Red,
		M(Up(1), Right(0)),
		M(Up(0), Left(1)),
		M(Up(0), Right(1)),
	),

	// Left-leaning
	card("Frog", Red,
		M(Up(1), Left(1)),
		M(Up(0), Left(2)),
		M(Down(1), Right(1)),
	),
	card("Goose", Blue,
		M(Up(1), Left(1)),
		M(Up(0), Left(1)),
		M(Up(0), Right(1)),
		M(Down(1), Right(1)),
	),
	card("Horse", Red,
		M(Up(1), Right(0)),
		M(Up(0), Left(1)),
		M(Down(1), Right(0)),
	),
	card("Eel", Blue,
		M(Up(1), Left(1)),
		M(Up(0), Right(1)),
		M(Down(1), Left(1)),
	),

	// Right-leaning
	card("Rabbit", Blue,
		M(Up(1), Right(1)),
		M(Up(0), Right(2)),
		M(Down(1), Left(1)),
	),
	card("Rooster", Red,
		M(Up(1), Right(1)),
		M(Up(0), Right(1)),
		M(Up(0), Left(1)),
		M(Down(1), Left(1)),
	),
	card("Ox", Blue,
		M(Up(1), Left(0)),
		M(Up(0), Right(1)),
		M(Down(1), Left(0)),
	),
	card("Cobra", Red,
		M(Up(1), Right(1)),
		M(Up(0), Left(1)),
		M(Down(1), Right(1)),
	),
}

// Valid reports whether the id indexes the catalog.
func (id CardID) Valid() bool {
	return id >= 0 && id < NumCards
}

// Card returns the catalog entry for id. It panics if id is not Valid.
func (id CardID) Card() Card {
	return catalog[id]
}

// String returns the card name, or "Unknown" for ids outside the catalog.
func (id CardID) String() string {
	if !id.Valid() {
		return "Unknown"
	}
	return catalog[id].Name
}

// CardByName looks a card up by name, ignoring case.
func CardByName(name string) (CardID, bool) {
	for id := range catalog {
		if strings.EqualFold(catalog[id].Name, name) {
			return CardID(id), true
		}
	}
	return 0, false
}

// Catalog returns the ids of every card, in catalog order.
func Catalog() []CardID {
	ids := make([]CardID, NumCards)
	for i := range ids {
		ids[i] = CardID(i)
	}
	return ids
}
