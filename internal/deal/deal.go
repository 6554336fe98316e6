// Package deal chooses the five cards used in a match.
//
// Random deals are drawn from a seeded PRNG so a match can be replayed from
// its seed. NewSeed draws a high-entropy seed from crypto/rand.
package deal

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/lgbarn/onitama-go/internal/onitama"
)

// Deal is the card assignment for one match.
type Deal struct {
	Red   [onitama.Hand]onitama.CardID
	Blue  [onitama.Hand]onitama.CardID
	Spare onitama.CardID
}

// Default returns the fixed deal used when no random deal is requested:
// Frog and Goose to Red, Horse and Eel to Blue, Rabbit as the spare.
func Default() Deal {
	return Deal{
		Red:   [onitama.Hand]onitama.CardID{8, 9},
		Blue:  [onitama.Hand]onitama.CardID{10, 11},
		Spare: 12,
	}
}

// FromSeed deals five distinct cards using a PRNG seeded with seed. The
// same seed always yields the same deal.
func FromSeed(seed int64) Deal {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: deals need reproducibility, not secrecy
	perm := r.Perm(onitama.NumCards)
	return Deal{
		Red:   [onitama.Hand]onitama.CardID{onitama.CardID(perm[0]), onitama.CardID(perm[1])},
		Blue:  [onitama.Hand]onitama.CardID{onitama.CardID(perm[2]), onitama.CardID(perm[3])},
		Spare: onitama.CardID(perm[4]),
	}
}

// FromNames deals cards by name, e.g. FromNames("Tiger", "Crab", "Monkey", "Crane", "Dragon")
// gives Tiger and Crab to Red, Monkey and Crane to Blue and Dragon as the spare.
func FromNames(names ...string) (Deal, error) {
	if len(names) != 2*onitama.Hand+1 {
		return Deal{}, fmt.Errorf("deal needs %d card names, got %d", 2*onitama.Hand+1, len(names))
	}
	ids := make([]onitama.CardID, len(names))
	for i, name := range names {
		id, ok := onitama.CardByName(name)
		if !ok {
			return Deal{}, fmt.Errorf("unknown card %q", name)
		}
		ids[i] = id
	}
	return Deal{
		Red:   [onitama.Hand]onitama.CardID{ids[0], ids[1]},
		Blue:  [onitama.Hand]onitama.CardID{ids[2], ids[3]},
		Spare: ids[4],
	}, nil
}

// Cards returns the five dealt cards: Red's, then Blue's, then the spare.
func (d Deal) Cards() []onitama.CardID {
	return []onitama.CardID{d.Red[0], d.Red[1], d.Blue[0], d.Blue[1], d.Spare}
}

// String lists the deal, e.g. "Red: Frog Goose, Blue: Horse Eel, spare: Rabbit".
func (d Deal) String() string {
	return fmt.Sprintf("Red: %s %s, Blue: %s %s, spare: %s",
		d.Red[0], d.Red[1], d.Blue[0], d.Blue[1], d.Spare)
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
