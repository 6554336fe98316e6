package config

import (
	"fmt"

	"github.com/lgbarn/onitama-go/internal/errors"
	"github.com/lgbarn/onitama-go/internal/onitama"
)

// DealConfig selects the five cards of a match.
type DealConfig struct {
	// Fixed deal, by catalog id
	RedCards  [onitama.Hand]int
	BlueCards [onitama.Hand]int
	Spare     int

	// Random deals cards from a shuffle seeded with Seed, ignoring the
	// fixed deal. A zero Seed means a fresh seed is drawn per match.
	Random bool
	Seed   int64
}

// NewDealConfig creates a DealConfig holding the default deal.
func NewDealConfig() *DealConfig {
	return &DealConfig{
		RedCards:  [onitama.Hand]int{8, 9},
		BlueCards: [onitama.Hand]int{10, 11},
		Spare:     12,
	}
}

// SetFixed replaces the fixed deal with the named cards.
func (d *DealConfig) SetFixed(red, blue [onitama.Hand]onitama.CardID, spare onitama.CardID) {
	d.RedCards = [onitama.Hand]int{int(red[0]), int(red[1])}
	d.BlueCards = [onitama.Hand]int{int(blue[0]), int(blue[1])}
	d.Spare = int(spare)
}

// Fixed returns the fixed deal as card ids.
func (d *DealConfig) Fixed() (red, blue [onitama.Hand]onitama.CardID, spare onitama.CardID) {
	red = [onitama.Hand]onitama.CardID{onitama.CardID(d.RedCards[0]), onitama.CardID(d.RedCards[1])}
	blue = [onitama.Hand]onitama.CardID{onitama.CardID(d.BlueCards[0]), onitama.CardID(d.BlueCards[1])}
	return red, blue, onitama.CardID(d.Spare)
}

// Validate checks that the fixed deal names five distinct catalog cards.
// It is not consulted for random deals.
func (d *DealConfig) Validate() error {
	if d.Random {
		return nil
	}
	ids := []int{d.RedCards[0], d.RedCards[1], d.BlueCards[0], d.BlueCards[1], d.Spare}
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if !onitama.CardID(id).Valid() {
			return fmt.Errorf("card id %d outside 0..%d: %w", id, onitama.NumCards-1, errors.ErrInvalidConfig)
		}
		if seen[id] {
			return fmt.Errorf("card %s dealt twice: %w", onitama.CardID(id), errors.ErrInvalidConfig)
		}
		seen[id] = true
	}
	return nil
}
