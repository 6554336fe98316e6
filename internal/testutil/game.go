package testutil

import (
	"testing"

	"github.com/lgbarn/onitama-go/internal/deal"
	"github.com/lgbarn/onitama-go/internal/engine"
	"github.com/lgbarn/onitama-go/internal/notation"
)

// MustNewGame creates a game from d, failing the test on error.
func MustNewGame(t testing.TB, d deal.Deal) *engine.Game {
	t.Helper()
	g, err := engine.New(d.Red, d.Blue, d.Spare)
	if err != nil {
		t.Fatalf("engine.New(%v) error: %v", d, err)
	}
	return g
}

// MustPlay applies plays given in notation, checking consistency after
// each one. It returns the status after the last play.
func MustPlay(t testing.TB, g *engine.Game, plays ...string) engine.Status {
	t.Helper()
	status := g.Status()
	for _, text := range plays {
		p, err := notation.Parse(g, text)
		if err != nil {
			t.Fatalf("ply %d: notation.Parse(%q) error: %v", g.Plies()+1, text, err)
		}
		if status, err = g.Play(p); err != nil {
			t.Fatalf("ply %d: Play(%q) error: %v", g.Plies()+1, text, err)
		}
		CheckConsistency(t, g)
	}
	return status
}

// CheckConsistency fails if the board and the sides' slot arrays disagree.
func CheckConsistency(t testing.TB, g *engine.Game) {
	t.Helper()
	if err := g.Validate(); err != nil {
		t.Fatalf("inconsistent game after ply %d: %v", g.Plies(), err)
	}
}
