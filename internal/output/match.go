package output

import (
	"github.com/lgbarn/onitama-go/internal/deal"
	"github.com/lgbarn/onitama-go/internal/engine"
	"github.com/lgbarn/onitama-go/internal/onitama"
)

// Match is the record of one match: its deal, every play in order and the
// final position.
type Match struct {
	ID    string
	Deal  deal.Deal
	Seed  int64 // zero for a fixed deal
	Plays []engine.Play
	Final *engine.Game
}

// NewMatch starts a record for a game created from d.
func NewMatch(id string, d deal.Deal, g *engine.Game) *Match {
	return &Match{ID: id, Deal: d, Final: g}
}

// Record appends an applied play.
func (m *Match) Record(p engine.Play) {
	m.Plays = append(m.Plays, p)
}

// Mover returns the player who made the i'th play, counting from 0.
func (m *Match) Mover(i int) onitama.Player {
	p := engine.StartingPlayer(m.Deal.Spare)
	if i%2 == 1 {
		p = engine.NextPlayer(p)
	}
	return p
}

// Result describes the outcome, or "unfinished".
func (m *Match) Result() string {
	if m.Final == nil || !m.Final.Over() {
		return "unfinished"
	}
	return m.Final.Status().String()
}
