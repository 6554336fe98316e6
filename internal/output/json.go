package output

import (
	"github.com/lgbarn/onitama-go/internal/onitama"
)

// JSONMatch represents a match in JSON format.
type JSONMatch struct {
	ID       string     `json:"id"`
	Deal     JSONDeal   `json:"deal"`
	Seed     int64      `json:"seed,omitempty"`
	Plays    []JSONPlay `json:"plays"`
	PlyCount int        `json:"plyCount"`
	Result   string     `json:"result"`
	Winner   string     `json:"winner,omitempty"`
	Way      string     `json:"way,omitempty"`
}

// JSONDeal lists the dealt cards by name.
type JSONDeal struct {
	Red   []string `json:"red"`
	Blue  []string `json:"blue"`
	Spare string   `json:"spare"`
}

// JSONPlay represents a play in JSON format.
type JSONPlay struct {
	Ply      int    `json:"ply"`
	Player   string `json:"player"`
	Text     string `json:"text"`
	Card     string `json:"card"`
	Discard  bool   `json:"discard,omitempty"`
	Piece    string `json:"piece,omitempty"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	Captured string `json:"captured,omitempty"`
}

// JSONOutput holds multiple matches for array output.
type JSONOutput struct {
	Matches []*JSONMatch `json:"matches"`
}

// MatchToJSON converts a match record to JSON form.
func MatchToJSON(m *Match) *JSONMatch {
	jm := &JSONMatch{
		ID:       m.ID,
		Deal:     dealToJSON(m),
		Seed:     m.Seed,
		Plays:    make([]JSONPlay, 0, len(m.Plays)),
		PlyCount: len(m.Plays),
		Result:   m.Result(),
	}

	for i, p := range m.Plays {
		jp := JSONPlay{
			Ply:     i + 1,
			Player:  m.Mover(i).String(),
			Text:    p.String(),
			Card:    p.Card.String(),
			Discard: p.Discard,
		}
		if !p.Discard {
			jp.Piece = p.Piece.String()
			jp.From = p.From.String()
			jp.To = p.To.String()
		}
		if p.Capture {
			jp.Captured = p.Captured.String()
		}
		jm.Plays = append(jm.Plays, jp)
	}

	if m.Final != nil && m.Final.Over() {
		status := m.Final.Status()
		jm.Winner = status.Player.String()
		jm.Way = status.Way.String()
	}
	return jm
}

func dealToJSON(m *Match) JSONDeal {
	names := func(ids [onitama.Hand]onitama.CardID) []string {
		return []string{ids[0].String(), ids[1].String()}
	}
	return JSONDeal{
		Red:   names(m.Deal.Red),
		Blue:  names(m.Deal.Blue),
		Spare: m.Deal.Spare.String(),
	}
}
