// Package output renders positions, cards and finished matches as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/onitama-go/internal/engine"
	"github.com/lgbarn/onitama-go/internal/onitama"
)

// Marks used in card diagrams.
const (
	markOrigin = 'o'
	markTarget = 'x'
	markEmpty  = '.'
)

// cardGap separates diagrams drawn side by side.
const cardGap = "   "

// Renderer draws positions for a terminal.
type Renderer struct {
	w     io.Writer
	ascii bool
}

// NewRenderer creates a renderer writing to w. With ascii set, pieces are
// drawn as letters (Red upper case, Blue lower case) instead of glyphs.
func NewRenderer(w io.Writer, ascii bool) *Renderer {
	return &Renderer{w: w, ascii: ascii}
}

// pieceGlyph returns the symbol drawn for an occupant.
func (r *Renderer) pieceGlyph(o onitama.Occupant) string {
	if r.ascii {
		letter := string(o.Piece.Letter())
		if o.Player == onitama.Blue {
			return strings.ToLower(letter)
		}
		return letter
	}
	switch {
	case o.Player == onitama.Red && o.Piece.IsKing():
		return "♔"
	case o.Player == onitama.Red:
		return "♙"
	case o.Piece.IsKing():
		return "♚"
	default:
		return "♟"
	}
}

// Board draws the grid with rank 5 at the top.
func (r *Renderer) Board(g *engine.Game) {
	files := fileLabels()
	fmt.Fprintf(r.w, "  %s\n", files)
	for rank := onitama.Rank5; rank >= onitama.Rank1; rank-- {
		cells := make([]string, 0, onitama.Size)
		for file := onitama.FileA; file <= onitama.FileE; file++ {
			o, ok := g.At(onitama.NewSquare(file, rank))
			if !ok {
				cells = append(cells, string(markEmpty))
				continue
			}
			cells = append(cells, r.pieceGlyph(o))
		}
		fmt.Fprintf(r.w, "%s %s %s\n", rank, strings.Join(cells, " "), rank)
	}
	fmt.Fprintf(r.w, "  %s\n", files)
}

func fileLabels() string {
	labels := make([]string, 0, onitama.Size)
	for file := onitama.FileA; file <= onitama.FileE; file++ {
		labels = append(labels, file.String())
	}
	return strings.Join(labels, " ")
}

// Position draws Blue's hand, the board, Red's hand, the spare and the
// status line.
func (r *Renderer) Position(g *engine.Game) {
	r.Hand(g, onitama.Blue)
	fmt.Fprintln(r.w)
	r.Board(g)
	fmt.Fprintln(r.w)
	r.Hand(g, onitama.Red)
	fmt.Fprintln(r.w)

	// The spare is drawn from the point of view of whoever receives it.
	viewer, _ := g.Player()
	fmt.Fprintf(r.w, "Spare:\n")
	r.cards([]onitama.CardID{g.Spare()}, viewer)
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, g.Status())
}

// Hand draws the two cards held by p, oriented for p.
func (r *Renderer) Hand(g *engine.Game, p onitama.Player) {
	hand := g.Side(p).Hand
	fmt.Fprintf(r.w, "%s:\n", p)
	r.cards(hand[:], p)
}

// cards draws diagrams side by side under their names.
func (r *Renderer) cards(ids []onitama.CardID, viewer onitama.Player) {
	diagrams := make([][]string, len(ids))
	names := make([]string, len(ids))
	for i, id := range ids {
		diagrams[i] = CardDiagram(id, viewer)
		names[i] = id.String()
	}
	width := len(diagrams[0][0])

	var header []string
	for _, name := range names {
		header = append(header, fmt.Sprintf("%-*s", width, name))
	}
	fmt.Fprintln(r.w, strings.TrimRight(strings.Join(header, cardGap), " "))
	for row := range onitama.Size {
		line := make([]string, len(ids))
		for i := range diagrams {
			line[i] = diagrams[i][row]
		}
		fmt.Fprintln(r.w, strings.Join(line, cardGap))
	}
}

// CardDiagram returns the five rows of a card's move diagram as seen from
// the board, centred on the moving piece. Blue's moves are mirrored.
func CardDiagram(id onitama.CardID, viewer onitama.Player) []string {
	var grid [onitama.Size][onitama.Size]byte
	for row := range grid {
		for col := range grid[row] {
			grid[row][col] = markEmpty
		}
	}
	const centre = onitama.Size / 2
	grid[centre][centre] = markOrigin
	for _, m := range id.Card().Moves() {
		m = m.For(viewer)
		grid[centre-int(m.Vertical)][centre+int(m.Horizontal)] = markTarget
	}

	rows := make([]string, onitama.Size)
	for i, row := range grid {
		cells := make([]string, onitama.Size)
		for j, c := range row {
			cells[j] = string(c)
		}
		rows[i] = strings.Join(cells, " ")
	}
	return rows
}

// Plays lists plays numbered from 1, matching the index form accepted by
// the notation package.
func (r *Renderer) Plays(plays []engine.Play) {
	for i, p := range plays {
		fmt.Fprintf(r.w, "%3d. %s\n", i+1, p)
	}
}

// Catalog lists every card with its stamp and diagram as Red sees it.
func (r *Renderer) Catalog() {
	for _, id := range onitama.Catalog() {
		fmt.Fprintf(r.w, "%2d %s (%s)\n", int(id), id, id.Card().Stamp)
		for _, row := range CardDiagram(id, onitama.Red) {
			fmt.Fprintf(r.w, "   %s\n", row)
		}
	}
}
