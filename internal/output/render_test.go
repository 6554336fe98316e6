package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/onitama-go/internal/onitama"
)

func TestRenderer_BoardASCII(t *testing.T) {
	g, _ := newDefaultGame(t)
	var buf bytes.Buffer
	NewRenderer(&buf, true).Board(g)

	want := strings.Join([]string{
		"  a b c d e",
		"5 p p k p p 5",
		"4 . . . . . 4",
		"3 . . . . . 3",
		"2 . . . . . 2",
		"1 P P K P P 1",
		"  a b c d e",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Board() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_BoardGlyphs(t *testing.T) {
	g, _ := newDefaultGame(t)
	var buf bytes.Buffer
	NewRenderer(&buf, false).Board(g)

	lines := strings.Split(buf.String(), "\n")
	if got, want := lines[1], "5 ♟ ♟ ♚ ♟ ♟ 5"; got != want {
		t.Errorf("rank 5 = %q, want %q", got, want)
	}
	if got, want := lines[5], "1 ♙ ♙ ♔ ♙ ♙ 1"; got != want {
		t.Errorf("rank 1 = %q, want %q", got, want)
	}
}

func TestCardDiagram(t *testing.T) {
	tests := []struct {
		name   string
		card   string
		viewer onitama.Player
		want   []string
	}{
		{
			name:   "Frog for Red",
			card:   "Frog",
			viewer: onitama.Red,
			want: []string{
				". . . . .",
				". x . . .",
				"x . o . .",
				". . . x .",
				". . . . .",
			},
		},
		{
			name:   "Horse mirrored for Blue",
			card:   "Horse",
			viewer: onitama.Blue,
			want: []string{
				". . . . .",
				". . x . .",
				". . o x .",
				". . x . .",
				". . . . .",
			},
		},
		{
			name:   "Tiger for Red",
			card:   "Tiger",
			viewer: onitama.Red,
			want: []string{
				". . x . .",
				". . . . .",
				". . o . .",
				". . x . .",
				". . . . .",
			},
		},
		{
			name:   "Tiger mirrored for Blue",
			card:   "Tiger",
			viewer: onitama.Blue,
			want: []string{
				". . . . .",
				". . x . .",
				". . o . .",
				". . . . .",
				". . x . .",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			id, ok := onitama.CardByName(tt.card)
			if !ok {
				t.Fatalf("no card named %s", tt.card)
			}
			if diff := cmp.Diff(tt.want, CardDiagram(id, tt.viewer)); diff != "" {
				t.Errorf("CardDiagram() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderer_Hand(t *testing.T) {
	g, _ := newDefaultGame(t)
	var buf bytes.Buffer
	NewRenderer(&buf, true).Hand(g, onitama.Red)

	want := strings.Join([]string{
		"Red:",
		"Frog        Goose",
		". . . . .   . . . . .",
		". x . . .   . x . . .",
		"x . o . .   . x o x .",
		". . . x .   . . . x .",
		". . . . .   . . . . .",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Hand() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Position(t *testing.T) {
	g, _ := newDefaultGame(t)
	var buf bytes.Buffer
	NewRenderer(&buf, true).Position(g)

	out := buf.String()
	for _, want := range []string{"Blue:\nHorse", "Red:\nFrog", "Spare:\nRabbit", "Blue to play\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("Position() missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Blue:") > strings.Index(out, "5 p p k p p 5") {
		t.Error("Blue's hand should be drawn above the board")
	}
}

func TestRenderer_Plays(t *testing.T) {
	g, _ := newDefaultGame(t)
	var buf bytes.Buffer
	NewRenderer(&buf, true).Plays(g.Plays())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("Plays() wrote %d lines, want 9:\n%s", len(lines), buf.String())
	}
	if lines[0] != "  1. Horse c5c4" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[8] != "  9. Horse e5e4" {
		t.Errorf("last line = %q", lines[8])
	}
}

func TestRenderer_Catalog(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, true).Catalog()

	out := buf.String()
	if got := strings.Count(out, "\n"); got != onitama.NumCards*6 {
		t.Errorf("Catalog() wrote %d lines, want %d", got, onitama.NumCards*6)
	}
	if !strings.HasPrefix(out, " 0 Tiger (Blue)\n") {
		t.Errorf("Catalog() starts %q", out[:20])
	}
	if !strings.Contains(out, "15 Cobra (Red)\n") {
		t.Error("Catalog() missing Cobra")
	}
}
