package engine

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/onitama-go/internal/errors"
	"github.com/lgbarn/onitama-go/internal/onitama"
)

// Catalog ids used throughout the tests.
const (
	tiger    onitama.CardID = 0
	crab     onitama.CardID = 1
	monkey   onitama.CardID = 2
	crane    onitama.CardID = 3
	dragon   onitama.CardID = 4
	elephant onitama.CardID = 5
	boar     onitama.CardID = 7
	frog     onitama.CardID = 8
	goose    onitama.CardID = 9
	horse    onitama.CardID = 10
	eel      onitama.CardID = 11
	rabbit   onitama.CardID = 12
	ox       onitama.CardID = 14
)

func sq(s string) onitama.Square {
	square, err := onitama.ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return square
}

// newDefaultGame deals Frog and Goose to Red, Horse and Eel to Blue and
// Rabbit as the spare, so Blue opens.
func newDefaultGame(t *testing.T) *Game {
	t.Helper()
	g, err := New([2]onitama.CardID{frog, goose}, [2]onitama.CardID{horse, eel}, rabbit)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g
}

func mustSetup(t *testing.T, s Setup) *Game {
	t.Helper()
	g, err := NewFromSetup(s)
	if err != nil {
		t.Fatalf("NewFromSetup() error: %v", err)
	}
	return g
}

type pieces map[onitama.Piece]onitama.Square

func TestNewStartingLayout(t *testing.T) {
	g := newDefaultGame(t)

	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	for player := onitama.Red; player <= onitama.Blue; player++ {
		side := g.Side(player)
		for piece := onitama.King; piece < onitama.Pieces; piece++ {
			got, ok := side.Square(piece)
			want := onitama.StartSquare(player, piece)
			if !ok || got != want {
				t.Errorf("%v %v on %v (alive %v), want %v", player, piece, got, ok, want)
			}
		}
	}

	if got := g.Side(onitama.Red).Hand; got != [2]onitama.CardID{frog, goose} {
		t.Errorf("Red hand = %v", got)
	}
	if got := g.Spare(); got != rabbit {
		t.Errorf("Spare() = %v, want Rabbit", got)
	}
	if got := g.Board().Count(); got != 10 {
		t.Errorf("Board().Count() = %d, want 10", got)
	}
}

func TestNewKingsAndDistance(t *testing.T) {
	g := newDefaultGame(t)

	if o, ok := g.At(sq("c1")); !ok || o != (onitama.Occupant{Player: onitama.Red, Piece: onitama.King}) {
		t.Errorf("At(c1) = %v, %v; want Red King", o, ok)
	}
	if o, ok := g.At(sq("c5")); !ok || o != (onitama.Occupant{Player: onitama.Blue, Piece: onitama.King}) {
		t.Errorf("At(c5) = %v, %v; want Blue King", o, ok)
	}
	if got := g.Distance(onitama.Red); got != 4 {
		t.Errorf("Distance(Red) = %d, want 4", got)
	}
	if got := g.Distance(onitama.Blue); got != 4 {
		t.Errorf("Distance(Blue) = %d, want 4", got)
	}
}

func TestNewOpeningPlayerFollowsSpareStamp(t *testing.T) {
	tests := []struct {
		name  string
		spare onitama.CardID
		want  onitama.Player
	}{
		{"blue stamp", rabbit, onitama.Blue},
		{"red stamp", dragon, onitama.Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := New([2]onitama.CardID{frog, goose}, [2]onitama.CardID{horse, eel}, tt.spare)
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			got, ok := g.Player()
			if !ok || got != tt.want {
				t.Errorf("Player() = %v, %v; want %v, true", got, ok, tt.want)
			}
		})
	}
}

func TestNewRejectsBadDeal(t *testing.T) {
	tests := []struct {
		name  string
		red   [2]onitama.CardID
		blue  [2]onitama.CardID
		spare onitama.CardID
		want  error
	}{
		{"duplicate in hand", [2]onitama.CardID{tiger, tiger}, [2]onitama.CardID{crab, monkey}, crane, errors.ErrInvalidDeal},
		{"duplicate across hands", [2]onitama.CardID{tiger, crab}, [2]onitama.CardID{crab, monkey}, crane, errors.ErrInvalidDeal},
		{"spare held", [2]onitama.CardID{tiger, crab}, [2]onitama.CardID{monkey, crane}, tiger, errors.ErrInvalidDeal},
		{"unknown id", [2]onitama.CardID{tiger, 16}, [2]onitama.CardID{monkey, crane}, crab, errors.ErrUnknownCard},
		{"negative id", [2]onitama.CardID{tiger, crab}, [2]onitama.CardID{monkey, crane}, -1, errors.ErrUnknownCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := New(tt.red, tt.blue, tt.spare)
			if !stderrors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
			if g != nil {
				t.Error("New() returned a game alongside an error")
			}
		})
	}
}

func TestStartingAndNextPlayer(t *testing.T) {
	for _, id := range onitama.Catalog() {
		if got, want := StartingPlayer(id), id.Card().Stamp; got != want {
			t.Errorf("StartingPlayer(%v) = %v, want %v", id, got, want)
		}
	}
	if got := NextPlayer(onitama.Red); got != onitama.Blue {
		t.Errorf("NextPlayer(Red) = %v", got)
	}
	if got := NextPlayer(onitama.Blue); got != onitama.Red {
		t.Errorf("NextPlayer(Blue) = %v", got)
	}
}

func TestTurnsAlternateRegardlessOfStamp(t *testing.T) {
	// Blue opens (Rabbit is Blue-stamped) and plays Horse, a Red-stamped
	// card, which becomes the spare. Red still moves next, then Blue.
	g := newDefaultGame(t)
	status, err := g.Play(MovePlay(0, horse, sq("a5"), sq("a4")))
	if err != nil {
		t.Fatalf("Play() error: %v", err)
	}
	if status.Player != onitama.Red || status.Over {
		t.Fatalf("status after Blue's play = %v, want Red to play", status)
	}

	status, err = g.Play(MovePlay(0, frog, sq("b1"), sq("a2")))
	if err != nil {
		t.Fatalf("Play() error: %v", err)
	}
	if status.Player != onitama.Blue {
		t.Errorf("status after Red's play = %v, want Blue to play", status)
	}
	if g.Plies() != 2 {
		t.Errorf("Plies() = %d, want 2", g.Plies())
	}
}

func TestNewFromSetupRejectsBadPositions(t *testing.T) {
	hands := [2][2]onitama.CardID{{tiger, crab}, {monkey, crane}}
	tests := []struct {
		name   string
		pieces [2]map[onitama.Piece]onitama.Square
		toMove onitama.Player
	}{
		{
			name:   "missing red king",
			pieces: [2]map[onitama.Piece]onitama.Square{pieces{onitama.PawnA: sq("a1")}, pieces{onitama.King: sq("c5")}},
		},
		{
			name:   "shared square",
			pieces: [2]map[onitama.Piece]onitama.Square{pieces{onitama.King: sq("c3")}, pieces{onitama.King: sq("c3")}},
		},
		{
			name:   "king already home",
			pieces: [2]map[onitama.Piece]onitama.Square{pieces{onitama.King: sq("c5")}, pieces{onitama.King: sq("a5")}},
		},
		{
			name:   "off board",
			pieces: [2]map[onitama.Piece]onitama.Square{pieces{onitama.King: {File: 5, Rank: 0}}, pieces{onitama.King: sq("c5")}},
		},
		{
			name:   "bad slot",
			pieces: [2]map[onitama.Piece]onitama.Square{pieces{onitama.King: sq("c1"), 7: sq("a1")}, pieces{onitama.King: sq("c5")}},
		},
		{
			name:   "bad player to move",
			pieces: [2]map[onitama.Piece]onitama.Square{pieces{onitama.King: sq("c1")}, pieces{onitama.King: sq("c5")}},
			toMove: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewFromSetup(Setup{Pieces: tt.pieces, Hands: hands, Spare: dragon, ToMove: tt.toMove})
			if !stderrors.Is(err, errors.ErrInvalidPosition) {
				t.Errorf("NewFromSetup() error = %v, want ErrInvalidPosition", err)
			}
		})
	}
}

func TestStartingSetupMatchesNew(t *testing.T) {
	fromSetup := mustSetup(t, StartingSetup([2]onitama.CardID{frog, goose}, [2]onitama.CardID{horse, eel}, rabbit))
	if *fromSetup != *newDefaultGame(t) {
		t.Error("NewFromSetup(StartingSetup(...)) differs from New(...)")
	}
}

func TestValidateDetectsDesync(t *testing.T) {
	g := newDefaultGame(t)
	g.board.Clear(sq("a1"))
	if err := g.Validate(); !stderrors.Is(err, errors.ErrInvalidPosition) {
		t.Errorf("Validate() after clearing a1 = %v, want ErrInvalidPosition", err)
	}

	g = newDefaultGame(t)
	g.board.Set(sq("c3"), onitama.Occupant{Player: onitama.Red, Piece: onitama.PawnA})
	if err := g.Validate(); !stderrors.Is(err, errors.ErrInvalidPosition) {
		t.Errorf("Validate() with extra board piece = %v, want ErrInvalidPosition", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := newDefaultGame(t)
	c := g.Clone()
	if _, err := c.Play(MovePlay(0, horse, sq("c5"), sq("c4"))); err != nil {
		t.Fatalf("Play() error: %v", err)
	}
	if diff := cmp.Diff(onitama.KingHome(onitama.Blue), mustKing(t, g, onitama.Blue)); diff != "" {
		t.Errorf("original Blue King moved (-want +got):\n%s", diff)
	}
	if g.Plies() != 0 {
		t.Errorf("original Plies() = %d, want 0", g.Plies())
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Status{Player: onitama.Red}, "Red to play"},
		{Status{Player: onitama.Blue, Over: true, Way: Stone}, "Blue wins by the Way of the Stone"},
		{Status{Player: onitama.Red, Over: true, Way: Stream}, "Red wins by the Way of the Stream"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func mustKing(t *testing.T, g *Game, p onitama.Player) onitama.Square {
	t.Helper()
	side := g.Side(p)
	king, ok := side.Square(onitama.King)
	if !ok {
		t.Fatalf("%v King captured", p)
	}
	return king
}

func TestSnapshotsAreQueryable(t *testing.T) {
	g := newDefaultGame(t)

	if king, ok := g.Side(onitama.Blue).Square(onitama.King); !ok || king != sq("c5") {
		t.Errorf("Side(Blue).Square(King) = %v, %v; want c5, true", king, ok)
	}
	if !g.Side(onitama.Red).Alive(onitama.PawnE) {
		t.Error("Side(Red).Alive(PawnE) = false at start")
	}
	if got := g.Side(onitama.Red).Count(); got != onitama.Pieces {
		t.Errorf("Side(Red).Count() = %d, want %d", got, onitama.Pieces)
	}
	if slot, ok := g.Side(onitama.Blue).Slot(eel); !ok || slot != 1 {
		t.Errorf("Side(Blue).Slot(Eel) = %d, %v; want 1, true", slot, ok)
	}
	if !g.Board().OwnedBy(sq("a5"), onitama.Blue) {
		t.Error("Board().OwnedBy(a5, Blue) = false")
	}
	if got := g.Board().Count(); got != 2*onitama.Pieces {
		t.Errorf("Board().Count() = %d, want %d", got, 2*onitama.Pieces)
	}
}
