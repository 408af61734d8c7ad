package analysis

import (
	"errors"
	"testing"

	nchess "github.com/corentings/chess/v2"
	"github.com/park285/chessmail/internal/engine"
)

func mustParse(t *testing.T, fen string) *engine.Position {
	t.Helper()
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

func TestResolveCoordinateRoundTrip(t *testing.T) {
	pos := engine.StartingPosition()
	for _, mv := range pos.LegalMoves() {
		uci := engine.MoveToUCI(mv)
		got, err := Resolve(pos, uci)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", uci, err)
		}
		if got.S1() != mv.S1() || got.S2() != mv.S2() || got.Promo() != mv.Promo() {
			t.Errorf("Resolve(%q) = %s, want %s", uci, engine.MoveToUCI(got), uci)
		}
	}
}

func TestResolveAlgebraic(t *testing.T) {
	pos := engine.StartingPosition()
	tests := []struct {
		input string
		want  string
	}{
		{"Nf3", "g1f3"},
		{"e4", "e2e4"},
		{"  d4  ", "d2d4"},
	}
	for _, tc := range tests {
		mv, err := Resolve(pos, tc.input)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tc.input, err)
		}
		if got := engine.MoveToUCI(mv); got != tc.want {
			t.Errorf("Resolve(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestResolvePromotion(t *testing.T) {
	pos := mustParse(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1")

	mv, err := Resolve(pos, "a7a8q")
	if err != nil {
		t.Fatalf("Resolve(a7a8q): %v", err)
	}
	if mv.Promo() != nchess.Queen {
		t.Errorf("promo = %v, want queen", mv.Promo())
	}

	mv, err = Resolve(pos, "a8=Q")
	if err != nil {
		t.Fatalf("Resolve(a8=Q): %v", err)
	}
	if mv.Promo() != nchess.Queen {
		t.Errorf("promo = %v, want queen", mv.Promo())
	}

	// a bare coordinate without the promotion letter matches nothing
	if _, err := Resolve(pos, "a7a8"); err == nil {
		t.Error("Resolve(a7a8) should fail: promotion moves need the piece letter")
	}
}

func TestResolveCaseInsensitiveCoordinates(t *testing.T) {
	pos := engine.StartingPosition()
	mv, err := Resolve(pos, "E2E4")
	if err != nil {
		t.Fatalf("Resolve(E2E4): %v", err)
	}
	if got := engine.MoveToUCI(mv); got != "e2e4" {
		t.Errorf("Resolve(E2E4) = %s, want e2e4", got)
	}
}

func TestResolveFailure(t *testing.T) {
	pos := engine.StartingPosition()
	for _, input := range []string{"", "zzzz", "e2e5", "Ke4", "e2e9", "a7a8x"} {
		_, err := Resolve(pos, input)
		if err == nil {
			t.Fatalf("Resolve(%q): expected error", input)
		}
		var re *ResolutionError
		if !errors.As(err, &re) {
			t.Fatalf("Resolve(%q) error type %T, want *ResolutionError", input, err)
		}
		if re.Input != input {
			t.Errorf("ResolutionError.Input = %q, want %q", re.Input, input)
		}
	}
}

func TestResolveDoesNotMutate(t *testing.T) {
	pos := engine.StartingPosition()
	before := pos.FEN()
	if _, err := Resolve(pos, "e4"); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(pos, "zzzz"); err == nil {
		t.Fatal("expected failure")
	}
	if got := pos.FEN(); got != before {
		t.Errorf("Resolve mutated the position: %q -> %q", before, got)
	}
}
