package analysis

import (
	"testing"

	nchess "github.com/corentings/chess/v2"
	"github.com/park285/chessmail/internal/engine"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		want   Status
		winner nchess.Color
	}{
		{
			name:   "fools mate",
			fen:    "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			want:   StatusCheckmate,
			winner: nchess.Black,
		},
		{
			name: "stalemate",
			fen:  "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			want: StatusStalemate,
		},
		{
			name: "kings only",
			fen:  "k7/8/1K6/8/8/8/8/8 w - - 0 1",
			want: StatusInsufficientMaterial,
		},
		{
			name: "fifty move clock",
			fen:  "4k3/8/8/8/8/8/4P3/4K3 w - - 100 60",
			want: StatusFiftyMoveRule,
		},
		{
			name: "check with escape",
			fen:  "4k3/8/8/8/8/8/4q3/4K3 w - - 0 1",
			want: StatusCheck,
		},
		{
			name: "start position",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want: StatusInProgress,
		},
		{
			// both insufficient material and the fifty-move clock hold;
			// insufficient material wins
			name: "insufficient beats fifty move",
			fen:  "k7/8/1K6/8/8/8/8/8 w - - 100 80",
			want: StatusInsufficientMaterial,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustParse(t, tc.fen)
			got := Classify(pos)
			if got.Status != tc.want {
				t.Fatalf("Classify = %q, want %q", got.Status, tc.want)
			}
			if tc.want == StatusCheckmate && got.Winner != tc.winner {
				t.Errorf("winner = %v, want %v", got.Winner, tc.winner)
			}
		})
	}
}

func TestClassifyRepetitionFromHistory(t *testing.T) {
	pos := engine.StartingPosition()
	shuttle := []string{"Nf3", "Nf6", "Ng1", "Ng8", "Nf3", "Nf6", "Ng1", "Ng8"}
	for _, san := range shuttle {
		mv, err := engine.DecodeSAN(pos, san)
		if err != nil {
			t.Fatalf("decode %q: %v", san, err)
		}
		pos = pos.Apply(mv)
	}
	if got := Classify(pos); got.Status != StatusRepetition {
		t.Errorf("Classify = %q, want %q", got.Status, StatusRepetition)
	}
}

func TestIsGameOver(t *testing.T) {
	tests := []struct {
		label StatusLabel
		want  bool
	}{
		{StatusLabel{Status: StatusInProgress}, false},
		{StatusLabel{Status: StatusCheck}, false},
		{StatusLabel{Status: StatusCheckmate, Winner: nchess.White}, true},
		{StatusLabel{Status: StatusStalemate}, true},
		{StatusLabel{Status: StatusInsufficientMaterial}, true},
		{StatusLabel{Status: StatusFiftyMoveRule}, true},
		{StatusLabel{Status: StatusRepetition}, true},
	}
	for _, tc := range tests {
		if got := tc.label.IsGameOver(); got != tc.want {
			t.Errorf("IsGameOver(%q) = %v, want %v", tc.label.Status, got, tc.want)
		}
	}
}
