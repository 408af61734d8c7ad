package analysis

import (
	nchess "github.com/corentings/chess/v2"
	"github.com/park285/chessmail/internal/engine"
)

// ScoredMove is a legal move with its heuristic merit and the human-readable
// reasons that contributed to it.
type ScoredMove struct {
	Move  nchess.Move
	Score float64
	Tags  []string
}

const (
	captureBase      = 5.0
	attackerPenalty  = 0.1
	checkmateBonus   = 100.0
	checkBonus       = 3.0
	castleBonus      = 4.0
	centerBonus      = 2.0
	extendedBonus    = 1.0
	developmentBonus = 2.0
)

const (
	tagCheckmate      = "checkmate!"
	tagGivesCheck     = "gives check"
	tagCastles        = "castles for king safety"
	tagControlsCenter = "controls center"
	tagDevelopsPiece  = "develops piece"
	tagPositional     = "positional"
)

var pieceValues = map[nchess.PieceType]float64{
	nchess.Pawn:   1,
	nchess.Knight: 3,
	nchess.Bishop: 3,
	nchess.Rook:   5,
	nchess.Queen:  9,
	nchess.King:   0,
}

var centerSquares = squareSet("d4", "e4", "d5", "e5")

var extendedCenter = squareSet(
	"c3", "d3", "e3", "f3",
	"c4", "f4",
	"c5", "f5",
	"c6", "d6", "e6", "f6",
)

func squareSet(names ...string) map[nchess.Square]struct{} {
	set := make(map[nchess.Square]struct{}, len(names))
	for _, name := range names {
		set[engine.ParseSquare(name)] = struct{}{}
	}
	return set
}

// Score evaluates every legal move independently and returns one entry per
// move in enumeration order. pos is never advanced.
func Score(pos *engine.Position) []ScoredMove {
	moves := pos.LegalMoves()
	scored := make([]ScoredMove, 0, len(moves))

	for _, mv := range moves {
		var score float64
		var tags []string

		if pos.IsCapture(mv) {
			victim := pos.PieceAt(mv.S2())
			attacker := pos.PieceAt(mv.S1())
			// en-passant leaves the target square empty; skip the component
			if victim != nchess.NoPiece && attacker != nchess.NoPiece {
				score += pieceValues[victim.Type()] -
					attackerPenalty*pieceValues[attacker.Type()] +
					captureBase
				tags = append(tags, "captures "+engine.PieceName(victim.Type()))
			}
		}

		// one-ply probe on a scratch copy; pos itself is never advanced
		next := pos.Apply(mv)
		mates := next.IsCheckmate()
		if mates {
			score += checkmateBonus
		} else if next.InCheck() {
			score += checkBonus
			tags = append(tags, tagGivesCheck)
		}

		if mv.HasTag(nchess.KingSideCastle) || mv.HasTag(nchess.QueenSideCastle) {
			score += castleBonus
			tags = append(tags, tagCastles)
		}

		inCenter := false
		if _, ok := centerSquares[mv.S2()]; ok {
			score += centerBonus
			tags = append(tags, tagControlsCenter)
			inCenter = true
		} else if _, ok := extendedCenter[mv.S2()]; ok {
			score += extendedBonus
		}

		if isDevelopingMove(pos, mv) {
			score += developmentBonus
			if !inCenter {
				tags = append(tags, tagDevelopsPiece)
			}
		}

		// a mating move carries the single mate tag regardless of what else fired
		if mates {
			tags = []string{tagCheckmate}
		}
		if len(tags) == 0 {
			tags = []string{tagPositional}
		}

		scored = append(scored, ScoredMove{Move: mv, Score: score, Tags: tags})
	}
	return scored
}

// isDevelopingMove reports a knight or bishop leaving its own back rank.
func isDevelopingMove(pos *engine.Position, mv nchess.Move) bool {
	piece := pos.PieceAt(mv.S1())
	if piece == nchess.NoPiece {
		return false
	}
	if piece.Type() != nchess.Knight && piece.Type() != nchess.Bishop {
		return false
	}
	if piece.Color() == nchess.White {
		return mv.S1().Rank() == nchess.Rank1
	}
	return mv.S1().Rank() == nchess.Rank8
}
