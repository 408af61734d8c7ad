// Package analysis holds the move interpretation and heuristic ranking core:
// resolving player input to legal moves, classifying game state, and scoring
// candidate moves for suggestions.
package analysis

import (
	"strings"

	nchess "github.com/corentings/chess/v2"
	"github.com/park285/chessmail/internal/engine"
)

// ResolutionError reports input that matched no legal move under any
// supported notation. It carries the raw input for the remediation message.
type ResolutionError struct {
	Input string
}

func (e *ResolutionError) Error() string {
	return "cannot parse move: " + e.Input
}

// Resolve interprets raw player input against the position. Notations are
// tried in fixed order: four-character coordinate, algebraic, then
// five-character coordinate with promotion. Parse errors from earlier forms
// fall through to the next; only total failure surfaces as a ResolutionError.
func Resolve(pos *engine.Position, raw string) (nchess.Move, error) {
	input := strings.TrimSpace(raw)

	if mv, ok := resolveCoordinate(pos, input, false); ok {
		return mv, nil
	}
	if mv, err := engine.DecodeSAN(pos, input); err == nil {
		return mv, nil
	}
	if mv, ok := resolveCoordinate(pos, input, true); ok {
		return mv, nil
	}
	return nchess.Move{}, &ResolutionError{Input: raw}
}

func resolveCoordinate(pos *engine.Position, input string, withPromotion bool) (nchess.Move, bool) {
	want := 4
	if withPromotion {
		want = 5
	}
	if len(input) != want {
		return nchess.Move{}, false
	}
	input = strings.ToLower(input)

	from := engine.ParseSquare(input[0:2])
	to := engine.ParseSquare(input[2:4])
	if from == nchess.NoSquare || to == nchess.NoSquare {
		return nchess.Move{}, false
	}

	promo := nchess.NoPieceType
	if withPromotion {
		promo = engine.ParsePromotion(input[4:5])
		if promo == nchess.NoPieceType {
			return nchess.Move{}, false
		}
	}
	return pos.FindLegal(from, to, promo)
}
