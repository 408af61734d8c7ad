package engine

import (
	"fmt"
	"strings"

	nchess "github.com/corentings/chess/v2"
)

// ErrorKind distinguishes the ways algebraic parsing can fail. The resolver
// treats all of them as fallthrough signals, but callers that talk to the
// adapter directly get the distinction.
type ErrorKind int

const (
	InvalidNotation ErrorKind = iota
	IllegalMove
	AmbiguousMove
)

func (k ErrorKind) String() string {
	switch k {
	case IllegalMove:
		return "illegal move"
	case AmbiguousMove:
		return "ambiguous move"
	default:
		return "invalid notation"
	}
}

type EngineError struct {
	Kind  ErrorKind
	Input string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %q", e.Kind, e.Input)
}

// DecodeSAN parses algebraic notation ("Nf3", "O-O", "exd5") against the
// position. The returned move is guaranteed legal.
func DecodeSAN(pos *Position, text string) (nchess.Move, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nchess.Move{}, &EngineError{Kind: InvalidNotation, Input: text}
	}
	mv, err := nchess.AlgebraicNotation{}.Decode(pos.pos, text)
	if err != nil {
		return nchess.Move{}, &EngineError{Kind: classifySANError(err), Input: text}
	}
	legal, ok := pos.FindLegal(mv.S1(), mv.S2(), mv.Promo())
	if !ok {
		return nchess.Move{}, &EngineError{Kind: IllegalMove, Input: text}
	}
	return legal, nil
}

func classifySANError(err error) ErrorKind {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "ambiguous"):
		return AmbiguousMove
	case strings.Contains(msg, "illegal"):
		return IllegalMove
	default:
		return InvalidNotation
	}
}

// EncodeSAN renders mv in algebraic notation relative to pos.
func EncodeSAN(pos *Position, mv nchess.Move) string {
	return nchess.AlgebraicNotation{}.Encode(pos.pos, &mv)
}

// MoveToUCI renders the coordinate form: from-square, to-square, and the
// promotion letter when one applies ("e2e4", "e7e8q").
func MoveToUCI(mv nchess.Move) string {
	uci := mv.S1().String() + mv.S2().String()
	switch mv.Promo() {
	case nchess.Queen:
		uci += "q"
	case nchess.Rook:
		uci += "r"
	case nchess.Bishop:
		uci += "b"
	case nchess.Knight:
		uci += "n"
	}
	return uci
}

// ParseSquare reads two-character square notation ("e2"). Returns
// chess.NoSquare on anything else.
func ParseSquare(s string) nchess.Square {
	if len(s) != 2 {
		return nchess.NoSquare
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return nchess.NoSquare
	}
	return nchess.NewSquare(nchess.File(file), nchess.Rank(rank))
}

// ParsePromotion maps a promotion letter to its piece type.
func ParsePromotion(s string) nchess.PieceType {
	switch s {
	case "q":
		return nchess.Queen
	case "r":
		return nchess.Rook
	case "b":
		return nchess.Bishop
	case "n":
		return nchess.Knight
	default:
		return nchess.NoPieceType
	}
}

// PieceName returns the spoken name used in suggestion justifications.
func PieceName(pt nchess.PieceType) string {
	switch pt {
	case nchess.Pawn:
		return "pawn"
	case nchess.Knight:
		return "knight"
	case nchess.Bishop:
		return "bishop"
	case nchess.Rook:
		return "rook"
	case nchess.Queen:
		return "queen"
	case nchess.King:
		return "king"
	default:
		return ""
	}
}

// ColorName returns "white" or "black".
func ColorName(c nchess.Color) string {
	if c == nchess.White {
		return "white"
	}
	return "black"
}
