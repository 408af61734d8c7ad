// Package engine adapts the corentings/chess rules library to the narrow
// surface the analyzer needs: position snapshots, legal move enumeration,
// game-state predicates, and notation conversion.
package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	nchess "github.com/corentings/chess/v2"
)

var ErrInvalidFEN = errors.New("invalid FEN")

// Position is an immutable snapshot of a board state. Apply returns a fresh
// Position and never touches the receiver, so a Position handed to the
// analyzer serializes identically before and after any query.
type Position struct {
	pos *nchess.Position
	// whether the side to move is in check; the library keeps this
	// unexported, so the adapter tracks it itself
	inCheck bool
	// repetition keys of the positions that led here, oldest first
	history []string
}

// ParseFEN builds a Position from standard board notation. "startpos" and the
// empty string are accepted as the initial position.
func ParseFEN(fen string) (*Position, error) {
	fen = strings.TrimSpace(fen)
	if fen == "" || fen == "startpos" {
		return StartingPosition(), nil
	}
	option, err := nchess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFEN, fen)
	}
	game := nchess.NewGame(option)
	pos := game.Position()
	return &Position{pos: pos, inCheck: derivedInCheck(pos)}, nil
}

func StartingPosition() *Position {
	return &Position{pos: nchess.NewGame().Position()}
}

// FEN serializes the position back to standard notation. The string parses to
// an equal position.
func (p *Position) FEN() string {
	return p.pos.String()
}

func (p *Position) Turn() nchess.Color {
	return p.pos.Turn()
}

// Board exposes the piece placement for rendering.
func (p *Position) Board() *nchess.Board {
	return p.pos.Board()
}

// LegalMoves enumerates every legal move in generator order. The order is
// deterministic for a given position and is preserved by the ranker on ties.
func (p *Position) LegalMoves() []nchess.Move {
	return p.pos.ValidMoves()
}

// FindLegal returns the legal move matching the given squares and promotion,
// carrying the tags the generator assigned (capture, check, castle).
func (p *Position) FindLegal(from, to nchess.Square, promo nchess.PieceType) (nchess.Move, bool) {
	for _, mv := range p.pos.ValidMoves() {
		if mv.S1() == from && mv.S2() == to && mv.Promo() == promo {
			return mv, true
		}
	}
	return nchess.Move{}, false
}

func (p *Position) IsLegal(mv nchess.Move) bool {
	_, ok := p.FindLegal(mv.S1(), mv.S2(), mv.Promo())
	return ok
}

func (p *Position) IsCapture(mv nchess.Move) bool {
	return mv.HasTag(nchess.Capture) || mv.HasTag(nchess.EnPassant)
}

// PieceAt returns the piece on sq, or chess.NoPiece.
func (p *Position) PieceAt(sq nchess.Square) nchess.Piece {
	return p.pos.Board().Piece(sq)
}

// Apply plays mv on a copy and returns the resulting snapshot. The receiver
// is left untouched, which is what makes scratch mate-probing safe.
func (p *Position) Apply(mv nchess.Move) *Position {
	next := p.pos.Update(&mv)
	history := make([]string, 0, len(p.history)+1)
	history = append(history, p.history...)
	history = append(history, p.repetitionKey())
	return &Position{pos: next, inCheck: mv.HasTag(nchess.Check), history: history}
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.inCheck
}

// derivedInCheck computes the check state from the board alone, for positions
// that do not come out of Apply (the move tag is unavailable there).
func derivedInCheck(pos *nchess.Position) bool {
	board := pos.Board()
	turn := pos.Turn()
	for sq, piece := range board.SquareMap() {
		if piece.Type() == nchess.King && piece.Color() == turn {
			return squareAttacked(board, sq, turn.Other())
		}
	}
	return false
}

// squareAttacked reports whether any piece of color by attacks target.
func squareAttacked(board *nchess.Board, target nchess.Square, by nchess.Color) bool {
	tf, tr := int(target.File()), int(target.Rank())

	pieceOn := func(f, r int) nchess.Piece {
		if f < 0 || f > 7 || r < 0 || r > 7 {
			return nchess.NoPiece
		}
		return board.Piece(nchess.NewSquare(nchess.File(f), nchess.Rank(r)))
	}
	attacker := func(p nchess.Piece, pt nchess.PieceType) bool {
		return p != nchess.NoPiece && p.Color() == by && p.Type() == pt
	}

	knightJumps := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	for _, d := range knightJumps {
		if attacker(pieceOn(tf+d[0], tr+d[1]), nchess.Knight) {
			return true
		}
	}

	kingSteps := [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	for _, d := range kingSteps {
		if attacker(pieceOn(tf+d[0], tr+d[1]), nchess.King) {
			return true
		}
	}

	// pawns attack toward higher ranks for white, lower for black
	pawnRank := tr - 1
	if by == nchess.Black {
		pawnRank = tr + 1
	}
	for _, df := range []int{-1, 1} {
		if attacker(pieceOn(tf+df, pawnRank), nchess.Pawn) {
			return true
		}
	}

	slide := func(dirs [4][2]int, pt nchess.PieceType) bool {
		for _, d := range dirs {
			f, r := tf+d[0], tr+d[1]
			for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
				p := pieceOn(f, r)
				if p != nchess.NoPiece {
					if p.Color() == by && (p.Type() == pt || p.Type() == nchess.Queen) {
						return true
					}
					break
				}
				f += d[0]
				r += d[1]
			}
		}
		return false
	}
	straight := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal := [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	return slide(straight, nchess.Rook) || slide(diagonal, nchess.Bishop)
}

func (p *Position) IsCheckmate() bool {
	return p.pos.Status() == nchess.Checkmate
}

func (p *Position) IsStalemate() bool {
	return p.pos.Status() == nchess.Stalemate
}

// IsInsufficientMaterial covers K vs K, lone-minor endings, and same-colored
// bishop endings. Any pawn, rook, or queen on the board is mating material.
func (p *Position) IsInsufficientMaterial() bool {
	var white, black []nchess.PieceType
	var whiteBishopLight, blackBishopLight bool

	for sq, piece := range p.pos.Board().SquareMap() {
		pt := piece.Type()
		if pt == nchess.King {
			continue
		}
		if pt == nchess.Pawn || pt == nchess.Rook || pt == nchess.Queen {
			return false
		}
		light := (int(sq.File())+int(sq.Rank()))%2 == 1
		if piece.Color() == nchess.White {
			white = append(white, pt)
			if pt == nchess.Bishop {
				whiteBishopLight = light
			}
		} else {
			black = append(black, pt)
			if pt == nchess.Bishop {
				blackBishopLight = light
			}
		}
	}

	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1, len(black) == 0 && len(white) == 1:
		// the single survivor is a minor piece; majors returned above
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0] == nchess.Bishop && black[0] == nchess.Bishop &&
			whiteBishopLight == blackBishopLight
	}
	return false
}

// IsFiftyMoveRule reports a claimable fifty-move draw: one hundred halfmoves
// without a pawn move or capture, in a position that still has legal moves.
func (p *Position) IsFiftyMoveRule() bool {
	return p.halfMoveClock() >= 100 && len(p.pos.ValidMoves()) > 0
}

// IsRepetition reports whether the current position occurred at least three
// times in the line recorded by Apply. A position parsed straight from FEN
// carries no history and never repeats.
func (p *Position) IsRepetition() bool {
	key := p.repetitionKey()
	count := 1
	for _, h := range p.history {
		if h == key {
			count++
		}
	}
	return count >= 3
}

func (p *Position) FullMoveNumber() int {
	fields := strings.Fields(p.pos.String())
	if len(fields) < 6 {
		return 1
	}
	n, err := strconv.Atoi(fields[5])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (p *Position) halfMoveClock() int {
	fields := strings.Fields(p.pos.String())
	if len(fields) < 5 {
		return 0
	}
	n, err := strconv.Atoi(fields[4])
	if err != nil {
		return 0
	}
	return n
}

// repetitionKey drops the move counters: two positions repeat when placement,
// side to move, castling rights, and en-passant target all match.
func (p *Position) repetitionKey() string {
	fields := strings.Fields(p.pos.String())
	if len(fields) < 4 {
		return p.pos.String()
	}
	return strings.Join(fields[:4], " ")
}
