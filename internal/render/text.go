// Package render draws positions, as text for the default CLI output and as
// PNG for the -png export.
package render

import (
	"strings"

	nchess "github.com/corentings/chess/v2"
	"github.com/park285/chessmail/internal/engine"
)

var unicodePieces = map[nchess.Piece]string{
	nchess.WhiteKing:   "♔",
	nchess.WhiteQueen:  "♕",
	nchess.WhiteRook:   "♖",
	nchess.WhiteBishop: "♗",
	nchess.WhiteKnight: "♘",
	nchess.WhitePawn:   "♙",
	nchess.BlackKing:   "♚",
	nchess.BlackQueen:  "♛",
	nchess.BlackRook:   "♜",
	nchess.BlackBishop: "♝",
	nchess.BlackKnight: "♞",
	nchess.BlackPawn:   "♟",
}

var asciiPieces = map[nchess.Piece]string{
	nchess.WhiteKing:   "K",
	nchess.WhiteQueen:  "Q",
	nchess.WhiteRook:   "R",
	nchess.WhiteBishop: "B",
	nchess.WhiteKnight: "N",
	nchess.WhitePawn:   "P",
	nchess.BlackKing:   "k",
	nchess.BlackQueen:  "q",
	nchess.BlackRook:   "r",
	nchess.BlackBishop: "b",
	nchess.BlackKnight: "n",
	nchess.BlackPawn:   "p",
}

// Text renders the position as a labeled grid, rank 8 at the top, followed by
// the FEN, the side to move, and a check marker when one applies.
func Text(pos *engine.Position, style string) string {
	glyphs := unicodePieces
	empty := "·"
	if style == "ascii" {
		glyphs = asciiPieces
		empty = "."
	}

	var b strings.Builder
	board := pos.Board()
	for rank := nchess.Rank8; ; rank-- {
		b.WriteString(rank.String())
		b.WriteString(" ")
		for file := nchess.FileA; file <= nchess.FileH; file++ {
			piece := board.Piece(nchess.NewSquare(file, rank))
			if piece == nchess.NoPiece {
				b.WriteString(empty)
			} else {
				b.WriteString(glyphs[piece])
			}
			if file != nchess.FileH {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
		if rank == nchess.Rank1 {
			break
		}
	}
	b.WriteString("  a b c d e f g h\n")
	b.WriteString("\nFEN: ")
	b.WriteString(pos.FEN())
	b.WriteString("\nTurn: ")
	b.WriteString(engine.ColorName(pos.Turn()))
	b.WriteString("\n")
	if pos.InCheck() {
		b.WriteString("** CHECK **\n")
	}
	return b.String()
}
