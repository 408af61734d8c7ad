// Package presenter renders analysis results into the text blocks the CLI
// prints. Wording comes from the message catalog; every key has a literal
// fallback so a broken override never blanks the output.
package presenter

import (
	"fmt"
	"strings"

	"github.com/park285/chessmail/internal/analysis"
	"github.com/park285/chessmail/internal/engine"
	"github.com/park285/chessmail/internal/msgcat"
)

type Presenter struct {
	catalog *msgcat.Catalog
}

func New(catalog *msgcat.Catalog) *Presenter {
	return &Presenter{catalog: catalog}
}

func (p *Presenter) render(key string, data any, fallback string) string {
	if p != nil && p.catalog != nil {
		if s, err := p.catalog.Render(key, data); err == nil {
			return s
		}
	}
	return fallback
}

// MovePlayed reports the SAN of a move that was just applied.
func (p *Presenter) MovePlayed(san string) string {
	return p.render("move.played",
		map[string]any{"SAN": san},
		"played: "+san)
}

// LegalList renders the count and comma-joined SAN listing of legal moves.
func (p *Presenter) LegalList(pos *engine.Position) string {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return p.render("legal.none", nil, "no legal moves")
	}
	sans := make([]string, len(moves))
	for i, mv := range moves {
		sans[i] = engine.EncodeSAN(pos, mv)
	}
	joined := strings.Join(sans, ", ")
	return p.render("legal.header",
		map[string]any{"Count": len(moves), "Moves": joined},
		fmt.Sprintf("%d legal moves: %s", len(moves), joined))
}

// Suggestions renders ranked moves as numbered "SAN — reason; reason" lines.
func (p *Presenter) Suggestions(pos *engine.Position, ranked []analysis.ScoredMove) string {
	if len(ranked) == 0 {
		return p.render("suggest.none", nil, "no moves to suggest")
	}
	var sb strings.Builder
	sb.WriteString(p.render("suggest.header",
		map[string]any{"Count": len(ranked)},
		fmt.Sprintf("top %d suggestions:", len(ranked))))
	for i, sm := range ranked {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%d. %s — %s",
			i+1, engine.EncodeSAN(pos, sm.Move), strings.Join(sm.Tags, "; ")))
	}
	return sb.String()
}

// StatusText maps a classified label to its display wording.
func (p *Presenter) StatusText(label analysis.StatusLabel) string {
	switch label.Status {
	case analysis.StatusCheckmate:
		winner := engine.ColorName(label.Winner)
		return p.render("status.checkmate",
			map[string]any{"Winner": winner},
			"checkmate - "+winner+" wins")
	case analysis.StatusStalemate:
		return p.render("status.stalemate", nil, "stalemate - draw")
	case analysis.StatusInsufficientMaterial:
		return p.render("status.insufficient", nil, "draw - insufficient material")
	case analysis.StatusFiftyMoveRule:
		return p.render("status.fifty_move", nil, "draw - fifty-move rule")
	case analysis.StatusRepetition:
		return p.render("status.repetition", nil, "draw - threefold repetition")
	case analysis.StatusCheck:
		return p.render("status.check", nil, "check")
	default:
		return p.render("status.in_progress", nil, "in progress")
	}
}

// StatusLine renders the "status: ..." line for a classified position.
func (p *Presenter) StatusLine(label analysis.StatusLabel) string {
	text := p.StatusText(label)
	return p.render("status.line",
		map[string]any{"Status": text},
		"status: "+text)
}

// MoveNumber renders the fullmove counter with the side to play.
func (p *Presenter) MoveNumber(pos *engine.Position) string {
	turn := engine.ColorName(pos.Turn())
	return p.render("status.move_number",
		map[string]any{"Number": pos.FullMoveNumber(), "Turn": turn},
		fmt.Sprintf("move %d, %s to play", pos.FullMoveNumber(), turn))
}

// ParseResult renders the UCI and SAN lines for a resolved move.
func (p *Presenter) ParseResult(pos *engine.Position, uci, san string) string {
	var sb strings.Builder
	sb.WriteString(p.render("parse.uci", map[string]any{"UCI": uci}, "UCI: "+uci))
	sb.WriteString("\n")
	sb.WriteString(p.render("parse.san", map[string]any{"SAN": san}, "SAN: "+san))
	return sb.String()
}

// CannotParse renders the resolution failure message for raw input.
func (p *Presenter) CannotParse(input string) string {
	return p.render("errors.cannot_parse",
		map[string]any{"Input": input},
		"error: cannot parse move: "+input)
}

// InvalidFEN renders the malformed-FEN error message.
func (p *Presenter) InvalidFEN(fen string) string {
	return p.render("errors.invalid_fen",
		map[string]any{"FEN": fen},
		"error: invalid FEN: "+fen)
}

// LegalRemediation renders the legal-move listing shown after a failed
// resolution.
func (p *Presenter) LegalRemediation(pos *engine.Position) string {
	moves := pos.LegalMoves()
	sans := make([]string, len(moves))
	for i, mv := range moves {
		sans[i] = engine.EncodeSAN(pos, mv)
	}
	joined := strings.Join(sans, ", ")
	return p.render("errors.legal_moves",
		map[string]any{"Moves": joined},
		"legal moves: "+joined)
}

// Usage returns the CLI help text.
func (p *Presenter) Usage() string {
	return p.render("cli.usage", nil, fallbackUsage)
}

const fallbackUsage = `usage: chessmail <command> [args]

commands:
  board [FEN] [-png PATH]   render the position (start position by default)
  move FEN MOVE             apply MOVE and print the resulting position
  legal FEN                 list all legal moves
  suggest FEN [N]           print the top N ranked move suggestions
  status FEN                print the position and its game status
  parse FEN INPUT           resolve INPUT and print its UCI and SAN forms

exit codes: 0 ok, 1 invalid input or illegal move, 2 game over`
