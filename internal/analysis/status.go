package analysis

import (
	nchess "github.com/corentings/chess/v2"
	"github.com/park285/chessmail/internal/engine"
)

// Status is the classified state of a position.
type Status string

const (
	StatusInProgress           Status = "in progress"
	StatusCheck                Status = "check"
	StatusCheckmate            Status = "checkmate"
	StatusStalemate            Status = "stalemate"
	StatusInsufficientMaterial Status = "draw-insufficient-material"
	StatusFiftyMoveRule        Status = "draw-fifty-move"
	StatusRepetition           Status = "draw-repetition"
)

// StatusLabel pairs a status with the winning side. Winner is meaningful only
// for checkmate; it is the opponent of the side to move.
type StatusLabel struct {
	Status Status
	Winner nchess.Color
}

func (l StatusLabel) IsGameOver() bool {
	return l.Status != StatusInProgress && l.Status != StatusCheck
}

// Classify evaluates terminal and draw conditions in fixed precedence:
// checkmate, stalemate, insufficient material, fifty-move rule, repetition,
// then check. Exactly one label comes back for any position.
func Classify(pos *engine.Position) StatusLabel {
	switch {
	case pos.IsCheckmate():
		winner := nchess.White
		if pos.Turn() == nchess.White {
			winner = nchess.Black
		}
		return StatusLabel{Status: StatusCheckmate, Winner: winner}
	case pos.IsStalemate():
		return StatusLabel{Status: StatusStalemate}
	case pos.IsInsufficientMaterial():
		return StatusLabel{Status: StatusInsufficientMaterial}
	case pos.IsFiftyMoveRule():
		return StatusLabel{Status: StatusFiftyMoveRule}
	case pos.IsRepetition():
		return StatusLabel{Status: StatusRepetition}
	case pos.InCheck():
		return StatusLabel{Status: StatusCheck}
	default:
		return StatusLabel{Status: StatusInProgress}
	}
}
