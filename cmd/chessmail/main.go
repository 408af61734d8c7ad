// chessmail analyzes a single chess position per invocation: it renders
// boards, resolves and applies moves, lists legal moves, ranks suggestions,
// and classifies game status for a play-by-mail host.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/park285/chessmail/internal/analysis"
	"github.com/park285/chessmail/internal/config"
	"github.com/park285/chessmail/internal/engine"
	"github.com/park285/chessmail/internal/msgcat"
	"github.com/park285/chessmail/internal/obslog"
	"github.com/park285/chessmail/internal/presenter"
	"github.com/park285/chessmail/internal/render"
)

const (
	exitOK           = 0
	exitInvalidInput = 1
	exitGameOver     = 2
)

type app struct {
	cfg  *config.AppConfig
	pres *presenter.Presenter
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if err := obslog.InitFromEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
	}
	defer func() { _ = obslog.L().Sync() }()

	cfg := config.Load()
	catalog, err := msgcat.New(cfg.MessagesDir)
	if err != nil {
		obslog.L().Warn("message catalog load failed, using fallbacks", zap.Error(err))
	}
	a := &app{cfg: cfg, pres: presenter.New(catalog)}

	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
		fmt.Println(a.pres.Usage())
		return exitOK
	}

	command := args[0]
	rest := args[1:]
	start := time.Now()
	code := a.dispatch(command, rest)

	fen := ""
	if len(rest) > 0 {
		fen = rest[0]
	}
	obslog.L().Info("command handled",
		zap.String("run_id", uuid.NewString()),
		zap.String("command", command),
		zap.String("fen", fen),
		zap.Int("exit_code", code),
		zap.Duration("duration", time.Since(start)),
	)
	return code
}

func (a *app) dispatch(command string, args []string) int {
	switch command {
	case "board":
		return a.cmdBoard(args)
	case "move":
		return a.cmdMove(args)
	case "legal":
		return a.cmdLegal(args)
	case "suggest":
		return a.cmdSuggest(args)
	case "status":
		return a.cmdStatus(args)
	case "parse":
		return a.cmdParse(args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n%s\n", command, a.pres.Usage())
		return exitInvalidInput
	}
}

// position parses the FEN argument, printing the error itself on failure.
func (a *app) position(fen string) (*engine.Position, bool) {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, a.pres.InvalidFEN(fen))
		return nil, false
	}
	return pos, true
}

func (a *app) cmdBoard(args []string) int {
	fen := ""
	pngPath := ""
	for i := 0; i < len(args); i++ {
		if args[i] == "-png" {
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "error: -png requires a path")
				return exitInvalidInput
			}
			i++
			pngPath = args[i]
			continue
		}
		fen = args[i]
	}

	pos, ok := a.position(fen)
	if !ok {
		return exitInvalidInput
	}

	if pngPath != "" {
		data, err := render.PNG(pos, a.cfg.PNGSquare)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: render png:", err)
			return exitInvalidInput
		}
		if err := os.WriteFile(pngPath, data, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "error: write png:", err)
			return exitInvalidInput
		}
	}

	fmt.Print(render.Text(pos, a.cfg.BoardStyle))
	return exitOK
}

func (a *app) cmdMove(args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: chessmail move FEN MOVE")
		return exitInvalidInput
	}
	pos, ok := a.position(args[0])
	if !ok {
		return exitInvalidInput
	}
	raw := strings.Join(args[1:], " ")

	mv, err := analysis.Resolve(pos, raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, a.pres.CannotParse(raw))
		fmt.Fprintln(os.Stderr, a.pres.LegalRemediation(pos))
		return exitInvalidInput
	}

	san := engine.EncodeSAN(pos, mv)
	next := pos.Apply(mv)

	fmt.Println(a.pres.MovePlayed(san))
	fmt.Print(render.Text(next, a.cfg.BoardStyle))
	label := analysis.Classify(next)
	fmt.Println(a.pres.StatusLine(label))
	if label.IsGameOver() {
		return exitGameOver
	}
	return exitOK
}

func (a *app) cmdLegal(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: chessmail legal FEN")
		return exitInvalidInput
	}
	pos, ok := a.position(args[0])
	if !ok {
		return exitInvalidInput
	}
	fmt.Println(a.pres.LegalList(pos))
	return exitOK
}

func (a *app) cmdSuggest(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: chessmail suggest FEN [N]")
		return exitInvalidInput
	}
	pos, ok := a.position(args[0])
	if !ok {
		return exitInvalidInput
	}

	limit := a.cfg.SuggestLimit
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			fmt.Fprintln(os.Stderr, "error: N must be a positive integer")
			return exitInvalidInput
		}
		limit = n
	}

	ranked := analysis.Rank(analysis.Score(pos), limit)
	fmt.Println(a.pres.Suggestions(pos, ranked))
	return exitOK
}

func (a *app) cmdStatus(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: chessmail status FEN")
		return exitInvalidInput
	}
	pos, ok := a.position(args[0])
	if !ok {
		return exitInvalidInput
	}

	fmt.Print(render.Text(pos, a.cfg.BoardStyle))
	label := analysis.Classify(pos)
	fmt.Println(a.pres.StatusLine(label))
	fmt.Println(a.pres.MoveNumber(pos))
	if label.IsGameOver() {
		return exitGameOver
	}
	return exitOK
}

func (a *app) cmdParse(args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: chessmail parse FEN INPUT")
		return exitInvalidInput
	}
	pos, ok := a.position(args[0])
	if !ok {
		return exitInvalidInput
	}
	raw := strings.Join(args[1:], " ")

	mv, err := analysis.Resolve(pos, raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, a.pres.CannotParse(raw))
		return exitInvalidInput
	}
	fmt.Println(a.pres.ParseResult(pos, engine.MoveToUCI(mv), engine.EncodeSAN(pos, mv)))
	return exitOK
}
