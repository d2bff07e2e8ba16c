// Package uci implements a single-threaded UCI protocol loop over stdin,
// dispatching position setup and `go` commands to the search core.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"chesscore/board"
	"chesscore/search"
)

// Engine owns the current position and the process-wide search state,
// mirroring the role the teacher's engine.Session played, minus concurrency.
type Engine struct {
	board *board.Board
	info  *search.Info
	keys  *board.ZobristKeys

	out io.Writer
	log *log.Logger
}

// NewEngine builds an Engine at the standard starting position.
func NewEngine(out io.Writer, errOut io.Writer) *Engine {
	keys := board.NewZobristKeys()
	b, err := board.NewFromFEN(keys, board.StartFEN)
	if err != nil {
		// StartFEN is a compile-time constant; a parse failure here is a bug.
		panic(err)
	}
	return &Engine{
		board: b,
		info:  search.NewInfo(),
		keys:  keys,
		out:   out,
		log:   log.New(errOut, "", 0),
	}
}

// Run reads UCI commands from in until EOF or `quit`, writing responses to
// the Engine's out writer. Each `go` command runs the search to completion
// before the next line is read — `stop`/`quit` arriving mid-search are not
// serviced until the search yields, per the engine's single-threaded model.
func (e *Engine) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if e.dispatch(line) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		e.log.Printf("reading stdin: %v", err)
	}
}

// dispatch handles one input line, returning true if the engine should stop
// reading further input (`quit`).
func (e *Engine) dispatch(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "uci":
		e.printf("id name chesscore\n")
		e.printf("id author the chesscore authors\n")
		e.printf("uciok\n")
	case "isready":
		e.printf("readyok\n")
	case "ucinewgame":
		e.info.NewGame()
		b, _ := board.NewFromFEN(e.keys, board.StartFEN)
		e.board = b
	case "position":
		e.handlePosition(fields[1:])
	case "go":
		e.handleGo(fields[1:])
	case "stop":
		e.info.Abort = true
	case "bench":
		RunBench(e.out, e.keys)
	case "quit":
		return true
	default:
		e.log.Printf("unrecognized command: %s", line)
	}
	return false
}

func (e *Engine) printf(format string, args ...any) {
	fmt.Fprintf(e.out, format, args...)
}

// handlePosition implements `position [startpos|fen <FEN>] [moves <uci>*]`.
func (e *Engine) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var b *board.Board
	rest := args

	switch args[0] {
	case "startpos":
		var err error
		b, err = board.NewFromFEN(e.keys, board.StartFEN)
		if err != nil {
			e.log.Printf("position startpos: %v", err)
			return
		}
		rest = args[1:]
	case "fen":
		movesIdx := len(args)
		for i, a := range args {
			if a == "moves" {
				movesIdx = i
				break
			}
		}
		fen := strings.Join(args[1:movesIdx], " ")
		var err error
		b, err = board.NewFromFEN(e.keys, fen)
		if err != nil {
			e.log.Printf("position fen %q: %v", fen, err)
			return
		}
		rest = args[movesIdx:]
	default:
		e.log.Printf("position: expected startpos or fen, got %q", args[0])
		return
	}

	if len(rest) > 0 && rest[0] == "moves" {
		for _, mv := range rest[1:] {
			legal := b.LegalActions()
			a, ok := board.ParseUCIAction(mv, legal)
			if !ok {
				e.log.Printf("position: illegal or malformed move %q", mv)
				break
			}
			b.Play(a)
		}
	}

	e.board = b
}

// handleGo implements `go [wtime N] [btime N] [winc N] [binc N] [movetime N]
// [depth N] [infinite]`.
func (e *Engine) handleGo(args []string) {
	limit := search.Limit{}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "wtime":
			limit.WTime = parseMillis(args, &i)
		case "btime":
			limit.BTime = parseMillis(args, &i)
		case "winc":
			limit.WInc = parseMillis(args, &i)
		case "binc":
			limit.BInc = parseMillis(args, &i)
		case "movetime":
			limit.MoveTime = parseMillis(args, &i)
		case "depth":
			if i+1 < len(args) {
				i++
				if d, err := strconv.Atoi(args[i]); err == nil {
					limit.Depth = d
				}
			}
		case "infinite":
			limit.Infinite = true
		}
	}

	best := search.IterativeDeepening(e.board, e.info, limit, e.reportDepth)
	if best.IsZero() {
		legal := e.board.LegalActions()
		if len(legal) > 0 {
			best = legal[0]
		}
		e.printf("bestmove %s\n", best.UCI())
		return
	}
	e.printf("bestmove %s\n", best.UCI())
}

// reportDepth emits the `info` line for one completed iterative-deepening
// depth, per §6.
func (e *Engine) reportDepth(depth int, elapsed time.Duration) {
	ms := elapsed.Milliseconds()
	nps := int64(0)
	if ms > 0 {
		nps = e.info.Nodes * 1000 / ms
	}
	pv := e.info.PV()
	var sb strings.Builder
	for _, a := range pv {
		sb.WriteString(a.UCI())
		sb.WriteByte(' ')
	}
	e.printf("info depth %d score cp %d time %d nodes %d nps %d hashfull %d pv %s\n",
		depth, e.info.Score, ms, e.info.Nodes, nps, e.info.TT.Hashfull(), strings.TrimSpace(sb.String()))
}

func parseMillis(args []string, i *int) time.Duration {
	if *i+1 >= len(args) {
		return 0
	}
	*i++
	n, err := strconv.Atoi(args[*i])
	if err != nil {
		return 0
	}
	return time.Duration(n) * time.Millisecond
}
