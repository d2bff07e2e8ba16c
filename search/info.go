package search

import (
	"time"

	"chesscore/board"
)

// Info is the process-wide search state: transposition table, move-ordering
// heuristics, PV/killer tables, node/time bookkeeping, and precomputed LMR
// tables. It is owned by exactly one caller (the UCI driver), outlives any
// single `go` command, and is rebuilt wholesale on `ucinewgame`. It plays
// the role the teacher's engine.Session played for per-game isolation; this
// repo keeps a single Info because concurrent games and Lazy SMP are both
// non-goals.
type Info struct {
	TT *TranspositionTable

	history        [2][64][64]int32
	captureHistory [2][64][64]int32
	conthist       [2][6][64][2][6][64]int32

	killers [MaxKillers][MaxPly]board.Action

	pv       [MaxPly][MaxPly]board.Action
	pvLength [MaxPly]int

	plies [MaxPly]plyScratch

	RootDepth int
	Score     int
	Nodes     int64
	Abort     bool

	timeToAbort time.Time
	timed       bool

	lmrQuiet [128][MaxPly + 1]int
	lmrNoisy [128][MaxPly + 1]int

	Keys *board.ZobristKeys
}

// NewInfo allocates a fresh Info with a transposition table sized to
// DefaultTTEntries entries and the LMR tables precomputed once.
func NewInfo() *Info {
	info := &Info{
		TT:   NewTranspositionTable(DefaultTTEntries),
		Keys: board.NewZobristKeys(),
	}
	info.buildLMRTables()
	return info
}

// NewGame wipes all persistent state, per the `ucinewgame` contract:
// histories, TT, and PV/killer tables are rebuilt from scratch.
func (info *Info) NewGame() {
	info.TT.Clear()
	info.history = [2][64][64]int32{}
	info.captureHistory = [2][64][64]int32{}
	info.conthist = [2][6][64][2][6][64]int32{}
	info.clearKillersAndPV()
}

// clearKillersAndPV resets per-`go` state: killers reset every search while
// histories persist across `go` within the same game.
func (info *Info) clearKillersAndPV() {
	info.killers = [MaxKillers][MaxPly]board.Action{}
	info.resetPV()
	info.plies = [MaxPly]plyScratch{}
	info.Nodes = 0
	info.Abort = false
}

// resetPV clears the PV table, called once per depth in iterative deepening
// (killers and histories are untouched — only PV is re-cleared per depth).
func (info *Info) resetPV() {
	info.pv = [MaxPly][MaxPly]board.Action{}
	info.pvLength = [MaxPly]int{}
}

// PV returns the principal variation found at the end of the last search.
func (info *Info) PV() []board.Action {
	n := info.pvLength[0]
	out := make([]board.Action, n)
	copy(out, info.pv[0][:n])
	return out
}

func (info *Info) setTimeLimit(d time.Duration) {
	info.timed = d > 0
	info.timeToAbort = time.Now().Add(d)
}

func (info *Info) clearTimeLimit() {
	info.timed = false
}

// checkTime is polled by negamax at depth 4 and above, and by quiescence
// once every 2048 nodes.
func (info *Info) checkTime() {
	if info.Abort || !info.timed {
		return
	}
	if time.Now().After(info.timeToAbort) {
		info.Abort = true
	}
}
