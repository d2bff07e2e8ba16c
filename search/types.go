// Package search implements negamax alpha-beta search with a transposition
// table, iterative deepening, aspiration windows, null-move pruning, late
// move reductions, futility pruning, history/continuation-history move
// ordering, killer moves, and a quiescence extension, over a static
// evaluation built on tapered piece-square tables and material+mobility.
package search

import (
	"time"

	"chesscore/board"
)

// Score bounds. Kept far inside int range so arithmetic never overflows.
const (
	Max = 1_000_000
	Min = -Max
)

// MaxPly bounds recursion depth and the size of ply-indexed scratch arrays.
const MaxPly = 100

// MaxHistory bounds every history/conthist cell, enforced by the gravity
// update formula in history.go.
const MaxHistory = 300

// MaxKillers is the number of killer-move slots tracked per ply.
const MaxKillers = 2

// Bound records what kind of node produced a stored transposition score.
type Bound uint8

const (
	BoundExact Bound = iota // PV node: score is the true value
	BoundLower               // CUT node: score is a lower bound (failed high)
	BoundUpper               // ALL node: score is an upper bound (failed low)
)

// TTEntry is a single transposition table slot.
type TTEntry struct {
	Hash     uint64
	BestMove board.Action
	Score    int32
	Depth    int16
	Bound    Bound
	used     bool
}

// plyScratch holds the per-ply state the spec calls out: the static eval
// stacked for the improving heuristic, and the most recent mobility sample
// for each side (used by evaluation's mobility term).
type plyScratch struct {
	eval       int
	evalValid  bool
	mobCount   int
	mobSide    board.Color
	mobValid   bool
}

// Limit describes a `go` command's search budget: clock times and
// increments, a move-time deadline, a fixed depth, or an infinite search.
type Limit struct {
	Depth    int           // 0 = unset
	WTime    time.Duration
	BTime    time.Duration
	WInc     time.Duration
	BInc     time.Duration
	MoveTime time.Duration // 0 = unset
	Infinite bool
}

// IsTimed reports whether the limit is clock-based rather than a fixed depth.
func (l Limit) IsTimed() bool {
	return !l.Infinite && l.Depth == 0
}
