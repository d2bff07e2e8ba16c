package search

import (
	"time"

	"chesscore/board"
)

// aspirationDeltaStart and rookValue parameterize the aspiration window
// widening loop: delta doubles on every fail until it reaches rookValue, at
// which point the window is abandoned for [Min, Max]. §4.5.
const (
	aspirationDeltaStart = 30
	rookValue            = 563
	minAspirationDepth   = 5
)

// softTimeFloor is the minimum soft budget regardless of clock state. §4.5.
const softTimeFloor = 300 * time.Millisecond

// Report is called once per completed iterative-deepening depth, so the UCI
// driver can emit an `info` line without this package knowing UCI text
// formatting.
type Report func(depth int, elapsed time.Duration)

// IterativeDeepening repeats Negamax at increasing depths inside an
// aspiration window until limit is exhausted, returning the best move found
// at the last depth that completed without aborting. §4.5.
func IterativeDeepening(b *board.Board, info *Info, limit Limit, report Report) board.Action {
	start := time.Now()
	info.clearKillersAndPV()

	maxDepth := limit.Depth
	if maxDepth <= 0 || maxDepth > MaxPly-1 {
		maxDepth = MaxPly - 1
	}

	timed := limit.IsTimed() || limit.MoveTime > 0
	var soft time.Duration
	if timed {
		var hard time.Duration
		soft, hard = AllocateTime(limit, b.SideToMove)
		info.setTimeLimit(hard)
	} else {
		info.clearTimeLimit()
	}

	var best board.Action
	bestScore := 0

	for depth := 1; depth <= maxDepth; depth++ {
		info.RootDepth = depth
		info.resetPV()

		score := aspiration(b, info, depth, bestScore)
		if info.Abort {
			break
		}

		bestScore = score
		info.Score = score
		if info.pvLength[0] > 0 {
			best = info.pv[0][0]
		}

		elapsed := time.Since(start)
		if report != nil {
			report(depth, elapsed)
		}
		if timed && elapsed > soft {
			break
		}
	}

	info.Score = bestScore
	return best
}

// aspiration runs the narrowing/widening aspiration-window loop around
// prevScore for one depth, returning the settled score. §4.5.
func aspiration(b *board.Board, info *Info, depth, prevScore int) int {
	alpha, beta := Min, Max
	if depth >= minAspirationDepth {
		alpha, beta = prevScore-aspirationDeltaStart, prevScore+aspirationDeltaStart
	}
	delta := aspirationDeltaStart

	for {
		info.resetPV()
		score := Negamax(b, info, depth, 0, alpha, beta, true)
		if info.Abort {
			return score
		}

		switch {
		case score <= alpha && score > Min:
			alpha = score - delta
		case score >= beta && score < Max:
			beta = score + delta
		default:
			return score
		}

		delta *= 2
		if delta >= rookValue {
			alpha, beta = Min, Max
		}
	}
}

// AllocateTime derives the soft (should stop after this iteration) and hard
// (must abort mid-search) time budgets from a `go` command's clock state,
// per §4.5's time budgeting formula.
func AllocateTime(limit Limit, us board.Color) (soft, hard time.Duration) {
	if limit.MoveTime > 0 {
		soft = limit.MoveTime / 2
		hard = limit.MoveTime
	} else {
		t, inc := limit.WTime, limit.WInc
		if us == board.Black {
			t, inc = limit.BTime, limit.BInc
		}
		soft = t/40 + inc/4
		hard = t / 9
	}
	if soft < softTimeFloor {
		soft = softTimeFloor
	}
	return soft, hard
}
