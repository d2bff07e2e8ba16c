package search

import (
	"sort"

	"chesscore/board"
)

// HighPriority anchors the noisy-move score band; the TT move scores twice
// this, guaranteeing it always sorts first. §4.1.
const HighPriority = 1 << 29

// OrderMaterial is the MVV-LVA material vector, distinct from the tapered
// evaluation's MGMaterial/EGMaterial: pawn 100 .. queen 950, king 0.
var OrderMaterial = [6]int{100, 305, 333, 563, 950, 0}

// scoredAction pairs an action with its ordering priority for a stable sort.
type scoredAction struct {
	action board.Action
	score  int
}

// OrderMoves scores every legal move at a node and returns them sorted
// descending by priority, per §4.1. prev/havePrev and twoPly/haveTwoPly are
// the last two actions played in the line (the have* flag is false if one is
// absent, e.g. at the start of the game or after a null move).
func OrderMoves(b *board.Board, info *Info, moves []board.Action, ttMove board.Action, haveTT bool, ply int,
	prev board.Action, havePrev bool, twoPly board.Action, haveTwoPly bool) []board.Action {

	us := b.SideToMove
	them := us.Opposite()

	scored := make([]scoredAction, len(moves))
	for i, m := range moves {
		var score int
		switch {
		case haveTT && m == ttMove:
			score = 2 * HighPriority
		case b.IsNoisy(m):
			score = HighPriority + mvvLVA(b, m) + int(info.captureHistoryValue(us, m))
		default:
			score = int(info.quietReductionValue(us, m, them, prev, havePrev, twoPly, haveTwoPly))
			if slot := info.killerSlot(ply, m); slot >= 0 {
				score += 100 / (slot + 1)
			}
		}
		scored[i] = scoredAction{m, score}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	out := make([]board.Action, len(scored))
	for i, s := range scored {
		out[i] = s.action
	}
	return out
}

// mvvLVA returns 1000 + victim_material - attacker_material, with
// promotions adding the promoted piece's material gain over a pawn. §4.1.
func mvvLVA(b *board.Board, a board.Action) int {
	victim := 0
	if cp, ok := b.CapturedPiece(a); ok {
		victim = OrderMaterial[cp]
	}
	score := 1000 + victim - OrderMaterial[a.Piece]
	if promo, ok := a.Promotion(); ok {
		score += OrderMaterial[promo] - OrderMaterial[board.Pawn]
	}
	return score
}

// OrderNoisy sorts quiescence's noisy moves by MVV-LVA alone, with no
// history term, per §4.1.
func OrderNoisy(b *board.Board, moves []board.Action) []board.Action {
	scored := make([]scoredAction, len(moves))
	for i, m := range moves {
		scored[i] = scoredAction{m, mvvLVA(b, m)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	out := make([]board.Action, len(scored))
	for i, s := range scored {
		out[i] = s.action
	}
	return out
}
