package search

import "chesscore/board"

// Mobility is the per-move mobility bonus applied in centipawns, §4.2.
const Mobility = 2

// maxPhase is the phase value of a full set of minor/major pieces per side.
const maxPhase = 24

// Evaluate returns a centipawn score from the side-to-move's perspective
// (negamax convention: positive is good for whoever is to move), using
// tapered PeSTO material+PSQT plus a mobility term sampled from info.plies.
func Evaluate(b *board.Board, info *Info, ply int) int {
	var mg, eg, phase int

	for p := board.Pawn; p <= board.King; p++ {
		for _, sq := range b.Pieces[p].Squares() {
			_, color, _ := b.PieceAt(sq)
			idx := int(sq)
			if color == board.Black {
				idx = int(sq.Flip())
			}
			mgScore := MGMaterial[p] + mgPSQT[p][idx]
			egScore := EGMaterial[p] + egPSQT[p][idx]
			if color == board.White {
				mg += mgScore
				eg += egScore
			} else {
				mg -= mgScore
				eg -= egScore
			}
			phase += PhaseValue[p]
		}
	}

	mgPhase := phase
	if mgPhase > maxPhase {
		mgPhase = maxPhase
	}
	egPhase := maxPhase - mgPhase

	score := (mg*mgPhase + eg*egPhase) / maxPhase
	score += Mobility * mobilityDelta(info, ply)

	if b.SideToMove == board.White {
		return score
	}
	return -score
}

// RecordMobility stacks the pseudo-legal move count for the side to move at
// this ply, so Evaluate can read it back later without
// regenerating moves itself (couples eval to search, but eval is only ever
// called from inside search, per §9).
func (info *Info) RecordMobility(ply int, count int, side board.Color) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	info.plies[ply].mobCount = count
	info.plies[ply].mobSide = side
	info.plies[ply].mobValid = true
}

// mobilityDelta walks back from ply taking the most recent nonzero sample
// for each side and returns white_count - black_count, per §4.2.
func mobilityDelta(info *Info, ply int) int {
	var white, black int
	haveWhite, haveBlack := false, false
	for p := ply; p >= 0 && (!haveWhite || !haveBlack); p-- {
		if p >= MaxPly {
			continue
		}
		s := info.plies[p]
		if !s.mobValid || s.mobCount == 0 {
			continue
		}
		if s.mobSide == board.White && !haveWhite {
			white = s.mobCount
			haveWhite = true
		}
		if s.mobSide == board.Black && !haveBlack {
			black = s.mobCount
			haveBlack = true
		}
	}
	return white - black
}

// recordEval stacks the static eval at ply for the improving heuristic.
func (info *Info) recordEval(ply, eval int) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	info.plies[ply].eval = eval
	info.plies[ply].evalValid = true
}

// improving reports whether the static eval at ply improved on the eval two
// plies ago (same side to move), per §4.4.
func (info *Info) improving(ply int) bool {
	if ply < 2 || ply >= MaxPly {
		return false
	}
	prior := info.plies[ply-2]
	cur := info.plies[ply]
	return cur.evalValid && prior.evalValid && cur.eval > prior.eval
}
