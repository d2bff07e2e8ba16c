package search

import "chesscore/board"

// gravityUpdate applies the bonus/malus gravity formula from §4.1:
//
//	v <- v + b - v*|b|/MAX
//
// where b is the clamped bonus. This keeps every cell within ±MaxHistory
// regardless of how many updates it receives.
func gravityUpdate(v int32, bonus int) int32 {
	b := int32(clamp(bonus, -MaxHistory, MaxHistory))
	return v + b - v*abs32(b)/MaxHistory
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// updateQuietHistory applies depth^2 bonus to the cutting move and -depth^2
// malus to every quiet move tried earlier at this node, per §4.1/§4.4.
func (info *Info) updateQuietHistory(color board.Color, cutting board.Action, earlier []board.Action, depth int) {
	bonus := depth * depth
	h := &info.history[color]
	h[cutting.From][cutting.To] = gravityUpdate(h[cutting.From][cutting.To], bonus)
	for _, m := range earlier {
		h[m.From][m.To] = gravityUpdate(h[m.From][m.To], -bonus)
	}
}

// updateCaptureHistory mirrors updateQuietHistory for noisy cutoffs.
func (info *Info) updateCaptureHistory(color board.Color, cutting board.Action, earlier []board.Action, depth int) {
	bonus := depth * depth
	h := &info.captureHistory[color]
	h[cutting.From][cutting.To] = gravityUpdate(h[cutting.From][cutting.To], bonus)
	for _, m := range earlier {
		h[m.From][m.To] = gravityUpdate(h[m.From][m.To], -bonus)
	}
}

// updateContHist updates the continuation-history cell indexed by the
// mover of `prev` and the current move, mirrored on cutoffs exactly like
// butterfly history.
func (info *Info) updateContHist(prevColor board.Color, prev board.Action, color board.Color, cur board.Action, delta int) {
	cell := &info.conthist[prevColor][prev.Piece][prev.To][color][cur.Piece][cur.To]
	*cell = gravityUpdate(*cell, delta)
}

func (info *Info) historyValue(color board.Color, a board.Action) int32 {
	return info.history[color][a.From][a.To]
}

func (info *Info) captureHistoryValue(color board.Color, a board.Action) int32 {
	return info.captureHistory[color][a.From][a.To]
}

func (info *Info) contHistValue(prevColor board.Color, prev board.Action, color board.Color, cur board.Action) int32 {
	return info.conthist[prevColor][prev.Piece][prev.To][color][cur.Piece][cur.To]
}

// quietReductionValue is the combined history score for a quiet move: raw
// butterfly history plus half of each available continuation-history
// context. Shared by move ordering and the LMR reduction discount so a move
// reduced less for its continuation-history support is the same move
// ordering ranks higher for it.
func (info *Info) quietReductionValue(color board.Color, m board.Action, them board.Color, prev board.Action, havePrev bool, twoPly board.Action, haveTwoPly bool) int32 {
	v := info.historyValue(color, m)
	if havePrev {
		v += info.contHistValue(them, prev, color, m) / 2
	}
	if haveTwoPly {
		v += info.contHistValue(color, twoPly, color, m) / 2
	}
	return v
}

// storeKiller pushes a quiet cutoff move into slot 0 at ply, shifting the
// previous slot-0 occupant into slot 1, unless it's already the top killer.
func (info *Info) storeKiller(ply int, a board.Action) {
	if ply >= MaxPly {
		return
	}
	if info.killers[0][ply] == a {
		return
	}
	info.killers[1][ply] = info.killers[0][ply]
	info.killers[0][ply] = a
}

// killerSlot returns which killer slot (0 or 1) matches a at ply, or -1.
func (info *Info) killerSlot(ply int, a board.Action) int {
	if ply >= MaxPly {
		return -1
	}
	for slot := 0; slot < MaxKillers; slot++ {
		if !info.killers[slot][ply].IsZero() && info.killers[slot][ply] == a {
			return slot
		}
	}
	return -1
}
