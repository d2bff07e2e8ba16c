package search

import "chesscore/board"

// Quiescence resolves the tactical horizon by searching captures,
// en-passant, and promotions until a quiet position is reached, per §4.3.
func Quiescence(b *board.Board, info *Info, ply, alpha, beta int) int {
	info.Nodes++
	if info.Nodes&2047 == 0 {
		info.checkTime()
	}
	if info.Abort {
		return 0
	}

	standPat := Evaluate(b, info, ply)
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}
	best := standPat

	pseudo := b.PseudoLegalActions()
	info.RecordMobility(ply, len(pseudo), b.SideToMove)

	noisy := make([]board.Action, 0, len(pseudo)/3)
	for _, a := range pseudo {
		if b.IsNoisy(a) {
			noisy = append(noisy, a)
		}
	}
	noisy = OrderNoisy(b, noisy)

	mover := b.SideToMove
	for _, a := range noisy {
		st := b.Play(a)
		if !b.IsLegal(mover) {
			b.Unplay(a, st)
			continue
		}

		score := -Quiescence(b, info, ply+1, -beta, -alpha)
		b.Unplay(a, st)

		if info.Abort {
			return 0
		}
		if score > best {
			best = score
			if score > alpha {
				alpha = score
			}
		}
		if score >= beta {
			break
		}
	}
	return best
}
