package board

// Play executes a (pseudo-legal) action and returns a State token that
// restores the position on Unplay. The move is not checked for legality
// here; callers use IsLegal after Play, or rely on LegalActions.
func (b *Board) Play(a Action) State {
	us := b.SideToMove
	them := us.Opposite()

	st := State{
		captured:  NoPiece,
		castle:    b.Castle,
		enPassant: b.EnPassant,
		halfMove:  b.HalfMove,
		hash:      b.Hash,
	}

	if a.IsEnPassant() {
		capSq := Square(int(a.To) - pawnDir(us)*8)
		st.captured = Pawn
		b.remove(capSq)
	} else if cp, _, ok := b.PieceAt(a.To); ok {
		st.captured = cp
		b.remove(a.To)
	}

	b.remove(a.From)
	if promo, ok := a.Promotion(); ok {
		b.place(a.To, promo, us)
	} else {
		b.place(a.To, a.Piece, us)
	}

	if a.IsCastleKingside() || a.IsCastleQueenside() {
		rookFrom, rookTo := castleRookSquares(us, a.IsCastleKingside())
		b.remove(rookFrom)
		b.place(rookTo, Rook, us)
	}

	b.Hash ^= b.Keys.Castle[b.Castle]
	b.Castle &^= castleLossMask(a.From) | castleLossMask(a.To)
	b.Hash ^= b.Keys.Castle[b.Castle]

	if b.EnPassant != NoSquare {
		b.Hash ^= b.Keys.EnPassant[b.EnPassant.File()]
	}
	if a.IsDoublePush() {
		b.EnPassant = Square(int(a.From) + pawnDir(us)*8)
		b.Hash ^= b.Keys.EnPassant[b.EnPassant.File()]
	} else {
		b.EnPassant = NoSquare
	}

	if a.Piece == Pawn || st.captured != NoPiece {
		b.HalfMove = 0
	} else {
		b.HalfMove++
	}
	if us == Black {
		b.FullMove++
	}

	b.SideToMove = them
	b.Hash ^= b.Keys.Side

	b.history = append(b.history, histEntry{action: a, hash: b.Hash, moved: true})

	return st
}

// Unplay reverses a Play, restoring the position exactly.
func (b *Board) Unplay(a Action, st State) {
	b.history = b.history[:len(b.history)-1]

	them := b.SideToMove
	us := them.Opposite()
	b.SideToMove = us

	b.remove(a.To)
	b.place(a.From, a.Piece, us)

	if a.IsCastleKingside() || a.IsCastleQueenside() {
		rookFrom, rookTo := castleRookSquares(us, a.IsCastleKingside())
		b.remove(rookTo)
		b.place(rookFrom, Rook, us)
	}

	if st.captured != NoPiece {
		if a.IsEnPassant() {
			capSq := Square(int(a.To) - pawnDir(us)*8)
			b.place(capSq, Pawn, them)
		} else {
			b.place(a.To, st.captured, them)
		}
	}

	b.Castle = st.castle
	b.EnPassant = st.enPassant
	b.HalfMove = st.halfMove
	if us == Black {
		b.FullMove--
	}
	b.Hash = st.hash
}

// PlayNull flips the side to move without moving a piece, used by
// null-move pruning. Returns a State to restore with UnplayNull.
func (b *Board) PlayNull() State {
	st := State{captured: NoPiece, castle: b.Castle, enPassant: b.EnPassant, halfMove: b.HalfMove, hash: b.Hash}
	if b.EnPassant != NoSquare {
		b.Hash ^= b.Keys.EnPassant[b.EnPassant.File()]
		b.EnPassant = NoSquare
	}
	b.SideToMove = b.SideToMove.Opposite()
	b.Hash ^= b.Keys.Side
	b.history = append(b.history, histEntry{moved: false, hash: b.Hash})
	return st
}

// UnplayNull restores a null move.
func (b *Board) UnplayNull(st State) {
	b.history = b.history[:len(b.history)-1]
	b.SideToMove = b.SideToMove.Opposite()
	b.EnPassant = st.enPassant
	b.Hash = st.hash
}

func pawnDir(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

func castleRookSquares(c Color, kingside bool) (from, to Square) {
	if c == White {
		if kingside {
			return 7, 5
		}
		return 0, 3
	}
	if kingside {
		return 63, 61
	}
	return 56, 59
}

// castleLossMask returns which castling rights a move touching sq revokes.
func castleLossMask(sq Square) uint8 {
	switch sq {
	case 4:
		return CastleWhiteKing | CastleWhiteQueen
	case 60:
		return CastleBlackKing | CastleBlackQueen
	case 0:
		return CastleWhiteQueen
	case 7:
		return CastleWhiteKing
	case 56:
		return CastleBlackQueen
	case 63:
		return CastleBlackKing
	default:
		return 0
	}
}
