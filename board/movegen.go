package board

// PseudoLegalActions returns every pseudo-legal move for the side to move:
// legal in the sense of piece movement rules, but not yet checked for
// leaving the mover's own king in check (see IsLegal).
func (b *Board) PseudoLegalActions() []Action {
	actions := make([]Action, 0, 48)
	us := b.SideToMove
	them := us.Opposite()
	occ := b.AllOccupied()
	ownOcc := b.Occupied[us]
	enemyOcc := b.Occupied[them]

	for _, sq := range b.Pieces[Pawn].Squares() {
		if b.mailCol[sq] != us {
			continue
		}
		actions = b.genPawnMoves(sq, us, occ, enemyOcc, actions)
	}
	for _, sq := range b.Pieces[Knight].Squares() {
		if b.mailCol[sq] != us {
			continue
		}
		actions = appendTargets(actions, sq, Knight, knightAttacks[sq]&^ownOcc, enemyOcc)
	}
	for _, sq := range b.Pieces[Bishop].Squares() {
		if b.mailCol[sq] != us {
			continue
		}
		actions = appendTargets(actions, sq, Bishop, bishopAttacks(sq, occ)&^ownOcc, enemyOcc)
	}
	for _, sq := range b.Pieces[Rook].Squares() {
		if b.mailCol[sq] != us {
			continue
		}
		actions = appendTargets(actions, sq, Rook, rookAttacks(sq, occ)&^ownOcc, enemyOcc)
	}
	for _, sq := range b.Pieces[Queen].Squares() {
		if b.mailCol[sq] != us {
			continue
		}
		actions = appendTargets(actions, sq, Queen, queenAttacks(sq, occ)&^ownOcc, enemyOcc)
	}
	for _, sq := range b.Pieces[King].Squares() {
		if b.mailCol[sq] != us {
			continue
		}
		actions = appendTargets(actions, sq, King, kingAttacks[sq]&^ownOcc, enemyOcc)
		actions = b.genCastles(sq, us, occ, actions)
	}
	return actions
}

// appendTargets expands a target bitboard for a leaper/slider into Actions,
// tagging captures implicitly (the mailbox decides that at Play time).
func appendTargets(actions []Action, from Square, piece Piece, targets, enemyOcc Bitboard) []Action {
	for _, to := range targets.Squares() {
		actions = append(actions, Action{From: from, To: to, Piece: piece})
	}
	return actions
}

var promotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

func (b *Board) genPawnMoves(sq Square, us Color, occ, enemyOcc Bitboard, actions []Action) []Action {
	dir := 1
	startRank, promoRank := 1, 7
	if us == Black {
		dir = -1
		startRank, promoRank = 6, 0
	}

	one := Square(int(sq) + dir*8)
	if one >= 0 && one < 64 && !occ.IsBitSet(one) {
		actions = appendPawnAdvance(actions, sq, one, promoRank)
		if sq.Rank() == startRank {
			two := Square(int(sq) + dir*16)
			if !occ.IsBitSet(two) {
				actions = append(actions, Action{From: sq, To: two, Piece: Pawn, Info: infoDoublePush})
			}
		}
	}

	for _, to := range pawnAttacks[us][sq].Squares() {
		if enemyOcc.IsBitSet(to) {
			actions = appendPawnAdvance(actions, sq, to, promoRank)
		} else if to == b.EnPassant {
			actions = append(actions, Action{From: sq, To: to, Piece: Pawn, Info: infoEnPassant})
		}
	}
	return actions
}

func appendPawnAdvance(actions []Action, from, to Square, promoRank int) []Action {
	if to.Rank() == promoRank {
		for _, promo := range promotionPieces {
			actions = append(actions, Action{From: from, To: to, Piece: Pawn, Info: withPromotion(0, promo)})
		}
		return actions
	}
	return append(actions, Action{From: from, To: to, Piece: Pawn})
}

func (b *Board) genCastles(kingSq Square, us Color, occ Bitboard, actions []Action) []Action {
	them := us.Opposite()
	if us == White && kingSq == 4 {
		if b.Castle&CastleWhiteKing != 0 && !occ.IsBitSet(5) && !occ.IsBitSet(6) &&
			!b.squareAttacked(4, them) && !b.squareAttacked(5, them) && !b.squareAttacked(6, them) {
			actions = append(actions, Action{From: 4, To: 6, Piece: King, Info: infoCastleKing})
		}
		if b.Castle&CastleWhiteQueen != 0 && !occ.IsBitSet(3) && !occ.IsBitSet(2) && !occ.IsBitSet(1) &&
			!b.squareAttacked(4, them) && !b.squareAttacked(3, them) && !b.squareAttacked(2, them) {
			actions = append(actions, Action{From: 4, To: 2, Piece: King, Info: infoCastleQSid})
		}
	}
	if us == Black && kingSq == 60 {
		if b.Castle&CastleBlackKing != 0 && !occ.IsBitSet(61) && !occ.IsBitSet(62) &&
			!b.squareAttacked(60, them) && !b.squareAttacked(61, them) && !b.squareAttacked(62, them) {
			actions = append(actions, Action{From: 60, To: 62, Piece: King, Info: infoCastleKing})
		}
		if b.Castle&CastleBlackQueen != 0 && !occ.IsBitSet(59) && !occ.IsBitSet(58) && !occ.IsBitSet(57) &&
			!b.squareAttacked(60, them) && !b.squareAttacked(59, them) && !b.squareAttacked(58, them) {
			actions = append(actions, Action{From: 60, To: 58, Piece: King, Info: infoCastleQSid})
		}
	}
	return actions
}

// IsNoisy reports whether an action is a capture, en-passant, or promotion
// — the move classes quiescence search and noisy move ordering care about.
func (b *Board) IsNoisy(a Action) bool {
	if a.IsEnPassant() {
		return true
	}
	if _, promotes := a.Promotion(); promotes {
		return true
	}
	_, _, occupied := b.PieceAt(a.To)
	return occupied
}

// CapturedPiece returns the piece captured by a (if any) and whether there
// was one. For en-passant the captured pawn sits behind the target square.
func (b *Board) CapturedPiece(a Action) (Piece, bool) {
	if a.IsEnPassant() {
		return Pawn, true
	}
	p, _, ok := b.PieceAt(a.To)
	return p, ok
}
