package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalActions_StartPositionHas20Moves(t *testing.T) {
	b := mustFEN(t, StartFEN)
	assert.Len(t, b.LegalActions(), 20)
}

func TestLegalActions_PinnedPieceCannotMove(t *testing.T) {
	// White king e1, white rook e2 pinned by black rook e8; rook can only
	// move along the e-file.
	b := mustFEN(t, "4r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	for _, a := range b.LegalActions() {
		if a.From == 12 { // e2
			assert.Equal(t, 4, a.To.File(), "pinned rook must stay on the e-file")
		}
	}
}

func TestLegalActions_EnPassantDiscoveredCheck(t *testing.T) {
	// Classic pin-through-en-passant: white king a5, black pawn d5 just
	// double-pushed, white pawn e5 could capture en passant onto d6, but
	// removing both pawns from rank 5 exposes the king to the h5 rook.
	b := mustFEN(t, "8/8/8/K2pP2r/8/8/8/8 w - d6 0 1")
	for _, a := range b.LegalActions() {
		assert.False(t, a.IsEnPassant(), "en-passant capture must be rejected: exposes king on rank 5")
	}
}

func TestLegalActions_CastlingBlockedWhenAttacked(t *testing.T) {
	// Black rook d8 rakes the open d-file down to d1, which the white king
	// must cross to reach c1; queenside castling must be rejected even
	// though e1 itself is not currently attacked.
	b := mustFEN(t, "3rk3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	for _, a := range b.LegalActions() {
		assert.False(t, a.IsCastleQueenside(), "cannot castle through an attacked d1")
	}
}

func TestPlayUnplay_Roundtrip(t *testing.T) {
	b := mustFEN(t, StartFEN)
	before := *b
	legal := b.LegalActions()
	require.NotEmpty(t, legal)
	for _, a := range legal {
		st := b.Play(a)
		b.Unplay(a, st)
		assert.Equal(t, before.Hash, b.Hash)
		assert.Equal(t, before.SideToMove, b.SideToMove)
	}
}

func TestGameStateFor_OngoingWhenNotMated(t *testing.T) {
	b := mustFEN(t, "6k1/5ppp/8/8/8/8/8/R3K2R b - - 0 1")
	// not actually mate; sanity check Ongoing path
	legal := b.LegalActions()
	assert.Equal(t, Ongoing, b.GameStateFor(legal))
}

func TestGameStateFor_Stalemate(t *testing.T) {
	b := mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	legal := b.LegalActions()
	assert.Empty(t, legal)
	assert.Equal(t, Draw, b.GameStateFor(legal))
}
