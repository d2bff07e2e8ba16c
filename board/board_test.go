package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFEN(t *testing.T, fen string) *Board {
	t.Helper()
	b, err := NewFromFEN(NewZobristKeys(), fen)
	require.NoError(t, err)
	return b
}

func TestNewFromFEN_StartPosition(t *testing.T) {
	b := mustFEN(t, StartFEN)
	assert.Equal(t, White, b.SideToMove)
	assert.Equal(t, 16, (b.Pieces[Pawn] & b.AllOccupied()).PopCount())
	assert.Equal(t, uint8(CastleWhiteKing|CastleWhiteQueen|CastleBlackKing|CastleBlackQueen), b.Castle)
	assert.Equal(t, NoSquare, b.EnPassant)
}

func TestNewFromFEN_RoundTrip(t *testing.T) {
	b := mustFEN(t, StartFEN)
	assert.Equal(t, StartFEN, b.ToFEN())
}

func TestNewFromFEN_BadFEN(t *testing.T) {
	_, err := NewFromFEN(NewZobristKeys(), "not a fen")
	assert.Error(t, err)
}

func TestPieceAt_MatchesMailbox(t *testing.T) {
	b := mustFEN(t, StartFEN)
	p, c, ok := b.PieceAt(4) // e1
	require.True(t, ok)
	assert.Equal(t, King, p)
	assert.Equal(t, White, c)
}

func TestSquareNameRoundTrip(t *testing.T) {
	for _, name := range []string{"a1", "h8", "e4", "d5"} {
		sq, ok := ParseSquare(name)
		require.True(t, ok)
		assert.Equal(t, name, SquareName(sq))
	}
}
