package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chesscore/board"
)

func TestOrderMoves_TTMoveFirst(t *testing.T) {
	keys := board.NewZobristKeys()
	b, err := board.NewFromFEN(keys, board.StartFEN)
	require.NoError(t, err)
	info := NewInfo()

	legal := b.LegalActions()
	require.NotEmpty(t, legal)
	tt := legal[len(legal)-1]

	ordered := OrderMoves(b, info, legal, tt, true, 0, board.Action{}, false, board.Action{}, false)
	assert.Equal(t, tt, ordered[0])
}

func TestOrderMoves_NoisyBeforeQuietWithoutTTHint(t *testing.T) {
	keys := board.NewZobristKeys()
	b, err := board.NewFromFEN(keys, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	info := NewInfo()

	legal := b.LegalActions()
	ordered := OrderMoves(b, info, legal, board.Action{}, false, 0, board.Action{}, false, board.Action{}, false)

	noisyIdx, quietIdx := -1, -1
	for i, m := range ordered {
		if b.IsNoisy(m) && noisyIdx == -1 {
			noisyIdx = i
		}
		if !b.IsNoisy(m) && quietIdx == -1 {
			quietIdx = i
		}
	}
	require.NotEqual(t, -1, noisyIdx)
	require.NotEqual(t, -1, quietIdx)
	assert.Less(t, noisyIdx, quietIdx, "the capture should sort ahead of quiet king moves")
}

func TestOrderMoves_KillerOutranksPlainQuiet(t *testing.T) {
	keys := board.NewZobristKeys()
	b, err := board.NewFromFEN(keys, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	info := NewInfo()

	legal := b.LegalActions()
	var killer, other board.Action
	for _, m := range legal {
		if !b.IsNoisy(m) && m.Piece == board.King {
			if killer.IsZero() {
				killer = m
			} else if other.IsZero() {
				other = m
			}
		}
	}
	require.False(t, killer.IsZero())
	require.False(t, other.IsZero())

	info.storeKiller(0, killer)
	ordered := OrderMoves(b, info, legal, board.Action{}, false, 0, board.Action{}, false, board.Action{}, false)

	killerIdx, otherIdx := -1, -1
	for i, m := range ordered {
		if m == killer {
			killerIdx = i
		}
		if m == other {
			otherIdx = i
		}
	}
	assert.Less(t, killerIdx, otherIdx)
}

func TestOrderNoisy_PrefersHigherValueVictim(t *testing.T) {
	keys := board.NewZobristKeys()
	// White pawn on d4 can capture either the queen on c5 or the rook on e5.
	b, err := board.NewFromFEN(keys, "4k3/8/8/2q1r3/3P4/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	captureQueen := board.Action{From: 27, To: 34, Piece: board.Pawn}
	captureRook := board.Action{From: 27, To: 36, Piece: board.Pawn}

	ordered := OrderNoisy(b, []board.Action{captureRook, captureQueen})
	require.Len(t, ordered, 2)
	assert.Equal(t, captureQueen, ordered[0], "capturing the queen must outrank capturing the rook")
}
