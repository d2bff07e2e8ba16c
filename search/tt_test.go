package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chesscore/board"
)

func TestTranspositionTable_StoreAndProbe(t *testing.T) {
	tt := NewTranspositionTable(1024)
	mv := board.Action{From: 8, To: 16, Piece: board.Pawn}

	tt.Store(42, mv, 150, 6, BoundExact)

	entry, found := tt.Probe(42)
	require.True(t, found)
	assert.Equal(t, mv, entry.BestMove)
	assert.Equal(t, int32(150), entry.Score)
	assert.Equal(t, int16(6), entry.Depth)
	assert.Equal(t, BoundExact, entry.Bound)
}

func TestTranspositionTable_ProbeMiss(t *testing.T) {
	tt := NewTranspositionTable(1024)
	_, found := tt.Probe(999)
	assert.False(t, found)
}

func TestTranspositionTable_HashCollisionDoesNotMatch(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(1, board.Action{}, 10, 1, BoundExact)
	_, found := tt.Probe(2)
	assert.False(t, found, "slot collision must be detected by stored hash, not just slot index")
}

func TestTranspositionTable_AlwaysReplace(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(1, board.Action{}, 10, 1, BoundExact)
	tt.Store(1, board.Action{}, 20, 8, BoundLower)

	entry, found := tt.Probe(1)
	require.True(t, found)
	assert.Equal(t, int32(20), entry.Score)
	assert.Equal(t, int16(8), entry.Depth)
}

func TestTranspositionTable_Clear(t *testing.T) {
	tt := NewTranspositionTable(16)
	tt.Store(5, board.Action{}, 1, 1, BoundExact)
	tt.Clear()
	_, found := tt.Probe(5)
	assert.False(t, found)
}

func TestTranspositionTable_Hashfull(t *testing.T) {
	tt := NewTranspositionTable(1000)
	for i := uint64(0); i < 500; i++ {
		tt.Store(i, board.Action{}, 0, 1, BoundExact)
	}
	assert.Equal(t, 500, tt.Hashfull())
}
