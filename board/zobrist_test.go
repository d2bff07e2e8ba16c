package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZobrist_SamePositionSameHash(t *testing.T) {
	keys := NewZobristKeys()
	b1, err := NewFromFEN(keys, StartFEN)
	require.NoError(t, err)
	b2, err := NewFromFEN(keys, StartFEN)
	require.NoError(t, err)
	assert.Equal(t, b1.Hash, b2.Hash)
	assert.NotZero(t, b1.Hash)
}

func TestZobrist_MakeUnmakeRestoresHash(t *testing.T) {
	b := mustFEN(t, StartFEN)
	original := b.Hash
	legal := b.LegalActions()
	require.NotEmpty(t, legal)
	st := b.Play(legal[0])
	assert.NotEqual(t, original, b.Hash)
	b.Unplay(legal[0], st)
	assert.Equal(t, original, b.Hash)
}

func TestZobrist_NullMoveRoundTrips(t *testing.T) {
	b := mustFEN(t, StartFEN)
	original := b.Hash
	st := b.PlayNull()
	assert.NotEqual(t, original, b.Hash)
	b.UnplayNull(st)
	assert.Equal(t, original, b.Hash)
}

func TestZobrist_SideToMoveChangesHash(t *testing.T) {
	keys := NewZobristKeys()
	white, err := NewFromFEN(keys, "8/8/8/8/8/8/8/K6k w - - 0 1")
	require.NoError(t, err)
	black, err := NewFromFEN(keys, "8/8/8/8/8/8/8/K6k b - - 0 1")
	require.NoError(t, err)
	assert.NotEqual(t, white.Hash, black.Hash)
}

func TestZobrist_ComputeHashMatchesIncremental(t *testing.T) {
	b := mustFEN(t, StartFEN)
	legal := b.LegalActions()
	require.NotEmpty(t, legal)
	b.Play(legal[0])
	assert.Equal(t, b.ComputeHash(), b.Hash)
}
