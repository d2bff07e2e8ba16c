package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chesscore/board"
)

func TestGravityUpdate_StaysWithinBound(t *testing.T) {
	var v int32
	for i := 0; i < 10_000; i++ {
		bonus := 400
		if i%3 == 0 {
			bonus = -400
		}
		v = gravityUpdate(v, bonus)
		assert.LessOrEqual(t, int(v), MaxHistory)
		assert.GreaterOrEqual(t, int(v), -MaxHistory)
	}
}

func TestGravityUpdate_PullsTowardBonus(t *testing.T) {
	v := gravityUpdate(0, 100)
	assert.Equal(t, int32(100), v)
	v2 := gravityUpdate(v, 100)
	assert.Greater(t, v2, v)
	assert.LessOrEqual(t, int(v2), MaxHistory)
}

func TestUpdateQuietHistory_PenalizesEarlierMoves(t *testing.T) {
	info := &Info{}
	cutting := board.Action{From: 12, To: 28, Piece: board.Rook}
	earlier := board.Action{From: 1, To: 18, Piece: board.Knight}

	info.updateQuietHistory(board.White, cutting, []board.Action{earlier}, 4)

	assert.Greater(t, info.historyValue(board.White, cutting), int32(0))
	assert.Less(t, info.historyValue(board.White, earlier), int32(0))
}

func TestStoreKiller_RotatesSlots(t *testing.T) {
	info := &Info{}
	a := board.Action{From: 1, To: 2}
	b := board.Action{From: 3, To: 4}

	info.storeKiller(5, a)
	assert.Equal(t, 0, info.killerSlot(5, a))

	info.storeKiller(5, b)
	assert.Equal(t, 0, info.killerSlot(5, b))
	assert.Equal(t, 1, info.killerSlot(5, a))
}

func TestStoreKiller_DuplicateIsNoop(t *testing.T) {
	info := &Info{}
	a := board.Action{From: 1, To: 2}
	b := board.Action{From: 3, To: 4}

	info.storeKiller(0, a)
	info.storeKiller(0, b)
	info.storeKiller(0, b)

	assert.Equal(t, 0, info.killerSlot(0, b))
	assert.Equal(t, 1, info.killerSlot(0, a))
}
