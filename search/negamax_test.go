package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chesscore/board"
)

func searchFEN(t *testing.T, fen string) (*board.Board, *Info) {
	t.Helper()
	keys := board.NewZobristKeys()
	b, err := board.NewFromFEN(keys, fen)
	require.NoError(t, err)
	return b, NewInfo()
}

func TestNegamax_ScoreWithinBounds(t *testing.T) {
	b, info := searchFEN(t, board.StartFEN)
	score := Negamax(b, info, 3, 0, Min, Max, true)
	assert.Greater(t, score, Min)
	assert.Less(t, score, Max)
}

func TestNegamax_MateInOne(t *testing.T) {
	b, info := searchFEN(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	best := IterativeDeepening(b, info, Limit{Depth: 4}, nil)
	assert.Equal(t, "a1a8", best.UCI())
	assert.GreaterOrEqual(t, info.Score, Max-2)
}

func TestNegamax_Stalemate(t *testing.T) {
	b, info := searchFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	legal := b.LegalActions()
	require.Empty(t, legal)
	assert.Equal(t, board.Draw, b.GameStateFor(legal))

	score := Negamax(b, info, 4, 0, Min, Max, true)
	assert.Zero(t, score)
}

func TestNegamax_RepetitionScoresZeroAtNonRootPly(t *testing.T) {
	b, info := searchFEN(t, "k7/8/8/8/8/8/8/K7 w - - 0 1")

	// One full cycle (4 plies) returns the position to the start, but the
	// pre-search root hash was never pushed onto the history stack, so it
	// takes a second cycle before HashRepeated finds an actual duplicate.
	cycle := []board.Action{
		{From: 0, To: 1, Piece: board.King},  // Ka1-b1
		{From: 56, To: 57, Piece: board.King}, // Ka8-b8
		{From: 1, To: 0, Piece: board.King},  // Kb1-a1
		{From: 57, To: 56, Piece: board.King}, // Kb8-a8
	}

	var states []board.State
	var played []board.Action
	for i := 0; i < 2; i++ {
		for _, m := range cycle {
			states = append(states, b.Play(m))
			played = append(played, m)
		}
	}

	assert.True(t, b.HashRepeated())

	score := Negamax(b, info, 2, 8, Min, Max, false)
	assert.Zero(t, score)

	for i := len(played) - 1; i >= 0; i-- {
		b.Unplay(played[i], states[i])
	}
}

func TestNegamax_AgreesWithPlainSearchAtShallowDepth(t *testing.T) {
	// A position with only three legal moves keeps every heuristic prune
	// (null-move, LMR, futility, LMP) inert at depth 1, so Negamax's result
	// must equal a direct max over each child's quiescence value. The root
	// mobility sample Negamax records is recorded here too, since the
	// children's evaluation reads it.
	b, info := searchFEN(t, "7k/8/8/8/8/8/8/K7 w - - 0 1")
	legal := b.LegalActions()
	require.Len(t, legal, 3)
	info.RecordMobility(0, len(b.PseudoLegalActions()), b.SideToMove)

	best := Min
	for _, m := range legal {
		st := b.Play(m)
		score := -Quiescence(b, info, 1, Min, Max)
		b.Unplay(m, st)
		if score > best {
			best = score
		}
	}

	got := Negamax(b, info, 1, 0, Min, Max, true)
	assert.Equal(t, best, got)
}

func TestNegamax_TerminalDetectionBeforeSearch(t *testing.T) {
	// Fool's mate: white to move, already checkmated. No move loop should run.
	b, info := searchFEN(t, "rnbqkbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.Empty(t, b.LegalActions())

	score := Negamax(b, info, 3, 0, Min, Max, true)
	assert.Equal(t, Min, score)
}
