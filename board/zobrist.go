package board

import "math/rand"

// ZobristKeys holds the random key tables used to compute an incremental
// 64-bit position hash. The UCI engine owns one instance and hands it to
// every Board it creates so hashes are comparable across positions.
type ZobristKeys struct {
	Piece    [2][6][64]uint64
	Castle   [16]uint64
	EnPassant [8]uint64
	Side     uint64
}

// NewZobristKeys builds a key table from a fixed seed, so hashes are
// reproducible across runs (required for the deterministic-bench property).
func NewZobristKeys() *ZobristKeys {
	rng := rand.New(rand.NewSource(0x5EED_C0FFEE))
	k := &ZobristKeys{}
	for c := 0; c < 2; c++ {
		for p := 0; p < 6; p++ {
			for sq := 0; sq < 64; sq++ {
				k.Piece[c][p][sq] = rng.Uint64()
			}
		}
	}
	for i := range k.Castle {
		k.Castle[i] = rng.Uint64()
	}
	for i := range k.EnPassant {
		k.EnPassant[i] = rng.Uint64()
	}
	k.Side = rng.Uint64()
	return k
}

// ComputeHash recomputes the hash from scratch; used only when setting up a
// position from FEN. Make/unmake maintain Hash incrementally afterwards.
func (b *Board) ComputeHash() uint64 {
	var h uint64
	for sq := Square(0); sq < 64; sq++ {
		p, c, ok := b.PieceAt(sq)
		if !ok {
			continue
		}
		h ^= b.Keys.Piece[c][p][sq]
	}
	h ^= b.Keys.Castle[b.Castle]
	if b.EnPassant != NoSquare {
		h ^= b.Keys.EnPassant[b.EnPassant.File()]
	}
	if b.SideToMove == Black {
		h ^= b.Keys.Side
	}
	return h
}
