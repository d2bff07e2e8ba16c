package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// SetBit sets the bit at index.
func (b *Bitboard) SetBit(index Square) { *b |= 1 << uint(index) }

// ClearBit clears the bit at index.
func (b *Bitboard) ClearBit(index Square) { *b &^= 1 << uint(index) }

// IsBitSet reports whether the bit at index is set.
func (b Bitboard) IsBitSet(index Square) bool { return b&(1<<uint(index)) != 0 }

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the index of the least significant set bit, or -1 if empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB clears and returns the least significant set bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	if sq != NoSquare {
		b.ClearBit(sq)
	}
	return sq
}

// Squares returns every set square, ascending.
func (b Bitboard) Squares() []Square {
	sqs := make([]Square, 0, b.PopCount())
	for bb := b; bb != 0; {
		sqs = append(sqs, bb.PopLSB())
	}
	return sqs
}

func squareBB(sq Square) Bitboard {
	if sq < 0 {
		return 0
	}
	return 1 << uint(sq)
}

// Pretty renders the bitboard as an 8x8 ASCII grid, rank 8 first.
func (b Bitboard) Pretty() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			if b.IsBitSet(sq) {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		fmt.Fprintf(&sb, "| %d\n+---+---+---+---+---+---+---+---+\n", rank+1)
	}
	sb.WriteString("  a   b   c   d   e   f   g   h\n")
	return sb.String()
}
