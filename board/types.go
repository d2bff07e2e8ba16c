// Package board implements bitboard position state, pseudo-legal move
// generation, make/unmake, Zobrist hashing, and FEN/UCI text conversion.
package board

import "fmt"

// Bitboard Layout: https://gekomad.github.io/Cinnamon/BitboardCalculator/
//
//	56 57 58 59 60 61 62 63
//	48 49 50 51 52 53 54 55
//	40 41 42 43 44 45 46 47
//	32 33 34 35 36 37 38 39
//	24 25 26 27 28 29 30 31
//	16 17 18 19 20 21 22 23
//	08 09 10 11 12 13 14 15
//	00 01 02 03 04 05 06 07
type Bitboard uint64

// Square is a board index 0-63, a1=0, h8=63.
type Square int8

// NoSquare marks an absent square (e.g. no en-passant target).
const NoSquare Square = -1

// Piece indexes the six piece types, matching the material ordering used
// throughout search and evaluation.
type Piece uint8

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPiece Piece = 255
)

func (p Piece) String() string {
	switch p {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Color is the side to move.
type Color uint8

const (
	White Color = iota
	Black
)

// Opposite returns the other color.
func (c Color) Opposite() Color {
	return c ^ 1
}

// Info bit layout for Action.Info.
const (
	infoPromoShift = 0
	infoPromoMask  = 0x7 // bits 0-2: promotion piece, 1=Knight..4=Queen, 0 = no promotion
	infoEnPassant  = 1 << 3
	infoCastleKing = 1 << 4
	infoCastleQSid = 1 << 5
	infoDoublePush = 1 << 6
)

// Action is an opaque, comparable move record.
type Action struct {
	From, To Square
	Piece    Piece
	Info     uint8
}

// Promotion returns the promotion piece and whether the action promotes.
func (a Action) Promotion() (Piece, bool) {
	v := (a.Info >> infoPromoShift) & infoPromoMask
	if v == 0 {
		return NoPiece, false
	}
	return Piece(v - 1 + uint8(Knight)), true
}

// IsEnPassant reports whether the action is an en-passant capture.
func (a Action) IsEnPassant() bool { return a.Info&infoEnPassant != 0 }

// IsCastleKingside reports a kingside castle.
func (a Action) IsCastleKingside() bool { return a.Info&infoCastleKing != 0 }

// IsCastleQueenside reports a queenside castle.
func (a Action) IsCastleQueenside() bool { return a.Info&infoCastleQSid != 0 }

// IsDoublePush reports a pawn double push (sets the en-passant target).
func (a Action) IsDoublePush() bool { return a.Info&infoDoublePush != 0 }

// IsZero reports whether the action is the zero value (no action).
func (a Action) IsZero() bool { return a == Action{} }

func withPromotion(info uint8, p Piece) uint8 {
	return info | (uint8(p-Knight+1) & infoPromoMask)
}

// String is a debug representation, not UCI text.
func (a Action) String() string {
	return fmt.Sprintf("%s%s%s", SquareName(a.From), SquareName(a.To), promoSuffix(a))
}

func promoSuffix(a Action) string {
	if p, ok := a.Promotion(); ok {
		return promoLetter(p)
	}
	return ""
}

func promoLetter(p Piece) string {
	switch p {
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	default:
		return ""
	}
}

// SquareName converts a square index to algebraic notation, e.g. 0 -> "a1".
func SquareName(sq Square) string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	file := int(sq) & 7
	rank := int(sq) >> 3
	return fmt.Sprintf("%c%d", 'a'+file, rank+1)
}

// ParseSquare parses algebraic notation into a square index.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	file := s[0] - 'a'
	rank := s[1] - '1'
	if file > 7 || rank > 7 {
		return NoSquare, false
	}
	return Square(int(rank)*8 + int(file)), true
}

// File returns 0-7 (a-h).
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns 0-7 (1-8).
func (sq Square) Rank() int { return int(sq) >> 3 }

// Flip mirrors a square vertically (sq XOR 56), used to share white/black
// piece-square tables.
func (sq Square) Flip() Square { return sq ^ 56 }
