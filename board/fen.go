package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenPieceLetters = map[rune]struct {
	piece Piece
	color Color
}{
	'P': {Pawn, White}, 'N': {Knight, White}, 'B': {Bishop, White},
	'R': {Rook, White}, 'Q': {Queen, White}, 'K': {King, White},
	'p': {Pawn, Black}, 'n': {Knight, Black}, 'b': {Bishop, Black},
	'r': {Rook, Black}, 'q': {Queen, Black}, 'k': {King, Black},
}

// NewFromFEN parses a FEN string into a Board. Unlike the teacher's
// CreatePositionFormFEN (which calls log.Fatal on a bad FEN), this returns
// an error so a malformed `position fen ...` UCI command cannot crash the
// process.
func NewFromFEN(keys *ZobristKeys, fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: bad fen %q: need at least 4 fields", fen)
	}

	b := NewEmpty(keys)

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("board: bad fen %q: need 8 ranks", fen)
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pc, ok := fenPieceLetters[ch]
			if !ok {
				return nil, fmt.Errorf("board: bad fen %q: bad piece letter %q", fen, ch)
			}
			if file > 7 {
				return nil, fmt.Errorf("board: bad fen %q: rank overflow", fen)
			}
			b.place(Square(rank*8+file), pc.piece, pc.color)
			file++
		}
	}

	switch fields[1] {
	case "w":
		b.SideToMove = White
	case "b":
		b.SideToMove = Black
	default:
		return nil, fmt.Errorf("board: bad fen %q: bad side to move", fen)
	}

	b.Castle = 0
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.Castle |= CastleWhiteKing
			case 'Q':
				b.Castle |= CastleWhiteQueen
			case 'k':
				b.Castle |= CastleBlackKing
			case 'q':
				b.Castle |= CastleBlackQueen
			}
		}
	}

	b.EnPassant = NoSquare
	if fields[3] != "-" {
		sq, ok := ParseSquare(fields[3])
		if !ok {
			return nil, fmt.Errorf("board: bad fen %q: bad en-passant square", fen)
		}
		b.EnPassant = sq
	}

	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			b.HalfMove = uint16(n)
		}
	}
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			b.FullMove = uint16(n)
		}
	}

	b.Hash = b.ComputeHash()
	return b, nil
}

// ToFEN renders the board back to FEN text.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			p, c, ok := b.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteRune(pieceLetter(p, c))
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if b.SideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	castle := ""
	if b.Castle&CastleWhiteKing != 0 {
		castle += "K"
	}
	if b.Castle&CastleWhiteQueen != 0 {
		castle += "Q"
	}
	if b.Castle&CastleBlackKing != 0 {
		castle += "k"
	}
	if b.Castle&CastleBlackQueen != 0 {
		castle += "q"
	}
	if castle == "" {
		castle = "-"
	}
	sb.WriteString(castle)

	if b.EnPassant == NoSquare {
		sb.WriteString(" -")
	} else {
		sb.WriteString(" " + SquareName(b.EnPassant))
	}

	fmt.Fprintf(&sb, " %d %d", b.HalfMove, b.FullMove)
	return sb.String()
}

func pieceLetter(p Piece, c Color) rune {
	var letters = [6]rune{'p', 'n', 'b', 'r', 'q', 'k'}
	l := letters[p]
	if c == White {
		l = []rune(strings.ToUpper(string(l)))[0]
	}
	return l
}

// Pretty renders an 8x8 board diagram, rank 8 first.
func (b *Board) Pretty() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for rank := 7; rank >= 0; rank-- {
		sb.WriteString("|")
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			p, c, ok := b.PieceAt(sq)
			if !ok {
				sb.WriteString("   |")
				continue
			}
			fmt.Fprintf(&sb, " %c |", pieceLetter(p, c))
		}
		fmt.Fprintf(&sb, " %d\n+---+---+---+---+---+---+---+---+\n", rank+1)
	}
	sb.WriteString("  a   b   c   d   e   f   g   h\n")
	return sb.String()
}
