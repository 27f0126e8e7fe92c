package rules

import "fmt"

// Square is an index into a 16-files-wide board (0x88 layout). Valid squares have
// rank*16+file with file and rank in [0,7]; a1 is 0x00 and h8 is 0x77. The unused
// right half lets a single mask test detect a step that ran off the board.
type Square int

// NoSquare marks an absent square (for example, no en-passant target).
const NoSquare Square = -1

const (
	offBoardMask = 0x88
	boardSize    = 128
)

// Named squares used by castling and tests.
const (
	A1 Square = 0x00
	B1 Square = 0x01
	C1 Square = 0x02
	D1 Square = 0x03
	E1 Square = 0x04
	F1 Square = 0x05
	G1 Square = 0x06
	H1 Square = 0x07
	A8 Square = 0x70
	B8 Square = 0x71
	C8 Square = 0x72
	D8 Square = 0x73
	E8 Square = 0x74
	F8 Square = 0x75
	G8 Square = 0x76
	H8 Square = 0x77
)

// NewSquare returns the square at file (0=a) and rank (0=1). Out-of-range inputs
// produce an off-board square.
func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank<<4 | file)
}

// OnBoard reports whether sq is one of the 64 playable squares.
func (sq Square) OnBoard() bool { return sq >= 0 && sq < boardSize && sq&offBoardMask == 0 }

// File returns 0 for the a-file through 7 for the h-file.
func (sq Square) File() int { return int(sq) & 15 }

// Rank returns 0 for the first rank through 7 for the eighth.
func (sq Square) Rank() int { return int(sq) >> 4 }

// Light reports whether sq is a light square (h1 is light).
func (sq Square) Light() bool { return (sq.File()+sq.Rank())%2 == 1 }

func (sq Square) String() string {
	if !sq.OnBoard() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts algebraic notation such as "e4" into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

func validateSquare(sq Square) error {
	if !sq.OnBoard() {
		return fmt.Errorf("%w: %d", ErrInvalidSquare, int(sq))
	}
	return nil
}
