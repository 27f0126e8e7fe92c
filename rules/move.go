package rules

import "strings"

// MoveFlags classifies a move. Flags combine, e.g. Capture|Promotion.
type MoveFlags uint8

const (
	FlagNormal MoveFlags = 1 << iota
	FlagCapture
	FlagBigPawn // double pawn push
	FlagEnPassant
	FlagPromotion
	FlagKingsideCastle
	FlagQueensideCastle
)

// Move describes a move in a particular position.
type Move struct {
	Color     Color
	From      Square
	To        Square
	Piece     Piece // moving piece
	Captured  Piece // NoPiece unless Flags has FlagCapture or FlagEnPassant
	Promotion Piece // NoPiece unless Flags has FlagPromotion
	Flags     MoveFlags
}

// Is reports whether all of flags are set on m.
func (m Move) Is(flags MoveFlags) bool { return m.Flags&flags == flags }

// IsCapture reports whether m removes an enemy piece, en passant included.
func (m Move) IsCapture() bool { return m.Flags&(FlagCapture|FlagEnPassant) != 0 }

// IsCastle reports whether m is either castling move.
func (m Move) IsCastle() bool { return m.Flags&(FlagKingsideCastle|FlagQueensideCastle) != 0 }

// String returns long algebraic (UCI) notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPiece {
		s += strings.ToLower(m.Promotion.String())
	}
	return s
}

// capturedSquare returns where the captured piece stands; it differs from To for
// en passant.
func (m Move) capturedSquare() Square {
	if m.Flags&FlagEnPassant == 0 {
		return m.To
	}
	if m.Color == White {
		return m.To - 16
	}
	return m.To + 16
}

// castleRookSquares returns the rook's origin and destination for a castling move.
func (m Move) castleRookSquares() (from, to Square) {
	if m.Flags&FlagKingsideCastle != 0 {
		return m.To + 1, m.To - 1
	}
	return m.To - 2, m.To + 1
}
