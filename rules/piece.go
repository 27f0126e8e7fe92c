// Package rules implements the legality model of chess: FEN parsing, move
// generation, attack detection, move execution with exact undo, and game status.
package rules

// Piece packs one color bit and one type bit into a byte. The type bits occupy the
// low six bits and the color bits the top two, so OR-ing a color with a type can
// never be read back as a different piece.
type Piece uint8

// PieceType is the colorless part of a Piece.
type PieceType uint8

// Color is the side owning a piece.
type Color uint8

const (
	King   PieceType = 0b000001
	Pawn   PieceType = 0b000010
	Knight PieceType = 0b000100
	Bishop PieceType = 0b001000
	Rook   PieceType = 0b010000
	Queen  PieceType = 0b100000

	NoPieceType PieceType = 0
)

const (
	White Color = 0b01000000
	Black Color = 0b10000000

	NoColor Color = 0
)

const (
	typeMask  = 0b00111111
	colorMask = 0b11000000
)

const (
	NoPiece Piece = 0

	WhiteKing   = Piece(White) | Piece(King)
	WhitePawn   = Piece(White) | Piece(Pawn)
	WhiteKnight = Piece(White) | Piece(Knight)
	WhiteBishop = Piece(White) | Piece(Bishop)
	WhiteRook   = Piece(White) | Piece(Rook)
	WhiteQueen  = Piece(White) | Piece(Queen)

	BlackKing   = Piece(Black) | Piece(King)
	BlackPawn   = Piece(Black) | Piece(Pawn)
	BlackKnight = Piece(Black) | Piece(Knight)
	BlackBishop = Piece(Black) | Piece(Bishop)
	BlackRook   = Piece(Black) | Piece(Rook)
	BlackQueen  = Piece(Black) | Piece(Queen)
)

// EmptySymbol is what Symbol returns for an empty square or an invalid piece.
const EmptySymbol = '.'

// AllPieces lists the twelve valid pieces.
var AllPieces = [12]Piece{
	WhiteKing, WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen,
	BlackKing, BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen,
}

// PromotionTypes are the piece types a pawn may promote to, in generation order.
var PromotionTypes = [4]PieceType{Knight, Bishop, Rook, Queen}

// NewPiece combines a color and a type. It returns NoPiece if either is not valid.
func NewPiece(c Color, t PieceType) Piece {
	p := Piece(c) | Piece(t)
	if !p.Valid() {
		return NoPiece
	}
	return p
}

// Type returns the type bits of the piece.
func (p Piece) Type() PieceType { return PieceType(p & typeMask) }

// Color returns the color bits of the piece.
func (p Piece) Color() Color { return Color(p & colorMask) }

// IsType reports whether the piece has type t.
func (p Piece) IsType(t PieceType) bool { return p.Type() == t }

// IsColor reports whether the piece belongs to c.
func (p Piece) IsColor(c Color) bool { return p.Color() == c }

// Valid reports whether p is one of the twelve canonical pieces.
func (p Piece) Valid() bool {
	return p.Color().Valid() && p.Type().Valid()
}

// Valid reports whether exactly one type bit is set.
func (t PieceType) Valid() bool {
	switch t {
	case King, Pawn, Knight, Bishop, Rook, Queen:
		return true
	}
	return false
}

// Promotable reports whether a pawn may promote to t.
func (t PieceType) Promotable() bool {
	switch t {
	case Knight, Bishop, Rook, Queen:
		return true
	}
	return false
}

func (t PieceType) String() string {
	switch t {
	case King:
		return "King"
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	}
	return ""
}

// letter returns the lowercase FEN letter of the type, or 0.
func (t PieceType) letter() byte {
	switch t {
	case King:
		return 'k'
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	}
	return 0
}

// Valid reports whether exactly one color bit is set.
func (c Color) Valid() bool { return c == White || c == Black }

// Opposite returns the other side. NoColor stays NoColor.
func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// index maps White to 0 and Black to 1 for table lookups.
func (c Color) index() int {
	if c == Black {
		return 1
	}
	return 0
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return ""
}

// Symbol returns the FEN letter of the piece, uppercase for White and lowercase for
// Black, or EmptySymbol for NoPiece and invalid values.
func (p Piece) Symbol() rune {
	if !p.Valid() {
		return EmptySymbol
	}
	ch := p.Type().letter()
	if p.IsColor(White) {
		ch -= 'a' - 'A'
	}
	return rune(ch)
}

// Name returns a display name such as "White Knight", or "" for invalid pieces.
func (p Piece) Name() string {
	if !p.Valid() {
		return ""
	}
	return p.Color().String() + " " + p.Type().String()
}

func (p Piece) String() string { return string(p.Symbol()) }

// PieceFromSymbol converts a FEN letter to a piece, returning NoPiece for anything else.
func PieceFromSymbol(ch rune) Piece {
	switch ch {
	case 'K':
		return WhiteKing
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'k':
		return BlackKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	}
	return NoPiece
}
