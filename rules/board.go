package rules

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ

	CastlingNone CastlingRights = 0
	CastlingAll                 = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

// kingside and queenside return the flag for c.
func kingside(c Color) CastlingRights {
	if c == Black {
		return CastlingBlackK
	}
	return CastlingWhiteK
}

func queenside(c Color) CastlingRights {
	if c == Black {
		return CastlingBlackQ
	}
	return CastlingWhiteQ
}

// Kingside reports whether c may still castle short.
func (cr CastlingRights) Kingside(c Color) bool { return cr&kingside(c) != 0 }

// Queenside reports whether c may still castle long.
func (cr CastlingRights) Queenside(c Color) bool { return cr&queenside(c) != 0 }

func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	if cr&CastlingWhiteK != 0 {
		sb.WriteByte('K')
	}
	if cr&CastlingWhiteQ != 0 {
		sb.WriteByte('Q')
	}
	if cr&CastlingBlackK != 0 {
		sb.WriteByte('k')
	}
	if cr&CastlingBlackQ != 0 {
		sb.WriteByte('q')
	}
	return sb.String()
}

// PieceSquare is one entry of the piece index.
type PieceSquare struct {
	Piece  Piece
	Square Square
}

// Board holds a chess position together with its move history. A Board is not safe
// for concurrent use; separate boards share no mutable state.
type Board struct {
	// 0x88 square array; padding entries are always NoPiece
	squares [boardSize]Piece

	// One entry per occupied square, kept in sync with squares
	pieces []PieceSquare

	sideToMove Color

	castlingRights CastlingRights

	// Square passed over by the last double pawn push, or NoSquare
	enPassantSquare Square

	// Half-moves since the last capture or pawn move
	halfmoveClock int

	// Starts at 1, incremented after Black's move
	fullmoveNumber int

	zobristKey uint64

	history []historyEntry

	listeners    []listener
	nextListener int

	log zerolog.Logger
}

// Option configures a Board at construction.
type Option func(*Board)

// WithLogger sets the logger used for rejected operations and committed moves.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Board) { b.log = l }
}

// NewBoard returns a board set to the standard initial position.
func NewBoard(opts ...Option) *Board {
	b, err := ParseFEN(FENStartPos, opts...)
	if err != nil {
		panic(err) // FENStartPos is well formed
	}
	return b
}

// ParseFEN returns a new board set up from fen.
func ParseFEN(fen string, opts ...Option) (*Board, error) {
	pos, err := parseFEN(fen)
	if err != nil {
		return nil, err
	}
	b := &Board{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(b)
	}
	b.setPosition(pos)
	return b, nil
}

// LoadFEN replaces the position with fen. On error the board is left untouched.
func (b *Board) LoadFEN(fen string) error {
	pos, err := parseFEN(fen)
	if err != nil {
		b.log.Debug().Err(err).Str("fen", fen).Msg("load rejected")
		return err
	}
	b.setPosition(pos)
	b.emitPositionChanged()
	return nil
}

func (b *Board) setPosition(pos *fenPosition) {
	b.squares = [boardSize]Piece{}
	b.pieces = b.pieces[:0]
	for _, ps := range pos.placement {
		b.squares[ps.Square] = ps.Piece
		b.pieces = append(b.pieces, ps)
	}
	b.sideToMove = pos.sideToMove
	b.castlingRights = pos.castling
	b.enPassantSquare = pos.enPassant
	b.halfmoveClock = pos.halfmove
	b.fullmoveNumber = pos.fullmove
	b.history = b.history[:0]
	b.zobristKey = b.ComputeZobrist()
}

// Clone returns a deep copy of the board without its listeners.
func (b *Board) Clone() *Board {
	c := *b
	c.pieces = slices.Clone(b.pieces)
	c.history = slices.Clone(b.history)
	c.listeners = nil
	c.nextListener = 0
	return &c
}

// PieceAt returns the piece on sq. The square is not validated.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// Squares returns a copy of the full 0x88 array, padding included.
func (b *Board) Squares() [boardSize]Piece { return b.squares }

// Pieces returns a copy of the piece index.
func (b *Board) Pieces() []PieceSquare { return slices.Clone(b.pieces) }

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastlingRights returns the remaining castling rights.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassantSquare returns the current en-passant target square or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }

// HalfmoveClock accessor for testing/consumers that want read-only access.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Hash returns the current Zobrist hash key.
func (b *Board) Hash() uint64 { return b.zobristKey }

// Put places piece on sq, replacing any occupant. Editing the position clears the
// undo history.
func (b *Board) Put(piece Piece, sq Square) (PieceSquare, error) {
	if err := validateSquare(sq); err != nil {
		return PieceSquare{}, err
	}
	if !piece.Valid() {
		return PieceSquare{}, fmt.Errorf("%w: %d", ErrInvalidPiece, piece)
	}
	if prev, _ := b.removePiece(sq); prev != NoPiece {
		b.emit(Event{Kind: PieceRemoved, Piece: prev, Square: sq})
	}
	b.addPiece(sq, piece)
	b.history = b.history[:0]
	b.emit(Event{Kind: PieceAdded, Piece: piece, Square: sq})
	b.emit(Event{Kind: PiecesChanged, Square: NoSquare, Pieces: b.Pieces()})
	return PieceSquare{Piece: piece, Square: sq}, nil
}

// Remove clears sq. It reports false, without error, if the square was already empty.
func (b *Board) Remove(sq Square) (PieceSquare, bool, error) {
	if err := validateSquare(sq); err != nil {
		return PieceSquare{}, false, err
	}
	p, _ := b.removePiece(sq)
	if p == NoPiece {
		return PieceSquare{}, false, nil
	}
	b.history = b.history[:0]
	b.emit(Event{Kind: PieceRemoved, Piece: p, Square: sq})
	b.emit(Event{Kind: PiecesChanged, Square: NoSquare, Pieces: b.Pieces()})
	return PieceSquare{Piece: p, Square: sq}, true, nil
}

// indexOf returns the position of sq in the piece index, or -1.
func (b *Board) indexOf(sq Square) int {
	return slices.IndexFunc(b.pieces, func(ps PieceSquare) bool { return ps.Square == sq })
}

// addPiece places a piece on an empty square and appends it to the index.
func (b *Board) addPiece(sq Square, p Piece) {
	b.insertPiece(len(b.pieces), sq, p)
}

// insertPiece places a piece on an empty square at position idx of the index.
func (b *Board) insertPiece(idx int, sq Square, p Piece) {
	b.squares[sq] = p
	b.pieces = slices.Insert(b.pieces, idx, PieceSquare{Piece: p, Square: sq})
	b.zobristKey ^= zobristPiece[zobristIndex(p)][sq]
}

// removePiece clears sq and returns the piece with its former index position.
func (b *Board) removePiece(sq Square) (Piece, int) {
	p := b.squares[sq]
	if p == NoPiece {
		return NoPiece, -1
	}
	idx := b.indexOf(sq)
	b.squares[sq] = NoPiece
	b.pieces = slices.Delete(b.pieces, idx, idx+1)
	b.zobristKey ^= zobristPiece[zobristIndex(p)][sq]
	return p, idx
}

// relocate moves the piece on from to the empty square to, keeping its index slot.
func (b *Board) relocate(from, to Square) {
	p := b.squares[from]
	b.squares[from] = NoPiece
	b.squares[to] = p
	b.pieces[b.indexOf(from)].Square = to
	zi := zobristIndex(p)
	b.zobristKey ^= zobristPiece[zi][from] ^ zobristPiece[zi][to]
}

// retag swaps the piece on sq for p in place (promotion and its undo).
func (b *Board) retag(sq Square, p Piece) {
	old := b.squares[sq]
	b.squares[sq] = p
	b.pieces[b.indexOf(sq)].Piece = p
	b.zobristKey ^= zobristPiece[zobristIndex(old)][sq] ^ zobristPiece[zobristIndex(p)][sq]
}

// kingSquare returns the square of c's king, or NoSquare.
func (b *Board) kingSquare(c Color) Square {
	king := NewPiece(c, King)
	for _, ps := range b.pieces {
		if ps.Piece == king {
			return ps.Square
		}
	}
	return NoSquare
}

// Validate checks that the square array, the piece index and the hash agree.
func (b *Board) Validate() bool {
	count := 0
	for sq := Square(0); sq < boardSize; sq++ {
		p := b.squares[sq]
		if p == NoPiece {
			continue
		}
		if !sq.OnBoard() || !p.Valid() {
			return false
		}
		count++
	}
	if count != len(b.pieces) {
		return false
	}
	for _, ps := range b.pieces {
		if b.squares[ps.Square] != ps.Piece {
			return false
		}
	}
	return b.zobristKey == b.ComputeZobrist()
}

// String draws the position with rank 8 on top, the way a diagnostic dump would.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  +------------------------+\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d |", rank+1)
		for file := 0; file < 8; file++ {
			fmt.Fprintf(&sb, " %c ", b.squares[NewSquare(file, rank)].Symbol())
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("  +------------------------+\n")
	sb.WriteString("    a  b  c  d  e  f  g  h\n")
	return sb.String()
}
