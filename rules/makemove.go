package rules

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// historyEntry holds what is needed to take a move back exactly.
type historyEntry struct {
	move          Move
	side          Color
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevZobrist   uint64
	capturedIndex int // piece index slot of the captured piece
}

// rookHomeRights returns the castling right tied to a rook home square.
func rookHomeRights(sq Square) CastlingRights {
	switch sq {
	case A1:
		return CastlingWhiteQ
	case H1:
		return CastlingWhiteK
	case A8:
		return CastlingBlackQ
	case H8:
		return CastlingBlackK
	}
	return CastlingNone
}

// makeMove applies a pseudo-legal move and pushes its undo record. The moving
// piece keeps its piece index slot so that unmakeMove restores the index exactly.
func (b *Board) makeMove(m Move) {
	b.history = append(b.history, historyEntry{
		move:          m,
		side:          b.sideToMove,
		prevCastling:  b.castlingRights,
		prevEnPassant: b.enPassantSquare,
		prevHalfmove:  b.halfmoveClock,
		prevFullmove:  b.fullmoveNumber,
		prevZobrist:   b.zobristKey,
		capturedIndex: -1,
	})
	entry := &b.history[len(b.history)-1]
	us := m.Color

	if m.IsCapture() {
		_, entry.capturedIndex = b.removePiece(m.capturedSquare())
	}
	b.relocate(m.From, m.To)
	if m.Promotion != NoPiece {
		b.retag(m.To, m.Promotion)
	}
	if m.IsCastle() {
		rookFrom, rookTo := m.castleRookSquares()
		b.relocate(rookFrom, rookTo)
	}

	// Update castling rights
	cr := b.castlingRights
	if m.Piece.IsType(King) {
		cr &^= kingside(us) | queenside(us)
	}
	if m.Captured.IsType(King) {
		them := us.Opposite()
		cr &^= kingside(them) | queenside(them)
	}
	cr &^= rookHomeRights(m.From) | rookHomeRights(m.To)
	b.zobristKey ^= zobristCastle[b.castlingRights] ^ zobristCastle[cr]
	b.castlingRights = cr

	// En passant target only survives a double pawn push
	if b.enPassantSquare != NoSquare {
		b.zobristKey ^= zobristEnPassant[b.enPassantSquare.File()]
	}
	b.enPassantSquare = NoSquare
	if m.Flags&FlagBigPawn != 0 {
		dir, _, _ := pawnGeometry(us)
		b.enPassantSquare = m.From + dir
		b.zobristKey ^= zobristEnPassant[b.enPassantSquare.File()]
	}

	if m.Piece.IsType(Pawn) || m.IsCapture() {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if us == Black {
		b.fullmoveNumber++
	}

	b.sideToMove = us.Opposite()
	b.zobristKey ^= zobristSide
}

// unmakeMove pops the last history entry and reverses it.
func (b *Board) unmakeMove() (Move, bool) {
	n := len(b.history)
	if n == 0 {
		return Move{}, false
	}
	e := b.history[n-1]
	b.history = b.history[:n-1]
	m := e.move

	if m.IsCastle() {
		rookFrom, rookTo := m.castleRookSquares()
		b.relocate(rookTo, rookFrom)
	}
	if m.Promotion != NoPiece {
		b.retag(m.To, m.Piece)
	}
	b.relocate(m.To, m.From)
	if m.IsCapture() {
		b.insertPiece(e.capturedIndex, m.capturedSquare(), m.Captured)
	}

	b.sideToMove = e.side
	b.castlingRights = e.prevCastling
	b.enPassantSquare = e.prevEnPassant
	b.halfmoveClock = e.prevHalfmove
	b.fullmoveNumber = e.prevFullmove
	b.zobristKey = e.prevZobrist
	return m, true
}

// Move plays the legal move from -> to. promotion names the piece type a pawn
// reaching the last rank becomes and must be NoPieceType otherwise.
func (b *Board) Move(from, to Square, promotion PieceType) (Move, error) {
	if err := validateSquare(from); err != nil {
		return Move{}, err
	}
	if err := validateSquare(to); err != nil {
		return Move{}, err
	}
	if promotion != NoPieceType && !promotion.Promotable() {
		return Move{}, fmt.Errorf("%w: %d", ErrInvalidPromotionPiece, promotion)
	}
	moves, err := b.GenerateMovesFrom(from)
	if err != nil {
		return Move{}, err
	}
	i := slices.IndexFunc(moves, func(m Move) bool {
		return m.To == to && m.Promotion.Type() == promotion
	})
	if i < 0 {
		err := fmt.Errorf("%w: %s%s", ErrIllegalMove, from, to)
		if e := b.log.Debug(); e.Enabled() {
			e.Err(err).Str("fen", b.FEN()).Msg("move rejected")
		}
		return Move{}, err
	}
	m := moves[i]
	b.makeMove(m)
	if e := b.log.Trace(); e.Enabled() {
		e.Str("move", m.String()).Str("fen", b.FEN()).Msg("move made")
	}
	b.emitPositionChanged()
	b.emit(Event{Kind: MoveMade, Square: NoSquare, Move: m})
	return m, nil
}

// Undo takes back the last committed move. It reports false if there is none.
func (b *Board) Undo() (Move, bool) {
	m, ok := b.unmakeMove()
	if !ok {
		return Move{}, false
	}
	b.emitPositionChanged()
	b.emit(Event{Kind: MoveUndone, Square: NoSquare, Move: m})
	return m, true
}

// History returns the committed moves, oldest first.
func (b *Board) History() []Move {
	moves := make([]Move, len(b.history))
	for i, e := range b.history {
		moves[i] = e.move
	}
	return moves
}
