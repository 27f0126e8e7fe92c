package rules

// pawnGeometry returns the push direction, start rank and promotion rank for c.
func pawnGeometry(c Color) (dir Square, startRank, lastRank int) {
	if c == White {
		return 16, 1, 7
	}
	return -16, 6, 0
}

// GenerateMoves generates all legal moves for the current side to move.
func (b *Board) GenerateMoves() []Move {
	return b.legalFilter(b.generatePseudoMoves(make([]Move, 0, 64), NoSquare))
}

// GenerateMovesFrom generates the legal moves of the piece on sq. An empty square or
// a piece of the side not to move yields no moves.
func (b *Board) GenerateMovesFrom(sq Square) ([]Move, error) {
	if err := validateSquare(sq); err != nil {
		return nil, err
	}
	return b.legalFilter(b.generatePseudoMoves(make([]Move, 0, 32), sq)), nil
}

// GeneratePseudoMoves returns all pseudo-legal moves (no king-safety filtering).
func (b *Board) GeneratePseudoMoves() []Move {
	return b.generatePseudoMoves(make([]Move, 0, 64), NoSquare)
}

// HasLegalMoves reports whether the side to move has any legal moves.
func (b *Board) HasLegalMoves() bool {
	for _, m := range b.generatePseudoMoves(make([]Move, 0, 64), NoSquare) {
		if b.isLegal(m) {
			return true
		}
	}
	return false
}

// legalFilter keeps the moves that do not leave the mover's king attacked. It
// reuses the backing array of moves.
func (b *Board) legalFilter(moves []Move) []Move {
	legal := moves[:0]
	for _, m := range moves {
		if b.isLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isLegal plays m, tests the mover's king and takes the move back. Nothing is
// emitted and the history is left as it was.
func (b *Board) isLegal(m Move) bool {
	b.makeMove(m)
	ok := !b.kingAttacked(m.Color)
	b.unmakeMove()
	return ok
}

// generatePseudoMoves appends the side to move's pseudo-legal moves to dst. If only
// is on the board, generation is restricted to the piece standing there.
func (b *Board) generatePseudoMoves(dst []Move, only Square) []Move {
	us := b.sideToMove
	for _, ps := range b.pieces {
		if !ps.Piece.IsColor(us) || (only != NoSquare && ps.Square != only) {
			continue
		}
		switch ps.Piece.Type() {
		case Pawn:
			dst = b.pawnMoves(dst, ps)
		case Knight:
			dst = b.stepMoves(dst, ps, knightOffsets[:])
		case King:
			dst = b.stepMoves(dst, ps, kingOffsets[:])
			dst = b.castlingMoves(dst, ps)
		case Bishop:
			dst = b.slideMoves(dst, ps, bishopDirs[:])
		case Rook:
			dst = b.slideMoves(dst, ps, rookDirs[:])
		case Queen:
			dst = b.slideMoves(dst, ps, queenDirs[:])
		}
	}
	return dst
}

// newMove builds a normal move or, if an enemy stands on to, a capture.
func (b *Board) newMove(ps PieceSquare, to Square) Move {
	m := Move{Color: ps.Piece.Color(), From: ps.Square, To: to, Piece: ps.Piece, Flags: FlagNormal}
	if target := b.squares[to]; target != NoPiece {
		m.Captured = target
		m.Flags = FlagCapture
	}
	return m
}

func (b *Board) stepMoves(dst []Move, ps PieceSquare, offsets []Square) []Move {
	us := ps.Piece.Color()
	for _, off := range offsets {
		to := ps.Square + off
		if to&offBoardMask != 0 {
			continue
		}
		if target := b.squares[to]; target != NoPiece && target.IsColor(us) {
			continue
		}
		dst = append(dst, b.newMove(ps, to))
	}
	return dst
}

func (b *Board) slideMoves(dst []Move, ps PieceSquare, dirs []Square) []Move {
	us := ps.Piece.Color()
	for _, dir := range dirs {
		for to := ps.Square + dir; to&offBoardMask == 0; to += dir {
			target := b.squares[to]
			if target != NoPiece && target.IsColor(us) {
				break
			}
			dst = append(dst, b.newMove(ps, to))
			if target != NoPiece {
				break
			}
		}
	}
	return dst
}

func (b *Board) pawnMoves(dst []Move, ps PieceSquare) []Move {
	us := ps.Piece.Color()
	dir, startRank, lastRank := pawnGeometry(us)

	// Pushes
	one := ps.Square + dir
	if one&offBoardMask == 0 && b.squares[one] == NoPiece {
		dst = appendPawnMove(dst, b.newMove(ps, one), lastRank)
		two := one + dir
		if ps.Square.Rank() == startRank && b.squares[two] == NoPiece {
			m := b.newMove(ps, two)
			m.Flags = FlagBigPawn
			dst = append(dst, m)
		}
	}

	// Captures, en passant included
	for _, off := range [2]Square{dir - 1, dir + 1} {
		to := ps.Square + off
		if to&offBoardMask != 0 {
			continue
		}
		target := b.squares[to]
		switch {
		case target != NoPiece && !target.IsColor(us):
			dst = appendPawnMove(dst, b.newMove(ps, to), lastRank)
		case target == NoPiece && to == b.enPassantSquare:
			victim := b.squares[to-dir]
			if victim != NewPiece(us.Opposite(), Pawn) {
				continue
			}
			dst = append(dst, Move{
				Color:    us,
				From:     ps.Square,
				To:       to,
				Piece:    ps.Piece,
				Captured: victim,
				Flags:    FlagEnPassant,
			})
		}
	}
	return dst
}

// appendPawnMove expands a move onto the last rank into the four promotions.
func appendPawnMove(dst []Move, m Move, lastRank int) []Move {
	if m.To.Rank() != lastRank {
		return append(dst, m)
	}
	for _, t := range PromotionTypes {
		promo := m
		promo.Promotion = NewPiece(m.Color, t)
		promo.Flags |= FlagPromotion
		dst = append(dst, promo)
	}
	return dst
}

// castlingMoves requires the right, king and rook on their home squares, an empty
// path between them, and a king that neither starts in nor passes through check.
// Landing in check is left to the legality filter.
func (b *Board) castlingMoves(dst []Move, ps PieceSquare) []Move {
	us := ps.Piece.Color()
	home := E1
	if us == Black {
		home = E8
	}
	if ps.Square != home || b.castlingRights&(kingside(us)|queenside(us)) == 0 {
		return dst
	}
	them := us.Opposite()
	rook := NewPiece(us, Rook)
	if b.isSquareAttacked(home, them) {
		return dst
	}
	if b.castlingRights.Kingside(us) &&
		b.squares[home+3] == rook &&
		b.squares[home+1] == NoPiece && b.squares[home+2] == NoPiece &&
		!b.isSquareAttacked(home+1, them) {
		dst = append(dst, Move{Color: us, From: home, To: home + 2, Piece: ps.Piece, Flags: FlagKingsideCastle})
	}
	if b.castlingRights.Queenside(us) &&
		b.squares[home-4] == rook &&
		b.squares[home-1] == NoPiece && b.squares[home-2] == NoPiece && b.squares[home-3] == NoPiece &&
		!b.isSquareAttacked(home-1, them) {
		dst = append(dst, Move{Color: us, From: home, To: home - 2, Piece: ps.Piece, Flags: FlagQueensideCastle})
	}
	return dst
}
