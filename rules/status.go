package rules

// fiftyMoveLimit is the half-move clock value at which a fifty-move draw may be claimed.
const fiftyMoveLimit = 100

// IsCheckmate reports whether the side to move is checkmated.
func (b *Board) IsCheckmate() bool {
	return b.InCheck() && !b.HasLegalMoves()
}

// IsStalemate reports whether the side to move is stalemated.
func (b *Board) IsStalemate() bool {
	return !b.InCheck() && !b.HasLegalMoves()
}

// IsDraw reports stalemate or insufficient material. The fifty-move rule and
// repetition are exposed separately and do not end the game here.
func (b *Board) IsDraw() bool {
	return b.IsInsufficientMaterial() || b.IsStalemate()
}

// IsInsufficientMaterial recognises bare kings, a single minor piece against a bare
// king, and one bishop each when both bishops stand on the same square color.
func (b *Board) IsInsufficientMaterial() bool {
	var rest [2]PieceSquare
	n := 0
	for _, ps := range b.pieces {
		if ps.Piece.IsType(King) {
			continue
		}
		if n == len(rest) {
			return false
		}
		rest[n] = ps
		n++
	}
	switch n {
	case 0:
		return true
	case 1:
		t := rest[0].Piece.Type()
		return t == Bishop || t == Knight
	default:
		a, c := rest[0], rest[1]
		return a.Piece.IsType(Bishop) && c.Piece.IsType(Bishop) &&
			a.Piece.Color() != c.Piece.Color() &&
			a.Square.Light() == c.Square.Light()
	}
}

// IsDrawBy50 reports a 50-move rule draw (halfmoveClock counts half-moves).
func (b *Board) IsDrawBy50() bool {
	return b.halfmoveClock >= fiftyMoveLimit
}

// IsThreefoldRepetition reports whether the current position occurred at least
// twice before in the committed history. The Zobrist key covers side to move,
// castling rights and the en-passant file.
func (b *Board) IsThreefoldRepetition() bool {
	target := b.zobristKey
	matches := 0
	for i := len(b.history) - 1; i >= 0; i-- {
		if b.history[i].prevZobrist == target {
			matches++
			if matches >= 2 {
				return true
			}
		}
	}
	return false
}

// Status summarises the position for the side to move.
type Status uint8

const (
	StatusOngoing Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
	StatusInsufficientMaterial
)

func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	case StatusInsufficientMaterial:
		return "insufficient material"
	}
	return "unknown"
}

// Status classifies the position, generating moves once.
func (b *Board) Status() Status {
	check := b.InCheck()
	if !b.HasLegalMoves() {
		if check {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if b.IsInsufficientMaterial() {
		return StatusInsufficientMaterial
	}
	if check {
		return StatusCheck
	}
	return StatusOngoing
}
