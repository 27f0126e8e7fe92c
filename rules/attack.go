package rules

// Step offsets on the 0x88 board.
var (
	knightOffsets = [8]Square{33, 31, 18, 14, -14, -18, -31, -33}
	kingOffsets   = [8]Square{17, 16, 15, 1, -1, -15, -16, -17}
	rookDirs      = [4]Square{16, 1, -16, -1}
	bishopDirs    = [4]Square{17, 15, -15, -17}
	queenDirs     = [8]Square{17, 16, 15, 1, -1, -15, -16, -17}
)

// Square differences on a 0x88 board are unique per direction and distance, so a
// table indexed by (target - origin) tells which piece types could attack along
// that difference and which single step walks the ray.
const deltaOffset = 119

var (
	deltaAttackers [2*deltaOffset + 1]PieceType // bitwise OR of attacking types
	deltaStep      [2*deltaOffset + 1]Square    // ray step for sliders
)

func init() {
	initDeltaTables()
}

func initDeltaTables() {
	for _, off := range knightOffsets {
		deltaAttackers[off+deltaOffset] |= Knight
	}
	for _, off := range kingOffsets {
		deltaAttackers[off+deltaOffset] |= King
	}
	for _, dir := range rookDirs {
		for k := Square(1); k < 8; k++ {
			deltaAttackers[dir*k+deltaOffset] |= Rook | Queen
			deltaStep[dir*k+deltaOffset] = dir
		}
	}
	for _, dir := range bishopDirs {
		for k := Square(1); k < 8; k++ {
			deltaAttackers[dir*k+deltaOffset] |= Bishop | Queen
			deltaStep[dir*k+deltaOffset] = dir
		}
	}
}

// IsSquareAttacked reports whether the given square is attacked by the given color.
// Off-board squares are never attacked.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	if !sq.OnBoard() {
		return false
	}
	return b.isSquareAttacked(sq, by)
}

// isSquareAttacked walks only by's entries of the piece index.
func (b *Board) isSquareAttacked(sq Square, by Color) bool {
	for _, ps := range b.pieces {
		if !ps.Piece.IsColor(by) || ps.Square == sq {
			continue
		}
		if b.attacks(ps, sq) {
			return true
		}
	}
	return false
}

// attacks reports whether the piece at ps.Square reaches target.
func (b *Board) attacks(ps PieceSquare, target Square) bool {
	diff := target - ps.Square
	t := ps.Piece.Type()
	if t == Pawn {
		// Pawns attack forward diagonals only
		if ps.Piece.IsColor(White) {
			return diff == 15 || diff == 17
		}
		return diff == -15 || diff == -17
	}
	if deltaAttackers[diff+deltaOffset]&t == 0 {
		return false
	}
	if t == King || t == Knight {
		return true
	}
	step := deltaStep[diff+deltaOffset]
	for s := ps.Square + step; s != target; s += step {
		if b.squares[s] != NoPiece {
			return false
		}
	}
	return true
}

// Attackers returns the squares of by's pieces attacking sq.
func (b *Board) Attackers(sq Square, by Color) []Square {
	if !sq.OnBoard() {
		return nil
	}
	var out []Square
	for _, ps := range b.pieces {
		if ps.Piece.IsColor(by) && ps.Square != sq && b.attacks(ps, sq) {
			out = append(out, ps.Square)
		}
	}
	return out
}

// InCheck reports whether the side to move has its king attacked.
func (b *Board) InCheck() bool {
	return b.kingAttacked(b.sideToMove)
}

// kingAttacked reports whether c's king is attacked. A side without a king is
// never in check.
func (b *Board) kingAttacked(c Color) bool {
	ks := b.kingSquare(c)
	if ks == NoSquare {
		return false
	}
	return b.isSquareAttacked(ks, c.Opposite())
}
