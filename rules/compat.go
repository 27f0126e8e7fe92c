package rules

import (
	"fmt"
	"strings"
)

// ParseMove splits a UCI move string (e2e4, e7e8q) into its squares and promotion type.
func ParseMove(movestr string) (from, to Square, promotion PieceType, err error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	if len(movestr) < 4 || len(movestr) > 5 {
		return NoSquare, NoSquare, NoPieceType, fmt.Errorf("%w: %q", ErrIllegalMove, movestr)
	}
	if from, err = ParseSquare(movestr[0:2]); err != nil {
		return NoSquare, NoSquare, NoPieceType, err
	}
	if to, err = ParseSquare(movestr[2:4]); err != nil {
		return NoSquare, NoSquare, NoPieceType, err
	}
	if len(movestr) == 5 {
		promotion = PieceFromSymbol(rune(movestr[4])).Type()
		if !promotion.Promotable() {
			return NoSquare, NoSquare, NoPieceType, fmt.Errorf("%w: %q", ErrInvalidPromotionPiece, movestr[4:])
		}
	}
	return from, to, promotion, nil
}

// MoveUCI plays a move given in UCI notation.
func (b *Board) MoveUCI(movestr string) (Move, error) {
	from, to, promotion, err := ParseMove(movestr)
	if err != nil {
		return Move{}, err
	}
	return b.Move(from, to, promotion)
}
