package rules

import "errors"

var (
	ErrInvalidSquare         = errors.New("invalid square")
	ErrInvalidPiece          = errors.New("invalid piece")
	ErrInvalidNotation       = errors.New("invalid FEN")
	ErrIllegalMove           = errors.New("illegal move")
	ErrInvalidPromotionPiece = errors.New("invalid promotion piece")
)
