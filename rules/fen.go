package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenPosition is a fully parsed FEN, built before any board is touched.
type fenPosition struct {
	placement  []PieceSquare // in FEN order: rank 8 first, a-file first
	sideToMove Color
	castling   CastlingRights
	enPassant  Square
	halfmove   int
	fullmove   int
}

func fenError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidNotation, fmt.Sprintf(format, args...))
}

func parseFEN(fen string) (*fenPosition, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fenError("expected 6 fields, got %d", len(fields))
	}
	pos := &fenPosition{}

	// 1. Piece placement
	placement, err := parsePlacement(fields[0])
	if err != nil {
		return nil, err
	}
	pos.placement = placement

	// 2. Side to move
	switch fields[1] {
	case "w":
		pos.sideToMove = White
	case "b":
		pos.sideToMove = Black
	default:
		return nil, fenError("side to move must be 'w' or 'b', got %q", fields[1])
	}

	// 3. Castling rights
	if pos.castling, err = parseCastling(fields[2]); err != nil {
		return nil, err
	}

	// 4. En passant target square
	pos.enPassant = NoSquare
	if ep := fields[3]; ep != "-" {
		if len(ep) != 2 || ep[0] < 'a' || ep[0] > 'h' || ep[1] < '3' || ep[1] > '6' {
			return nil, fenError("invalid en passant square %q", ep)
		}
		pos.enPassant = NewSquare(int(ep[0]-'a'), int(ep[1]-'1'))
	}

	// 5. Halfmove clock, 6. Fullmove number
	if pos.halfmove, err = parseCounter(fields[4], "halfmove clock"); err != nil {
		return nil, err
	}
	if pos.fullmove, err = parseCounter(fields[5], "fullmove number"); err != nil {
		return nil, err
	}
	return pos, nil
}

func parsePlacement(field string) ([]PieceSquare, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, fenError("expected 8 ranks, got %d", len(ranks))
	}
	placement := make([]PieceSquare, 0, 32)
	for i, rankStr := range ranks {
		if len(rankStr) == 0 || len(rankStr) > 8 {
			return nil, fenError("rank %d has %d symbols", 8-i, len(rankStr))
		}
		rank := 7 - i
		file := 0
		prevDigit := false
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				// Adjacent digits have no canonical serialization
				if prevDigit {
					return nil, fenError("rank %d has adjacent empty runs", 8-i)
				}
				file += int(ch - '0')
				prevDigit = true
				continue
			}
			prevDigit = false
			piece := PieceFromSymbol(ch)
			if piece == NoPiece {
				return nil, fenError("unrecognized piece character %q", ch)
			}
			if file >= 8 {
				return nil, fenError("rank %d has more than 8 files", 8-i)
			}
			placement = append(placement, PieceSquare{Piece: piece, Square: NewSquare(file, rank)})
			file++
		}
		if file != 8 {
			return nil, fenError("rank %d has %d files", 8-i, file)
		}
	}
	return placement, nil
}

func parseCastling(field string) (CastlingRights, error) {
	if field == "-" {
		return CastlingNone, nil
	}
	const order = "KQkq"
	var cr CastlingRights
	next := 0
	for _, ch := range field {
		i := strings.IndexRune(order, ch)
		if i < next {
			return 0, fenError("invalid castling rights %q", field)
		}
		cr |= CastlingRights(1) << uint(i)
		next = i + 1
	}
	return cr, nil
}

func parseCounter(field, name string) (int, error) {
	for _, ch := range field {
		if ch < '0' || ch > '9' {
			return 0, fenError("%s is not a non-negative integer: %q", name, field)
		}
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fenError("%s out of range: %q", name, field)
	}
	return n, nil
}

// PlacementFEN serializes the piece placement field.
func (b *Board) PlacementFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteRune(p.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// FEN produces the FEN string representation of the board's current state.
func (b *Board) FEN() string {
	var sb strings.Builder
	sb.WriteString(b.PlacementFEN())
	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(b.castlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(b.enPassantSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}
