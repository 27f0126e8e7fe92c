package rules_test

import (
	"testing"

	"chess-rules/rules"
)

func mustParse(t testing.TB, fen string) *rules.Board {
	t.Helper()
	b, err := rules.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func sq(t testing.TB, s string) rules.Square {
	t.Helper()
	square, err := rules.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return square
}

// kingOf returns the square of c's king, failing the test if there is none.
func kingOf(t testing.TB, b *rules.Board, c rules.Color) rules.Square {
	t.Helper()
	for _, ps := range b.Pieces() {
		if ps.Piece == rules.NewPiece(c, rules.King) {
			return ps.Square
		}
	}
	t.Fatalf("no %s king on %s", c, b.FEN())
	return rules.NoSquare
}

func moveStrings(moves []rules.Move) map[string]bool {
	set := make(map[string]bool, len(moves))
	for _, m := range moves {
		set[m.String()] = true
	}
	return set
}
