package rules_test

import (
	"errors"
	"testing"

	"chess-rules/rules"
)

func TestSquareLayout(t *testing.T) {
	if rules.NewSquare(0, 0) != rules.A1 || rules.NewSquare(7, 7) != rules.H8 {
		t.Fatalf("corner squares misplaced")
	}
	e4 := sq(t, "e4")
	if e4.File() != 4 || e4.Rank() != 3 || e4.String() != "e4" {
		t.Fatalf("e4 decoded as file %d rank %d %q", e4.File(), e4.Rank(), e4)
	}
	onBoard := 0
	for s := rules.Square(-20); s < 160; s++ {
		if s.OnBoard() {
			onBoard++
		}
	}
	if onBoard != 64 {
		t.Fatalf("got %d on-board squares, want 64", onBoard)
	}
	if rules.Square(0x08).OnBoard() || rules.Square(0x78).OnBoard() || rules.NoSquare.OnBoard() {
		t.Fatalf("padding squares reported on board")
	}
	if !rules.H1.Light() || rules.A1.Light() {
		t.Fatalf("square colors wrong: a1 dark, h1 light")
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	for _, s := range []string{"", "e", "i1", "a9", "a0", "e44"} {
		if _, err := rules.ParseSquare(s); !errors.Is(err, rules.ErrInvalidSquare) {
			t.Fatalf("ParseSquare(%q) error = %v, want ErrInvalidSquare", s, err)
		}
	}
}
