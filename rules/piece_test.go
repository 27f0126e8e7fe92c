package rules_test

import (
	"testing"

	"chess-rules/rules"
)

func TestPieceValidity_OnlyTwelveValues(t *testing.T) {
	valid := 0
	for v := 0; v < 256; v++ {
		if rules.Piece(v).Valid() {
			valid++
		}
	}
	if valid != 12 {
		t.Fatalf("got %d valid piece values, want 12", valid)
	}
	for _, p := range rules.AllPieces {
		if !p.Valid() {
			t.Fatalf("%d should be valid", p)
		}
	}
	if rules.NoPiece.Valid() {
		t.Fatalf("NoPiece must not be valid")
	}
	if rules.Piece(rules.White|rules.Black).Valid() || (rules.WhiteKing | rules.Piece(rules.Pawn)).Valid() {
		t.Fatalf("pieces with two color or two type bits must be invalid")
	}
}

func TestPieceClassification(t *testing.T) {
	p := rules.NewPiece(rules.Black, rules.Knight)
	if p != rules.BlackKnight {
		t.Fatalf("NewPiece(Black, Knight) = %d, want %d", p, rules.BlackKnight)
	}
	if p.Type() != rules.Knight || p.Color() != rules.Black {
		t.Fatalf("classify: got %v %v", p.Color(), p.Type())
	}
	if !p.IsType(rules.Knight) || p.IsType(rules.Bishop) {
		t.Fatalf("IsType mismatch")
	}
	if !p.IsColor(rules.Black) || p.IsColor(rules.White) {
		t.Fatalf("IsColor mismatch")
	}
	if rules.NewPiece(rules.NoColor, rules.Queen) != rules.NoPiece {
		t.Fatalf("NewPiece without color must be NoPiece")
	}
}

func TestPieceSymbolsAndNames(t *testing.T) {
	cases := []struct {
		p      rules.Piece
		symbol rune
		name   string
	}{
		{rules.WhiteKing, 'K', "White King"},
		{rules.WhitePawn, 'P', "White Pawn"},
		{rules.WhiteQueen, 'Q', "White Queen"},
		{rules.BlackKnight, 'n', "Black Knight"},
		{rules.BlackBishop, 'b', "Black Bishop"},
		{rules.BlackRook, 'r', "Black Rook"},
		{rules.NoPiece, rules.EmptySymbol, ""},
		{rules.Piece(0xff), rules.EmptySymbol, ""},
	}
	for _, c := range cases {
		if got := c.p.Symbol(); got != c.symbol {
			t.Fatalf("Symbol(%d) = %q, want %q", c.p, got, c.symbol)
		}
		if got := c.p.Name(); got != c.name {
			t.Fatalf("Name(%d) = %q, want %q", c.p, got, c.name)
		}
	}
	for _, p := range rules.AllPieces {
		if back := rules.PieceFromSymbol(p.Symbol()); back != p {
			t.Fatalf("PieceFromSymbol(%q) = %d, want %d", p.Symbol(), back, p)
		}
	}
}

func TestPromotableTypes(t *testing.T) {
	for _, pt := range rules.PromotionTypes {
		if !pt.Promotable() {
			t.Fatalf("%v should be promotable", pt)
		}
	}
	if rules.King.Promotable() || rules.Pawn.Promotable() || rules.NoPieceType.Promotable() {
		t.Fatalf("King, Pawn and none must not be promotable")
	}
}
