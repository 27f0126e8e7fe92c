package rules_test

import (
	"errors"
	"strings"
	"testing"

	"chess-rules/rules"
)

var roundTripFENs = []string{
	rules.FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	"8/8/8/8/8/8/8/8 b - - 99 120",
}

func TestFEN_RoundTrip(t *testing.T) {
	for _, fen := range roundTripFENs {
		b := mustParse(t, fen)
		placement := strings.Fields(fen)[0]
		if got := b.PlacementFEN(); got != placement {
			t.Fatalf("placement round trip: got %q want %q", got, placement)
		}
		if got := b.FEN(); got != fen {
			t.Fatalf("FEN round trip: got %q want %q", got, fen)
		}
	}
}

func TestFEN_StateFields(t *testing.T) {
	b := mustParse(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w Kq e6 3 7")
	if b.SideToMove() != rules.White {
		t.Fatalf("side to move: got %v", b.SideToMove())
	}
	if cr := b.CastlingRights(); cr != rules.CastlingWhiteK|rules.CastlingBlackQ {
		t.Fatalf("castling: got %v", cr)
	}
	if b.EnPassantSquare() != sq(t, "e6") {
		t.Fatalf("en passant: got %v", b.EnPassantSquare())
	}
	if b.HalfmoveClock() != 3 || b.FullmoveNumber() != 7 {
		t.Fatalf("counters: got %d %d", b.HalfmoveClock(), b.FullmoveNumber())
	}
	if b.PieceAt(sq(t, "e4")) != rules.WhitePawn || b.PieceAt(sq(t, "d8")) != rules.BlackQueen {
		t.Fatalf("pieces misplaced")
	}
	if len(b.Pieces()) != 32 {
		t.Fatalf("piece index: got %d entries", len(b.Pieces()))
	}
}

func TestFEN_PieceIndexOrder(t *testing.T) {
	b := mustParse(t, "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	want := []rules.PieceSquare{
		{Piece: rules.BlackKing, Square: rules.E8},
		{Piece: rules.WhiteRook, Square: rules.A1},
		{Piece: rules.WhiteKing, Square: rules.E1},
		{Piece: rules.WhiteRook, Square: rules.H1},
	}
	got := b.Pieces()
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestFEN_Invalid(t *testing.T) {
	cases := map[string]string{
		"seven files":       "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"nine files":        "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"seven ranks":       "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"bad piece":         "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
		"adjacent digits":   "rnbqkbnr/pppppppp/44/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"empty rank":        "rnbqkbnr/pppppppp//8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"side":              "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"castling order":    "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w QK - 0 1",
		"castling repeat":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KK - 0 1",
		"castling letter":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KX - 0 1",
		"en passant rank":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e2 0 1",
		"en passant file":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z3 0 1",
		"negative halfmove": "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1",
		"fullmove text":     "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 one",
		"five fields":       "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
		"seven fields":      "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 x",
		"empty":             "",
	}
	for name, fen := range cases {
		if _, err := rules.ParseFEN(fen); !errors.Is(err, rules.ErrInvalidNotation) {
			t.Fatalf("%s: ParseFEN error = %v, want ErrInvalidNotation", name, err)
		}
	}
}

func TestFEN_AcceptsPartialCastling(t *testing.T) {
	for _, cr := range []string{"K", "Q", "k", "q", "KQ", "Kk", "Qq", "KQk", "kq"} {
		fen := "r3k2r/8/8/8/8/8/8/R3K2R w " + cr + " - 0 1"
		b := mustParse(t, fen)
		if b.CastlingRights().String() != cr {
			t.Fatalf("castling %q parsed as %q", cr, b.CastlingRights())
		}
	}
}

func TestLoadFEN_FailureLeavesBoardUnchanged(t *testing.T) {
	b := rules.NewBoard()
	events := 0
	b.Subscribe(func(rules.Event) { events++ })

	err := b.LoadFEN("rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if !errors.Is(err, rules.ErrInvalidNotation) {
		t.Fatalf("LoadFEN error = %v, want ErrInvalidNotation", err)
	}
	if b.FEN() != rules.FENStartPos {
		t.Fatalf("board changed after failed load: %s", b.FEN())
	}
	if len(b.Pieces()) != 32 || !b.Validate() {
		t.Fatalf("board inconsistent after failed load")
	}
	if events != 0 {
		t.Fatalf("failed load emitted %d events", events)
	}
}

func TestLoadFEN_ReplacesPositionAndHistory(t *testing.T) {
	b := rules.NewBoard()
	if _, err := b.MoveUCI("e2e4"); err != nil {
		t.Fatal(err)
	}
	var kinds []rules.EventKind
	b.Subscribe(func(e rules.Event) { kinds = append(kinds, e.Kind) })

	fen := "4k3/8/8/8/8/8/8/4K3 b - - 5 40"
	if err := b.LoadFEN(fen); err != nil {
		t.Fatal(err)
	}
	if b.FEN() != fen {
		t.Fatalf("got %s want %s", b.FEN(), fen)
	}
	if len(b.History()) != 0 {
		t.Fatalf("history survived LoadFEN")
	}
	if _, ok := b.Undo(); ok {
		t.Fatalf("Undo succeeded after LoadFEN")
	}
	if len(kinds) != 2 || kinds[0] != rules.PiecesChanged || kinds[1] != rules.BoardChanged {
		t.Fatalf("LoadFEN events: %v", kinds)
	}
}

func TestFEN_FieldSeparators(t *testing.T) {
	// Fields are split on any run of whitespace, surrounding blanks included.
	b := mustParse(t, "  rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR\tw  KQkq -\n0 1 ")
	if b.FEN() != rules.FENStartPos {
		t.Fatalf("FEN() = %q", b.FEN())
	}
}
