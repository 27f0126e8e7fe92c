package rules_test

import (
	"testing"

	"chess-rules/rules"
)

func TestSubscribe_OrderAndUnsubscribe(t *testing.T) {
	b := rules.NewBoard()
	var calls []string
	unsubA := b.Subscribe(func(e rules.Event) {
		if e.Kind == rules.MoveMade {
			calls = append(calls, "a")
		}
	})
	b.Subscribe(func(e rules.Event) {
		if e.Kind == rules.MoveMade {
			calls = append(calls, "b")
		}
	})
	play(t, b, "e2e4")
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Fatalf("listener order = %v", calls)
	}

	calls = nil
	unsubA()
	unsubA()
	play(t, b, "e7e5")
	if len(calls) != 1 || calls[0] != "b" {
		t.Fatalf("after unsubscribe: %v", calls)
	}
}

func TestEvents_QueriesAreSilent(t *testing.T) {
	b := mustParse(t, kiwipete)
	var kinds []rules.EventKind
	b.Subscribe(func(e rules.Event) { kinds = append(kinds, e.Kind) })
	b.GenerateMoves()
	b.GeneratePseudoMoves()
	b.IsCheckmate()
	b.IsStalemate()
	b.IsDraw()
	b.Status()
	rules.Perft(b, 2)
	rules.PerftDivide(b, 1)
	if _, err := b.MoveUCI("a1a8"); err == nil {
		t.Fatalf("a1a8 is blocked in kiwipete")
	}
	if len(kinds) != 0 {
		t.Fatalf("queries emitted %v", kinds)
	}
}

func TestEvents_ListenerSeesCommittedState(t *testing.T) {
	b := rules.NewBoard()
	var fens []string
	b.Subscribe(func(e rules.Event) {
		if e.Kind == rules.MoveMade || e.Kind == rules.MoveUndone {
			fens = append(fens, b.FEN())
		}
	})
	play(t, b, "g1f3")
	b.Undo()
	want := []string{
		"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		rules.FENStartPos,
	}
	if len(fens) != 2 || fens[0] != want[0] || fens[1] != want[1] {
		t.Fatalf("listener saw %v", fens)
	}
}

func TestEventKindString(t *testing.T) {
	if rules.MoveMade.String() != "moveMade" || rules.PiecesChanged.String() != "piecesChanged" {
		t.Fatalf("unexpected names %s %s", rules.MoveMade, rules.PiecesChanged)
	}
	if rules.EventKind(0).String() != "unknown" {
		t.Fatalf("zero kind = %s", rules.EventKind(0))
	}
}

func TestEvents_SquareOnlyForPieceEvents(t *testing.T) {
	b := rules.NewBoard()
	var events []rules.Event
	b.Subscribe(func(e rules.Event) { events = append(events, e) })
	play(t, b, "e2e4")
	b.Undo()
	if _, err := b.Put(rules.WhiteQueen, rules.A1); err != nil {
		t.Fatal(err)
	}
	if _, _, err := b.Remove(rules.A1); err != nil {
		t.Fatal(err)
	}
	if err := b.LoadFEN(rules.FENStartPos); err != nil {
		t.Fatal(err)
	}
	for _, e := range events {
		switch e.Kind {
		case rules.PieceAdded, rules.PieceRemoved:
			if e.Square != rules.A1 {
				t.Fatalf("%s on %v, want a1", e.Kind, e.Square)
			}
		default:
			if e.Square != rules.NoSquare {
				t.Fatalf("%s carries square %v, want NoSquare", e.Kind, e.Square)
			}
		}
	}
}
