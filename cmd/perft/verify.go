package main

import (
	"fmt"
	"sort"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
)

type divideMismatch struct {
	move      string
	ours      uint64
	reference uint64
}

// referenceDivide computes a divide keyed by UCI move string with an independent
// move generator.
type referenceDivide func(fen string, depth int) (map[string]uint64, error)

// references are the generators selectable with -verify.
var references = map[string]referenceDivide{
	"dragontoothmg": dragontoothDivide,
	"goosemg":       gooseDivide,
}

// verifyDivide recomputes the divide with ref and reports every root move whose
// count differs, including moves only one side generated.
func verifyDivide(ref referenceDivide, fen string, depth int, ours map[string]uint64) ([]divideMismatch, error) {
	reference, err := ref(fen, depth)
	if err != nil {
		return nil, err
	}

	keys := make(map[string]struct{}, len(ours)+len(reference))
	for k := range ours {
		keys[k] = struct{}{}
	}
	for k := range reference {
		keys[k] = struct{}{}
	}
	var out []divideMismatch
	for k := range keys {
		if ours[k] != reference[k] {
			out = append(out, divideMismatch{move: k, ours: ours[k], reference: reference[k]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].move < out[j].move })
	return out, nil
}

func dragontoothDivide(fen string, depth int) (map[string]uint64, error) {
	board := dragontoothmg.ParseFen(fen)
	div := make(map[string]uint64)
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		div[m.String()] = dragontoothPerft(&board, depth-1)
		unapply()
	}
	return div, nil
}

func dragontoothPerft(board *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := board.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := board.Apply(m)
		nodes += dragontoothPerft(board, depth-1)
		unapply()
	}
	return nodes
}

func gooseDivide(fen string, depth int) (map[string]uint64, error) {
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("goosemg: %w", err)
	}
	div := make(map[string]uint64)
	for m, n := range goosemg.PerftDivide(board, depth) {
		div[m.String()] = n
	}
	return div, nil
}

// referenceNames expands a -verify value into reference generator names.
func referenceNames(flagValue string) ([]string, error) {
	if flagValue == "all" {
		names := make([]string, 0, len(references))
		for name := range references {
			names = append(names, name)
		}
		sort.Strings(names)
		return names, nil
	}
	if _, ok := references[flagValue]; !ok {
		return nil, fmt.Errorf("unknown reference %q", flagValue)
	}
	return []string{flagValue}, nil
}
