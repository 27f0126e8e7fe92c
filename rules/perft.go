package rules

// Perft counts the leaf nodes of the legal move tree to depth. The board is
// restored before returning.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.makeMove(m)
		nodes += Perft(b, depth-1)
		b.unmakeMove()
	}
	return nodes
}

// PerftDivide returns the perft count below each root move.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range b.GenerateMoves() {
		b.makeMove(m)
		div[m] = Perft(b, depth-1)
		b.unmakeMove()
	}
	return div
}
