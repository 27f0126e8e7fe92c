package rules

import (
	"math/bits"
	"math/rand"
)

// Zobrist hashing tables for pieces, castling, en passant, and side to move.
var zobristPiece [12][boardSize]uint64 // indexed by zobristIndex(piece), then square
var zobristCastle [16]uint64           // one key per castling rights state
var zobristEnPassant [8]uint64         // en passant file
var zobristSide uint64                 // Black to move

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed keeps hashes stable across runs
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 12; p++ {
		for sq := Square(0); sq < boardSize; sq++ {
			if sq.OnBoard() {
				zobristPiece[p][sq] = rnd.Uint64()
			}
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// zobristIndex maps a valid piece to 0..11.
func zobristIndex(p Piece) int {
	return p.Color().index()*6 + bits.TrailingZeros8(uint8(p.Type()))
}

// ComputeZobrist hashes the position from scratch.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for _, ps := range b.pieces {
		key ^= zobristPiece[zobristIndex(ps.Piece)][ps.Square]
	}
	key ^= zobristCastle[b.castlingRights]
	if b.enPassantSquare != NoSquare {
		key ^= zobristEnPassant[b.enPassantSquare.File()]
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	return key
}
