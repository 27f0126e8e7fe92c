package main

import (
	"strings"

	"github.com/fatih/color"

	"chess-rules/rules"
)

var (
	lightSquare = color.New(color.BgHiYellow, color.FgBlack)
	darkSquare  = color.New(color.BgYellow, color.FgBlack)
	lightWhite  = color.New(color.BgHiYellow, color.FgBlack, color.Bold)
	darkWhite   = color.New(color.BgYellow, color.FgBlack, color.Bold)
	checkMark   = color.New(color.BgRed, color.FgHiWhite, color.Bold)
	sideLabel   = color.New(color.Bold)
)

// renderBoard draws the position with rank 8 on top and marks a king in check.
func renderBoard(b *rules.Board) string {
	checked := rules.NoSquare
	if b.InCheck() {
		for _, ps := range b.Pieces() {
			if ps.Piece == rules.NewPiece(b.SideToMove(), rules.King) {
				checked = ps.Square
			}
		}
	}

	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sq := rules.NewSquare(file, rank)
			p := b.PieceAt(sq)
			cell := " " + string(p.Symbol()) + " "
			if p == rules.NoPiece {
				cell = "   "
			}
			paint := darkSquare
			switch {
			case sq == checked:
				paint = checkMark
			case sq.Light() && p.IsColor(rules.White):
				paint = lightWhite
			case sq.Light():
				paint = lightSquare
			case p.IsColor(rules.White):
				paint = darkWhite
			}
			sb.WriteString(paint.Sprint(cell))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")
	sb.WriteString(sideLabel.Sprint(b.SideToMove().String()) + " to move\n")
	return sb.String()
}
