package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"chess-rules/rules"
)

type console struct {
	board *rules.Board
	out   io.Writer
	log   zerolog.Logger
}

func newConsole(board *rules.Board, out io.Writer, log zerolog.Logger) *console {
	c := &console{board: board, out: out, log: log}
	board.Subscribe(c.onEvent)
	return c
}

func (c *console) onEvent(e rules.Event) {
	switch e.Kind {
	case rules.MoveMade:
		c.log.Info().Str("move", e.Move.String()).Str("piece", e.Move.Piece.Name()).Msg("move made")
	case rules.MoveUndone:
		c.log.Info().Str("move", e.Move.String()).Msg("move undone")
	case rules.PiecesChanged:
		c.log.Debug().Int("pieces", len(e.Pieces)).Msg("pieces changed")
	}
}

// run reads one command per line until EOF or "quit".
func (c *console) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		if strings.ToLower(tokens[0]) == "quit" {
			return nil
		}
		if err := c.dispatch(tokens); err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func (c *console) dispatch(tokens []string) error {
	switch strings.ToLower(tokens[0]) {
	case "position":
		return c.position(tokens[1:])
	case "move":
		if len(tokens) < 2 {
			return fmt.Errorf("usage: move <uci>")
		}
		return c.play(tokens[1:])
	case "undo":
		m, ok := c.board.Undo()
		if !ok {
			return fmt.Errorf("nothing to undo")
		}
		fmt.Fprintf(c.out, "undone %s\n", m)
	case "moves":
		return c.moves(tokens[1:])
	case "d", "board":
		fmt.Fprint(c.out, renderBoard(c.board))
	case "fen":
		fmt.Fprintln(c.out, c.board.FEN())
	case "status":
		fmt.Fprintln(c.out, c.board.Status())
		if c.board.IsDrawBy50() {
			fmt.Fprintln(c.out, "fifty-move rule may be claimed")
		}
		if c.board.IsThreefoldRepetition() {
			fmt.Fprintln(c.out, "threefold repetition may be claimed")
		}
	case "perft":
		if len(tokens) < 2 {
			return fmt.Errorf("usage: perft <depth>")
		}
		depth, err := strconv.Atoi(tokens[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, rules.Perft(c.board, depth))
	default:
		// A bare UCI move is accepted as shorthand for "move"
		return c.play(tokens)
	}
	return nil
}

// position handles "position startpos|fen <fields...> [moves m1 m2 ...]".
func (c *console) position(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: position startpos|fen <fen> [moves ...]")
	}
	var fen string
	var rest []string
	switch args[0] {
	case "startpos":
		fen = rules.FENStartPos
		rest = args[1:]
	case "fen":
		end := len(args)
		for i, a := range args {
			if a == "moves" {
				end = i
				break
			}
		}
		fen = strings.Join(args[1:end], " ")
		rest = args[end:]
	default:
		return fmt.Errorf("unknown position kind %q", args[0])
	}
	if err := c.board.LoadFEN(fen); err != nil {
		return err
	}
	if len(rest) > 0 && rest[0] == "moves" {
		return c.play(rest[1:])
	}
	return nil
}

func (c *console) play(moves []string) error {
	for _, s := range moves {
		if _, err := c.board.MoveUCI(s); err != nil {
			return err
		}
	}
	return nil
}

func (c *console) moves(args []string) error {
	var moves []rules.Move
	if len(args) > 0 {
		sq, err := rules.ParseSquare(args[0])
		if err != nil {
			return err
		}
		if moves, err = c.board.GenerateMovesFrom(sq); err != nil {
			return err
		}
	} else {
		moves = c.board.GenerateMoves()
	}
	list := make([]string, len(moves))
	for i, m := range moves {
		list[i] = m.String()
	}
	sort.Strings(list)
	fmt.Fprintf(c.out, "%d: %s\n", len(list), strings.Join(list, " "))
	return nil
}
