package main

import (
	"flag"
	"os"

	"github.com/fatih/color"

	"chess-rules/internal/logx"
	"chess-rules/rules"
)

func main() {
	fen := flag.String("fen", rules.FENStartPos, "Starting position")
	useColor := flag.Bool("color", true, "Render the board with terminal colors")
	logLevel := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	flag.Parse()

	color.NoColor = !*useColor
	log := logx.NewConsoleLogger(os.Stderr, logx.ParseLevel(*logLevel))

	board, err := rules.ParseFEN(*fen, rules.WithLogger(log))
	if err != nil {
		log.Error().Err(err).Msg("parse FEN")
		os.Exit(2)
	}

	c := newConsole(board, os.Stdout, log)
	if err := c.run(os.Stdin); err != nil {
		log.Error().Err(err).Msg("console")
		os.Exit(1)
	}
}
