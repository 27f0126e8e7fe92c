package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"chess-rules/internal/logx"
)

// perftCase is one line of the throughput table printed after the benchmarks.
type perftCase struct {
	label string
	fen   string
	depth int
}

var perftSuite = []perftCase{
	{"Initial", "", 3},
	{"Initial", "", 4},
	{"Initial", "", 5},
	{"Kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3},
	{"Kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4},
	{"Position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5},
}

// run executes a command and prints its combined output. Returns exit code.
func run(log zerolog.Logger, name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	log.Error().Err(err).Str("cmd", name).Msg("run failed")
	return 1
}

func main() {
	benchtime := flag.String("benchtime", "1s", "Passed to go test -benchtime")
	maxDepth := flag.Int("max-depth", 5, "Skip perft suite entries deeper than this")
	logLevel := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	flag.Parse()

	log := logx.NewConsoleLogger(os.Stderr, logx.ParseLevel(*logLevel))

	// Format: BenchmarkName  Iterations  ns/op  B/op  allocs/op
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run(log, "go", "test", "./rules", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime="+*benchtime)
	if code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	failed := 0
	for _, c := range perftSuite {
		if c.depth > *maxDepth {
			log.Debug().Str("label", c.label).Int("depth", c.depth).Msg("skipped")
			continue
		}
		args := []string{"run", "./cmd/perft", "-depth", fmt.Sprint(c.depth), "-label", c.label}
		if c.fen != "" {
			args = append(args, "-fen", c.fen)
		}
		if run(log, "go", args...) != 0 {
			failed++
		}
	}
	if failed > 0 {
		log.Warn().Int("failed", failed).Msg("perft suite had failures")
		os.Exit(1)
	}
}
