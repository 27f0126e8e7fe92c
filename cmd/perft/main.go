package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"
	"time"

	"chess-rules/internal/logx"
	"chess-rules/rules"
)

func main() {
	fen := flag.String("fen", rules.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	workers := flag.Int("workers", runtime.NumCPU(), "Root moves searched in parallel for -divide")
	verify := flag.String("verify", "", "Cross-check -divide counts against a reference generator (dragontoothmg, goosemg, all)")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	logLevel := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	flag.Parse()

	log := logx.NewConsoleLogger(os.Stderr, logx.ParseLevel(*logLevel))

	if *depth <= 0 {
		log.Error().Msg("-depth must be > 0")
		os.Exit(2)
	}

	board, err := rules.ParseFEN(*fen, rules.WithLogger(log))
	if err != nil {
		log.Error().Err(err).Msg("parse FEN")
		os.Exit(2)
	}

	if *divide {
		start := time.Now()
		div, err := parallelDivide(context.Background(), board, *depth, *workers)
		if err != nil {
			log.Error().Err(err).Msg("divide")
			os.Exit(1)
		}
		counts := make(map[string]uint64, len(div))
		for m, n := range div {
			counts[m.String()] = n
		}
		keys := make([]string, 0, len(counts))
		var sum uint64
		for k, n := range counts {
			keys = append(keys, k)
			sum += n
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s: %d\n", k, counts[k])
		}
		fmt.Printf("Total: %d\n", sum)
		log.Info().Dur("elapsed", time.Since(start)).Int("workers", *workers).Msg("divide finished")

		if *verify != "" {
			names, err := referenceNames(*verify)
			if err != nil {
				log.Error().Err(err).Msg("verify")
				os.Exit(2)
			}
			failed := false
			for _, name := range names {
				mismatches, err := verifyDivide(references[name], *fen, *depth, counts)
				if err != nil {
					log.Error().Err(err).Str("reference", name).Msg("verify")
					os.Exit(1)
				}
				for _, d := range mismatches {
					log.Warn().Str("reference", name).Str("move", d.move).Uint64("ours", d.ours).Uint64("reference_nodes", d.reference).Msg("perft mismatch")
				}
				if len(mismatches) > 0 {
					failed = true
					continue
				}
				log.Info().Str("reference", name).Msg("divide matches")
			}
			if failed {
				os.Exit(1)
			}
		}
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Error().Err(err).Msg("creating cpuprofile")
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Error().Err(err).Msg("start cpu profile")
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += rules.Perft(board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			log.Error().Err(err).Msg("creating memprofile")
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Error().Err(err).Msg("write heap profile")
			os.Exit(2)
		}
		_ = f.Close()
	}
}
