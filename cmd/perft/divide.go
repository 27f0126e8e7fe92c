package main

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"chess-rules/rules"
)

// parallelDivide fans the root moves out to workers, each on its own copy of the
// board.
func parallelDivide(ctx context.Context, board *rules.Board, depth, workers int) (map[rules.Move]uint64, error) {
	if workers < 1 {
		workers = 1
	}
	rootMoves := board.GenerateMoves()

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan rules.Move)

	g.Go(func() error {
		defer close(jobs)
		for _, m := range rootMoves {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- m:
			}
		}
		return nil
	})

	var mu sync.Mutex
	div := make(map[rules.Move]uint64, len(rootMoves))
	for i := 0; i < workers; i++ {
		local := board.Clone()
		g.Go(func() error {
			for m := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				if _, err := local.Move(m.From, m.To, m.Promotion.Type()); err != nil {
					return err
				}
				n := rules.Perft(local, depth-1)
				local.Undo()
				mu.Lock()
				div[m] = n
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return div, nil
}
