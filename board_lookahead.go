package main

import (
	"context"

	"github.com/apex/log"
	"golang.org/x/sync/errgroup"
)

type scoredMove struct {
	move  move
	score int
}

// rankMoves scores every legal move by White's evaluation after playing it.
// The board is restored before the next candidate is tried.
func (board *Board) rankMoves() []scoredMove {
	moves := board.legalMoves()
	scored := make([]scoredMove, 0, len(moves))
	for _, m := range moves {
		board.executeMove(m)
		scored = append(scored, scoredMove{move: m, score: board.evaluate(white)})
		board.unexecuteMove()
	}
	return scored
}

// rankMovesParallel scores the same candidates as rankMoves, in the same
// order, with each worker playing on its own copy of the board.
func (board *Board) rankMovesParallel(ctx context.Context, workers int) ([]scoredMove, error) {
	if workers < 1 {
		workers = 1
	}
	moves := board.legalMoves()
	scored := make([]scoredMove, len(moves))
	g, ctx := errgroup.WithContext(ctx)

	indexes := make(chan int, len(moves))
	for i := range moves {
		indexes <- i
	}
	close(indexes)

	for w := 0; w < workers; w++ {
		state := board.clone()
		g.Go(func() error {
			for i := range indexes {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				m := moves[i]
				local := m
				local.piece = state.at(m.from)
				local.captured = state.at(m.to)
				state.executeMove(local)
				scored[i] = scoredMove{move: m, score: state.evaluate(white)}
				state.unexecuteMove()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scored, nil
}

func bestOf(scored []scoredMove) []move {
	best := 0
	for _, s := range scored {
		if s.score > best {
			best = s.score
		}
	}
	moves := make([]move, 0, 4)
	for _, s := range scored {
		if s.score == best {
			moves = append(moves, s.move)
		}
	}
	log.WithFields(log.Fields{"candidates": len(scored), "best": best, "ties": len(moves)}).Debug("ranked moves")
	return moves
}

func (board *Board) bestMoves() []move {
	return bestOf(board.rankMoves())
}
