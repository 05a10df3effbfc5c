package main

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/apex/log"
	"github.com/montanaflynn/stats"
)

var errNoMoves = errors.New("no moves available")

func summarize(scored []scoredMove) (log.Fields, error) {
	scores := make([]int, 0, len(scored))
	for _, s := range scored {
		scores = append(scores, s.score)
	}
	data := stats.LoadRawData(scores)
	mean, err := stats.Mean(data)
	if err != nil {
		return nil, err
	}
	highest, err := stats.Max(data)
	if err != nil {
		return nil, err
	}
	percentile, err := stats.Percentile(data, 80)
	if err != nil {
		return nil, err
	}
	return log.Fields{"candidates": len(scores), "mean": mean, "max": highest, "p80": percentile}, nil
}

func decide(moves []move) (move, error) {
	if len(moves) == 0 {
		return move{}, errNoMoves
	}
	choice, err := rand.Int(rand.Reader, big.NewInt(int64(len(moves))))
	if err != nil {
		return move{}, err
	}
	return moves[choice.Uint64()], nil
}

type agent struct {
	workers int
}

func (a agent) rank(ctx context.Context, board *Board) ([]scoredMove, error) {
	if a.workers > 1 {
		return board.rankMovesParallel(ctx, a.workers)
	}
	return board.rankMoves(), nil
}

// choose ranks the candidates one ply deep and picks one of the best.
func (a agent) choose(ctx context.Context, board *Board) (move, error) {
	scored, err := a.rank(ctx, board)
	if err != nil {
		return move{}, err
	}
	if len(scored) == 0 {
		return move{}, errNoMoves
	}
	fields, err := summarize(scored)
	if err != nil {
		return move{}, err
	}
	log.WithFields(fields).WithField("toMove", board.toMove.String()).Debug("candidate scores")
	return decide(bestOf(scored))
}
