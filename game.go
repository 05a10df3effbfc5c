package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"
	uuid "github.com/satori/go.uuid"
)

type game struct {
	id     uuid.UUID
	board  *Board
	agent  agent
	plies  int
	played []move
}

func newGame(cfg config) *game {
	return &game{
		id:    uuid.NewV4(),
		board: newStandardBoard(),
		agent: agent{workers: cfg.workers},
		plies: cfg.plies,
	}
}

func (g *game) logger() *log.Entry {
	return log.WithField("game", g.id.String()).WithField("ply", len(g.played)+1)
}

func (g *game) end() bool {
	return len(g.played) >= g.plies || !g.board.hasKings()
}

func (g *game) play(m move) {
	g.board.executeMove(m)
	g.played = append(g.played, m)
	g.logger().WithField("move", m.String()).Info("played")
}

func (g *game) playOpening(script string) error {
	for _, text := range strings.Fields(script) {
		if g.end() {
			return nil
		}
		m, err := g.board.findMove(text)
		if err != nil {
			return fmt.Errorf("opening: %w", err)
		}
		g.play(m)
	}
	return nil
}

func (g *game) playRound(ctx context.Context) error {
	m, err := g.agent.choose(ctx, g.board)
	if err != nil {
		return err
	}
	g.play(m)
	return nil
}

func (g *game) run(ctx context.Context) error {
	for !g.end() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := g.playRound(ctx); err != nil {
			if errors.Is(err, errNoMoves) {
				g.logger().WithError(err).Warn("stopping early")
				return nil
			}
			return err
		}
	}
	g.logger().WithField("kings", g.board.hasKings()).Info("game over")
	return nil
}

func (g *game) transcript() string {
	moves := make([]string, 0, len(g.played))
	for _, m := range g.played {
		moves = append(moves, m.String())
	}
	return strings.Join(moves, " ")
}
