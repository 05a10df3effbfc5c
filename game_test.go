package main

import (
	"context"
	"errors"
	"strings"

	uuid "github.com/satori/go.uuid"
	. "gopkg.in/check.v1"
)

type GameSuite struct{}

var _ = Suite(&GameSuite{})

func (s *GameSuite) TestNewGame(c *C) {
	g := newGame(config{plies: 6, workers: 2})
	c.Assert(uuid.Equal(g.id, uuid.Nil), Equals, false)
	c.Assert(g.agent.workers, Equals, 2)
	c.Assert(g.end(), Equals, false)
	c.Assert(newGame(config{}).id, Not(Equals), g.id)
}

func (s *GameSuite) TestRun(c *C) {
	g := newGame(config{plies: 6})
	c.Assert(g.run(context.Background()), IsNil)
	c.Assert(g.played, HasLen, 6)
	c.Assert(g.board.toMove, Equals, white)
	c.Assert(g.board.history[white], HasLen, 3)
	c.Assert(g.board.history[black], HasLen, 3)
	c.Assert(strings.Fields(g.transcript()), HasLen, 6)
	c.Assert(g.played[0].String() == "Nb1-c3" || g.played[0].String() == "Ng1-f3", Equals, true)
}

func (s *GameSuite) TestRunCancelled(c *C) {
	g := newGame(config{plies: 6})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.Assert(g.run(ctx), Equals, context.Canceled)
	c.Assert(g.played, HasLen, 0)
}

func (s *GameSuite) TestOpening(c *C) {
	g := newGame(config{plies: 10})
	c.Assert(g.playOpening("pe2-e4 pe7-e5  Ng1-f3"), IsNil)
	c.Assert(g.transcript(), Equals, "pe2-e4 pe7-e5 Ng1-f3")
	c.Assert(g.board.toMove, Equals, black)
}

func (s *GameSuite) TestOpeningStopsAtPlyLimit(c *C) {
	g := newGame(config{plies: 1})
	c.Assert(g.playOpening("pe2-e4 pe7-e5"), IsNil)
	c.Assert(g.transcript(), Equals, "pe2-e4")
}

func (s *GameSuite) TestBadOpening(c *C) {
	g := newGame(config{plies: 10})
	err := g.playOpening("pe2-e4 pe2-e4")
	c.Assert(err, ErrorMatches, "opening: pe2-e4 for black: no legal move matches")
	c.Assert(errors.Is(err, errNoSuchMove), Equals, true)
	c.Assert(g.played, HasLen, 1)

	_, err = parseMove("e4")
	c.Assert(newGame(config{plies: 10}).playOpening("e4"), ErrorMatches, "opening: "+err.Error())
}

func (s *GameSuite) TestEndWhenKingTaken(c *C) {
	g := newGame(config{plies: 10})
	board, m := captureBoard()
	g.board = board
	c.Assert(g.end(), Equals, false)
	board.executeMove(m)
	c.Assert(g.end(), Equals, false)

	board = newBoard()
	r := board.place(rook, white, coord{0, 0})
	board.place(king, white, coord{7, 0})
	board.place(king, black, coord{0, 7})
	g.board = board
	g.play(board.movesFor(r)[len(board.movesFor(r))-1])
	c.Assert(g.end(), Equals, true)
	c.Assert(g.run(context.Background()), IsNil)
	c.Assert(g.played, HasLen, 1)
}

func (s *GameSuite) TestRunStopsWithoutMoves(c *C) {
	board := newBoard()
	board.place(king, white, coord{7, 7})
	board.place(pawn, white, coord{6, 7})
	board.place(pawn, white, coord{6, 6})
	board.place(pawn, white, coord{7, 6})
	board.place(king, black, coord{0, 0})
	c.Assert(board.legalMoves(), HasLen, 0)

	g := newGame(config{plies: 10})
	g.board = board
	c.Assert(g.run(context.Background()), IsNil)
	c.Assert(g.played, HasLen, 0)
}
