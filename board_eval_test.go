package main

import (
	. "gopkg.in/check.v1"
)

type EvalSuite struct{}

var _ = Suite(&EvalSuite{})

func (s *EvalSuite) TestStartMaterialIsEqual(c *C) {
	board := newStandardBoard()
	c.Assert(board.materialScore(white), Equals, 24000)
	c.Assert(board.materialScore(black), Equals, 24000)
}

// The tables are read unmirrored for Black, so the positional halves differ
// at the start even though material is equal.
func (s *EvalSuite) TestStartPositionalIsUnmirrored(c *C) {
	board := newStandardBoard()
	c.Assert(board.positionalScore(white), Equals, -95)
	c.Assert(board.positionalScore(black), Equals, 245)
	c.Assert(board.evaluate(white), Equals, 23905)
	c.Assert(board.evaluate(black), Equals, 24245)
}

func (s *EvalSuite) TestEvaluateSinglePieces(c *C) {
	board := newBoard()
	board.place(knight, white, coord{3, 3})
	c.Assert(board.evaluate(white), Equals, 320+20)
	c.Assert(board.evaluate(black), Equals, 0)

	board.place(king, black, coord{6, 0})
	c.Assert(board.evaluate(black), Equals, 20000+30)
}

func (s *EvalSuite) TestEvaluateFollowsMoves(c *C) {
	board := newStandardBoard()
	board.executeMove(board.movesFor(board.at(coord{4, 1}))[1])
	c.Assert(board.evaluate(white), Equals, 23905+40)
	board.unexecuteMove()
	c.Assert(board.evaluate(white), Equals, 23905)
}

func (s *EvalSuite) TestEvaluateDropsCapturedMaterial(c *C) {
	board, m := captureBoard()
	c.Assert(board.evaluate(black), Equals, 20000-50+500)
	board.executeMove(m)
	c.Assert(board.evaluate(black), Equals, 20000-50)
	c.Assert(board.evaluate(white), Equals, 20000+500)
}
