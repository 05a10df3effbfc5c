package main

import "github.com/apex/log"

func (board *Board) executeMove(m move) {
	p := m.piece
	fail := func(err error) {
		contractViolation(err, log.Fields{"move": m.String(), "toMove": board.toMove.String()})
	}
	if p.color != board.toMove {
		fail(errWrongSide)
	}
	if p.pos != m.from {
		fail(errStalePosition)
	}
	if board.at(m.from) != p {
		fail(errOriginMismatch)
	}
	if m.captured != nil {
		board.captured[p.color] = append(board.captured[p.color], m.captured)
	}
	board.squares[m.from.file][m.from.rank] = nil
	board.squares[m.to.file][m.to.rank] = p
	p.pos = m.to
	p.moves++
	board.history[p.color] = append(board.history[p.color], m)
	board.toMove = board.toMove.other()
}

func (board *Board) unexecuteMove() {
	mover := board.toMove.other()
	history := board.history[mover]
	if len(history) == 0 {
		contractViolation(errEmptyHistory, log.Fields{"color": mover.String()})
	}
	m := history[len(history)-1]
	board.history[mover] = history[:len(history)-1]

	p := m.piece
	board.squares[m.from.file][m.from.rank] = p
	p.pos = m.from
	p.moves--
	board.squares[m.to.file][m.to.rank] = m.captured
	if m.captured != nil {
		captured := board.captured[mover]
		board.captured[mover] = captured[:len(captured)-1]
	}
	board.toMove = mover
}
