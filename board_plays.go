package main

func (board *Board) classify(mover color, dest coord) action {
	if !dest.onBoard() {
		return actionOutOfBounds
	}
	other := board.squares[dest.file][dest.rank]
	switch {
	case other == nil:
		return actionMove
	case other.color == mover:
		return actionBlocked
	case other.kind == king:
		return actionCheckCapture
	default:
		return actionTake
	}
}

func (board *Board) makeMove(p *piece, dest coord, a action) move {
	m := move{piece: p, from: p.pos, to: dest, action: a}
	if a == actionTake || a == actionCheckCapture {
		m.captured = board.squares[dest.file][dest.rank]
	}
	return m
}

func (board *Board) movesFor(p *piece) []move {
	prof := p.profile()
	limit := boardSize
	if prof.maxDistance != unbounded && prof.maxDistance+1 < limit {
		limit = prof.maxDistance + 1
	}
	if prof.singleStep {
		limit = 2
	}
	moves := make([]move, 0, 8)
	for _, direction := range prof.directions {
		for n := 1; n < limit; n++ {
			dest := p.pos.add(direction, n)
			a := board.classify(p.color, dest)
			if a == actionOutOfBounds || a == actionBlocked {
				break
			}
			moves = append(moves, board.makeMove(p, dest, a))
			if a != actionMove {
				break
			}
		}
	}
	return moves
}

func (board *Board) legalMoves() []move {
	var moves []move
	for _, p := range board.pieces(board.toMove) {
		moves = append(moves, board.movesFor(p)...)
	}
	return moves
}
