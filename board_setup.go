package main

func (board *Board) setup(c color) {
	pawnRank, homeRank := 1, 0
	if c == black {
		pawnRank, homeRank = 6, 7
	}
	for file := 0; file < boardSize; file++ {
		board.place(pawn, c, coord{file, pawnRank})
	}
	for file, k := range backRank {
		board.place(k, c, coord{file, homeRank})
	}
}

func newStandardBoard() *Board {
	board := newBoard()
	board.setup(white)
	board.setup(black)
	return board
}
