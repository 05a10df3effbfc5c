package main

import (
	"errors"

	"github.com/apex/log"
)

var (
	errWrongSide      = errors.New("piece does not belong to the side to move")
	errStalePosition  = errors.New("piece position does not match move origin")
	errOriginMismatch = errors.New("origin square does not hold the moving piece")
	errEmptyHistory   = errors.New("no move to undo")
	errOccupied       = errors.New("square already occupied")
	errOffBoard       = errors.New("square is off the board")
)

type piece struct {
	kind  kind
	color color
	pos   coord
	moves int
}

func (p *piece) symbol() byte {
	return kindToSymbol[p.kind]
}

func (p *piece) profile() profile {
	if p.kind != pawn {
		return profiles[p.kind]
	}
	forward := coord{0, 1}
	if p.color == black {
		forward = coord{0, -1}
	}
	distance := 1
	if p.moves == 0 {
		distance = 2
	}
	return profile{directions: []coord{forward}, maxDistance: distance}
}

// Board board.
type Board struct {
	squares  [boardSize][boardSize]*piece
	toMove   color
	history  [2][]move
	captured [2][]*piece
}

type action uint8

const (
	actionOutOfBounds action = iota
	actionBlocked
	actionMove
	actionTake
	actionCheckCapture
)

type move struct {
	piece    *piece
	from     coord
	to       coord
	action   action
	captured *piece
}

func newBoard() *Board {
	return &Board{toMove: white}
}

// contractViolation logs and panics; callers broke an execute/undo precondition.
func contractViolation(err error, fields log.Fields) {
	log.WithFields(fields).WithError(err).Error("board contract violated")
	panic(err)
}

func (board *Board) place(k kind, c color, at coord) *piece {
	if !at.onBoard() {
		contractViolation(errOffBoard, log.Fields{"file": at.file, "rank": at.rank})
	}
	if board.squares[at.file][at.rank] != nil {
		contractViolation(errOccupied, log.Fields{"file": at.file, "rank": at.rank})
	}
	p := &piece{kind: k, color: c, pos: at}
	board.squares[at.file][at.rank] = p
	return p
}

func (board *Board) at(c coord) *piece {
	if !c.onBoard() {
		return nil
	}
	return board.squares[c.file][c.rank]
}

// pieces lists the pieces of one color in board-scan order: rank 7 down to
// rank 0, file 0 up to file 7.
func (board *Board) pieces(c color) []*piece {
	pieces := make([]*piece, 0, 16)
	for rank := boardSize - 1; rank >= 0; rank-- {
		for file := 0; file < boardSize; file++ {
			if p := board.squares[file][rank]; p != nil && p.color == c {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

func (board *Board) contains(k kind, c color) bool {
	for _, p := range board.pieces(c) {
		if p.kind == k {
			return true
		}
	}
	return false
}

func (board *Board) hasKings() bool {
	return board.contains(king, white) && board.contains(king, black)
}

// clone returns a deep copy; moves in the copied histories refer to the
// copied pieces.
func (board *Board) clone() *Board {
	copies := make(map[*piece]*piece, 32)
	dup := func(p *piece) *piece {
		if p == nil {
			return nil
		}
		if c, ok := copies[p]; ok {
			return c
		}
		c := *p
		copies[p] = &c
		return &c
	}
	state := &Board{toMove: board.toMove}
	for file := range board.squares {
		for rank := range board.squares[file] {
			state.squares[file][rank] = dup(board.squares[file][rank])
		}
	}
	for c := range board.history {
		if board.history[c] != nil {
			state.history[c] = make([]move, 0, len(board.history[c]))
		}
		for _, m := range board.history[c] {
			m.piece = dup(m.piece)
			m.captured = dup(m.captured)
			state.history[c] = append(state.history[c], m)
		}
		if board.captured[c] != nil {
			state.captured[c] = make([]*piece, 0, len(board.captured[c]))
		}
		for _, p := range board.captured[c] {
			state.captured[c] = append(state.captured[c], dup(p))
		}
	}
	return state
}
