package main

import (
	"errors"
	"fmt"
	"strings"
)

var errNoSuchMove = errors.New("no legal move matches")

func fileAndRank(c coord) (byte, int) {
	return byte('a' + c.file), c.rank + 1
}

func square(file byte, rank byte) coord {
	return coord{file: int(file - 'a'), rank: int(rank - '1')}
}

func (m move) String() string {
	marker := '-'
	if m.captured != nil {
		marker = 'x'
	}
	departFile, departRank := fileAndRank(m.from)
	destFile, destRank := fileAndRank(m.to)
	return fmt.Sprintf("%c%c%d%c%c%d", m.piece.symbol(), departFile, departRank, marker, destFile, destRank)
}

// moveText is a move as written, before it is matched against a board.
type moveText struct {
	kind    kind
	from    coord
	capture bool
	to      coord
}

func (m *moveText) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	s := string(token)
	if len(s) != 6 {
		return fmt.Errorf("invalid move format %d %s", len(s), s)
	}
	k, ok := symbolToKind[s[0]]
	if !ok {
		return fmt.Errorf("invalid piece %c in %s", s[0], s)
	}
	if s[3] != '-' && s[3] != 'x' {
		return fmt.Errorf("invalid marker %c in %s", s[3], s)
	}
	m.kind = k
	m.from = square(s[1], s[2])
	m.capture = s[3] == 'x'
	m.to = square(s[4], s[5])
	if !m.from.onBoard() || !m.to.onBoard() {
		return fmt.Errorf("square off the board in %s", s)
	}
	return nil
}

func parseMove(s string) (moveText, error) {
	var m moveText
	if _, err := fmt.Sscan(s, &m); err != nil {
		return moveText{}, err
	}
	return m, nil
}

// findMove resolves written move text against the current legal moves.
func (board *Board) findMove(s string) (move, error) {
	text, err := parseMove(s)
	if err != nil {
		return move{}, err
	}
	for _, m := range board.legalMoves() {
		if m.piece.kind == text.kind && m.from == text.from && m.to == text.to && (m.captured != nil) == text.capture {
			return m, nil
		}
	}
	return move{}, fmt.Errorf("%s for %s: %w", s, board.toMove, errNoSuchMove)
}

type squareView struct {
	at     coord
	empty  bool
	symbol byte
	color  color
}

func (board *Board) view(c coord) squareView {
	p := board.at(c)
	if p == nil {
		return squareView{at: c, empty: true}
	}
	return squareView{at: c, symbol: p.symbol(), color: p.color}
}

// squaresInOrder enumerates every square from rank 7 down to rank 0, file 0
// up to file 7.
func (board *Board) squaresInOrder() []squareView {
	views := make([]squareView, 0, boardSize*boardSize)
	for rank := boardSize - 1; rank >= 0; rank-- {
		for file := 0; file < boardSize; file++ {
			views = append(views, board.view(coord{file, rank}))
		}
	}
	return views
}

func (board *Board) String() string {
	var b strings.Builder
	for i, v := range board.squaresInOrder() {
		if v.at.file == 0 {
			fmt.Fprintf(&b, "%d ", v.at.rank+1)
		}
		switch {
		case v.empty:
			b.WriteRune('·')
		case v.color == white:
			b.WriteRune(kindToGlyphWhite[symbolToKind[v.symbol]])
		default:
			b.WriteRune(kindToGlyphBlack[symbolToKind[v.symbol]])
		}
		if i%boardSize == boardSize-1 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteString("  a b c d e f g h\n")
	return b.String()
}
