package main

const boardSize = 8

type kind uint8

const (
	pawn kind = iota
	knight
	bishop
	rook
	queen
	king
)

type color uint8

const (
	white color = iota
	black
)

func (c color) other() color {
	return c ^ 1
}

func (c color) String() string {
	if c == white {
		return "white"
	}
	return "black"
}

type coord struct {
	file, rank int
}

func (c coord) add(v coord, n int) coord {
	return coord{file: c.file + v.file*n, rank: c.rank + v.rank*n}
}

func (c coord) onBoard() bool {
	return c.file >= 0 && c.file < boardSize && c.rank >= 0 && c.rank < boardSize
}

var (
	straight    = []coord{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	diagonal    = []coord{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightLeaps = []coord{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}, {2, 1}, {-2, 1}, {2, -1}, {-2, -1}}
	all         = append(append([]coord{}, straight...), diagonal...)
)

// unbounded lets a ray run to the edge of the board.
const unbounded = 0

type profile struct {
	directions  []coord
	maxDistance int
	singleStep  bool
}

var profiles = map[kind]profile{
	knight: {directions: knightLeaps, maxDistance: 1, singleStep: true},
	bishop: {directions: diagonal, maxDistance: unbounded},
	rook:   {directions: straight, maxDistance: unbounded},
	queen:  {directions: all, maxDistance: unbounded},
	king:   {directions: all, maxDistance: 1},
}

var kindToSymbol = map[kind]byte{
	pawn:   'p',
	knight: 'N',
	bishop: 'B',
	rook:   'R',
	queen:  'Q',
	king:   'K',
}

var symbolToKind = map[byte]kind{
	'p': pawn,
	'N': knight,
	'B': bishop,
	'R': rook,
	'Q': queen,
	'K': king,
}

var kindToGlyphWhite = map[kind]rune{
	bishop: '♗',
	king:   '♔',
	knight: '♘',
	pawn:   '♙',
	queen:  '♕',
	rook:   '♖',
}

var kindToGlyphBlack = map[kind]rune{
	bishop: '♝',
	king:   '♚',
	knight: '♞',
	pawn:   '♟',
	queen:  '♛',
	rook:   '♜',
}

var backRank = [boardSize]kind{rook, knight, bishop, queen, king, bishop, knight, rook}
