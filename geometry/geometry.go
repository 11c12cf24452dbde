// Package geometry describes the square numbering of a rectangular game
// board. Squares are numbered file-major: sq = file*Ranks + rank, where
// file 0 is the east-most file and rank 0 is the north-most rank. This is
// the layout shogi engines use, so a square's north and south neighbours
// are adjacent bytes and its east and west neighbours are one stride away.
package geometry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Square is a single cell of the board.
type Square int

// NoSquare is returned by lookups that fall off the board.
const NoSquare Square = -1

const (
	// maxWindowBits is the width of the widest neighbourhood window the
	// effect packages need to fit into a single machine word.
	maxWindowBits = 64
	// minRanks keeps every offset of the 5x5 block distinct, so that
	// ascending offset order is the same on every square.
	minRanks = 5
)

var (
	ErrBadDimensions = errors.New("board must have at least one file and one rank")
	ErrTooWide       = errors.New("board stride too large for a 64-bit neighbourhood window")
	ErrTooNarrow     = errors.New("board stride too small for distinct neighbourhood offsets")
)

// Board holds the dimensions of a board.
type Board struct {
	Files int
	Ranks int
}

// Shogi is the 9x9 board. It is the default geometry.
var Shogi = Board{Files: 9, Ranks: 9}

// Validate checks that the geometry can be used by the effect tables.
// The 24-neighbourhood window spans 4*Ranks+5 squares and has to fit in
// one uint64.
func (b Board) Validate() error {
	if b.Files < 1 || b.Ranks < 1 {
		return ErrBadDimensions
	}
	if b.Ranks < minRanks {
		return fmt.Errorf("%w: %d ranks", ErrTooNarrow, b.Ranks)
	}
	if 4*b.Ranks+5 > maxWindowBits {
		return fmt.Errorf("%w: %d ranks", ErrTooWide, b.Ranks)
	}
	return nil
}

// SquareCount is the number of squares on the board.
func (b Board) SquareCount() int {
	return b.Files * b.Ranks
}

// Stride is the square-index distance between two horizontally adjacent
// squares.
func (b Board) Stride() int {
	return b.Ranks
}

// OnBoard reports whether the file/rank pair lies on the board.
func (b Board) OnBoard(file, rank int) bool {
	return file >= 0 && file < b.Files && rank >= 0 && rank < b.Ranks
}

// IsOk reports whether sq is a valid square index.
func (b Board) IsOk(sq Square) bool {
	return sq >= 0 && int(sq) < b.SquareCount()
}

// At returns the square at the given file and rank, or NoSquare.
func (b Board) At(file, rank int) Square {
	if !b.OnBoard(file, rank) {
		return NoSquare
	}
	return Square(file*b.Ranks + rank)
}

// File returns the file index of sq.
func (b Board) File(sq Square) int {
	return int(sq) / b.Ranks
}

// Rank returns the rank index of sq.
func (b Board) Rank(sq Square) int {
	return int(sq) % b.Ranks
}

// Delta converts a file/rank step into a square-index offset. A positive
// df moves west, a positive dr moves south.
func (b Board) Delta(df, dr int) int {
	return df*b.Ranks + dr
}

// Step moves from sq by (df, dr) and returns NoSquare if that leaves the
// board. Unlike adding Delta directly, it never wraps around an edge.
func (b Board) Step(sq Square, df, dr int) Square {
	return b.At(b.File(sq)+df, b.Rank(sq)+dr)
}

// Squares returns every square in index order.
func (b Board) Squares() []Square {
	sqs := make([]Square, b.SquareCount())
	for i := range sqs {
		sqs[i] = Square(i)
	}
	return sqs
}

func (b Board) String() string {
	return fmt.Sprintf("%dx%d", b.Files, b.Ranks)
}

// SquareString renders sq with 1-based file and rank, shogi style: the
// centre of a 9x9 board is "55". Boards wider than 9 use "file-rank".
func (b Board) SquareString(sq Square) string {
	if !b.IsOk(sq) {
		return "--"
	}
	f, r := b.File(sq)+1, b.Rank(sq)+1
	if b.Files <= 9 && b.Ranks <= 9 {
		return fmt.Sprintf("%d%d", f, r)
	}
	return fmt.Sprintf("%d-%d", f, r)
}

// ParseSquare parses "55" or "5-5" into a square on this board.
func (b Board) ParseSquare(s string) (Square, error) {
	s = strings.TrimSpace(s)
	var fs, rs string
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		fs, rs = s[:idx], s[idx+1:]
	} else if len(s) == 2 {
		fs, rs = s[:1], s[1:]
	} else {
		return NoSquare, fmt.Errorf("cannot parse square %q", s)
	}
	f, err := strconv.Atoi(fs)
	if err != nil {
		return NoSquare, fmt.Errorf("bad file in %q: %w", s, err)
	}
	r, err := strconv.Atoi(rs)
	if err != nil {
		return NoSquare, fmt.Errorf("bad rank in %q: %w", s, err)
	}
	sq := b.At(f-1, r-1)
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("square %q is off a %v board", s, b)
	}
	return sq, nil
}
