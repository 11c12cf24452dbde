// Package bitboard is a minimal occupancy set for boards of up to 128
// squares, enough for shogi's 81. It exists so the neighbourhood packages
// have something concrete to read from; move generation lives elsewhere.
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/domino14/longeffect/assert"
	"github.com/domino14/longeffect/geometry"
)

// MaxSquares is the largest board a Bitboard can hold.
const MaxSquares = 128

// Bitboard is a 128-bit square set; bit sq of the little-endian pair is
// square sq. The zero value is empty.
type Bitboard struct {
	p [2]uint64
}

// FromSquares returns a bitboard with the given squares set.
func FromSquares(sqs ...geometry.Square) Bitboard {
	var b Bitboard
	for _, sq := range sqs {
		b.Set(sq)
	}
	return b
}

func (b *Bitboard) Set(sq geometry.Square) {
	assert.Truef(sq >= 0 && sq < MaxSquares, "bad square %d", sq)
	b.p[sq>>6] |= 1 << (uint(sq) & 63)
}

func (b *Bitboard) Unset(sq geometry.Square) {
	assert.Truef(sq >= 0 && sq < MaxSquares, "bad square %d", sq)
	b.p[sq>>6] &^= 1 << (uint(sq) & 63)
}

func (b Bitboard) IsSet(sq geometry.Square) bool {
	if sq < 0 || sq >= MaxSquares {
		return false
	}
	return b.p[sq>>6]&(1<<(uint(sq)&63)) != 0
}

// Count is the number of occupied squares.
func (b Bitboard) Count() int {
	return bits.OnesCount64(b.p[0]) + bits.OnesCount64(b.p[1])
}

func (b Bitboard) IsEmpty() bool {
	return b.p[0]|b.p[1] == 0
}

func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{p: [2]uint64{b.p[0] | o.p[0], b.p[1] | o.p[1]}}
}

func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{p: [2]uint64{b.p[0] & o.p[0], b.p[1] & o.p[1]}}
}

// Window returns the occupancy of squares start .. start+width-1 as the
// low width bits of the result. Squares outside 0..MaxSquares-1 read as
// empty. width must be at most 64 and start at least -63.
func (b Bitboard) Window(start, width int) uint64 {
	lo, hi := b.p[0], b.p[1]
	var r uint64
	switch {
	case start < 0:
		r = lo << uint(-start)
	case start < 64:
		// hi<<64 is zero in Go, which covers start == 0.
		r = lo>>uint(start) | hi<<uint(64-start)
	case start < MaxSquares:
		r = hi >> uint(start-64)
	}
	if width < 64 {
		r &= 1<<uint(width) - 1
	}
	return r
}

// Display draws the board with north at the top and the east-most file on
// the right, 'x' for occupied squares.
func (b Bitboard) Display(g geometry.Board) string {
	var sb strings.Builder
	for r := 0; r < g.Ranks; r++ {
		for f := g.Files - 1; f >= 0; f-- {
			if b.IsSet(g.At(f, r)) {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
