// Package longeffect keeps per-square byte boards of effects (attacks) on
// the board: how many pieces reach each square, and from which directions
// the long-range ones arrive. Boards are owned by a single position and are
// not safe for concurrent mutation; give every search goroutine its own
// copy with Clone.
package longeffect

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash"

	"github.com/domino14/longeffect/assert"
	"github.com/domino14/longeffect/bitops"
	"github.com/domino14/longeffect/effect8"
	"github.com/domino14/longeffect/geometry"
)

// ByteBoard is one byte per square, interpreted as T. The bytes live in the
// middle of a larger buffer: the neighbourhood extractors read a whole
// window around a square without bounds checks per lane, so the buffer
// carries pad bytes on both sides. Pad bytes are never written and every
// lane that lands on them is a wall lane, which callers mask with
// BoardMask. A board copies the effect8 tables when it is created, so it
// keeps working on its own geometry after effect8.Init is called again.
type ByteBoard[T ~uint8] struct {
	geo geometry.Board
	pad int
	buf []byte
	// e is buf without the padding.
	e []byte

	ext      Extractor
	winOff   int
	chunk    int
	selector uint64
	deltas   [effect8.DirectNB]int
	// masks is shared read-only between clones.
	masks []effect8.Directions
}

func (b *ByteBoard[T]) init(ext Extractor) {
	assert.True(effect8.Initialized(), "effect8.Init must run before creating boards")
	g := effect8.Geometry()
	b.geo = g
	b.chunk = bitops.RoundUp8(effect8.WindowWidth())
	b.pad = b.chunk
	b.buf = make([]byte, g.SquareCount()+2*b.pad)
	b.e = b.buf[b.pad : b.pad+g.SquareCount()]
	b.ext = ext
	b.winOff = effect8.WindowOffset()
	b.selector = effect8.Selector()
	b.masks = effect8.BoardMasks()
	for d := effect8.DirectZero; d < effect8.DirectNB; d++ {
		b.deltas[d] = effect8.DirectToDelta(d)
	}
}

// BoardMask is effect8.BoardMask for the geometry of this board.
func (b *ByteBoard[T]) BoardMask(sq geometry.Square) effect8.Directions {
	return b.masks[sq]
}

// Clear zeroes every square.
func (b *ByteBoard[T]) Clear() {
	clear(b.e)
}

// At returns the raw value at sq.
func (b *ByteBoard[T]) At(sq geometry.Square) T {
	return T(b.e[sq])
}

// Set stores v at sq.
func (b *ByteBoard[T]) Set(sq geometry.Square, v T) {
	b.e[sq] = byte(v)
}

// Len is the number of squares.
func (b *ByteBoard[T]) Len() int {
	return len(b.e)
}

func (b *ByteBoard[T]) Geometry() geometry.Board {
	return b.geo
}

// Extractor returns the neighbourhood strategy in use.
func (b *ByteBoard[T]) Extractor() Extractor {
	return b.ext
}

func (b *ByteBoard[T]) SetExtractor(ext Extractor) {
	b.ext = ext
}

// Bytes exposes the logical squares for bulk updates. It aliases the board.
func (b *ByteBoard[T]) Bytes() []byte {
	return b.e
}

// CopyFrom overwrites b with the contents of o. Both boards must share a
// geometry.
func (b *ByteBoard[T]) CopyFrom(o *ByteBoard[T]) {
	assert.True(b.geo == o.geo, "copy between boards of different geometry")
	copy(b.e, o.e)
}

// Hash fingerprints the squares, for comparing snapshots.
func (b *ByteBoard[T]) Hash() uint64 {
	return xxhash.Sum64(b.e)
}

func (b *ByteBoard[T]) clone() ByteBoard[T] {
	c := *b
	c.buf = make([]byte, len(b.buf))
	copy(c.buf, b.buf)
	c.e = c.buf[c.pad : c.pad+len(b.e)]
	return c
}

// Display draws the board with north at the top and file 1 on the right.
func (b *ByteBoard[T]) Display() string {
	var sb strings.Builder
	for r := 0; r < b.geo.Ranks; r++ {
		for f := b.geo.Files - 1; f >= 0; f-- {
			fmt.Fprintf(&sb, "%4d", b.e[b.geo.At(f, r)])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
