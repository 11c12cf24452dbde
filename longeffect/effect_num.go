package longeffect

import (
	"github.com/domino14/longeffect/assert"
	"github.com/domino14/longeffect/effect8"
	"github.com/domino14/longeffect/geometry"
)

// EffectNumBoard counts, per square, how many pieces have an effect on it.
type EffectNumBoard struct {
	ByteBoard[uint8]
}

// NewEffectNumBoard returns a zeroed board for the geometry effect8 was
// initialized with.
func NewEffectNumBoard() *EffectNumBoard {
	b := &EffectNumBoard{}
	b.init(DefaultExtractor)
	return b
}

// Count is the number of effects on sq.
func (b *EffectNumBoard) Count(sq geometry.Square) uint8 {
	return b.e[sq]
}

// Inc adds one effect to sq.
func (b *EffectNumBoard) Inc(sq geometry.Square) {
	assert.Truef(b.e[sq] < 0xff, "effect count overflow on %d", sq)
	b.e[sq]++
}

// Dec removes one effect from sq.
func (b *EffectNumBoard) Dec(sq geometry.Square) {
	assert.Truef(b.e[sq] > 0, "effect count underflow on %d", sq)
	b.e[sq]--
}

// Around8 returns the neighbours of sq with at least one effect. Wall bits
// are undefined; and with BoardMask(sq) if that matters.
func (b *EffectNumBoard) Around8(sq geometry.Square) effect8.Directions {
	return b.above(sq, 0)
}

// Around8GreaterThanOne returns the neighbours of sq with two or more
// effects. Wall bits are undefined, as for Around8.
func (b *EffectNumBoard) Around8GreaterThanOne(sq geometry.Square) effect8.Directions {
	return b.above(sq, 1)
}

// Around8Masked is Around8 with the wall bits cleared.
func (b *EffectNumBoard) Around8Masked(sq geometry.Square) effect8.Directions {
	return b.above(sq, 0) & b.masks[sq]
}

// Around8GreaterThanOneMasked is Around8GreaterThanOne with the wall bits
// cleared.
func (b *EffectNumBoard) Around8GreaterThanOneMasked(sq geometry.Square) effect8.Directions {
	return b.above(sq, 1) & b.masks[sq]
}

// Clone returns an independent copy.
func (b *EffectNumBoard) Clone() *EffectNumBoard {
	return &EffectNumBoard{ByteBoard: b.clone()}
}
