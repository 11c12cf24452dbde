package longeffect

import (
	"github.com/domino14/longeffect/effect8"
	"github.com/domino14/longeffect/geometry"
)

// LongEffectBoard records, per square, the directions from which sliding
// pieces reach it.
type LongEffectBoard struct {
	ByteBoard[effect8.Directions]
}

func NewLongEffectBoard() *LongEffectBoard {
	b := &LongEffectBoard{}
	b.init(DefaultExtractor)
	return b
}

// Directions returns the long effects arriving at sq.
func (b *LongEffectBoard) Directions(sq geometry.Square) effect8.Directions {
	return effect8.Directions(b.e[sq])
}

// Add marks ds as arriving at sq.
func (b *LongEffectBoard) Add(sq geometry.Square, ds effect8.Directions) {
	b.e[sq] |= byte(ds)
}

// Remove clears ds from sq.
func (b *LongEffectBoard) Remove(sq geometry.Square, ds effect8.Directions) {
	b.e[sq] &^= byte(ds)
}

func (b *LongEffectBoard) Clone() *LongEffectBoard {
	return &LongEffectBoard{ByteBoard: b.clone()}
}
