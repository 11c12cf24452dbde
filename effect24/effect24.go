// Package effect24 encodes the 24 squares of the 5x5 block around a square.
//
// Directions are numbered with the same rule as package effect8: ascending
// square offset. Scanning files east to west and, within a file, ranks
// north to south, the 24 non-centre cells get bits 0..23. The eight
// distance-1 cells keep their effect8 relative order, so an effect8 mask can
// be lifted into this layout with a single bit deposit.
package effect24

import (
	"math/bits"

	"github.com/domino14/longeffect/assert"
	"github.com/domino14/longeffect/bitops"
	"github.com/domino14/longeffect/effect8"
)

// Direct is one of the 24 cells around a square.
type Direct uint8

const (
	DirectZero Direct = 0
	DirectNB   Direct = 24
)

// Directions is a set of Directs. Bits above 23 are always zero.
type Directions uint32

// DirectionsNB is the number of distinct Directions values.
const DirectionsNB = 1 << 24

// twoSteps spells every cell as one or two effect8 steps; the second is
// effect8.DirectNB for the distance-1 cells.
var twoSteps [DirectNB][2]effect8.Direct

// cellSteps is the (file, rank) offset of each cell.
var cellSteps [DirectNB][2]int

// directAt is indexed by [df+2][dr+2]; the centre holds DirectNB.
var directAt [5][5]Direct

// Ring1 is the set of the eight distance-1 cells.
var Ring1 Directions

func init() {
	directAt[2][2] = DirectNB
	d := DirectZero
	for df := -2; df <= 2; df++ {
		for dr := -2; dr <= 2; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			cellSteps[d] = [2]int{df, dr}
			directAt[df+2][dr+2] = d
			first := effect8.DirectFromStep(sign(df), sign(dr))
			second := effect8.DirectFromStep(df-sign(df), dr-sign(dr))
			twoSteps[d] = [2]effect8.Direct{first, second}
			if second == effect8.DirectNB {
				Ring1 |= ToDirections(d)
			}
			d++
		}
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func (d Direct) IsOk() bool {
	return d < DirectNB
}

// Step returns the file and rank offset of d.
func (d Direct) Step() (df, dr int) {
	assert.Truef(d.IsOk(), "bad direct %d", d)
	return cellSteps[d][0], cellSteps[d][1]
}

// Steps spells d as effect8 steps. second is effect8.DirectNB when d is a
// distance-1 cell.
func (d Direct) Steps() (first, second effect8.Direct) {
	assert.Truef(d.IsOk(), "bad direct %d", d)
	return twoSteps[d][0], twoSteps[d][1]
}

// Opposite returns the cell mirrored through the centre.
func (d Direct) Opposite() Direct {
	assert.Truef(d.IsOk(), "bad direct %d", d)
	return DirectNB - 1 - d
}

func (d Direct) String() string {
	if !d.IsOk() {
		return "?"
	}
	a, b := d.Steps()
	if b == effect8.DirectNB {
		return a.String()
	}
	return a.String() + "+" + b.String()
}

// DirectFromStep returns the cell at (df, dr), or DirectNB for the centre
// and anything outside the 5x5 block.
func DirectFromStep(df, dr int) Direct {
	if df < -2 || df > 2 || dr < -2 || dr > 2 {
		return DirectNB
	}
	return directAt[df+2][dr+2]
}

// ToDirections returns the set holding only d.
func ToDirections(d Direct) Directions {
	assert.Truef(d.IsOk(), "bad direct %d", d)
	return Directions(1) << d
}

func (ds Directions) Has(d Direct) bool {
	return ds&ToDirections(d) != 0
}

func (ds *Directions) Set(d Direct) {
	*ds |= ToDirections(d)
}

func (ds Directions) Count() int {
	return bits.OnesCount32(uint32(ds))
}

// PopDirections removes the lowest cell from *ds and returns it. *ds must
// not be zero.
func PopDirections(ds *Directions) Direct {
	assert.True(*ds != 0, "pop from empty directions")
	d := Direct(bits.TrailingZeros32(uint32(*ds)))
	*ds &= *ds - 1
	return d
}

// FromEffect8 lifts an 8-neighbour set into the ring-1 cells of this
// layout.
func FromEffect8(ds effect8.Directions) Directions {
	return Directions(bitops.Pdep(uint64(ds), uint64(Ring1)))
}

// Effect8 projects the ring-1 cells of ds back onto an 8-neighbour set;
// ring-2 cells are dropped.
func (ds Directions) Effect8() effect8.Directions {
	return effect8.Directions(bitops.Pext(uint64(ds), uint64(Ring1)))
}
