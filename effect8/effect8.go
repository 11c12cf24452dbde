// Package effect8 encodes the eight immediate neighbours of a square.
//
// A Direct names one neighbour; a Directions value is a bit set of them,
// bit i standing for Direct(i). Directions are numbered in ascending
// square-offset order under the file-major numbering of package geometry,
// which gives NE, E, SE, N, S, NW, W, SW. Keeping that order is what lets a
// single parallel bit extract over a byte window produce a Directions value
// directly.
package effect8

import (
	"math/bits"
	"strings"

	"github.com/domino14/longeffect/assert"
)

// Direct is a single neighbour direction.
type Direct uint8

const (
	DirectNE Direct = iota
	DirectE
	DirectSE
	DirectN
	DirectS
	DirectNW
	DirectW
	DirectSW
	DirectNB

	DirectZero Direct = 0
)

// Directions is a set of neighbour directions. Several bits may be set
// at once; there are no bits above DirectSW.
type Directions uint8

// DirectionsNB is the number of distinct Directions values. It does not fit
// in a Directions.
const DirectionsNB = 256

// directSteps holds the (file, rank) step of each Direct. A positive file
// step goes west, a positive rank step goes south.
var directSteps = [DirectNB][2]int{
	DirectNE: {-1, -1},
	DirectE:  {-1, 0},
	DirectSE: {-1, 1},
	DirectN:  {0, -1},
	DirectS:  {0, 1},
	DirectNW: {1, -1},
	DirectW:  {1, 0},
	DirectSW: {1, 1},
}

var directNames = [DirectNB]string{"NE", "E", "SE", "N", "S", "NW", "W", "SW"}

// directAt is the inverse of directSteps, indexed by [df+1][dr+1]. The
// centre entry is DirectNB.
var directAt = func() (t [3][3]Direct) {
	t[1][1] = DirectNB
	for d, st := range directSteps {
		t[st[0]+1][st[1]+1] = Direct(d)
	}
	return t
}()

// IsOk reports whether d names a real direction.
func (d Direct) IsOk() bool {
	return d < DirectNB
}

// Step returns the file and rank step of d.
func (d Direct) Step() (df, dr int) {
	assert.Truef(d.IsOk(), "bad direct %d", d)
	return directSteps[d][0], directSteps[d][1]
}

// Opposite returns the direction pointing back. The ordering is symmetric,
// so the opposite of d is DirectNB-1-d.
func (d Direct) Opposite() Direct {
	assert.Truef(d.IsOk(), "bad direct %d", d)
	return DirectNB - 1 - d
}

func (d Direct) String() string {
	if !d.IsOk() {
		return "?"
	}
	return directNames[d]
}

// DirectFromStep returns the direction for a unit step, or DirectNB if
// (df, dr) is not a unit step.
func DirectFromStep(df, dr int) Direct {
	if df < -1 || df > 1 || dr < -1 || dr > 1 {
		return DirectNB
	}
	return directAt[df+1][dr+1]
}

// ParseDirect parses a compass name such as "NE" (case insensitive).
func ParseDirect(s string) (Direct, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for d, n := range directNames {
		if n == s {
			return Direct(d), true
		}
	}
	return DirectNB, false
}

// ToDirections returns the set holding only d.
func ToDirections(d Direct) Directions {
	assert.Truef(d.IsOk(), "bad direct %d", d)
	return Directions(1) << d
}

// Has reports whether d is in the set.
func (ds Directions) Has(d Direct) bool {
	return ds&ToDirections(d) != 0
}

// Set adds d to the set.
func (ds *Directions) Set(d Direct) {
	*ds |= ToDirections(d)
}

// Count is the number of directions in the set.
func (ds Directions) Count() int {
	return bits.OnesCount8(uint8(ds))
}

// PopDirections removes the lowest direction from *ds and returns it.
// The result is undefined if *ds is empty; check for zero first.
func PopDirections(ds *Directions) Direct {
	assert.True(*ds != 0, "pop from empty directions")
	d := Direct(bits.TrailingZeros8(uint8(*ds)))
	*ds &= *ds - 1
	return d
}

// Directs lists the directions in the set in ascending order. It
// allocates and is meant for diagnostics, not search.
func (ds Directions) Directs() []Direct {
	out := make([]Direct, 0, ds.Count())
	for ds != 0 {
		out = append(out, PopDirections(&ds))
	}
	return out
}
