package effect8

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/longeffect/assert"
	"github.com/domino14/longeffect/bitops"
	"github.com/domino14/longeffect/geometry"
)

// Tables are process-wide. Init fills them once at startup, after which
// they are only read, so concurrent readers need no locking.
var (
	geo            geometry.Board
	initialized    bool
	directToDelta  [DirectNB]int
	boardMaskTable []Directions

	windowOffset int
	windowWidth  int
	selector     uint64
)

// Init builds the delta table, the per-square board masks and the window
// selector for g. It must run before any other function in this package
// and may be called again to rebuild the tables from scratch. A rebuild
// allocates a new mask table; slices handed out by BoardMasks keep
// describing the geometry they were built for.
func Init(g geometry.Board) error {
	if err := g.Validate(); err != nil {
		return err
	}
	geo = g

	for d := DirectZero; d < DirectNB; d++ {
		df, dr := d.Step()
		directToDelta[d] = g.Delta(df, dr)
	}

	boardMaskTable = make([]Directions, g.SquareCount())
	for _, sq := range g.Squares() {
		f, r := g.File(sq), g.Rank(sq)
		var m Directions
		for d := DirectZero; d < DirectNB; d++ {
			df, dr := d.Step()
			if g.OnBoard(f+df, r+dr) {
				m.Set(d)
			}
		}
		boardMaskTable[sq] = m
	}

	// The window covers the 3x3 block around a square: three columns of
	// three bytes, one stride apart, starting at the north-east corner.
	windowOffset = directToDelta[DirectNE]
	windowWidth = 2*g.Stride() + 3
	positions := make([]int, DirectNB)
	for d := DirectZero; d < DirectNB; d++ {
		positions[d] = directToDelta[d] - windowOffset
	}
	selector = bitops.Selector(positions...)

	initialized = true
	log.Debug().Str("geometry", g.String()).Int("window", windowWidth).
		Uint64("selector", selector).Msg("effect8 tables initialized")
	return nil
}

// MustInit is Init for program startup; it panics on a bad geometry.
func MustInit(g geometry.Board) {
	if err := Init(g); err != nil {
		panic(err)
	}
}

// Initialized reports whether Init has run.
func Initialized() bool {
	return initialized
}

// Geometry returns the board the tables were built for.
func Geometry() geometry.Board {
	return geo
}

// DirectToDelta returns the square-index offset of one step in d.
func DirectToDelta(d Direct) int {
	assert.True(initialized, "effect8 used before Init")
	assert.Truef(d.IsOk(), "bad direct %d", d)
	return directToDelta[d]
}

// BoardMask returns the directions that stay on the board from sq. A
// direction missing from the mask points at a wall. Raw neighbourhood
// masks have undefined wall bits and must be and-ed with this.
func BoardMask(sq geometry.Square) Directions {
	assert.True(initialized, "effect8 used before Init")
	assert.Truef(geo.IsOk(sq), "bad square %d", sq)
	return boardMaskTable[sq]
}

// BoardMasks returns the whole mask table, indexed by square. Callers must
// not modify it.
func BoardMasks() []Directions {
	assert.True(initialized, "effect8 used before Init")
	return boardMaskTable
}

// WindowOffset is the offset from a square to the first byte of its
// neighbourhood window.
func WindowOffset() int {
	return windowOffset
}

// WindowWidth is the number of bytes in a neighbourhood window.
func WindowWidth() int {
	return windowWidth
}

// Selector has one bit set per window position holding a neighbour, in
// Direct order.
func Selector() uint64 {
	return selector
}
