package effect24

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/longeffect/assert"
	"github.com/domino14/longeffect/bitops"
	"github.com/domino14/longeffect/geometry"
)

var (
	geo            geometry.Board
	initialized    bool
	directToDelta  [DirectNB]int
	boardMaskTable []Directions

	windowOffset int
	windowWidth  int
	selector     uint64
)

// Init builds the tables of this package for g. Like effect8.Init it must
// run before first use and may be repeated.
func Init(g geometry.Board) error {
	if err := g.Validate(); err != nil {
		return err
	}
	geo = g

	for d := DirectZero; d < DirectNB; d++ {
		a, b := d.Steps()
		delta := g.Delta(a.Step())
		if b.IsOk() {
			delta += g.Delta(b.Step())
		}
		directToDelta[d] = delta
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

	windowOffset = directToDelta[DirectZero]
	windowWidth = 4*g.Stride() + 5
	positions := make([]int, DirectNB)
	for d := DirectZero; d < DirectNB; d++ {
		positions[d] = directToDelta[d] - windowOffset
	}
	selector = bitops.Selector(positions...)

	initialized = true
	log.Debug().Str("geometry", g.String()).Int("window", windowWidth).
		Uint64("selector", selector).Msg("effect24 tables initialized")
	return nil
}

func MustInit(g geometry.Board) {
	if err := Init(g); err != nil {
		panic(err)
	}
}

func Initialized() bool {
	return initialized
}

// DirectToDelta returns the square-index offset of cell d.
func DirectToDelta(d Direct) int {
	assert.True(initialized, "effect24 used before Init")
	assert.Truef(d.IsOk(), "bad direct %d", d)
	return directToDelta[d]
}

// BoardMask returns the cells of the 5x5 block around sq that are on the
// board.
func BoardMask(sq geometry.Square) Directions {
	assert.True(initialized, "effect24 used before Init")
	assert.Truef(geo.IsOk(sq), "bad square %d", sq)
	return boardMaskTable[sq]
}

func WindowOffset() int {
	return windowOffset
}

func WindowWidth() int {
	return windowWidth
}

func Selector() uint64 {
	return selector
}
