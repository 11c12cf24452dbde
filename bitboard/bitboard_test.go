package bitboard

import (
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/domino14/longeffect/geometry"
)

func TestSetUnset(t *testing.T) {
	is := is.New(t)
	b := FromSquares(0, 63, 64, 80)
	is.Equal(b.Count(), 4)
	is.True(b.IsSet(63))
	is.True(b.IsSet(64))
	is.True(!b.IsSet(1))
	is.True(!b.IsSet(-1))
	b.Unset(63)
	is.True(!b.IsSet(63))
	is.Equal(b.Count(), 3)
	is.True(!b.IsEmpty())
	is.True(Bitboard{}.IsEmpty())
}

func TestOrAnd(t *testing.T) {
	is := is.New(t)
	a := FromSquares(1, 70)
	b := FromSquares(70, 2)
	is.Equal(a.Or(b), FromSquares(1, 2, 70))
	is.Equal(a.And(b), FromSquares(70))
}

func TestWindowMatchesIsSet(t *testing.T) {
	is := is.New(t)
	for iter := 0; iter < 50; iter++ {
		var b Bitboard
		for sq := 0; sq < 81; sq++ {
			if frand.Intn(3) == 0 {
				b.Set(geometry.Square(sq))
			}
		}
		for _, width := range []int{21, 41, 64} {
			for start := -30; start < 100; start++ {
				w := b.Window(start, width)
				for i := 0; i < width; i++ {
					is.Equal(w&(1<<uint(i)) != 0, b.IsSet(geometry.Square(start+i)))
				}
			}
		}
	}
}

func TestDisplay(t *testing.T) {
	is := is.New(t)
	g := geometry.Shogi
	// file 0 is drawn on the right, rank 0 at the top.
	b := FromSquares(g.At(0, 0), g.At(8, 8))
	want := "" +
		"........x\n" +
		".........\n" +
		".........\n" +
		".........\n" +
		".........\n" +
		".........\n" +
		".........\n" +
		".........\n" +
		"x........\n"
	is.Equal(b.Display(g), want)
}
