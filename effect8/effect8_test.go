package effect8

import (
	"os"
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/domino14/longeffect/assert"
	"github.com/domino14/longeffect/bitboard"
	"github.com/domino14/longeffect/geometry"
)

var testBoards = []geometry.Board{
	geometry.Shogi,
	{Files: 8, Ranks: 8},
	{Files: 5, Ranks: 5},
	{Files: 12, Ranks: 10},
}

func TestMain(m *testing.M) {
	MustInit(geometry.Shogi)
	os.Exit(m.Run())
}

func TestDirectOrder(t *testing.T) {
	is := is.New(t)
	is.Equal(DirectToDelta(DirectNE), -10)
	is.Equal(DirectToDelta(DirectE), -9)
	is.Equal(DirectToDelta(DirectSE), -8)
	is.Equal(DirectToDelta(DirectN), -1)
	is.Equal(DirectToDelta(DirectS), 1)
	is.Equal(DirectToDelta(DirectNW), 8)
	is.Equal(DirectToDelta(DirectW), 9)
	is.Equal(DirectToDelta(DirectSW), 10)
	for d := DirectE; d < DirectNB; d++ {
		// ascending offsets is the convention everything is derived from
		is.True(DirectToDelta(d-1) < DirectToDelta(d))
	}
	is.Equal(Selector(), uint64(0b111000000101000000111))
	is.Equal(WindowOffset(), -10)
	is.Equal(WindowWidth(), 21)
}

func TestOpposite(t *testing.T) {
	is := is.New(t)
	for d := DirectZero; d < DirectNB; d++ {
		is.Equal(DirectToDelta(d.Opposite()), -DirectToDelta(d))
		is.Equal(d.Opposite().Opposite(), d)
	}
	is.Equal(DirectNE.Opposite(), DirectSW)
	is.Equal(DirectN.Opposite(), DirectS)
}

func TestNamesAndSteps(t *testing.T) {
	is := is.New(t)
	for d := DirectZero; d < DirectNB; d++ {
		parsed, ok := ParseDirect(d.String())
		is.True(ok)
		is.Equal(parsed, d)
		df, dr := d.Step()
		is.Equal(DirectFromStep(df, dr), d)
	}
	_, ok := ParseDirect("up")
	is.True(!ok)
	is.Equal(DirectFromStep(0, 0), DirectNB)
	is.Equal(DirectFromStep(2, 0), DirectNB)
	is.Equal(DirectNB.String(), "?")
	d, ok := ParseDirect(" sw ")
	is.True(ok)
	is.Equal(d, DirectSW)
}

func TestBoardMaskSymmetry(t *testing.T) {
	is := is.New(t)
	defer MustInit(geometry.Shogi)
	for _, g := range testBoards {
		is.NoErr(Init(g))
		for _, sq := range g.Squares() {
			m := BoardMask(sq)
			for d := DirectZero; d < DirectNB; d++ {
				df, dr := d.Step()
				stepped := g.Step(sq, df, dr)
				if !m.Has(d) {
					is.Equal(stepped, geometry.NoSquare)
					continue
				}
				nsq := sq + geometry.Square(DirectToDelta(d))
				is.True(g.IsOk(nsq))
				is.Equal(nsq, stepped)
				is.True(BoardMask(nsq).Has(d.Opposite()))
			}
		}
	}
}

func TestBoardMaskCounts(t *testing.T) {
	is := is.New(t)
	defer MustInit(geometry.Shogi)
	for _, g := range testBoards {
		is.NoErr(Init(g))
		for _, sq := range g.Squares() {
			f, r := g.File(sq), g.Rank(sq)
			fileEdge := f == 0 || f == g.Files-1
			rankEdge := r == 0 || r == g.Ranks-1
			want := 8
			switch {
			case fileEdge && rankEdge:
				want = 3
			case fileEdge || rankEdge:
				want = 5
			}
			is.Equal(BoardMask(sq).Count(), want)
		}
	}
}

func TestInitIsIdempotent(t *testing.T) {
	is := is.New(t)
	is.True(Initialized())
	before := make([]Directions, len(boardMaskTable))
	copy(before, boardMaskTable)
	MustInit(geometry.Shogi)
	is.Equal(before, boardMaskTable)
	is.True(Init(geometry.Board{Files: 9, Ranks: 20}) != nil)
	// a rejected geometry leaves the tables alone
	is.Equal(Geometry(), geometry.Shogi)
}

func TestPopDirections(t *testing.T) {
	is := is.New(t)
	for v := 1; v < DirectionsNB; v++ {
		ds := Directions(v)
		k := ds.Count()
		seen := map[Direct]bool{}
		for i := 0; i < k; i++ {
			d := PopDirections(&ds)
			is.True(d.IsOk())
			is.True(!seen[d])
			is.True(Directions(v).Has(d))
			seen[d] = true
		}
		is.Equal(ds, Directions(0))
		is.Equal(len(seen), k)
	}
	is.Equal(Directions(0b10010).Directs(), []Direct{DirectE, DirectS})
}

func TestFormat(t *testing.T) {
	is := is.New(t)
	is.Equal(Directions(0).String(), "...\n.+.\n...\n")
	is.Equal(ToDirections(DirectNE).String(), "..*\n.+.\n...\n")
	is.Equal(ToDirections(DirectW).String(), "...\n*+.\n...\n")
	is.Equal(ToDirections(DirectSW).String(), "...\n.+.\n*..\n")
	is.Equal(Directions(0xff).String(), "***\n*+*\n***\n")

	// every single-bit set marks exactly the cell its step points at
	for d := DirectZero; d < DirectNB; d++ {
		rows := ToDirections(d).String()
		df, dr := d.Step()
		row, col := dr+1, 1-df
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				ch := rows[r*4+c]
				switch {
				case r == 1 && c == 1:
					is.Equal(ch, byte('+'))
				case r == row && c == col:
					is.Equal(ch, byte('*'))
				default:
					is.Equal(ch, byte('.'))
				}
			}
		}
	}
}

func TestFromOccupancy(t *testing.T) {
	is := is.New(t)
	g := geometry.Shogi
	for iter := 0; iter < 100; iter++ {
		var bb bitboard.Bitboard
		for _, sq := range g.Squares() {
			if frand.Intn(2) == 0 {
				bb.Set(sq)
			}
		}
		for _, sq := range g.Squares() {
			var want Directions
			for d := DirectZero; d < DirectNB; d++ {
				df, dr := d.Step()
				if n := g.Step(sq, df, dr); n != geometry.NoSquare && bb.IsSet(n) {
					want.Set(d)
				}
			}
			is.Equal(FromOccupancy(bb, sq)&BoardMask(sq), want)
		}
	}
}

func TestDeltaBeforeInit(t *testing.T) {
	is := is.New(t)
	defer func(was bool) { initialized = was }(initialized)
	initialized = false
	panicked := func(f func()) (p bool) {
		defer func() { p = recover() != nil }()
		f()
		return false
	}
	is.Equal(panicked(func() { DirectToDelta(DirectN) }), assert.Enabled)
}
