package geometry

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestValidate(t *testing.T) {
	is := is.New(t)
	is.NoErr(Shogi.Validate())
	is.NoErr(Board{Files: 8, Ranks: 8}.Validate())
	is.True(errors.Is(Board{Files: 0, Ranks: 9}.Validate(), ErrBadDimensions))
	is.True(errors.Is(Board{Files: 9, Ranks: 15}.Validate(), ErrTooWide))
	is.True(errors.Is(Board{Files: 9, Ranks: 3}.Validate(), ErrTooNarrow))
	is.NoErr(Board{Files: 5, Ranks: 5}.Validate())
}

func TestNumbering(t *testing.T) {
	is := is.New(t)
	is.Equal(Shogi.SquareCount(), 81)
	is.Equal(Shogi.Stride(), 9)
	sq := Shogi.At(4, 4)
	is.Equal(sq, Square(40))
	is.Equal(Shogi.File(sq), 4)
	is.Equal(Shogi.Rank(sq), 4)
	is.Equal(Shogi.At(9, 0), NoSquare)
	is.Equal(Shogi.At(0, -1), NoSquare)
	// north is one byte down, west one stride up.
	is.Equal(Shogi.Delta(0, -1), -1)
	is.Equal(Shogi.Delta(1, 0), 9)
	is.Equal(Shogi.Delta(-1, -1), -10)
}

func TestStepDoesNotWrap(t *testing.T) {
	is := is.New(t)
	// rank 0 of file 1: index 9. Stepping north must not land on rank 8
	// of file 0 even though 9-1 == 8 is a valid index.
	sq := Shogi.At(1, 0)
	is.Equal(Shogi.Step(sq, 0, -1), NoSquare)
	is.Equal(Shogi.Step(sq, 0, 1), Square(10))
	is.Equal(Shogi.Step(sq, -1, 0), Square(0))
}

func TestSquareStrings(t *testing.T) {
	is := is.New(t)
	is.Equal(Shogi.SquareString(40), "55")
	is.Equal(Shogi.SquareString(0), "11")
	is.Equal(Shogi.SquareString(80), "99")
	is.Equal(Shogi.SquareString(NoSquare), "--")

	for _, sq := range Shogi.Squares() {
		parsed, err := Shogi.ParseSquare(Shogi.SquareString(sq))
		is.NoErr(err)
		is.Equal(parsed, sq)
	}

	sq, err := Shogi.ParseSquare("7-6")
	is.NoErr(err)
	is.Equal(sq, Shogi.At(6, 5))

	_, err = Shogi.ParseSquare("0a")
	is.True(err != nil)
	_, err = Shogi.ParseSquare("10-1")
	is.True(err != nil)
	_, err = Shogi.ParseSquare("123")
	is.True(err != nil)

	wide := Board{Files: 12, Ranks: 10}
	is.Equal(wide.SquareString(wide.At(10, 9)), "11-10")
}
