package effect8

import (
	"github.com/domino14/longeffect/bitops"
	"github.com/domino14/longeffect/geometry"
)

// Occupancy is any per-square occupancy set that can hand out a run of
// consecutive squares as bits. Squares before 0 or past the end of the
// board read as empty.
type Occupancy interface {
	Window(start, width int) uint64
}

// FromOccupancy packs the occupancy of the eight neighbours of sq into a
// Directions value. Wall bits are undefined; and with BoardMask(sq).
func FromOccupancy(o Occupancy, sq geometry.Square) Directions {
	w := o.Window(int(sq)+windowOffset, windowWidth)
	return Directions(bitops.Pext(w, selector))
}
