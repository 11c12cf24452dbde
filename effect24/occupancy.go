package effect24

import (
	"github.com/domino14/longeffect/bitops"
	"github.com/domino14/longeffect/effect8"
	"github.com/domino14/longeffect/geometry"
)

// FromOccupancy packs the occupancy of the 24 cells around sq. Wall bits
// are undefined; and with BoardMask(sq).
func FromOccupancy(o effect8.Occupancy, sq geometry.Square) Directions {
	w := o.Window(int(sq)+windowOffset, windowWidth)
	return Directions(bitops.Pext(w, selector))
}
