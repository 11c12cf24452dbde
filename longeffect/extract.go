package longeffect

import (
	"fmt"

	"github.com/domino14/longeffect/bitops"
	"github.com/domino14/longeffect/effect8"
	"github.com/domino14/longeffect/geometry"
)

// Extractor selects how a square's 8-neighbour mask is computed from a
// byte board. Both strategies return the same raw mask on every square,
// including the undefined wall lanes.
type Extractor uint8

const (
	// WindowExtractor compares the whole window around the square eight
	// bytes at a time and then picks the neighbour bits out with a
	// parallel bit extract.
	WindowExtractor Extractor = iota
	// GatherExtractor tests the eight neighbour bytes one by one.
	GatherExtractor
)

// DefaultExtractor is used by boards created with the New functions.
var DefaultExtractor = WindowExtractor

func (e Extractor) String() string {
	switch e {
	case WindowExtractor:
		return "window"
	case GatherExtractor:
		return "gather"
	}
	return "unknown"
}

// ParseExtractor parses "window" or "gather".
func ParseExtractor(s string) (Extractor, error) {
	switch s {
	case "window":
		return WindowExtractor, nil
	case "gather":
		return GatherExtractor, nil
	}
	return 0, fmt.Errorf("unknown extractor %q", s)
}

// above returns the mask of neighbours of sq whose byte is greater than t.
// Wall lanes hold whatever the bytes across the edge (or padding) hold.
func (b *ByteBoard[T]) above(sq geometry.Square, t byte) effect8.Directions {
	if b.ext == GatherExtractor {
		return b.gather(sq, t)
	}
	start := b.pad + int(sq) + b.winOff
	flags := bitops.GreaterThan(b.buf[start:start+b.chunk], t)
	return effect8.Directions(bitops.Pext(flags, b.selector))
}

func (b *ByteBoard[T]) gather(sq geometry.Square, t byte) effect8.Directions {
	c := b.pad + int(sq)
	var m effect8.Directions
	for d, delta := range b.deltas {
		if b.buf[c+delta] > t {
			m |= 1 << d
		}
	}
	return m
}
