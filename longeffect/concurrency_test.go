package longeffect

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Search threads each own their board; the shared tables are read-only
// after Init.
func TestPerGoroutineBoards(t *testing.T) {
	proto := NewEffectNumBoard()
	randomFill(proto)

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		w := w
		g.Go(func() error {
			b := proto.Clone()
			for iter := 0; iter < 50; iter++ {
				randomFill(b)
				for _, sq := range b.Geometry().Squares() {
					if got, want := b.Around8Masked(sq), bruteAround(b, sq, 0); got != want {
						return fmt.Errorf("worker %d: around8 on %d = %08b, want %08b", w, sq, got, want)
					}
					if got, want := b.Around8GreaterThanOne(sq)&b.BoardMask(sq), bruteAround(b, sq, 1); got != want {
						return fmt.Errorf("worker %d: around8>1 on %d = %08b, want %08b", w, sq, got, want)
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
