// Package bitops holds the portable bit tricks the neighbourhood
// extractors are built on: a parallel bit extract and a SWAR byte
// comparison that turns eight bytes into eight flag bits.
package bitops

import (
	"encoding/binary"
	"math/bits"
)

const (
	lowBits  = 0x0101010101010101
	highBits = 0x8080808080808080
	// gathers bit 7 of every byte (after a >>7) into the top byte.
	gatherMagic = 0x0102040810204080
)

// Pext extracts the bits of x selected by mask and packs them into the
// low bits of the result, lowest selected bit first. It is the software
// equivalent of the BMI2 PEXT instruction.
func Pext(x, mask uint64) uint64 {
	var r uint64
	for b := 0; mask != 0; b++ {
		low := mask & -mask
		if x&low != 0 {
			r |= 1 << b
		}
		mask ^= low
	}
	return r
}

// Pdep is the inverse of Pext: it scatters the low bits of x to the
// positions set in mask.
func Pdep(x, mask uint64) uint64 {
	var r uint64
	for b := 0; mask != 0; b++ {
		low := mask & -mask
		if x&(1<<b) != 0 {
			r |= low
		}
		mask ^= low
	}
	return r
}

// Selector builds a mask with one bit set at each of the given positions.
func Selector(positions ...int) uint64 {
	var m uint64
	for _, p := range positions {
		m |= 1 << uint(p)
	}
	return m
}

// GreaterThan8 compares the eight little-endian bytes of w against t and
// returns one bit per byte, bit i set when byte i > t. t must be below 127.
func GreaterThan8(w uint64, t byte) uint8 {
	rep := uint64(t+1) * lowBits
	// For bytes under 0x80, (b|0x80)-(t+1) keeps its high bit exactly when
	// b >= t+1, and never borrows from the next byte. Bytes with the high
	// bit already set are above t anyway.
	flags := (((w | highBits) - rep) | w) & highBits
	return uint8(((flags >> 7) * gatherMagic) >> 56)
}

// GreaterThan compares every byte of buf against t and returns one bit per
// byte, bit i set when buf[i] > t. len(buf) must be a multiple of 8 and at
// most 64.
func GreaterThan(buf []byte, t byte) uint64 {
	var r uint64
	for i := 0; i+8 <= len(buf); i += 8 {
		r |= uint64(GreaterThan8(binary.LittleEndian.Uint64(buf[i:]), t)) << uint(i)
	}
	return r
}

// RoundUp8 rounds n up to a multiple of eight.
func RoundUp8(n int) int {
	return (n + 7) &^ 7
}

// PopLSB clears the lowest set bit of *x and returns its index. The
// result is 64 if *x was zero.
func PopLSB(x *uint64) int {
	i := bits.TrailingZeros64(*x)
	*x &= *x - 1
	return i
}
