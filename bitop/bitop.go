// Package bitop provides the bit-level primitives behind instruction
// encoding: width masks, bit tests, mask-directed bit scattering, and
// little-endian byte extraction. All operations are generic over the
// unsigned machine word widths.
package bitop

import (
	"unsafe"
)

// Word is any unsigned integer usable as a machine word.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the bit width of W.
func Width[W Word]() int {
	var w W
	return int(unsafe.Sizeof(w)) * 8
}

// Mask returns the word with the low n bits set. Counts at or beyond the
// width of W saturate to all ones.
func Mask[W Word](n int) W {
	if n >= Width[W]() {
		return ^W(0)
	}
	return ^(^W(0) << n)
}

// IsSet reports whether bit at of val is set.
func IsSet[W Word](val W, at int) bool {
	return val>>at&1 == 1
}

// Scatter distributes the low bits of val into the set bit positions of
// mask, lowest to highest. Each set mask bit consumes one bit of val, so a
// multi-bit value can be split across non-contiguous positions while
// keeping its bit order. Value bits beyond the mask's population count are
// discarded; mask positions beyond the value's significant bits fill with
// zero.
func Scatter[W Word](mask, val W) W {
	var ret W
	for i := 0; mask != 0; i++ {
		if mask&1 == 1 {
			ret |= (val & 1) << i
			val >>= 1
		}
		mask >>= 1
	}
	return ret
}

// ToBytes extracts n bytes of val, least significant first. Positions
// beyond the width of W yield zero bytes.
func ToBytes[W Word](val W, n int) []byte {
	ret := make([]byte, 0, n)
	for range n {
		ret = append(ret, byte(val&0xff))
		val = W(uint64(val) >> 8)
	}
	return ret
}
