package bitop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(8, Width[uint8]())
	assert.Equal(16, Width[uint16]())
	assert.Equal(32, Width[uint32]())
	assert.Equal(64, Width[uint64]())
}

func TestMask(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(0), Mask[uint8](0))
	assert.Equal(uint8(0b111), Mask[uint8](3))
	assert.Equal(uint8(0xff), Mask[uint8](8))
	assert.Equal(uint8(0xff), Mask[uint8](12))
	assert.Equal(uint16(0x0fff), Mask[uint16](12))
	assert.Equal(uint64(0xffff_ffff_ffff_ffff), Mask[uint64](64))
}

func TestIsSet(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsSet(uint8(0b0100), 2))
	assert.False(IsSet(uint8(0b0100), 3))
	assert.True(IsSet(uint64(1)<<63, 63))
	assert.False(IsSet(uint64(0), 0))
}

func TestScatter(t *testing.T) {
	assert := assert.New(t)

	// Split across non-contiguous positions, low bit first.
	assert.Equal(uint8(0b0000_1100), Scatter(uint8(0b0000_1100), 0b11))
	assert.Equal(uint8(0b0100_0010), Scatter(uint8(0b0100_0010), 0b11))
	assert.Equal(uint8(0b0100_0000), Scatter(uint8(0b0100_0010), 0b10))

	// Excess value bits are discarded.
	assert.Equal(uint8(1), Scatter(uint8(0b1), 0b111))

	// Surplus mask positions zero-fill.
	assert.Equal(uint8(0b0001_0000), Scatter(uint8(0b1111_0000), 0b01))
	assert.Equal(uint8(0), Scatter(uint8(0xff), 0))
}

func TestScatterIdentity(t *testing.T) {
	assert := assert.New(t)

	// A full-width mask passes any in-range value through unchanged.
	for k := range 17 {
		mask := Mask[uint16](k)
		for _, v := range []uint16{0, 1, 0x5a5a, 0xa5a5, 0xffff} {
			v &= mask
			assert.Equal(v, Scatter(mask, v), "k=%v v=%#x", k, v)
		}
	}
}

func TestToBytes(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]byte{0xef, 0xbe, 0xad, 0xde}, ToBytes(uint32(0xdeadbeef), 4))

	// Positions beyond the word width yield zero bytes.
	assert.Equal([]byte{0xef, 0xbe, 0xad, 0xde, 0, 0, 0, 0}, ToBytes(uint32(0xdeadbeef), 8))

	assert.Equal([]byte{0xad}, ToBytes(uint16(0xdead), 1))
	assert.Equal([]byte{}, ToBytes(uint8(0xff), 0))
}
