package program

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemoryImageGapFill(t *testing.T) {
	mem := NewMemory()
	mem.SetBytes(0, []byte{0xAA, 0xBB})
	mem.SetBytes(5, []byte{0xCC})

	img, err := mem.Image()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0), img.Address)
	assert.Equal(t, []byte{0xAA, 0xBB, 0x00, 0x00, 0x00, 0xCC}, img.Data)
}

func TestMemoryLastWriteWins(t *testing.T) {
	mem := NewMemory()
	mem.SetBytes(0x1000, []byte{1, 2, 3})
	mem.SetBytes(0x1001, []byte{0xAA})

	img, err := mem.Image()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1000), img.Address)
	assert.Equal(t, []byte{1, 0xAA, 3}, img.Data)
}

func TestMemoryBounds(t *testing.T) {
	mem := NewMemory()
	_, _, ok := mem.Bounds()
	assert.False(t, ok)

	mem.SetBytes(0x2000, []byte{1})
	mem.SetBytes(0x0801, []byte{2})
	mem.SetBytes(0x10005, []byte{3})

	low, high, ok := mem.Bounds()
	assert.True(t, ok)
	assert.Equal(t, uint32(0x0801), low)
	assert.Equal(t, uint32(0x10005), high)
}

func TestMemoryImageEmpty(t *testing.T) {
	img, err := NewMemory().Image()
	assert.NoError(t, err)
	assert.True(t, img.Empty())
	assert.Equal(t, 0, img.Len())
}

func TestMemoryImageStartOutOfRange(t *testing.T) {
	mem := NewMemory()
	mem.SetBytes(0x10000, []byte{1})

	_, err := mem.Image()
	assert.Error(t, err)

	var addrErr *AddressError
	assert.True(t, errors.As(err, &addrErr))
	assert.Equal(t, uint32(0x10000), addrErr.Address)
}
