package program

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestImageFits(t *testing.T) {
	tests := []struct {
		name string
		img  Image
		want bool
	}{
		{name: "empty", img: Image{Address: 0xFFFF}, want: true},
		{name: "last byte", img: Image{Address: 0xFFFF, Data: []byte{1}}, want: true},
		{name: "full space", img: Image{Data: make([]byte, AddressSpaceSize)}, want: true},
		{name: "overflow", img: Image{Address: 0xFFFF, Data: []byte{1, 2}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.img.Fits())
		})
	}
}

func TestImageEnd(t *testing.T) {
	img := Image{Address: 0xFFF0, Data: make([]byte, 0x20)}
	assert.Equal(t, 0x10010, img.End())
}

func TestImageEqual(t *testing.T) {
	a := Image{Address: 0x0801, Data: []byte{1, 2}}

	assert.True(t, a.Equal(Image{Address: 0x0801, Data: []byte{1, 2}}))
	assert.False(t, a.Equal(Image{Address: 0x0800, Data: []byte{1, 2}}))
	assert.False(t, a.Equal(Image{Address: 0x0801, Data: []byte{1}}))
	assert.True(t, Image{Address: 1}.Equal(Image{Address: 2, Data: []byte{}}))
}

func TestFormatError(t *testing.T) {
	reason := errors.New("bad digit") //nolint:err113 // test error

	err := NewFormatError(7, reason)
	assert.Equal(t, "format error at line 7: bad digit", err.Error())
	assert.True(t, errors.Is(err, ErrFormat))
	assert.True(t, errors.Is(err, reason))

	err = NewFormatError(0, reason)
	assert.Equal(t, "format error: bad digit", err.Error())
}
