// Package prg implements the Commodore PRG file format: a two byte little
// endian load address followed by the raw program bytes.
package prg

import (
	"errors"
	"fmt"

	"github.com/retroenv/prghex/internal/program"
)

// DefaultLoadAddress is the start of the BASIC program area of the Commodore 64.
const DefaultLoadAddress uint16 = 0x0801

// HeaderSize is the size of the load address header.
const HeaderSize = 2

// ErrTooShort is returned wrapped in a *program.FormatError for input
// that does not contain a complete load address header.
var ErrTooShort = errors.New("PRG too short")

// Wrap returns the PRG file content for the image using the given load address.
// The address of the image itself is not used.
func Wrap(img program.Image, loadAddress uint16) []byte {
	data := make([]byte, HeaderSize, HeaderSize+img.Len())
	data[0] = byte(loadAddress)
	data[1] = byte(loadAddress >> 8)
	return append(data, img.Data...)
}

// Unwrap splits PRG file content into the load address and the program image
// located at the load address.
func Unwrap(data []byte) (uint16, program.Image, error) {
	if len(data) < HeaderSize {
		return 0, program.Image{}, program.NewFormatError(0,
			fmt.Errorf("%w: %d bytes, header needs %d", ErrTooShort, len(data), HeaderSize))
	}

	loadAddress := uint16(data[0]) | uint16(data[1])<<8
	img := program.Image{
		Address: loadAddress,
		Data:    data[HeaderSize:],
	}
	return loadAddress, img, nil
}
