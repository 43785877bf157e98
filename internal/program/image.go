// Package program contains the memory image model shared by all codecs.
package program

import "bytes"

// MaxAddress is the highest address of the 16 bit address space.
const MaxAddress = 0xFFFF

// AddressSpaceSize is the size of the 16 bit address space.
const AddressSpaceSize = MaxAddress + 1

// Image is a contiguous block of bytes located at a start address.
type Image struct {
	Address uint16 // address of the first data byte
	Data    []byte
}

// Len returns the number of bytes of the image.
func (img Image) Len() int {
	return len(img.Data)
}

// Empty returns whether the image contains no bytes.
func (img Image) Empty() bool {
	return len(img.Data) == 0
}

// End returns the first address following the image.
// The result can exceed the 16 bit address space.
func (img Image) End() int {
	return int(img.Address) + len(img.Data)
}

// Fits returns whether every byte of the image is addressable
// within the 16 bit address space.
func (img Image) Fits() bool {
	return img.End() <= AddressSpaceSize
}

// Equal returns whether both images contain the same bytes at the same
// address. Empty images are equal regardless of their address.
func (img Image) Equal(other Image) bool {
	if img.Empty() && other.Empty() {
		return true
	}
	return img.Address == other.Address && bytes.Equal(img.Data, other.Data)
}
