package program

// Memory is a sparse address to byte mapping that collects the data bytes of
// records before they are compacted into an Image.
type Memory struct {
	data map[uint32]byte
}

// NewMemory returns an empty memory.
func NewMemory() *Memory {
	return &Memory{
		data: map[uint32]byte{},
	}
}

// SetBytes stores consecutive bytes starting at the given address.
func (m *Memory) SetBytes(address uint32, data []byte) {
	for i, b := range data {
		m.data[address+uint32(i)] = b
	}
}

// Bounds returns the lowest and highest written address.
// ok is false if the memory is empty.
func (m *Memory) Bounds() (low, high uint32, ok bool) {
	if len(m.data) == 0 {
		return 0, 0, false
	}

	first := true
	for address := range m.data {
		if first {
			low, high = address, address
			first = false
			continue
		}
		low = min(low, address)
		high = max(high, address)
	}
	return low, high, true
}

// Image compacts the memory into a contiguous image spanning the lowest to
// the highest written address. Addresses that were never written are
// filled with zero. An empty memory results in an empty image.
func (m *Memory) Image() (Image, error) {
	low, high, ok := m.Bounds()
	if !ok {
		return Image{}, nil
	}
	if low > MaxAddress {
		return Image{}, &AddressError{Address: low}
	}

	data := make([]byte, high-low+1)
	for address, b := range m.data {
		data[address-low] = b
	}

	return Image{
		Address: uint16(low),
		Data:    data,
	}, nil
}
