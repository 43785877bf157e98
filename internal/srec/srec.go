// Package srec reads Motorola S-record images as emitted by many 6502 cross assemblers.
package srec

import (
	"errors"
	"fmt"
	"io"

	motorola "github.com/akif999/srec"
	"github.com/retroenv/prghex/internal/program"
)

// ErrAddressRange is returned when data is located outside of the 16 bit address space.
var ErrAddressRange = errors.New("data outside of the 16 bit address space")

// Read parses S-record text and returns the contained data as contiguous image.
// Only S1, S2 and S3 data records are used, later records overwrite bytes of
// earlier ones and gaps are filled with zero.
func Read(r io.Reader) (program.Image, error) {
	sr := motorola.NewSrec()
	if err := sr.Parse(r); err != nil {
		return program.Image{}, program.NewFormatError(0, fmt.Errorf("parsing S-records: %w", err))
	}

	mem := program.NewMemory()
	for _, rec := range sr.Records {
		if !isDataRecord(rec.Srectype) {
			continue
		}

		end := uint64(rec.Address) + uint64(len(rec.Data))
		if end > program.AddressSpaceSize {
			return program.Image{}, program.NewFormatError(0,
				fmt.Errorf("%w: %s record at $%X with %d bytes", ErrAddressRange, rec.Srectype, rec.Address, len(rec.Data)))
		}

		mem.SetBytes(uint32(rec.Address), rec.Data)
	}

	return mem.Image()
}

func isDataRecord(typ string) bool {
	switch typ {
	case "S1", "S2", "S3":
		return true
	default:
		return false
	}
}
