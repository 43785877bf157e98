package ihex

import (
	"fmt"
	"io"

	"github.com/retroenv/prghex/internal/program"
)

// Write outputs the image as Intel HEX data records of up to DataRecordSize
// bytes in ascending address order, followed by the end of file record.
// An empty image results in only the end of file record.
//
// Records carry 16 bit addresses and no extended address records are
// written, so an image that runs past $FFFF is rejected with
// ErrAddressOverflow before anything is written to w. Other errors are
// write errors of w.
func Write(w io.Writer, img program.Image) error {
	if !img.Fits() {
		return fmt.Errorf("%w: $%04X + %d bytes", ErrAddressOverflow, img.Address, img.Len())
	}

	buf := make([]byte, 0, minLength+2*DataRecordSize+1)

	for offset := 0; offset < img.Len(); offset += DataRecordSize {
		end := min(offset+DataRecordSize, img.Len())
		rec := Record{
			ByteCount: byte(end - offset),
			Address:   img.Address + uint16(offset),
			Type:      DataRecord,
			Data:      img.Data[offset:end],
		}
		rec.Checksum = rec.Sum()

		buf = rec.appendText(buf[:0])
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing record at $%04X: %w", rec.Address, err)
		}
	}

	if _, err := io.WriteString(w, EOFLine+"\n"); err != nil {
		return fmt.Errorf("writing end of file record: %w", err)
	}
	return nil
}
