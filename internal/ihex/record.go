// Package ihex implements reading and writing of Intel HEX images.
package ihex

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/retroenv/prghex/internal/program"
)

// RecordType is the type field of an Intel HEX record.
type RecordType byte

// Record types that are interpreted, all other types are skipped on read.
const (
	DataRecord RecordType = 0x00
	EOFRecord  RecordType = 0x01
)

const (
	// StartCode marks the beginning of every record line.
	StartCode = ':'

	// DataRecordSize is the maximum number of data bytes per written record.
	DataRecordSize = 16

	// EOFLine is the fixed end of file record.
	EOFLine = ":00000001FF"

	headerLength = 9 // start code, byte count, address and record type
	minLength    = headerLength + 2
)

// Errors returned wrapped in a *program.FormatError.
var (
	ErrMissingMarker   = errors.New("line does not start with ':'")
	ErrInvalidHex      = errors.New("invalid hex digit")
	ErrShortLine       = errors.New("line too short")
	ErrChecksum        = errors.New("checksum mismatch")
	ErrAddressOverflow = errors.New("image exceeds the 16 bit address space")
)

// Record is a single decoded line of an Intel HEX file.
type Record struct {
	ByteCount byte
	Address   uint16
	Type      RecordType
	Data      []byte
	Checksum  byte
}

// Sum returns the checksum that matches the content of the record:
// the two's complement of the sum of all fields preceding the checksum.
func (r Record) Sum() byte {
	sum := r.ByteCount + byte(r.Address>>8) + byte(r.Address) + byte(r.Type)
	for _, b := range r.Data {
		sum += b
	}
	return -sum
}

// Valid returns whether the checksum field matches the record content.
func (r Record) Valid() bool {
	return r.Checksum == r.Sum()
}

// appendText appends the uppercase text form of the record to buf.
func (r Record) appendText(buf []byte) []byte {
	buf = append(buf, StartCode)
	buf = appendHexByte(buf, r.ByteCount)
	buf = appendHexByte(buf, byte(r.Address>>8))
	buf = appendHexByte(buf, byte(r.Address))
	buf = appendHexByte(buf, byte(r.Type))
	for _, b := range r.Data {
		buf = appendHexByte(buf, b)
	}
	return appendHexByte(buf, r.Checksum)
}

const upperHexDigits = "0123456789ABCDEF"

func appendHexByte(buf []byte, b byte) []byte {
	return append(buf, upperHexDigits[b>>4], upperHexDigits[b&0x0F])
}

// ParseLine decodes a single record line. Surrounding white space has to be
// removed by the caller. The checksum field is decoded but not verified.
// Characters following the checksum field are ignored.
func ParseLine(line string) (Record, error) {
	if len(line) == 0 || line[0] != StartCode {
		return Record{}, program.NewFormatError(0, ErrMissingMarker)
	}
	if len(line) < minLength {
		return Record{}, program.NewFormatError(0,
			fmt.Errorf("%w: %d characters, need at least %d", ErrShortLine, len(line), minLength))
	}

	count, err := decodeHex(line[1:3])
	if err != nil {
		return Record{}, err
	}

	length := minLength + 2*int(count[0])
	if len(line) < length {
		return Record{}, program.NewFormatError(0,
			fmt.Errorf("%w: %d characters, byte count %d needs %d", ErrShortLine, len(line), count[0], length))
	}

	fields, err := decodeHex(line[1:length])
	if err != nil {
		return Record{}, err
	}

	return Record{
		ByteCount: fields[0],
		Address:   uint16(fields[1])<<8 | uint16(fields[2]),
		Type:      RecordType(fields[3]),
		Data:      fields[4 : len(fields)-1],
		Checksum:  fields[len(fields)-1],
	}, nil
}

func decodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, program.NewFormatError(0, fmt.Errorf("%w: %s", ErrInvalidHex, err))
	}
	return b, nil
}
