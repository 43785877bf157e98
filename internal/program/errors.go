package program

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by every FormatError using errors.Is.
var ErrFormat = errors.New("format error")

// FormatError describes malformed input of a codec.
type FormatError struct {
	Line int   // 1-based line number for text formats, 0 if not applicable
	Err  error // underlying reason
}

// NewFormatError returns a new format error for the given line.
func NewFormatError(line int, err error) *FormatError {
	return &FormatError{Line: line, Err: err}
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("format error at line %d: %s", e.Line, e.Err)
	}
	return fmt.Sprintf("format error: %s", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is reports ErrFormat as a match so that callers can test for any format error.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// AddressError is returned when an image does not start inside the 16 bit address space.
type AddressError struct {
	Address uint32
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("start address $%X exceeds the 16 bit address space", e.Address)
}
