package ihex

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/prghex/internal/program"
)

// ReadOption configures the reading of an Intel HEX image.
type ReadOption func(*readConfig)

type readConfig struct {
	strictChecksum bool
}

// WithStrictChecksum enables the verification of record checksums.
// Without it the checksum field is decoded but its value is not checked.
func WithStrictChecksum() ReadOption {
	return func(c *readConfig) {
		c.strictChecksum = true
	}
}

// Read parses Intel HEX text and returns the contained data as contiguous image.
// Data records are applied in order, a later record overwrites bytes of an
// earlier one. Reading stops at the first end of file record, records of
// other types are skipped. Gaps between data records are filled with zero.
// A malformed line aborts the read with a *program.FormatError.
func Read(r io.Reader, opts ...ReadOption) (program.Image, error) {
	var cfg readConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	mem := program.NewMemory()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rec, err := ParseLine(line)
		if err != nil {
			return program.Image{}, withLine(err, lineNum)
		}

		if cfg.strictChecksum && !rec.Valid() {
			return program.Image{}, program.NewFormatError(lineNum,
				fmt.Errorf("%w: expected %02X but found %02X", ErrChecksum, rec.Sum(), rec.Checksum))
		}

		switch rec.Type {
		case DataRecord:
			mem.SetBytes(uint32(rec.Address), rec.Data)
		case EOFRecord:
			return mem.Image()
		}
	}

	if err := scanner.Err(); err != nil {
		return program.Image{}, fmt.Errorf("reading line %d: %w", lineNum+1, err)
	}

	return mem.Image()
}

// withLine sets the line number of a format error.
func withLine(err error, line int) error {
	var formatErr *program.FormatError
	if errors.As(err, &formatErr) {
		formatErr.Line = line
	}
	return err
}
