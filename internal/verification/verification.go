// Package verification verifies that a written output file decodes back to
// the converted image.
package verification

import (
	"errors"
	"fmt"
	"os"

	"github.com/marcinbor85/gohex"
	"github.com/retroenv/prghex/internal/prg"
	"github.com/retroenv/prghex/internal/program"
	"github.com/retroenv/retrogolib/log"
)

const maxLoggedMismatches = 10

var errMismatch = errors.New("output does not match converted image")

// VerifyHex re-reads a written Intel HEX file with an independent strict
// parser and compares its content to the expected image.
func VerifyHex(logger *log.Logger, path string, expected program.Image) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening file '%s': %w", path, err)
	}
	defer func() { _ = file.Close() }()

	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(file); err != nil {
		return fmt.Errorf("parsing written file '%s': %w", path, err)
	}

	segments := mem.GetDataSegments()
	if expected.Empty() {
		if len(segments) != 0 {
			return fmt.Errorf("%w: expected no data but found %d segments", errMismatch, len(segments))
		}
		return nil
	}

	if len(segments) != 1 {
		return fmt.Errorf("%w: expected 1 contiguous segment but found %d", errMismatch, len(segments))
	}

	segment := segments[0]
	if segment.Address != uint32(expected.Address) {
		return fmt.Errorf("%w: expected address $%04X but got $%04X", errMismatch, expected.Address, segment.Address)
	}

	return checkBufferEqual(logger, expected.Data, segment.Data)
}

// VerifyPrg re-reads a written PRG file and compares the load address and
// the program bytes.
func VerifyPrg(logger *log.Logger, path string, loadAddress uint16, expected program.Image) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file '%s': %w", path, err)
	}

	address, img, err := prg.Unwrap(data)
	if err != nil {
		return fmt.Errorf("decoding written file '%s': %w", path, err)
	}
	if address != loadAddress {
		return fmt.Errorf("%w: expected load address $%04X but got $%04X", errMismatch, loadAddress, address)
	}

	return checkBufferEqual(logger, expected.Data, img.Data)
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("%w: mismatched lengths, %d != %d", errMismatch, len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs <= maxLoggedMismatches {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d offset mismatches", errMismatch, diffs)
}
