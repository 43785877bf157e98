// Package options contains the program options.
package options

import "github.com/retroenv/prghex/internal/prg"

// Parameters contains file path options.
type Parameters struct {
	Input  string // file to convert
	Output string // output file, derived from the input name if empty
	Batch  string // glob pattern of files to convert
}

// Flags contains behavior options.
type Flags struct {
	LoadAddress    uint16 // load address written to PRG files
	KeepAddress    bool   // use the address of the source image as PRG load address
	StrictChecksum bool   // verify Intel HEX record checksums
	Verify         bool   // re-read the output and compare it to the converted image
	Debug          bool
	Quiet          bool
}

// Program options of the converter.
type Program struct {
	Parameters
	Flags
}

// New returns program options initialized with the defaults.
func New() Program {
	return Program{
		Flags: Flags{
			LoadAddress: prg.DefaultLoadAddress,
		},
	}
}
