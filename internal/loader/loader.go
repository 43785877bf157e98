// Package loader handles input file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/prghex/internal/detector"
	"github.com/retroenv/prghex/internal/ihex"
	"github.com/retroenv/prghex/internal/options"
	"github.com/retroenv/prghex/internal/prg"
	"github.com/retroenv/prghex/internal/program"
	"github.com/retroenv/prghex/internal/srec"
)

// Loader handles loading input files from disk.
type Loader struct{}

// New creates a new input file loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the input file of the options completely and decodes it based
// on the given format. The image of a PRG file is located at its load address.
func (l *Loader) Load(opts options.Program, format detector.Format) (program.Image, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return program.Image{}, fmt.Errorf("opening file '%s': %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	img, err := l.LoadFrom(file, format, opts)
	if err != nil {
		return program.Image{}, fmt.Errorf("reading file '%s': %w", opts.Input, err)
	}
	return img, nil
}

// LoadFrom decodes the content of the reader based on the given format.
func (l *Loader) LoadFrom(r io.Reader, format detector.Format, opts options.Program) (program.Image, error) {
	switch format {
	case detector.FormatHex:
		var readOpts []ihex.ReadOption
		if opts.StrictChecksum {
			readOpts = append(readOpts, ihex.WithStrictChecksum())
		}
		return ihex.Read(r, readOpts...)

	case detector.FormatSrec:
		return srec.Read(r)

	case detector.FormatPrg:
		data, err := io.ReadAll(r)
		if err != nil {
			return program.Image{}, fmt.Errorf("reading data: %w", err)
		}
		_, img, err := prg.Unwrap(data)
		return img, err

	default:
		return program.Image{}, fmt.Errorf("unsupported input format '%s'", format)
	}
}
