// Package pipeline orchestrates the conversion workflow stages.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/prghex/internal/detector"
	"github.com/retroenv/prghex/internal/ihex"
	"github.com/retroenv/prghex/internal/loader"
	"github.com/retroenv/prghex/internal/options"
	"github.com/retroenv/prghex/internal/prg"
	"github.com/retroenv/prghex/internal/program"
	"github.com/retroenv/prghex/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnknownExtension is returned for input files that have no supported extension.
var ErrUnknownExtension = errors.New("unknown extension, use .hex or .prg")

// Result describes a finished conversion.
type Result struct {
	Input  string
	Output string
	From   detector.Format
	To     detector.Format

	LoadAddress uint16        // load address of the PRG side of the conversion
	Image       program.Image // converted program bytes
}

// Pipeline orchestrates the complete conversion workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new conversion pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute converts the input file of the options to the format that its
// extension maps to. The output file name is derived from the input file
// name unless set in the options.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) (Result, error) {
	format := detector.Detect(opts.Input)
	if format == detector.FormatUnknown {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownExtension, opts.Input)
	}

	if opts.Output == "" {
		opts.Output = detector.OutputFilename(opts.Input)
	}

	var res Result
	var err error
	switch format {
	case detector.FormatHex:
		res, err = p.HexToPrg(ctx, opts.Input, opts.Output, opts)
	case detector.FormatSrec:
		res, err = p.SrecToPrg(ctx, opts.Input, opts.Output, opts)
	case detector.FormatPrg:
		res, err = p.PrgToHex(ctx, opts.Input, opts.Output, opts)
	}
	if err != nil {
		return Result{}, err
	}

	if opts.Verify {
		if err := p.verify(res); err != nil {
			return res, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful", log.String("file", res.Output))
	}

	return res, nil
}

// HexToPrg converts an Intel HEX file to a PRG file.
func (p *Pipeline) HexToPrg(ctx context.Context, input, output string, opts options.Program) (Result, error) {
	opts.Input, opts.Output = input, output
	return p.convert(ctx, opts, detector.FormatHex)
}

// SrecToPrg converts a Motorola S-record file to a PRG file.
func (p *Pipeline) SrecToPrg(ctx context.Context, input, output string, opts options.Program) (Result, error) {
	opts.Input, opts.Output = input, output
	return p.convert(ctx, opts, detector.FormatSrec)
}

// PrgToHex converts a PRG file to an Intel HEX file. No output file is
// created if the input is not a valid PRG file.
func (p *Pipeline) PrgToHex(ctx context.Context, input, output string, opts options.Program) (Result, error) {
	opts.Input, opts.Output = input, output
	return p.convert(ctx, opts, detector.FormatPrg)
}

// convert runs the read phase completely before the output file is created.
func (p *Pipeline) convert(ctx context.Context, opts options.Program, from detector.Format) (Result, error) {
	p.logger.Debug("Converting file",
		log.String("input", opts.Input),
		log.String("output", opts.Output),
		log.Stringer("format", from))

	img, err := p.loader.Load(opts, from)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Input:  opts.Input,
		Output: opts.Output,
		From:   from,
		To:     detector.Target(from),
		Image:  img,
	}

	var data []byte
	switch res.To {
	case detector.FormatPrg:
		res.LoadAddress = opts.LoadAddress
		if opts.KeepAddress && !img.Empty() {
			res.LoadAddress = img.Address
		}
		data = prg.Wrap(img, res.LoadAddress)

	case detector.FormatHex:
		res.LoadAddress = img.Address
		var buf bytes.Buffer
		if err := ihex.Write(&buf, img); err != nil {
			return Result{}, fmt.Errorf("encoding Intel HEX: %w", err)
		}
		data = buf.Bytes()

	default:
		return Result{}, fmt.Errorf("unsupported input format '%s'", from)
	}

	p.logger.Debug("Read image",
		log.Hex("address", img.Address),
		log.Int("size", img.Len()),
		log.Hex("load_address", res.LoadAddress))

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := writeFile(opts.Output, data); err != nil {
		return Result{}, err
	}
	return res, nil
}

func (p *Pipeline) verify(res Result) error {
	switch res.To {
	case detector.FormatHex:
		return verification.VerifyHex(p.logger, res.Output, res.Image)
	case detector.FormatPrg:
		return verification.VerifyPrg(p.logger, res.Output, res.LoadAddress, res.Image)
	default:
		return fmt.Errorf("unsupported output format '%s'", res.To)
	}
}

// writeFile creates the output file and writes the data to it.
func writeFile(output string, data []byte) error {
	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", output, err)
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing file '%s': %w", output, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file '%s': %w", output, err)
	}
	return nil
}
