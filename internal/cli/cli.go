// Package cli handles command line interface logic
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/retroenv/prghex/internal/options"
	"github.com/retroenv/prghex/internal/prg"
	urfave "github.com/urfave/cli/v3"
)

// ErrHelpShown is returned when the help output was requested and printed.
var ErrHelpShown = errors.New("help shown")

// UsageError represents an error that should show usage information
type UsageError struct {
	flags []urfave.Flag
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage line and all flags.
func (e *UsageError) ShowUsage(w io.Writer) {
	if e.msg != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", e.msg)
	}
	_, _ = fmt.Fprintf(w, "usage: prghex [options] <file.hex|file.prg|file.s19>\n\n")
	for _, flag := range e.flags {
		_, _ = fmt.Fprintf(w, "   %s\n", flag)
	}
	_, _ = fmt.Fprintln(w)
}

// ParseArgs parses the command line arguments, including the program name
// as first element, and returns the program options.
func ParseArgs(ctx context.Context, args []string, output io.Writer) (options.Program, error) {
	opts := options.New()
	flags := optionFlags()
	actionCalled := false

	cmd := &urfave.Command{
		Name:      "prghex",
		Usage:     "convert between Intel HEX and Commodore PRG files",
		ArgsUsage: "<file.hex|file.prg|file.s19>",
		Flags:     flags,
		Writer:    output,
		ErrWriter: output,
		OnUsageError: func(_ context.Context, _ *urfave.Command, err error, _ bool) error {
			return &UsageError{flags: flags, msg: err.Error()}
		},
		ExitErrHandler: func(context.Context, *urfave.Command, error) {},
		Action: func(_ context.Context, cmd *urfave.Command) error {
			actionCalled = true
			return readOptions(cmd, flags, &opts)
		},
	}

	if err := cmd.Run(ctx, args); err != nil {
		return opts, err
	}
	if !actionCalled {
		return opts, ErrHelpShown
	}
	return opts, nil
}

func optionFlags() []urfave.Flag {
	return []urfave.Flag{
		&urfave.StringFlag{
			Name:  "o",
			Usage: "name of the output file, derived from the input file name if not given",
		},
		&urfave.StringFlag{
			Name:  "l",
			Value: fmt.Sprintf("$%04X", prg.DefaultLoadAddress),
			Usage: "load address of written PRG files, as $0801, 0x0801 or 2049",
		},
		&urfave.BoolFlag{
			Name:  "keep-address",
			Usage: "use the address of the HEX or S-record data as PRG load address",
		},
		&urfave.BoolFlag{
			Name:  "strict",
			Usage: "verify the checksums of Intel HEX records",
		},
		&urfave.BoolFlag{
			Name:  "verify",
			Usage: "verify the written output by reading it back and comparing it to the converted data",
		},
		&urfave.StringFlag{
			Name:  "batch",
			Usage: "process a batch of given path and file mask with automatic output file naming, for example *.hex",
		},
		&urfave.BoolFlag{
			Name:  "debug",
			Usage: "enable debugging options for extended logging",
		},
		&urfave.BoolFlag{
			Name:  "q",
			Usage: "perform operations quietly",
		},
	}
}

func readOptions(cmd *urfave.Command, flags []urfave.Flag, opts *options.Program) error {
	opts.Output = cmd.String("o")
	opts.Batch = cmd.String("batch")
	opts.KeepAddress = cmd.Bool("keep-address")
	opts.StrictChecksum = cmd.Bool("strict")
	opts.Verify = cmd.Bool("verify")
	opts.Debug = cmd.Bool("debug")
	opts.Quiet = cmd.Bool("q")

	if err := validateArgs(cmd.Args().Slice(), opts); err != nil {
		return &UsageError{flags: flags, msg: err.Error()}
	}
	if opts.Batch == "" {
		opts.Input = cmd.Args().First()
	}

	address, err := ParseAddress(cmd.String("l"))
	if err != nil {
		return &UsageError{flags: flags, msg: err.Error()}
	}
	opts.LoadAddress = address

	return nil
}

// validateArgs checks the number of positional arguments.
func validateArgs(args []string, opts *options.Program) error {
	if opts.Batch != "" {
		if len(args) > 0 {
			return fmt.Errorf("unexpected argument %s in batch mode", args[0])
		}
		if opts.Output != "" {
			return errors.New("output file name can not be set in batch mode")
		}
		return nil
	}

	switch len(args) {
	case 0:
		return errors.New("no input file given")
	case 1:
		return nil
	default:
		return fmt.Errorf("expected 1 input file but got %d arguments", len(args))
	}
}

// ParseAddress parses a 16 bit address given in decimal, with a $ prefix
// or with a 0x prefix for hexadecimal notation.
func ParseAddress(s string) (uint16, error) {
	digits := strings.TrimSpace(s)
	base := 10
	switch {
	case strings.HasPrefix(digits, "$"):
		digits = digits[1:]
		base = 16
	case strings.HasPrefix(digits, "0x"), strings.HasPrefix(digits, "0X"):
		digits = digits[2:]
		base = 16
	}

	value, err := strconv.ParseUint(digits, base, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address '%s': %w", s, err)
	}
	return uint16(value), nil
}
