// Package fileprocessor handles processing of single files and batches.
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/prghex/internal/options"
	"github.com/retroenv/prghex/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ErrConversionFailed is returned if at least one file could not be converted.
var ErrConversionFailed = errors.New("conversion failed")

// ProcessFiles converts all files selected by the options. Files with an
// unknown extension are skipped with a warning. Conversion errors are logged
// and processing continues with the next file.
func ProcessFiles(ctx context.Context, logger *log.Logger, opts options.Program) error {
	files, err := GetFilesToProcess(opts)
	if err != nil {
		return err
	}

	pipe := pipeline.New(logger)
	var failed int

	for _, file := range files {
		fileOpts := opts
		fileOpts.Input = file
		if opts.Batch != "" {
			fileOpts.Output = ""
		}

		res, err := pipe.Execute(ctx, fileOpts)
		switch {
		case err == nil:
			logger.Info("Converted",
				log.String("input", res.Input),
				log.String("output", res.Output),
				log.Hex("load_address", res.LoadAddress),
				log.Int("size", res.Image.Len()))

		case errors.Is(err, context.Canceled):
			logger.Info("Operation cancelled")
			return err

		case errors.Is(err, pipeline.ErrUnknownExtension):
			logger.Warn("Unknown extension, use .hex or .prg", log.String("file", file))

		default:
			logger.Error("Converting failed", log.String("file", file), log.Err(err))
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrConversionFailed, failed, len(files))
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts options.Program) ([]string, error) {
	if opts.Batch == "" {
		return []string{opts.Input}, nil
	}

	matches, err := filepath.Glob(opts.Batch)
	if err != nil {
		return nil, fmt.Errorf("globbing batch pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match batch pattern '%s'", opts.Batch)
	}
	return matches, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("prghex", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", log.String("date", date))
	}
}
