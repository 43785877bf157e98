// Package detector handles file format detection and output file naming.
package detector

import (
	"path/filepath"
	"strings"
)

// Format is a file format supported by the converter.
type Format string

// Supported formats.
const (
	FormatUnknown Format = ""
	FormatHex     Format = "hex"
	FormatPrg     Format = "prg"
	FormatSrec    Format = "srec"
)

func (f Format) String() string {
	if f == FormatUnknown {
		return "unknown"
	}
	return string(f)
}

// Detect determines the format of a file from its extension, ignoring case.
func Detect(filename string) Format {
	ext := strings.ToLower(extension(filename))
	switch ext {
	case ".hex":
		return FormatHex
	case ".prg":
		return FormatPrg
	case ".s19", ".s28", ".s37", ".srec", ".mot":
		return FormatSrec
	default:
		return FormatUnknown
	}
}

// Target returns the format that a file of the given format is converted to.
func Target(format Format) Format {
	switch format {
	case FormatHex, FormatSrec:
		return FormatPrg
	case FormatPrg:
		return FormatHex
	default:
		return FormatUnknown
	}
}

// OutputFilename returns the name of the converted file: the input name with
// its extension replaced by the extension of the target format. The directory
// and base name are kept. An empty string is returned for unknown formats.
func OutputFilename(inputFile string) string {
	target := Target(Detect(inputFile))
	if target == FormatUnknown {
		return ""
	}

	ext := extension(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + "." + string(target)
}

// extension returns the extension of the base name of the file, including the
// dot. Leading dots of the base name do not start an extension, so a name
// like ".hex" has none.
func extension(filename string) string {
	base := strings.TrimLeft(filepath.Base(filename), ".")
	idx := strings.LastIndexByte(base, '.')
	if idx < 0 {
		return ""
	}
	return base[idx:]
}
