package detector

import (
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{filename: "foo.hex", want: FormatHex},
		{filename: "FOO.HEX", want: FormatHex},
		{filename: "foo.Hex", want: FormatHex},
		{filename: "foo.prg", want: FormatPrg},
		{filename: "foo.PRG", want: FormatPrg},
		{filename: "game.s19", want: FormatSrec},
		{filename: "game.S28", want: FormatSrec},
		{filename: "game.s37", want: FormatSrec},
		{filename: "game.srec", want: FormatSrec},
		{filename: "game.mot", want: FormatSrec},
		{filename: "foo.txt", want: FormatUnknown},
		{filename: "foo", want: FormatUnknown},
		{filename: "hex", want: FormatUnknown},
		{filename: "foo.hex.bak", want: FormatUnknown},
		{filename: ".hex", want: FormatUnknown},
		{filename: "..prg", want: FormatUnknown},
		{filename: filepath.Join("dir", ".hex"), want: FormatUnknown},
		{filename: ".config.hex", want: FormatHex},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.filename))
		})
	}
}

func TestOutputFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "foo.hex", want: "foo.prg"},
		{input: "foo.PRG", want: "foo.hex"},
		{input: "foo.HEX", want: "foo.prg"},
		{input: "foo.txt", want: ""},
		{input: "game.s19", want: "game.prg"},
		{input: "my.game.hex", want: "my.game.prg"},
		{input: ".hex", want: ""},
		{input: filepath.Join("dir", ".prg"), want: ""},
		{input: ".demo.prg", want: ".demo.hex"},
		{input: filepath.Join("dir", "sub", "demo.prg"), want: filepath.Join("dir", "sub", "demo.hex")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputFilename(tt.input))
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "hex", FormatHex.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}
