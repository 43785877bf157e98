package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/retroenv/prghex/internal/prg"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseArgs(t *testing.T) {
	var out bytes.Buffer
	opts, err := ParseArgs(context.Background(), []string{"prghex", "game.hex"}, &out)
	assert.NoError(t, err)
	assert.Equal(t, "game.hex", opts.Input)
	assert.Equal(t, "", opts.Output)
	assert.Equal(t, prg.DefaultLoadAddress, opts.LoadAddress)
	assert.False(t, opts.KeepAddress)
	assert.False(t, opts.StrictChecksum)
	assert.False(t, opts.Verify)
}

func TestParseArgsFlags(t *testing.T) {
	args := []string{"prghex", "-o", "out.prg", "-l", "$C000", "-keep-address", "-strict", "-verify", "-debug", "-q", "game.hex"}

	var out bytes.Buffer
	opts, err := ParseArgs(context.Background(), args, &out)
	assert.NoError(t, err)
	assert.Equal(t, "game.hex", opts.Input)
	assert.Equal(t, "out.prg", opts.Output)
	assert.Equal(t, uint16(0xC000), opts.LoadAddress)
	assert.True(t, opts.KeepAddress)
	assert.True(t, opts.StrictChecksum)
	assert.True(t, opts.Verify)
	assert.True(t, opts.Debug)
	assert.True(t, opts.Quiet)
}

func TestParseArgsBatch(t *testing.T) {
	var out bytes.Buffer
	opts, err := ParseArgs(context.Background(), []string{"prghex", "-batch", "*.hex"}, &out)
	assert.NoError(t, err)
	assert.Equal(t, "*.hex", opts.Batch)
	assert.Equal(t, "", opts.Input)
}

func TestParseArgsUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: []string{"prghex"}},
		{name: "too many arguments", args: []string{"prghex", "a.hex", "b.hex"}},
		{name: "batch with argument", args: []string{"prghex", "-batch", "*.hex", "a.hex"}},
		{name: "batch with output", args: []string{"prghex", "-batch", "*.hex", "-o", "x.prg"}},
		{name: "invalid load address", args: []string{"prghex", "-l", "$10000", "a.hex"}},
		{name: "unknown flag", args: []string{"prghex", "-unknown", "a.hex"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := ParseArgs(context.Background(), tt.args, &out)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr), err.Error())

			var usage bytes.Buffer
			usageErr.ShowUsage(&usage)
			assert.Contains(t, usage.String(), "usage: prghex")
		})
	}
}

func TestParseAddress(t *testing.T) {
	tests := []struct {
		input   string
		want    uint16
		wantErr bool
	}{
		{input: "$0801", want: 0x0801},
		{input: "0x0801", want: 0x0801},
		{input: "0XC000", want: 0xC000},
		{input: "2049", want: 0x0801},
		{input: " $ffff ", want: 0xFFFF},
		{input: "0", want: 0},
		{input: "65536", wantErr: true},
		{input: "$", wantErr: true},
		{input: "0x", wantErr: true},
		{input: "-1", wantErr: true},
		{input: "basic", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAddress(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
