package cli

import (
	"errors"
	"flag"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"prog", "-speed", "12", "-break", "200,$2a4", "game.ch8"}

	opts, err := ParseFlags()
	assert.NoError(t, err)
	assert.Equal(t, "game.ch8", opts.Input)
	assert.Equal(t, 12, opts.Speed)
	assert.Len(t, opts.Breakpoints, 2)
	assert.True(t, opts.Breakpoints.Contains(0x200))
	assert.True(t, opts.Breakpoints.Contains(0x2A4))
}

//nolint:funlen // test functions can be long
func TestParseArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		want      options.Flags
		wantUsage bool
	}{
		{
			name: "default flags",
			args: []string{"prog", "game.ch8"},
			want: options.Flags{Speed: 27, Scale: 20},
		},
		{
			name: "headless with frames",
			args: []string{"prog", "-headless", "-frames", "120", "game.ch8"},
			want: options.Flags{Speed: 27, Scale: 20, Headless: true, Frames: 120},
		},
		{
			name: "disasm and debug flags",
			args: []string{"prog", "-disasm", "-debug", "-trace", "-q", "-mute", "game.ch8"},
			want: options.Flags{Speed: 27, Scale: 20, Disasm: true, Debug: true, Trace: true, Quiet: true, Mute: true},
		},
		{
			name:      "missing program file",
			args:      []string{"prog", "-headless"},
			wantUsage: true,
		},
		{
			name:      "argument after program file",
			args:      []string{"prog", "game.ch8", "-q"},
			wantUsage: true,
		},
		{
			name:      "multiple program files",
			args:      []string{"prog", "a.ch8", "b.ch8"},
			wantUsage: true,
		},
		{
			name:      "zero speed",
			args:      []string{"prog", "-speed", "0", "game.ch8"},
			wantUsage: true,
		},
		{
			name:      "speed too high",
			args:      []string{"prog", "-speed", "1001", "game.ch8"},
			wantUsage: true,
		},
		{
			name:      "invalid scale",
			args:      []string{"prog", "-scale", "0", "game.ch8"},
			wantUsage: true,
		},
		{
			name:      "frames without headless",
			args:      []string{"prog", "-frames", "10", "game.ch8"},
			wantUsage: true,
		},
		{
			name:      "disasm with headless",
			args:      []string{"prog", "-disasm", "-headless", "game.ch8"},
			wantUsage: true,
		},
		{
			name:      "invalid breakpoint",
			args:      []string{"prog", "-break", "20g", "game.ch8"},
			wantUsage: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseArgs(tt.args)
			if tt.wantUsage {
				var usageErr *UsageError
				assert.True(t, errors.As(err, &usageErr))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, opts.Flags)
			assert.Equal(t, "game.ch8", opts.Input)
		})
	}
}

func TestReadOptionFlags_Usage(t *testing.T) {
	flags := flag.NewFlagSet("prog", flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	trace := flags.Lookup("trace")
	assert.NotNil(t, trace)
	assert.Equal(t, "log every executed instruction, enables debug logging", trace.Usage)
}

func TestParseBreakpoints(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []uint16
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"single", "200", []uint16{0x200}, false},
		{"prefixes and spaces", "$2A4, 0x300,0X3fe", []uint16{0x2A4, 0x300, 0x3FE}, false},
		{"duplicates", "200,200", []uint16{0x200}, false},
		{"last address", "FFF", []uint16{0xFFF}, false},
		{"outside of memory", "1000", nil, true},
		{"not hexadecimal", "xyz", nil, true},
		{"empty field", "200,", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakpoints, err := parseBreakpoints(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, breakpoints, len(tt.want))
			for _, address := range tt.want {
				assert.True(t, breakpoints.Contains(address))
			}
		})
	}
}
