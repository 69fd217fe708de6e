package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// glyphProgram draws the glyph 0 in the top left corner and loops.
var glyphProgram = []byte{
	0x60, 0x00, // 200: ld V0, $00
	0xF0, 0x29, // 202: ld F, V0
	0xD0, 0x05, // 204: drw V0, V0, $5
	0x12, 0x06, // 206: jp $206
}

func TestRun_Disasm(t *testing.T) {
	opts := options.Program{}
	opts.Input = createTempFile(t, glyphProgram)
	opts.Disasm = true

	var out bytes.Buffer
	err := Run(context.Background(), log.NewTestLogger(t), opts, &out)
	assert.NoError(t, err)

	expected := `0200  6000  ld V0, $00
0202  F029  ld F, V0
0204  D005  drw V0, V0, $5
_label_0206:
0206  1206  jp $206
`
	assert.Equal(t, expected, out.String())
}

func TestRun_Headless(t *testing.T) {
	opts := options.Program{}
	opts.Input = createTempFile(t, glyphProgram)
	opts.Headless = true
	opts.Frames = 2
	opts.Speed = runner.DefaultSpeed

	var out bytes.Buffer
	err := Run(context.Background(), log.NewTestLogger(t), opts, &out)
	assert.NoError(t, err)

	lines := strings.Split(out.String(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "####."))
	assert.True(t, strings.HasPrefix(lines[1], "#..#."))
	assert.True(t, strings.HasPrefix(lines[4], "####."))
	assert.True(t, strings.HasPrefix(lines[5], "....."))
}

func TestRun_HeadlessBreakpoint(t *testing.T) {
	breakpoints := set.New[uint16]()
	breakpoints.Add(0x204)

	opts := options.Program{Breakpoints: breakpoints}
	opts.Input = createTempFile(t, glyphProgram)
	opts.Headless = true

	var out bytes.Buffer
	err := Run(context.Background(), log.NewTestLogger(t), opts, &out)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "....."))
}

func TestRun_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		opts := options.Program{}
		opts.Input = filepath.Join(t.TempDir(), "missing.ch8")

		err := Run(context.Background(), log.NewTestLogger(t), opts, &bytes.Buffer{})
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("empty file", func(t *testing.T) {
		opts := options.Program{}
		opts.Input = createTempFile(t, nil)

		err := Run(context.Background(), log.NewTestLogger(t), opts, &bytes.Buffer{})
		assert.True(t, errors.Is(err, loader.ErrEmptyProgram))
	})

	t.Run("fatal execution error", func(t *testing.T) {
		opts := options.Program{}
		opts.Input = createTempFile(t, []byte{0x00, 0xEE})
		opts.Headless = true

		err := Run(context.Background(), log.NewTestLogger(t), opts, &bytes.Buffer{})
		assert.Error(t, err)
		assert.ErrorContains(t, err, "running program")
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
