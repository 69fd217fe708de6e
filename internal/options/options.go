// Package options contains the program options.
package options

import (
	"github.com/retroenv/retrogolib/set"
)

// Parameters contains file path and address options.
type Parameters struct {
	Input string `arg:"positional" usage:"CHIP-8 program file"`
	Break string `flag:"break" usage:"comma separated breakpoint addresses (e.g. 200,2A4)"`
}

// Flags contains behavior options.
type Flags struct {
	Speed    int  `flag:"speed" usage:"instructions executed per frame" default:"27"`
	Scale    int  `flag:"scale" usage:"window size of a single pixel" default:"20"`
	Frames   int  `flag:"frames" usage:"number of frames to run in headless mode (0: unlimited)"`
	Headless bool `flag:"headless" usage:"run without window and print the screen on exit"`
	Disasm   bool `flag:"disasm" usage:"print a disassembly listing of the program and exit"`
	Trace    bool `flag:"trace" usage:"log every executed instruction, enables debug logging"`
	Mute     bool `flag:"mute" usage:"disable the sound timer tone"`
	Debug    bool `flag:"debug" usage:"enable debug logging"`
	Quiet    bool `flag:"q" usage:"quiet mode"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags

	Breakpoints set.Set[uint16] // parsed breakpoint addresses
}
