// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/set"
)

const (
	maxSpeed = 1000
	maxScale = 100
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args)
}

func parseArgs(osArgs []string) (options.Program, error) {
	flags := flag.NewFlagSet(osArgs[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(osArgs[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	opts.Input = args[0]

	if err := validateOptions(opts); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	opts.Breakpoints, err = parseBreakpoints(opts.Break)
	if err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: retrochip8 [options] <program file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("Unexpected arguments %s, only a single program file is supported", strings.Join(args[1:], " ")),
		}
	}
	return nil
}

// validateOptions checks the value ranges and combinations of options
func validateOptions(opts options.Program) error {
	switch {
	case opts.Speed < 1 || opts.Speed > maxSpeed:
		return fmt.Errorf("invalid speed %d, valid range is 1-%d", opts.Speed, maxSpeed)
	case opts.Scale < 1 || opts.Scale > maxScale:
		return fmt.Errorf("invalid scale %d, valid range is 1-%d", opts.Scale, maxScale)
	case opts.Frames < 0:
		return fmt.Errorf("invalid frame count %d", opts.Frames)
	case opts.Frames > 0 && !opts.Headless:
		return errors.New("frame count is only supported in headless mode")
	case opts.Disasm && opts.Headless:
		return errors.New("disassembly and headless mode can not be combined")
	}
	return nil
}

// parseBreakpoints parses a comma separated list of hexadecimal addresses.
// Addresses can be prefixed with $ or 0x.
func parseBreakpoints(s string) (set.Set[uint16], error) {
	breakpoints := set.New[uint16]()
	if s == "" {
		return breakpoints, nil
	}

	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		field = strings.TrimPrefix(field, "$")
		field = strings.TrimPrefix(strings.ToLower(field), "0x")

		address, err := strconv.ParseUint(field, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid breakpoint address '%s'", field)
		}
		if address >= vm.MemorySize {
			return nil, fmt.Errorf("breakpoint address %04x is outside of memory", address)
		}
		breakpoints.Add(uint16(address))
	}
	return breakpoints, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Break, "break", "", "comma separated hexadecimal breakpoint addresses, for example 200,2A4")
	flags.IntVar(&opts.Speed, "speed", runner.DefaultSpeed, "instructions executed per frame, 60 frames are executed per second")
	flags.IntVar(&opts.Scale, "scale", display.DefaultScale, "window size of a single CHIP-8 pixel")
	flags.IntVar(&opts.Frames, "frames", 0, "number of frames to run in headless mode, 0 runs until interrupted")
	flags.BoolVar(&opts.Headless, "headless", false, "run without window and print the screen on exit")
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly listing of the program and exit")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, enables debug logging")
	flags.BoolVar(&opts.Mute, "mute", false, "disable the sound timer tone")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
