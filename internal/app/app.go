// Package app provides the main application logic of the emulator.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

const name = "retrochip8"

// PrintBanner prints the application name and version.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info(name, log.String("version", buildinfo.Version(version, commit, date)))
}

// PrintInfo prints the information about the loaded program.
func PrintInfo(logger *log.Logger, opts options.Program, program []byte) {
	if opts.Quiet {
		return
	}

	logger.Info("Processing program",
		log.Stringer("system", arch.CHIP8System),
		log.String("file", opts.Input),
		log.Int("size", len(program)),
		log.String("crc32", fmt.Sprintf("%08X", loader.Checksum(program))),
	)
}

// Run loads the program and executes it in the mode selected by the options.
// The screen is written to out in headless mode, the listing in disassembly
// mode.
func Run(ctx context.Context, logger *log.Logger, opts options.Program, out io.Writer) error {
	detector.New(logger).Check(opts.Input)

	program, err := loader.Load(opts.Input)
	if err != nil {
		return err
	}
	PrintInfo(logger, opts, program)

	if opts.Disasm {
		return disasm.Listing(out, program)
	}

	m := vm.NewMachine()
	if err := m.LoadProgram(program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	engine := vm.NewEngine(m,
		vm.WithLogger(logger),
		vm.WithTrace(opts.Trace),
	)
	r := runner.New(logger, engine, runner.Options{
		Speed:       opts.Speed,
		Breakpoints: opts.Breakpoints,
	})

	if opts.Headless {
		err = runHeadless(ctx, logger, opts, r, m, out)
	} else {
		game := display.New(logger, r, m, program, display.Options{
			Title: fmt.Sprintf("%s - %s", name, filepath.Base(opts.Input)),
			Scale: opts.Scale,
			Mute:  opts.Mute,
		})
		err = game.Run()
	}

	if unknown := engine.UnknownOpcodes(); unknown > 0 {
		logger.Warn("Program contained unknown opcodes", log.Int("count", int(unknown)))
	}
	return err
}

func runHeadless(ctx context.Context, logger *log.Logger, opts options.Program,
	r *runner.Runner, m *vm.Machine, out io.Writer) error {

	err := r.Run(ctx, opts.Frames)
	if err != nil && !errors.Is(err, runner.ErrBreakpoint) {
		return fmt.Errorf("running program: %w", err)
	}

	logger.Info("Execution stopped",
		log.Int("frames", int(r.Frames())),
		log.Hex("pc", m.PC()),
	)
	return display.WriteText(out, m.Framebuffer())
}
